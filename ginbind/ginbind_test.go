package ginbind_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaz303/httperr"
	"github.com/jaz303/httperr/ginbind"
)

func newTestRouter(lines *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	opts := httperr.Options{Logger: httperr.LoggerFunc(func(m string) { *lines = append(*lines, m) })}

	r := gin.New()
	r.Use(ginbind.Recovery(opts), ginbind.Handler(opts))
	r.GET("/not-found", func(c *gin.Context) {
		c.Error(httperr.NotFound("no such order"))
	})
	r.GET("/opaque", func(c *gin.Context) {
		c.Error(errors.New("redis: connection pool timeout"))
	})
	r.GET("/last-wins", func(c *gin.Context) {
		c.Error(httperr.BadRequest("first"))
		c.Error(httperr.Forbidden("second"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/committed", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		c.Error(errors.New("late failure"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_HTTPError(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/not-found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"status":404,"message":"no such order"}}`, w.Body.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "[HttpApiError]: error in handler at GET /not-found => 404 no such order", lines[0])
}

func TestHandler_OpaqueError(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/opaque")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"status":500,"message":"Internal error"}}`, w.Body.String())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "redis: connection pool timeout")
}

func TestHandler_LastErrorWins(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/last-wins")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":{"status":403,"message":"second"}}`, w.Body.String())
}

func TestHandler_Committed(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/committed")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
	assert.Len(t, lines, 1)
}

func TestHandler_NoError(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, lines)
}

func TestRecovery(t *testing.T) {
	var lines []string
	w := get(newTestRouter(&lines), "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"status":500,"message":"Internal error"}}`, w.Body.String())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "GET /panic => 500 boom")
}
