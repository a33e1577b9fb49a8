package demo

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jaz303/httperr"
	"github.com/jaz303/httperr/echobind"
	"github.com/jaz303/httperr/ginbind"
	"github.com/jaz303/httperr/httpbind"
	"github.com/jaz303/httperr/internal/config"
)

// NewHandler returns the demo routes mounted on the named framework.
func NewHandler(framework string, opts httperr.Options) (http.Handler, error) {
	switch framework {
	case config.FrameworkHTTP:
		return newHTTPHandler(opts), nil
	case config.FrameworkGin:
		return newGinHandler(opts), nil
	case config.FrameworkEcho:
		return newEchoHandler(opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown framework %q", config.ErrInvalidConfig, framework)
	}
}

func newHTTPHandler(opts httperr.Options) http.Handler {
	mux := http.NewServeMux()
	for _, rt := range routes() {
		mux.Handle(rt.method+" "+rt.path, httpbind.Bind(httpbind.HandlerFunc(rt.scenario)).WithLogger(opts.Logger))
	}
	return mux
}

func newGinHandler(opts httperr.Options) http.Handler {
	r := gin.New()
	r.Use(ginbind.Recovery(opts), ginbind.Handler(opts))
	for _, rt := range routes() {
		scenario := rt.scenario
		r.Handle(rt.method, rt.path, func(c *gin.Context) {
			if err := scenario(c.Writer, c.Request); err != nil {
				c.Error(err)
			}
		})
	}
	return r
}

func newEchoHandler(opts httperr.Options) http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = echobind.ErrorHandler(opts)
	e.Use(middleware.Recover())
	for _, rt := range routes() {
		scenario := rt.scenario
		e.Add(rt.method, rt.path, func(c echo.Context) error {
			return scenario(c.Response(), c.Request())
		})
	}
	return e
}
