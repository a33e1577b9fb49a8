package echobind

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaz303/httperr"
)

// echoError adapts echo's own *echo.HTTPError (routing misses, binding
// failures, ...) so that it keeps its status and public message. err is the
// value the handler returned, possibly wrapping he.
type echoError struct {
	he  *echo.HTTPError
	err error
}

var _ httperr.Converter = echoError{}

func (e echoError) HTTPError() *httperr.HTTPError {
	status := e.he.Code
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return httperr.New(status, publicMessage(e.he))
}

func (e echoError) Error() string { return e.err.Error() }
func (e echoError) Unwrap() error { return e.err }

func publicMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case nil:
		return http.StatusText(he.Code)
	default:
		return fmt.Sprint(m)
	}
}
