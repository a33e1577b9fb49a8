// Package echobind installs httperr's JSON error handling on an echo server.
package echobind

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/jaz303/httperr"
)

// ErrorHandler returns an echo.HTTPErrorHandler that reports err and, unless
// the response is already committed, writes it as an httperr.Envelope.
//
// Assign the result to (*echo.Echo).HTTPErrorHandler. Pair it with echo's
// middleware.Recover() so that panics reach it as errors.
func ErrorHandler(opts httperr.Options) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		herr := opts.Report(c.Request(), adapt(err))
		if c.Response().Committed {
			return
		}
		if werr := c.JSON(herr.Status, httperr.Envelope{Error: herr}); werr != nil {
			c.Logger().Error(werr)
		}
	}
}

// adapt wraps echo's built-in errors, including wrapped ones, unless err
// already converts itself. Everything else is passed through so the
// normalizer sees the original value.
func adapt(err error) any {
	switch err.(type) {
	case *httperr.HTTPError, httperr.Converter:
		return err
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he != nil {
		return echoError{he: he, err: err}
	}
	return err
}
