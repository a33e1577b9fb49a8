// Package demo serves one route per error class on each supported framework.
package demo

import (
	"errors"
	"net/http"

	"github.com/jaz303/httperr"
	"github.com/jaz303/httperr/httpbind"
)

// Scenario is a handler that may fail. It is mounted on every framework.
type Scenario func(w http.ResponseWriter, r *http.Request) error

type route struct {
	method   string
	path     string
	scenario Scenario
}

// conflictError is an application error that chooses its own status and
// opts in to exposing its message.
type conflictError struct {
	resource string
}

func (e *conflictError) Error() string     { return e.resource + " already exists" }
func (e *conflictError) StatusCode() int   { return http.StatusConflict }
func (e *conflictError) Displayable() bool { return true }

// rateLimitError converts itself wholesale.
type rateLimitError struct{}

func (rateLimitError) Error() string { return "rate limit exceeded" }
func (rateLimitError) HTTPError() *httperr.HTTPError {
	return httperr.New(http.StatusTooManyRequests, "slow down")
}

type greeting struct {
	Name string `json:"name"`
}

func routes() []route {
	return []route{
		{http.MethodGet, "/unauthorized", func(w http.ResponseWriter, r *http.Request) error {
			return httperr.Unauthorized("login required")
		}},
		{http.MethodGet, "/forbidden", func(w http.ResponseWriter, r *http.Request) error {
			return httperr.Forbidden("admins only")
		}},
		{http.MethodGet, "/not-found", func(w http.ResponseWriter, r *http.Request) error {
			return httperr.NotFound("no such widget")
		}},
		{http.MethodGet, "/internal", func(w http.ResponseWriter, r *http.Request) error {
			return httperr.Internal("maintenance in progress")
		}},
		{http.MethodGet, "/opaque", func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("dial tcp 10.0.0.7:5432: connection refused")
		}},
		{http.MethodGet, "/conflict", func(w http.ResponseWriter, r *http.Request) error {
			return &conflictError{resource: "widget"}
		}},
		{http.MethodGet, "/rate-limited", func(w http.ResponseWriter, r *http.Request) error {
			return rateLimitError{}
		}},
		{http.MethodGet, "/panic", func(w http.ResponseWriter, r *http.Request) error {
			panic("boom")
		}},
		{http.MethodGet, "/committed", func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("partial"))
			return errors.New("stream interrupted")
		}},
		{http.MethodPost, "/greet", func(w http.ResponseWriter, r *http.Request) error {
			in, err := httpbind.ParseJSON[greeting](r)
			if err != nil {
				return err
			}
			if in.Name == "" {
				return httperr.BadRequest("name is required")
			}
			return httpbind.WriteJSON(w, http.StatusOK, &map[string]string{"greeting": "hello " + in.Name})
		}},
	}
}
