package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Converter is implemented by values that know how to represent themselves as
// an *HTTPError. The result is used as-is.
type Converter interface {
	HTTPError() *HTTPError
}

// Displayable is implemented by values whose message may be shown to clients
// when they are normalized as opaque errors.
type Displayable interface {
	Displayable() bool
}

// StatusCoder is implemented by values that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// ToHTTPError converts any error or recovered panic value into an *HTTPError.
//
// Rules are evaluated in order, first match wins:
//
//  1. an *HTTPError is returned unchanged.
//  2. a Converter is asked for its HTTPError(), which is returned without validation.
//
// Rules 1 and 2 are first applied to v itself, then to v's error chain, so a
// Converter wrapping an *HTTPError decides its own conversion.
//  3. anything else is opaque: the status comes from a StatusCoder (0 or absent
//     means 500) and the message is InternalErrorMessage unless a Displayable
//     in the value reports true, in which case that value's message is used.
//
// ToHTTPError never panics.
func ToHTTPError(v any) *HTTPError {
	if h, ok := v.(*HTTPError); ok && h != nil {
		return h
	}
	if c, ok := v.(Converter); ok {
		if h, ok := convert(c); ok {
			return h
		}
	}
	if h, ok := find[*HTTPError](v); ok && h != nil {
		return h
	}
	if c, ok := find[Converter](v); ok {
		if h, ok := convert(c); ok {
			return h
		}
	}
	return opaque(v)
}

// Message returns the message carried by v: Error() for errors, String() for
// fmt.Stringers and the default formatting otherwise. nil yields "<nil>".
func Message(v any) string {
	return fmt.Sprint(v)
}

func opaque(v any) *HTTPError {
	status := 0
	if sc, ok := find[StatusCoder](v); ok {
		status = try(0, func() int { return sc.StatusCode() })
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	message := InternalErrorMessage
	if d, ok := find[Displayable](v); ok && try(false, func() bool { return d.Displayable() }) {
		message = Message(d)
	}

	return New(status, message)
}

func convert(c Converter) (h *HTTPError, ok bool) {
	defer func() {
		if recover() != nil {
			h, ok = nil, false
		}
	}()
	return c.HTTPError(), true
}

// find looks for a T in v itself and, if v is an error, in its chain.
func find[T any](v any) (out T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			out, ok = zero, false
		}
	}()
	if t, ok := v.(T); ok {
		return t, true
	}
	if err, isErr := v.(error); isErr && err != nil {
		var t T
		if errors.As(err, &t) {
			return t, true
		}
	}
	return out, false
}

func try[T any](fallback T, fn func() T) (out T) {
	defer func() {
		if recover() != nil {
			out = fallback
		}
	}()
	return fn()
}
