package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Logger receives one line per handled error.
type Logger interface {
	Warn(message string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(message string)

func (f LoggerFunc) Warn(message string) { f(message) }

// Options configures JSONCatchHandler and the framework bindings.
// The zero value is valid and disables logging.
type Options struct {
	Logger Logger
}

// CatchFunc handles a failure raised while serving r.
// e is either a returned error or a recovered panic value.
type CatchFunc func(e any, w http.ResponseWriter, r *http.Request)

// Report normalizes e and, if a logger is configured, logs it along with the
// request method, the original request URL, the resolved status and e's
// original message. The original message is logged even when the client will
// only see InternalErrorMessage.
//
// Report does not touch the response; callers decide whether it can still be
// written.
func (o Options) Report(r *http.Request, e any) *HTTPError {
	original := Message(e)

	herr := ToHTTPError(e)
	if herr == nil {
		herr = New(http.StatusInternalServerError, InternalErrorMessage)
	}

	if o.Logger != nil {
		o.Logger.Warn(fmt.Sprintf("[HttpApiError]: error in handler at %s %s => %d %s",
			r.Method, originalURL(r), herr.Status, original))
	}

	return herr
}

// JSONCatchHandler returns a CatchFunc that reports the error and, unless the
// response headers have already been sent, writes it to w as an Envelope.
// Once headers are out the response is left alone.
//
// The status is written as-is. A status outside 100-999 (from a StatusCoder or
// Converter) makes net/http's WriteHeader panic.
func JSONCatchHandler(opts Options) CatchFunc {
	return func(e any, w http.ResponseWriter, r *http.Request) {
		herr := opts.Report(r, e)
		if HeadersSent(w) {
			return
		}
		WriteJSON(w, herr)
	}
}

// HeadersSent reports whether w has already committed its headers.
// Only writers exposing Written() bool (gin's ResponseWriter, the httpbind
// writer) can answer; any other writer is assumed to be fresh.
func HeadersSent(w http.ResponseWriter) bool {
	if ww, ok := w.(interface{ Written() bool }); ok {
		return ww.Written()
	}
	return false
}

// WriteJSON writes e to w as {"error": {"status": ..., "message": ...}} using
// e.Status as the response status.
func WriteJSON(w http.ResponseWriter, e *HTTPError) {
	body, _ := json.Marshal(Envelope{Error: e})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	w.Write(body)
}

func originalURL(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	if r.URL != nil {
		return r.URL.RequestURI()
	}
	return ""
}
