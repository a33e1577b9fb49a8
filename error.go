package httperr

import (
	"encoding/json"
	"net/http"
)

// InternalErrorMessage replaces the message of any error that is not safe to
// show to a client.
const InternalErrorMessage = "Internal error"

// HTTPError represents an error intended for client-facing HTTP reporting.
//
// Values constructed through New or one of the preset constructors are always
// displayable. A literal HTTPError{} is not, and serializes with the generic
// message. HTTPError values are not modified after construction.
type HTTPError struct {
	Status  int
	Message string

	displayable bool
}

var _ error = &HTTPError{}

// New returns an HTTPError with the given status and message.
// status is not validated; callers are trusted to supply an HTTP status code.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Status:      status,
		Message:     message,
		displayable: true,
	}
}

func (e *HTTPError) Error() string { return e.Message }

// Displayable reports whether e's message may be exposed to clients.
func (e *HTTPError) Displayable() bool { return e != nil && e.displayable }

// Body is the serialized form of an HTTPError.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Body returns e's client-facing representation. If e is not displayable the
// message is always InternalErrorMessage.
func (e *HTTPError) Body() Body {
	msg := InternalErrorMessage
	if e.displayable {
		msg = e.Message
	}
	return Body{Status: e.Status, Message: msg}
}

func (e *HTTPError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Body())
}

// Envelope is the JSON document written to clients:
//
//	{ "error": { "status": <int>, "message": <string> } }
type Envelope struct {
	Error *HTTPError `json:"error"`
}

// Preset constructors. Each fixes the status code; the message is always
// displayable.

func Unauthorized(message string) *HTTPError { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *HTTPError    { return New(http.StatusForbidden, message) }
func BadRequest(message string) *HTTPError   { return New(http.StatusBadRequest, message) }
func NotFound(message string) *HTTPError     { return New(http.StatusNotFound, message) }
func Internal(message string) *HTTPError     { return New(http.StatusInternalServerError, message) }
