// Package httperr normalizes errors and recovered panic values into
// client-safe HTTP errors and renders them as
//
//	{ "error": { "status": 404, "message": "user not found" } }
//
// Application code returns an *HTTPError (see New and the preset
// constructors) when the message is meant for clients. Any other value is
// treated as opaque: it is reported as a 500 with the message "Internal error"
// unless it opts in through the Converter, StatusCoder or Displayable
// interfaces.
//
// JSONCatchHandler is the net/http catch handler; the httpbind, ginbind and
// echobind packages install it on the respective frameworks.
package httperr
