package httpbind

import (
	"encoding/json"
	"net/http"

	"github.com/jaz303/httperr"
)

// ParseJSON parses r's Body into a *P.
// A malformed body is reported as a 400 Bad Request.
func ParseJSON[P any](r *http.Request) (*P, error) {
	var out P
	if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
		return nil, httperr.BadRequest("malformed JSON body")
	}
	return &out, nil
}

// WriteJSON writes a *T to w as JSON with the given status.
func WriteJSON[T any](w http.ResponseWriter, status int, val *T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(val)
}
