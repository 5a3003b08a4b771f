// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small helpers every JSON handler shares:
// decoding request bodies and writing responses with a status code.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Message is the body shape for confirmation and error responses.
type Message struct {
	Message string `json:"message"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a {"message": ...} body with the given status code.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	Write(w, status, Message{Message: msg})
}

// Decode reads the request body into v. A missing or malformed body is the
// caller's validation problem, so the error is returned rather than written.
func Decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
