package handlers

import (
	"encoding/json"
	"net/http"
)

// TokenResponse is the success body of signup and login. Login leaves the
// message empty so the body is just the token.
type TokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
