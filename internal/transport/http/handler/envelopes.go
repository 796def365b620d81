package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VSaini11/dwv-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper. Code is a machine-readable
// error discriminator ("user_exists", "user_not_found", "already_subscribed").
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// VerifyEnvelope wraps successful OTP verification responses.
type VerifyEnvelope struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *domain.SafeUser `json:"user"`
}

// LikedEnvelope reports the post-toggle like state.
type LikedEnvelope struct {
	Liked bool `json:"liked"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

func writeCodedError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, Code: code})
}

// httpError maps wrapped domain sentinel errors to an HTTP status. Anything
// unrecognised is an internal error with a generic message, so infrastructure
// failures never leak details to the caller.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
