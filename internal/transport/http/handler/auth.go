package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VSaini11/dwv-api/internal/application/auth"
	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/VSaini11/dwv-api/internal/pkg/validate"
)

// AuthHandler handles the OTP issuance and verification endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendOTP(r.Context(), req); err != nil {
		// The intent-mismatch failures carry a code telling the client which
		// flow to switch to.
		switch {
		case errors.Is(err, domain.ErrConflict):
			writeCodedError(w, http.StatusConflict,
				"An account with this email already exists. Please sign in instead.", "user_exists")
		case errors.Is(err, domain.ErrNotFound):
			writeCodedError(w, http.StatusNotFound,
				"No account found with this email. Please sign up first.", "user_not_found")
		default:
			httpError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent successfully"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, user, err := h.svc.VerifyOTP(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{
		Message: "Verification successful",
		Token:   token,
		User:    &domain.SafeUser{UserID: user.UserID, Email: user.Email},
	})
}
