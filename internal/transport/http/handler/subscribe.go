package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VSaini11/dwv-api/internal/application/subscription"
	"github.com/VSaini11/dwv-api/internal/domain"
)

// SubscribeHandler handles mailing-list signups.
type SubscribeHandler struct {
	svc subscription.Service
}

func NewSubscribeHandler(svc subscription.Service) *SubscribeHandler {
	return &SubscribeHandler{svc: svc}
}

func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := h.svc.Subscribe(r.Context(), body.Email); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeCodedError(w, http.StatusConflict, "This email is already subscribed!", "already_subscribed")
			return
		}
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Subscribed successfully!"})
}
