package handler

import (
	"encoding/json"
	"net/http"

	"github.com/VSaini11/dwv-api/internal/application/likes"
	"github.com/VSaini11/dwv-api/internal/transport/http/middleware"
)

// LikesHandler handles the authenticated like endpoints.
type LikesHandler struct {
	svc likes.Service
}

func NewLikesHandler(svc likes.Service) *LikesHandler { return &LikesHandler{svc: svc} }

func (h *LikesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	products, err := h.svc.List(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *LikesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}
	liked, err := h.svc.Toggle(r.Context(), claims.UserID, body.ProductID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LikedEnvelope{Liked: liked})
}
