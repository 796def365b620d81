package handler

import (
	"encoding/json"
	"net/http"

	"github.com/VSaini11/dwv-api/internal/application/catalog"
	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/VSaini11/dwv-api/internal/pkg/validate"
)

// ProductHandler handles catalogue listing and creation.
type ProductHandler struct {
	svc catalog.Service
}

func NewProductHandler(svc catalog.Service) *ProductHandler { return &ProductHandler{svc: svc} }

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.svc.List(r.Context(), q.Get("category"), q.Get("query"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
