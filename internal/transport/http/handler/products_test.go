package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) List(ctx context.Context, category, query string) ([]domain.Product, error) {
	args := m.Called(ctx, category, query)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockCatalogService) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if p, _ := args.Get(0).(*domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListProducts_PassesFilters(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("List", mock.Anything, "sneakers", "runner").Return([]domain.Product{
		{ProductID: "p1", Name: "Cloud Runner", Category: domain.CategorySneakers},
	}, nil)
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=sneakers&query=runner", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
	svc.AssertExpectations(t)
}

func TestListProducts_NoFilters(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("List", mock.Anything, "", "").Return([]domain.Product{}, nil)
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req domain.CreateProductRequest) bool {
		return req.Name == "Cloud Runner" && req.Category == domain.CategorySneakers
	})).Return(&domain.Product{
		ProductID: "p1", Name: "Cloud Runner", Category: domain.CategorySneakers,
		Image: "https://cdn.example.com/p1.jpg", IsTrending: true, CreatedAt: time.Now().UTC(),
	}, nil)
	h := NewProductHandler(svc)

	rec := postJSON(t, h.Create, `{
		"name": "Cloud Runner",
		"description": "Lightweight everyday sneaker",
		"image": "https://cdn.example.com/p1.jpg",
		"category": "sneakers",
		"pinterestUrl": "https://pinterest.com/pin/1"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "p1", got.ProductID)
	assert.True(t, got.IsTrending)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	h := NewProductHandler(&mockCatalogService{})

	rec := postJSON(t, h.Create, `{
		"name": "Cloud Runner",
		"description": "Lightweight everyday sneaker",
		"image": "https://cdn.example.com/p1.jpg",
		"category": "gadgets",
		"pinterestUrl": "https://pinterest.com/pin/1"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	h := NewProductHandler(&mockCatalogService{})

	rec := postJSON(t, h.Create, `{"name":"Cloud Runner"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
