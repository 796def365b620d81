package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VSaini11/dwv-api/internal/domain"
	jwtinfra "github.com/VSaini11/dwv-api/internal/infrastructure/jwt"
	"github.com/VSaini11/dwv-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLikesService struct{ mock.Mock }

func (m *mockLikesService) List(ctx context.Context, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockLikesService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func withClaims(req *http.Request, userID string) *http.Request {
	claims := &jwtinfra.Claims{UserID: userID, Email: userID + "@example.com"}
	return req.WithContext(context.WithValue(req.Context(), middleware.ClaimsKey, claims))
}

func TestListLikes_Success(t *testing.T) {
	svc := &mockLikesService{}
	svc.On("List", mock.Anything, "u1").Return([]domain.Product{{ProductID: "p1"}}, nil)
	h := NewLikesHandler(svc)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/likes", nil), "u1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
}

func TestListLikes_NoClaims(t *testing.T) {
	h := NewLikesHandler(&mockLikesService{})

	req := httptest.NewRequest(http.MethodGet, "/api/likes", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleLike_Success(t *testing.T) {
	svc := &mockLikesService{}
	svc.On("Toggle", mock.Anything, "u1", "p1").Return(true, nil)
	h := NewLikesHandler(svc)

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/likes",
		bytes.NewBufferString(`{"productId":"p1"}`)), "u1")
	rec := httptest.NewRecorder()
	h.Toggle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env LikedEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.True(t, env.Liked)
}

func TestToggleLike_MissingProductID(t *testing.T) {
	h := NewLikesHandler(&mockLikesService{})

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/likes",
		bytes.NewBufferString(`{}`)), "u1")
	rec := httptest.NewRecorder()
	h.Toggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "productId is required", decodeEnvelope(t, rec).Error)
}

func TestToggleLike_UserRowMissing(t *testing.T) {
	svc := &mockLikesService{}
	svc.On("Toggle", mock.Anything, "ghost", "p1").
		Return(false, fmt.Errorf("user: %w", domain.ErrNotFound))
	h := NewLikesHandler(svc)

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/likes",
		bytes.NewBufferString(`{"productId":"p1"}`)), "ghost")
	rec := httptest.NewRecorder()
	h.Toggle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
