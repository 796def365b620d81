package jwtinfra

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/VSaini11/dwv-api/internal/config"
)

// Claims holds the JWT payload fields.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs with a shared secret. Tokens carry a
// fixed validity window; expiry is enforced purely by the signature check, with
// no server-side revocation or refresh.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{secret: []byte(cfg.JWTSecret), expiry: cfg.JWTExpiry}
}

func (p *Provider) Sign(userID, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
