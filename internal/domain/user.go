package domain

import (
	"strings"
	"time"
)

// User is created lazily on first successful OTP verification and is never
// deleted by the system. LikedProducts is stored as a DynamoDB string set, so
// each product id appears at most once regardless of racing toggles.
type User struct {
	UserID        string    `json:"id" dynamodbav:"user_id"`
	Email         string    `json:"email" dynamodbav:"email"`
	LikedProducts []string  `json:"-" dynamodbav:"liked_products,stringset,omitempty"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}

// SafeUser is the minimal projection returned to clients.
type SafeUser struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// HasLiked reports whether productID is in the user's liked set.
func (u *User) HasLiked(productID string) bool {
	for _, id := range u.LikedProducts {
		if id == productID {
			return true
		}
	}
	return false
}

// NormalizeEmail lowercases and trims an email address. Every entry point that
// accepts an email goes through this, so the same mailbox always maps to the
// same document key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
