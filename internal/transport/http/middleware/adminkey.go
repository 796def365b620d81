package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminKey gates an endpoint behind an X-Admin-Key header checked against a
// bcrypt hash. An empty hash disables the check entirely, leaving the endpoint
// open.
func AdminKey(hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
