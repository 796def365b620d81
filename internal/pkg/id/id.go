package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string. ULIDs sort lexicographically by creation
// time, which keeps newest-first listings cheap and makes them safe DynamoDB
// partition keys.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
