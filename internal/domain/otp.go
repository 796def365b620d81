package domain

import "time"

// Otp is a pending one-time code, keyed by email. Writing a new record for the
// same email replaces any prior pending code. ExpiresAt doubles as the DynamoDB
// TTL attribute (Unix seconds).
type Otp struct {
	Email     string    `json:"email" dynamodbav:"email"`
	Code      string    `json:"-" dynamodbav:"code"`
	ExpiresAt int64     `json:"-" dynamodbav:"expires_at"`
	CreatedAt time.Time `json:"-" dynamodbav:"created_at"`
}

// Expired reports whether the code is past its validity window at now.
func (o *Otp) Expired(now time.Time) bool {
	return o.ExpiresAt < now.Unix()
}
