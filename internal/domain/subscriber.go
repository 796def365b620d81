package domain

import "time"

// Subscriber is a mailing-list entry for new-drop notifications.
// Unrelated to User; keyed by unique email.
type Subscriber struct {
	Email     string    `json:"email" dynamodbav:"email"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}
