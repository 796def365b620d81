package subscription

import (
	"context"
	"time"

	"github.com/VSaini11/dwv-api/internal/domain"
)

type Service interface {
	// Subscribe adds the email to the mailing list. A duplicate email fails
	// with domain.ErrConflict.
	Subscribe(ctx context.Context, email string) error
}

type SubscriberStore interface {
	PutIfAbsent(ctx context.Context, s *domain.Subscriber) error
}

type service struct {
	subs SubscriberStore
}

func NewService(subs SubscriberStore) Service {
	return &service{subs: subs}
}

func (s *service) Subscribe(ctx context.Context, email string) error {
	return s.subs.PutIfAbsent(ctx, &domain.Subscriber{
		Email:     domain.NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	})
}
