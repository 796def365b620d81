// Package notifier fans out new-drop notifications to the mailing list.
//
// Delivery is best-effort and unobserved by the request that triggered it: the
// product has already been created and the HTTP response sent. Failures are
// logged and counted, never retried or surfaced.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/VSaini11/dwv-api/internal/metrics"
	pkgemail "github.com/VSaini11/dwv-api/internal/pkg/email"
)

type SubscriberStore interface {
	Scan(ctx context.Context) ([]domain.Subscriber, error)
}

type Mailer interface {
	SendEmail(to, subject, body string) error
}

// Publisher mirrors the drop announcement onto a message topic. Optional.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

type Notifier struct {
	subs      SubscriberStore
	mailer    Mailer
	publisher Publisher // nil when no topic is configured
	siteURL   string
}

func New(subs SubscriberStore, mailer Mailer, publisher Publisher, siteURL string) *Notifier {
	return &Notifier{subs: subs, mailer: mailer, publisher: publisher, siteURL: siteURL}
}

// ProductCreated emails every subscriber about the new product. One
// recipient's failed delivery never blocks the rest.
func (n *Notifier) ProductCreated(ctx context.Context, p *domain.Product) {
	if n.publisher != nil {
		payload, _ := json.Marshal(map[string]string{
			"product_id": p.ProductID,
			"name":       p.Name,
			"category":   p.Category,
		})
		if err := n.publisher.Publish(ctx, "product.created", string(payload)); err != nil {
			slog.Warn("drop announcement publish failed", "product", p.ProductID, "err", err)
		}
	}

	subs, err := n.subs.Scan(ctx)
	if err != nil {
		slog.Error("subscriber list fetch failed, skipping notifications", "product", p.ProductID, "err", err)
		return
	}
	if len(subs) == 0 {
		return
	}

	subject := pkgemail.DropSubject(p.Name)
	body := pkgemail.DropBody(p.Name, p.Image, n.siteURL)

	failed := 0
	for _, sub := range subs {
		if err := n.mailer.SendEmail(sub.Email, subject, body); err != nil {
			failed++
			metrics.NotificationEmailsTotal.WithLabelValues("error").Inc()
			slog.Warn("subscriber notification failed", "to", sub.Email, "product", p.ProductID, "err", err)
			continue
		}
		metrics.NotificationEmailsTotal.WithLabelValues("ok").Inc()
	}
	slog.Info("notified subscribers", "product", p.Name, "sent", len(subs)-failed, "failed", failed)
}
