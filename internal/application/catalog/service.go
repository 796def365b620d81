package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/VSaini11/dwv-api/internal/pkg/id"
)

type Service interface {
	// List returns products newest-created first. category filters by exact
	// match ("" and "all" disable it); query does a case-insensitive
	// substring match against name and description.
	List(ctx context.Context, category, query string) ([]domain.Product, error)
	// Create persists the product and triggers the subscriber fan-out in the
	// background. The returned product is what callers see immediately.
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
}

type ProductStore interface {
	Put(ctx context.Context, p *domain.Product) error
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Scan(ctx context.Context) ([]domain.Product, error)
}

// ImageStore offloads data-URI images to object storage. Optional.
type ImageStore interface {
	UploadDataURI(ctx context.Context, key, dataURI string) (string, error)
}

// DropNotifier is invoked asynchronously after a product is stored.
type DropNotifier interface {
	ProductCreated(ctx context.Context, p *domain.Product)
}

// ServiceDeps carries the collaborators. Images and Notifier may be nil.
type ServiceDeps struct {
	ProductRepo ProductStore
	Images      ImageStore
	Notifier    DropNotifier
}

type service struct {
	products ProductStore
	images   ImageStore
	notifier DropNotifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		products: deps.ProductRepo,
		images:   deps.Images,
		notifier: deps.Notifier,
	}
}

func (s *service) List(ctx context.Context, category, query string) ([]domain.Product, error) {
	var products []domain.Product
	var err error
	if category != "" && category != "all" {
		// The category GSI is range-keyed on created_at, so the query comes
		// back newest-first already.
		products, err = s.products.ListByCategory(ctx, category)
	} else {
		products, err = s.products.Scan(ctx)
		if err == nil {
			sort.Slice(products, func(i, j int) bool {
				return products[i].CreatedAt.After(products[j].CreatedAt)
			})
		}
	}
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}

	q := strings.ToLower(query)
	matched := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	p := &domain.Product{
		ProductID:    id.New(),
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		PinterestURL: req.PinterestURL,
		IsTrending:   true,
		CreatedAt:    time.Now().UTC(),
	}
	if req.IsTrending != nil {
		p.IsTrending = *req.IsTrending
	}

	// Data-URI images are offloaded to object storage when a bucket is
	// configured; on failure the data URI is stored verbatim rather than
	// failing the creation.
	if s.images != nil && strings.HasPrefix(p.Image, "data:") {
		if url, err := s.images.UploadDataURI(ctx, "products/"+p.ProductID, p.Image); err == nil {
			p.Image = url
		} else {
			slog.Warn("image offload failed, storing data URI", "product", p.ProductID, "err", err)
		}
	}

	if err := s.products.Put(ctx, p); err != nil {
		return nil, err
	}

	// Fire-and-forget: the creator's response never waits on the fan-out, and
	// fan-out failures are unobservable to the caller.
	if s.notifier != nil {
		go s.notifier.ProductCreated(context.Background(), p)
	}
	return p, nil
}
