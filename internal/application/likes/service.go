package likes

import (
	"context"

	"github.com/VSaini11/dwv-api/internal/domain"
)

type Service interface {
	// List returns the products in the user's liked set.
	List(ctx context.Context, userID string) ([]domain.Product, error)
	// Toggle flips productID in the user's liked set and reports the new
	// state: true when the product is now liked.
	Toggle(ctx context.Context, userID, productID string) (liked bool, err error)
}

type UserStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	AddLike(ctx context.Context, userID, productID string) error
	RemoveLike(ctx context.Context, userID, productID string) error
}

type ProductStore interface {
	BatchGet(ctx context.Context, productIDs []string) ([]domain.Product, error)
}

type ServiceDeps struct {
	UserRepo    UserStore
	ProductRepo ProductStore
}

type service struct {
	users    UserStore
	products ProductStore
}

func NewService(deps ServiceDeps) Service {
	return &service{users: deps.UserRepo, products: deps.ProductRepo}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Product, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.products.BatchGet(ctx, u.LikedProducts)
}

func (s *service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	// The read only picks a direction; the write itself is an atomic set
	// ADD/DELETE, so racing toggles converge instead of losing updates.
	if u.HasLiked(productID) {
		if err := s.users.RemoveLike(ctx, userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.users.AddLike(ctx, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}
