package domain

import "time"

// Product categories form a closed enum.
const (
	CategoryClothing    = "clothing"
	CategorySneakers    = "sneakers"
	CategoryFootwear    = "footwear"
	CategoryFragrances  = "fragrances"
	CategoryAccessories = "accessories"
	CategoryBudgetFinds = "budget-finds"
)

// Product is immutable after creation; there are no update or delete endpoints.
// Image holds either an external URL or a data URI (replaced with an object URL
// when an image store is configured).
type Product struct {
	ProductID    string    `json:"id" dynamodbav:"product_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Description  string    `json:"description" dynamodbav:"description"`
	Image        string    `json:"image" dynamodbav:"image"`
	Category     string    `json:"category" dynamodbav:"category"`
	PinterestURL string    `json:"pinterestUrl" dynamodbav:"pinterest_url"`
	IsTrending   bool      `json:"isTrending" dynamodbav:"is_trending"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description" validate:"required"`
	Image        string `json:"image" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=clothing sneakers footwear fragrances accessories budget-finds"`
	PinterestURL string `json:"pinterestUrl" validate:"required"`
	IsTrending   *bool  `json:"isTrending"`
}
