package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/VSaini11/dwv-api/internal/domain"
)

// ProductRepo provides typed DynamoDB operations for the products table.
type ProductRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProductRepo(client *dynamodb.Client, tableName string) *ProductRepo {
	return &ProductRepo{client: client, tableName: tableName}
}

func (r *ProductRepo) Put(ctx context.Context, p *domain.Product) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProductRepo) Get(ctx context.Context, productID string) (*domain.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("product_id", productID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	var p domain.Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCategory queries the category GSI newest-first. created_at is an
// RFC3339Nano string range key; trimmed fractional seconds mean lexicographic
// order can swap writes landing in the same second, which this catalogue's
// write rate never produces.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("category-created_at-index"),
		KeyConditionExpression:    aws.String("category = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":c": &types.AttributeValueMemberS{Value: category}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Scan returns every product. The catalogue is small and curated; callers sort.
func (r *ProductRepo) Scan(ctx context.Context) ([]domain.Product, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// BatchGet fetches the products for the given ids. Missing ids are silently
// skipped, matching how a liked-set can reference a since-removed product.
// BatchGetItem accepts at most 100 keys per call and may return part of a
// batch as unprocessed under throttling, so the ids are chunked and each
// chunk is retried until its keys are drained.
func (r *ProductRepo) BatchGet(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}
	products := make([]domain.Product, 0, len(productIDs))
	for _, keys := range chunkKeys("product_id", productIDs, batchGetMaxKeys) {
		request := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for len(request) > 0 {
			out, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: request,
			})
			if err != nil {
				return nil, err
			}
			var page []domain.Product
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.tableName], &page); err != nil {
				return nil, err
			}
			products = append(products, page...)
			request = out.UnprocessedKeys
		}
	}
	return products, nil
}
