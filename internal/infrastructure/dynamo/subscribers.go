package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/VSaini11/dwv-api/internal/domain"
)

// SubscriberRepo provides typed DynamoDB operations for the subscribers table.
type SubscriberRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSubscriberRepo(client *dynamodb.Client, tableName string) *SubscriberRepo {
	return &SubscriberRepo{client: client, tableName: tableName}
}

// PutIfAbsent inserts the subscriber only when no record exists for the email.
// A condition failure maps to domain.ErrConflict, so duplicate subscriptions
// are rejected atomically instead of via a racy read-then-write.
func (r *SubscriberRepo) PutIfAbsent(ctx context.Context, s *domain.Subscriber) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal subscriber: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return fmt.Errorf("subscriber %s: %w", s.Email, domain.ErrConflict)
		}
		return err
	}
	return nil
}

// Scan returns every subscriber. The fan-out reads the whole list; there is no
// pagination because delivery is best-effort and unordered.
func (r *SubscriberRepo) Scan(ctx context.Context) ([]domain.Subscriber, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var subs []domain.Subscriber
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
