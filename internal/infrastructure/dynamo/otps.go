package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/VSaini11/dwv-api/internal/domain"
)

// OtpRepo manages pending one-time codes, keyed by email. PutItem on the email
// hash key makes issuance a replace: a fresh code invalidates any prior one as
// a side effect of the overwrite. expires_at is the table's TTL attribute.
type OtpRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOtpRepo(client *dynamodb.Client, tableName string) *OtpRepo {
	return &OtpRepo{client: client, tableName: tableName}
}

func (r *OtpRepo) Put(ctx context.Context, o *domain.Otp) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *OtpRepo) Get(ctx context.Context, email string) (*domain.Otp, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("otp for %s: %w", email, domain.ErrNotFound)
	}
	var o domain.Otp
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OtpRepo) Delete(ctx context.Context, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	return err
}
