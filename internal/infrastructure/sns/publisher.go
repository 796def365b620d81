package sns

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/VSaini11/dwv-api/internal/config"
)

// Publisher announces new product drops on an SNS topic, so downstream
// consumers (push services, analytics) can react without polling the API.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (Publisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

func (p *publisher) Publish(ctx context.Context, subject, message string) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicARN,
		Subject:  &subject,
		Message:  &message,
	})
	return err
}
