package s3infra

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/VSaini11/dwv-api/internal/config"
)

// Store uploads product images to S3. Admin clients submit images as data URIs;
// offloading them keeps the product documents small and gives the notification
// emails a real URL to render.
type Store struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewClient creates an S3 client. When cfg.AWSEndpointURL is set (LocalStack),
// it overrides the endpoint and enables path-style addressing.
func NewClient(cfg *config.Config) *s3.Client {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		panic("failed to load AWS config for S3: " + err.Error())
	}

	clientOpts := []func(*s3.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, clientOpts...)
}

// NewStore creates a Store writing into the given bucket.
func NewStore(client *s3.Client, cfg *config.Config) *Store {
	return &Store{
		client:   client,
		bucket:   cfg.S3BucketName,
		region:   cfg.AWSRegion,
		endpoint: cfg.AWSEndpointURL,
	}
}

// UploadDataURI decodes a "data:<mediatype>;base64,<data>" URI, uploads the
// bytes under key, and returns the object's public URL.
func (s *Store) UploadDataURI(ctx context.Context, key, dataURI string) (string, error) {
	mediaType, b64, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}
	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}
	key = key + extensionFor(mediaType)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return s.objectURL(key), nil
}

func (s *Store) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func splitDataURI(uri string) (mediaType, data string, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", "", fmt.Errorf("not a data URI")
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data URI")
	}
	mediaType = strings.TrimSuffix(meta, ";base64")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return mediaType, data, nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
