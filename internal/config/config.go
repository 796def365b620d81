package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string
	SiteURL string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	S3BucketName string // empty disables image offloading
	SNSTopicARN  string // empty disables drop announcements

	JWTSecret string
	JWTExpiry time.Duration
	OTPTTL    time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	AdminKeyHash   string // bcrypt hash; empty leaves product creation open
	AllowedOrigins []string
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users       string
	Otps        string
	Products    string
	Subscribers string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),
		SiteURL: getEnv("SITE_URL", "https://dwv-brand.vercel.app"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:       getEnv("DYNAMO_TABLE_USERS", "users"),
			Otps:        getEnv("DYNAMO_TABLE_OTPS", "otps"),
			Products:    getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Subscribers: getEnv("DYNAMO_TABLE_SUBSCRIBERS", "subscribers"),
		},

		S3BucketName: getEnv("S3_BUCKET_NAME", ""),
		SNSTopicARN:  getEnv("SNS_TOPIC_ARN", ""),

		JWTSecret: getEnv("JWT_SECRET", "secret"),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,
		OTPTTL:    time.Duration(getEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute,

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AdminKeyHash:   getEnv("ADMIN_KEY_HASH", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
