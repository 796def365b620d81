package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VSaini11/dwv-api/internal/config"
	"github.com/VSaini11/dwv-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/VSaini11/dwv-api/internal/infrastructure/jwt"
	s3infra "github.com/VSaini11/dwv-api/internal/infrastructure/s3"
	"github.com/VSaini11/dwv-api/internal/infrastructure/smtp"
	"github.com/VSaini11/dwv-api/internal/infrastructure/sns"
	transporthttp "github.com/VSaini11/dwv-api/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	jwtProvider := jwtinfra.NewProvider(cfg)

	// S3 image store is optional; products keep data URIs without it.
	var imageStore *s3infra.Store
	if cfg.S3BucketName != "" {
		imageStore = s3infra.NewStore(s3infra.NewClient(cfg), cfg)
	}

	// SNS drop announcements are optional as well.
	var publisher sns.Publisher
	if cfg.SNSTopicARN != "" {
		if p, err := sns.NewPublisher(cfg); err == nil {
			publisher = p
		} else {
			slog.Warn("SNS publisher not available", "err", err)
		}
	}

	mailer := smtp.NewMailer(cfg)

	deps := &transporthttp.Deps{
		UserRepo:       dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		OtpRepo:        dynamo.NewOtpRepo(dynamoClient, cfg.DynamoTables.Otps),
		ProductRepo:    dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products),
		SubscriberRepo: dynamo.NewSubscriberRepo(dynamoClient, cfg.DynamoTables.Subscribers),
		ImageStore:     imageStore,
		Publisher:      publisher,
		Mailer:         mailer,
		JWTProvider:    jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
