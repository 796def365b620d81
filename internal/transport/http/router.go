package http

import (
	"net/http"

	"github.com/VSaini11/dwv-api/internal/application/auth"
	"github.com/VSaini11/dwv-api/internal/application/catalog"
	"github.com/VSaini11/dwv-api/internal/application/likes"
	"github.com/VSaini11/dwv-api/internal/application/notifier"
	"github.com/VSaini11/dwv-api/internal/application/subscription"
	"github.com/VSaini11/dwv-api/internal/config"
	"github.com/VSaini11/dwv-api/internal/transport/http/handler"
	appmiddleware "github.com/VSaini11/dwv-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	dropNotifier := notifier.New(deps.SubscriberRepo, deps.Mailer, deps.Publisher, cfg.SiteURL)

	catalogDeps := catalog.ServiceDeps{
		ProductRepo: deps.ProductRepo,
		Notifier:    dropNotifier,
	}
	if deps.ImageStore != nil {
		catalogDeps.Images = deps.ImageStore
	}

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo: deps.UserRepo,
		OtpRepo:  deps.OtpRepo,
		Mailer:   deps.Mailer,
		Signer:   deps.JWTProvider,
		OTPTTL:   cfg.OTPTTL,
	})
	catalogSvc := catalog.NewService(catalogDeps)
	likesSvc := likes.NewService(likes.ServiceDeps{
		UserRepo:    deps.UserRepo,
		ProductRepo: deps.ProductRepo,
	})
	subSvc := subscription.NewService(deps.SubscriberRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(catalogSvc)
	likesH := handler.NewLikesHandler(likesSvc)
	subH := handler.NewSubscribeHandler(subSvc)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/send-otp", authH.SendOTP)
		r.With(sensitiveRL.Limit).Post("/auth/verify-otp", authH.VerifyOTP)
		r.Get("/products", productH.List)
		r.With(appmiddleware.AdminKey(cfg.AdminKeyHash)).Post("/products", productH.Create)
		r.With(sensitiveRL.Limit).Post("/subscribe", subH.Subscribe)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))

			r.Get("/likes", likesH.List)
			r.Post("/likes", likesH.Toggle)
		})
	})

	return r
}
