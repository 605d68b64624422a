package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/service"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/health"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	ReviewService       *service.ReviewService
	NotificationService *service.NotificationService
	WishlistService     *service.WishlistService
	HealthHandler       *health.Handler
	TokenValidator      middleware.TokenValidator
	CORS                middleware.CORSConfig
	Logger              *slog.Logger
}

// NewRouter creates a chi router with all API routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.PrometheusMetrics("agrostock"))

	// Health check endpoints
	r.Get("/health/live", deps.HealthHandler.LivenessHandler())
	r.Get("/health/ready", deps.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	reviewHandler := NewReviewHandler(deps.ReviewService, deps.Logger)
	notificationHandler := NewNotificationHandler(deps.NotificationService, deps.Logger)
	wishlistHandler := NewWishlistHandler(deps.WishlistService, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.TokenValidator))
		r.Use(chimw.AllowContentType("application/json"))

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.List)
			r.Post("/", reviewHandler.Create)
			r.Get("/{id}", reviewHandler.Get)
			r.Patch("/{id}", reviewHandler.Update)
			r.With(middleware.RequireRole(middleware.RoleAdmin)).
				Delete("/{id}", reviewHandler.Delete)
		})

		r.Route("/products/{productId}", func(r chi.Router) {
			r.Get("/reviews", reviewHandler.ListByProduct)
			r.Get("/rating", reviewHandler.Rating)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.With(middleware.RequireRole(middleware.RoleAdmin)).
				Post("/", notificationHandler.Create)
			r.Get("/", notificationHandler.List)
			r.Get("/unread-count", notificationHandler.UnreadCount)
			r.Put("/read-all", notificationHandler.MarkAllRead)
			r.Put("/{id}/read", notificationHandler.MarkRead)
			r.Delete("/{id}", notificationHandler.Delete)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.List)
			r.Delete("/", wishlistHandler.Clear)
			r.Post("/{productId}", wishlistHandler.Add)
			r.Delete("/{entryId}", wishlistHandler.Remove)
			r.Delete("/product/{productId}", wishlistHandler.RemoveByProduct)
			r.Get("/contains/{productId}", wishlistHandler.Contains)
		})
	})

	return r
}
