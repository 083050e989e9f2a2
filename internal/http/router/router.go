package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/http/handlers"
	"ecodeli-dispatch/internal/http/middleware"
	"ecodeli-dispatch/internal/http/middleware/ratelimit"
	"ecodeli-dispatch/internal/logx"
)

const requestTimeout = 5 * time.Second

// Deps holds everything the router mounts. RateLimit may be nil.
type Deps struct {
	Logger       logx.Logger
	Base         *handlers.Handlers
	Availability *handlers.AvailabilityHandler
	Routes       *handlers.RouteHandler
	Announcement *handlers.AnnouncementHandler
	Application  *handlers.ApplicationHandler
	Storage      *handlers.StorageHandler
	RateLimit    *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.Identity)
	r.Use(middleware.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	authenticated := middleware.RequireRoles()
	publishers := middleware.RequireRoles(domain.RoleProvider, domain.RoleDeliverer, domain.RoleAdmin)
	deliverers := middleware.RequireRoles(domain.RoleDeliverer)
	dispatchers := middleware.RequireRoles(domain.RoleDeliverer, domain.RoleAdmin)
	reviewers := middleware.RequireRoles(domain.RoleClient, domain.RoleAdmin)

	r.Route("/availabilities", func(r chi.Router) {
		r.With(publishers).Post("/", d.Availability.Create)
		r.With(authenticated).Get("/{id}", d.Availability.Get)
		r.With(authenticated).Get("/{id}/occurrences", d.Availability.Occurrences)
		r.With(publishers).Post("/{id}/regenerate", d.Availability.Regenerate)
	})

	r.Route("/routes", func(r chi.Router) {
		r.With(deliverers).Post("/", d.Routes.Create)
		r.With(dispatchers).Get("/", d.Routes.List)
		r.With(authenticated).Get("/{id}", d.Routes.Get)
		r.With(dispatchers).Get("/{id}/matches", d.Routes.Matches)
	})

	r.Route("/announcements", func(r chi.Router) {
		r.With(dispatchers).Get("/search", d.Announcement.Search)
		r.With(deliverers).Post("/{id}/applications", d.Announcement.Apply)
	})

	r.With(reviewers).Post("/applications/{id}/resolve", d.Application.Resolve)
	r.With(authenticated).Get("/storage/nearby", d.Storage.Nearby)

	return r
}
