// Package httpapi exposes the planning engine over HTTP: a JSON API and a
// browser form.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rpgo/pension-advisor/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Pension Advisor API"

// Planner builds a plan from a validated profile.
type Planner interface {
	GeneratePlan(ctx context.Context, profile domain.UserProfile) (domain.Plan, error)
}

// Options configures the router.
type Options struct {
	RateLimit   float64 // requests per second across all clients
	RateBurst   int
	CORSOrigins []string
	Logger      *zap.Logger
}

type server struct {
	planner Planner
	log     *zap.Logger
	now     func() time.Time
}

// NewRouter wires the routes and middleware.
func NewRouter(planner Planner, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.L()
	}
	s := &server{planner: planner, log: log.Named("http"), now: time.Now}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.RateLimit > 0 {
		burst := max(opts.RateBurst, 1)
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	r.Get("/health", s.handleHealth)
	r.Post("/api/plan", s.handlePlan)
	r.Get("/", s.handleForm)
	r.Post("/form", s.handleFormSubmit)
	return r
}
