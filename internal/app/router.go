package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/roster-hq/roster/internal/observability"
	"github.com/roster-hq/roster/internal/platform/httpx"
	"github.com/roster-hq/roster/internal/users"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	UsersHandler *users.Handler
	Metrics      *observability.Metrics
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// NewRouter constructs the chi.Router with Roster defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the Roster user API",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   Version,
		})
	})

	if params.Metrics != nil {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			params.Metrics.Handler().ServeHTTP(w, r)
		})
	}

	params.UsersHandler.MountRoutes(r)

	return r
}
