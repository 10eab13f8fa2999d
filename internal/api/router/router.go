package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bidedigitala/contact-service/internal/contact"
	httpmiddleware "github.com/bidedigitala/contact-service/internal/http/middleware"
	"github.com/bidedigitala/contact-service/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ContactHandler     *contact.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// POST rate limit; disabled when RateLimitRPS <= 0.
	RateLimitRPS   float64
	RateLimitBurst int

	// PublicDir serves the prebuilt static site when set.
	PublicDir string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.ContactHandler != nil {
		r.Get("/api/contact", cfg.ContactHandler.Liveness)
		post := r.With()
		if cfg.RateLimitRPS > 0 {
			post = r.With(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		post.Post("/api/contact", cfg.ContactHandler.Submit)
	}

	// The decap admin bundle lives under /admin/ in the static site;
	// both spellings redirect into its index.
	r.Get("/admin", redirectAdmin)
	r.Head("/admin", redirectAdmin)
	r.Get("/admin/", redirectAdmin)
	r.Head("/admin/", redirectAdmin)

	if cfg.PublicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func redirectAdmin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/index.html", http.StatusFound)
}
