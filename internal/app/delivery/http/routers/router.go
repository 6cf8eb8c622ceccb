package routers

import (
	"net/http"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// SetupRoutes attaches the liveness and readiness probes. The worker has no
// request-driven surface beyond these.
func SetupRoutes(router *chi.Mux, internalConfig *config.InternalConfig, ready func() bool) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	maxRequests := internalConfig.App.MaxHealthRequests
	if maxRequests <= 0 {
		maxRequests = 10
	}
	router.Use(httprate.LimitByIP(maxRequests, time.Second))

	router.Get("/is_alive", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"alive"}`))
	})

	router.Get("/is_ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		if !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"not_ready"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})
}
