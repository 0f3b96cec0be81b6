package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/store"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/tracker"
)

// NewRouter creates the chi router with all routes and middleware.
// frontendDir, when it exists, backs the static dashboard pages; when
// absent the backend runs API-only.
func NewRouter(
	db *store.DB,
	svc *tracker.Service,
	schedules *store.ScheduleStore,
	frontendDir string,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	healthH := NewHealthHandler(db)
	sessionH := NewSessionHandler(svc)
	scheduleH := NewScheduleHandler(schedules)
	recommendationH := NewRecommendationHandler(svc)

	r.Get("/api/health", healthH.Health)

	r.Post("/session/start", sessionH.Start)
	r.Post("/session/stop", sessionH.Stop)
	r.Get("/session/{id}", sessionH.Get)
	r.Get("/sessions", sessionH.List)

	r.Post("/schedule", scheduleH.Submit)
	r.Get("/schedule/{id}", scheduleH.Get)

	r.Get("/recommendation", recommendationH.Get)

	if frontendDir != "" {
		if info, err := os.Stat(frontendDir); err == nil && info.IsDir() {
			pages := map[string]string{
				"/":         "home.html",
				"/session":  "session.html",
				"/schedule": "schedule.html",
				"/history":  "history.html",
			}
			for route, file := range pages {
				path := filepath.Join(frontendDir, file)
				r.Get(route, servePage(path))
			}
		} else {
			logger.Info("frontend directory not found, serving API only", "dir", frontendDir)
		}
	}

	return r
}

func servePage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
