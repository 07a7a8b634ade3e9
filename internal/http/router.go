package httpx

import (
	"encoding/json"
	"net/http"

	"witnessconsole/internal/config"
	"witnessconsole/internal/http/handlers"
	middlewarex "witnessconsole/internal/http/middleware"
	"witnessconsole/internal/views"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config      config.Cfg
	Views       *views.Service
	Screenshots http.Handler
}

// NewRouter creates the console HTTP router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middlewarex.AccessLog)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"backend": deps.Config.API.BaseURL,
			"history": deps.Views.HistoryEnabled(),
		})
	})

	r.Route("/views", func(r chi.Router) {
		r.Use(middlewarex.Notifications)

		r.Get("/dashboard", handlers.Dashboard(deps.Views))
		r.Get("/gallery", handlers.Gallery(deps.Views))
		r.Get("/table", handlers.Table(deps.Views))
		r.Get("/detail/{id}", handlers.Detail(deps.Views))
		r.Post("/detail/{id}/delete", handlers.DeleteResult(deps.Views))
		r.Post("/search", handlers.Search(deps.Views))
		r.Post("/submit", handlers.Submit(deps.Views))
		r.Get("/submissions", handlers.Submissions(deps.Views))
	})

	if deps.Screenshots != nil {
		r.Get("/screenshots/*", deps.Screenshots.ServeHTTP)
		r.Head("/screenshots/*", deps.Screenshots.ServeHTTP)
	}

	return r
}
