// Package adapthttp is the driving HTTP adapter that routes requests to
// application services.
package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"consumption/internal/app"
)

// Server routes HTTP requests to the tracker and totals services.
type Server struct {
	tracker *app.TrackerService
	totals  *app.TotalsService
	log     *zap.SugaredLogger
}

// New creates a Server wired to the given application services.
func New(tracker *app.TrackerService, totals *app.TotalsService, log *zap.SugaredLogger) *Server {
	return &Server{tracker: tracker, totals: totals, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/items", s.handleItems)
	api.HandleFunc("/items/list", s.handleItemsList)
	api.HandleFunc("/items/delete-at", s.handleDeleteAt)
	api.HandleFunc("/items/delete-by-name", s.handleDeleteByName)

	api.HandleFunc("/totals", s.handleTotals)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
