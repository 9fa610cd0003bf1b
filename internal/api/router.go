package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/marketbrief/internal/api/handlers"
	"github.com/wonny/marketbrief/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(summaryHandler *handlers.SummaryHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sector", summaryHandler.GetSectors).Methods("GET")
	api.HandleFunc("/market", summaryHandler.GetMarket).Methods("GET")
	api.HandleFunc("/news", summaryHandler.GetNews).Methods("GET")
	api.HandleFunc("/report/latest", summaryHandler.GetLatestReport).Methods("GET")
	api.Use(rateLimitMiddleware(5, 10))

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "marketbrief-api",
	})
}
