package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/service"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	DecisionService *service.DecisionService
	StatsService    *service.StatsService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	comparisonHandler := handler.NewComparisonHandler(c.DecisionService, c.StatsService)
	statsHandler := handler.NewStatsHandler(c.StatsService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/compare", comparisonHandler.Compare).Methods("POST", "OPTIONS")
	// search must register before the {id} route
	v1.HandleFunc("/comparisons/search", comparisonHandler.Search).Methods("GET", "OPTIONS")
	v1.HandleFunc("/comparisons/{id}", comparisonHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/comparisons", comparisonHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/options/popular", statsHandler.PopularOptions).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	// Service banner
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Decision Intelligence Platform API"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
