package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest/handler"
	"pulsecheck/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	QuestionService *service.QuestionService
	CheckinService  *service.CheckinService
	DefaultMax      int
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	questionHandler := handler.NewQuestionHandler(c.QuestionService, c.DefaultMax)
	checkinHandler := handler.NewCheckinHandler(c.CheckinService)

	r.Use(corsMiddleware)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/users/{userId}/questions", questionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/users/{userId}/checkins", checkinHandler.CreateCheckin).Methods("POST", "OPTIONS")
	v1.HandleFunc("/users/{userId}/journal", checkinHandler.CreateJournal).Methods("POST", "OPTIONS")
	v1.HandleFunc("/users/{userId}/responses", checkinHandler.CreateResponse).Methods("POST", "OPTIONS")
	v1.HandleFunc("/users/{userId}/focus-areas", checkinHandler.SetFocusAreas).Methods("PUT", "OPTIONS")

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
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
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
