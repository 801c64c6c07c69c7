package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"ytresolve/handlers"
)

// corsMiddleware handles CORS for API routes
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware assigns an X-Request-ID when the caller did not send
// one, so log lines can be correlated with responses.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// Register mounts API endpoints onto the provided router.
func Register(r *mux.Router, mediaHandler *handlers.MediaHandler) {
	r.HandleFunc("/", mediaHandler.Alive).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)
	api.Use(requestIDMiddleware)

	api.HandleFunc("/video-data", mediaHandler.VideoData).Methods(http.MethodGet)
	api.HandleFunc("/formats", mediaHandler.Formats).Methods(http.MethodGet)
	api.HandleFunc("/audio", mediaHandler.Audio).Methods(http.MethodGet)
	api.HandleFunc("/video", mediaHandler.Video).Methods(http.MethodGet)
	api.HandleFunc("/search", mediaHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/cache/clear", mediaHandler.ClearCache).Methods(http.MethodPost)
}
