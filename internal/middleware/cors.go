package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the browser client on any origin to call the API.
func CORS(next http.Handler) http.Handler {
	return NewCORS(nil)(next)
}

// NewCORS restricts allowed origins; an empty list allows all.
func NewCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "Content-Type", "X-Request-Id"},
		MaxAge:         600,
	})
	return c.Handler
}
