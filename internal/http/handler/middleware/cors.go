package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware allows the dashboard front end, served from origins, to call the API.
func NewCORSMiddleware(origins []string) *CORSMiddleware {
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "AUTH_TOKEN", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
		}),
	}
}

func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
