package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS sets "Access-Control-Allowed" style headers on a response for the
// configured client origin, with credentials allowed so the session cookie
// travels.
func CORS(origin string) Adapter {
	if origin == "" {
		return NoopAdapter
	}

	return Adapter(handlers.CORS(
		handlers.AllowedHeaders([]string{
			"Content-Type",
		}),
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
			http.MethodPost,
			http.MethodPut,
		}),
		handlers.AllowCredentials(),
	))
}
