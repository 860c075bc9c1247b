package middleware

import (
	"context"
	"net/http"

	gallery "github.com/aguasmedia/gallery"
	"github.com/google/uuid"
)

// RequestID adds a uuid to the request context under gallery.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), gallery.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
