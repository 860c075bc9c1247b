package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aguasmedia/gallery/http/middleware"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/logger"
	"github.com/stretchr/testify/require"
)

func teapotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}
}

func newTestResponder() *resp.Responder {
	return resp.NewResponder(logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0))))
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(teapotHandler(), tag("first"), tag("second")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second"}, order)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestNoopAdapter(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.NoopAdapter(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
