package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/http/middleware"
	"github.com/stretchr/testify/require"
)

type testUser bool

func (u testUser) HasAccess() bool { return bool(u) }

func withClaims(r *http.Request, userID uint) *http.Request {
	claims := auth.SessionClaims{UserID: userID}
	return r.Clone(context.WithValue(r.Context(), gallery.CurrentSessionKey, claims))
}

func TestCurrentUserNilDeps(t *testing.T) {
	// Arrange + Act
	adpt := middleware.CurrentUser(nil, nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", adpt))
}

func TestCurrentUserNoSession(t *testing.T) {
	// Arrange
	storer := func(id uint) (middleware.User, error) { return testUser(true), nil }
	adpt := middleware.CurrentUser(newTestResponder(), storer)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	adpt(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUserGone(t *testing.T) {
	// Arrange
	storer := func(id uint) (middleware.User, error) {
		return nil, fmt.Errorf("%w: User %d", gallery.ErrNotExist, id)
	}
	adpt := middleware.CurrentUser(newTestResponder(), storer)

	w := httptest.NewRecorder()
	r := withClaims(httptest.NewRequest(http.MethodGet, "https://example.com", nil), 7)

	// Act
	adpt(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, gallery.SessionCookie, cookies[0].Name)
	require.Equal(t, -1, cookies[0].MaxAge)
}

func TestCurrentUserRevoked(t *testing.T) {
	// Arrange
	storer := func(id uint) (middleware.User, error) { return testUser(false), nil }
	adpt := middleware.CurrentUser(newTestResponder(), storer)

	w := httptest.NewRecorder()
	r := withClaims(httptest.NewRequest(http.MethodGet, "https://example.com", nil), 7)

	// Act
	adpt(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUserStoreFailure(t *testing.T) {
	// Arrange
	storer := func(id uint) (middleware.User, error) {
		return nil, fmt.Errorf("%w: connection refused", gallery.ErrUnexpected)
	}
	adpt := middleware.CurrentUser(newTestResponder(), storer)

	w := httptest.NewRecorder()
	r := withClaims(httptest.NewRequest(http.MethodGet, "https://example.com", nil), 7)

	// Act
	adpt(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCurrentUserAuthorized(t *testing.T) {
	// Arrange
	storer := func(id uint) (middleware.User, error) { return testUser(true), nil }
	adpt := middleware.CurrentUser(newTestResponder(), storer)

	var gotUser middleware.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = r.Context().Value(gallery.CurrentUserKey).(middleware.User)
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r := withClaims(httptest.NewRequest(http.MethodGet, "https://example.com", nil), 7)

	// Act
	adpt(next).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, testUser(true), gotUser)
	require.Equal(t, "no-store", w.Header().Get("Cache-control"))
}
