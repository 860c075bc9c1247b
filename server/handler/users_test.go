package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aguasmedia/gallery/server/handler"
	"github.com/aguasmedia/gallery/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func usersRouter(h *handler.UsersHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/users", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestUsersList(t *testing.T) {
	// Arrange
	dir := &stubDirectory{users: []user.User{
		{ID: 1, Name: "Ada", Email: "a@x.com", Status: user.StatusActive},
		{ID: 2, Name: "Grace", Email: "g@x.com", Status: user.StatusRevoked},
	}}
	r := usersRouter(handler.NewUsers(newTestHandler(), dir))

	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	require.Contains(t, w.Body.String(), `"email":"g@x.com"`)
}

func TestUsersGet(t *testing.T) {
	// Arrange
	dir := &stubDirectory{users: []user.User{{ID: 1, Name: "Ada", Email: "a@x.com", Status: user.StatusActive}}}
	r := usersRouter(handler.NewUsers(newTestHandler(), dir))

	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/1", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Ada"`)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/banana", nil))

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsersCreate(t *testing.T) {
	// Arrange
	dir := &stubDirectory{}
	r := usersRouter(handler.NewUsers(newTestHandler(), dir))

	w := httptest.NewRecorder()
	body := `{"name":"Ada","email":"a@x.com","role":"admin","status":"active"}`

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, dir.created)
	require.Equal(t, "Ada", dir.created.Name)
	require.Contains(t, w.Body.String(), `"id":99`)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ada"}`)))

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsersUpdate(t *testing.T) {
	// Arrange
	dir := &stubDirectory{users: []user.User{{ID: 1, Name: "Ada", Email: "a@x.com", Status: user.StatusActive}}}
	r := usersRouter(handler.NewUsers(newTestHandler(), dir))

	w := httptest.NewRecorder()
	body := `{"name":"Ada L.","email":"a@x.com","role":"admin","status":"active"}`

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, dir.updated)
	require.Equal(t, uint(1), dir.updated.ID)
	require.Equal(t, "Ada L.", dir.updated.Name)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/42", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersDelete(t *testing.T) {
	// Arrange
	dir := &stubDirectory{users: []user.User{{ID: 1, Name: "Ada", Email: "a@x.com", Status: user.StatusActive}}}
	r := usersRouter(handler.NewUsers(newTestHandler(), dir))

	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint(1), dir.deleted)
	require.JSONEq(t, `{"message":"user deleted"}`, w.Body.String())

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/42", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}
