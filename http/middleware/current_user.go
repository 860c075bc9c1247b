package middleware

import (
	"context"
	"errors"
	"net/http"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/http/resp"
)

// The User defines attributes about a user in the context of middleware.
type User interface {
	HasAccess() bool
}

// UserStorer defines how to retrieve a User by an ID in the context of middleware.
type UserStorer func(id uint) (User, error)

// CurrentUser resolves the session claims left by RequireSession into the
// directory row they point at, stashing it under gallery.CurrentUserKey.
//
// A row that no longer exists, or one whose access has been revoked,
// rejects the request 401 and clears the session cookie: a live credential
// is not enough once the directory no longer vouches for its user.
//
// If d or storer are nil, NoopAdapter returns and this middleware does nothing.
func CurrentUser(d *resp.Responder, storer UserStorer) Adapter {
	if d == nil || storer == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(gallery.CurrentSessionKey).(auth.SessionClaims)
			if !ok {
				d.Err(w, r, nil, resp.Code(http.StatusUnauthorized), resp.Msg("not authenticated"))
				return
			}

			u, err := storer(claims.UserID)
			if errors.Is(err, gallery.ErrNotExist) {
				http.SetCookie(w, gallery.ExpiredSessionCookie(r.TLS != nil))
				d.Err(w, r, err, resp.Code(http.StatusUnauthorized), resp.Msg("not authenticated"))
				return
			}

			if err != nil {
				d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("something went wrong"))
				return
			}

			if !u.HasAccess() {
				http.SetCookie(w, gallery.ExpiredSessionCookie(r.TLS != nil))
				d.Err(w, r, nil, resp.Code(http.StatusUnauthorized), resp.Msg("not authenticated"))
				return
			}

			w.Header().Add("Cache-control", "no-store")
			w.Header().Add("Pragma", "no-cache")

			ctx := context.WithValue(r.Context(), gallery.CurrentUserKey, u)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
