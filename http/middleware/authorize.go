package middleware

import (
	"context"
	"net/http"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/http/resp"
)

// A SessionVerifier verifies a session credential string in the context of middleware.
type SessionVerifier interface {
	VerifySession(token string) (auth.SessionClaims, error)
}

// RequireSession gates a handler behind a valid session credential.
//
// The credential is read from the gallery.SessionCookie slot. A request
// without one is rejected 401; one whose credential fails verification is
// rejected 403. In both cases the wrapped handler is never called.
//
// On success the verified claims are stashed under
// gallery.CurrentSessionKey. The gate itself performs no I/O beyond the
// response: it is a pure function of cookie value, signing secret and
// clock.
//
// If d or verifier are nil, NoopAdapter returns and this middleware does nothing.
func RequireSession(d *resp.Responder, verifier SessionVerifier) Adapter {
	if d == nil || verifier == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(gallery.SessionCookie)
			if err != nil || cookie.Value == "" {
				d.Err(w, r, nil, resp.Code(http.StatusUnauthorized), resp.Msg("not authenticated"))
				return
			}

			claims, err := verifier.VerifySession(cookie.Value)
			if err != nil {
				d.Err(w, r, err, resp.Code(http.StatusForbidden), resp.Msg("invalid credential"))
				return
			}

			ctx := context.WithValue(r.Context(), gallery.CurrentSessionKey, claims)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
