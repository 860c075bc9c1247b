package handler

import (
	"errors"
	"net/http"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/auth"
	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/logger"
)

// AuthHandler serves login, logout and the session-role lookup.
type AuthHandler struct {
	Handler
	verifier auth.IdentityVerifier
	codec    auth.SessionCodec
	users    UserDirectory
}

func NewAuth(h Handler, verifier auth.IdentityVerifier, codec auth.SessionCodec, users UserDirectory) *AuthHandler {
	return &AuthHandler{Handler: h, verifier: verifier, codec: codec, users: users}
}

// GoogleLogin exchanges a Google ID token for a session credential.
//
// A credential is only ever issued when the token verifies against the
// configured client ID and the email it attests to has a directory row.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token" validate:"required"`
	}
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("token required"))
		return
	}

	identity, err := h.verifier.VerifyIdentity(r.Context(), body.Token)
	if errors.Is(err, auth.ErrMissingClaim) {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("invalid user"))
		return
	}

	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusUnauthorized), resp.Msg("authentication failed"))
		return
	}

	u, err := h.users.ByEmail(identity.Email)
	if errors.Is(err, gallery.ErrNotExist) {
		h.l.Warn("login denied: no directory row", &logger.LogContext{
			Request: r,
			Data:    map[string]interface{}{"email": identity.Email},
		})
		h.d.Err(w, r, nil, resp.Code(http.StatusForbidden), resp.Msg("user not authorized"))
		return
	}

	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("something went wrong"))
		return
	}

	token, err := h.codec.IssueSession(u.ID, u.Role)
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("something went wrong"))
		return
	}

	http.SetCookie(w, gallery.NewSessionCookie(token, h.env.SecureCookies()))

	data := map[string]interface{}{"success": true, "token": token}
	if u.Role != "" {
		data["role"] = u.Role
	}

	h.d.Json(w, r, resp.Data(data))
}

// Logout clears the session cookie. Logging out an already-logged-out
// session is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, gallery.ExpiredSessionCookie(h.env.SecureCookies()))
	h.d.Json(w, r, resp.Data(map[string]interface{}{"success": true}))
}

// GetRole reports the role carried by the verified session credential.
func (h *AuthHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(gallery.CurrentSessionKey).(auth.SessionClaims)
	if !ok {
		h.d.Err(w, r, nil, resp.Code(http.StatusUnauthorized), resp.Msg("not authenticated"))
		return
	}

	h.d.Json(w, r, resp.Data(map[string]interface{}{"role": claims.Role}))
}
