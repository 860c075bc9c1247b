package gallery

import "net/http"

// NewSessionCookie shapes the cookie carrying a freshly issued session
// credential: HttpOnly, SameSite=Strict, aligned to the credential's
// 1-hour lifetime.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	}
}

// ExpiredSessionCookie shapes a cookie clearing the session slot.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	c := NewSessionCookie("", secure)
	c.MaxAge = -1
	return c
}
