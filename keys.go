package gallery

import "context"

// SessionCookie is the cookie slot carrying the signed session credential.
const SessionCookie = "accessToken"

type Key string

const (
	// CurrentSessionKey stashes the verified session claims for a request.
	CurrentSessionKey Key = "CurrentSessionKey"

	// CurrentUserKey stashes the currentUser for a session.
	CurrentUserKey Key = "CurrentUserKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "gallery context key: " + string(k)
}

// CurrentUserFromContext retrieves the value stashed under CurrentUserKey, if any.
func CurrentUserFromContext[T any](ctx context.Context) (T, bool) {
	val, ok := ctx.Value(CurrentUserKey).(T)
	return val, ok
}
