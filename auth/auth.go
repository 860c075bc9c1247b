package auth

import "context"

// An Identity is the stable identification a verified identity-provider
// token attests to.
type Identity struct {
	SubjectID string
	Email     string
}

// An IdentityVerifier validates a third-party identity assertion and
// extracts the Identity it attests to.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, rawToken string) (Identity, error)
}

// A SessionCodec issues and verifies the signed, time-limited session
// credentials the app hands out after login.
//
// There is deliberately no decode-without-verify entry point: claims only
// come out of VerifySession.
type SessionCodec interface {
	IssueSession(userID uint, role string) (string, error)
	VerifySession(token string) (SessionClaims, error)
}
