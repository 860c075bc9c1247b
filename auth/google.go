package auth

import (
	"context"
	"fmt"
	"time"
)

// verifyTimeout caps how long a single identity-provider round trip may take.
const verifyTimeout = 10 * time.Second

// VerifyIdentity validates a Google-issued ID token against the configured
// client ID, then extracts the email and subject the token attests to.
//
// A token failing signature, audience or expiry checks yields ErrNotValid.
// A valid token missing an email claim yields ErrMissingClaim.
func (s *Service) VerifyIdentity(ctx context.Context, rawToken string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	payload, err := s.validate(ctx, rawToken, s.audience)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("%w: email", ErrMissingClaim)
	}

	return Identity{SubjectID: payload.Subject, Email: email}, nil
}
