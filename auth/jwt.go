package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// sessionTTL bounds the lifetime of every issued session credential.
const sessionTTL = time.Hour

// SessionClaims is the payload carried by a session credential.
type SessionClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IssueSession signs a session credential for the given user, expiring
// sessionTTL from now.
func (s *Service) IssueSession(userID uint, role string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return signed, nil
}

// VerifySession checks the signature and expiry of a session credential,
// returning the claims it carries on success.
//
// Failures distinguish ErrMalformed, ErrExpired and ErrBadSignature so
// callers can log the kind; none of the detail belongs in a client
// response.
func (s *Service) VerifySession(token string) (SessionClaims, error) {
	var claims SessionClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err == nil {
		return claims, nil
	}

	var vErr *jwt.ValidationError
	if errors.As(err, &vErr) {
		switch {
		case vErr.Errors&jwt.ValidationErrorMalformed != 0:
			return SessionClaims{}, fmt.Errorf("%w: %s", ErrMalformed, err)
		case vErr.Errors&jwt.ValidationErrorExpired != 0:
			return SessionClaims{}, fmt.Errorf("%w: %s", ErrExpired, err)
		case vErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
			return SessionClaims{}, fmt.Errorf("%w: %s", ErrBadSignature, err)
		}
	}

	return SessionClaims{}, fmt.Errorf("%w: %s", ErrNotValid, err)
}
