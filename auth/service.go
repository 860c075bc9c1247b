package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/api/idtoken"
)

// validatorFunc matches the signature of idtoken.Validate.
type validatorFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Service is an implementation of the IdentityVerifier and SessionCodec
// interfaces defined in this package, backed by Google's token endpoint
// and HS256-signed session credentials.
type Service struct {
	audience string
	key      []byte
	parser   *jwt.Parser
	ttl      time.Duration
	validate validatorFunc
	now      func() time.Time
}

func NewService(jwtKey, googleClientID string) (*Service, error) {
	if jwtKey == "" || googleClientID == "" {
		return nil, fmt.Errorf(`%w: config cannot be ""`, ErrNotValid)
	}

	return &Service{
		audience: googleClientID,
		key:      []byte(jwtKey),
		parser:   &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}},
		ttl:      sessionTTL,
		validate: idtoken.Validate,
		now:      time.Now,
	}, nil
}
