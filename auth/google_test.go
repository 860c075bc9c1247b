package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestVerifyIdentity(t *testing.T) {
	// Arrange
	s, err := NewService("test-signing-key", "test-client-id")
	require.Nil(t, err)

	var gotAudience string
	s.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		return &idtoken.Payload{
			Subject: "10987",
			Claims:  map[string]interface{}{"email": "a@x.com"},
		}, nil
	}

	// Act
	identity, err := s.VerifyIdentity(context.Background(), "raw-id-token")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "test-client-id", gotAudience)
	require.Equal(t, "10987", identity.SubjectID)
	require.Equal(t, "a@x.com", identity.Email)
}

func TestVerifyIdentityInvalidToken(t *testing.T) {
	// Arrange
	s, err := NewService("test-signing-key", "test-client-id")
	require.Nil(t, err)

	s.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: audience provided does not match aud claim in the JWT")
	}

	// Act
	_, err = s.VerifyIdentity(context.Background(), "raw-id-token")

	// Assert
	require.ErrorIs(t, err, ErrNotValid)
}

func TestVerifyIdentityMissingEmail(t *testing.T) {
	// Arrange
	s, err := NewService("test-signing-key", "test-client-id")
	require.Nil(t, err)

	s.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "10987", Claims: map[string]interface{}{}}, nil
	}

	// Act
	_, err = s.VerifyIdentity(context.Background(), "raw-id-token")

	// Assert
	require.ErrorIs(t, err, ErrMissingClaim)
}
