package gallery_test

import (
	"net/http"
	"testing"

	gallery "github.com/aguasmedia/gallery"
	"github.com/stretchr/testify/require"
)

func TestNewSessionCookie(t *testing.T) {
	// Arrange + Act
	c := gallery.NewSessionCookie("signed-credential", true)

	// Assert
	require.Equal(t, gallery.SessionCookie, c.Name)
	require.Equal(t, "signed-credential", c.Value)
	require.Equal(t, "/", c.Path)
	require.Equal(t, 3600, c.MaxAge)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteStrictMode, c.SameSite)

	// Act
	c = gallery.NewSessionCookie("signed-credential", false)

	// Assert
	require.False(t, c.Secure)
}

func TestExpiredSessionCookie(t *testing.T) {
	// Arrange + Act
	c := gallery.ExpiredSessionCookie(true)

	// Assert
	require.Equal(t, gallery.SessionCookie, c.Name)
	require.Zero(t, c.Value)
	require.Equal(t, -1, c.MaxAge)
}
