package gallery_test

import (
	"testing"

	gallery "github.com/aguasmedia/gallery"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentValid(t *testing.T) {
	// Arrange + Act + Assert
	for _, env := range []gallery.Environment{
		gallery.Development,
		gallery.Production,
		gallery.Review,
		gallery.Staging,
		gallery.Testing,
	} {
		require.Nil(t, env.Valid())
	}

	require.ErrorIs(t, gallery.Environment("banana").Valid(), gallery.ErrNotValid)
}

func TestEnvironmentSecureCookies(t *testing.T) {
	// Arrange + Act + Assert
	require.True(t, gallery.Production.SecureCookies())
	require.True(t, gallery.Review.SecureCookies())
	require.True(t, gallery.Staging.SecureCookies())
	require.False(t, gallery.Development.SecureCookies())
	require.False(t, gallery.Testing.SecureCookies())
}
