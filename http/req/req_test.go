package req_test

import (
	"net/url"
	"strings"
	"testing"

	gallery "github.com/aguasmedia/gallery"
	"github.com/aguasmedia/gallery/http/req"
	"github.com/aguasmedia/gallery/user"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	// Arrange
	p := req.NewParser()
	var u user.User

	// Act
	err := p.ParseBody(strings.NewReader(`{"name":"Ada","email":"a@x.com","role":"admin","status":"active"}`), &u)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "Ada", u.Name)
	require.Equal(t, user.StatusActive, u.Status)

	// Arrange
	u = user.User{}

	// Act
	err = p.ParseBody(strings.NewReader(`{"name":"Ada","email":"not-an-email","status":"active"}`), &u)

	// Assert
	require.ErrorIs(t, err, gallery.ErrNotValid)

	// Act
	err = p.ParseBody(strings.NewReader(`{"name":`), &u)

	// Assert
	require.ErrorIs(t, err, gallery.ErrBadFormat)
}

func TestParseQueryParams(t *testing.T) {
	// Arrange
	p := req.NewParser()
	var params struct {
		ClientID string `schema:"clientId" validate:"required"`
	}

	// Act
	err := p.ParseQueryParams(url.Values{"clientId": []string{"acme"}}, &params)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "acme", params.ClientID)

	// Arrange
	params.ClientID = ""

	// Act
	err = p.ParseQueryParams(url.Values{}, &params)

	// Assert
	require.ErrorIs(t, err, gallery.ErrNotValid)
}
