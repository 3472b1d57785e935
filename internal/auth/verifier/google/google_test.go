package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingConfig(t *testing.T) {
	_, err := New(context.Background(), "", "secret")
	assert.Error(t, err)

	_, err = New(context.Background(), "client", "")
	assert.Error(t, err)
}

func TestIdentityToken_TokenResponseBlob(t *testing.T) {
	// A full token response carries the id_token inline; no provider
	// call is needed to recover it.
	v := &Verifier{}

	raw, err := v.IdentityToken(
		context.Background(),
		`{"access_token":"at","id_token":"header.payload.signature"}`,
	)

	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", raw)
}

func TestIdentityToken_IgnoresExtraBlobFields(t *testing.T) {
	v := &Verifier{}

	raw, err := v.IdentityToken(
		context.Background(),
		`{"id_token":"inline-token","expires_in":3600,"token_type":"Bearer"}`,
	)

	require.NoError(t, err)
	assert.Equal(t, "inline-token", raw)
}
