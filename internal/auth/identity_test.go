package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimKey(t *testing.T) {
	id := Identity{
		Issuer:  "https://idp.example.com",
		Subject: "12345",
	}

	assert.Equal(t, "https://idp.example.com#12345", id.ClaimKey())
}

func TestClaimKey_GoogleIssuer(t *testing.T) {
	id := Identity{
		Issuer:  "https://accounts.google.com",
		Subject: "110169484474386276334",
	}

	assert.Equal(t, "https://accounts.google.com#110169484474386276334", id.ClaimKey())
}

func TestCredential_IsZero(t *testing.T) {
	assert.True(t, Credential{}.IsZero())
	assert.False(t, Credential{IDToken: "tok"}.IsZero())
	assert.False(t, Credential{AccessToken: "tok"}.IsZero())
}
