package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/colinjeanne/mealplan/internal/auth"
	"github.com/colinjeanne/mealplan/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Issuer is the issuer URL Google places in its identity tokens.
const Issuer = "https://accounts.google.com"

type Verifier struct {
	oauthConfig *oauth2.Config
	verifier    *oidc.IDTokenVerifier
}

func New(
	ctx context.Context,
	clientID string,
	clientSecret string,
) (*Verifier, error) {

	if clientID == "" || clientSecret == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes: []string{
			oidc.ScopeOpenID,
		},
	}

	return &Verifier{
		oauthConfig: oauthCfg,
		verifier:    verifier,
	}, nil
}

// Verify validates the raw identity token against Google's published keys
// and returns the verified identity.
func (v *Verifier) Verify(
	ctx context.Context,
	rawIDToken string,
) (*auth.Identity, error) {

	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("google id_token verification failed: %w", err)
	}

	if idToken.Subject == "" {
		return nil, errors.New("google id_token missing subject")
	}

	logger.Info("google oidc verified", map[string]any{
		"issuer":      idToken.Issuer,
		"audience":    idToken.Audience,
		"expiry_unix": idToken.Expiry.Unix(),
	})

	return &auth.Identity{
		Issuer:  idToken.Issuer,
		Subject: idToken.Subject,
	}, nil
}

// IdentityToken recovers the identity token bundled with an access-token
// credential. Callers sometimes present the provider's whole token response
// rather than a bare access token; that form is accepted without a network
// round trip. A bare access token goes through the token source, which
// yields an id_token only when Google returns one alongside it.
func (v *Verifier) IdentityToken(
	ctx context.Context,
	accessToken string,
) (string, error) {

	var blob struct {
		IDToken string `json:"id_token"`
	}
	if err := json.Unmarshal([]byte(accessToken), &blob); err == nil && blob.IDToken != "" {
		return blob.IDToken, nil
	}

	src := v.oauthConfig.TokenSource(ctx, &oauth2.Token{
		AccessToken: accessToken,
	})

	token, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("google token source failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", errors.New("google did not return id_token")
	}

	return rawIDToken, nil
}
