package resolver

import (
	"context"
	"fmt"

	"github.com/colinjeanne/mealplan/internal/auth"
	"github.com/colinjeanne/mealplan/internal/auth/cache"
	"github.com/colinjeanne/mealplan/internal/auth/verifier"
	"github.com/colinjeanne/mealplan/internal/logger"
	"github.com/colinjeanne/mealplan/internal/store"
)

// Config collects the collaborators an IdentityResolver orchestrates.
// All state lives in the collaborators; the resolver itself is safe for
// arbitrary concurrent use.
type Config struct {
	Verifier verifier.Verifier
	Claims   store.Claims

	// Exchanger recovers identity tokens from access-token credentials.
	// Optional; without it access-token credentials are rejected.
	Exchanger verifier.Exchanger

	// Cache short-circuits repeated verification of the same credential
	// literal. Optional; resolution is merely slower without it.
	Cache cache.Store

	// DisableProvisioning turns off lazy user creation: a verified
	// identity without an existing claim resolves to
	// auth.ErrUnknownIdentity instead of a new user.
	DisableProvisioning bool
}

// IdentityResolver converts presented credentials into local user ids,
// creating a user and its claim on first sight of a new federated
// identity.
type IdentityResolver struct {
	verifier  verifier.Verifier
	exchanger verifier.Exchanger
	claims    store.Claims
	cache     cache.Store
	provision bool
}

func New(cfg Config) *IdentityResolver {
	return &IdentityResolver{
		verifier:  cfg.Verifier,
		exchanger: cfg.Exchanger,
		claims:    cfg.Claims,
		cache:     cfg.Cache,
		provision: !cfg.DisableProvisioning,
	}
}

func (r *IdentityResolver) Resolve(
	ctx context.Context,
	credential auth.Credential,
) (string, error) {

	idToken, err := r.identityToken(ctx, credential)
	if err != nil {
		return "", err
	}

	if entry := r.cacheGet(ctx, idToken); entry != nil {
		if entry.Negative {
			return "", auth.ErrUnknownIdentity
		}
		return entry.UserID, nil
	}

	identity, err := r.verifier.Verify(ctx, idToken)
	if err != nil {
		// Never cached: a transient verification failure must look no
		// different from never having tried.
		return "", fmt.Errorf("%w: %v", auth.ErrInvalidCredential, err)
	}

	claimKey := identity.ClaimKey()

	userID, found, err := r.claims.FindClaim(ctx, claimKey)
	if err != nil {
		return "", err
	}

	if !found {
		if !r.provision {
			r.cachePut(ctx, idToken, cache.Entry{Negative: true})
			return "", auth.ErrUnknownIdentity
		}

		userID, err = r.claims.CreateUserAndClaim(ctx, claimKey)
		if err != nil {
			return "", err
		}

		logger.Info("user and claim created", map[string]any{
			"user_id": userID,
			"claim":   claimKey,
		})
	}

	r.cachePut(ctx, idToken, cache.Entry{UserID: userID})
	return userID, nil
}

// Validate reports whether credential still resolves to userID. It reuses
// the cache path, so it does not necessarily re-verify cryptographically.
func (r *IdentityResolver) Validate(
	ctx context.Context,
	userID string,
	credential auth.Credential,
) bool {
	resolved, err := r.Resolve(ctx, credential)
	return err == nil && resolved == userID
}

// identityToken extracts the identity token from the credential, exchanging
// an access token with the provider when that is all the caller presented.
func (r *IdentityResolver) identityToken(
	ctx context.Context,
	credential auth.Credential,
) (string, error) {

	if credential.IDToken != "" {
		return credential.IDToken, nil
	}

	if credential.AccessToken == "" || r.exchanger == nil {
		return "", auth.ErrMissingCredential
	}

	idToken, err := r.exchanger.IdentityToken(ctx, credential.AccessToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", auth.ErrMissingCredential, err)
	}
	if idToken == "" {
		return "", auth.ErrMissingCredential
	}

	return idToken, nil
}

// Cache access never fails a resolution; read errors count as misses and
// writes are best-effort.

func (r *IdentityResolver) cacheGet(ctx context.Context, token string) *cache.Entry {
	if r.cache == nil {
		return nil
	}

	entry, err := r.cache.Get(ctx, token)
	if err != nil {
		logger.Warn("verification cache read failed", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	return entry
}

func (r *IdentityResolver) cachePut(ctx context.Context, token string, e cache.Entry) {
	if r.cache == nil {
		return
	}

	if err := r.cache.Put(ctx, token, e); err != nil {
		logger.Warn("verification cache write failed", map[string]any{
			"error": err.Error(),
		})
	}
}
