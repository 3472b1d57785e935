package verifier

import (
	"context"

	"github.com/colinjeanne/mealplan/internal/auth"
)

// Verifier defines the contract for checking an identity token against its
// issuer. Implementations return identity facts only and must not perform
// user creation, linking, or caching.
type Verifier interface {
	// Verify validates the raw identity token (signature, expiry,
	// audience) and returns the verified identity.
	Verify(ctx context.Context, rawIDToken string) (*auth.Identity, error)
}

// Exchanger recovers an identity token from an access-token credential by
// calling back into the identity provider.
type Exchanger interface {
	IdentityToken(ctx context.Context, accessToken string) (string, error)
}
