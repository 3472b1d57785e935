package resolver

import (
	"context"

	"github.com/colinjeanne/mealplan/internal/auth"
)

// Resolver determines which internal user a presented credential belongs
// to. It is the ONLY place where identity-to-user mapping logic lives.
type Resolver interface {
	// Resolve converts a credential into a local user id. Failures wrap
	// one of the sentinels in the auth package.
	Resolve(ctx context.Context, credential auth.Credential) (userID string, err error)

	// Validate reports whether the credential still resolves to userID.
	Validate(ctx context.Context, userID string, credential auth.Credential) bool
}
