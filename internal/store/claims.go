package store

import "context"

// Claims is the durable mapping from a federated claim key to the local
// user that owns it: the source of truth for whether an external identity
// has been seen before.
type Claims interface {
	// FindClaim looks up the user owning the given claim key.
	FindClaim(ctx context.Context, key string) (userID string, found bool, err error)

	// CreateUserAndClaim creates a new user and its originating claim as a
	// single atomic unit. When a concurrent caller wins the race for the
	// same key, implementations return the winner's user instead of an
	// error.
	CreateUserAndClaim(ctx context.Context, key string) (userID string, err error)
}
