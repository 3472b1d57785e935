package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a verified token may short-circuit
// re-verification.
const DefaultTTL = 10 * time.Minute

// Entry is a cached resolution outcome for one credential literal.
// Negative entries record that a verified identity had no local user at
// resolution time.
type Entry struct {
	UserID   string `json:"user_id,omitempty"`
	Negative bool   `json:"negative,omitempty"`
}

// Store maps a credential's literal token value to a previously resolved
// outcome for a bounded window. Expiry is absolute, fixed at write time.
// Stores are best-effort: losing every entry must only cost latency,
// never correctness.
type Store interface {
	// Get returns the entry for token, or nil when absent or expired.
	Get(ctx context.Context, token string) (*Entry, error)

	// Put records the outcome for token until the TTL deadline. Concurrent
	// puts of the same token are last-write-wins; both writers derived the
	// same value, so the race is benign.
	Put(ctx context.Context, token string, e Entry) error
}
