package auth

import "errors"

// Failure taxonomy surfaced by the resolver. Every error returned to a
// caller wraps exactly one of these sentinels so callers can dispatch
// with errors.Is.
var (
	// ErrMissingCredential means no usable credential was presented or
	// extractable. Callers should treat this as "not authenticated".
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCredential means a credential was presented but failed
	// verification (malformed, expired, wrong signature or audience).
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrUnknownIdentity means a verified identity does not map to a
	// local user. Only returned when provisioning is disabled or from a
	// cached negative entry.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrStorageUnavailable means the claim/user store failed. It is kept
	// distinct from authentication failures so callers can retry instead
	// of rejecting the user.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
