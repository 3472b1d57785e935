package auth

// Credential is the opaque proof of identity presented by a caller: either
// an identity token directly, or an access token from which an identity
// token can be recovered via the identity provider. Credentials are never
// persisted; they live for the span of a single resolution attempt.
type Credential struct {
	IDToken     string
	AccessToken string
}

// IsZero reports whether no credential material was presented at all.
func (c Credential) IsZero() bool {
	return c.IDToken == "" && c.AccessToken == ""
}
