package auth

// ClaimSeparator joins the claim issuer with the issuer-scoped subject.
// The issuer of an identity token is a URL which contains neither a query
// string nor a fragment, so this character can never occur inside it.
const ClaimSeparator = "#"

// Identity represents a verified external identity assertion returned by a
// token verifier. It contains facts only, no decisions.
type Identity struct {
	Issuer  string // token issuer URL, e.g. "https://accounts.google.com"
	Subject string // issuer-scoped unique user identifier (sub)
}

// ClaimKey derives the durable key that identifies this federated identity
// across all time. Stored claims use this exact construction.
func (i Identity) ClaimKey() string {
	return i.Issuer + ClaimSeparator + i.Subject
}
