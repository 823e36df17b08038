// Package identity defines verification of identity tokens issued by a third-party identity provider.
package identity

import "context"

// VerifiedIdentity is what the provider vouches for behind a token
type VerifiedIdentity struct {
	UID           string
	Phone         string
	Email         string
	EmailVerified bool
}

// Verifier checks an identity token with the provider
type Verifier interface {
	Verify(ctx context.Context, token string) (*VerifiedIdentity, error)
}
