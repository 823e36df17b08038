package connector

import (
	"context"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/identity"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
)

// insecureVerifier trusts tokens of the form "phone:<E164>" or "email:<address>".
// Development only.
type insecureVerifier struct{}

// NewInsecureVerifier creates a Verifier that accepts self-asserted tokens
func NewInsecureVerifier() identity.Verifier {
	return insecureVerifier{}
}

func (insecureVerifier) Verify(_ context.Context, token string) (*identity.VerifiedIdentity, error) {
	kind, value, ok := strings.Cut(strings.TrimSpace(token), ":")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return nil, apperror.Unauthorized("invalid identity token")
	}

	switch kind {
	case "phone":
		return &identity.VerifiedIdentity{UID: "insecure-" + value, Phone: value}, nil
	case "email":
		email := strings.ToLower(value)
		return &identity.VerifiedIdentity{UID: "insecure-" + email, Email: email, EmailVerified: true}, nil
	default:
		return nil, apperror.Unauthorized("invalid identity token")
	}
}

// NewVerifier selects the identity Verifier for the configured provider
func NewVerifier(settings *config.IdentitySettings, environment string, logger logger.Logger) (identity.Verifier, error) {
	switch settings.Provider {
	case config.IdentityToolkitProvider:
		return NewIdentityToolkitVerifier(settings, logger)
	case config.InsecureIdentityProvider:
		if environment == config.EnvironmentProduction {
			return nil, apperror.Validation("the insecure identity provider is not allowed in production")
		}
		logger.Warn("using the insecure identity provider, tokens are not verified")
		return NewInsecureVerifier(), nil
	default:
		return nil, apperror.Validation("unsupported identity provider: %s", settings.Provider)
	}
}
