package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/identity"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	json "github.com/goccy/go-json"
)

const defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com"

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
		PhoneNumber   string `json:"phoneNumber"`
	} `json:"users"`
}

// identityToolkitVerifier checks ID tokens with the Identity Toolkit accounts:lookup endpoint
type identityToolkitVerifier struct {
	client   *http.Client
	endpoint string
	logger   logger.Logger
}

// NewIdentityToolkitVerifier creates a Verifier that calls {base_url}/v1/accounts:lookup
func NewIdentityToolkitVerifier(settings *config.IdentitySettings, logger logger.Logger) (identity.Verifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	base := settings.BaseURL
	if base == "" {
		base = defaultIdentityToolkitURL
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	endpoint := strings.TrimRight(base, "/") + "/v1/accounts:lookup?key=" + url.QueryEscape(settings.APIKey)
	return &identityToolkitVerifier{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

func (v *identityToolkitVerifier) Verify(ctx context.Context, token string) (*identity.VerifiedIdentity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperror.Unauthorized("identity token is required")
	}

	body, err := json.Marshal(lookupRequest{IDToken: token})
	if err != nil {
		return nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, apperror.Unavailable(err, "identity provider unreachable")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.Unavailable(err, "failed to read identity provider response")
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, apperror.Unavailable(fmt.Errorf("status %d", resp.StatusCode), "identity provider failed")
	case resp.StatusCode >= http.StatusBadRequest:
		v.logger.Warn("identity token rejected", "status", resp.StatusCode)
		return nil, apperror.Unauthorized("invalid identity token")
	}

	var lookup lookupResponse
	if err := json.Unmarshal(payload, &lookup); err != nil {
		return nil, apperror.Unavailable(err, "malformed identity provider response")
	}
	if len(lookup.Users) == 0 {
		return nil, apperror.Unauthorized("invalid identity token")
	}

	u := lookup.Users[0]
	return &identity.VerifiedIdentity{
		UID:           u.LocalID,
		Phone:         u.PhoneNumber,
		Email:         strings.ToLower(u.Email),
		EmailVerified: u.EmailVerified,
	}, nil
}
