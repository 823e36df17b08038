//go:build unit
// +build unit

package connector

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToolkitServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:lookup", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		payload, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"idToken":"token-123"}`, string(payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newToolkitVerifier(t *testing.T, baseURL string) *identityToolkitVerifier {
	t.Helper()

	v, err := NewIdentityToolkitVerifier(&config.IdentitySettings{
		Provider: config.IdentityToolkitProvider,
		BaseURL:  baseURL,
		APIKey:   "test-key",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return v.(*identityToolkitVerifier)
}

func TestIdentityToolkitVerifier_Verify(t *testing.T) {
	server := newToolkitServer(t, http.StatusOK, `{"users":[{"localId":"uid-1","phoneNumber":"+919812345678","email":"Asha@Example.com","emailVerified":true}]}`)
	verifier := newToolkitVerifier(t, server.URL)

	id, err := verifier.Verify(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.Equal(t, "+919812345678", id.Phone)
	assert.Equal(t, "asha@example.com", id.Email)
	assert.True(t, id.EmailVerified)
}

func TestIdentityToolkitVerifier_Verify_InvalidToken(t *testing.T) {
	server := newToolkitServer(t, http.StatusBadRequest, `{"error":{"message":"INVALID_ID_TOKEN"}}`)
	verifier := newToolkitVerifier(t, server.URL)

	_, err := verifier.Verify(context.Background(), "token-123")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestIdentityToolkitVerifier_Verify_ProviderDown(t *testing.T) {
	server := newToolkitServer(t, http.StatusServiceUnavailable, `oops`)
	verifier := newToolkitVerifier(t, server.URL)

	_, err := verifier.Verify(context.Background(), "token-123")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindUnavailable))
}

func TestIdentityToolkitVerifier_Verify_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	verifier := newToolkitVerifier(t, server.URL)

	_, err := verifier.Verify(context.Background(), "token-123")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindUnavailable))
}

func TestInsecureVerifier(t *testing.T) {
	verifier := NewInsecureVerifier()
	ctx := context.Background()

	id, err := verifier.Verify(ctx, "phone:+919812345678")
	require.NoError(t, err)
	assert.Equal(t, "+919812345678", id.Phone)

	id, err = verifier.Verify(ctx, "email:Asha@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", id.Email)
	assert.True(t, id.EmailVerified)

	_, err = verifier.Verify(ctx, "garbage")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestNewVerifier_InsecureRejectedInProduction(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	settings := &config.IdentitySettings{Provider: config.InsecureIdentityProvider}

	_, err := NewVerifier(settings, config.EnvironmentProduction, logger)
	assert.Error(t, err)

	v, err := NewVerifier(settings, config.EnvironmentDevelopment, logger)
	require.NoError(t, err)
	assert.NotNil(t, v)
}
