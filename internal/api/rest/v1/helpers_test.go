//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	customerPrincipal = &users.Principal{UserID: "c7b4a1f2-5d8e-4a61-9b0c-2f3e4d5a6b7c", Role: users.RoleCustomer, Name: "Asha"}
	dealerPrincipal   = &users.Principal{UserID: "d1e2f3a4-b5c6-4d7e-8f90-a1b2c3d4e5f6", Role: users.RoleDealer, Name: "Ravi"}
	adminPrincipal    = &users.Principal{UserID: "a9b8c7d6-e5f4-4a3b-8c2d-1e0f9a8b7c6d", Role: users.RoleAdmin, Name: "Meera"}
)

// newTestContext builds a gin context for request with principal already authenticated
func newTestContext(t *testing.T, method, url, body string, principal *users.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if principal != nil {
		c.Set(principalKey, principal)
	}
	return c, w
}

func newMultipartContext(t *testing.T, url string, body *bytes.Buffer, contentType string, principal *users.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if principal != nil {
		c.Set(principalKey, principal)
	}
	return c, w
}
