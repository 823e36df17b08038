//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperror.Validation("bad"), http.StatusBadRequest},
		{"duplicate", apperror.Duplicate("phone already registered"), http.StatusBadRequest},
		{"unauthorized", apperror.Unauthorized("no"), http.StatusUnauthorized},
		{"forbidden", apperror.Forbidden("no"), http.StatusForbidden},
		{"not found", apperror.NotFound("booking", "42"), http.StatusNotFound},
		{"conflict", apperror.Conflict("stale"), http.StatusConflict},
		{"invalid transition", apperror.InvalidTransition("booking", "PENDING", "COMPLETED"), http.StatusUnprocessableEntity},
		{"unavailable", apperror.Unavailable(errors.New("down"), "assistant"), http.StatusServiceUnavailable},
		{"wrapped app error", fmt.Errorf("outer: %w", apperror.NotFound("order", "7")), http.StatusNotFound},
		{"gorm duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"timeout text", errors.New("dial tcp: i/o timeout"), http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestRespondError_FieldValidation(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost, "/register/customer", "", nil)

	respondError(c, apperror.FieldValidation("pincode", "pincode must have 6 digits"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pincode", response.Field)
	assert.Equal(t, "pincode must have 6 digits", response.Message)
	assert.True(t, c.IsAborted())
}

func TestRespondError_InternalHidesDetail(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	for _, expose := range []bool{false, true} {
		t.Run(fmt.Sprintf("expose=%v", expose), func(t *testing.T) {
			c, w := newTestContext(t, http.MethodGet, "/bookings", "", nil)
			ErrorReporting(log, expose)(c)

			respondError(c, errors.New("connection reset by peer"))

			require.Equal(t, http.StatusInternalServerError, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "internal server error", response.Message)
			if expose {
				assert.Equal(t, "connection reset by peer", response.Detail)
			} else {
				assert.Empty(t, response.Detail)
			}
		})
	}
}

func TestRespondError_DuplicateKey(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost, "/admin/sellers", "", nil)

	respondError(c, gorm.ErrDuplicatedKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "resource already exists")
}

func TestRespondError_Timeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, w := newTestContext(t, http.MethodPost, "/admin/audits", "", nil)

	respondError(c, fmt.Errorf("assistant: %w", context.DeadlineExceeded))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "upstream timeout")
}
