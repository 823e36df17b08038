//go:build unit
// +build unit

package trust

import (
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-12))
	assert.Equal(t, 100, Clamp(140))
	assert.Equal(t, 73, Clamp(73))
}

func TestCheckAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		role     users.Role
		delta    int
		reason   string
		wantKind apperror.Kind
	}{
		{"admin within limit", users.RoleAdmin, 5, "good work", ""},
		{"admin negative within limit", users.RoleAdmin, -5, "late visits", ""},
		{"admin over limit", users.RoleAdmin, 6, "great work", apperror.KindForbidden},
		{"super admin unlimited", users.RoleSuperAdmin, 40, "manual correction", ""},
		{"zero delta", users.RoleSuperAdmin, 0, "noop", apperror.KindValidation},
		{"short reason", users.RoleAdmin, 2, "ok", apperror.KindValidation},
		{"dealer forbidden", users.RoleDealer, 1, "self boost", apperror.KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdjustment(tt.role, tt.delta, tt.reason)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestRecalculate(t *testing.T) {
	assert.Equal(t, 50, Recalculate(0, 0, 0))
	assert.Equal(t, 50+20-6-5, Recalculate(10, 2, 1))
	assert.Equal(t, 100, Recalculate(40, 0, 0))
	assert.Equal(t, 0, Recalculate(0, 10, 10))
}

func TestNewHistory(t *testing.T) {
	h := NewHistory(partners.TypeDealer, "d-1", 50, 45, "late", "admin-1", SourceManual)
	assert.Equal(t, -5, h.Delta)
	assert.NotEmpty(t, h.ID)
}

func TestHistoryQuery_Validate(t *testing.T) {
	q := &HistoryQuery{SubjectType: "SELLER", SubjectID: "x"}
	assert.Error(t, q.Validate())

	q = &HistoryQuery{SubjectType: partners.TypeTechnician, SubjectID: "x"}
	assert.NoError(t, q.Validate())
}
