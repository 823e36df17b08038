//go:build unit
// +build unit

package listing

import (
	"testing"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestPage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		page    Page
		wantErr bool
	}{
		{"empty", Page{}, false},
		{"valid sort", Page{Limit: 10, SortBy: "created_at", SortOrder: "ASC"}, false},
		{"negative limit", Page{Limit: -1}, true},
		{"limit too large", Page{Limit: MaxLimit + 1}, true},
		{"negative offset", Page{Offset: -5}, true},
		{"bad order", Page{SortOrder: "sideways"}, true},
		{"unknown column", Page{SortBy: "password_hash"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate("created_at", "name")
			if tt.wantErr {
				assert.True(t, apperror.Is(err, apperror.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPage_Defaults(t *testing.T) {
	p := Page{}
	assert.Equal(t, DefaultLimit, p.EffectiveLimit())
	assert.Equal(t, "created_at desc", p.OrderClause("created_at"))

	p = Page{Limit: 5, SortBy: "name", SortOrder: "ASC"}
	assert.Equal(t, 5, p.EffectiveLimit())
	assert.Equal(t, "name asc", p.OrderClause("created_at"))
}
