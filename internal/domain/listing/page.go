// Package listing holds pagination and sorting parameters shared by list queries.
package listing

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
)

// Paging bounds
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Page carries limit/offset pagination and an optional sort column
type Page struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// Validate checks the page bounds and that SortBy is one of the sortable columns
func (p *Page) Validate(sortable ...string) error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return apperror.FieldValidation("limit", "limit must be between 0 and %d", MaxLimit)
	}
	if p.Offset < 0 {
		return apperror.FieldValidation("offset", "offset must not be negative")
	}

	order := strings.ToLower(p.SortOrder)
	if order != "" && order != "asc" && order != "desc" {
		return apperror.FieldValidation("sortOrder", "sortOrder must be asc or desc")
	}

	if p.SortBy != "" {
		for _, col := range sortable {
			if col == p.SortBy {
				return nil
			}
		}
		return apperror.FieldValidation("sortBy", "sortBy must be one of %v", sortable)
	}
	return nil
}

// EffectiveLimit returns the limit to apply, falling back to DefaultLimit
func (p *Page) EffectiveLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}

// OrderClause returns an ORDER BY clause, falling back to the given column in descending order
func (p *Page) OrderClause(fallback string) string {
	col := p.SortBy
	if col == "" {
		col = fallback
	}
	order := strings.ToLower(p.SortOrder)
	if order == "" {
		order = "desc"
	}
	return fmt.Sprintf("%s %s", col, order)
}
