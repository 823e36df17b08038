package v1

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// pageFrom reads limit, offset, sortBy and sortOrder from the query string
func pageFrom(ctx *gin.Context) listing.Page {
	var page listing.Page

	if limit := ctx.Query("limit"); len(limit) > 0 {
		page.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		page.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		page.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		page.SortOrder = sortOrder
	}

	return page
}

// timeQuery parses an RFC3339 query parameter. Unparseable values are ignored.
func timeQuery(ctx *gin.Context, name string) time.Time {
	if value := ctx.Query(name); len(value) > 0 {
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func decimalQuery(ctx *gin.Context, name string) *decimal.Decimal {
	if value := ctx.Query(name); len(value) > 0 {
		if parsed, err := decimal.NewFromString(value); err == nil {
			return &parsed
		}
	}
	return nil
}

func boolQuery(ctx *gin.Context, name string) *bool {
	if value := ctx.Query(name); len(value) > 0 {
		return strutil.ConvertToBool(value)
	}
	return nil
}
