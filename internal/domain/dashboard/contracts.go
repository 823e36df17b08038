// Package dashboard aggregates the admin overview counters.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stats is the admin overview
type Stats struct {
	DealersByStatus     map[string]int64
	TechniciansByStatus map[string]int64
	BookingsByStatus    map[string]int64
	OpenComplaints      int64
	PendingOrders       int64
	DeliveredRevenue    decimal.Decimal
}

// DashboardService computes the admin overview
type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
}
