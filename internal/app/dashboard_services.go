package app

import (
	"context"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	bookingRepo    bookings.BookingRepository
	complaintRepo  bookings.ComplaintRepository
	orderRepo      commerce.OrderRepository
	logger         logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	bookingRepo bookings.BookingRepository,
	complaintRepo bookings.ComplaintRepository,
	orderRepo commerce.OrderRepository,
	logger logger.Logger,
) (dashboard.DashboardService, error) {
	return &dashboardService{
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		bookingRepo:    bookingRepo,
		complaintRepo:  complaintRepo,
		orderRepo:      orderRepo,
		logger:         logger,
	}, nil
}

func stringKeys[K ~string](in map[K]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

// Stats runs the counters concurrently. Each goroutine writes its own field.
func (s *dashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	stats := &dashboard.Stats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.dealerRepo.CountByAccountStatus(ctx)
		stats.DealersByStatus = stringKeys(counts)
		return err
	})
	g.Go(func() error {
		counts, err := s.technicianRepo.CountByAccountStatus(ctx)
		stats.TechniciansByStatus = stringKeys(counts)
		return err
	})
	g.Go(func() error {
		counts, err := s.bookingRepo.CountByStatus(ctx, bookings.CountFilter{})
		stats.BookingsByStatus = stringKeys(counts)
		return err
	})
	g.Go(func() error {
		counts, err := s.complaintRepo.CountByStatus(ctx, bookings.CountFilter{})
		if err != nil {
			return err
		}
		stats.OpenComplaints = counts[bookings.ComplaintOpen] + counts[bookings.ComplaintInReview]
		return nil
	})
	g.Go(func() error {
		counts, err := s.orderRepo.CountByStatus(ctx)
		if err != nil {
			return err
		}
		stats.PendingOrders = counts[commerce.OrderPending]
		return nil
	})
	g.Go(func() error {
		revenue, err := s.orderRepo.SumTotalByStatus(ctx, commerce.OrderDelivered)
		stats.DeliveredRevenue = revenue
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to compute dashboard stats", "error", err)
		return nil, err
	}
	return stats, nil
}
