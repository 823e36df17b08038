package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// complaintService implements the ComplaintService interface
type complaintService struct {
	complaintRepo bookings.ComplaintRepository
	bookingRepo   bookings.BookingRepository
	userRepo      users.UserRepository
	notifier      notifications.Notifier
	logger        logger.Logger
}

// NewComplaintService creates a new instance of ComplaintService
func NewComplaintService(
	complaintRepo bookings.ComplaintRepository,
	bookingRepo bookings.BookingRepository,
	userRepo users.UserRepository,
	notifier notifications.Notifier,
	logger logger.Logger,
) (bookings.ComplaintService, error) {
	return &complaintService{
		complaintRepo: complaintRepo,
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}, nil
}

func (s *complaintService) Raise(ctx context.Context, actor *users.Principal, bookingID string, input *bookings.RaiseInput) (*bookings.Complaint, error) {
	if !actor.HasRole(users.RoleCustomer) {
		return nil, apperror.Forbidden("only customers may raise complaints")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != actor.UserID {
		return nil, apperror.Forbidden("only the customer of booking %s may raise a complaint", booking.ID)
	}
	if booking.Status == bookings.StatusPending || booking.Status == bookings.StatusRejected {
		return nil, apperror.Validation("complaints cannot be raised on a %s booking", booking.Status)
	}

	active, err := s.complaintRepo.HasActive(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperror.Duplicate("booking %s already has an open complaint", booking.ID)
	}

	complaint := bookings.NewComplaint(booking, input)
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info("complaint raised", "complaintId", complaint.ID, "bookingId", booking.ID)
	return complaint, nil
}

func (s *complaintService) Update(ctx context.Context, actor *users.Principal, complaintID string, update *bookings.ComplaintUpdate) (*bookings.Complaint, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins may update complaints")
	}
	if err := validators.Struct(update); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if err := complaint.ApplyUpdate(update, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info("complaint updated", "complaintId", complaint.ID, "status", string(complaint.Status), "upheld", complaint.Upheld, "actorId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, complaint.CustomerID, func(r notifications.Recipient) []notifications.Message {
		return notifications.ComplaintUpdated(r, complaint.ID, string(complaint.Status), complaint.Resolution)
	})
	return complaint, nil
}

func (s *complaintService) List(ctx context.Context, actor *users.Principal, query *bookings.ComplaintQuery) ([]*bookings.Complaint, int64, error) {
	if query == nil {
		query = &bookings.ComplaintQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	switch {
	case actor.IsAdmin():
	case actor.HasRole(users.RoleCustomer):
		query.CustomerID = actor.UserID
	default:
		return nil, 0, apperror.Forbidden("role %s may not list complaints", actor.Role)
	}
	return s.complaintRepo.List(ctx, query)
}
