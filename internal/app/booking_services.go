package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// bookingService implements the BookingService interface
type bookingService struct {
	transactor     txn.Transactor
	bookingRepo    bookings.BookingRepository
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	userRepo       users.UserRepository
	renderer       bookings.JobSheetRenderer
	notifier       notifications.Notifier
	logger         logger.Logger
	now            func() time.Time
}

// NewBookingService creates a new instance of BookingService
func NewBookingService(
	transactor txn.Transactor,
	bookingRepo bookings.BookingRepository,
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	userRepo users.UserRepository,
	renderer bookings.JobSheetRenderer,
	notifier notifications.Notifier,
	logger logger.Logger,
) (bookings.BookingService, error) {
	return &bookingService{
		transactor:     transactor,
		bookingRepo:    bookingRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		userRepo:       userRepo,
		renderer:       renderer,
		notifier:       notifier,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}, nil
}

// resolveActor attaches the dealer or technician profile of principal
func resolveActor(ctx context.Context, dealerRepo partners.DealerRepository, technicianRepo partners.TechnicianRepository, principal *users.Principal) (*bookings.Actor, error) {
	if principal == nil {
		return nil, apperror.Unauthorized("not authenticated")
	}
	actor := &bookings.Actor{Principal: principal}

	switch principal.Role {
	case users.RoleDealer:
		dealer, err := dealerRepo.GetByUserID(ctx, principal.UserID)
		if err != nil && !apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		if dealer != nil {
			actor.DealerID = dealer.ID
		}
	case users.RoleTechnician:
		technician, err := technicianRepo.GetByUserID(ctx, principal.UserID)
		if err != nil && !apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		if technician != nil {
			actor.TechnicianID = technician.ID
		}
	}
	return actor, nil
}

// checkVersion rejects a request made against a stale copy. Zero skips the check.
func checkVersion(resource, id string, seen, current int) error {
	if seen != 0 && seen != current {
		return apperror.Conflict("%s %s was modified concurrently, reload and retry", resource, id)
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, actor *users.Principal, input *bookings.CreateInput) (*bookings.Booking, error) {
	if !actor.HasRole(users.RoleCustomer) {
		return nil, apperror.Forbidden("only customers may create bookings")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	if !input.ScheduledAt.After(s.now()) {
		return nil, apperror.FieldValidation("scheduledAt", "scheduledAt must be in the future")
	}

	dealer, err := s.dealerRepo.GetByID(ctx, input.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer.AccountStatus != partners.AccountApproved {
		return nil, apperror.FieldValidation("dealerId", "dealer %s is not accepting bookings", dealer.ID)
	}

	booking := bookings.NewBooking(actor.UserID, dealer.ID, input)
	event := bookings.NewEvent(booking.ID, "", booking.Status, actor, "")

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return err
		}
		return s.bookingRepo.AppendEvent(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created", "bookingId", booking.ID, "dealerId", dealer.ID, "customerId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, dealer.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.BookingCreated(r, booking.ID, booking.ServiceType, booking.ScheduledAt.Format(timeLayout))
	})
	return booking, nil
}

// load returns the booking if actor may view it
func (s *bookingService) load(ctx context.Context, actor *bookings.Actor, bookingID string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(booking) {
		return nil, apperror.Forbidden("not allowed to access booking %s", bookingID)
	}
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, principal *users.Principal, bookingID string) (*bookings.Booking, error) {
	actor, err := resolveActor(ctx, s.dealerRepo, s.technicianRepo, principal)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, actor, bookingID)
}

func (s *bookingService) List(ctx context.Context, principal *users.Principal, query *bookings.Query) ([]*bookings.Booking, int64, error) {
	actor, err := resolveActor(ctx, s.dealerRepo, s.technicianRepo, principal)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &bookings.Query{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	switch {
	case principal.IsAdmin():
	case principal.Role == users.RoleCustomer:
		query.CustomerID = principal.UserID
	case principal.Role == users.RoleDealer:
		if actor.DealerID == "" {
			return nil, 0, apperror.Forbidden("dealer profile not found")
		}
		query.DealerID = actor.DealerID
	case principal.Role == users.RoleTechnician:
		if actor.TechnicianID == "" {
			return nil, 0, apperror.Forbidden("technician profile not found")
		}
		query.TechnicianID = actor.TechnicianID
	default:
		return nil, 0, apperror.Forbidden("role %s may not list bookings", principal.Role)
	}

	return s.bookingRepo.List(ctx, query)
}

func (s *bookingService) UpdateStatus(ctx context.Context, principal *users.Principal, bookingID string, input *bookings.StatusInput) (*bookings.Booking, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	actor, err := resolveActor(ctx, s.dealerRepo, s.technicianRepo, principal)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := checkVersion("booking", booking.ID, input.Version, booking.Version); err != nil {
		return nil, err
	}

	now := s.now()
	if err := bookings.CheckTransition(actor, booking, input, now); err != nil {
		return nil, err
	}

	expected := booking.Version
	from := booking.Status
	bookings.Apply(booking, input, now)
	event := bookings.NewEvent(booking.ID, from, booking.Status, principal, booking.StatusReason)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Update(ctx, booking, expected); err != nil {
			return err
		}
		return s.bookingRepo.AppendEvent(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed", "bookingId", booking.ID, "from", string(from), "to", string(booking.Status), "actorId", principal.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, booking.CustomerID, func(r notifications.Recipient) []notifications.Message {
		return notifications.BookingStatusChanged(r, booking.ID, string(booking.Status), booking.StatusReason)
	})
	return booking, nil
}

func (s *bookingService) AssignTechnician(ctx context.Context, principal *users.Principal, bookingID string, input *bookings.AssignInput) (*bookings.Booking, error) {
	if !principal.HasRole(users.RoleDealer, users.RoleAdmin, users.RoleSuperAdmin) {
		return nil, apperror.Forbidden("only dealers and admins may assign technicians")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	actor, err := resolveActor(ctx, s.dealerRepo, s.technicianRepo, principal)
	if err != nil {
		return nil, err
	}
	booking, err := s.load(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if err := checkVersion("booking", booking.ID, input.Version, booking.Version); err != nil {
		return nil, err
	}
	if !booking.Status.Assignable() {
		return nil, apperror.New(apperror.KindInvalidTransition, "a technician cannot be assigned to a %s booking", booking.Status)
	}

	technician, err := s.technicianRepo.GetByID(ctx, input.TechnicianID)
	if err != nil {
		return nil, err
	}
	if technician.AccountStatus != partners.AccountApproved {
		return nil, apperror.FieldValidation("technicianId", "technician %s is not approved", technician.ID)
	}
	if technician.DealerID == nil || *technician.DealerID != booking.DealerID {
		return nil, apperror.FieldValidation("technicianId", "technician %s does not belong to the booking's dealer", technician.ID)
	}

	expected := booking.Version
	booking.TechnicianID = &technician.ID
	booking.Version++
	booking.UpdatedAt = s.now()
	event := bookings.NewEvent(booking.ID, booking.Status, booking.Status, principal, "technician assigned")

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Update(ctx, booking, expected); err != nil {
			return err
		}
		return s.bookingRepo.AppendEvent(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("technician assigned", "bookingId", booking.ID, "technicianId", technician.ID, "actorId", principal.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, technician.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.BookingAssigned(r, booking.ID, booking.Address, booking.ScheduledAt.Format(timeLayout))
	})
	return booking, nil
}

func (s *bookingService) History(ctx context.Context, principal *users.Principal, bookingID string) ([]*bookings.Event, error) {
	booking, err := s.GetByID(ctx, principal, bookingID)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListEvents(ctx, booking.ID)
}

func (s *bookingService) JobSheet(ctx context.Context, principal *users.Principal, bookingID string) ([]byte, error) {
	booking, err := s.GetByID(ctx, principal, bookingID)
	if err != nil {
		return nil, err
	}
	events, err := s.bookingRepo.ListEvents(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	return s.renderer.JobSheet(booking, events)
}
