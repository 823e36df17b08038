package app

import (
	"context"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// trustService implements the TrustService interface
type trustService struct {
	transactor     txn.Transactor
	historyRepo    trust.HistoryRepository
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	bookingRepo    bookings.BookingRepository
	complaintRepo  bookings.ComplaintRepository
	logger         logger.Logger
}

// NewTrustService creates a new instance of TrustService
func NewTrustService(
	transactor txn.Transactor,
	historyRepo trust.HistoryRepository,
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	bookingRepo bookings.BookingRepository,
	complaintRepo bookings.ComplaintRepository,
	logger logger.Logger,
) (trust.TrustService, error) {
	return &trustService{
		transactor:     transactor,
		historyRepo:    historyRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		bookingRepo:    bookingRepo,
		complaintRepo:  complaintRepo,
		logger:         logger,
	}, nil
}

// setScore locks the subject row, computes its new score from the current one and writes
// both the score column and the history entry in one transaction.
func (s *trustService) setScore(ctx context.Context, subjectType partners.PartnerType, subjectID string, next func(current int) int, entry func(previous, score int) *trust.History) (*trust.History, error) {
	var history *trust.History

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		switch subjectType {
		case partners.TypeDealer:
			dealer, err := s.dealerRepo.GetByIDForUpdate(ctx, subjectID)
			if err != nil {
				return err
			}
			score := next(dealer.TrustScore)
			if err := s.dealerRepo.UpdateTrustScore(ctx, dealer.ID, score); err != nil {
				return err
			}
			history = entry(dealer.TrustScore, score)
		case partners.TypeTechnician:
			technician, err := s.technicianRepo.GetByIDForUpdate(ctx, subjectID)
			if err != nil {
				return err
			}
			score := next(technician.TrustScore)
			if err := s.technicianRepo.UpdateTrustScore(ctx, technician.ID, score); err != nil {
				return err
			}
			history = entry(technician.TrustScore, score)
		default:
			return apperror.FieldValidation("subjectType", "subjectType must be DEALER or TECHNICIAN")
		}
		return s.historyRepo.Append(ctx, history)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (s *trustService) Adjust(ctx context.Context, actor *users.Principal, input *trust.AdjustInput) (*trust.History, error) {
	if actor == nil {
		return nil, apperror.Unauthorized("not authenticated")
	}
	if err := trust.CheckAdjustment(actor.Role, input.Delta, input.Reason); err != nil {
		return nil, err
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	history, err := s.setScore(ctx, input.SubjectType, input.SubjectID,
		func(current int) int { return trust.Clamp(current + input.Delta) },
		func(previous, score int) *trust.History {
			return trust.NewHistory(input.SubjectType, input.SubjectID, previous, score, reason, actor.UserID, trust.SourceManual)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trust score adjusted", "subjectType", string(input.SubjectType), "subjectId", input.SubjectID,
		"previous", history.PreviousScore, "score", history.NewScore, "actorId", actor.UserID)
	return history, nil
}

func (s *trustService) Recalculate(ctx context.Context, actor *users.Principal, input *trust.RecalculateInput) (*trust.History, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins may recalculate trust scores")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	filter := bookings.CountFilter{}
	if input.SubjectType == partners.TypeDealer {
		filter.DealerID = input.SubjectID
	} else {
		filter.TechnicianID = input.SubjectID
	}

	counts, err := s.bookingRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	upheld, err := s.complaintRepo.CountUpheld(ctx, filter)
	if err != nil {
		return nil, err
	}
	completed, rejected := counts[bookings.StatusCompleted], counts[bookings.StatusRejected]
	score := trust.Recalculate(completed, rejected, upheld)

	history, err := s.setScore(ctx, input.SubjectType, input.SubjectID,
		func(int) int { return score },
		func(previous, score int) *trust.History {
			return trust.NewHistory(input.SubjectType, input.SubjectID, previous, score, "recalculated from booking outcomes", actor.UserID, trust.SourceRecalculation)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trust score recalculated", "subjectType", string(input.SubjectType), "subjectId", input.SubjectID,
		"completed", completed, "rejected", rejected, "upheld", upheld, "score", score)
	return history, nil
}

func (s *trustService) History(ctx context.Context, query *trust.HistoryQuery) ([]*trust.History, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.historyRepo.List(ctx, query)
}
