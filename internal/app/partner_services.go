package app

import (
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// accounts holds what dealer and technician administration have in common:
// the linked user account, its sessions and the owner notifications.
type accounts struct {
	transactor  txn.Transactor
	userRepo    users.UserRepository
	sessionRepo users.SessionRepository
	notifier    notifications.Notifier
	logger      logger.Logger
}

// checkAccountChange validates an admin account status change from current
func checkAccountChange(current partners.AccountStatus, change *partners.StatusChange) (partners.AccountStatus, string, error) {
	if err := validators.Struct(change); err != nil {
		return "", "", err
	}
	next := partners.AccountStatus(change.Status)
	switch next {
	case partners.AccountPending, partners.AccountApproved, partners.AccountRejected, partners.AccountSuspended:
	default:
		return "", "", apperror.FieldValidation("status", "unknown account status %q", change.Status)
	}
	if !current.CanTransitionTo(next) {
		return "", "", apperror.InvalidTransition("account", current, next)
	}
	reason := strings.TrimSpace(change.Reason)
	if next.RequiresReason() && reason == "" {
		return "", "", apperror.FieldValidation("reason", "a reason is required to move an account to %s", next)
	}
	return next, reason, nil
}

// checkKYCChange validates an admin KYC review from current
func checkKYCChange(current partners.KYCStatus, change *partners.StatusChange) (partners.KYCStatus, string, error) {
	if err := validators.Struct(change); err != nil {
		return "", "", err
	}
	next := partners.KYCStatus(change.Status)
	switch next {
	case partners.KYCNotSubmitted, partners.KYCSubmitted, partners.KYCVerified, partners.KYCRejected:
	default:
		return "", "", apperror.FieldValidation("status", "unknown kyc status %q", change.Status)
	}
	if !current.CanReviewTo(next) {
		return "", "", apperror.InvalidTransition("kyc", current, next)
	}
	reason := strings.TrimSpace(change.Reason)
	if next == partners.KYCRejected && reason == "" {
		return "", "", apperror.FieldValidation("reason", "a reason is required to reject kyc")
	}
	return next, reason, nil
}

// syncUser activates or deactivates the user behind a profile after an account status change.
// Must run inside the transaction that updates the profile.
func (a *accounts) syncUser(ctx context.Context, userID string, next partners.AccountStatus) error {
	var active bool
	switch next {
	case partners.AccountApproved:
		active = true
	case partners.AccountSuspended:
		active = false
	default:
		return nil
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Active = active
	user.UpdatedAt = time.Now().UTC()
	if err := a.userRepo.Update(ctx, user); err != nil {
		return err
	}
	if !active {
		return a.sessionRepo.DeleteByUserID(ctx, userID)
	}
	return nil
}

// deleteUser removes a user account with its sessions. Must run inside a transaction.
func (a *accounts) deleteUser(ctx context.Context, userID string) error {
	if err := a.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return a.userRepo.DeleteByID(ctx, userID)
}

// dealerService implements the DealerService interface
type dealerService struct {
	accounts
	dealerRepo partners.DealerRepository
}

// NewDealerService creates a new instance of DealerService
func NewDealerService(
	transactor txn.Transactor,
	dealerRepo partners.DealerRepository,
	userRepo users.UserRepository,
	sessionRepo users.SessionRepository,
	notifier notifications.Notifier,
	logger logger.Logger,
) (partners.DealerService, error) {
	return &dealerService{
		accounts: accounts{
			transactor:  transactor,
			userRepo:    userRepo,
			sessionRepo: sessionRepo,
			notifier:    notifier,
			logger:      logger,
		},
		dealerRepo: dealerRepo,
	}, nil
}

func (s *dealerService) List(ctx context.Context, query *partners.DealerQuery) ([]*partners.Dealer, int64, error) {
	if query == nil {
		query = &partners.DealerQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.dealerRepo.List(ctx, query)
}

func (s *dealerService) GetByID(ctx context.Context, dealerID string) (*partners.Dealer, error) {
	return s.dealerRepo.GetByID(ctx, dealerID)
}

func (s *dealerService) UpdateAccountStatus(ctx context.Context, actor *users.Principal, dealerID string, change *partners.StatusChange) (*partners.Dealer, error) {
	var dealer *partners.Dealer
	var next partners.AccountStatus
	var reason string

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if dealer, err = s.dealerRepo.GetByIDForUpdate(ctx, dealerID); err != nil {
			return err
		}
		if next, reason, err = checkAccountChange(dealer.AccountStatus, change); err != nil {
			return err
		}
		if next == partners.AccountApproved && dealer.KYCStatus != partners.KYCVerified {
			s.logger.Warn("approving dealer without verified kyc", "dealerId", dealer.ID, "kycStatus", string(dealer.KYCStatus))
		}
		if err := s.dealerRepo.UpdateAccountStatus(ctx, dealer.ID, next, reason); err != nil {
			return err
		}
		return s.syncUser(ctx, dealer.UserID, next)
	})
	if err != nil {
		return nil, err
	}
	dealer.AccountStatus = next
	dealer.StatusReason = reason
	dealer.UpdatedAt = time.Now().UTC()

	s.logger.Info("dealer account status changed", "dealerId", dealer.ID, "status", string(next), "actorId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, dealer.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.AccountStatusChanged(r, string(next), reason)
	})
	return dealer, nil
}

func (s *dealerService) UpdateKYCStatus(ctx context.Context, actor *users.Principal, dealerID string, change *partners.StatusChange) (*partners.Dealer, error) {
	var dealer *partners.Dealer
	var next partners.KYCStatus
	var reason string

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if dealer, err = s.dealerRepo.GetByIDForUpdate(ctx, dealerID); err != nil {
			return err
		}
		if next, reason, err = checkKYCChange(dealer.KYCStatus, change); err != nil {
			return err
		}
		return s.dealerRepo.UpdateKYCStatus(ctx, dealer.ID, next, reason)
	})
	if err != nil {
		return nil, err
	}
	dealer.KYCStatus = next
	dealer.KYCReason = reason
	dealer.UpdatedAt = time.Now().UTC()

	s.logger.Info("dealer kyc reviewed", "dealerId", dealer.ID, "kycStatus", string(next), "actorId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, dealer.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.KYCStatusChanged(r, string(next), reason)
	})
	return dealer, nil
}

func (s *dealerService) DeleteByID(ctx context.Context, actor *users.Principal, dealerID string) error {
	dealer, err := s.dealerRepo.GetByID(ctx, dealerID)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.dealerRepo.DeleteByID(ctx, dealer.ID); err != nil {
			return err
		}
		return s.deleteUser(ctx, dealer.UserID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("dealer deleted", "dealerId", dealer.ID, "userId", dealer.UserID, "actorId", actor.UserID)
	return nil
}

// technicianService implements the TechnicianService interface
type technicianService struct {
	accounts
	technicianRepo partners.TechnicianRepository
	dealerRepo     partners.DealerRepository
}

// NewTechnicianService creates a new instance of TechnicianService
func NewTechnicianService(
	transactor txn.Transactor,
	technicianRepo partners.TechnicianRepository,
	dealerRepo partners.DealerRepository,
	userRepo users.UserRepository,
	sessionRepo users.SessionRepository,
	notifier notifications.Notifier,
	logger logger.Logger,
) (partners.TechnicianService, error) {
	return &technicianService{
		accounts: accounts{
			transactor:  transactor,
			userRepo:    userRepo,
			sessionRepo: sessionRepo,
			notifier:    notifier,
			logger:      logger,
		},
		technicianRepo: technicianRepo,
		dealerRepo:     dealerRepo,
	}, nil
}

func (s *technicianService) List(ctx context.Context, query *partners.TechnicianQuery) ([]*partners.Technician, int64, error) {
	if query == nil {
		query = &partners.TechnicianQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.technicianRepo.List(ctx, query)
}

func (s *technicianService) ListForDealer(ctx context.Context, actor *users.Principal, query *partners.TechnicianQuery) ([]*partners.Technician, int64, error) {
	if !actor.HasRole(users.RoleDealer) {
		return nil, 0, apperror.Forbidden("only dealers may list their technicians")
	}
	dealer, err := s.dealerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, 0, err
	}

	if query == nil {
		query = &partners.TechnicianQuery{}
	}
	query.DealerID = dealer.ID
	return s.List(ctx, query)
}

func (s *technicianService) GetByID(ctx context.Context, technicianID string) (*partners.Technician, error) {
	return s.technicianRepo.GetByID(ctx, technicianID)
}

func (s *technicianService) UpdateAccountStatus(ctx context.Context, actor *users.Principal, technicianID string, change *partners.StatusChange) (*partners.Technician, error) {
	var technician *partners.Technician
	var next partners.AccountStatus
	var reason string

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if technician, err = s.technicianRepo.GetByIDForUpdate(ctx, technicianID); err != nil {
			return err
		}
		if next, reason, err = checkAccountChange(technician.AccountStatus, change); err != nil {
			return err
		}
		if next == partners.AccountApproved && technician.KYCStatus != partners.KYCVerified {
			s.logger.Warn("approving technician without verified kyc", "technicianId", technician.ID, "kycStatus", string(technician.KYCStatus))
		}
		if err := s.technicianRepo.UpdateAccountStatus(ctx, technician.ID, next, reason); err != nil {
			return err
		}
		return s.syncUser(ctx, technician.UserID, next)
	})
	if err != nil {
		return nil, err
	}
	technician.AccountStatus = next
	technician.StatusReason = reason
	technician.UpdatedAt = time.Now().UTC()

	s.logger.Info("technician account status changed", "technicianId", technician.ID, "status", string(next), "actorId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, technician.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.AccountStatusChanged(r, string(next), reason)
	})
	return technician, nil
}

func (s *technicianService) UpdateKYCStatus(ctx context.Context, actor *users.Principal, technicianID string, change *partners.StatusChange) (*partners.Technician, error) {
	var technician *partners.Technician
	var next partners.KYCStatus
	var reason string

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if technician, err = s.technicianRepo.GetByIDForUpdate(ctx, technicianID); err != nil {
			return err
		}
		if next, reason, err = checkKYCChange(technician.KYCStatus, change); err != nil {
			return err
		}
		return s.technicianRepo.UpdateKYCStatus(ctx, technician.ID, next, reason)
	})
	if err != nil {
		return nil, err
	}
	technician.KYCStatus = next
	technician.KYCReason = reason
	technician.UpdatedAt = time.Now().UTC()

	s.logger.Info("technician kyc reviewed", "technicianId", technician.ID, "kycStatus", string(next), "actorId", actor.UserID)
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, technician.UserID, func(r notifications.Recipient) []notifications.Message {
		return notifications.KYCStatusChanged(r, string(next), reason)
	})
	return technician, nil
}

func (s *technicianService) DeleteByID(ctx context.Context, actor *users.Principal, technicianID string) error {
	technician, err := s.technicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.technicianRepo.DeleteByID(ctx, technician.ID); err != nil {
			return err
		}
		return s.deleteUser(ctx, technician.UserID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("technician deleted", "technicianId", technician.ID, "userId", technician.UserID, "actorId", actor.UserID)
	return nil
}
