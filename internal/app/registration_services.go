package app

import (
	"context"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/identity"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// registrationService implements the RegistrationService interface
type registrationService struct {
	transactor     txn.Transactor
	userRepo       users.UserRepository
	dealerRepo     partners.DealerRepository
	technicianRepo partners.TechnicianRepository
	territoryRepo  territories.CategoryRepository
	verifier       identity.Verifier
	notifier       notifications.Notifier
	logger         logger.Logger
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(
	transactor txn.Transactor,
	userRepo users.UserRepository,
	dealerRepo partners.DealerRepository,
	technicianRepo partners.TechnicianRepository,
	territoryRepo territories.CategoryRepository,
	verifier identity.Verifier,
	notifier notifications.Notifier,
	logger logger.Logger,
) (registration.RegistrationService, error) {
	return &registrationService{
		transactor:     transactor,
		userRepo:       userRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		territoryRepo:  territoryRepo,
		verifier:       verifier,
		notifier:       notifier,
		logger:         logger,
	}, nil
}

// ownership is the result of checking the identity tokens of a sign-up
type ownership struct {
	phoneVerified bool
	emailVerified bool
}

// verifyOwnership checks that the tokens vouch for phone and, when set, email
func (s *registrationService) verifyOwnership(ctx context.Context, phone, phoneToken, email, emailToken string) (*ownership, error) {
	phoneIdentity, err := s.verifier.Verify(ctx, phoneToken)
	if err != nil {
		return nil, err
	}
	if phoneIdentity.Phone != phone {
		return nil, apperror.FieldValidation("phone", "phone does not match verified token")
	}
	result := &ownership{phoneVerified: true}

	email = users.NormalizeEmail(email)
	if email == "" {
		return result, nil
	}

	emailIdentity, err := s.verifier.Verify(ctx, emailToken)
	if err != nil {
		return nil, err
	}
	if users.NormalizeEmail(emailIdentity.Email) != email {
		return nil, apperror.FieldValidation("email", "email does not match verified token")
	}
	result.emailVerified = emailIdentity.EmailVerified
	return result, nil
}

// checkUnique rejects a phone or email that already belongs to a user
func (s *registrationService) checkUnique(ctx context.Context, phone, email string) error {
	exists, err := s.userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Duplicate("phone already registered")
	}

	if email = users.NormalizeEmail(email); email == "" {
		return nil
	}
	exists, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Duplicate("email already registered")
	}
	return nil
}

// newUser verifies and hashes everything a sign-up needs before anything is written
func (s *registrationService) newUser(ctx context.Context, role users.Role, name, email, phone, password, phoneToken, emailToken string) (*users.User, error) {
	owned, err := s.verifyOwnership(ctx, phone, phoneToken, email, emailToken)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, phone, email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := users.NewUser(name, email, phone, hash, role)
	user.PhoneVerified = owned.phoneVerified
	user.EmailVerified = owned.emailVerified
	user.Active = true
	return user, nil
}

// territoryFor returns the requested category or the one covering pincode, if any
func (s *registrationService) territoryFor(ctx context.Context, requested *string, pincode string) (*string, error) {
	if requested != nil && *requested != "" {
		if _, err := s.territoryRepo.GetByID(ctx, *requested); err != nil {
			if apperror.Is(err, apperror.KindNotFound) {
				return nil, apperror.FieldValidation("territoryCategoryId", "territory category %s does not exist", *requested)
			}
			return nil, err
		}
		return requested, nil
	}

	category, err := s.territoryRepo.FindByPincode(ctx, pincode)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category.ID, nil
}

func (s *registrationService) RegisterDealer(ctx context.Context, input *registration.DealerInput) (*registration.DealerRegistration, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.newUser(ctx, users.RoleDealer, input.Name, input.Email, input.Phone, input.Password, input.PhoneToken, input.EmailToken)
	if err != nil {
		return nil, err
	}

	territoryID, err := s.territoryFor(ctx, input.TerritoryCategoryID, input.Pincode)
	if err != nil {
		return nil, err
	}

	dealer := partners.NewDealer(user.ID)
	dealer.BusinessName = strings.TrimSpace(input.BusinessName)
	dealer.OwnerName = user.Name
	dealer.GSTNumber = input.GSTNumber
	dealer.Address = strings.TrimSpace(input.Address)
	dealer.City = strings.TrimSpace(input.City)
	dealer.State = strings.TrimSpace(input.State)
	dealer.Pincode = input.Pincode
	dealer.TerritoryCategoryID = territoryID

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return s.dealerRepo.Create(ctx, dealer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dealer registered", "dealerId", dealer.ID, "userId", user.ID)
	s.notifier.Notify(ctx, notifications.Welcome(recipientOf(user), string(user.Role))...)
	return &registration.DealerRegistration{User: user, Dealer: dealer}, nil
}

func (s *registrationService) RegisterTechnician(ctx context.Context, input *registration.TechnicianInput) (*registration.TechnicianRegistration, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.newUser(ctx, users.RoleTechnician, input.Name, input.Email, input.Phone, input.Password, input.PhoneToken, input.EmailToken)
	if err != nil {
		return nil, err
	}

	if input.DealerID != nil && *input.DealerID != "" {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.DealerID)
		if err != nil {
			if apperror.Is(err, apperror.KindNotFound) {
				return nil, apperror.FieldValidation("dealerId", "dealer %s does not exist", *input.DealerID)
			}
			return nil, err
		}
		if dealer.AccountStatus != partners.AccountApproved {
			return nil, apperror.FieldValidation("dealerId", "dealer %s is not approved", dealer.ID)
		}
	}

	technician := partners.NewTechnician(user.ID)
	technician.Skills = input.Skills
	technician.ExperienceYears = input.ExperienceYears
	technician.City = strings.TrimSpace(input.City)
	technician.Pincode = input.Pincode
	if input.DealerID != nil && *input.DealerID != "" {
		technician.DealerID = input.DealerID
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return s.technicianRepo.Create(ctx, technician)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("technician registered", "technicianId", technician.ID, "userId", user.ID)
	s.notifier.Notify(ctx, notifications.Welcome(recipientOf(user), string(user.Role))...)
	return &registration.TechnicianRegistration{User: user, Technician: technician}, nil
}

func (s *registrationService) RegisterCustomer(ctx context.Context, input *registration.CustomerInput) (*users.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.newUser(ctx, users.RoleCustomer, input.Name, input.Email, input.Phone, input.Password, input.PhoneToken, input.EmailToken)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered", "userId", user.ID)
	s.notifier.Notify(ctx, notifications.Welcome(recipientOf(user), string(user.Role))...)
	return user, nil
}
