package partners

import (
	"context"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// DealerRepository persists dealer profiles. Status and score writers touch only their
// own columns so concurrent admin actions on one profile do not overwrite each other.
type DealerRepository interface {
	Create(ctx context.Context, dealer *Dealer) error
	GetByID(ctx context.Context, dealerID string) (*Dealer, error)
	GetByUserID(ctx context.Context, userID string) (*Dealer, error)
	// GetByIDForUpdate reads the dealer and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, dealerID string) (*Dealer, error)
	List(ctx context.Context, query *DealerQuery) ([]*Dealer, int64, error)
	UpdateAccountStatus(ctx context.Context, dealerID string, status AccountStatus, reason string) error
	UpdateKYCStatus(ctx context.Context, dealerID string, status KYCStatus, reason string) error
	UpdateTrustScore(ctx context.Context, dealerID string, score int) error
	DeleteByID(ctx context.Context, dealerID string) error
	CountByAccountStatus(ctx context.Context) (map[AccountStatus]int64, error)
}

// TechnicianRepository persists technician profiles
type TechnicianRepository interface {
	Create(ctx context.Context, technician *Technician) error
	GetByID(ctx context.Context, technicianID string) (*Technician, error)
	GetByUserID(ctx context.Context, userID string) (*Technician, error)
	GetByIDForUpdate(ctx context.Context, technicianID string) (*Technician, error)
	List(ctx context.Context, query *TechnicianQuery) ([]*Technician, int64, error)
	UpdateAccountStatus(ctx context.Context, technicianID string, status AccountStatus, reason string) error
	UpdateKYCStatus(ctx context.Context, technicianID string, status KYCStatus, reason string) error
	UpdateTrustScore(ctx context.Context, technicianID string, score int) error
	DeleteByID(ctx context.Context, technicianID string) error
	CountByAccountStatus(ctx context.Context) (map[AccountStatus]int64, error)
}

// StatusChange is an admin request to move an account or KYC status
type StatusChange struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
}

// DealerService is the admin panel for dealers
type DealerService interface {
	List(ctx context.Context, query *DealerQuery) ([]*Dealer, int64, error)
	GetByID(ctx context.Context, dealerID string) (*Dealer, error)
	UpdateAccountStatus(ctx context.Context, actor *users.Principal, dealerID string, change *StatusChange) (*Dealer, error)
	UpdateKYCStatus(ctx context.Context, actor *users.Principal, dealerID string, change *StatusChange) (*Dealer, error)
	// DeleteByID removes the dealer profile and its user account in one transaction.
	DeleteByID(ctx context.Context, actor *users.Principal, dealerID string) error
}

// TechnicianService is the admin panel for technicians
type TechnicianService interface {
	List(ctx context.Context, query *TechnicianQuery) ([]*Technician, int64, error)
	// ListForDealer lists the technicians attached to the calling dealer.
	ListForDealer(ctx context.Context, actor *users.Principal, query *TechnicianQuery) ([]*Technician, int64, error)
	GetByID(ctx context.Context, technicianID string) (*Technician, error)
	UpdateAccountStatus(ctx context.Context, actor *users.Principal, technicianID string, change *StatusChange) (*Technician, error)
	UpdateKYCStatus(ctx context.Context, actor *users.Principal, technicianID string, change *StatusChange) (*Technician, error)
	DeleteByID(ctx context.Context, actor *users.Principal, technicianID string) error
}
