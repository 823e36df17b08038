// Package registration defines the self-service sign-up flows for dealers, technicians and customers.
package registration

import (
	"context"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// DealerInput is the dealer sign-up request
type DealerInput struct {
	Name                string  `json:"name" validate:"required,min=2,max=120"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               string  `json:"phone" validate:"required,e164"`
	Password            string  `json:"password" validate:"required,min=8,max=72"`
	BusinessName        string  `json:"businessName" validate:"required,min=2,max=200"`
	GSTNumber           string  `json:"gstNumber" validate:"omitempty,gstin"`
	Address             string  `json:"address" validate:"required,max=500"`
	City                string  `json:"city" validate:"required,max=100"`
	State               string  `json:"state" validate:"required,max=100"`
	Pincode             string  `json:"pincode" validate:"required,pincode"`
	TerritoryCategoryID *string `json:"territoryCategoryId" validate:"omitempty,uuid4"`
	PhoneToken          string  `json:"phoneToken" validate:"required"`
	EmailToken          string  `json:"emailToken" validate:"required"`
}

// TechnicianInput is the technician sign-up request
type TechnicianInput struct {
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,e164"`
	Password        string   `json:"password" validate:"required,min=8,max=72"`
	Skills          []string `json:"skills" validate:"required,min=1,dive,required,max=60"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0,lte=60"`
	City            string   `json:"city" validate:"required,max=100"`
	Pincode         string   `json:"pincode" validate:"required,pincode"`
	DealerID        *string  `json:"dealerId" validate:"omitempty,uuid4"`
	PhoneToken      string   `json:"phoneToken" validate:"required"`
	EmailToken      string   `json:"emailToken" validate:"required"`
}

// CustomerInput is the customer sign-up request. Email is optional.
type CustomerInput struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"required,e164"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	PhoneToken string `json:"phoneToken" validate:"required"`
	EmailToken string `json:"emailToken" validate:"required_with=Email"`
}

// DealerRegistration is the result of a dealer sign-up
type DealerRegistration struct {
	User   *users.User
	Dealer *partners.Dealer
}

// TechnicianRegistration is the result of a technician sign-up
type TechnicianRegistration struct {
	User       *users.User
	Technician *partners.Technician
}

// RegistrationService registers new accounts after verifying phone and email ownership
type RegistrationService interface {
	RegisterDealer(ctx context.Context, input *DealerInput) (*DealerRegistration, error)
	RegisterTechnician(ctx context.Context, input *TechnicianInput) (*TechnicianRegistration, error)
	RegisterCustomer(ctx context.Context, input *CustomerInput) (*users.User, error)
}
