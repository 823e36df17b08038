//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func uniquePhone() string {
	return fmt.Sprintf("+9197%08d", rand.Intn(100000000))
}

func principalOf(u *users.User) *users.Principal {
	return &users.Principal{UserID: u.ID, Role: u.Role, Name: u.Name}
}

func dealerInput(phone, email string) *registration.DealerInput {
	return &registration.DealerInput{
		Name:         "Ravi Sharma",
		Email:        email,
		Phone:        phone,
		Password:     "s3cret-pass",
		BusinessName: "Sharma Electricals",
		Address:      "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
		PhoneToken:   "phone:" + phone,
		EmailToken:   "email:" + email,
	}
}

// approvedDealer registers a dealer and approves it
func approvedDealer(t *testing.T, ts *TestServices) (*users.Principal, *partners.Dealer) {
	t.Helper()
	ctx := context.Background()

	phone := uniquePhone()
	reg, err := ts.RegistrationService.RegisterDealer(ctx, dealerInput(phone, fmt.Sprintf("dealer%s@example.com", phone[1:])))
	require.NoError(t, err)

	dealer, err := ts.DealerService.UpdateAccountStatus(ctx, admin(users.RoleAdmin), reg.Dealer.ID, &partners.StatusChange{Status: "APPROVED"})
	require.NoError(t, err)
	return principalOf(reg.User), dealer
}

// approvedTechnician registers a technician attached to dealerID and approves it
func approvedTechnician(t *testing.T, ts *TestServices, dealerID string) (*users.Principal, *partners.Technician) {
	t.Helper()
	ctx := context.Background()

	phone := uniquePhone()
	email := fmt.Sprintf("tech%s@example.com", phone[1:])
	reg, err := ts.RegistrationService.RegisterTechnician(ctx, &registration.TechnicianInput{
		Name:            "Imran Khan",
		Email:           email,
		Phone:           phone,
		Password:        "s3cret-pass",
		Skills:          []string{"AC Repair", "wiring"},
		ExperienceYears: 3,
		City:            "Pune",
		Pincode:         "411002",
		DealerID:        &dealerID,
		PhoneToken:      "phone:" + phone,
		EmailToken:      "email:" + email,
	})
	require.NoError(t, err)

	technician, err := ts.TechnicianService.UpdateAccountStatus(ctx, admin(users.RoleAdmin), reg.Technician.ID, &partners.StatusChange{Status: "APPROVED"})
	require.NoError(t, err)
	return principalOf(reg.User), technician
}

func customer(t *testing.T, ts *TestServices) *users.Principal {
	t.Helper()

	phone := uniquePhone()
	user, err := ts.RegistrationService.RegisterCustomer(context.Background(), &registration.CustomerInput{
		Name:       "Asha Rao",
		Phone:      phone,
		Password:   "s3cret-pass",
		PhoneToken: "phone:" + phone,
	})
	require.NoError(t, err)
	return principalOf(user)
}

func book(t *testing.T, ts *TestServices, cust *users.Principal, dealerID string) *bookings.Booking {
	t.Helper()

	b, err := ts.BookingService.Create(context.Background(), cust, &bookings.CreateInput{
		DealerID:    dealerID,
		ServiceType: "AC service",
		Address:     "4 Park Street",
		Pincode:     "411001",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	return b
}

func approvedSeller(t *testing.T, ts *TestServices) *commerce.Seller {
	t.Helper()
	ctx := context.Background()

	seller, err := ts.SellerService.Create(ctx, &commerce.SellerInput{
		Name:           "Volt Supplies",
		Email:          fmt.Sprintf("seller%d@example.com", rand.Intn(1000000)),
		Phone:          uniquePhone(),
		CommissionRate: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	seller, err = ts.SellerService.UpdateStatus(ctx, seller.ID, &commerce.SellerStatusInput{Status: commerce.SellerApproved})
	require.NoError(t, err)
	return seller
}

func product(t *testing.T, ts *TestServices, sellerID, sku, price string, stock int) *commerce.Product {
	t.Helper()

	p, err := ts.ProductService.Create(context.Background(), &commerce.ProductInput{
		SellerID: sellerID,
		Name:     "Capacitor " + sku,
		SKU:      sku,
		Category: "spares",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Active:   true,
	})
	require.NoError(t, err)
	return p
}
