//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/registration"
	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationService_RegisterDealer(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	category, err := ts.TerritoryService.Create(ctx, &territories.Input{Name: "Pune Central", Pincodes: []string{"411001", "411002"}})
	require.NoError(t, err)

	phone := uniquePhone()
	reg, err := ts.RegistrationService.RegisterDealer(ctx, dealerInput(phone, "Owner@Example.com"))
	require.NoError(t, err)

	assert.Equal(t, users.RoleDealer, reg.User.Role)
	assert.True(t, reg.User.PhoneVerified)
	assert.True(t, reg.User.EmailVerified)
	assert.Equal(t, "owner@example.com", reg.User.EmailAddress())
	assert.Equal(t, partners.AccountPending, reg.Dealer.AccountStatus)
	assert.Equal(t, partners.KYCNotSubmitted, reg.Dealer.KYCStatus)
	assert.Equal(t, partners.DefaultTrustScore, reg.Dealer.TrustScore)
	require.NotNil(t, reg.Dealer.TerritoryCategoryID, "territory resolved from pincode")
	assert.Equal(t, category.ID, *reg.Dealer.TerritoryCategoryID)
	assert.Contains(t, ts.Notifier.Events(), "account.registered")

	stored, err := ts.DBContext.DealerRepo.GetByUserID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Dealer.ID, stored.ID)
}

func TestRegistrationService_DuplicatePhone(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	phone := uniquePhone()
	_, err := ts.RegistrationService.RegisterDealer(ctx, dealerInput(phone, "first@example.com"))
	require.NoError(t, err)

	_, err = ts.RegistrationService.RegisterDealer(ctx, dealerInput(phone, "second@example.com"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "phone already registered")
}

func TestRegistrationService_TokenMismatch(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)

	input := dealerInput(uniquePhone(), "owner@example.com")
	input.PhoneToken = "phone:+919000000000"

	_, err := ts.RegistrationService.RegisterDealer(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "phone does not match verified token")

	input = dealerInput(uniquePhone(), "owner@example.com")
	input.EmailToken = "email:other@example.com"
	_, err = ts.RegistrationService.RegisterDealer(context.Background(), input)
	assert.Contains(t, err.Error(), "email does not match verified token")
}

func TestRegistrationService_InvalidToken(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)

	input := dealerInput(uniquePhone(), "owner@example.com")
	input.PhoneToken = "garbage"

	_, err := ts.RegistrationService.RegisterDealer(context.Background(), input)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestRegistrationService_RegisterTechnician_DealerMustBeApproved(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	pending, err := ts.RegistrationService.RegisterDealer(ctx, dealerInput(uniquePhone(), "pending@example.com"))
	require.NoError(t, err)

	phone := uniquePhone()
	_, err = ts.RegistrationService.RegisterTechnician(ctx, &registration.TechnicianInput{
		Name:       "Imran Khan",
		Email:      "imran@example.com",
		Phone:      phone,
		Password:   "s3cret-pass",
		Skills:     []string{"wiring"},
		City:       "Pune",
		Pincode:    "411002",
		DealerID:   &pending.Dealer.ID,
		PhoneToken: "phone:" + phone,
		EmailToken: "email:imran@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, dealer := approvedDealer(t, ts)
	_, technician := approvedTechnician(t, ts, dealer.ID)
	assert.Equal(t, []string{"ac repair", "wiring"}, technician.Skills)
	require.NotNil(t, technician.DealerID)
	assert.Equal(t, dealer.ID, *technician.DealerID)
}

func TestRegistrationService_RegisterCustomer_EmailOptional(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)

	user := customer(t, ts)
	stored, err := ts.DBContext.UserRepo.GetByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Nil(t, stored.Email)
	assert.True(t, stored.Active)
	assert.False(t, stored.EmailVerified)
}

func TestRegistrationService_Validation(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)

	input := dealerInput("9876543210", "owner@example.com")
	_, err := ts.RegistrationService.RegisterDealer(context.Background(), input)
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "phone", appErr.Field)

	input = dealerInput(uniquePhone(), "owner@example.com")
	input.Pincode = "0110"
	_, err = ts.RegistrationService.RegisterDealer(context.Background(), input)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "pincode", appErr.Field)
}
