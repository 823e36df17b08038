//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerService_ApproveActivatesUser(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	principal, dealer := approvedDealer(t, ts)
	assert.Equal(t, partners.AccountApproved, dealer.AccountStatus)

	user, err := ts.DBContext.UserRepo.GetByID(ctx, principal.UserID)
	require.NoError(t, err)
	assert.True(t, user.Active)
	assert.Contains(t, ts.Notifier.Events(), "account.status_changed")

	stored, err := ts.DealerService.GetByID(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, partners.AccountApproved, stored.AccountStatus)
}

func TestDealerService_AccountTransitions(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	actor := admin(users.RoleAdmin)

	reg, err := ts.RegistrationService.RegisterDealer(ctx, dealerInput(uniquePhone(), "transitions@example.com"))
	require.NoError(t, err)

	_, err = ts.DealerService.UpdateAccountStatus(ctx, actor, reg.Dealer.ID, &partners.StatusChange{Status: "SUSPENDED", Reason: "x"})
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))

	_, err = ts.DealerService.UpdateAccountStatus(ctx, actor, reg.Dealer.ID, &partners.StatusChange{Status: "REJECTED"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err), "rejection requires a reason")

	_, err = ts.DealerService.UpdateAccountStatus(ctx, actor, reg.Dealer.ID, &partners.StatusChange{Status: "ARCHIVED"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	rejected, err := ts.DealerService.UpdateAccountStatus(ctx, actor, reg.Dealer.ID, &partners.StatusChange{Status: "REJECTED", Reason: "incomplete documents"})
	require.NoError(t, err)
	assert.Equal(t, partners.AccountRejected, rejected.AccountStatus)
	assert.Equal(t, "incomplete documents", rejected.StatusReason)

	_, err = ts.DealerService.UpdateAccountStatus(ctx, actor, "00000000-0000-4000-8000-00000000ffff", &partners.StatusChange{Status: "APPROVED"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDealerService_KYCReview(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	actor := admin(users.RoleAdmin)

	_, dealer := approvedDealer(t, ts)

	_, err := ts.DealerService.UpdateKYCStatus(ctx, actor, dealer.ID, &partners.StatusChange{Status: "VERIFIED"})
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err), "nothing submitted yet")

	require.NoError(t, ts.DBContext.DealerRepo.UpdateKYCStatus(ctx, dealer.ID, partners.KYCSubmitted, ""))

	_, err = ts.DealerService.UpdateKYCStatus(ctx, actor, dealer.ID, &partners.StatusChange{Status: "REJECTED"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	rejected, err := ts.DealerService.UpdateKYCStatus(ctx, actor, dealer.ID, &partners.StatusChange{Status: "REJECTED", Reason: "pan card unreadable"})
	require.NoError(t, err)
	assert.Equal(t, "pan card unreadable", rejected.KYCReason)
	assert.Empty(t, rejected.StatusReason, "kyc review leaves the account reason alone")

	stored, err := ts.DealerService.GetByID(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, partners.AccountApproved, stored.AccountStatus)
	assert.Equal(t, "pan card unreadable", stored.KYCReason)

	require.NoError(t, ts.DBContext.DealerRepo.UpdateKYCStatus(ctx, dealer.ID, partners.KYCSubmitted, ""))

	verified, err := ts.DealerService.UpdateKYCStatus(ctx, actor, dealer.ID, &partners.StatusChange{Status: "VERIFIED"})
	require.NoError(t, err)
	assert.Equal(t, partners.KYCVerified, verified.KYCStatus)
	assert.Contains(t, ts.Notifier.Events(), "account.kyc_changed")
}

func TestDealerService_DeleteRemovesUser(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	principal, dealer := approvedDealer(t, ts)
	require.NoError(t, ts.DealerService.DeleteByID(ctx, admin(users.RoleAdmin), dealer.ID))

	_, err := ts.DealerService.GetByID(ctx, dealer.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = ts.DBContext.UserRepo.GetByID(ctx, principal.UserID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestTechnicianService_ListForDealer(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	dealerPrincipal, dealer := approvedDealer(t, ts)
	_, otherDealer := approvedDealer(t, ts)
	_, mine := approvedTechnician(t, ts, dealer.ID)
	approvedTechnician(t, ts, otherDealer.ID)

	technicians, total, err := ts.TechnicianService.ListForDealer(ctx, dealerPrincipal, &partners.TechnicianQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, technicians, 1)
	assert.Equal(t, mine.ID, technicians[0].ID)

	_, _, err = ts.TechnicianService.ListForDealer(ctx, customer(t, ts), &partners.TechnicianQuery{})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	all, total, err := ts.TechnicianService.List(ctx, &partners.TechnicianQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
