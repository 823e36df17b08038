//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrustService_AdminLimit(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, dealer := approvedDealer(t, ts)

	_, err := ts.TrustService.Adjust(ctx, admin(users.RoleAdmin), &trust.AdjustInput{
		SubjectType: partners.TypeDealer,
		SubjectID:   dealer.ID,
		Delta:       6,
		Reason:      "great feedback",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	entry, err := ts.TrustService.Adjust(ctx, admin(users.RoleAdmin), &trust.AdjustInput{
		SubjectType: partners.TypeDealer,
		SubjectID:   dealer.ID,
		Delta:       -5,
		Reason:      "late arrivals",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, entry.PreviousScore)
	assert.Equal(t, 45, entry.NewScore)
	assert.Equal(t, trust.SourceManual, entry.Source)

	_, err = ts.TrustService.Adjust(ctx, customer(t, ts), &trust.AdjustInput{
		SubjectType: partners.TypeDealer,
		SubjectID:   dealer.ID,
		Delta:       1,
		Reason:      "thanks",
	})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestTrustService_SuperAdminClampsAndRecordsHistory(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, dealer := approvedDealer(t, ts)
	_, technician := approvedTechnician(t, ts, dealer.ID)

	entry, err := ts.TrustService.Adjust(ctx, admin(users.RoleSuperAdmin), &trust.AdjustInput{
		SubjectType: partners.TypeTechnician,
		SubjectID:   technician.ID,
		Delta:       80,
		Reason:      "top rated technician",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, entry.NewScore)
	assert.Equal(t, 50, entry.Delta)

	entry, err = ts.TrustService.Adjust(ctx, admin(users.RoleSuperAdmin), &trust.AdjustInput{
		SubjectType: partners.TypeTechnician,
		SubjectID:   technician.ID,
		Delta:       -250,
		Reason:      "fraud confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.NewScore)

	stored, err := ts.TechnicianService.GetByID(ctx, technician.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.TrustScore)

	history, total, err := ts.TrustService.History(ctx, &trust.HistoryQuery{SubjectType: partners.TypeTechnician, SubjectID: technician.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, history, 2)

	_, _, err = ts.TrustService.History(ctx, &trust.HistoryQuery{SubjectType: partners.TypeTechnician})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestTrustService_AdjustValidation(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, dealer := approvedDealer(t, ts)

	_, err := ts.TrustService.Adjust(ctx, admin(users.RoleAdmin), &trust.AdjustInput{SubjectType: partners.TypeDealer, SubjectID: dealer.ID, Delta: 0, Reason: "noop"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = ts.TrustService.Adjust(ctx, admin(users.RoleAdmin), &trust.AdjustInput{SubjectType: partners.TypeDealer, SubjectID: dealer.ID, Delta: 2, Reason: "x"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = ts.TrustService.Adjust(ctx, admin(users.RoleAdmin), &trust.AdjustInput{SubjectType: partners.TypeDealer, SubjectID: "00000000-0000-4000-8000-00000000abcd", Delta: 2, Reason: "missing"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestTrustService_Recalculate(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	dealerPrincipal, dealer := approvedDealer(t, ts)
	cust := customer(t, ts)

	rejected := book(t, ts, cust, dealer.ID)
	_, err := ts.BookingService.UpdateStatus(ctx, dealerPrincipal, rejected.ID, &bookings.StatusInput{Status: bookings.StatusRejected, Reason: "out of area"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		b := book(t, ts, cust, dealer.ID)
		b.Status = bookings.StatusCompleted
		b.Version++
		require.NoError(t, ts.DBContext.BookingRepo.Update(ctx, b, b.Version-1))
	}

	_, err = ts.TrustService.Recalculate(ctx, dealerPrincipal, &trust.RecalculateInput{SubjectType: partners.TypeDealer, SubjectID: dealer.ID})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	entry, err := ts.TrustService.Recalculate(ctx, admin(users.RoleAdmin), &trust.RecalculateInput{SubjectType: partners.TypeDealer, SubjectID: dealer.ID})
	require.NoError(t, err)
	assert.Equal(t, trust.Recalculate(2, 1, 0), entry.NewScore)
	assert.Equal(t, 51, entry.NewScore)
	assert.Equal(t, trust.SourceRecalculation, entry.Source)
}
