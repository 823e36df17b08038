//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintService_RaiseAndResolve(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	dealerPrincipal, dealer := approvedDealer(t, ts)
	cust := customer(t, ts)
	b := book(t, ts, cust, dealer.ID)
	raise := &bookings.RaiseInput{Subject: "Unit still leaking", Description: "The AC started leaking again a day after the visit."}

	_, err := ts.ComplaintService.Raise(ctx, cust, b.ID, raise)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err), "pending bookings cannot be complained about")

	_, err = ts.BookingService.UpdateStatus(ctx, dealerPrincipal, b.ID, &bookings.StatusInput{Status: bookings.StatusConfirmed})
	require.NoError(t, err)

	_, err = ts.ComplaintService.Raise(ctx, customer(t, ts), b.ID, raise)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	complaint, err := ts.ComplaintService.Raise(ctx, cust, b.ID, raise)
	require.NoError(t, err)
	assert.Equal(t, bookings.ComplaintOpen, complaint.Status)

	_, err = ts.ComplaintService.Raise(ctx, cust, b.ID, raise)
	assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))

	_, err = ts.ComplaintService.Update(ctx, cust, complaint.ID, &bookings.ComplaintUpdate{Status: bookings.ComplaintInReview})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = ts.ComplaintService.Update(ctx, admin(users.RoleAdmin), complaint.ID, &bookings.ComplaintUpdate{Status: bookings.ComplaintResolved})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err), "resolution text required")

	resolved, err := ts.ComplaintService.Update(ctx, admin(users.RoleAdmin), complaint.ID, &bookings.ComplaintUpdate{
		Status:     bookings.ComplaintResolved,
		Resolution: "Free follow-up visit scheduled.",
		Upheld:     true,
	})
	require.NoError(t, err)
	assert.True(t, resolved.Upheld)
	assert.Contains(t, ts.Notifier.Events(), "complaint.updated")

	_, err = ts.ComplaintService.Update(ctx, admin(users.RoleAdmin), complaint.ID, &bookings.ComplaintUpdate{Status: bookings.ComplaintInReview})
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))

	upheld, err := ts.DBContext.ComplaintRepo.CountUpheld(ctx, bookings.CountFilter{DealerID: dealer.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upheld)

	_, err = ts.ComplaintService.Update(ctx, admin(users.RoleAdmin), complaint.ID, &bookings.ComplaintUpdate{Status: bookings.ComplaintClosed})
	require.NoError(t, err)
	_, err = ts.ComplaintService.Raise(ctx, cust, b.ID, raise)
	assert.NoError(t, err, "a closed complaint no longer blocks a new one")
}

func TestComplaintService_List(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	dealerPrincipal, dealer := approvedDealer(t, ts)
	cust := customer(t, ts)
	other := customer(t, ts)
	raise := &bookings.RaiseInput{Subject: "Late arrival", Description: "Technician arrived three hours late."}

	for _, c := range []*users.Principal{cust, other} {
		b := book(t, ts, c, dealer.ID)
		_, err := ts.BookingService.UpdateStatus(ctx, dealerPrincipal, b.ID, &bookings.StatusInput{Status: bookings.StatusConfirmed})
		require.NoError(t, err)
		_, err = ts.ComplaintService.Raise(ctx, c, b.ID, raise)
		require.NoError(t, err)
	}

	own, total, err := ts.ComplaintService.List(ctx, cust, &bookings.ComplaintQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, own, 1)
	assert.Equal(t, cust.UserID, own[0].CustomerID)

	_, total, err = ts.ComplaintService.List(ctx, admin(users.RoleAdmin), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, _, err = ts.ComplaintService.List(ctx, dealerPrincipal, nil)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
