//go:build unit
// +build unit

package bookings

import (
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

const (
	customerID   = "8a4a1f58-6e0e-4c1e-9f0e-2b7f5cc1d001"
	dealerID     = "8a4a1f58-6e0e-4c1e-9f0e-2b7f5cc1d002"
	technicianID = "8a4a1f58-6e0e-4c1e-9f0e-2b7f5cc1d003"
)

func testBooking(status Status, assigned bool) *Booking {
	b := &Booking{ID: "b-1", CustomerID: customerID, DealerID: dealerID, Status: status, Version: 1}
	if assigned {
		id := technicianID
		b.TechnicianID = &id
	}
	return b
}

func customer() *Actor {
	return &Actor{Principal: &users.Principal{UserID: customerID, Role: users.RoleCustomer}}
}

func dealer() *Actor {
	return &Actor{Principal: &users.Principal{UserID: "u-dealer", Role: users.RoleDealer}, DealerID: dealerID}
}

func technician() *Actor {
	return &Actor{Principal: &users.Principal{UserID: "u-tech", Role: users.RoleTechnician}, TechnicianID: technicianID}
}

func admin() *Actor {
	return &Actor{Principal: &users.Principal{UserID: "u-admin", Role: users.RoleAdmin}}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusRescheduled.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
}

func TestCheckTransition(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name     string
		actor    *Actor
		booking  *Booking
		input    StatusInput
		wantKind apperror.Kind
	}{
		{"dealer confirms", dealer(), testBooking(StatusPending, false), StatusInput{Status: StatusConfirmed}, ""},
		{"customer cancels", customer(), testBooking(StatusConfirmed, false), StatusInput{Status: StatusCancelled}, ""},
		{"customer reschedules", customer(), testBooking(StatusPending, false), StatusInput{Status: StatusRescheduled, ScheduledAt: &future}, ""},
		{"customer cannot confirm", customer(), testBooking(StatusPending, false), StatusInput{Status: StatusConfirmed}, apperror.KindForbidden},
		{"reschedule in the past", customer(), testBooking(StatusPending, false), StatusInput{Status: StatusRescheduled, ScheduledAt: &past}, apperror.KindValidation},
		{"reschedule without date", dealer(), testBooking(StatusConfirmed, false), StatusInput{Status: StatusRescheduled}, apperror.KindValidation},
		{"technician starts", technician(), testBooking(StatusConfirmed, true), StatusInput{Status: StatusInProgress}, ""},
		{"technician completes", technician(), testBooking(StatusInProgress, true), StatusInput{Status: StatusCompleted}, ""},
		{"technician cannot cancel", technician(), testBooking(StatusConfirmed, true), StatusInput{Status: StatusCancelled}, apperror.KindForbidden},
		{"unassigned technician", technician(), testBooking(StatusConfirmed, false), StatusInput{Status: StatusInProgress}, apperror.KindForbidden},
		{"start without technician", dealer(), testBooking(StatusConfirmed, false), StatusInput{Status: StatusInProgress}, apperror.KindValidation},
		{"invalid transition", admin(), testBooking(StatusCompleted, true), StatusInput{Status: StatusPending}, apperror.KindInvalidTransition},
		{"skip ahead", admin(), testBooking(StatusPending, true), StatusInput{Status: StatusCompleted}, apperror.KindInvalidTransition},
		{"dealer reject needs reason", dealer(), testBooking(StatusPending, false), StatusInput{Status: StatusRejected}, apperror.KindValidation},
		{"dealer reject with reason", dealer(), testBooking(StatusPending, false), StatusInput{Status: StatusRejected, Reason: "out of area"}, ""},
		{"admin cancel needs reason", admin(), testBooking(StatusConfirmed, false), StatusInput{Status: StatusCancelled}, apperror.KindValidation},
		{"other dealer", &Actor{Principal: &users.Principal{Role: users.RoleDealer}, DealerID: "other"}, testBooking(StatusPending, false), StatusInput{Status: StatusConfirmed}, apperror.KindForbidden},
		{"unknown status", admin(), testBooking(StatusPending, false), StatusInput{Status: "DONE"}, apperror.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.actor, tt.booking, &tt.input, now)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err), "got %v", err)
		})
	}
}

func TestApply(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	b := testBooking(StatusConfirmed, false)

	Apply(b, &StatusInput{Status: StatusRescheduled, ScheduledAt: &future, Reason: " customer away "}, now)

	assert.Equal(t, StatusRescheduled, b.Status)
	assert.Equal(t, "customer away", b.StatusReason)
	assert.Equal(t, future.UTC(), b.ScheduledAt)
	assert.Equal(t, 2, b.Version)
}

func TestComplaint_ApplyUpdate(t *testing.T) {
	now := time.Now()
	c := &Complaint{Status: ComplaintOpen}

	err := c.ApplyUpdate(&ComplaintUpdate{Status: ComplaintResolved}, now)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	err = c.ApplyUpdate(&ComplaintUpdate{Status: ComplaintResolved, Resolution: "refund issued", Upheld: true}, now)
	assert.NoError(t, err)
	assert.True(t, c.Upheld)

	err = c.ApplyUpdate(&ComplaintUpdate{Status: ComplaintInReview}, now)
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))

	err = c.ApplyUpdate(&ComplaintUpdate{Status: ComplaintClosed}, now)
	assert.NoError(t, err)
	assert.Equal(t, ComplaintClosed, c.Status)
	assert.Equal(t, "refund issued", c.Resolution)
}
