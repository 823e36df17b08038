package bookings

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
)

// Actor is the caller of a booking operation with its resolved profile IDs
type Actor struct {
	Principal    *users.Principal
	DealerID     string
	TechnicianID string
}

func validationStatusError(s Status) error {
	return apperror.FieldValidation("status", "unknown booking status %q", s)
}

// CanView reports whether actor may read booking b
func (a *Actor) CanView(b *Booking) bool {
	switch {
	case a.Principal.IsAdmin():
		return true
	case a.Principal.Role == users.RoleCustomer:
		return b.CustomerID == a.Principal.UserID
	case a.Principal.Role == users.RoleDealer:
		return a.DealerID != "" && b.DealerID == a.DealerID
	case a.Principal.Role == users.RoleTechnician:
		return a.TechnicianID != "" && b.AssignedTo(a.TechnicianID)
	}
	return false
}

// CheckTransition enforces the status machine and the role rules for moving b to input.Status
func CheckTransition(a *Actor, b *Booking, input *StatusInput, now time.Time) error {
	to := input.Status
	if !to.Valid() {
		return validationStatusError(to)
	}

	if !a.CanView(b) {
		return apperror.Forbidden("not allowed to modify booking %s", b.ID)
	}

	if !b.Status.CanTransitionTo(to) {
		return apperror.InvalidTransition("booking", b.Status, to)
	}

	switch a.Principal.Role {
	case users.RoleCustomer:
		switch {
		case to == StatusCancelled:
		case to == StatusRescheduled && (b.Status == StatusPending || b.Status == StatusConfirmed):
		default:
			return apperror.Forbidden("customers may only cancel or reschedule a booking")
		}
	case users.RoleTechnician:
		if to != StatusInProgress && to != StatusCompleted {
			return apperror.Forbidden("technicians may only start or complete a booking")
		}
	case users.RoleDealer, users.RoleAdmin, users.RoleSuperAdmin:
	default:
		return apperror.Forbidden("role %s may not modify bookings", a.Principal.Role)
	}

	if to == StatusInProgress && b.TechnicianID == nil {
		return apperror.Validation("a technician must be assigned before the job can start")
	}

	if to == StatusRescheduled {
		if input.ScheduledAt == nil || !input.ScheduledAt.After(now) {
			return apperror.FieldValidation("scheduledAt", "rescheduling requires a future scheduledAt")
		}
	}

	if (to == StatusRejected || to == StatusCancelled) &&
		(a.Principal.Role == users.RoleDealer || a.Principal.IsAdmin()) &&
		strings.TrimSpace(input.Reason) == "" {
		return apperror.FieldValidation("reason", "a reason is required to %s a booking", strings.ToLower(string(to)))
	}

	return nil
}

// Apply moves b to input.Status and bumps its version. CheckTransition must pass first.
func Apply(b *Booking, input *StatusInput, now time.Time) {
	b.Status = input.Status
	b.StatusReason = strings.TrimSpace(input.Reason)
	if input.Status == StatusRescheduled && input.ScheduledAt != nil {
		b.ScheduledAt = input.ScheduledAt.UTC()
	}
	b.Version++
	b.UpdatedAt = now
}
