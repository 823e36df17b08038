// Package trust holds the trust score rules and the append-only adjustment history.
package trust

import (
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/google/uuid"
)

// Score bounds and limits. Scores are whole points.
const (
	MinScore        = 0
	MaxScore        = 100
	BaseScore       = partners.DefaultTrustScore
	AdminDeltaLimit = 5

	CompletedWeight = 2
	RejectedWeight  = 3
	UpheldWeight    = 5
)

// Source of a score change
type Source string

// Sources
const (
	SourceManual        Source = "MANUAL"
	SourceRecalculation Source = "RECALCULATION"
)

// History is one append-only score change
type History struct {
	ID            string
	SubjectType   partners.PartnerType
	SubjectID     string
	PreviousScore int
	NewScore      int
	Delta         int
	Reason        string
	ActorID       string
	Source        Source
	CreatedAt     time.Time
}

// NewHistory records a change from previous to next
func NewHistory(subjectType partners.PartnerType, subjectID string, previous, next int, reason, actorID string, source Source) *History {
	return &History{
		ID:            uuid.NewString(),
		SubjectType:   subjectType,
		SubjectID:     subjectID,
		PreviousScore: previous,
		NewScore:      next,
		Delta:         next - previous,
		Reason:        reason,
		ActorID:       actorID,
		Source:        source,
		CreatedAt:     time.Now().UTC(),
	}
}

// Clamp bounds score to [MinScore, MaxScore]
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// CheckAdjustment validates a manual adjustment by role.
// ADMIN is limited to AdminDeltaLimit per adjustment, SUPER_ADMIN is not.
func CheckAdjustment(role users.Role, delta int, reason string) error {
	if delta == 0 {
		return apperror.FieldValidation("delta", "delta must not be zero")
	}
	if len(strings.TrimSpace(reason)) < 3 {
		return apperror.FieldValidation("reason", "reason must be at least 3 characters")
	}

	switch role {
	case users.RoleSuperAdmin:
		return nil
	case users.RoleAdmin:
		if delta > AdminDeltaLimit || delta < -AdminDeltaLimit {
			return apperror.Forbidden("admins may adjust trust scores by at most %d points", AdminDeltaLimit)
		}
		return nil
	default:
		return apperror.Forbidden("role %s may not adjust trust scores", role)
	}
}

// Recalculate derives a score from booking outcomes
func Recalculate(completed, rejected, upheldComplaints int64) int {
	score := int64(BaseScore) +
		CompletedWeight*completed -
		RejectedWeight*rejected -
		UpheldWeight*upheldComplaints

	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return int(score)
}

// AdjustInput is a manual trust score adjustment
type AdjustInput struct {
	SubjectType partners.PartnerType `json:"subjectType" validate:"required,oneof=DEALER TECHNICIAN"`
	SubjectID   string               `json:"subjectId" validate:"required,uuid4"`
	Delta       int                  `json:"delta" validate:"required"`
	Reason      string               `json:"reason" validate:"required,min=3,max=500"`
}

// RecalculateInput asks for a score recalculation from booking outcomes
type RecalculateInput struct {
	SubjectType partners.PartnerType `json:"subjectType" validate:"required,oneof=DEALER TECHNICIAN"`
	SubjectID   string               `json:"subjectId" validate:"required,uuid4"`
}

// HistoryQuery lists the history of one subject
type HistoryQuery struct {
	SubjectType partners.PartnerType
	SubjectID   string
	listing.Page
}

// Validate checks the query parameters
func (q *HistoryQuery) Validate() error {
	if !q.SubjectType.Valid() {
		return apperror.FieldValidation("subjectType", "subjectType must be DEALER or TECHNICIAN")
	}
	if q.SubjectID == "" {
		return apperror.FieldValidation("subjectId", "subjectId is required")
	}
	return q.Page.Validate("created_at")
}
