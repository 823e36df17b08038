package trust

import (
	"context"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
)

// HistoryRepository persists trust score history
type HistoryRepository interface {
	Append(ctx context.Context, entry *History) error
	List(ctx context.Context, query *HistoryQuery) ([]*History, int64, error)
}

// TrustService adjusts and recalculates dealer and technician trust scores
type TrustService interface {
	// Adjust applies a manual delta, clamps the result and appends a history entry.
	Adjust(ctx context.Context, actor *users.Principal, input *AdjustInput) (*History, error)
	// Recalculate derives the score from booking outcomes and appends a history entry.
	Recalculate(ctx context.Context, actor *users.Principal, input *RecalculateInput) (*History, error)
	History(ctx context.Context, query *HistoryQuery) ([]*History, int64, error)
}
