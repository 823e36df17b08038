package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

type gormTrustHistoryRepository struct {
	db *gorm.DB
}

// NewGormTrustHistoryRepository creates a new GORM-based HistoryRepository implementation
func NewGormTrustHistoryRepository(db *gorm.DB) (trust.HistoryRepository, error) {
	return &gormTrustHistoryRepository{db: db}, nil
}

func (r *gormTrustHistoryRepository) Append(ctx context.Context, entry *trust.History) error {
	model := &models.TrustScoreHistoryModel{}
	model.FromDomain(entry)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "trust history", entry.ID)
	}
	return nil
}

func (r *gormTrustHistoryRepository) List(ctx context.Context, query *trust.HistoryQuery) ([]*trust.History, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.TrustScoreHistoryModel{}).
		Where("subject_type = ? AND subject_id = ?", string(query.SubjectType), query.SubjectID)

	var modelList []*models.TrustScoreHistoryModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch trust history: %w", err)
	}

	entries := make([]*trust.History, len(modelList))
	for i, model := range modelList {
		entries[i] = model.ToDomain()
	}
	return entries, total, nil
}
