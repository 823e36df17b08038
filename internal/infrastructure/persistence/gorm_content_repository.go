package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContentRepository creates a new GORM-based ContentRepository implementation
func NewGormContentRepository(db *gorm.DB, logger logger.Logger) (marketing.ContentRepository, error) {
	return &gormContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContentRepository) Create(ctx context.Context, content *marketing.Content) error {
	if err := content.Validate(); err != nil {
		return err
	}

	model := &models.MarketingContentModel{}
	model.FromDomain(content)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "content", content.ID)
	}

	r.logger.Info("marketing content created", "content_id", content.ID, "kind", string(content.Kind))
	return nil
}

func (r *gormContentRepository) GetByID(ctx context.Context, contentID string) (*marketing.Content, error) {
	var model models.MarketingContentModel
	if err := conn(ctx, r.db).Where("id = ?", contentID).First(&model).Error; err != nil {
		return nil, translate(err, "content", contentID)
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository) List(ctx context.Context, query *marketing.Query) ([]*marketing.Content, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.MarketingContentModel{})
	if query.Kind != "" {
		dbQuery = dbQuery.Where("kind = ?", string(query.Kind))
	}
	if query.Published != nil {
		dbQuery = dbQuery.Where("published = ?", *query.Published)
	}

	var modelList []*models.MarketingContentModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch marketing content: %w", err)
	}

	domainList := make([]*marketing.Content, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

// ListActive returns published content whose window contains now, by position
func (r *gormContentRepository) ListActive(ctx context.Context, kind marketing.Kind, now time.Time) ([]*marketing.Content, error) {
	dbQuery := conn(ctx, r.db).Model(&models.MarketingContentModel{}).
		Where("published = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at > ?", now)
	if kind != "" {
		dbQuery = dbQuery.Where("kind = ?", string(kind))
	}

	var modelList []*models.MarketingContentModel
	if err := dbQuery.Order("position asc").Order("created_at desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch active content: %w", err)
	}

	domainList := make([]*marketing.Content, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormContentRepository) Update(ctx context.Context, content *marketing.Content) error {
	if err := content.Validate(); err != nil {
		return err
	}

	model := &models.MarketingContentModel{}
	model.FromDomain(content)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "content", content.ID)
	}
	return nil
}

func (r *gormContentRepository) DeleteByID(ctx context.Context, contentID string) error {
	if err := conn(ctx, r.db).Where("id = ?", contentID).Delete(&models.MarketingContentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	r.logger.Info("marketing content deleted", "content_id", contentID)
	return nil
}
