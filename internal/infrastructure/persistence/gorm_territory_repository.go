package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (territories.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *territories.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	model := &models.TerritoryCategoryModel{}
	model.FromDomain(category)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "territory category", category.ID)
	}

	r.logger.Info("territory category created", "category_id", category.ID, "name", category.Name)
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID string) (*territories.Category, error) {
	var model models.TerritoryCategoryModel
	if err := conn(ctx, r.db).Where("id = ?", categoryID).First(&model).Error; err != nil {
		return nil, translate(err, "territory category", categoryID)
	}
	return model.ToDomain(), nil
}

// ExistsByName matches names case-insensitively, ignoring the category excludeID
func (r *gormCategoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	dbQuery := conn(ctx, r.db).Model(&models.TerritoryCategoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check territory name: %w", err)
	}
	return count > 0, nil
}

func (r *gormCategoryRepository) List(ctx context.Context, query *territories.Query) ([]*territories.Category, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.TerritoryCategoryModel{})
	if query.Search != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", likePattern(strings.ToLower(query.Search)))
	}

	var modelList []*models.TerritoryCategoryModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch territory categories: %w", err)
	}

	domainList := make([]*territories.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

// FindByPincode returns the oldest category whose pincode list contains pincode
func (r *gormCategoryRepository) FindByPincode(ctx context.Context, pincode string) (*territories.Category, error) {
	var model models.TerritoryCategoryModel
	err := conn(ctx, r.db).
		Where("',' || pincodes || ',' LIKE ?", likePattern(","+pincode+",")).
		Order("created_at asc").
		First(&model).Error
	if err != nil {
		return nil, translate(err, "territory for pincode", pincode)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, category *territories.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	model := &models.TerritoryCategoryModel{}
	model.FromDomain(category)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "territory category", category.ID)
	}
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, categoryID string) error {
	if err := conn(ctx, r.db).Where("id = ?", categoryID).Delete(&models.TerritoryCategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete territory category: %w", err)
	}

	r.logger.Info("territory category deleted", "category_id", categoryID)
	return nil
}
