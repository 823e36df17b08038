package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *documents.DocumentMeta) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	model := &models.DocumentModel{}
	model.FromDomain(doc)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "document", doc.ID)
	}

	r.logger.Info("document metadata created", "document_id", doc.ID, "owner_id", doc.OwnerID, "kind", string(doc.Kind))
	return nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, docID string) (*documents.DocumentMeta, error) {
	var model models.DocumentModel
	if err := conn(ctx, r.db).Where("id = ?", docID).First(&model).Error; err != nil {
		return nil, translate(err, "document", docID)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) ListByOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) ([]*documents.DocumentMeta, error) {
	var modelList []*models.DocumentModel
	err := conn(ctx, r.db).
		Where("owner_type = ? AND owner_id = ?", string(ownerType), ownerID).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	docs := make([]*documents.DocumentMeta, len(modelList))
	for i, model := range modelList {
		docs[i] = model.ToDomain()
	}
	return docs, nil
}

func (r *gormDocumentRepository) DeleteByOwner(ctx context.Context, ownerType partners.PartnerType, ownerID string) error {
	err := conn(ctx, r.db).
		Where("owner_type = ? AND owner_id = ?", string(ownerType), ownerID).
		Delete(&models.DocumentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}

	r.logger.Info("documents deleted", "owner_type", string(ownerType), "owner_id", ownerID)
	return nil
}
