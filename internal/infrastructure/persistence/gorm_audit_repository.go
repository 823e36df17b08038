package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

type gormAuditReportRepository struct {
	db *gorm.DB
}

// NewGormAuditReportRepository creates a new GORM-based ReportRepository implementation
func NewGormAuditReportRepository(db *gorm.DB) (audits.ReportRepository, error) {
	return &gormAuditReportRepository{db: db}, nil
}

func (r *gormAuditReportRepository) Create(ctx context.Context, report *audits.Report) error {
	model := &models.AuditReportModel{}
	model.FromDomain(report)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "audit report", report.ID)
	}
	return nil
}

func (r *gormAuditReportRepository) GetByID(ctx context.Context, reportID string) (*audits.Report, error) {
	var model models.AuditReportModel
	if err := conn(ctx, r.db).Where("id = ?", reportID).First(&model).Error; err != nil {
		return nil, translate(err, "audit report", reportID)
	}
	return model.ToDomain(), nil
}

func (r *gormAuditReportRepository) List(ctx context.Context, query *audits.Query) ([]*audits.Report, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.AuditReportModel{})
	if query.SubjectType != "" {
		dbQuery = dbQuery.Where("subject_type = ?", string(query.SubjectType))
	}
	if query.SubjectID != "" {
		dbQuery = dbQuery.Where("subject_id = ?", query.SubjectID)
	}
	if query.RiskLevel != "" {
		dbQuery = dbQuery.Where("risk_level = ?", string(query.RiskLevel))
	}

	var modelList []*models.AuditReportModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit reports: %w", err)
	}

	reports := make([]*audits.Report, len(modelList))
	for i, model := range modelList {
		reports[i] = model.ToDomain()
	}
	return reports, total, nil
}
