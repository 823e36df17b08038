package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormDealerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDealerRepository creates a new GORM-based DealerRepository implementation
func NewGormDealerRepository(db *gorm.DB, logger logger.Logger) (partners.DealerRepository, error) {
	return &gormDealerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDealerRepository) Create(ctx context.Context, dealer *partners.Dealer) error {
	if err := dealer.Validate(); err != nil {
		return err
	}

	model := &models.DealerModel{}
	model.FromDomain(dealer)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "dealer", dealer.ID)
	}

	r.logger.Info("dealer created", "dealer_id", dealer.ID, "user_id", dealer.UserID)
	return nil
}

func (r *gormDealerRepository) GetByID(ctx context.Context, dealerID string) (*partners.Dealer, error) {
	var model models.DealerModel
	if err := conn(ctx, r.db).Where("id = ?", dealerID).First(&model).Error; err != nil {
		return nil, translate(err, "dealer", dealerID)
	}
	return model.ToDomain(), nil
}

func (r *gormDealerRepository) GetByIDForUpdate(ctx context.Context, dealerID string) (*partners.Dealer, error) {
	var model models.DealerModel
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", dealerID).First(&model).Error
	if err != nil {
		return nil, translate(err, "dealer", dealerID)
	}
	return model.ToDomain(), nil
}

func (r *gormDealerRepository) GetByUserID(ctx context.Context, userID string) (*partners.Dealer, error) {
	var model models.DealerModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, translate(err, "dealer for user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormDealerRepository) List(ctx context.Context, query *partners.DealerQuery) ([]*partners.Dealer, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.DealerModel{})

	if query.AccountStatus != "" {
		dbQuery = dbQuery.Where("account_status = ?", string(query.AccountStatus))
	}
	if query.KYCStatus != "" {
		dbQuery = dbQuery.Where("kyc_status = ?", string(query.KYCStatus))
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("LOWER(city) = ?", strings.ToLower(query.City))
	}
	if query.TerritoryID != "" {
		dbQuery = dbQuery.Where("territory_category_id = ?", query.TerritoryID)
	}
	if query.Search != "" {
		pattern := likePattern(strings.ToLower(query.Search))
		dbQuery = dbQuery.Where("LOWER(business_name) LIKE ? OR LOWER(owner_name) LIKE ?", pattern, pattern)
	}

	var modelList []*models.DealerModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch dealers: %w", err)
	}

	domainList := make([]*partners.Dealer, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormDealerRepository) UpdateAccountStatus(ctx context.Context, dealerID string, status partners.AccountStatus, reason string) error {
	err := updateColumns(conn(ctx, r.db).Model(&models.DealerModel{}), "dealer", dealerID, map[string]interface{}{
		"account_status": string(status),
		"status_reason":  reason,
	})
	if err != nil {
		return err
	}

	r.logger.Info("dealer account status updated", "dealer_id", dealerID, "account_status", string(status))
	return nil
}

func (r *gormDealerRepository) UpdateKYCStatus(ctx context.Context, dealerID string, status partners.KYCStatus, reason string) error {
	err := updateColumns(conn(ctx, r.db).Model(&models.DealerModel{}), "dealer", dealerID, map[string]interface{}{
		"kyc_status": string(status),
		"kyc_reason": reason,
	})
	if err != nil {
		return err
	}

	r.logger.Info("dealer kyc status updated", "dealer_id", dealerID, "kyc_status", string(status))
	return nil
}

func (r *gormDealerRepository) UpdateTrustScore(ctx context.Context, dealerID string, score int) error {
	return updateColumns(conn(ctx, r.db).Model(&models.DealerModel{}), "dealer", dealerID, map[string]interface{}{
		"trust_score": score,
	})
}

func (r *gormDealerRepository) DeleteByID(ctx context.Context, dealerID string) error {
	if err := conn(ctx, r.db).Where("id = ?", dealerID).Delete(&models.DealerModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete dealer: %w", err)
	}

	r.logger.Info("dealer deleted", "dealer_id", dealerID)
	return nil
}

func (r *gormDealerRepository) CountByAccountStatus(ctx context.Context) (map[partners.AccountStatus]int64, error) {
	return countAccounts(conn(ctx, r.db).Model(&models.DealerModel{}))
}

type gormTechnicianRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTechnicianRepository creates a new GORM-based TechnicianRepository implementation
func NewGormTechnicianRepository(db *gorm.DB, logger logger.Logger) (partners.TechnicianRepository, error) {
	return &gormTechnicianRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTechnicianRepository) Create(ctx context.Context, technician *partners.Technician) error {
	if err := technician.Validate(); err != nil {
		return err
	}

	model := &models.TechnicianModel{}
	model.FromDomain(technician)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "technician", technician.ID)
	}

	r.logger.Info("technician created", "technician_id", technician.ID, "user_id", technician.UserID)
	return nil
}

func (r *gormTechnicianRepository) GetByID(ctx context.Context, technicianID string) (*partners.Technician, error) {
	var model models.TechnicianModel
	if err := conn(ctx, r.db).Where("id = ?", technicianID).First(&model).Error; err != nil {
		return nil, translate(err, "technician", technicianID)
	}
	return model.ToDomain(), nil
}

func (r *gormTechnicianRepository) GetByIDForUpdate(ctx context.Context, technicianID string) (*partners.Technician, error) {
	var model models.TechnicianModel
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", technicianID).First(&model).Error
	if err != nil {
		return nil, translate(err, "technician", technicianID)
	}
	return model.ToDomain(), nil
}

func (r *gormTechnicianRepository) GetByUserID(ctx context.Context, userID string) (*partners.Technician, error) {
	var model models.TechnicianModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, translate(err, "technician for user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormTechnicianRepository) List(ctx context.Context, query *partners.TechnicianQuery) ([]*partners.Technician, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.TechnicianModel{})

	if query.AccountStatus != "" {
		dbQuery = dbQuery.Where("account_status = ?", string(query.AccountStatus))
	}
	if query.KYCStatus != "" {
		dbQuery = dbQuery.Where("kyc_status = ?", string(query.KYCStatus))
	}
	if query.DealerID != "" {
		dbQuery = dbQuery.Where("dealer_id = ?", query.DealerID)
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("LOWER(city) = ?", strings.ToLower(query.City))
	}
	if query.Skill != "" {
		dbQuery = dbQuery.Where("',' || skills || ',' LIKE ?", likePattern(","+strings.ToLower(query.Skill)+","))
	}

	var modelList []*models.TechnicianModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch technicians: %w", err)
	}

	domainList := make([]*partners.Technician, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormTechnicianRepository) UpdateAccountStatus(ctx context.Context, technicianID string, status partners.AccountStatus, reason string) error {
	err := updateColumns(conn(ctx, r.db).Model(&models.TechnicianModel{}), "technician", technicianID, map[string]interface{}{
		"account_status": string(status),
		"status_reason":  reason,
	})
	if err != nil {
		return err
	}

	r.logger.Info("technician account status updated", "technician_id", technicianID, "account_status", string(status))
	return nil
}

func (r *gormTechnicianRepository) UpdateKYCStatus(ctx context.Context, technicianID string, status partners.KYCStatus, reason string) error {
	err := updateColumns(conn(ctx, r.db).Model(&models.TechnicianModel{}), "technician", technicianID, map[string]interface{}{
		"kyc_status": string(status),
		"kyc_reason": reason,
	})
	if err != nil {
		return err
	}

	r.logger.Info("technician kyc status updated", "technician_id", technicianID, "kyc_status", string(status))
	return nil
}

func (r *gormTechnicianRepository) UpdateTrustScore(ctx context.Context, technicianID string, score int) error {
	return updateColumns(conn(ctx, r.db).Model(&models.TechnicianModel{}), "technician", technicianID, map[string]interface{}{
		"trust_score": score,
	})
}

func (r *gormTechnicianRepository) DeleteByID(ctx context.Context, technicianID string) error {
	if err := conn(ctx, r.db).Where("id = ?", technicianID).Delete(&models.TechnicianModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}

	r.logger.Info("technician deleted", "technician_id", technicianID)
	return nil
}

func (r *gormTechnicianRepository) CountByAccountStatus(ctx context.Context) (map[partners.AccountStatus]int64, error) {
	return countAccounts(conn(ctx, r.db).Model(&models.TechnicianModel{}))
}

// updateColumns writes values and updated_at to the single row with id. Columns not named
// in values keep whatever a concurrent writer stored.
func updateColumns(q *gorm.DB, resource, id string, values map[string]interface{}) error {
	values["updated_at"] = time.Now().UTC()
	result := q.Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translate(result.Error, resource, id)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound(resource, id)
	}
	return nil
}

func countAccounts(q *gorm.DB) (map[partners.AccountStatus]int64, error) {
	var rows []statusCount
	err := q.Select("account_status as status, count(*) as count").Group("account_status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	out := make(map[partners.AccountStatus]int64, len(rows))
	for _, row := range rows {
		out[partners.AccountStatus(row.Status)] = row.Count
	}
	return out, nil
}
