package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "user", user.ID)
	}

	r.logger.Info("user created", "user_id", user.ID, "role", string(user.Role))
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		return nil, translate(err, "user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, phone string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("phone = ?", phone).First(&model).Error; err != nil {
		return nil, translate(err, "user", phone)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("email = ?", users.NormalizeEmail(email)).First(&model).Error; err != nil {
		return nil, translate(err, "user", email)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", users.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "user", user.ID)
	}
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	if err := conn(ctx, r.db).Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Info("user deleted", "user_id", userID)
	return nil
}

func (r *gormUserRepository) CountByRole(ctx context.Context, role users.Role) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).Where("role = ?", string(role)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

type gormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB) (users.SessionRepository, error) {
	return &gormSessionRepository{db: db}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *users.Session) error {
	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "session", session.ID)
	}
	return nil
}

func (r *gormSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*users.Session, error) {
	var model models.SessionModel
	err := conn(ctx, r.db).Where("token_hash = ?", tokenHash).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, "session", "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := conn(ctx, r.db).Where("token_hash = ?", tokenHash).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
