package app

import (
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/territories"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// territoryService implements the TerritoryService interface
type territoryService struct {
	categoryRepo territories.CategoryRepository
	logger       logger.Logger
}

// NewTerritoryService creates a new instance of TerritoryService
func NewTerritoryService(categoryRepo territories.CategoryRepository, logger logger.Logger) (territories.TerritoryService, error) {
	return &territoryService{categoryRepo: categoryRepo, logger: logger}, nil
}

func (s *territoryService) checkName(ctx context.Context, name, excludeID string) error {
	exists, err := s.categoryRepo.ExistsByName(ctx, strings.TrimSpace(name), excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Duplicate("territory category %q already exists", strings.TrimSpace(name))
	}
	return nil
}

func (s *territoryService) Create(ctx context.Context, input *territories.Input) (*territories.Category, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	category := territories.NewCategory(input)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("territory category created", "categoryId", category.ID, "pincodes", len(category.Pincodes))
	return category, nil
}

func (s *territoryService) Update(ctx context.Context, categoryID string, input *territories.Input) (*territories.Category, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, input.Name, category.ID); err != nil {
		return nil, err
	}

	category.Apply(input, time.Now().UTC())
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *territoryService) GetByID(ctx context.Context, categoryID string) (*territories.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *territoryService) List(ctx context.Context, query *territories.Query) ([]*territories.Category, int64, error) {
	if query == nil {
		query = &territories.Query{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.categoryRepo.List(ctx, query)
}

func (s *territoryService) DeleteByID(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		return err
	}
	s.logger.Info("territory category deleted", "categoryId", categoryID)
	return nil
}

func (s *territoryService) Resolve(ctx context.Context, pincode string) (*territories.Category, error) {
	pincode = strings.TrimSpace(pincode)
	if err := validators.Get().Var(pincode, "required,pincode"); err != nil {
		return nil, apperror.FieldValidation("pincode", "pincode must be a 6-digit pincode")
	}
	return s.categoryRepo.FindByPincode(ctx, pincode)
}
