package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormSellerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSellerRepository creates a new GORM-based SellerRepository implementation
func NewGormSellerRepository(db *gorm.DB, logger logger.Logger) (commerce.SellerRepository, error) {
	return &gormSellerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSellerRepository) Create(ctx context.Context, seller *commerce.Seller) error {
	if err := seller.Validate(); err != nil {
		return err
	}

	model := &models.SellerModel{}
	model.FromDomain(seller)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "seller", seller.ID)
	}

	r.logger.Info("seller created", "seller_id", seller.ID)
	return nil
}

func (r *gormSellerRepository) GetByID(ctx context.Context, sellerID string) (*commerce.Seller, error) {
	var model models.SellerModel
	if err := conn(ctx, r.db).Where("id = ?", sellerID).First(&model).Error; err != nil {
		return nil, translate(err, "seller", sellerID)
	}
	return model.ToDomain(), nil
}

func (r *gormSellerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.SellerModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check seller email: %w", err)
	}
	return count > 0, nil
}

func (r *gormSellerRepository) List(ctx context.Context, query *commerce.SellerQuery) ([]*commerce.Seller, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.SellerModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.Search != "" {
		pattern := likePattern(strings.ToLower(query.Search))
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var modelList []*models.SellerModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sellers: %w", err)
	}

	domainList := make([]*commerce.Seller, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormSellerRepository) Update(ctx context.Context, seller *commerce.Seller) error {
	if err := seller.Validate(); err != nil {
		return err
	}

	model := &models.SellerModel{}
	model.FromDomain(seller)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "seller", seller.ID)
	}
	return nil
}

func (r *gormSellerRepository) DeleteByID(ctx context.Context, sellerID string) error {
	if err := conn(ctx, r.db).Where("id = ?", sellerID).Delete(&models.SellerModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}

	r.logger.Info("seller deleted", "seller_id", sellerID)
	return nil
}

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (commerce.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *commerce.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "product", product.ID)
	}

	r.logger.Info("product created", "product_id", product.ID, "sku", product.SKU)
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, productID string) (*commerce.Product, error) {
	var model models.ProductModel
	if err := conn(ctx, r.db).Where("id = ?", productID).First(&model).Error; err != nil {
		return nil, translate(err, "product", productID)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ProductModel{}).
		Where("sku = ?", strings.ToUpper(strings.TrimSpace(sku))).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return count > 0, nil
}

func (r *gormProductRepository) List(ctx context.Context, query *commerce.ProductQuery) ([]*commerce.Product, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.ProductModel{})
	if query.SellerID != "" {
		dbQuery = dbQuery.Where("seller_id = ?", query.SellerID)
	}
	if query.Category != "" {
		dbQuery = dbQuery.Where("LOWER(category) = ?", strings.ToLower(query.Category))
	}
	if query.Search != "" {
		pattern := likePattern(strings.ToLower(query.Search))
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}
	if query.Active != nil {
		dbQuery = dbQuery.Where("active = ?", *query.Active)
	}
	if query.MinPrice != nil {
		dbQuery = dbQuery.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		dbQuery = dbQuery.Where("price <= ?", *query.MaxPrice)
	}

	var modelList []*models.ProductModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*commerce.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *commerce.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translate(err, "product", product.ID)
	}
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, productID string) error {
	if err := conn(ctx, r.db).Where("id = ?", productID).Delete(&models.ProductModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Info("product deleted", "product_id", productID)
	return nil
}

func (r *gormProductRepository) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.ProductModel{}).Where("seller_id = ?", sellerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// AdjustStock adds delta to the stock in a single statement and refuses to go below zero
func (r *gormProductRepository) AdjustStock(ctx context.Context, productID string, delta int) error {
	db := conn(ctx, r.db)
	result := db.Model(&models.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return translate(result.Error, "product", productID)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.ProductModel{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check product: %w", err)
		}
		if count == 0 {
			return apperror.NotFound("product", productID)
		}
		return apperror.Conflict("insufficient stock for product %s", productID)
	}
	return nil
}

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (commerce.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Create stores the order together with its items
func (r *gormOrderRepository) Create(ctx context.Context, order *commerce.Order) error {
	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "order", order.ID)
	}

	r.logger.Info("order placed", "order_id", order.ID, "customer_id", order.CustomerID, "total", order.Total.StringFixed(2))
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID string) (*commerce.Order, error) {
	var model models.OrderModel
	if err := conn(ctx, r.db).Preload("Items").Where("id = ?", orderID).First(&model).Error; err != nil {
		return nil, translate(err, "order", orderID)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) List(ctx context.Context, query *commerce.OrderQuery) ([]*commerce.Order, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := conn(ctx, r.db).Model(&models.OrderModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}

	var modelList []*models.OrderModel
	total, err := paginate(dbQuery, &query.Page, "created_at", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	if err := r.loadItems(ctx, modelList); err != nil {
		return nil, 0, err
	}

	domainList := make([]*commerce.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormOrderRepository) loadItems(ctx context.Context, orders []*models.OrderModel) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	byID := make(map[string]*models.OrderModel, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		byID[order.ID] = order
	}

	var items []models.OrderItemModel
	if err := conn(ctx, r.db).Where("order_id IN ?", ids).Find(&items).Error; err != nil {
		return fmt.Errorf("failed to fetch order items: %w", err)
	}
	for _, item := range items {
		order := byID[item.OrderID]
		order.Items = append(order.Items, item)
	}
	return nil
}

// UpdateStatus writes the status only while the stored version still equals expectedVersion
func (r *gormOrderRepository) UpdateStatus(ctx context.Context, order *commerce.Order, expectedVersion int) error {
	db := conn(ctx, r.db)
	result := db.Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", order.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     string(order.Status),
			"version":    order.Version,
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error, "order", order.ID)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.OrderModel{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check order: %w", err)
		}
		if count == 0 {
			return apperror.NotFound("order", order.ID)
		}
		return apperror.Conflict("order %s was modified concurrently, reload and retry", order.ID)
	}

	r.logger.Info("order updated", "order_id", order.ID, "status", string(order.Status))
	return nil
}

func (r *gormOrderRepository) CountByStatus(ctx context.Context) (map[commerce.OrderStatus]int64, error) {
	counts, err := countByStatus(conn(ctx, r.db).Model(&models.OrderModel{}))
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	out := make(map[commerce.OrderStatus]int64, len(counts))
	for status, count := range counts {
		out[commerce.OrderStatus(status)] = count
	}
	return out, nil
}

func (r *gormOrderRepository) SumTotalByStatus(ctx context.Context, status commerce.OrderStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := conn(ctx, r.db).Model(&models.OrderModel{}).
		Select("SUM(total)").
		Where("status = ?", string(status)).
		Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum orders: %w", err)
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal.Round(2), nil
}
