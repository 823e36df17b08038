package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// sellerService implements the SellerService interface
type sellerService struct {
	sellerRepo  commerce.SellerRepository
	productRepo commerce.ProductRepository
	logger      logger.Logger
}

// NewSellerService creates a new instance of SellerService
func NewSellerService(sellerRepo commerce.SellerRepository, productRepo commerce.ProductRepository, logger logger.Logger) (commerce.SellerService, error) {
	return &sellerService{sellerRepo: sellerRepo, productRepo: productRepo, logger: logger}, nil
}

func (s *sellerService) Create(ctx context.Context, input *commerce.SellerInput) (*commerce.Seller, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	seller := commerce.NewSeller(input)
	exists, err := s.sellerRepo.ExistsByEmail(ctx, seller.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Duplicate("seller email already registered")
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	s.logger.Info("seller created", "sellerId", seller.ID)
	return seller, nil
}

func (s *sellerService) GetByID(ctx context.Context, sellerID string) (*commerce.Seller, error) {
	return s.sellerRepo.GetByID(ctx, sellerID)
}

func (s *sellerService) List(ctx context.Context, query *commerce.SellerQuery) ([]*commerce.Seller, int64, error) {
	if query == nil {
		query = &commerce.SellerQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.sellerRepo.List(ctx, query)
}

func (s *sellerService) UpdateStatus(ctx context.Context, sellerID string, input *commerce.SellerStatusInput) (*commerce.Seller, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.Status.CanTransitionTo(input.Status) {
		return nil, apperror.InvalidTransition("seller", seller.Status, input.Status)
	}

	seller.Status = input.Status
	seller.UpdatedAt = time.Now().UTC()
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	s.logger.Info("seller status changed", "sellerId", seller.ID, "status", string(seller.Status))
	return seller, nil
}

func (s *sellerService) DeleteByID(ctx context.Context, sellerID string) error {
	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return err
	}
	count, err := s.productRepo.CountBySeller(ctx, sellerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("seller %s still has %d products", sellerID, count)
	}
	if err := s.sellerRepo.DeleteByID(ctx, sellerID); err != nil {
		return err
	}

	s.logger.Info("seller deleted", "sellerId", sellerID)
	return nil
}

// productService implements the ProductService interface
type productService struct {
	productRepo   commerce.ProductRepository
	sellerRepo    commerce.SellerRepository
	blobConnector documents.BlobConnector
	logger        logger.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo commerce.ProductRepository,
	sellerRepo commerce.SellerRepository,
	blobConnector documents.BlobConnector,
	logger logger.Logger,
) (commerce.ProductService, error) {
	return &productService{
		productRepo:   productRepo,
		sellerRepo:    sellerRepo,
		blobConnector: blobConnector,
		logger:        logger,
	}, nil
}

// checkSeller requires an approved seller
func (s *productService) checkSeller(ctx context.Context, sellerID string) error {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return apperror.FieldValidation("sellerId", "seller %s does not exist", sellerID)
		}
		return err
	}
	if seller.Status != commerce.SellerApproved {
		return apperror.FieldValidation("sellerId", "seller %s is not approved", sellerID)
	}
	return nil
}

func (s *productService) Create(ctx context.Context, input *commerce.ProductInput) (*commerce.Product, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkSeller(ctx, input.SellerID); err != nil {
		return nil, err
	}

	product := commerce.NewProduct(input)
	exists, err := s.productRepo.ExistsBySKU(ctx, product.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Duplicate("sku %s already exists", product.SKU)
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", "productId", product.ID, "sku", product.SKU)
	return product, nil
}

func (s *productService) Update(ctx context.Context, productID string, input *commerce.ProductInput) (*commerce.Product, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if input.SellerID != product.SellerID {
		if err := s.checkSeller(ctx, input.SellerID); err != nil {
			return nil, err
		}
	}

	previousSKU := product.SKU
	product.Apply(input, time.Now().UTC())
	if product.SKU != previousSKU {
		exists, err := s.productRepo.ExistsBySKU(ctx, product.SKU)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.Duplicate("sku %s already exists", product.SKU)
		}
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, productID string) (*commerce.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) List(ctx context.Context, query *commerce.ProductQuery) ([]*commerce.Product, int64, error) {
	if query == nil {
		query = &commerce.ProductQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.productRepo.List(ctx, query)
}

func (s *productService) DeleteByID(ctx context.Context, productID string) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.productRepo.DeleteByID(ctx, product.ID); err != nil {
		return err
	}
	if product.ImageKey != "" {
		if err := s.blobConnector.Delete(ctx, product.ImageKey); err != nil {
			s.logger.Warn("failed to delete product image", "productId", product.ID, "error", err)
		}
	}

	s.logger.Info("product deleted", "productId", product.ID)
	return nil
}

func (s *productService) SetStock(ctx context.Context, productID string, input *commerce.StockInput) (*commerce.Product, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Stock = input.Stock
	product.UpdatedAt = time.Now().UTC()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) SetActive(ctx context.Context, productID string, input *commerce.ActiveInput) (*commerce.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Active = input.Active
	product.UpdatedAt = time.Now().UTC()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UploadImage(ctx context.Context, productID string, file *multipart.FileHeader) (*commerce.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	data, contentType, err := readUpload(file, maxImageSize, imageContentTypes)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/image%s", product.ID, imageExtension(contentType))
	if err := s.blobConnector.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	if product.ImageKey != "" && product.ImageKey != key {
		if err := s.blobConnector.Delete(ctx, product.ImageKey); err != nil {
			s.logger.Warn("failed to delete previous product image", "productId", product.ID, "error", err)
		}
	}

	product.ImageKey = key
	product.UpdatedAt = time.Now().UTC()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Image(ctx context.Context, productID string) ([]byte, string, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	return downloadImage(ctx, s.blobConnector, "product", product.ID, product.ImageKey)
}

func (s *productService) Catalog(ctx context.Context, query *commerce.ProductQuery) ([]*commerce.Product, int64, error) {
	if query == nil {
		query = &commerce.ProductQuery{}
	}
	active := true
	query.Active = &active
	return s.List(ctx, query)
}

func (s *productService) CatalogItem(ctx context.Context, productID string) (*commerce.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, apperror.NotFound("product", productID)
	}
	return product, nil
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// downloadImage fetches the image stored under key and derives its content type from the extension
func downloadImage(ctx context.Context, blobConnector documents.BlobConnector, resource, id, key string) ([]byte, string, error) {
	if key == "" {
		return nil, "", apperror.New(apperror.KindNotFound, "%s %s has no image", resource, id)
	}
	data, err := blobConnector.Download(ctx, key)
	if err != nil {
		return nil, "", err
	}

	contentType := "application/octet-stream"
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}
	return data, contentType, nil
}
