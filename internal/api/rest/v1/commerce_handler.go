package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"

	"github.com/gin-gonic/gin"
)

// CommerceHandler defines the interface for seller, product and catalog operations
type CommerceHandler interface {
	CreateSeller(ctx *gin.Context)
	ListSellers(ctx *gin.Context)
	GetSellerByID(ctx *gin.Context)
	UpdateSellerStatus(ctx *gin.Context)
	DeleteSellerByID(ctx *gin.Context)

	CreateProduct(ctx *gin.Context)
	ListProducts(ctx *gin.Context)
	GetProductByID(ctx *gin.Context)
	UpdateProduct(ctx *gin.Context)
	DeleteProductByID(ctx *gin.Context)
	SetProductStock(ctx *gin.Context)
	SetProductActive(ctx *gin.Context)
	UploadProductImage(ctx *gin.Context)

	Catalog(ctx *gin.Context)
	CatalogItem(ctx *gin.Context)
	ProductImage(ctx *gin.Context)
}

type commerceHandler struct {
	sellerService  commerce.SellerService
	productService commerce.ProductService
}

// NewCommerceHandler creates a new CommerceHandler
func NewCommerceHandler(sellerService commerce.SellerService, productService commerce.ProductService) CommerceHandler {
	return &commerceHandler{
		sellerService:  sellerService,
		productService: productService,
	}
}

// CreateSeller onboards a seller in PENDING state
func (handler *commerceHandler) CreateSeller(ctx *gin.Context) {
	var input commerce.SellerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	seller, err := handler.sellerService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newSellerResponse(seller))
}

// ListSellers lists sellers optionally filtered by status or a search term
func (handler *commerceHandler) ListSellers(ctx *gin.Context) {
	query := &commerce.SellerQuery{
		Status: commerce.SellerStatus(ctx.Query("status")),
		Search: ctx.Query("search"),
		Page:   pageFrom(ctx),
	}

	sellers, total, err := handler.sellerService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(sellers, total, query.EffectiveLimit(), query.Offset, newSellerResponse))
}

// GetSellerByID returns one seller
func (handler *commerceHandler) GetSellerByID(ctx *gin.Context) {
	seller, err := handler.sellerService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSellerResponse(seller))
}

// UpdateSellerStatus moves a seller to another status
func (handler *commerceHandler) UpdateSellerStatus(ctx *gin.Context) {
	var input commerce.SellerStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	seller, err := handler.sellerService.UpdateStatus(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSellerResponse(seller))
}

// DeleteSellerByID deletes a seller without products
func (handler *commerceHandler) DeleteSellerByID(ctx *gin.Context) {
	if err := handler.sellerService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateProduct adds a product to a seller's range
func (handler *commerceHandler) CreateProduct(ctx *gin.Context) {
	var input commerce.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	product, err := handler.productService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProductResponse(product))
}

// ListProducts lists all products, active or not
func (handler *commerceHandler) ListProducts(ctx *gin.Context) {
	query := productQueryFrom(ctx)
	query.SellerID = ctx.Query("sellerId")
	query.Active = boolQuery(ctx, "active")

	products, total, err := handler.productService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(products, total, query.EffectiveLimit(), query.Offset, newProductResponse))
}

// GetProductByID returns one product
func (handler *commerceHandler) GetProductByID(ctx *gin.Context) {
	product, err := handler.productService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// UpdateProduct replaces the editable fields of a product
func (handler *commerceHandler) UpdateProduct(ctx *gin.Context) {
	var input commerce.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	product, err := handler.productService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// DeleteProductByID deletes a product and its image
func (handler *commerceHandler) DeleteProductByID(ctx *gin.Context) {
	if err := handler.productService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetProductStock overwrites the stock level
func (handler *commerceHandler) SetProductStock(ctx *gin.Context) {
	var input commerce.StockInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	product, err := handler.productService.SetStock(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// SetProductActive lists or unlists a product in the catalog
func (handler *commerceHandler) SetProductActive(ctx *gin.Context) {
	var input commerce.ActiveInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	product, err := handler.productService.SetActive(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// UploadProductImage stores the "file" form field as the product image
func (handler *commerceHandler) UploadProductImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		badRequest(ctx, "invalid form data")
		return
	}

	product, err := handler.productService.UploadImage(ctx, ctx.Param("id"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// Catalog lists active products
func (handler *commerceHandler) Catalog(ctx *gin.Context) {
	query := productQueryFrom(ctx)

	products, total, err := handler.productService.Catalog(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(products, total, query.EffectiveLimit(), query.Offset, newProductResponse))
}

// CatalogItem returns an active product
func (handler *commerceHandler) CatalogItem(ctx *gin.Context) {
	product, err := handler.productService.CatalogItem(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// ProductImage serves the product image
func (handler *commerceHandler) ProductImage(ctx *gin.Context) {
	content, contentType, err := handler.productService.Image(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Cache-Control", "public, max-age=300")
	ctx.Data(http.StatusOK, contentType, content)
}

func productQueryFrom(ctx *gin.Context) *commerce.ProductQuery {
	return &commerce.ProductQuery{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		MinPrice: decimalQuery(ctx, "minPrice"),
		MaxPrice: decimalQuery(ctx, "maxPrice"),
		Page:     pageFrom(ctx),
	}
}
