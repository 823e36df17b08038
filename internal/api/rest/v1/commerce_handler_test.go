//go:build unit
// +build unit

package v1

import (
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProduct() *commerce.Product {
	return &commerce.Product{
		ID:       "3c2b1a09-8f7e-4d6c-9b5a-493827161504",
		SellerID: "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a",
		Name:     "Ceiling fan",
		SKU:      "FAN-001",
		Category: "fans",
		Price:    decimal.RequireFromString("1499.00"),
		Stock:    12,
		ImageKey: "products/fan.png",
		Active:   true,
	}
}

func TestCommerceHandler_Catalog(t *testing.T) {
	mockProductService := new(MockProductService)
	handler := NewCommerceHandler(new(MockSellerService), mockProductService)

	mockProductService.On("Catalog", mock.Anything, mock.MatchedBy(func(q *commerce.ProductQuery) bool {
		return q.Category == "fans" && q.MinPrice != nil && q.MinPrice.Equal(decimal.NewFromInt(1000)) && q.MaxPrice == nil && q.Active == nil
	})).Return([]*commerce.Product{newTestProduct()}, int64(1), nil)

	c, w := newTestContext(t, http.MethodGet, "/catalog/products?category=fans&minPrice=1000&maxPrice=abc", "", nil)
	handler.Catalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"1499"`)
	assert.Contains(t, w.Body.String(), `"hasImage":true`)
	assert.NotContains(t, w.Body.String(), "products/fan.png")
	mockProductService.AssertExpectations(t)
}

func TestCommerceHandler_ListProducts_ActiveFilter(t *testing.T) {
	mockProductService := new(MockProductService)
	handler := NewCommerceHandler(new(MockSellerService), mockProductService)

	mockProductService.On("List", mock.Anything, mock.MatchedBy(func(q *commerce.ProductQuery) bool {
		return q.Active != nil && !*q.Active && q.SellerID == "s-1"
	})).Return([]*commerce.Product{}, int64(0), nil)

	c, w := newTestContext(t, http.MethodGet, "/admin/products?active=false&sellerId=s-1", "", adminPrincipal)
	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProductService.AssertExpectations(t)
}

func TestCommerceHandler_CreateProduct_DuplicateSKU(t *testing.T) {
	mockProductService := new(MockProductService)
	handler := NewCommerceHandler(new(MockSellerService), mockProductService)

	mockProductService.On("Create", mock.Anything, mock.MatchedBy(func(input *commerce.ProductInput) bool {
		return input.Price.Equal(decimal.RequireFromString("149.995"))
	})).Return(nil, apperror.Duplicate("sku %s already exists", "FAN-001"))

	body := `{"sellerId":"s-1","name":"Ceiling fan","sku":"fan-001","category":"fans","price":"149.995","stock":3}`
	c, w := newTestContext(t, http.MethodPost, "/admin/products", body, adminPrincipal)
	handler.CreateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sku FAN-001 already exists")
}

func TestCommerceHandler_UploadProductImage(t *testing.T) {
	mockProductService := new(MockProductService)
	handler := NewCommerceHandler(new(MockSellerService), mockProductService)
	product := newTestProduct()

	mockProductService.On("UploadImage", mock.Anything, product.ID, mock.MatchedBy(func(file *multipart.FileHeader) bool {
		return file.Filename == "fan.png"
	})).Return(product, nil)

	body, contentType := testutil.CreateMultipartBody(t, nil, "file", testutil.TestFile{Name: "fan.png", ContentType: "image/png", Content: []byte("\x89PNG\r\n\x1a\n")})
	c, w := newMultipartContext(t, "/admin/products/"+product.ID+"/image", body, contentType, adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: product.ID}}
	handler.UploadProductImage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProductService.AssertExpectations(t)
}

func TestCommerceHandler_UploadProductImage_MissingFile(t *testing.T) {
	handler := NewCommerceHandler(new(MockSellerService), new(MockProductService))

	c, w := newTestContext(t, http.MethodPost, "/admin/products/p-1/image", "", adminPrincipal)
	handler.UploadProductImage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")
}

func TestCommerceHandler_ProductImage(t *testing.T) {
	mockProductService := new(MockProductService)
	handler := NewCommerceHandler(new(MockSellerService), mockProductService)
	mockProductService.On("Image", mock.Anything, "p-1").Return([]byte("img"), "image/png", nil)

	c, w := newTestContext(t, http.MethodGet, "/catalog/products/p-1/image", "", nil)
	c.Params = gin.Params{{Key: "id", Value: "p-1"}}
	handler.ProductImage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestCommerceHandler_DeleteSeller_WithProducts(t *testing.T) {
	mockSellerService := new(MockSellerService)
	handler := NewCommerceHandler(mockSellerService, new(MockProductService))
	mockSellerService.On("DeleteByID", mock.Anything, "s-1").Return(apperror.Conflict("seller still has %d products", 2))

	c, w := newTestContext(t, http.MethodDelete, "/admin/sellers/s-1", "", adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}
	handler.DeleteSellerByID(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_Place(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)
	product := newTestProduct()

	order := &commerce.Order{
		ID:         "o-1",
		CustomerID: customerPrincipal.UserID,
		Items: []*commerce.OrderItem{
			{ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price, Quantity: 2, LineTotal: decimal.RequireFromString("2998")},
		},
		Total:   decimal.RequireFromString("2998"),
		Status:  commerce.OrderPending,
		Version: 1,
	}
	mockOrderService.On("Place", mock.Anything, customerPrincipal, mock.MatchedBy(func(input *commerce.PlaceOrderInput) bool {
		return len(input.Items) == 1 && input.Items[0].Quantity == 2
	})).Return(order, nil)

	body := `{"items":[{"productId":"` + product.ID + `","quantity":2}],"shippingAddress":"12 MG Road, Pune"}`
	c, w := newTestContext(t, http.MethodPost, "/orders", body, customerPrincipal)
	handler.Place(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"2998"`)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_Place_OutOfStock(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)
	mockOrderService.On("Place", mock.Anything, customerPrincipal, mock.Anything).Return(nil, apperror.Conflict("insufficient stock for %s", "Ceiling fan"))

	c, w := newTestContext(t, http.MethodPost, "/orders", `{"items":[{"productId":"p","quantity":99}],"shippingAddress":"x"}`, customerPrincipal)
	handler.Place(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_Invoice(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)
	mockOrderService.On("Invoice", mock.Anything, customerPrincipal, "o-1").Return([]byte("%PDF"), nil)

	c, w := newTestContext(t, http.MethodGet, "/orders/o-1/invoice", "", customerPrincipal)
	c.Params = gin.Params{{Key: "id", Value: "o-1"}}
	handler.Invoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-o-1.pdf")
}
