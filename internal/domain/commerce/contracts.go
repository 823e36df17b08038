package commerce

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/shopspring/decimal"
)

// SellerRepository persists sellers
type SellerRepository interface {
	Create(ctx context.Context, seller *Seller) error
	GetByID(ctx context.Context, sellerID string) (*Seller, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, query *SellerQuery) ([]*Seller, int64, error)
	Update(ctx context.Context, seller *Seller) error
	DeleteByID(ctx context.Context, sellerID string) error
}

// ProductRepository persists products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID string) (*Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	List(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	Update(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, productID string) error
	CountBySeller(ctx context.Context, sellerID string) (int64, error)
	// AdjustStock adds delta to the stock atomically and fails with a conflict when stock would go negative.
	AdjustStock(ctx context.Context, productID string, delta int) error
}

// OrderRepository persists orders with their items
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, query *OrderQuery) ([]*Order, int64, error)
	// UpdateStatus writes the status only if the stored version still equals expectedVersion.
	UpdateStatus(ctx context.Context, order *Order, expectedVersion int) error
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
	SumTotalByStatus(ctx context.Context, status OrderStatus) (decimal.Decimal, error)
}

// InvoiceRenderer renders an order invoice
type InvoiceRenderer interface {
	Invoice(order *Order) ([]byte, error)
}

// SellerService administers sellers
type SellerService interface {
	Create(ctx context.Context, input *SellerInput) (*Seller, error)
	GetByID(ctx context.Context, sellerID string) (*Seller, error)
	List(ctx context.Context, query *SellerQuery) ([]*Seller, int64, error)
	UpdateStatus(ctx context.Context, sellerID string, input *SellerStatusInput) (*Seller, error)
	// DeleteByID fails with a conflict while the seller still has products.
	DeleteByID(ctx context.Context, sellerID string) error
}

// ProductService administers products and serves the public catalog
type ProductService interface {
	Create(ctx context.Context, input *ProductInput) (*Product, error)
	Update(ctx context.Context, productID string, input *ProductInput) (*Product, error)
	GetByID(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	DeleteByID(ctx context.Context, productID string) error
	SetStock(ctx context.Context, productID string, input *StockInput) (*Product, error)
	SetActive(ctx context.Context, productID string, input *ActiveInput) (*Product, error)
	UploadImage(ctx context.Context, productID string, file *multipart.FileHeader) (*Product, error)
	Image(ctx context.Context, productID string) ([]byte, string, error)
	// Catalog lists active products only.
	Catalog(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	// CatalogItem returns an active product.
	CatalogItem(ctx context.Context, productID string) (*Product, error)
}

// OrderService handles checkout and order fulfilment
type OrderService interface {
	Place(ctx context.Context, actor *users.Principal, input *PlaceOrderInput) (*Order, error)
	GetByID(ctx context.Context, actor *users.Principal, orderID string) (*Order, error)
	List(ctx context.Context, actor *users.Principal, query *OrderQuery) ([]*Order, int64, error)
	UpdateStatus(ctx context.Context, actor *users.Principal, orderID string, input *OrderStatusInput) (*Order, error)
	Invoice(ctx context.Context, actor *users.Principal, orderID string) ([]byte, error)
}
