package models

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"

	"github.com/shopspring/decimal"
)

// SellerModel is the GORM database model for sellers
type SellerModel struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)"`
	Name           string          `gorm:"not null;type:varchar(200)"`
	Email          string          `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Phone          string          `gorm:"not null;type:varchar(20)"`
	GSTNumber      string          `gorm:"type:varchar(15)"`
	Status         string          `gorm:"not null;index;type:varchar(20)"`
	CommissionRate decimal.Decimal `gorm:"not null;type:decimal(5,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SellerModel) TableName() string {
	return "sellers"
}

// ToDomain converts GORM model to domain entity
func (m *SellerModel) ToDomain() *commerce.Seller {
	return &commerce.Seller{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		GSTNumber:      m.GSTNumber,
		Status:         commerce.SellerStatus(m.Status),
		CommissionRate: m.CommissionRate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SellerModel) FromDomain(s *commerce.Seller) {
	m.ID = s.ID
	m.Name = s.Name
	m.Email = s.Email
	m.Phone = s.Phone
	m.GSTNumber = s.GSTNumber
	m.Status = string(s.Status)
	m.CommissionRate = s.CommissionRate
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ProductModel is the GORM database model for products
type ProductModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	SellerID    string          `gorm:"not null;index;type:varchar(36)"`
	Name        string          `gorm:"not null;type:varchar(200)"`
	Description string          `gorm:"type:text"`
	SKU         string          `gorm:"column:sku;not null;uniqueIndex;type:varchar(64)"`
	Category    string          `gorm:"not null;index;type:varchar(100)"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Stock       int             `gorm:"not null;default:0"`
	ImageKey    string          `gorm:"type:varchar(512)"`
	Active      bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *commerce.Product {
	return &commerce.Product{
		ID:          m.ID,
		SellerID:    m.SellerID,
		Name:        m.Name,
		Description: m.Description,
		SKU:         m.SKU,
		Category:    m.Category,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageKey:    m.ImageKey,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *commerce.Product) {
	m.ID = p.ID
	m.SellerID = p.SellerID
	m.Name = p.Name
	m.Description = p.Description
	m.SKU = p.SKU
	m.Category = p.Category
	m.Price = p.Price
	m.Stock = p.Stock
	m.ImageKey = p.ImageKey
	m.Active = p.Active
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// OrderModel is the GORM database model for orders
type OrderModel struct {
	ID              string           `gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string           `gorm:"not null;index;type:varchar(36)"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	Total           decimal.Decimal  `gorm:"not null;type:decimal(12,2)"`
	Status          string           `gorm:"not null;index;type:varchar(20)"`
	ShippingAddress string           `gorm:"not null;type:varchar(500)"`
	Version         int              `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *commerce.Order {
	o := &commerce.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		Items:           make([]*commerce.OrderItem, 0, len(m.Items)),
		Total:           m.Total,
		Status:          commerce.OrderStatus(m.Status),
		ShippingAddress: m.ShippingAddress,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for i := range m.Items {
		o.Items = append(o.Items, m.Items[i].ToDomain())
	}
	return o
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *commerce.Order) {
	m.ID = o.ID
	m.CustomerID = o.CustomerID
	m.Total = o.Total
	m.Status = string(o.Status)
	m.ShippingAddress = o.ShippingAddress
	m.Version = o.Version
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i].FromDomain(item)
	}
}

// OrderItemModel is the GORM database model for order lines
type OrderItemModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	OrderID     string          `gorm:"not null;index;type:varchar(36)"`
	ProductID   string          `gorm:"not null;index;type:varchar(36)"`
	ProductName string          `gorm:"not null;type:varchar(200)"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Quantity    int             `gorm:"not null"`
	LineTotal   decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts GORM model to domain entity
func (m *OrderItemModel) ToDomain() *commerce.OrderItem {
	return &commerce.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		LineTotal:   m.LineTotal,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderItemModel) FromDomain(i *commerce.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.ProductName = i.ProductName
	m.UnitPrice = i.UnitPrice
	m.Quantity = i.Quantity
	m.LineTotal = i.LineTotal
}
