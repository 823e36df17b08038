package commerce

import (
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus of a customer order
type OrderStatus string

// Order statuses
const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderRefunded  OrderStatus = "REFUNDED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPaid, OrderCancelled},
	OrderPaid:      {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: {OrderRefunded},
}

// CanTransitionTo reports whether an order may move from s to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Restocks reports whether moving into s returns the items to stock
func (s OrderStatus) Restocks() bool {
	return s == OrderCancelled
}

// Order placed by a customer
type Order struct {
	ID              string
	CustomerID      string
	Items           []*OrderItem
	Total           decimal.Decimal
	Status          OrderStatus
	ShippingAddress string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line of an order with the price snapshotted at placement
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

// NewOrder creates a pending order
func NewOrder(customerID, shippingAddress string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		Status:          OrderPending,
		ShippingAddress: shippingAddress,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AddItem appends a line for product and updates the total
func (o *Order) AddItem(p *Product, quantity int) *OrderItem {
	item := &OrderItem{
		ID:          uuid.NewString(),
		OrderID:     o.ID,
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		LineTotal:   p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	o.Items = append(o.Items, item)
	o.Total = o.Total.Add(item.LineTotal)
	return item
}

// Transition moves the order to next and bumps its version
func (o *Order) Transition(next OrderStatus, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return apperror.InvalidTransition("order", o.Status, next)
	}
	o.Status = next
	o.Version++
	o.UpdatedAt = now
	return nil
}

// OrderLine is one requested product and quantity
type OrderLine struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=100"`
}

// PlaceOrderInput is the customer checkout request
type PlaceOrderInput struct {
	Items           []OrderLine `json:"items" validate:"required,min=1,max=50,dive"`
	ShippingAddress string      `json:"shippingAddress" validate:"required,min=5,max=500"`
}

// OrderStatusInput moves an order to another status
type OrderStatusInput struct {
	Status  OrderStatus `json:"status" validate:"required,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED REFUNDED"`
	Version int         `json:"version" validate:"gte=0"`
}

// OrderQuery filters the order list
type OrderQuery struct {
	Status     OrderStatus
	CustomerID string
	listing.Page
}

// Validate checks the query parameters
func (q *OrderQuery) Validate() error {
	return q.Page.Validate("created_at", "updated_at", "total", "status")
}
