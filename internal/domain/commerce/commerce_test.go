//go:build unit
// +build unit

package commerce

import (
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_AddItem(t *testing.T) {
	o := NewOrder("c-1", "12 MG Road")
	p1 := &Product{ID: "p-1", Name: "Filter", Price: decimal.RequireFromString("199.99")}
	p2 := &Product{ID: "p-2", Name: "Coolant", Price: decimal.RequireFromString("0.10")}

	o.AddItem(p1, 3)
	o.AddItem(p2, 3)

	assert.Len(t, o.Items, 2)
	assert.True(t, decimal.RequireFromString("600.27").Equal(o.Total), "total was %s", o.Total)
	assert.True(t, decimal.RequireFromString("0.30").Equal(o.Items[1].LineTotal))
}

func TestOrder_Transition(t *testing.T) {
	o := NewOrder("c-1", "12 MG Road")
	now := time.Now()

	assert.NoError(t, o.Transition(OrderPaid, now))
	assert.Equal(t, 2, o.Version)
	assert.NoError(t, o.Transition(OrderShipped, now))

	err := o.Transition(OrderCancelled, now)
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))

	assert.NoError(t, o.Transition(OrderDelivered, now))
	assert.NoError(t, o.Transition(OrderRefunded, now))
	assert.True(t, OrderCancelled.Restocks())
	assert.False(t, OrderRefunded.Restocks())
}

func TestSellerStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, SellerPending.CanTransitionTo(SellerApproved))
	assert.True(t, SellerApproved.CanTransitionTo(SellerSuspended))
	assert.True(t, SellerSuspended.CanTransitionTo(SellerApproved))
	assert.True(t, SellerRejected.CanTransitionTo(SellerApproved))
	assert.False(t, SellerApproved.CanTransitionTo(SellerPending))
}

func TestProduct_Validate(t *testing.T) {
	p := NewProduct(&ProductInput{
		SellerID: "1b4e28ba-2fa1-4d3b-a3f5-ef19b5a7633b",
		Name:     "Air filter",
		SKU:      " af-100 ",
		Category: "spares",
		Price:    decimal.RequireFromString("249.499"),
		Stock:    10,
		Active:   true,
	})

	assert.NoError(t, p.Validate())
	assert.Equal(t, "AF-100", p.SKU)
	assert.Equal(t, "249.5", p.Price.String())

	p.Price = decimal.NewFromInt(-1)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(p.Validate()))
}

func TestSeller_Validate(t *testing.T) {
	s := NewSeller(&SellerInput{
		Name:           "Spare Parts Co",
		Email:          "Sales@SpareParts.in",
		Phone:          "+919812345678",
		CommissionRate: decimal.RequireFromString("12.5"),
	})
	assert.NoError(t, s.Validate())
	assert.Equal(t, "sales@spareparts.in", s.Email)

	s.CommissionRate = decimal.NewFromInt(120)
	assert.Error(t, s.Validate())
}
