//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSeller(t *testing.T, ctx *TestContext) *commerce.Seller {
	t.Helper()

	seller := commerce.NewSeller(&commerce.SellerInput{
		Name:           "Volt Supplies",
		Email:          uuid.NewString()[:8] + "@volt.example.com",
		Phone:          "+919811112222",
		CommissionRate: decimal.RequireFromString("7.5"),
	})
	require.NoError(t, ctx.SellerRepo.Create(context.Background(), seller))
	return seller
}

func TestSellerSqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	seller := createSeller(t, ctx)

	exists, err := ctx.SellerRepo.ExistsByEmail(bg, seller.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	list, total, err := ctx.SellerRepo.List(bg, &commerce.SellerQuery{Search: "volt"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.True(t, decimal.RequireFromString("7.5").Equal(list[0].CommissionRate))
}

func TestProductSqliteRepository_AdjustStock(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	seller := createSeller(t, ctx)
	product := CreateTestProduct(t, seller.ID, "wire-15", 3)
	require.NoError(t, ctx.ProductRepo.Create(bg, product))

	require.NoError(t, ctx.ProductRepo.AdjustStock(bg, product.ID, -2))

	err := ctx.ProductRepo.AdjustStock(bg, product.ID, -2)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	require.NoError(t, ctx.ProductRepo.AdjustStock(bg, product.ID, 5))

	fetched, err := ctx.ProductRepo.GetByID(bg, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, fetched.Stock)

	err = ctx.ProductRepo.AdjustStock(bg, uuid.NewString(), 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestProductSqliteRepository_ListFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	seller := createSeller(t, ctx)
	cheap := CreateTestProduct(t, seller.ID, "wire-15", 10)
	require.NoError(t, ctx.ProductRepo.Create(bg, cheap))
	pricey := CreateTestProduct(t, seller.ID, "mcb-32", 10)
	pricey.Name = "MCB 32A"
	pricey.Price = decimal.RequireFromString("1200")
	pricey.Active = false
	require.NoError(t, ctx.ProductRepo.Create(bg, pricey))

	exists, err := ctx.ProductRepo.ExistsBySKU(bg, "Wire-15")
	require.NoError(t, err)
	assert.True(t, exists)

	active := true
	list, total, err := ctx.ProductRepo.List(bg, &commerce.ProductQuery{Active: &active})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, cheap.ID, list[0].ID)

	minPrice := decimal.RequireFromString("500")
	list, _, err = ctx.ProductRepo.List(bg, &commerce.ProductQuery{MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pricey.ID, list[0].ID)

	count, err := ctx.ProductRepo.CountBySeller(bg, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOrderSqliteRepository_Lifecycle(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	seller := createSeller(t, ctx)
	product := CreateTestProduct(t, seller.ID, "wire-15", 10)
	require.NoError(t, ctx.ProductRepo.Create(bg, product))

	customerID := uuid.NewString()
	order := commerce.NewOrder(customerID, "4 Park Street, Pune")
	order.AddItem(product, 2)
	require.NoError(t, ctx.OrderRepo.Create(bg, order))

	fetched, err := ctx.OrderRepo.GetByID(bg, order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.True(t, decimal.RequireFromString("499").Equal(fetched.Total))

	list, total, err := ctx.OrderRepo.List(bg, &commerce.OrderQuery{CustomerID: customerID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list[0].Items, 1)

	require.NoError(t, fetched.Transition(commerce.OrderPaid, fetched.UpdatedAt))
	require.NoError(t, ctx.OrderRepo.UpdateStatus(bg, fetched, 1))

	err = ctx.OrderRepo.UpdateStatus(bg, fetched, 1)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	counts, err := ctx.OrderRepo.CountByStatus(bg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[commerce.OrderPaid])

	sum, err := ctx.OrderRepo.SumTotalByStatus(bg, commerce.OrderDelivered)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	sum, err = ctx.OrderRepo.SumTotalByStatus(bg, commerce.OrderPaid)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("499").Equal(sum))
}
