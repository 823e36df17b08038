// Package commerce models the marketplace shop: sellers, their products and customer orders.
// Money is handled with shopspring/decimal.
package commerce
