package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"

	"github.com/gin-gonic/gin"
)

// OrderHandler defines the interface for checkout and order fulfilment
type OrderHandler interface {
	Place(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	Invoice(ctx *gin.Context)
}

type orderHandler struct {
	orderService commerce.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService commerce.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// Place checks out the given lines for the calling customer
func (handler *orderHandler) Place(ctx *gin.Context) {
	var input commerce.PlaceOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	order, err := handler.orderService.Place(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}

// List lists the caller's orders, or all orders for admins
func (handler *orderHandler) List(ctx *gin.Context) {
	query := &commerce.OrderQuery{
		Status:     commerce.OrderStatus(ctx.Query("status")),
		CustomerID: ctx.Query("customerId"),
		Page:       pageFrom(ctx),
	}

	orders, total, err := handler.orderService.List(ctx, principalFrom(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(orders, total, query.EffectiveLimit(), query.Offset, newOrderResponse))
}

// GetByID returns an order visible to the caller
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	order, err := handler.orderService.GetByID(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// UpdateStatus moves an order to another status
func (handler *orderHandler) UpdateStatus(ctx *gin.Context) {
	var input commerce.OrderStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	order, err := handler.orderService.UpdateStatus(ctx, principalFrom(ctx), ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// Invoice downloads the invoice of an order
func (handler *orderHandler) Invoice(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := handler.orderService.Invoice(ctx, principalFrom(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendPDF(ctx, fmt.Sprintf("invoice-%s.pdf", id), content)
}
