package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/territories"

	"github.com/gin-gonic/gin"
)

// TerritoryHandler defines the interface for territory category operations
type TerritoryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Resolve(ctx *gin.Context)
}

type territoryHandler struct {
	territoryService territories.TerritoryService
}

// NewTerritoryHandler creates a new TerritoryHandler
func NewTerritoryHandler(territoryService territories.TerritoryService) TerritoryHandler {
	return &territoryHandler{territoryService: territoryService}
}

// Create adds a territory category
func (handler *territoryHandler) Create(ctx *gin.Context) {
	var input territories.Input
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	category, err := handler.territoryService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

// List lists territory categories
func (handler *territoryHandler) List(ctx *gin.Context) {
	query := &territories.Query{
		Search: ctx.Query("search"),
		Page:   pageFrom(ctx),
	}

	categories, total, err := handler.territoryService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(categories, total, query.EffectiveLimit(), query.Offset, newCategoryResponse))
}

// Update replaces a territory category
func (handler *territoryHandler) Update(ctx *gin.Context) {
	var input territories.Input
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	category, err := handler.territoryService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

// DeleteByID deletes a territory category
func (handler *territoryHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.territoryService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Resolve finds the category serving a pincode
func (handler *territoryHandler) Resolve(ctx *gin.Context) {
	pincode := ctx.Query("pincode")
	if len(pincode) == 0 {
		badRequest(ctx, "pincode is required")
		return
	}

	category, err := handler.territoryService.Resolve(ctx, pincode)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}
