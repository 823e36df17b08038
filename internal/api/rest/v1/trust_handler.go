package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"

	"github.com/gin-gonic/gin"
)

// TrustHandler defines the interface for trust score administration
type TrustHandler interface {
	Adjust(ctx *gin.Context)
	Recalculate(ctx *gin.Context)
	History(ctx *gin.Context)
}

type trustHandler struct {
	trustService trust.TrustService
}

// NewTrustHandler creates a new TrustHandler
func NewTrustHandler(trustService trust.TrustService) TrustHandler {
	return &trustHandler{trustService: trustService}
}

// Adjust applies a manual delta to a trust score
func (handler *trustHandler) Adjust(ctx *gin.Context) {
	var input trust.AdjustInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	entry, err := handler.trustService.Adjust(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTrustHistoryResponse(entry))
}

// Recalculate derives a trust score from booking outcomes
func (handler *trustHandler) Recalculate(ctx *gin.Context) {
	var input trust.RecalculateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	entry, err := handler.trustService.Recalculate(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTrustHistoryResponse(entry))
}

// History lists the score changes of one dealer or technician
func (handler *trustHandler) History(ctx *gin.Context) {
	query := &trust.HistoryQuery{
		SubjectType: partners.PartnerType(ctx.Query("subjectType")),
		SubjectID:   ctx.Query("subjectId"),
		Page:        pageFrom(ctx),
	}

	entries, total, err := handler.trustService.History(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(entries, total, query.EffectiveLimit(), query.Offset, newTrustHistoryResponse))
}
