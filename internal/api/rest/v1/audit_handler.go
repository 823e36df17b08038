package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/dashboard"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"

	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for AI audits and the admin dashboard
type AuditHandler interface {
	Run(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Report(ctx *gin.Context)
	Stats(ctx *gin.Context)
}

type auditHandler struct {
	auditService     audits.AuditService
	dashboardService dashboard.DashboardService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audits.AuditService, dashboardService dashboard.DashboardService) AuditHandler {
	return &auditHandler{
		auditService:     auditService,
		dashboardService: dashboardService,
	}
}

// Run asks the assistant to audit a dealer or technician
func (handler *auditHandler) Run(ctx *gin.Context) {
	var input audits.RunInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	report, err := handler.auditService.Run(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newReportResponse(report))
}

// List lists audit reports
func (handler *auditHandler) List(ctx *gin.Context) {
	query := &audits.Query{
		SubjectType: partners.PartnerType(ctx.Query("subjectType")),
		SubjectID:   ctx.Query("subjectId"),
		RiskLevel:   audits.RiskLevel(ctx.Query("riskLevel")),
		Page:        pageFrom(ctx),
	}

	reports, total, err := handler.auditService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(reports, total, query.EffectiveLimit(), query.Offset, newReportResponse))
}

// GetByID returns one audit report
func (handler *auditHandler) GetByID(ctx *gin.Context) {
	report, err := handler.auditService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newReportResponse(report))
}

// Report downloads an audit report as PDF
func (handler *auditHandler) Report(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := handler.auditService.ReportPDF(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendPDF(ctx, fmt.Sprintf("audit-%s.pdf", id), content)
}

// Stats returns the admin overview counters
func (handler *auditHandler) Stats(ctx *gin.Context) {
	stats, err := handler.dashboardService.Stats(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStatsResponse(stats))
}
