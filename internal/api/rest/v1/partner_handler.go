package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"

	"github.com/gin-gonic/gin"
)

// PartnerHandler defines the interface for the admin dealer and technician panels
type PartnerHandler interface {
	ListDealers(ctx *gin.Context)
	GetDealerByID(ctx *gin.Context)
	UpdateDealerStatus(ctx *gin.Context)
	UpdateDealerKYC(ctx *gin.Context)
	DeleteDealerByID(ctx *gin.Context)
	ListDealerDocuments(ctx *gin.Context)

	ListTechnicians(ctx *gin.Context)
	GetTechnicianByID(ctx *gin.Context)
	UpdateTechnicianStatus(ctx *gin.Context)
	UpdateTechnicianKYC(ctx *gin.Context)
	DeleteTechnicianByID(ctx *gin.Context)
	ListTechnicianDocuments(ctx *gin.Context)

	ListOwnTechnicians(ctx *gin.Context)
}

type partnerHandler struct {
	dealerService     partners.DealerService
	technicianService partners.TechnicianService
	documentService   documents.DocumentService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(dealerService partners.DealerService, technicianService partners.TechnicianService, documentService documents.DocumentService) PartnerHandler {
	return &partnerHandler{
		dealerService:     dealerService,
		technicianService: technicianService,
		documentService:   documentService,
	}
}

// ListDealers lists dealers filtered by status, KYC, city, territory or a search term
func (handler *partnerHandler) ListDealers(ctx *gin.Context) {
	query := &partners.DealerQuery{
		AccountStatus: partners.AccountStatus(ctx.Query("accountStatus")),
		KYCStatus:     partners.KYCStatus(ctx.Query("kycStatus")),
		Search:        ctx.Query("search"),
		City:          ctx.Query("city"),
		TerritoryID:   ctx.Query("territoryId"),
		Page:          pageFrom(ctx),
	}

	dealers, total, err := handler.dealerService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(dealers, total, query.EffectiveLimit(), query.Offset, newDealerResponse))
}

// GetDealerByID returns one dealer
func (handler *partnerHandler) GetDealerByID(ctx *gin.Context) {
	dealer, err := handler.dealerService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDealerResponse(dealer))
}

// UpdateDealerStatus approves, rejects, suspends or reinstates a dealer
func (handler *partnerHandler) UpdateDealerStatus(ctx *gin.Context) {
	var change partners.StatusChange
	if err := ctx.ShouldBindJSON(&change); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	dealer, err := handler.dealerService.UpdateAccountStatus(ctx, principalFrom(ctx), ctx.Param("id"), &change)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDealerResponse(dealer))
}

// UpdateDealerKYC records the outcome of a KYC review
func (handler *partnerHandler) UpdateDealerKYC(ctx *gin.Context) {
	var change partners.StatusChange
	if err := ctx.ShouldBindJSON(&change); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	dealer, err := handler.dealerService.UpdateKYCStatus(ctx, principalFrom(ctx), ctx.Param("id"), &change)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDealerResponse(dealer))
}

// DeleteDealerByID removes a dealer together with its user account
func (handler *partnerHandler) DeleteDealerByID(ctx *gin.Context) {
	if err := handler.dealerService.DeleteByID(ctx, principalFrom(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListDealerDocuments lists the KYC documents of a dealer
func (handler *partnerHandler) ListDealerDocuments(ctx *gin.Context) {
	handler.listDocuments(ctx, partners.TypeDealer)
}

// ListTechnicians lists technicians filtered by status, KYC, dealer, city or skill
func (handler *partnerHandler) ListTechnicians(ctx *gin.Context) {
	query := technicianQueryFrom(ctx)
	query.DealerID = ctx.Query("dealerId")

	technicians, total, err := handler.technicianService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(technicians, total, query.EffectiveLimit(), query.Offset, newTechnicianResponse))
}

// GetTechnicianByID returns one technician
func (handler *partnerHandler) GetTechnicianByID(ctx *gin.Context) {
	technician, err := handler.technicianService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTechnicianResponse(technician))
}

// UpdateTechnicianStatus approves, rejects, suspends or reinstates a technician
func (handler *partnerHandler) UpdateTechnicianStatus(ctx *gin.Context) {
	var change partners.StatusChange
	if err := ctx.ShouldBindJSON(&change); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	technician, err := handler.technicianService.UpdateAccountStatus(ctx, principalFrom(ctx), ctx.Param("id"), &change)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTechnicianResponse(technician))
}

// UpdateTechnicianKYC records the outcome of a KYC review
func (handler *partnerHandler) UpdateTechnicianKYC(ctx *gin.Context) {
	var change partners.StatusChange
	if err := ctx.ShouldBindJSON(&change); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	technician, err := handler.technicianService.UpdateKYCStatus(ctx, principalFrom(ctx), ctx.Param("id"), &change)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTechnicianResponse(technician))
}

// DeleteTechnicianByID removes a technician together with its user account
func (handler *partnerHandler) DeleteTechnicianByID(ctx *gin.Context) {
	if err := handler.technicianService.DeleteByID(ctx, principalFrom(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListTechnicianDocuments lists the KYC documents of a technician
func (handler *partnerHandler) ListTechnicianDocuments(ctx *gin.Context) {
	handler.listDocuments(ctx, partners.TypeTechnician)
}

// ListOwnTechnicians lists the technicians attached to the calling dealer
func (handler *partnerHandler) ListOwnTechnicians(ctx *gin.Context) {
	query := technicianQueryFrom(ctx)

	technicians, total, err := handler.technicianService.ListForDealer(ctx, principalFrom(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(technicians, total, query.EffectiveLimit(), query.Offset, newTechnicianResponse))
}

func (handler *partnerHandler) listDocuments(ctx *gin.Context, ownerType partners.PartnerType) {
	docs, err := handler.documentService.ListForOwner(ctx, ownerType, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapSlice(docs, newDocumentResponse))
}

func technicianQueryFrom(ctx *gin.Context) *partners.TechnicianQuery {
	return &partners.TechnicianQuery{
		AccountStatus: partners.AccountStatus(ctx.Query("accountStatus")),
		KYCStatus:     partners.KYCStatus(ctx.Query("kycStatus")),
		City:          ctx.Query("city"),
		Skill:         ctx.Query("skill"),
		Page:          pageFrom(ctx),
	}
}
