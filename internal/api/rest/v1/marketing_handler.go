package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/marketing"

	"github.com/gin-gonic/gin"
)

// MarketingHandler defines the interface for banners, blogs, promotions and testimonials
type MarketingHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	SetPublished(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
	Active(ctx *gin.Context)
	Image(ctx *gin.Context)
}

type marketingHandler struct {
	contentService marketing.ContentService
}

// NewMarketingHandler creates a new MarketingHandler
func NewMarketingHandler(contentService marketing.ContentService) MarketingHandler {
	return &marketingHandler{contentService: contentService}
}

// Create adds a content item
func (handler *marketingHandler) Create(ctx *gin.Context) {
	var input marketing.Input
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	content, err := handler.contentService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newContentResponse(content))
}

// List lists content items including drafts
func (handler *marketingHandler) List(ctx *gin.Context) {
	query := &marketing.Query{
		Kind:      marketing.Kind(ctx.Query("kind")),
		Published: boolQuery(ctx, "published"),
		Page:      pageFrom(ctx),
	}

	items, total, err := handler.contentService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(items, total, query.EffectiveLimit(), query.Offset, newContentResponse))
}

// Update replaces the editable fields of a content item
func (handler *marketingHandler) Update(ctx *gin.Context) {
	var input marketing.Input
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	content, err := handler.contentService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContentResponse(content))
}

// DeleteByID deletes a content item and its image
func (handler *marketingHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.contentService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetPublished publishes or unpublishes a content item
func (handler *marketingHandler) SetPublished(ctx *gin.Context) {
	var input marketing.PublishInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	content, err := handler.contentService.SetPublished(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContentResponse(content))
}

// UploadImage stores the "file" form field as the content image
func (handler *marketingHandler) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		badRequest(ctx, "invalid form data")
		return
	}

	content, err := handler.contentService.UploadImage(ctx, ctx.Param("id"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContentResponse(content))
}

// Active lists the published content currently inside its display window
func (handler *marketingHandler) Active(ctx *gin.Context) {
	items, err := handler.contentService.Active(ctx, marketing.Kind(ctx.Query("kind")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapSlice(items, newContentResponse))
}

// Image serves the content image
func (handler *marketingHandler) Image(ctx *gin.Context) {
	content, contentType, err := handler.contentService.Image(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Cache-Control", "public, max-age=300")
	ctx.Data(http.StatusOK, contentType, content)
}
