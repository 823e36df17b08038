package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"

	"github.com/gin-gonic/gin"
)

// DocumentHandler defines the interface for KYC document operations
type DocumentHandler interface {
	Upload(ctx *gin.Context)
	ListOwn(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
}

type documentHandler struct {
	documentService documents.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService documents.DocumentService) DocumentHandler {
	return &documentHandler{documentService: documentService}
}

// Upload stores the "files" form field as KYC documents of the caller
func (handler *documentHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		badRequest(ctx, "invalid form data")
		return
	}

	docs, err := handler.documentService.Upload(ctx, principalFrom(ctx), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mapSlice(docs, newDocumentResponse))
}

// ListOwn lists the KYC documents of the caller
func (handler *documentHandler) ListOwn(ctx *gin.Context) {
	docs, err := handler.documentService.ListOwn(ctx, principalFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapSlice(docs, newDocumentResponse))
}

// DownloadByID serves the decrypted content of a document
func (handler *documentHandler) DownloadByID(ctx *gin.Context) {
	content, meta, err := handler.documentService.Download(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Name))
	ctx.Data(http.StatusOK, meta.ContentType, content)
}
