package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const errorReportingKey = "servicehub.errorReporting"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// InfoResponse carries a plain message
type InfoResponse struct {
	Message string `json:"message"`
}

type errorReporting struct {
	logger       logger.Logger
	exposeDetail bool
}

// ErrorReporting logs unexpected errors with log. When exposeDetail is set the cause is
// returned in the detail field, which is meant for development only.
func ErrorReporting(log logger.Logger, exposeDetail bool) gin.HandlerFunc {
	reporting := &errorReporting{logger: log, exposeDetail: exposeDetail}
	return func(ctx *gin.Context) {
		ctx.Set(errorReportingKey, reporting)
		ctx.Next()
	}
}

var kindStatus = map[apperror.Kind]int{
	apperror.KindValidation:        http.StatusBadRequest,
	apperror.KindDuplicate:         http.StatusBadRequest,
	apperror.KindUnauthorized:      http.StatusUnauthorized,
	apperror.KindForbidden:         http.StatusForbidden,
	apperror.KindNotFound:          http.StatusNotFound,
	apperror.KindConflict:          http.StatusConflict,
	apperror.KindInvalidTransition: http.StatusUnprocessableEntity,
	apperror.KindUnavailable:       http.StatusServiceUnavailable,
}

// statusOf maps err to an HTTP status code
func statusOf(err error) int {
	if status, ok := kindStatus[apperror.KindOf(err)]; ok {
		return status
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), strings.Contains(strings.ToLower(err.Error()), "timeout"):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse and aborts the request
func respondError(ctx *gin.Context, err error) {
	status := statusOf(err)
	response := ErrorResponse{Message: err.Error()}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		response.Message = appErr.Message
		response.Field = appErr.Field
	}

	switch status {
	case http.StatusInternalServerError:
		response.Message = "internal server error"
		if v, ok := ctx.Get(errorReportingKey); ok {
			reporting := v.(*errorReporting)
			if reporting.exposeDetail {
				response.Detail = err.Error()
			}
			reporting.logger.Error("request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		}
	case http.StatusGatewayTimeout:
		response.Message = "upstream timeout"
	case http.StatusBadRequest:
		if errors.Is(err, gorm.ErrDuplicatedKey) && appErr == nil {
			response.Message = "resource already exists"
		}
	}

	ctx.AbortWithStatusJSON(status, response)
}

// badRequest aborts with a 400 for malformed request bodies
func badRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
