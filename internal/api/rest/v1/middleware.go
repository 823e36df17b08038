package v1

import (
	"net/http"
	"strings"

	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "servicehub.principal"
	tokenKey     = "servicehub.token"
)

// Authenticate resolves the bearer token of the request into a principal
func Authenticate(authService users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx.GetHeader("Authorization"))
		if token == "" {
			respondError(ctx, apperror.Unauthorized("missing bearer token"))
			return
		}

		principal, err := authService.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Set(tokenKey, token)
		ctx.Next()
	}
}

// RequireRoles rejects principals without one of roles
func RequireRoles(roles ...users.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !principalFrom(ctx).HasRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient role"})
			return
		}
		ctx.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// principalFrom returns the authenticated caller or nil on public routes
func principalFrom(ctx *gin.Context) *users.Principal {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*users.Principal)
	return principal
}

var adminRoles = []users.Role{users.RoleAdmin, users.RoleSuperAdmin}
