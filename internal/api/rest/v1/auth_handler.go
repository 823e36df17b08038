package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for login, session and admin account operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	CreateAdmin(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges an email or phone number and a password for a bearer token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "identifier and password are required")
		return
	}

	result, err := handler.authService.Login(ctx, request.Identifier, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      newUserResponse(result.User),
	})
}

// Logout ends the session of the presented token
func (handler *authHandler) Logout(ctx *gin.Context) {
	if err := handler.authService.Logout(ctx, ctx.GetString(tokenKey)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Me returns the calling user
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.authService.Me(ctx, principalFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// CreateAdmin creates an ADMIN or SUPER_ADMIN account
func (handler *authHandler) CreateAdmin(ctx *gin.Context) {
	var input users.CreateAdminInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	user, err := handler.authService.CreateAdmin(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newUserResponse(user))
}
