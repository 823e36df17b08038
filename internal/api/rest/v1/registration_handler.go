package v1

import (
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/registration"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler defines the interface for self-service sign-up
type RegistrationHandler interface {
	RegisterDealer(ctx *gin.Context)
	RegisterTechnician(ctx *gin.Context)
	RegisterCustomer(ctx *gin.Context)
}

type registrationHandler struct {
	registrationService registration.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService registration.RegistrationService) RegistrationHandler {
	return &registrationHandler{registrationService: registrationService}
}

// RegisterDealer signs up a dealer. The account starts PENDING until an admin approves it.
func (handler *registrationHandler) RegisterDealer(ctx *gin.Context) {
	var input registration.DealerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	result, err := handler.registrationService.RegisterDealer(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, DealerRegistrationResponse{
		User:   newUserResponse(result.User),
		Dealer: newDealerResponse(result.Dealer),
	})
}

// RegisterTechnician signs up a technician
func (handler *registrationHandler) RegisterTechnician(ctx *gin.Context) {
	var input registration.TechnicianInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	result, err := handler.registrationService.RegisterTechnician(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, TechnicianRegistrationResponse{
		User:       newUserResponse(result.User),
		Technician: newTechnicianResponse(result.Technician),
	})
}

// RegisterCustomer signs up a customer
func (handler *registrationHandler) RegisterCustomer(ctx *gin.Context) {
	var input registration.CustomerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	user, err := handler.registrationService.RegisterCustomer(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newUserResponse(user))
}
