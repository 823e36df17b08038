package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/servicehub/internal/domain/bookings"

	"github.com/gin-gonic/gin"
)

const pdfContentType = "application/pdf"

// BookingHandler defines the interface for booking and complaint operations
type BookingHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	AssignTechnician(ctx *gin.Context)
	History(ctx *gin.Context)
	JobSheet(ctx *gin.Context)

	RaiseComplaint(ctx *gin.Context)
	ListComplaints(ctx *gin.Context)
	UpdateComplaint(ctx *gin.Context)
}

type bookingHandler struct {
	bookingService   bookings.BookingService
	complaintService bookings.ComplaintService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService bookings.BookingService, complaintService bookings.ComplaintService) BookingHandler {
	return &bookingHandler{
		bookingService:   bookingService,
		complaintService: complaintService,
	}
}

// Create books a service visit for the calling customer
func (handler *bookingHandler) Create(ctx *gin.Context) {
	var input bookings.CreateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	booking, err := handler.bookingService.Create(ctx, principalFrom(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBookingResponse(booking))
}

// List lists the bookings visible to the caller
func (handler *bookingHandler) List(ctx *gin.Context) {
	query := &bookings.Query{
		Status:       bookings.Status(ctx.Query("status")),
		CustomerID:   ctx.Query("customerId"),
		DealerID:     ctx.Query("dealerId"),
		TechnicianID: ctx.Query("technicianId"),
		From:         timeQuery(ctx, "from"),
		To:           timeQuery(ctx, "to"),
		Page:         pageFrom(ctx),
	}

	items, total, err := handler.bookingService.List(ctx, principalFrom(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(items, total, query.EffectiveLimit(), query.Offset, newBookingResponse))
}

// GetByID returns a booking visible to the caller
func (handler *bookingHandler) GetByID(ctx *gin.Context) {
	booking, err := handler.bookingService.GetByID(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// UpdateStatus moves a booking through its lifecycle
func (handler *bookingHandler) UpdateStatus(ctx *gin.Context) {
	var input bookings.StatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	booking, err := handler.bookingService.UpdateStatus(ctx, principalFrom(ctx), ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// AssignTechnician assigns a technician of the dealership to a booking
func (handler *bookingHandler) AssignTechnician(ctx *gin.Context) {
	var input bookings.AssignInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	booking, err := handler.bookingService.AssignTechnician(ctx, principalFrom(ctx), ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// History lists the status changes of a booking, oldest first
func (handler *bookingHandler) History(ctx *gin.Context) {
	events, err := handler.bookingService.History(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapSlice(events, newBookingEventResponse))
}

// JobSheet downloads the printable job sheet of a booking
func (handler *bookingHandler) JobSheet(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := handler.bookingService.JobSheet(ctx, principalFrom(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendPDF(ctx, fmt.Sprintf("job-sheet-%s.pdf", id), content)
}

// RaiseComplaint files a complaint against a booking of the calling customer
func (handler *bookingHandler) RaiseComplaint(ctx *gin.Context) {
	var input bookings.RaiseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	complaint, err := handler.complaintService.Raise(ctx, principalFrom(ctx), ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newComplaintResponse(complaint))
}

// ListComplaints lists the complaints visible to the caller
func (handler *bookingHandler) ListComplaints(ctx *gin.Context) {
	query := &bookings.ComplaintQuery{
		Status:     bookings.ComplaintStatus(ctx.Query("status")),
		CustomerID: ctx.Query("customerId"),
		BookingID:  ctx.Query("bookingId"),
		Page:       pageFrom(ctx),
	}

	complaints, total, err := handler.complaintService.List(ctx, principalFrom(ctx), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(complaints, total, query.EffectiveLimit(), query.Offset, newComplaintResponse))
}

// UpdateComplaint reviews, resolves, rejects or closes a complaint
func (handler *bookingHandler) UpdateComplaint(ctx *gin.Context) {
	var update bookings.ComplaintUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		badRequest(ctx, "invalid request body")
		return
	}

	complaint, err := handler.complaintService.Update(ctx, principalFrom(ctx), ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newComplaintResponse(complaint))
}

func sendPDF(ctx *gin.Context, fileName string, content []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, pdfContentType, content)
}
