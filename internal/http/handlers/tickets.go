package handlers

import (
	"net/http"
	"strconv"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingETicket returns the booking's e-ticket PDF (inline).
// Owner or admin only.
func GetBookingETicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	reqID := middleware.GetRequestID(c)
	booking, err := services.BookingService{RequestID: reqID}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if booking.UserID != middleware.UserID(c) && middleware.UserRole(c) != "admin" {
		RespondError(c, http.StatusForbidden, "this booking belongs to another user", nil)
		return
	}

	pdfBytes, filename, err := services.TicketService{RequestID: reqID}.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
