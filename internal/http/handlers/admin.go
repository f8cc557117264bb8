package handlers

import (
	"net/http"
	"strconv"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/all
func GetAllBookings(c *gin.Context) {
	svc := services.AdminService{}

	bookings, stats, err := svc.Overview()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"bookings": bookings,
	})
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Revoke(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted successfully"})
}
