package handlers

import (
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	Route      string `json:"route"`
	SeatNumber int    `json:"seatNumber"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	booking, err := svc.Reserve(middleware.UserID(c), req.Route, req.SeatNumber)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "seat booked successfully",
		"booking": booking,
	})
}

// GET /api/bookings/my
func MyBookings(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}

	bookings, err := svc.MyBookings(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}
