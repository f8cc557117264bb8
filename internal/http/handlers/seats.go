package handlers

import (
	"net/http"

	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/seats/:route
func GetRouteSeats(c *gin.Context) {
	svc := services.AvailabilityService{}

	occ, err := svc.Occupancy(c.Param("route"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"route":          occ.Route,
		"totalSeats":     occ.TotalSeats,
		"bookedSeats":    occ.BookedSeats,
		"availableSeats": occ.AvailableSeats,
	})
}

// GET /api/bookings/available/:route
func GetAvailableSeats(c *gin.Context) {
	svc := services.AvailabilityService{}

	free, err := svc.FreeSeats(c.Param("route"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"route":          c.Param("route"),
		"availableSeats": free,
		"count":          len(free),
	})
}
