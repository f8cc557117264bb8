package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busbooking/internal/config"
	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authn := middleware.RequireAuth([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/validate", authn, h.ValidateToken)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("/seats/:route", h.GetRouteSeats)
		bookings.GET("/available/:route", h.GetAvailableSeats)
		bookings.POST("", authn, h.CreateBooking)
		bookings.GET("/my", authn, h.MyBookings)
		bookings.GET("/:id/ticket", authn, h.GetBookingETicket)

		// Admin
		bookings.GET("/all", authn, adminOnly, h.GetAllBookings)
		bookings.DELETE("/:id", authn, adminOnly, h.DeleteBooking)
	}

	return r
}
