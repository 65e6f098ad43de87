package routes

import (
	"supplylink/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings, authn)
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.List)
		bookings.GET("/:id", bookingHandler.GetByID)
		bookings.PATCH("/:id/confirm", bookingHandler.Confirm)
		bookings.PATCH("/:id/complete", bookingHandler.Complete)
		bookings.PATCH("/:id/cancel", bookingHandler.Cancel)
	}
}
