package handlers

import (
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	Sessions *utils.SessionSet

	// Auth endpoints.
	LoginHandler gin.HandlerFunc

	// Assistant endpoints.
	ChatHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler    gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	ListDestinationsHandler gin.HandlerFunc
}
