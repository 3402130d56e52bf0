package handlers

import (
	"net/http"

	"tripdesk/models"
	"tripdesk/services/pega"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the case operations directly, alongside the
// conversational path, for clients that want to skip the assistant.
type BookingHandler struct {
	Client *pega.Client
}

func NewBookingHandler(client *pega.Client) *BookingHandler {
	return &BookingHandler{Client: client}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	confirmation, err := h.Client.CreateBooking(c.Request.Context(), req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		logger.Error("Failed to create booking case", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.BookingConfirmation{Confirmation: confirmation})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")

	details := h.Client.GetBookingDetails(c.Request.Context(), bookingID)
	if status, ok := details["status"].(string); ok && status == "error" {
		c.JSON(http.StatusNotFound, details)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *BookingHandler) ListDestinationsHandler(c *gin.Context) {
	destinations := h.Client.ListDestinations(c.Request.Context())
	c.JSON(http.StatusOK, models.DestinationsResponse{Destinations: destinations})
}
