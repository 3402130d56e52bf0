package models

// BookingRequest carries the customer details needed to open a booking case.
type BookingRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
}

// BookingConfirmation wraps the confirmation text for a created case.
type BookingConfirmation struct {
	Confirmation string `json:"confirmation"`
}

// DestinationsResponse lists the cities travel can be booked to.
type DestinationsResponse struct {
	Destinations []string `json:"destinations"`
}
