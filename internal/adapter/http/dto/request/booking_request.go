package request

import "time"

type BookingCreateRequest struct {
	ProviderID         string    `json:"providerId" binding:"required"`
	ServiceDescription string    `json:"serviceDescription" binding:"required"`
	BookingDate        time.Time `json:"bookingDate" binding:"required"`
	Amount             float64   `json:"amount" binding:"required"`
}
