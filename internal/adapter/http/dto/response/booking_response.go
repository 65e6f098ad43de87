package response

import (
	"time"

	"supplylink/internal/domain/entities"
)

type BookingResponse struct {
	ID                 string    `json:"id"`
	RequesterID        string    `json:"requesterId"`
	ProviderID         string    `json:"providerId"`
	ServiceDescription string    `json:"serviceDescription"`
	BookingDate        time.Time `json:"bookingDate"`
	Amount             float64   `json:"amount"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"paymentStatus"`
	EscrowPaymentID    string    `json:"escrowPaymentId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		RequesterID:        b.RequesterID,
		ProviderID:         b.ProviderID,
		ServiceDescription: b.ServiceDescription,
		BookingDate:        b.BookingDate,
		Amount:             b.Amount,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		EscrowPaymentID:    b.EscrowPaymentID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromBookings(items []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBooking(b))
	}
	return out
}
