package response

import (
	"time"

	"supplylink/internal/domain/entities"
)

type EscrowPaymentResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"bookingId"`
	PayerID          string    `json:"payerId"`
	PayeeID          string    `json:"payeeId"`
	Amount           float64   `json:"amount"`
	GatewayReference string    `json:"gatewayReference,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromEscrowPayment(p entities.EscrowPayment) EscrowPaymentResponse {
	return EscrowPaymentResponse{
		ID:               p.ID,
		BookingID:        p.BookingID,
		PayerID:          p.PayerID,
		PayeeID:          p.PayeeID,
		Amount:           p.Amount,
		GatewayReference: p.ExternalReference,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
