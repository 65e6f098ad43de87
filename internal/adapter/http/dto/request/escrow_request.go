package request

// EscrowInitiateRequest starts the escrow flow for a booking. The card fields
// come from the payer's client-side tokenization and never contain raw card
// data.
type EscrowInitiateRequest struct {
	BookingID       string  `json:"bookingId" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	CardToken       string  `json:"cardToken"`
	PaymentMethodID string  `json:"paymentMethodId"`
}

// EscrowReleaseRequest asks for capture of a held escrow payment.
type EscrowReleaseRequest struct {
	EscrowPaymentID string `json:"escrowPaymentId" binding:"required"`
}
