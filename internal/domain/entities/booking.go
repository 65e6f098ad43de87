package entities

import "time"

// BookingStatus represents the service booking lifecycle.
//
// Domain notes:
//   - The requester (vendor) creates the booking; only the provider (supplier)
//     advances it through confirmed and completed.
//   - completed and cancelled are terminal.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions is the exhaustive edge set; anything absent is illegal.
var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending: {
		BookingStatusConfirmed: true,
		BookingStatusCancelled: true,
	},
	BookingStatusConfirmed: {
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
	},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return bookingTransitions[s][next]
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// PaymentStatus is the booking-side projection of the escrow payment state.
// It is written exclusively by the escrow orchestrator, never by either role.

type PaymentStatus string

const (
	PaymentStatusNone         PaymentStatus = "none"
	PaymentStatusPending      PaymentStatus = "pending"
	PaymentStatusHeldInEscrow PaymentStatus = "held_in_escrow"
	PaymentStatusReleased     PaymentStatus = "released"
	PaymentStatusRefunded     PaymentStatus = "refunded"
)

// Booking is the service agreement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_id-index): requester_id
//   - GSI2 (provider_id-index): provider_id
//
// EscrowPaymentID is the claim slot enforcing at most one non-terminal escrow
// payment per booking: initiating a payment takes the slot with a conditional
// write, so two concurrent initiations cannot both succeed.

type Booking struct {
	ID                 string        `json:"id"`
	RequesterID        string        `json:"requester_id"`
	ProviderID         string        `json:"provider_id"`
	ServiceDescription string        `json:"service_description"`
	BookingDate        time.Time     `json:"booking_date"`
	Amount             float64       `json:"amount"`
	Status             BookingStatus `json:"status"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	EscrowPaymentID    string        `json:"escrow_payment_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
