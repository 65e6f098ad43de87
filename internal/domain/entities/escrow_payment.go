package entities

import "time"

// EscrowStatus represents the escrow payment lifecycle.
//
// The persisted set is a superset of the caller-visible one:
//   - capturing is the transient sub-state entered before a capture call is
//     dispatched, so an unknown outcome leaves a recoverable marker instead of
//     risking a double capture on retry.
//   - failed records an authorization the processor cleanly rejected after the
//     booking slot was already claimed; it is terminal and frees the booking
//     for a new initiation while keeping the record as audit trail.

type EscrowStatus string

const (
	EscrowStatusPending   EscrowStatus = "pending"
	EscrowStatusHeld      EscrowStatus = "held"
	EscrowStatusCapturing EscrowStatus = "capturing"
	EscrowStatusReleased  EscrowStatus = "released"
	EscrowStatusRefunded  EscrowStatus = "refunded"
	EscrowStatusFailed    EscrowStatus = "failed"
)

var escrowTransitions = map[EscrowStatus]map[EscrowStatus]bool{
	EscrowStatusPending: {
		EscrowStatusHeld:   true,
		EscrowStatusFailed: true,
	},
	EscrowStatusHeld: {
		EscrowStatusCapturing: true,
		EscrowStatusReleased:  true,
		EscrowStatusRefunded:  true,
	},
	EscrowStatusCapturing: {
		EscrowStatusHeld:     true, // clean gateway rejection reverts the marker
		EscrowStatusReleased: true,
	},
	EscrowStatusReleased: {},
	EscrowStatusRefunded: {},
	EscrowStatusFailed:   {},
}

func (s EscrowStatus) CanTransitionTo(next EscrowStatus) bool {
	return escrowTransitions[s][next]
}

func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowStatusReleased || s == EscrowStatusRefunded || s == EscrowStatusFailed
}

// ProjectPaymentStatus derives the booking-side payment_status from the escrow
// status. The escrow record is the source of truth; the booking field is only
// ever this projection.
func (s EscrowStatus) ProjectPaymentStatus() PaymentStatus {
	switch s {
	case EscrowStatusPending:
		return PaymentStatusPending
	case EscrowStatusHeld, EscrowStatusCapturing:
		return PaymentStatusHeldInEscrow
	case EscrowStatusReleased:
		return PaymentStatusReleased
	case EscrowStatusRefunded:
		return PaymentStatusRefunded
	default:
		return PaymentStatusNone
	}
}

// EscrowPayment is the escrow record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// Amount is fixed at creation to the booking amount at that instant and never
// changes. Records are never deleted; terminal rows remain as audit trail.
// ExternalReference is the processor-side authorization handle used later for
// capture.

type EscrowPayment struct {
	ID                string       `json:"id"`
	BookingID         string       `json:"booking_id"`
	PayerID           string       `json:"payer_id"`
	PayeeID           string       `json:"payee_id"`
	Amount            float64      `json:"amount"`
	ExternalReference string       `json:"external_reference,omitempty"`
	Status            EscrowStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
