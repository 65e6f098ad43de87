package interfaces

import (
	"context"
	"errors"

	"supplylink/internal/domain/entities"
)

// ErrStateCheckConflict is returned by repositories when a conditional write
// is rejected because the record no longer matches the expected prior state.
// Use cases surface it as a state conflict instead of silently overwriting.
var ErrStateCheckConflict = errors.New("conditional state check failed")

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Every mutation is a compare-and-set keyed on the current status (or claim
// slot); read-modify-write is never split across a race window.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByParticipant(ctx context.Context, userID string) ([]entities.Booking, error)

	// UpdateStatus applies from->to conditionally on the persisted status
	// still being from.
	UpdateStatus(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error)

	// ClaimEscrow atomically takes the booking's escrow slot for escrowID.
	// The write succeeds only when no non-terminal escrow claim is present.
	ClaimEscrow(ctx context.Context, bookingID, escrowID string) (entities.Booking, error)

	// ReleaseEscrowClaim frees the slot, but only while it still points at
	// escrowID; payment_status returns to none.
	ReleaseEscrowClaim(ctx context.Context, bookingID, escrowID string) (entities.Booking, error)

	// SetPaymentStatus writes the projection of the escrow status.
	SetPaymentStatus(ctx context.Context, bookingID string, status entities.PaymentStatus) (entities.Booking, error)
}
