package interfaces

import (
	"context"

	"supplylink/internal/domain/entities"
)

// IEscrowPaymentRepository abstracts DynamoDB persistence for EscrowPayment.
//
// Records are append-then-transition: they are never deleted, and every status
// transition is a compare-and-set on the current status.

type IEscrowPaymentRepository interface {
	Create(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error)
	GetByID(ctx context.Context, id string) (entities.EscrowPayment, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.EscrowPayment, error)

	// AttachReference stores the processor authorization handle once; a second
	// write with a different reference fails ErrStateCheckConflict.
	AttachReference(ctx context.Context, id, externalRef string) (entities.EscrowPayment, error)

	// UpdateStatus applies from->to conditionally on the persisted status
	// still being from.
	UpdateStatus(ctx context.Context, id string, from, to entities.EscrowStatus) (entities.EscrowPayment, error)
}
