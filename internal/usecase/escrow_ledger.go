package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"

	"github.com/google/uuid"
)

// Escrow lifecycle event names published on committed transitions.
const (
	EventEscrowOpened               = "escrow.opened"
	EventEscrowHeld                 = "escrow.held"
	EventEscrowReleased             = "escrow.released"
	EventEscrowRefunded             = "escrow.refunded"
	EventEscrowFailed               = "escrow.failed"
	EventEscrowCaptureIndeterminate = "escrow.capture_indeterminate"
	EventEscrowProjectionFailed     = "escrow.projection_failed"
)

// EscrowEvent is the versioned payload published to the event stream.
type EscrowEvent struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"`
	Data       struct {
		EscrowPaymentID   string  `json:"escrow_payment_id"`
		BookingID         string  `json:"booking_id"`
		PayerID           string  `json:"payer_id"`
		PayeeID           string  `json:"payee_id"`
		Amount            float64 `json:"amount"`
		Status            string  `json:"status"`
		GatewayReference  string  `json:"gateway_reference,omitempty"`
		PaymentStatusSync bool    `json:"payment_status_sync"`
	} `json:"data"`
}

func newEscrowEvent(name string, p entities.EscrowPayment, projected bool) EscrowEvent {
	ev := EscrowEvent{Event: name, Version: 1, OccurredAt: time.Now().UTC().Format(time.RFC3339Nano)}
	ev.Data.EscrowPaymentID = p.ID
	ev.Data.BookingID = p.BookingID
	ev.Data.PayerID = p.PayerID
	ev.Data.PayeeID = p.PayeeID
	ev.Data.Amount = p.Amount
	ev.Data.Status = string(p.Status)
	ev.Data.GatewayReference = p.ExternalReference
	ev.Data.PaymentStatusSync = projected
	return ev
}

// EscrowLedger owns the escrow record and its paired booking projection.
//
// Each transition is a single logical operation: the escrow write is the
// compare-and-set source of truth and is applied first; the booking
// payment_status write is a projection of it. When the projection write fails
// the escrow transition still stands: the divergence is logged and published
// as escrow.projection_failed so a corrector can re-derive the booking field.

type EscrowLedger struct {
	escrows   interfaces.IEscrowPaymentRepository
	bookings  interfaces.IBookingRepository
	publisher interfaces.IEventPublisher
	logger    *slog.Logger
}

func NewEscrowLedger(escrows interfaces.IEscrowPaymentRepository, bookings interfaces.IBookingRepository, publisher interfaces.IEventPublisher, logger *slog.Logger) *EscrowLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &EscrowLedger{escrows: escrows, bookings: bookings, publisher: publisher, logger: logger}
}

// Open claims the booking's escrow slot and creates the pending record.
// The claim is the single-winner gate: a booking with a non-terminal escrow
// payment rejects the conditional write and Open fails with a state conflict.
func (l *EscrowLedger) Open(ctx context.Context, b entities.Booking) (entities.EscrowPayment, error) {
	now := time.Now().UTC()
	p := entities.EscrowPayment{
		ID:        uuid.NewString(),
		BookingID: b.ID,
		PayerID:   b.RequesterID,
		PayeeID:   b.ProviderID,
		Amount:    b.Amount,
		Status:    entities.EscrowStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := l.bookings.ClaimEscrow(ctx, b.ID, p.ID); err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.EscrowPayment{}, ErrEscrowAlreadyOpen
		}
		return entities.EscrowPayment{}, err
	}

	created, err := l.escrows.Create(ctx, p)
	if err != nil {
		// Free the slot so the record write failure is not a permanent block.
		if _, relErr := l.bookings.ReleaseEscrowClaim(ctx, b.ID, p.ID); relErr != nil {
			l.log(ctx).Error("escrow claim rollback failed", "booking_id", b.ID, "escrow_payment_id", p.ID, "error", relErr)
		}
		return entities.EscrowPayment{}, err
	}

	l.publish(ctx, newEscrowEvent(EventEscrowOpened, created, true))
	return created, nil
}

// AttachReference stores the processor authorization handle on the record.
func (l *EscrowLedger) AttachReference(ctx context.Context, id, externalRef string) (entities.EscrowPayment, error) {
	p, err := l.escrows.AttachReference(ctx, id, externalRef)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.EscrowPayment{}, pkg.WrapDomainError(pkg.KindStateConflict, "escrow payment already references another authorization", err)
		}
		return entities.EscrowPayment{}, err
	}
	return p, nil
}

// MarkHeld transitions pending->held and projects held_in_escrow.
func (l *EscrowLedger) MarkHeld(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	return l.transition(ctx, p, entities.EscrowStatusPending, entities.EscrowStatusHeld, EventEscrowHeld)
}

// MarkCapturing places the transient marker before a capture is dispatched.
// Exactly one concurrent release wins this compare-and-set. The booking
// projection is unchanged (capturing still projects held_in_escrow).
func (l *EscrowLedger) MarkCapturing(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	updated, err := l.escrows.UpdateStatus(ctx, p.ID, entities.EscrowStatusHeld, entities.EscrowStatusCapturing)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.EscrowPayment{}, ErrNotEligibleForRelease
		}
		return entities.EscrowPayment{}, err
	}
	return updated, nil
}

// RevertCapturing returns a cleanly rejected capture to held.
func (l *EscrowLedger) RevertCapturing(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	updated, err := l.escrows.UpdateStatus(ctx, p.ID, entities.EscrowStatusCapturing, entities.EscrowStatusHeld)
	if err != nil {
		l.log(ctx).Error("capturing revert failed; record needs manual reconciliation", "escrow_payment_id", p.ID, "error", err)
		return entities.EscrowPayment{}, err
	}
	return updated, nil
}

// MarkReleased finalizes a capture. From is taken from the caller's view of
// the record (capturing on the release path, held when reconciled directly
// from a processor event).
func (l *EscrowLedger) MarkReleased(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	return l.transition(ctx, p, p.Status, entities.EscrowStatusReleased, EventEscrowReleased)
}

// MarkRefunded records a processor-side refund of held funds.
func (l *EscrowLedger) MarkRefunded(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	return l.transition(ctx, p, entities.EscrowStatusHeld, entities.EscrowStatusRefunded, EventEscrowRefunded)
}

// MarkFailed compensates a cleanly rejected authorization: the record is
// closed as failed (kept as audit trail) and the booking's escrow slot is
// freed so payment can be re-initiated.
func (l *EscrowLedger) MarkFailed(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	updated, err := l.escrows.UpdateStatus(ctx, p.ID, entities.EscrowStatusPending, entities.EscrowStatusFailed)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.EscrowPayment{}, ErrEscrowNotPending
		}
		return entities.EscrowPayment{}, err
	}
	if _, err := l.bookings.ReleaseEscrowClaim(ctx, p.BookingID, p.ID); err != nil {
		l.log(ctx).Error("escrow claim release failed after failed authorization", "booking_id", p.BookingID, "escrow_payment_id", p.ID, "error", err)
		l.publish(ctx, newEscrowEvent(EventEscrowProjectionFailed, updated, false))
	}
	l.publish(ctx, newEscrowEvent(EventEscrowFailed, updated, true))
	return updated, nil
}

func (l *EscrowLedger) transition(ctx context.Context, p entities.EscrowPayment, from, to entities.EscrowStatus, eventName string) (entities.EscrowPayment, error) {
	if !from.CanTransitionTo(to) {
		return entities.EscrowPayment{}, pkg.NewDomainError(pkg.KindStateConflict, "escrow payment not eligible for "+string(to))
	}

	updated, err := l.escrows.UpdateStatus(ctx, p.ID, from, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.EscrowPayment{}, pkg.WrapDomainError(pkg.KindStateConflict, "escrow payment not eligible for "+string(to), err)
		}
		return entities.EscrowPayment{}, err
	}

	projected := true
	if _, err := l.bookings.SetPaymentStatus(ctx, p.BookingID, to.ProjectPaymentStatus()); err != nil {
		projected = false
		l.log(ctx).Error("payment status projection failed; corrector must re-derive it",
			"booking_id", p.BookingID, "escrow_payment_id", p.ID, "escrow_status", to, "error", err)
		l.publish(ctx, newEscrowEvent(EventEscrowProjectionFailed, updated, false))
	}

	l.publish(ctx, newEscrowEvent(eventName, updated, projected))
	return updated, nil
}

// SyncBookingProjection re-derives booking.payment_status from the escrow
// record; used by the corrector path after a reported divergence.
func (l *EscrowLedger) SyncBookingProjection(ctx context.Context, p entities.EscrowPayment) error {
	_, err := l.bookings.SetPaymentStatus(ctx, p.BookingID, p.Status.ProjectPaymentStatus())
	return err
}

func (l *EscrowLedger) publish(ctx context.Context, ev EscrowEvent) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, ev.Data.BookingID, ev); err != nil {
		l.log(ctx).Warn("escrow event publish failed", "event", ev.Event, "escrow_payment_id", ev.Data.EscrowPaymentID, "error", err)
	}
}

func (l *EscrowLedger) log(ctx context.Context) *slog.Logger {
	return pkg.LoggerFromContext(ctx, l.logger)
}
