package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"supplylink/internal/domain/authz"
	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"
)

var (
	ErrInvalidBookingID      = pkg.NewDomainError(pkg.KindValidation, "invalid booking id")
	ErrInvalidEscrowID       = pkg.NewDomainError(pkg.KindValidation, "invalid escrow payment id")
	ErrInvalidAmount         = pkg.NewDomainError(pkg.KindValidation, "amount must be positive")
	ErrAmountMismatch        = pkg.NewDomainError(pkg.KindValidation, "amount does not match the booking amount")
	ErrBookingNotFound       = pkg.NewDomainError(pkg.KindNotFound, "booking not found")
	ErrEscrowNotFound        = pkg.NewDomainError(pkg.KindNotFound, "escrow payment not found")
	ErrEscrowAlreadyOpen     = pkg.NewDomainError(pkg.KindStateConflict, "escrow payment already open for this booking")
	ErrEscrowNotPending      = pkg.NewDomainError(pkg.KindStateConflict, "escrow payment is not pending")
	ErrBookingNotCompleted   = pkg.NewDomainError(pkg.KindStateConflict, "booking not completed")
	ErrNotEligibleForRelease = pkg.NewDomainError(pkg.KindStateConflict, "not eligible for release")
)

// EscrowAuthorization is returned to the paying client after a successful
// initiation. ClientHandle completes authentication of the hold client-side.
type EscrowAuthorization struct {
	EscrowPaymentID  string
	GatewayReference string
	ClientHandle     string
	Status           entities.EscrowStatus
}

// EscrowRelease confirms a captured payment.
type EscrowRelease struct {
	GatewayReference string
	Message          string
}

// IEscrowPaymentUseCase is the transition orchestrator: the entry points that
// sequence authorization checks, ledger transitions, gateway calls and booking
// updates into single logical operations.

type IEscrowPaymentUseCase interface {
	InitiateAuthorization(ctx context.Context, bookingID string, amount float64, userID, userEmail string, card CardDetails) (EscrowAuthorization, error)
	ReleasePayment(ctx context.Context, escrowID, userID string) (EscrowRelease, error)
	ReconcileGatewayPayment(ctx context.Context, gatewayReference string) error
	GetByID(ctx context.Context, escrowID, userID string) (entities.EscrowPayment, error)
}

// CardDetails is the optional processor-specific payment instrument handed
// through by the client (tokenized card for Mercado Pago).
type CardDetails struct {
	Token           string
	PaymentMethodID string
}

type EscrowPaymentUseCase struct {
	bookings  interfaces.IBookingRepository
	escrows   interfaces.IEscrowPaymentRepository
	gateway   interfaces.IPaymentGateway
	ledger    *EscrowLedger
	publisher interfaces.IEventPublisher
	logger    *slog.Logger
}

var _ IEscrowPaymentUseCase = (*EscrowPaymentUseCase)(nil)

func NewEscrowPaymentUseCase(
	bookings interfaces.IBookingRepository,
	escrows interfaces.IEscrowPaymentRepository,
	gateway interfaces.IPaymentGateway,
	ledger *EscrowLedger,
	publisher interfaces.IEventPublisher,
	logger *slog.Logger,
) *EscrowPaymentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EscrowPaymentUseCase{
		bookings:  bookings,
		escrows:   escrows,
		gateway:   gateway,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger,
	}
}

// InitiateAuthorization places the booking amount on hold with the processor
// and opens the escrow record.
//
// Sequencing: load booking, guard, validate amount, resolve gateway customer,
// claim+open the escrow (single-winner gate), authorize with manual capture,
// then record the held state and project it onto the booking.
func (u *EscrowPaymentUseCase) InitiateAuthorization(ctx context.Context, bookingID string, amount float64, userID, userEmail string, card CardDetails) (EscrowAuthorization, error) {
	log := pkg.LoggerFromContext(ctx, u.logger).With("booking_id", bookingID, "user_id", userID)
	log.Info("escrow initiate started", "amount", amount)

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return EscrowAuthorization{}, ErrInvalidBookingID
	}
	if u.gateway == nil {
		return EscrowAuthorization{}, pkg.NewDomainError(pkg.KindInternal, "payment gateway not configured")
	}

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return EscrowAuthorization{}, err
	}
	if b.ID == "" {
		return EscrowAuthorization{}, ErrBookingNotFound
	}

	if err := authz.CanInitiate(userID, b); err != nil {
		log.Warn("escrow initiate rejected", "reason", err.Error())
		return EscrowAuthorization{}, err
	}

	if amount <= 0 {
		return EscrowAuthorization{}, ErrInvalidAmount
	}
	if amount != b.Amount {
		return EscrowAuthorization{}, ErrAmountMismatch
	}

	customerID, err := u.gateway.FindOrCreateCustomer(ctx, userEmail, "")
	if err != nil {
		log.Error("gateway customer resolution failed", "error", err)
		return EscrowAuthorization{}, err
	}

	esc, err := u.ledger.Open(ctx, b)
	if err != nil {
		return EscrowAuthorization{}, err
	}
	log = log.With("escrow_payment_id", esc.ID)
	log.Info("escrow record opened")

	res, err := u.gateway.Authorize(ctx, interfaces.AuthorizeInput{
		Amount:            b.Amount,
		PayerCustomerID:   customerID,
		PayerEmail:        userEmail,
		Description:       fmt.Sprintf("Escrow payment for booking: %s", b.ServiceDescription),
		ExternalReference: esc.ID,
		CardToken:         card.Token,
		PaymentMethodID:   card.PaymentMethodID,
		Metadata: map[string]any{
			"booking_id": b.ID,
			"payer_id":   b.RequesterID,
			"payee_id":   b.ProviderID,
			"type":       "escrow_payment",
		},
	})
	if err != nil {
		if pkg.KindOf(err) == pkg.KindIndeterminate {
			// The hold may exist processor-side; leave the record pending for
			// webhook reconciliation instead of compensating.
			log.Error("authorization outcome unknown; awaiting reconciliation", "error", err)
			return EscrowAuthorization{}, err
		}
		log.Warn("authorization rejected; compensating", "error", err)
		if _, failErr := u.ledger.MarkFailed(ctx, esc); failErr != nil {
			log.Error("authorization compensation failed", "error", failErr)
		}
		return EscrowAuthorization{}, err
	}

	esc, err = u.ledger.AttachReference(ctx, esc.ID, res.Reference)
	if err != nil {
		return EscrowAuthorization{}, err
	}

	if res.Status == interfaces.GatewayStatusAuthorized {
		esc, err = u.ledger.MarkHeld(ctx, esc)
		if err != nil {
			return EscrowAuthorization{}, err
		}
	}
	// Other provider statuses confirm asynchronously; the webhook performs the
	// pending->held projection when the processor reports the hold.

	log.Info("escrow initiate finished", "gateway_reference", res.Reference, "status", esc.Status)
	return EscrowAuthorization{
		EscrowPaymentID:  esc.ID,
		GatewayReference: res.Reference,
		ClientHandle:     res.ClientHandle,
		Status:           esc.Status,
	}, nil
}

// ReleasePayment captures previously held funds and finalizes the escrow.
//
// The held->capturing compare-and-set is the single-winner gate: of any number
// of concurrent callers exactly one dispatches the capture, so the processor
// is never asked to capture the same reference twice.
func (u *EscrowPaymentUseCase) ReleasePayment(ctx context.Context, escrowID, userID string) (EscrowRelease, error) {
	log := pkg.LoggerFromContext(ctx, u.logger).With("escrow_payment_id", escrowID, "user_id", userID)
	log.Info("escrow release started")

	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return EscrowRelease{}, ErrInvalidEscrowID
	}
	if u.gateway == nil {
		return EscrowRelease{}, pkg.NewDomainError(pkg.KindInternal, "payment gateway not configured")
	}

	esc, err := u.escrows.GetByID(ctx, escrowID)
	if err != nil {
		return EscrowRelease{}, err
	}
	if esc.ID == "" {
		return EscrowRelease{}, ErrEscrowNotFound
	}

	b, err := u.bookings.GetByID(ctx, esc.BookingID)
	if err != nil {
		return EscrowRelease{}, err
	}
	if b.ID == "" {
		return EscrowRelease{}, ErrBookingNotFound
	}

	if err := authz.CanRelease(userID, b); err != nil {
		log.Warn("escrow release rejected", "reason", err.Error())
		return EscrowRelease{}, err
	}

	if b.Status != entities.BookingStatusCompleted {
		return EscrowRelease{}, ErrBookingNotCompleted
	}
	if esc.Status != entities.EscrowStatusHeld {
		// Covers "already released" and "never authorized" with one rule.
		return EscrowRelease{}, ErrNotEligibleForRelease
	}

	esc, err = u.ledger.MarkCapturing(ctx, esc)
	if err != nil {
		return EscrowRelease{}, err
	}

	capRes, err := u.gateway.Capture(ctx, esc.ExternalReference)
	if err != nil {
		if pkg.KindOf(err) == pkg.KindIndeterminate {
			// The capture may have succeeded processor-side. Leave the
			// capturing marker for reconciliation; retrying here could
			// double-charge.
			log.Error("capture outcome unknown; record flagged for reconciliation",
				"gateway_reference", esc.ExternalReference, "error", err)
			u.publishEvent(ctx, newEscrowEvent(EventEscrowCaptureIndeterminate, esc, false))
			return EscrowRelease{}, err
		}
		log.Warn("capture rejected; reverting to held", "error", err)
		if _, revErr := u.ledger.RevertCapturing(ctx, esc); revErr != nil {
			log.Error("capturing revert failed", "error", revErr)
		}
		return EscrowRelease{}, err
	}

	if _, err := u.ledger.MarkReleased(ctx, esc); err != nil {
		// Funds were captured; the record must not stay in capturing.
		log.Error("release transition failed after successful capture; manual reconciliation required",
			"gateway_reference", capRes.Reference, "error", err)
		return EscrowRelease{}, err
	}

	log.Info("escrow release finished", "gateway_reference", capRes.Reference)
	return EscrowRelease{
		GatewayReference: capRes.Reference,
		Message:          "Payment released successfully",
	}, nil
}

// ReconcileGatewayPayment re-reads a payment from the processor and converges
// the escrow record onto its status. It is driven by processor webhooks and
// doubles as the recovery path for records stuck in pending or capturing.
func (u *EscrowPaymentUseCase) ReconcileGatewayPayment(ctx context.Context, gatewayReference string) error {
	log := pkg.LoggerFromContext(ctx, u.logger).With("gateway_reference", gatewayReference)

	gatewayReference = strings.TrimSpace(gatewayReference)
	if gatewayReference == "" {
		return pkg.NewDomainError(pkg.KindValidation, "invalid gateway reference")
	}
	if u.gateway == nil {
		return pkg.NewDomainError(pkg.KindInternal, "payment gateway not configured")
	}

	info, err := u.gateway.GetPayment(ctx, gatewayReference)
	if err != nil {
		return err
	}
	if info.ExternalReference == "" {
		log.Info("gateway payment carries no escrow reference; ignoring")
		return nil
	}

	esc, err := u.escrows.GetByID(ctx, info.ExternalReference)
	if err != nil {
		return err
	}
	if esc.ID == "" {
		return ErrEscrowNotFound
	}
	log = log.With("escrow_payment_id", esc.ID, "escrow_status", esc.Status, "gateway_status", info.Status)

	if esc.ExternalReference == "" {
		if esc, err = u.ledger.AttachReference(ctx, esc.ID, gatewayReference); err != nil {
			return err
		}
	}

	switch info.Status {
	case interfaces.GatewayStatusAuthorized:
		if esc.Status != entities.EscrowStatusPending {
			return nil
		}
		_, err = u.ledger.MarkHeld(ctx, esc)
	case interfaces.GatewayStatusApproved:
		// Recovers a capture whose response was lost while the record sat in
		// capturing, and records captures reported ahead of our own write.
		if esc.Status != entities.EscrowStatusCapturing && esc.Status != entities.EscrowStatusHeld {
			return nil
		}
		_, err = u.ledger.MarkReleased(ctx, esc)
	case interfaces.GatewayStatusRefunded:
		if esc.Status != entities.EscrowStatusHeld {
			return nil
		}
		_, err = u.ledger.MarkRefunded(ctx, esc)
	case interfaces.GatewayStatusRejected, interfaces.GatewayStatusCancelled:
		switch esc.Status {
		case entities.EscrowStatusPending:
			_, err = u.ledger.MarkFailed(ctx, esc)
		case entities.EscrowStatusHeld:
			// A cancelled authorization returns held funds to the payer.
			_, err = u.ledger.MarkRefunded(ctx, esc)
		default:
			return nil
		}
	default:
		log.Info("gateway status requires no transition")
		return nil
	}
	if err != nil {
		log.Error("reconciliation transition failed", "error", err)
		return err
	}
	log.Info("escrow reconciled from gateway status")
	return nil
}

// GetByID returns an escrow payment to one of its booking's participants.
func (u *EscrowPaymentUseCase) GetByID(ctx context.Context, escrowID, userID string) (entities.EscrowPayment, error) {
	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return entities.EscrowPayment{}, ErrInvalidEscrowID
	}

	esc, err := u.escrows.GetByID(ctx, escrowID)
	if err != nil {
		return entities.EscrowPayment{}, err
	}
	if esc.ID == "" {
		return entities.EscrowPayment{}, ErrEscrowNotFound
	}
	if userID != esc.PayerID && userID != esc.PayeeID {
		return entities.EscrowPayment{}, authz.ErrNotParticipant
	}
	return esc, nil
}

func (u *EscrowPaymentUseCase) publishEvent(ctx context.Context, ev EscrowEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, ev.Data.BookingID, ev); err != nil {
		pkg.LoggerFromContext(ctx, u.logger).Warn("escrow event publish failed", "event", ev.Event, "error", err)
	}
}
