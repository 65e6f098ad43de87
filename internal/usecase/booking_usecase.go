package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"supplylink/internal/domain/authz"
	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidProviderID  = pkg.NewDomainError(pkg.KindValidation, "invalid provider id")
	ErrInvalidDescription = pkg.NewDomainError(pkg.KindValidation, "service description is required")
	ErrInvalidBookingDate = pkg.NewDomainError(pkg.KindValidation, "booking date is required")
	ErrSelfBooking        = pkg.NewDomainError(pkg.KindValidation, "requester and provider must differ")
	ErrBookingTransition  = pkg.NewDomainError(pkg.KindStateConflict, "booking status transition not allowed")
	ErrBookingHasHeldFunds = pkg.NewDomainError(pkg.KindStateConflict, "booking cannot be cancelled while funds are held in escrow")
)

// CreateBookingInput carries the requester-supplied booking fields.
type CreateBookingInput struct {
	RequesterID        string
	ProviderID         string
	ServiceDescription string
	BookingDate        time.Time
	Amount             float64
}

// IBookingUseCase exposes booking management.
//
// Status is advanced only by the provider (pending->confirmed->completed) or
// to cancelled from a non-terminal state; payment_status is owned by the
// escrow orchestrator and never written here.

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, id, userID string) (entities.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]entities.Booking, error)
	Confirm(ctx context.Context, id, userID string) (entities.Booking, error)
	Complete(ctx context.Context, id, userID string) (entities.Booking, error)
	Cancel(ctx context.Context, id, userID string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo   interfaces.IBookingRepository
	logger *slog.Logger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, logger *slog.Logger) *BookingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingUseCase{repo: repo, logger: logger}
}

func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	in.RequesterID = strings.TrimSpace(in.RequesterID)
	in.ProviderID = strings.TrimSpace(in.ProviderID)
	in.ServiceDescription = strings.TrimSpace(in.ServiceDescription)

	if in.RequesterID == "" {
		return entities.Booking{}, pkg.NewDomainError(pkg.KindValidation, "invalid requester id")
	}
	if in.ProviderID == "" {
		return entities.Booking{}, ErrInvalidProviderID
	}
	if in.RequesterID == in.ProviderID {
		return entities.Booking{}, ErrSelfBooking
	}
	if in.ServiceDescription == "" {
		return entities.Booking{}, ErrInvalidDescription
	}
	if in.BookingDate.IsZero() {
		return entities.Booking{}, ErrInvalidBookingDate
	}
	if in.Amount <= 0 {
		return entities.Booking{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:                 uuid.NewString(),
		RequesterID:        in.RequesterID,
		ProviderID:         in.ProviderID,
		ServiceDescription: in.ServiceDescription,
		BookingDate:        in.BookingDate.UTC(),
		Amount:             in.Amount,
		Status:             entities.BookingStatusPending,
		PaymentStatus:      entities.PaymentStatusNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	pkg.LoggerFromContext(ctx, u.logger).Info("booking created",
		"booking_id", created.ID, "requester_id", created.RequesterID, "provider_id", created.ProviderID)
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id, userID string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !authz.IsParticipant(userID, b) {
		return entities.Booking{}, authz.ErrNotParticipant
	}
	return b, nil
}

func (u *BookingUseCase) ListForUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, pkg.NewDomainError(pkg.KindValidation, "invalid user id")
	}
	return u.repo.ListByParticipant(ctx, userID)
}

// Confirm advances pending->confirmed; provider only.
func (u *BookingUseCase) Confirm(ctx context.Context, id, userID string) (entities.Booking, error) {
	return u.advance(ctx, id, userID, entities.BookingStatusConfirmed)
}

// Complete advances confirmed->completed; provider only.
func (u *BookingUseCase) Complete(ctx context.Context, id, userID string) (entities.Booking, error) {
	return u.advance(ctx, id, userID, entities.BookingStatusCompleted)
}

func (u *BookingUseCase) advance(ctx context.Context, id, userID string, target entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if err := authz.CanAdvance(userID, b); err != nil {
		return entities.Booking{}, err
	}
	if !b.Status.CanTransitionTo(target) {
		return entities.Booking{}, ErrBookingTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, b.Status, target)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.Booking{}, ErrBookingTransition
		}
		return entities.Booking{}, err
	}
	pkg.LoggerFromContext(ctx, u.logger).Info("booking advanced", "booking_id", id, "status", target)
	return updated, nil
}

// Cancel moves a non-terminal booking to cancelled. Either participant may
// cancel, but not while an escrow payment holds funds; refunds flow through
// the processor and arrive via reconciliation.
func (u *BookingUseCase) Cancel(ctx context.Context, id, userID string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !authz.IsParticipant(userID, b) {
		return entities.Booking{}, authz.ErrNotParticipant
	}
	if !b.Status.CanTransitionTo(entities.BookingStatusCancelled) {
		return entities.Booking{}, ErrBookingTransition
	}
	if b.PaymentStatus == entities.PaymentStatusHeldInEscrow {
		return entities.Booking{}, ErrBookingHasHeldFunds
	}

	updated, err := u.repo.UpdateStatus(ctx, id, b.Status, entities.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, interfaces.ErrStateCheckConflict) {
			return entities.Booking{}, ErrBookingTransition
		}
		return entities.Booking{}, err
	}
	pkg.LoggerFromContext(ctx, u.logger).Info("booking cancelled", "booking_id", id, "by", userID)
	return updated, nil
}
