package usecase

import (
	"context"
	"errors"
	"testing"

	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase/interfaces"
	mock_interfaces "supplylink/internal/usecase/interfaces/mocks"
	"supplylink/pkg"

	"go.uber.org/mock/gomock"
)

func TestEscrowLedger_Open_RollsBackClaimOnCreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	escrows := mock_interfaces.NewMockIEscrowPaymentRepository(ctrl)
	ledger := NewEscrowLedger(escrows, bookings, nil, nil)

	b := completedBooking()
	bookings.EXPECT().ClaimEscrow(gomock.Any(), "b-1", gomock.Any()).Return(b, nil)
	escrows.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.EscrowPayment{}, errors.New("db down"))
	// The failed record write must not leave the slot permanently claimed.
	bookings.EXPECT().ReleaseEscrowClaim(gomock.Any(), "b-1", gomock.Any()).Return(b, nil)

	if _, err := ledger.Open(context.Background(), b); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEscrowLedger_Transition_PublishesEventAndProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	escrows := mock_interfaces.NewMockIEscrowPaymentRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	ledger := NewEscrowLedger(escrows, bookings, publisher, nil)

	esc := heldEscrow()
	esc.Status = entities.EscrowStatusPending
	held := esc
	held.Status = entities.EscrowStatusHeld

	escrows.EXPECT().UpdateStatus(gomock.Any(), "esc-1", entities.EscrowStatusPending, entities.EscrowStatusHeld).Return(held, nil)
	bookings.EXPECT().SetPaymentStatus(gomock.Any(), "b-1", entities.PaymentStatusHeldInEscrow).Return(entities.Booking{}, nil)
	publisher.EXPECT().Publish(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, event any) error {
			ev, ok := event.(EscrowEvent)
			if !ok {
				t.Fatalf("unexpected event type %T", event)
			}
			if ev.Event != EventEscrowHeld || !ev.Data.PaymentStatusSync {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		})

	if _, err := ledger.MarkHeld(context.Background(), esc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEscrowLedger_Transition_ProjectionFailureStands(t *testing.T) {
	// The escrow write is the source of truth; a failed booking projection is
	// reported, not rolled back.
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	escrows := mock_interfaces.NewMockIEscrowPaymentRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	ledger := NewEscrowLedger(escrows, bookings, publisher, nil)

	esc := heldEscrow()
	released := esc
	released.Status = entities.EscrowStatusReleased

	escrows.EXPECT().UpdateStatus(gomock.Any(), "esc-1", entities.EscrowStatusHeld, entities.EscrowStatusReleased).Return(released, nil)
	bookings.EXPECT().SetPaymentStatus(gomock.Any(), "b-1", entities.PaymentStatusReleased).Return(entities.Booking{}, errors.New("write throttled"))

	gotProjectionFailed := false
	publisher.EXPECT().Publish(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, event any) error {
			if ev, ok := event.(EscrowEvent); ok && ev.Event == EventEscrowProjectionFailed {
				gotProjectionFailed = true
			}
			return nil
		}).Times(2)

	updated, err := ledger.MarkReleased(context.Background(), esc)
	if err != nil {
		t.Fatalf("the escrow transition must stand: %v", err)
	}
	if updated.Status != entities.EscrowStatusReleased {
		t.Fatalf("expected released, got %s", updated.Status)
	}
	if !gotProjectionFailed {
		t.Fatal("expected an escrow.projection_failed event")
	}
}

func TestEscrowLedger_TransitionConflictIsStateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	escrows := mock_interfaces.NewMockIEscrowPaymentRepository(ctrl)
	ledger := NewEscrowLedger(escrows, bookings, nil, nil)

	esc := heldEscrow()
	esc.Status = entities.EscrowStatusPending
	escrows.EXPECT().UpdateStatus(gomock.Any(), "esc-1", entities.EscrowStatusPending, entities.EscrowStatusHeld).
		Return(entities.EscrowPayment{}, interfaces.ErrStateCheckConflict)

	_, err := ledger.MarkHeld(context.Background(), esc)
	if pkg.KindOf(err) != pkg.KindStateConflict {
		t.Fatalf("expected a state conflict, got %v", err)
	}
}

func TestEscrowLedger_IllegalTransitionRejectedLocally(t *testing.T) {
	ledger := NewEscrowLedger(nil, nil, nil, nil)

	esc := heldEscrow()
	esc.Status = entities.EscrowStatusFailed

	// No repository expectation: the edge check fails before any write.
	_, err := ledger.MarkReleased(context.Background(), esc)
	if pkg.KindOf(err) != pkg.KindStateConflict {
		t.Fatalf("expected a state conflict, got %v", err)
	}
}
