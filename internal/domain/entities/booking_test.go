package entities

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	}
	all := []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if BookingStatusPending.IsTerminal() || BookingStatusConfirmed.IsTerminal() {
		t.Error("pending and confirmed must not be terminal")
	}
	if !BookingStatusCompleted.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Error("completed and cancelled must be terminal")
	}
}
