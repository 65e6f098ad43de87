package authz

import (
	"errors"
	"testing"

	"supplylink/internal/domain/entities"
)

func TestGuards(t *testing.T) {
	b := entities.Booking{ID: "b-1", RequesterID: "u-req", ProviderID: "u-prov"}

	t.Run("CanInitiate", func(t *testing.T) {
		if err := CanInitiate("u-req", b); err != nil {
			t.Fatalf("requester must be allowed: %v", err)
		}
		for _, id := range []string{"u-prov", "u-other", ""} {
			if err := CanInitiate(id, b); !errors.Is(err, ErrNotRequester) {
				t.Fatalf("id %q: expected ErrNotRequester, got %v", id, err)
			}
		}
	})

	t.Run("CanRelease", func(t *testing.T) {
		if err := CanRelease("u-req", b); err != nil {
			t.Fatalf("requester must be allowed: %v", err)
		}
		if err := CanRelease("u-prov", b); err != nil {
			t.Fatalf("provider must be allowed: %v", err)
		}
		for _, id := range []string{"u-other", ""} {
			if err := CanRelease(id, b); !errors.Is(err, ErrNotParticipant) {
				t.Fatalf("id %q: expected ErrNotParticipant, got %v", id, err)
			}
		}
	})

	t.Run("CanAdvance", func(t *testing.T) {
		if err := CanAdvance("u-prov", b); err != nil {
			t.Fatalf("provider must be allowed: %v", err)
		}
		for _, id := range []string{"u-req", "u-other", ""} {
			if err := CanAdvance(id, b); !errors.Is(err, ErrNotProvider) {
				t.Fatalf("id %q: expected ErrNotProvider, got %v", id, err)
			}
		}
	})
}
