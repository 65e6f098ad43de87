// Package authz holds the pure role predicates for escrow lifecycle actions.
package authz

import (
	"supplylink/internal/domain/entities"
	"supplylink/pkg"
)

var (
	ErrNotRequester   = pkg.NewDomainError(pkg.KindAuthorization, "only the booking requester can initiate payment")
	ErrNotParticipant = pkg.NewDomainError(pkg.KindAuthorization, "only booking participants can manage escrow")
	ErrNotProvider    = pkg.NewDomainError(pkg.KindAuthorization, "only the booking provider can advance the booking")
)

// CanInitiate allows only the paying party to open an escrow payment.
func CanInitiate(userID string, b entities.Booking) error {
	if userID == "" || userID != b.RequesterID {
		return ErrNotRequester
	}
	return nil
}

// CanRelease allows either party to trigger release; mutual consent is already
// implied by the booking having reached completed.
func CanRelease(userID string, b entities.Booking) error {
	if !IsParticipant(userID, b) {
		return ErrNotParticipant
	}
	return nil
}

// CanAdvance allows only the provider to confirm or complete a booking.
func CanAdvance(userID string, b entities.Booking) error {
	if userID == "" || userID != b.ProviderID {
		return ErrNotProvider
	}
	return nil
}

func IsParticipant(userID string, b entities.Booking) bool {
	return userID != "" && (userID == b.RequesterID || userID == b.ProviderID)
}
