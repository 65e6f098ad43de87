package payments

import (
	"context"
	"testing"

	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"authorized": interfaces.GatewayStatusAuthorized,
		"APPROVED":   interfaces.GatewayStatusApproved,
		"refunded":   interfaces.GatewayStatusRefunded,
		"cancelled":  interfaces.GatewayStatusCancelled,
		"rejected":   interfaces.GatewayStatusRejected,
		"pending":    interfaces.GatewayStatusPending,
		"in_process": interfaces.GatewayStatusPending,
		"who knows":  interfaces.GatewayStatusPending,
	}
	for in, want := range cases {
		if got := normalizeStatus(in); got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}
}

func TestClassify_TimeoutIsIndeterminate(t *testing.T) {
	g := &MercadoPagoGateway{}

	err := g.classify("capture", context.DeadlineExceeded)
	if pkg.KindOf(err) != pkg.KindIndeterminate {
		t.Fatalf("deadline exceeded must be indeterminate, got %v", err)
	}

	err = g.classify("capture", context.Canceled)
	if pkg.KindOf(err) != pkg.KindIndeterminate {
		t.Fatalf("cancellation must be indeterminate, got %v", err)
	}
}

func TestClassify_RejectionIsGatewayError(t *testing.T) {
	g := &MercadoPagoGateway{}

	err := g.classify("authorize", errUnexpected{})
	if pkg.KindOf(err) != pkg.KindGateway {
		t.Fatalf("processor rejection must be a gateway error, got %v", err)
	}
}

type errUnexpected struct{}

func (errUnexpected) Error() string { return "cc_rejected_bad_filled_security_code" }

func TestMockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{MockMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auth, err := g.Authorize(context.Background(), interfaces.AuthorizeInput{Amount: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.Status != interfaces.GatewayStatusAuthorized || auth.Reference == "" {
		t.Fatalf("unexpected mock authorization: %+v", auth)
	}

	capRes, err := g.Capture(context.Background(), auth.Reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capRes.Status != interfaces.GatewayStatusApproved {
		t.Fatalf("unexpected mock capture: %+v", capRes)
	}
}

func TestNewMercadoPagoGateway_RequiresAccessToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(Options{}); err != ErrMissingAccessToken {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
}
