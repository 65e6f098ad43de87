package interfaces

import "context"

// Normalized processor statuses returned by the gateway adapter. Concrete
// adapters map provider vocabulary onto these.
const (
	GatewayStatusPending    = "pending"
	GatewayStatusAuthorized = "authorized"
	GatewayStatusApproved   = "approved"
	GatewayStatusRejected   = "rejected"
	GatewayStatusCancelled  = "cancelled"
	GatewayStatusRefunded   = "refunded"
)

// AuthorizeInput describes a funds hold request. ExternalReference carries the
// escrow payment id so processor-side events can be correlated back.
type AuthorizeInput struct {
	Amount            float64
	PayerCustomerID   string
	PayerEmail        string
	Description       string
	ExternalReference string
	CardToken         string
	PaymentMethodID   string
	Metadata          map[string]any
}

// AuthorizeResult is the outcome of a successful hold. ClientHandle is the
// client-facing handle the payer uses to complete authentication of the hold.
type AuthorizeResult struct {
	Reference    string
	ClientHandle string
	Status       string
}

type CaptureResult struct {
	Reference string
	Status    string
}

// PaymentInfo is a processor-side view of a payment, used by webhook
// reconciliation.
type PaymentInfo struct {
	Reference         string
	Status            string
	ExternalReference string
}

// IPaymentGateway abstracts an external processor offering authorize-then-
// capture primitives (Mercado Pago in production).
//
// Authorize must place funds on hold without transferring them (manual
// capture). Capture must be idempotent when retried with the same reference.
// A call whose outcome is unknown (timeout, lost response) surfaces as a
// pkg.KindIndeterminate error, never as a plain failure.

type IPaymentGateway interface {
	FindOrCreateCustomer(ctx context.Context, email, name string) (string, error)
	Authorize(ctx context.Context, in AuthorizeInput) (AuthorizeResult, error)
	Capture(ctx context.Context, reference string) (CaptureResult, error)
	GetPayment(ctx context.Context, reference string) (PaymentInfo, error)
}
