package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sony/gobreaker/v2"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultCallTimeout = 15 * time.Second

// Options configures the Mercado Pago gateway adapter.
type Options struct {
	AccessToken string
	CallTimeout time.Duration
	MockMode    bool
	Logger      *slog.Logger
}

// MercadoPagoGateway implements the authorize-then-capture surface on top of
// Mercado Pago. Authorizations are created with capture:false so funds stay
// on hold until an explicit capture; the escrow payment id travels in
// external_reference for webhook correlation.
//
// Every call runs under a bounded timeout and behind a shared circuit
// breaker. A timeout or cancelled context is classified as indeterminate:
// the processor may have applied the call even though the response was lost.

type MercadoPagoGateway struct {
	payments  payment.Client
	customers customer.Client
	breaker   *gobreaker.CircuitBreaker[any]
	timeout   time.Duration
	mockMode  bool
	logger    *slog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "mercadopago",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	if opts.MockMode {
		logger.Warn("payment gateway running in mock mode; no processor calls will be made")
		return &MercadoPagoGateway{mockMode: true, breaker: breaker, timeout: timeout, logger: logger}, nil
	}

	if opts.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		payments:  payment.NewClient(cfg),
		customers: customer.NewClient(cfg),
		breaker:   breaker,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// FindOrCreateCustomer resolves a stable billing identity for the payer,
// reusing an existing Mercado Pago customer when one matches the email.
func (g *MercadoPagoGateway) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", pkg.NewDomainError(pkg.KindValidation, "payer email is required")
	}

	if g.mockMode {
		return "mock-customer-" + email, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	found, err := g.execute(func() (any, error) {
		return g.customers.Search(ctx, customer.SearchRequest{
			Filters: map[string]string{"email": email},
		})
	})
	if err != nil {
		return "", g.classify("customer search", err)
	}
	if res, ok := found.(*customer.SearchResponse); ok && res != nil && len(res.Results) > 0 {
		return res.Results[0].ID, nil
	}

	created, err := g.execute(func() (any, error) {
		return g.customers.Create(ctx, customer.Request{Email: email, FirstName: name})
	})
	if err != nil {
		return "", g.classify("customer create", err)
	}
	res, ok := created.(*customer.Response)
	if !ok || res == nil {
		return "", pkg.NewDomainError(pkg.KindGateway, "customer create returned no resource")
	}
	g.logger.Info("gateway customer created", "customer_id", res.ID)
	return res.ID, nil
}

// Authorize places funds on hold without transferring them (capture:false).
func (g *MercadoPagoGateway) Authorize(ctx context.Context, in interfaces.AuthorizeInput) (interfaces.AuthorizeResult, error) {
	if g.mockMode {
		ref := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		return interfaces.AuthorizeResult{
			Reference:    ref,
			ClientHandle: "mock-handle-" + uuid.NewString(),
			Status:       interfaces.GatewayStatusAuthorized,
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := payment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		ExternalReference: in.ExternalReference,
		Token:             in.CardToken,
		PaymentMethodID:   in.PaymentMethodID,
		Installments:      1,
		Capture:           false,
		Metadata:          in.Metadata,
		Payer: &payment.PayerRequest{
			Type:  "customer",
			ID:    in.PayerCustomerID,
			Email: in.PayerEmail,
		},
	}

	out, err := g.execute(func() (any, error) {
		return g.payments.Create(ctx, req)
	})
	if err != nil {
		return interfaces.AuthorizeResult{}, g.classify("authorize", err)
	}
	res, ok := out.(*payment.Response)
	if !ok || res == nil {
		return interfaces.AuthorizeResult{}, pkg.NewDomainError(pkg.KindGateway, "authorize returned no resource")
	}

	g.logger.Info("authorization created", "payment_id", res.ID, "status", res.Status)
	return interfaces.AuthorizeResult{
		Reference:    strconv.Itoa(res.ID),
		ClientHandle: clientHandleFrom(res),
		Status:       normalizeStatus(res.Status),
	}, nil
}

// Capture finalizes the transfer of previously authorized funds. Mercado Pago
// treats a capture of an already captured payment as a rejected request, so a
// retry with the same reference cannot double-charge.
func (g *MercadoPagoGateway) Capture(ctx context.Context, reference string) (interfaces.CaptureResult, error) {
	if g.mockMode {
		return interfaces.CaptureResult{Reference: reference, Status: interfaces.GatewayStatusApproved}, nil
	}

	id, err := strconv.Atoi(reference)
	if err != nil {
		return interfaces.CaptureResult{}, pkg.WrapDomainError(pkg.KindValidation, "invalid gateway reference", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.execute(func() (any, error) {
		return g.payments.Capture(ctx, id)
	})
	if err != nil {
		return interfaces.CaptureResult{}, g.classify("capture", err)
	}
	res, ok := out.(*payment.Response)
	if !ok || res == nil {
		return interfaces.CaptureResult{}, pkg.NewDomainError(pkg.KindGateway, "capture returned no resource")
	}

	g.logger.Info("payment captured", "payment_id", res.ID, "status", res.Status)
	return interfaces.CaptureResult{
		Reference: strconv.Itoa(res.ID),
		Status:    normalizeStatus(res.Status),
	}, nil
}

// GetPayment reads the processor-side view of a payment for reconciliation.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, reference string) (interfaces.PaymentInfo, error) {
	if g.mockMode {
		return interfaces.PaymentInfo{Reference: reference, Status: interfaces.GatewayStatusApproved}, nil
	}

	id, err := strconv.Atoi(reference)
	if err != nil {
		return interfaces.PaymentInfo{}, pkg.WrapDomainError(pkg.KindValidation, "invalid gateway reference", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.execute(func() (any, error) {
		return g.payments.Get(ctx, id)
	})
	if err != nil {
		return interfaces.PaymentInfo{}, g.classify("get payment", err)
	}
	res, ok := out.(*payment.Response)
	if !ok || res == nil {
		return interfaces.PaymentInfo{}, pkg.NewDomainError(pkg.KindGateway, "get payment returned no resource")
	}

	return interfaces.PaymentInfo{
		Reference:         strconv.Itoa(res.ID),
		Status:            normalizeStatus(res.Status),
		ExternalReference: res.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) execute(call func() (any, error)) (any, error) {
	return g.breaker.Execute(call)
}

// classify maps transport failures onto the error taxonomy. Timeouts and
// cancelled contexts are indeterminate: the call may have been applied
// processor-side even though no response arrived.
func (g *MercadoPagoGateway) classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return pkg.WrapDomainError(pkg.KindIndeterminate, fmt.Sprintf("%s outcome unknown", op), err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return pkg.WrapDomainError(pkg.KindIndeterminate, fmt.Sprintf("%s outcome unknown", op), err)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return pkg.WrapDomainError(pkg.KindGateway, "payment gateway temporarily unavailable", err)
	}
	return pkg.WrapDomainError(pkg.KindGateway, fmt.Sprintf("%s rejected by payment gateway", op), err)
}

// normalizeStatus maps Mercado Pago payment statuses onto the adapter's
// vocabulary. An authorized payment is a manual-capture hold; approved means
// captured.
func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "authorized":
		return interfaces.GatewayStatusAuthorized
	case "approved":
		return interfaces.GatewayStatusApproved
	case "refunded":
		return interfaces.GatewayStatusRefunded
	case "cancelled":
		return interfaces.GatewayStatusCancelled
	case "rejected":
		return interfaces.GatewayStatusRejected
	case "pending", "in_process":
		return interfaces.GatewayStatusPending
	default:
		return interfaces.GatewayStatusPending
	}
}

// clientHandleFrom picks the client-facing handle for completing the hold:
// the ticket URL when the payment method issues one, otherwise an opaque
// composite of the payment id.
func clientHandleFrom(res *payment.Response) string {
	if url := res.PointOfInteraction.TransactionData.TicketURL; url != "" {
		return url
	}
	return fmt.Sprintf("mp-payment-%d", res.ID)
}
