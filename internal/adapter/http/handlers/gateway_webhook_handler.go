package handlers

import (
	"net/http"
	"strings"

	"supplylink/internal/adapter/http/dto/request"
	"supplylink/internal/usecase"
	"supplylink/pkg"

	"github.com/gin-gonic/gin"
)

// GatewayWebhookHandler receives Mercado Pago payment notifications and
// converges escrow records onto the processor-side state. The payload is
// treated as a hint only: the current payment state is always re-read from
// the processor.

type GatewayWebhookHandler struct {
	usecase usecase.IEscrowPaymentUseCase
}

func NewGatewayWebhookHandler(uc usecase.IEscrowPaymentUseCase) *GatewayWebhookHandler {
	return &GatewayWebhookHandler{usecase: uc}
}

func (h *GatewayWebhookHandler) HandlePaymentNotification(c *gin.Context) {
	var req request.GatewayWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Error: "invalid notification payload"})
		return
	}

	if req.Type != "" && req.Type != "payment" && !strings.HasPrefix(req.Action, "payment.") {
		// Other notification kinds (plans, subscriptions) are acknowledged and
		// dropped so the processor stops redelivering them.
		c.Status(http.StatusOK)
		return
	}
	if req.Data.ID == "" {
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Error: "missing payment id"})
		return
	}

	if err := h.usecase.ReconcileGatewayPayment(c.Request.Context(), req.Data.ID); err != nil {
		// Non-200 makes the processor redeliver; reconciliation is idempotent
		// so the retry is safe.
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}
