package handlers

import (
	"net/http"

	"supplylink/internal/adapter/http/dto/request"
	"supplylink/internal/adapter/http/dto/response"
	"supplylink/internal/adapter/http/middleware"
	"supplylink/internal/usecase"
	"supplylink/pkg"

	"github.com/gin-gonic/gin"
)

// EscrowPaymentHandler handles HTTP requests for the escrow payment lifecycle.

type EscrowPaymentHandler struct {
	usecase usecase.IEscrowPaymentUseCase
}

func NewEscrowPaymentHandler(uc usecase.IEscrowPaymentUseCase) *EscrowPaymentHandler {
	return &EscrowPaymentHandler{usecase: uc}
}

// Initiate opens an escrow payment for a booking and places the amount on
// hold with the processor.
func (h *EscrowPaymentHandler) Initiate(c *gin.Context) {
	var req request.EscrowInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Error: "invalid request body"})
		return
	}

	auth, err := h.usecase.InitiateAuthorization(
		c.Request.Context(),
		req.BookingID,
		req.Amount,
		middleware.UserID(c),
		middleware.UserEmail(c),
		usecase.CardDetails{Token: req.CardToken, PaymentMethodID: req.PaymentMethodID},
	)
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrowAuthorization(auth))
}

// Release captures the held funds of an escrow payment.
func (h *EscrowPaymentHandler) Release(c *gin.Context) {
	var req request.EscrowReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Error: "invalid request body"})
		return
	}

	rel, err := h.usecase.ReleasePayment(c.Request.Context(), req.EscrowPaymentID, middleware.UserID(c))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrowRelease(rel))
}

// GetByID returns one escrow payment to a participant of its booking.
func (h *EscrowPaymentHandler) GetByID(c *gin.Context) {
	esc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrowPayment(esc))
}
