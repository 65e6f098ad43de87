package handlers

import (
	"context"
	"net/http"

	"supplylink/internal/adapter/http/dto/request"
	"supplylink/internal/adapter/http/dto/response"
	"supplylink/internal/adapter/http/middleware"
	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase"
	"supplylink/pkg"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for bookings.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req request.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Error: "invalid request body"})
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), usecase.CreateBookingInput{
		RequesterID:        middleware.UserID(c),
		ProviderID:         req.ProviderID,
		ServiceDescription: req.ServiceDescription,
		BookingDate:        req.BookingDate,
		Amount:             req.Amount,
	})
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(b))
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	items, err := h.usecase.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(items))
}

// Confirm advances a pending booking to confirmed; provider only.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.advance(c, h.usecase.Confirm)
}

// Complete advances a confirmed booking to completed; provider only.
func (h *BookingHandler) Complete(c *gin.Context) {
	h.advance(c, h.usecase.Complete)
}

// Cancel moves a non-terminal booking to cancelled; either participant.
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.advance(c, h.usecase.Cancel)
}

func (h *BookingHandler) advance(c *gin.Context, op func(ctx context.Context, id, userID string) (entities.Booking, error)) {
	b, err := op(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}
