package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supplylink/internal/adapter/http/handlers/mocks"
	"supplylink/internal/domain/authz"
	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/bookings", authAs("u-req", "req@example.com"), h.Create)

		date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateBookingInput{
			RequesterID:        "u-req",
			ProviderID:         "u-prov",
			ServiceDescription: "warehouse restock",
			BookingDate:        date,
			Amount:             150,
		}).Return(entities.Booking{ID: "b-1", RequesterID: "u-req", ProviderID: "u-prov", Status: entities.BookingStatusPending}, nil)

		payload := `{"providerId":"u-prov","serviceDescription":"warehouse restock","bookingDate":"2026-09-10T14:00:00Z","amount":150}`
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/bookings", authAs("u-req", "req@example.com"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(`{"providerId":"u-prov"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("provider completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/bookings/:id/complete", authAs("u-prov", "prov@example.com"), h.Complete)

		uc.EXPECT().Complete(gomock.Any(), "b-1", "u-prov").
			Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "completed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("wrong role maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/bookings/:id/confirm", authAs("u-req", "req@example.com"), h.Confirm)

		uc.EXPECT().Confirm(gomock.Any(), "b-1", "u-req").
			Return(entities.Booking{}, authz.ErrNotProvider)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("held funds block cancel with 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/bookings/:id/cancel", authAs("u-req", "req@example.com"), h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), "b-1", "u-req").
			Return(entities.Booking{}, usecase.ErrBookingHasHeldFunds)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBookingHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	r := gin.New()
	r.GET("/bookings", authAs("u-req", "req@example.com"), h.List)

	uc.EXPECT().ListForUser(gomock.Any(), "u-req").Return([]entities.Booking{
		{ID: "b-1", RequesterID: "u-req"},
		{ID: "b-2", ProviderID: "u-req"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(body))
	}
}
