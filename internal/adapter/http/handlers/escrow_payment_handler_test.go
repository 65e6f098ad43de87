package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"supplylink/internal/adapter/http/handlers/mocks"
	"supplylink/internal/adapter/http/middleware"
	"supplylink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authAs(userID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextUserEmailKey, email)
		c.Next()
	}
}

func TestEscrowPaymentHandler_Initiate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/initiate", authAs("u-req", "req@example.com"), h.Initiate)

		req := httptest.NewRequest(http.MethodPost, "/escrow/initiate", bytes.NewBufferString(`{"amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("state conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/initiate", authAs("u-req", "req@example.com"), h.Initiate)

		uc.EXPECT().InitiateAuthorization(gomock.Any(), "b-1", 150.0, "u-req", "req@example.com", gomock.Any()).
			Return(usecase.EscrowAuthorization{}, usecase.ErrEscrowAlreadyOpen)

		req := httptest.NewRequest(http.MethodPost, "/escrow/initiate", bytes.NewBufferString(`{"bookingId":"b-1","amount":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["error"] == "" {
			t.Fatal("expected an error message")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/initiate", authAs("u-req", "req@example.com"), h.Initiate)

		uc.EXPECT().InitiateAuthorization(gomock.Any(), "b-1", 150.0, "u-req", "req@example.com", usecase.CardDetails{Token: "tok", PaymentMethodID: "visa"}).
			Return(usecase.EscrowAuthorization{
				EscrowPaymentID:  "esc-1",
				GatewayReference: "777",
				ClientHandle:     "handle-1",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/escrow/initiate",
			bytes.NewBufferString(`{"bookingId":"b-1","amount":150,"cardToken":"tok","paymentMethodId":"visa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["escrowPaymentId"] != "esc-1" || body["gatewayReference"] != "777" || body["clientHandle"] != "handle-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEscrowPaymentHandler_Release(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/release", authAs("u-prov", "prov@example.com"), h.Release)

		uc.EXPECT().ReleasePayment(gomock.Any(), "esc-1", "u-prov").
			Return(usecase.EscrowRelease{GatewayReference: "777", Message: "Payment released successfully"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/escrow/release", bytes.NewBufferString(`{"escrowPaymentId":"esc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Success          bool   `json:"success"`
			Message          string `json:"message"`
			GatewayReference string `json:"gatewayReference"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.GatewayReference != "777" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("not eligible maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/release", authAs("u-req", "req@example.com"), h.Release)

		uc.EXPECT().ReleasePayment(gomock.Any(), "esc-1", "u-req").
			Return(usecase.EscrowRelease{}, usecase.ErrNotEligibleForRelease)

		req := httptest.NewRequest(http.MethodPost, "/escrow/release", bytes.NewBufferString(`{"escrowPaymentId":"esc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing escrow id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEscrowPaymentUseCase(ctrl)
		h := NewEscrowPaymentHandler(uc)

		r := gin.New()
		r.POST("/escrow/release", authAs("u-req", "req@example.com"), h.Release)

		req := httptest.NewRequest(http.MethodPost, "/escrow/release", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
