package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mock_interfaces "supplylink/internal/usecase/interfaces/mocks"
	"supplylink/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(verifier *mock_interfaces.MockITokenVerifier) *gin.Engine {
		r := gin.New()
		r.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "user_email": UserEmail(c)})
		})
		return r
	}

	t.Run("valid token reaches the handler with identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify("good-token").Return("u-req", "req@example.com", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify("bad-token").Return("", "", pkg.NewDomainError(pkg.KindAuthentication, "invalid or expired token"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
