package middleware

import (
	"net/http"
	"strings"

	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey    = "user_id"
	ContextUserEmailKey = "user_email"
)

// RequireAuth resolves the bearer token to a user identity and stores it on
// the request context. Requests without a valid token never reach the
// handlers.
func RequireAuth(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.HTTPError{Error: "missing bearer token"})
			return
		}

		userID, email, err := verifier.Verify(token)
		if err != nil {
			appErr := pkg.FromError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserEmailKey, email)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID reads the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

// UserEmail reads the authenticated user email set by RequireAuth.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmailKey)
}
