package identity

import (
	"strings"

	"supplylink/internal/usecase/interfaces"
	"supplylink/pkg"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = pkg.NewDomainError(pkg.KindAuthentication, "missing bearer token")
	ErrInvalidToken = pkg.NewDomainError(pkg.KindAuthentication, "invalid or expired token")
)

// Claims is the token payload: the user id rides in the registered subject,
// the email in a private claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 bearer tokens issued by the identity service.
type JWTVerifier struct {
	secret []byte
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(token string) (string, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}
