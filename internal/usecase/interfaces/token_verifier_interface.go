package interfaces

// ITokenVerifier resolves a bearer credential to a stable user identity.
// Invalid or expired tokens fail with a pkg.KindAuthentication error.

type ITokenVerifier interface {
	Verify(token string) (userID, email string, err error)
}
