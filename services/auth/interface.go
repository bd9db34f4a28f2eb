package auth

import "context"

// CredentialVerifier resolves a bearer token to the user it was issued for.
// Any failure means the caller is anonymous.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}

// RevocationChecker reports whether a token has been revoked (signed out).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}
