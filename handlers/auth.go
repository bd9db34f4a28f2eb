package handlers

import (
	"context"
	"net/http"
	"time"

	"staynest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionVerifier resolves a bearer token to its user and expiry.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (userID string, expiresAt time.Time, err error)
}

// TokenRevoker adds a token to the revocation list until it expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
}

// AuthHandler serves session endpoints that only need the bearer token.
type AuthHandler struct {
	Verifier SessionVerifier
	Revoker  TokenRevoker
}

func NewAuthHandler(verifier SessionVerifier, revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{Verifier: verifier, Revoker: revoker}
}

// SignOutHandler revokes the caller's bearer token so later chat requests
// carrying it are treated as anonymous. Only a currently valid token can be
// revoked.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
		return
	}

	userID, expiresAt, err := h.Verifier.VerifySession(c.Request.Context(), token)
	if err != nil {
		utils.RequestLogger(c).Info("sign-out with an invalid token", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
		return
	}

	if err := h.Revoker.Revoke(c.Request.Context(), token, expiresAt); err != nil {
		utils.RequestLogger(c).Error("failed to revoke token", zap.String("user_id", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not sign out", "please try again")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
