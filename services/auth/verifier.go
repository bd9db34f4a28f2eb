package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staynest/utils"

	"go.uber.org/zap"
)

var (
	ErrEmptyToken   = errors.New("empty token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// JWTVerifier validates HS256 tokens and consults an optional revocation list.
type JWTVerifier struct {
	Secret      []byte
	Revocations RevocationChecker
	Logger      *zap.Logger
}

func NewJWTVerifier(secret string, revocations RevocationChecker, logger *zap.Logger) *JWTVerifier {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &JWTVerifier{Secret: []byte(secret), Revocations: revocations, Logger: logger}
}

// Verify returns the token subject. It never panics; a revocation store that
// cannot be reached is logged and the token is accepted.
func (v *JWTVerifier) Verify(ctx context.Context, token string) (string, error) {
	userID, _, err := v.VerifySession(ctx, token)
	return userID, err
}

// VerifySession is Verify plus the token's expiry, which is the zero time
// when the token has no "exp" claim.
func (v *JWTVerifier) VerifySession(ctx context.Context, token string) (userID string, expiresAt time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			userID, expiresAt, err = "", time.Time{}, fmt.Errorf("token verification panicked: %v", r)
		}
	}()

	token = strings.TrimSpace(token)
	if token == "" {
		return "", time.Time{}, ErrEmptyToken
	}

	userID, expiresAt, err = utils.ExtractSession(v.Secret, token)
	if err != nil {
		return "", time.Time{}, err
	}

	if v.Revocations != nil {
		revoked, rerr := v.Revocations.IsRevoked(ctx, token)
		if rerr != nil {
			v.Logger.Warn("revocation lookup failed, accepting token", zap.String("user_id", userID), zap.Error(rerr))
		} else if revoked {
			return "", time.Time{}, ErrTokenRevoked
		}
	}
	return userID, expiresAt, nil
}
