package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("token does not contain a valid 'sub' claim")
	ErrEmptySecret    = errors.New("jwt secret is not configured")
)

// GenerateToken creates a signed JWT token with the given subject (the user ID) and email.
// The token expires after the specified duration.
func GenerateToken(secret []byte, subject, email string, duration time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(secret []byte, tokenString string) (*jwt.Token, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Only HS256 is issued, so nothing else is accepted.
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return secret, nil
	})
}

// ExtractIDFromToken extracts the ID (subject) from a valid JWT token string.
func ExtractIDFromToken(secret []byte, tokenString string) (string, error) {
	sub, _, err := ExtractSession(secret, tokenString)
	return sub, err
}

// ExtractSession returns the subject and expiry of a valid token. The expiry
// is the zero time when the token carries no "exp" claim.
func ExtractSession(secret []byte, tokenString string) (string, time.Time, error) {
	token, err := ValidateToken(secret, tokenString)
	if err != nil {
		return "", time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", time.Time{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	return sub, expiresAt, nil
}
