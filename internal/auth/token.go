package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "ruamngan-portal"

// Claims carried by the signed session cookie. The cookie only names
// the session and its role; the record itself lives in the store.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session cookies with HS256.
// Tokens carry no expiry: the session lives until logout, matching the
// portal's local-storage heritage.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec builds a codec from the configured cookie secret.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("auth: cookie secret is not configured")
	}
	return &TokenCodec{secret: []byte(secret)}, nil
}

// Sign issues a token naming the session.
func (c *TokenCodec) Sign(sessionID string, role Role) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", errors.New("auth: session id is required")
	}
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
			ID:       uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and returns the session id it
// names. A tampered or foreign token reads as ErrInvalidToken.
func (c *TokenCodec) Parse(token string) (sessionID string, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Issuer != issuer || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
