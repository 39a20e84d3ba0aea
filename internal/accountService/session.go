package accounts

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionManager issues and parses bearer session tokens carrying the
// authenticated user's ID. The identity travels explicitly with each
// request; there is no ambient current-user state.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager creates a SessionManager signing with the given secret
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed session token for the user
func (m *SessionManager) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(m.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign: %w", err)
	}
	return signed, nil
}

// Parse returns the user ID carried by a valid session token
func (m *SessionManager) Parse(tokenStr string) (string, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("session: parse: %w", jwt.ErrTokenInvalidClaims)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("session: claims: %w", jwt.ErrTokenInvalidClaims)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("session: missing user: %w", jwt.ErrTokenInvalidClaims)
	}
	return userID, nil
}
