package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tradehub/internal/auctionerrors"
)

// PurposeEmailConfirm tags tokens issued for email verification
const PurposeEmailConfirm = "email-confirm"

// Service issues and validates stateless, signed tokens binding an email
// address to a purpose and an issue time. Validity is purely a function of
// signature and age; tokens cannot be revoked before expiry.
type Service struct {
	secret []byte
}

// NewService creates a token service signing with the given secret
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue returns a signed token binding email to purpose at the current time
func (s *Service) Issue(email, purpose string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": purpose,
		"iat":     time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign for %s: %w", email, err)
	}
	return signed, nil
}

// Validate checks signature, purpose and age, returning the bound email.
// A tampered or malformed token yields ErrInvalidToken; a token older than
// maxAge yields ErrExpiredToken.
func (s *Service) Validate(tokenStr, purpose string, maxAge time.Duration) (string, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("token: parse: %w", auctionerrors.ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("token: claims: %w", auctionerrors.ErrInvalidToken)
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return "", fmt.Errorf("token: purpose mismatch: %w", auctionerrors.ErrInvalidToken)
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", fmt.Errorf("token: missing subject: %w", auctionerrors.ErrInvalidToken)
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return "", fmt.Errorf("token: missing issue time: %w", auctionerrors.ErrInvalidToken)
	}
	if time.Now().After(issuedAt.Add(maxAge)) {
		return "", fmt.Errorf("token: issued %s ago: %w", time.Since(issuedAt.Time).Round(time.Second), auctionerrors.ErrExpiredToken)
	}

	return email, nil
}
