package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tradehub/internal/auctionerrors"
)

func TestService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")

	tok, err := svc.Issue("a@x.com", PurposeEmailConfirm)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := svc.Validate(tok, PurposeEmailConfirm, time.Hour)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", email)
}

func TestService_Expiry(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")

	tok, err := svc.Issue("a@x.com", PurposeEmailConfirm)
	require.NoError(t, err)

	// a zero max age puts any token past its deadline
	_, err = svc.Validate(tok, PurposeEmailConfirm, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrExpiredToken))
}

func TestService_Tampering(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")

	tok, err := svc.Issue("a@x.com", PurposeEmailConfirm)
	require.NoError(t, err)

	// Flip a single bit at every position; the signature must catch all of
	// them. The final character is skipped: its low base64 bits are unused
	// padding, so a flip there can decode to the same signature bytes.
	for i := 0; i < len(tok)-1; i++ {
		flipped := []byte(tok)
		flipped[i] ^= 0x01

		_, err := svc.Validate(string(flipped), PurposeEmailConfirm, time.Hour)
		require.Error(t, err, "bit flip at position %d accepted", i)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidToken), "bit flip at %d: got %v", i, err)
	}
}

func TestService_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewService("secret-one").Issue("a@x.com", PurposeEmailConfirm)
	require.NoError(t, err)

	_, err = NewService("secret-two").Validate(tok, PurposeEmailConfirm, time.Hour)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidToken))
}

func TestService_PurposeMismatch(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")

	tok, err := svc.Issue("a@x.com", "password-reset")
	require.NoError(t, err)

	_, err = svc.Validate(tok, PurposeEmailConfirm, time.Hour)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidToken))
}

func TestService_Garbage(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(tok, PurposeEmailConfirm, time.Hour)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidToken))
	}
}
