package accounts

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tradehub/internal/auctionerrors"
	model "tradehub/internal/models"
	"tradehub/internal/repository"
	"tradehub/internal/token"
)

// captureMailer records sends, optionally failing them
type captureMailer struct {
	sent []string
	fail error
}

func (m *captureMailer) Send(to, subject, body string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestService(t *testing.T, repo repository.AuctionDB, mailer *captureMailer) *AccountService {
	t.Helper()
	tokens := token.NewService("test-token-secret")
	sessions := NewSessionManager("test-session-secret", time.Hour)
	return NewAccountService(repo, tokens, mailer, sessions, "http://localhost:8080", time.Hour)
}

// Tests Register
func TestAccountService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mailer := &captureMailer{}
	service := newTestService(t, mockRepo, mailer)

	t.Run("valid_registration", func(t *testing.T) {
		var stored model.User
		mockRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u model.User) error {
			stored = u
			return nil
		})

		user, err := service.Register("A@X.com", "pw1")
		require.NoError(t, err)

		// stored hash must never equal the plaintext
		require.NotEqual(t, "pw1", stored.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))

		require.Equal(t, "a@x.com", user.Email) // normalized
		require.False(t, user.IsVerified)
		require.Equal(t, model.AccountStandard, user.AccountType)
		require.Zero(t, user.BiddingPoints)
		require.NotEmpty(t, user.ID)

		require.Equal(t, []string{"a@x.com"}, mailer.sent)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		mockRepo.EXPECT().CreateUser(gomock.Any()).Return(auctionerrors.ErrDuplicateEmail)

		_, err := service.Register("a@x.com", "pw1")
		require.True(t, errors.Is(err, auctionerrors.ErrDuplicateEmail))
	})

	t.Run("malformed_email", func(t *testing.T) {
		_, err := service.Register("not-an-email", "pw1")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})

	t.Run("empty_password", func(t *testing.T) {
		_, err := service.Register("b@x.com", "")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})

	t.Run("mail_failure_does_not_roll_back", func(t *testing.T) {
		mockRepo.EXPECT().CreateUser(gomock.Any()).Return(nil)

		failing := &captureMailer{fail: errors.New("smtp down")}
		svc := newTestService(t, mockRepo, failing)

		user, err := svc.Register("c@x.com", "pw1")
		require.NoError(t, err)
		require.Equal(t, "c@x.com", user.Email)
	})
}

// Tests Authenticate
func TestAccountService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(t, mockRepo, &captureMailer{})

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	verified := model.User{ID: "user1", Email: "a@x.com", PasswordHash: string(hash), IsVerified: true}
	unverified := model.User{ID: "user2", Email: "b@x.com", PasswordHash: string(hash), IsVerified: false}

	t.Run("unknown_email", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("ghost@x.com").Return(model.User{}, auctionerrors.ErrUserNotFound)

		_, _, err := service.Authenticate("ghost@x.com", "pw1")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials))
	})

	t.Run("wrong_password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("a@x.com").Return(verified, nil)

		_, _, err := service.Authenticate("a@x.com", "wrong")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials))
	})

	t.Run("unverified_account", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("b@x.com").Return(unverified, nil)

		_, _, err := service.Authenticate("b@x.com", "pw1")
		require.True(t, errors.Is(err, auctionerrors.ErrNotVerified))
	})

	t.Run("success_returns_session", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("a@x.com").Return(verified, nil)

		user, session, err := service.Authenticate("a@x.com", "pw1")
		require.NoError(t, err)
		require.Equal(t, "user1", user.ID)

		// session token round-trips to the authenticated user
		parsed, err := service.sessions.Parse(session)
		require.NoError(t, err)
		require.Equal(t, "user1", parsed)
	})
}

// Tests VerifyEmail
func TestAccountService_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(t, mockRepo, &captureMailer{})

	t.Run("valid_token", func(t *testing.T) {
		tok, err := service.tokens.Issue("a@x.com", token.PurposeEmailConfirm)
		require.NoError(t, err)

		mockRepo.EXPECT().SetUserVerified("a@x.com").Return(nil)

		email, err := service.VerifyEmail(tok)
		require.NoError(t, err)
		require.Equal(t, "a@x.com", email)
	})

	t.Run("tampered_token", func(t *testing.T) {
		_, err := service.VerifyEmail("bogus.token.value")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidToken))
	})

	t.Run("unknown_account", func(t *testing.T) {
		tok, err := service.tokens.Issue("ghost@x.com", token.PurposeEmailConfirm)
		require.NoError(t, err)

		mockRepo.EXPECT().SetUserVerified("ghost@x.com").Return(auctionerrors.ErrUserNotFound)

		_, err = service.VerifyEmail(tok)
		require.True(t, errors.Is(err, auctionerrors.ErrUserNotFound))
	})
}

// Tests the session manager in isolation
func TestSessionManager(t *testing.T) {
	t.Parallel()

	sessions := NewSessionManager("secret", time.Hour)

	tok, err := sessions.Issue("user1")
	require.NoError(t, err)

	userID, err := sessions.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "user1", userID)

	t.Run("wrong_secret_rejected", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour)
		_, err := other.Parse(tok)
		require.Error(t, err)
	})

	t.Run("expired_session_rejected", func(t *testing.T) {
		expired := NewSessionManager("secret", -time.Minute)
		tok, err := expired.Issue("user1")
		require.NoError(t, err)

		_, err = sessions.Parse(tok)
		require.Error(t, err)
	})
}
