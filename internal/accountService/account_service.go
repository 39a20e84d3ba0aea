package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tradehub/internal/auctionerrors"
	"tradehub/internal/mail"
	"tradehub/internal/models"
	"tradehub/internal/repository"
	"tradehub/internal/token"
	"tradehub/utils"
)

// AccountService defines registration, authentication and email
// verification for platform users
type AccountService struct {
	repo        repository.AuctionDB
	tokens      *token.Service
	mailer      mail.Mailer
	baseURL     string
	tokenMaxAge time.Duration

	sessions *SessionManager
}

// NewAccountService creates a new AccountService instance
func NewAccountService(repo repository.AuctionDB, tokens *token.Service, mailer mail.Mailer,
	sessions *SessionManager, baseURL string, tokenMaxAge time.Duration) *AccountService {
	return &AccountService{
		repo:        repo,
		tokens:      tokens,
		mailer:      mailer,
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokenMaxAge: tokenMaxAge,
		sessions:    sessions,
	}
}

// Register creates an unverified account and sends a verification mail.
// A failed send does not roll back the created user; the account can still
// be verified later through a fresh token.
func (s *AccountService) Register(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, fmt.Errorf("service: %w - malformed email", auctionerrors.ErrInvalidInput)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("service: %w - empty password", auctionerrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: hash password for %s: %w", email, err)
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hash),
		IsVerified:   false,
		AccountType:  models.AccountStandard,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	s.sendVerificationMail(email)

	return user, nil
}

// sendVerificationMail issues a token and mails the verification link.
// Send failures are logged and swallowed.
func (s *AccountService) sendVerificationMail(email string) {
	tok, err := s.tokens.Issue(email, token.PurposeEmailConfirm)
	if err != nil {
		utils.Error("failed to issue verification token", map[string]any{"email": email, "error": err.Error()})
		return
	}

	link := fmt.Sprintf("%s/verify_email/%s", s.baseURL, tok)
	body := fmt.Sprintf("Click here to verify your account: %s", link)
	if err := s.mailer.Send(email, "Verify your email", body); err != nil {
		utils.Warn("verification mail not delivered", map[string]any{"email": email, "error": err.Error()})
	}
}

// Authenticate checks credentials and verification state, returning the
// user and a signed session token
func (s *AccountService) Authenticate(email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return models.User{}, "", fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
		}
		return models.User{}, "", fmt.Errorf("service: failed to look up %s: %w", email, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, "", fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if !user.IsVerified {
		return models.User{}, "", fmt.Errorf("service: %w", auctionerrors.ErrNotVerified)
	}

	session, err := s.sessions.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to start session for %s: %w", email, err)
	}
	return user, session, nil
}

// VerifyEmail validates a verification token and marks the bound account
// verified. Idempotent for already-verified accounts.
func (s *AccountService) VerifyEmail(tokenStr string) (string, error) {
	email, err := s.tokens.Validate(tokenStr, token.PurposeEmailConfirm, s.tokenMaxAge)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	if err := s.repo.SetUserVerified(email); err != nil {
		return "", fmt.Errorf("service: failed to verify %s: %w", email, err)
	}
	return email, nil
}

// GetUser returns the account with the given ID
func (s *AccountService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// AwardBiddingPoints credits points to an account
func (s *AccountService) AwardBiddingPoints(userID string, points int) error {
	if userID == "" || points <= 0 {
		return fmt.Errorf("service: %w - bad points award", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.AddBiddingPoints(userID, points); err != nil {
		return fmt.Errorf("service: failed to award points to %s: %w", userID, err)
	}
	return nil
}
