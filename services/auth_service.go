package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/utils"
)

// AuthService implements the mocked authentication flow: provider logins
// return canned identities, and email/password accounts live in memory.
// The logged-in user blob is persisted through the session repository.
type AuthService struct {
	sessions *repositories.SessionRepository

	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewAuthService(sessions *repositories.SessionRepository) *AuthService {
	return &AuthService{
		sessions: sessions,
		accounts: make(map[string]models.Account),
	}
}

// LoginWithProvider runs the mock OAuth flow. A real integration would
// redirect to the provider; here each provider maps to a fixed demo user.
func (s *AuthService) LoginWithProvider(ctx context.Context, provider, sessionID string) (models.User, string, error) {
	var user models.User
	switch provider {
	case "google":
		user = models.User{
			ID:     "1",
			Name:   "John Doe",
			Email:  "john.doe@gmail.com",
			Avatar: "https://via.placeholder.com/100",
		}
	case "facebook":
		user = models.User{
			ID:     "1",
			Name:   "Jane Smith",
			Email:  "jane.smith@facebook.com",
			Avatar: "https://via.placeholder.com/100",
		}
	default:
		return models.User{}, "", models.ErrUnknownProvider
	}
	user.Provider = provider
	user.CreatedAt = time.Now()

	return s.establishSession(ctx, user, sessionID)
}

// Register creates an email/password account and logs it in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest, sessionID string) (models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		return models.User{}, "", models.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.mu.Unlock()
		return models.User{}, "", err
	}

	account := models.Account{
		User: models.User{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Email:     email,
			Phone:     req.Phone,
			CreatedAt: time.Now(),
		},
		PasswordHash: hash,
	}
	s.accounts[email] = account
	s.mu.Unlock()

	return s.establishSession(ctx, account.User, sessionID)
}

// Login verifies an email/password pair against the registered accounts.
func (s *AuthService) Login(ctx context.Context, email, password, sessionID string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	account, ok := s.accounts[email]
	s.mu.RUnlock()

	if !ok || !utils.VerifyPassword(account.PasswordHash, password) {
		return models.User{}, "", models.ErrInvalidCredentials
	}

	return s.establishSession(ctx, account.User, sessionID)
}

// CurrentUser returns the logged-in user for the session, if any.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (models.User, bool) {
	return s.sessions.Get(ctx, sessionID)
}

// Logout discards the session's user blob. The session id itself stays
// valid so the guest cart survives.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) establishSession(ctx context.Context, user models.User, sessionID string) (models.User, string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if err := s.sessions.Save(ctx, sessionID, user); err != nil {
		return models.User{}, "", err
	}
	token, err := utils.GenerateToken(user.ID, user.Email, sessionID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
