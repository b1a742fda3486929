package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/efeurhobobullish/SwiftBuy/config"
	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/utils"
)

var loadConfigOnce sync.Once

func newAuthService() *AuthService {
	loadConfigOnce.Do(config.LoadConfig)
	return NewAuthService(repositories.NewSessionRepository(nil, time.Hour))
}

func TestProviderLoginReturnsCannedUser(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, token, err := svc.LoginWithProvider(ctx, "google", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "John Doe" || user.Email != "john.doe@gmail.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("token round-trip: %v", err)
	}
	if claims.Email != "john.doe@gmail.com" || claims.SessionID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	current, ok := svc.CurrentUser(ctx, claims.SessionID)
	if !ok || current.Email != user.Email {
		t.Fatalf("session blob missing: ok=%v user=%+v", ok, current)
	}
}

func TestProviderLoginUnknownProvider(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.LoginWithProvider(context.Background(), "myspace", "")
	if !errors.Is(err, models.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestProviderLoginKeepsGuestSession(t *testing.T) {
	svc := newAuthService()

	_, token, err := svc.LoginWithProvider(context.Background(), "facebook", "guest-session")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SessionID != "guest-session" {
		t.Fatalf("expected the guest session to carry over, got %s", claims.SessionID)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	req := models.RegisterRequest{Email: "Ada@Example.com", Password: "hunter22", Name: "Ada"}

	if _, _, err := svc.Register(ctx, req, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(ctx, req, ""); !errors.Is(err, models.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Email comparison is case-insensitive.
	user, _, err := svc.Login(ctx, "ada@example.com", "hunter22", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "wrong", ""); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "hunter22", ""); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutDiscardsUserBlob(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, token, err := svc.LoginWithProvider(ctx, "google", "s-logout")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := utils.ValidateToken(token); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := svc.Logout(ctx, "s-logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := svc.CurrentUser(ctx, "s-logout"); ok {
		t.Fatal("expected no user after logout")
	}
}
