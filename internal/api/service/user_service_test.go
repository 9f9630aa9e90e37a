package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/repository"
	"bbdap/backend/internal/auth"
)

func newUserService(t *testing.T) (UserService, *auth.Manager) {
	t.Helper()
	tokens := auth.NewManager("test_secret", 2*time.Hour)
	repo := repository.NewUserRepository(newTestDB(t))
	return NewUserService(repo, tokens), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newUserService(t)
	ctx := context.Background()

	err := svc.Register(ctx, &models.RegisterRequest{Username: "owner", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "owner", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Issued token failed verification: %v", err)
	}
	if claims.Username != "owner" {
		t.Errorf("Expected token subject username 'owner', got %q", claims.Username)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &models.RegisterRequest{Username: "owner", Password: "secret123"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	err := svc.Register(ctx, &models.RegisterRequest{Username: "owner", Password: "different456"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("Expected ErrDuplicateUsername, got %v", err)
	}

	// The stored credential must be untouched by the failed second attempt.
	if _, err := svc.Login(ctx, &models.LoginRequest{Username: "owner", Password: "secret123"}); err != nil {
		t.Errorf("Original password no longer accepted after duplicate register: %v", err)
	}
	if _, err := svc.Login(ctx, &models.LoginRequest{Username: "owner", Password: "different456"}); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Second attempt's password must not work, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &models.RegisterRequest{Username: "owner", Password: "secret123"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "owner", password: "wrong"},
		{name: "unknown user", username: "nobody", password: "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(ctx, &models.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, ErrBadCredentials) {
				t.Errorf("Expected ErrBadCredentials, got %v", err)
			}
			if token != "" {
				t.Error("Expected no token on failed login")
			}
		})
	}
}
