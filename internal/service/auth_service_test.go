package service

import (
	"context"
	"errors"
	"testing"

	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/models"
	"github.com/optp-storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-key"
	cfg.UserJWT.ExpireHours = 1
	cfg.Security.PasswordPolicy.MinLength = 6
	return NewAuthService(cfg, repository.NewUserRepository(newAuthTestDB(t)))
}

func TestSignUpValidation(t *testing.T) {
	s := newTestAuthService(t)

	if _, err := s.SignUp("not-an-email", "secret123", "Ayesha Khan"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := s.SignUp("ayesha@example.com", "123", "Ayesha Khan"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s := newTestAuthService(t)

	user, err := s.SignUp("Ayesha@Example.com", "secret123", "Ayesha Khan")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	// 邮箱统一小写落库
	if user.Email != "ayesha@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must be hashed")
	}

	if _, err := s.SignUp("ayesha@example.com", "secret123", "Ayesha Khan"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestSignInWithPassword(t *testing.T) {
	s := newTestAuthService(t)

	if _, err := s.SignUp("ayesha@example.com", "secret123", "Ayesha Khan"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := s.SignInWithPassword("ayesha@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := s.SignInWithPassword("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	session, err := s.SignInWithPassword("ayesha@example.com", "secret123")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected token in session")
	}
	if session.Email != "ayesha@example.com" {
		t.Fatalf("expected email in session, got %s", session.Email)
	}
	if session.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry in session")
	}
}

func TestGetSessionRoundTrip(t *testing.T) {
	s := newTestAuthService(t)

	if _, err := s.SignUp("ayesha@example.com", "secret123", "Ayesha Khan"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	signed, err := s.SignInWithPassword("ayesha@example.com", "secret123")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}

	session, err := s.GetSession(context.Background(), signed.Token)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if session.UserID != signed.UserID {
		t.Fatalf("expected user id %d, got %d", signed.UserID, session.UserID)
	}

	if _, err := s.GetSession(context.Background(), "garbage-token"); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestSignOutRevokesSession(t *testing.T) {
	s := newTestAuthService(t)

	if _, err := s.SignUp("ayesha@example.com", "secret123", "Ayesha Khan"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	signed, err := s.SignInWithPassword("ayesha@example.com", "secret123")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}

	if err := s.SignOut(signed.UserID); err != nil {
		t.Fatalf("signout failed: %v", err)
	}
	// 登出后 token 版本号已变，旧 Token 全部失效
	if _, err := s.GetSession(context.Background(), signed.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after signout, got %v", err)
	}

	if err := s.SignOut(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	s := newTestAuthService(t)

	user, err := s.SignUp("ayesha@example.com", "secret123", "Ayesha Khan")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	profile, err := s.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if profile.FullName != "Ayesha Khan" {
		t.Fatalf("expected full name, got %s", profile.FullName)
	}
	if profile.Email != "ayesha@example.com" {
		t.Fatalf("expected email, got %s", profile.Email)
	}

	if _, err := s.GetProfile(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
