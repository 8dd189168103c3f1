package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
)

func TestAccountService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	service := NewAccountService(newStubAccountRepository(), newStubSessionManager())
	ctx := context.Background()

	user, err := service.Register(ctx, "ted", "ted@example.com", "splendid")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == 0 || user.IsAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "splendid" {
		t.Fatal("password must be hashed")
	}

	session, err := service.Login(ctx, "ted", "splendid")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if session.Token == "" || session.Principal.Username != "ted" {
		t.Fatalf("unexpected session: %+v", session)
	}

	principal, err := service.VerifyAccessToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if principal.UserID != user.ID {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	service.Logout(ctx, session.Token)
	if _, err := service.VerifyAccessToken(ctx, session.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestAccountService_Register_Duplicates(t *testing.T) {
	t.Parallel()

	service := NewAccountService(newStubAccountRepository(), newStubSessionManager())
	ctx := context.Background()

	if _, err := service.Register(ctx, "ted", "ted@example.com", "splendid"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := service.Register(ctx, "ted", "other@example.com", "splendid"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate username, got %v", err)
	}
	if _, err := service.Register(ctx, "other", "ted@example.com", "splendid"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate email, got %v", err)
	}
	if _, err := service.Register(ctx, "short", "short@example.com", "abc"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestAccountService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	service := NewAccountService(newStubAccountRepository(), newStubSessionManager())
	ctx := context.Background()

	if _, err := service.Register(ctx, "ted", "ted@example.com", "splendid"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := service.Login(ctx, "ted", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody", "splendid"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestAccountService_AdminActionsNeverOnSelf(t *testing.T) {
	t.Parallel()

	repo := newStubAccountRepository()
	service := NewAccountService(repo, newStubSessionManager())
	ctx := context.Background()

	admin, err := service.Register(ctx, "admin", "admin@example.com", "rootroot")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	target, err := service.Register(ctx, "ted", "ted@example.com", "splendid")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	actor := account.Principal{UserID: admin.ID, Username: admin.Username, IsAdmin: true}

	if _, err := service.ToggleAdmin(ctx, actor, admin.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput toggling self, got %v", err)
	}
	if err := service.DeleteUser(ctx, actor, admin.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput deleting self, got %v", err)
	}

	updated, err := service.ToggleAdmin(ctx, actor, target.ID)
	if err != nil {
		t.Fatalf("ToggleAdmin error: %v", err)
	}
	if !updated.IsAdmin {
		t.Fatal("target should be promoted")
	}

	if err := service.DeleteUser(ctx, actor, target.ID); err != nil {
		t.Fatalf("DeleteUser error: %v", err)
	}
	if err := service.DeleteUser(ctx, actor, target.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted user, got %v", err)
	}
}

func TestAccountService_EnsureDefaultAdmin(t *testing.T) {
	t.Parallel()

	repo := newStubAccountRepository()
	service := NewAccountService(repo, newStubSessionManager())
	ctx := context.Background()

	if err := service.EnsureDefaultAdmin(ctx, "admin", "admin@example.com", "rootroot"); err != nil {
		t.Fatalf("EnsureDefaultAdmin error: %v", err)
	}

	user, exists, err := repo.GetByUsername(ctx, "admin")
	if err != nil || !exists {
		t.Fatalf("admin should exist: %v %v", exists, err)
	}
	if !user.IsAdmin {
		t.Fatal("bootstrap account should be admin")
	}

	// Second call is a no-op, not a duplicate.
	if err := service.EnsureDefaultAdmin(ctx, "admin", "admin@example.com", "rootroot"); err != nil {
		t.Fatalf("EnsureDefaultAdmin error: %v", err)
	}
	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one account, got %d", len(users))
	}

	// Blank credentials disable the bootstrap entirely.
	if err := service.EnsureDefaultAdmin(ctx, "", "", ""); err != nil {
		t.Fatalf("EnsureDefaultAdmin error: %v", err)
	}
}
