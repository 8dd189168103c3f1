package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
)

// SessionManager issues and resolves bearer tokens for logged-in users.
type SessionManager interface {
	Issue(ctx context.Context, principal account.Principal) string
	Resolve(ctx context.Context, token string) (account.Principal, bool)
	Revoke(ctx context.Context, token string)
}

// Session is a successful login: the bearer token plus the identity it
// resolves to.
type Session struct {
	Token     string
	Principal account.Principal
}

type AccountService struct {
	accountRepo account.Repository
	sessions    SessionManager
}

func NewAccountService(accountRepo account.Repository, sessions SessionManager) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
	}
}

// Register creates an account. Usernames and emails are unique,
// compared case-insensitively.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (account.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return account.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if email == "" {
		return account.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < 6 {
		return account.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	if _, exists, err := s.accountRepo.GetByUsername(ctx, username); err != nil {
		return account.User{}, fmt.Errorf("get user by username: %w", err)
	} else if exists {
		return account.User{}, fmt.Errorf("%w: username already taken", ErrInvalidInput)
	}
	if _, exists, err := s.accountRepo.GetByEmail(ctx, email); err != nil {
		return account.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return account.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.accountRepo.Create(ctx, account.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return account.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login checks the credentials and opens a session. Unknown usernames
// and wrong passwords both come back as ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, username, password string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, exists, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return Session{}, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	principal := account.Principal{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	return Session{
		Token:     s.sessions.Issue(ctx, principal),
		Principal: principal,
	}, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.Logout")
	defer span.End()

	s.sessions.Revoke(ctx, token)
}

// VerifyAccessToken resolves a bearer token to a principal.
func (s *AccountService) VerifyAccessToken(ctx context.Context, token string) (account.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.VerifyAccessToken")
	defer span.End()

	principal, ok := s.sessions.Resolve(ctx, token)
	if !ok {
		return account.Principal{}, fmt.Errorf("%w: invalid session", ErrUnauthorized)
	}
	return principal, nil
}

// ListUsers returns every account, for the admin panel.
func (s *AccountService) ListUsers(ctx context.Context) ([]account.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.ListUsers")
	defer span.End()

	users, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return notNil(users), nil
}

// ToggleAdmin flips another user's admin flag. Admins cannot demote
// themselves.
func (s *AccountService) ToggleAdmin(ctx context.Context, actor account.Principal, userID int64) (account.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.ToggleAdmin")
	defer span.End()

	if userID == actor.UserID {
		return account.User{}, fmt.Errorf("%w: cannot change own admin status", ErrInvalidInput)
	}

	user, exists, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return account.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return account.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	if err := s.accountRepo.SetAdmin(ctx, userID, !user.IsAdmin); err != nil {
		return account.User{}, fmt.Errorf("set admin: %w", err)
	}
	user.IsAdmin = !user.IsAdmin
	return user, nil
}

// DeleteUser removes another user's account. Admins cannot delete
// themselves.
func (s *AccountService) DeleteUser(ctx context.Context, actor account.Principal, userID int64) error {
	ctx, span := startUsecaseSpan(ctx, "AccountService.DeleteUser")
	defer span.End()

	if userID == actor.UserID {
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}

	_, exists, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	if err := s.accountRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account on first
// startup. An existing account with the configured username is left
// untouched.
func (s *AccountService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	ctx, span := startUsecaseSpan(ctx, "AccountService.EnsureDefaultAdmin")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	_, exists, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("get user by username: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.accountRepo.Create(ctx, account.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	return nil
}
