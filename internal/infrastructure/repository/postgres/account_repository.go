package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type userTableModel struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m userTableModel) toDomain() account.User {
	return account.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
	}
}

var userColumns = []string{"id", "username", "email", "password_hash", "is_admin", "created_at"}

func (r *AccountRepository) Create(ctx context.Context, user account.User) (account.User, error) {
	query, args, err := qb.InsertInto("users").
		Columns("username", "email", "password_hash", "is_admin").
		Values(user.Username, user.Email, user.PasswordHash, user.IsAdmin).
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		return account.User{}, errors.Wrap(err, "build insert user query")
	}

	var inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &inserted, query, args...); err != nil {
		return account.User{}, errors.Wrap(err, "insert user")
	}

	user.ID = inserted.ID
	user.CreatedAt = inserted.CreatedAt
	return user, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, userID int64) (account.User, bool, error) {
	return r.getOne(ctx, qb.Eq("id", userID))
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (account.User, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(username) = ?", strings.ToLower(username)))
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.User, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(email) = ?", strings.ToLower(email)))
}

func (r *AccountRepository) getOne(ctx context.Context, condition qb.Condition) (account.User, bool, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(condition).
		ToSQL()
	if err != nil {
		return account.User{}, false, errors.Wrap(err, "build select user query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.User{}, false, nil
		}
		return account.User{}, false, errors.Wrap(err, "select user")
	}
	return row.toDomain(), true, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]account.User, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		OrderBy("username ASC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list users query")
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select users")
	}

	out := make([]account.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AccountRepository) SetAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	query, args, err := qb.Update("users").
		Set("is_admin", isAdmin).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update user query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update user")
	}
	return nil
}

// Delete removes the account; the user's posts, comments, and likes go
// with it via ON DELETE CASCADE.
func (r *AccountRepository) Delete(ctx context.Context, userID int64) error {
	query, args, err := qb.DeleteFrom("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete user query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete user")
	}
	return nil
}
