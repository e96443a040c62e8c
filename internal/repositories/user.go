package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

const userColumns = `user_id, username, email, password_hash, is_verified,
	otp_code, otp_expires_at, reset_code, reset_expires_at, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByUsernameOrEmail returns the user whose username equals username or
// whose email equals email, or nil when there is none.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE username = $1 OR email = $2
		ORDER BY created_at
		LIMIT 1`
	return r.getOne(ctx, query, username, strings.ToLower(strings.TrimSpace(email)))
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

// Exists reports whether a user with the id is present.
func (r *UserReadRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID)

	logQuery(query, []any{userID}, exists, err)

	return exists, err
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts an unverified user and returns its id.
// ErrConflict is returned when the username or email is taken.
func (r *UserWriteRepository) Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING user_id
	`
	email = strings.ToLower(strings.TrimSpace(email))

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, username, email, passwordHash)

	// password hash is not logged
	logQuery(query, []any{username, email}, userID, err)

	if isUniqueViolation(err) {
		return uuid.Nil, ErrConflict
	}
	return userID, err
}

// SetPendingCode stores code as the pending code of purpose, replacing any
// previous one. sql.ErrNoRows is returned for an unknown user.
func (r *UserWriteRepository) SetPendingCode(ctx context.Context, userID uuid.UUID, purpose models.CodePurpose, code string, expiresAt time.Time) error {
	var query string
	switch purpose {
	case models.PurposeSignup:
		query = `UPDATE users SET otp_code = $2, otp_expires_at = $3, updated_at = NOW() WHERE user_id = $1`
	case models.PurposeReset:
		query = `UPDATE users SET reset_code = $2, reset_expires_at = $3, updated_at = NOW() WHERE user_id = $1`
	default:
		return errors.New("unknown code purpose: " + string(purpose))
	}

	return r.exec(ctx, query, userID, code, expiresAt)
}

// MarkVerified flags the user as verified and clears the signup code.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_verified = TRUE, otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID)
}

// UpdatePassword replaces the password hash and clears the reset code in one statement.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, reset_code = NULL, reset_expires_at = NULL, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID, passwordHash)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args[:1], rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
