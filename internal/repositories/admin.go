package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// GetByUsername returns the admin or nil when there is none.
func (r *AdminReadRepository) GetByUsername(ctx context.Context, username string) (*models.AdminDB, error) {
	const query = `
		SELECT admin_id, username, password_hash, created_at, updated_at
		FROM admins
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the admin or nil when there is none.
func (r *AdminReadRepository) GetByID(ctx context.Context, adminID uuid.UUID) (*models.AdminDB, error) {
	const query = `
		SELECT admin_id, username, password_hash, created_at, updated_at
		FROM admins
		WHERE admin_id = $1
	`
	return r.getOne(ctx, query, adminID)
}

// Exists reports whether an admin with the id is present.
func (r *AdminReadRepository) Exists(ctx context.Context, adminID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM admins WHERE admin_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, adminID)

	logQuery(query, []any{adminID}, exists, err)

	return exists, err
}

func (r *AdminReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.AdminDB, error) {
	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, args...)

	logQuery(query, args, admin.AdminID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

type AdminWriteRepository struct {
	db *sqlx.DB
}

func NewAdminWriteRepository(db *sqlx.DB) *AdminWriteRepository {
	return &AdminWriteRepository{db: db}
}

// Create inserts the admin unless the username is already taken.
// It reports whether a row was inserted.
func (r *AdminWriteRepository) Create(ctx context.Context, username, passwordHash string) (bool, error) {
	const query = `
		INSERT INTO admins (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (username) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{username}, rowsAffected, err)

	return rowsAffected > 0, err
}
