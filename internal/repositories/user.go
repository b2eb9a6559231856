package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

type userRow struct {
	Address     string         `db:"address"`
	Username    sql.NullString `db:"username"`
	Email       sql.NullString `db:"email"`
	CreatedAt   time.Time      `db:"created_at"`
	LastLoginAt time.Time      `db:"last_login_at"`
}

func (r userRow) toModel() *models.User {
	return &models.User{
		Address:     r.Address,
		Username:    toNullString(r.Username),
		Email:       toNullString(r.Email),
		CreatedAt:   toMillis(r.CreatedAt),
		LastLoginAt: toMillis(r.LastLoginAt),
	}
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByAddress returns the user or nil when the address never signed in.
func (r *UserReadRepository) GetByAddress(ctx context.Context, address string) (*models.User, error) {
	const query = `
		SELECT address, username, email, created_at, last_login_at
		FROM users
		WHERE address = $1
	`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, address)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{address},
		"result", row,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// UsernameTaken reports whether username belongs to an address other than exceptAddress.
func (r *UserReadRepository) UsernameTaken(ctx context.Context, username, exceptAddress string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1 AND address <> $2
		)
	`

	var taken bool
	err := r.db.GetContext(ctx, &taken, query, username, exceptAddress)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{username, exceptAddress},
		"result", taken,
		"error", err,
	)

	return taken, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save records a successful login. The user is created on first login;
// username and email are only overwritten when provided.
func (r *UserWriteRepository) Save(ctx context.Context, address string, username, email *string, now models.Millis) error {
	const query = `
		INSERT INTO users (address, username, email, created_at, last_login_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (address) DO UPDATE
		SET username = COALESCE(EXCLUDED.username, users.username),
		    email = COALESCE(EXCLUDED.email, users.email),
		    last_login_at = EXCLUDED.last_login_at
	`
	args := []any{address, username, email, now.Time()}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
