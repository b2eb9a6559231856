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

type nonceRow struct {
	Address   string    `db:"address"`
	Nonce     string    `db:"nonce"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type NonceReadRepository struct {
	db *sqlx.DB
}

func NewNonceReadRepository(db *sqlx.DB) *NonceReadRepository {
	return &NonceReadRepository{db: db}
}

// Get returns the stored nonce of address, or nil when none was issued.
func (r *NonceReadRepository) Get(ctx context.Context, address string) (*models.Nonce, error) {
	const query = `
		SELECT address, nonce, created_at, expires_at
		FROM auth_nonces
		WHERE address = $1
	`

	var row nonceRow
	err := r.db.GetContext(ctx, &row, query, address)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{address},
		"result", row.ExpiresAt,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.Nonce{
		Address:   row.Address,
		Value:     row.Nonce,
		CreatedAt: toMillis(row.CreatedAt),
		ExpiresAt: toMillis(row.ExpiresAt),
	}, nil
}

type NonceWriteRepository struct {
	db *sqlx.DB
}

func NewNonceWriteRepository(db *sqlx.DB) *NonceWriteRepository {
	return &NonceWriteRepository{db: db}
}

// Save stores n, replacing any earlier nonce of the same address.
func (r *NonceWriteRepository) Save(ctx context.Context, n models.Nonce) error {
	const query = `
		INSERT INTO auth_nonces (address, nonce, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE
		SET nonce = EXCLUDED.nonce,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at
	`
	args := []any{n.Address, n.Value, n.CreatedAt.Time(), n.ExpiresAt.Time()}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{n.Address, n.ExpiresAt},
		"result", "ok",
		"error", err,
	)

	return err
}

// Consume deletes the nonce if it matches and is still live at now.
// It reports false when no row was deleted, so at most one caller wins a given nonce.
func (r *NonceWriteRepository) Consume(ctx context.Context, address, nonce string, now models.Millis) (bool, error) {
	const query = `
		DELETE FROM auth_nonces
		WHERE address = $1 AND nonce = $2 AND expires_at > $3
	`

	res, err := r.db.ExecContext(ctx, query, address, nonce, now.Time())
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{address},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
