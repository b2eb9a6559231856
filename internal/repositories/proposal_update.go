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

type proposalUpdateRow struct {
	ID            string         `db:"update_id"`
	ProposalID    string         `db:"proposal_id"`
	AuthorAddress string         `db:"author_address"`
	AuthorName    sql.NullString `db:"author_name"`
	Status        string         `db:"status"`
	Content       string         `db:"content"`
	Attachments   stringList     `db:"attachments"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r proposalUpdateRow) toModel() models.ProposalUpdate {
	return models.ProposalUpdate{
		ID:            r.ID,
		ProposalID:    r.ProposalID,
		AuthorAddress: r.AuthorAddress,
		AuthorName:    toNullString(r.AuthorName),
		Status:        models.UpdateStatus(r.Status),
		Content:       r.Content,
		Attachments:   []string(r.Attachments),
		CreatedAt:     toMillis(r.CreatedAt),
		UpdatedAt:     toMillis(r.UpdatedAt),
	}
}

const proposalUpdateSelect = `
	SELECT pu.update_id, pu.proposal_id, pu.author_address, u.username AS author_name,
	       pu.status, pu.content, pu.attachments, pu.created_at, pu.updated_at
	FROM proposal_updates pu
	LEFT JOIN users u ON u.address = pu.author_address
`

type ProposalUpdateReadRepository struct {
	db *sqlx.DB
}

func NewProposalUpdateReadRepository(db *sqlx.DB) *ProposalUpdateReadRepository {
	return &ProposalUpdateReadRepository{db: db}
}

// Get returns the update with id, or nil.
func (r *ProposalUpdateReadRepository) Get(ctx context.Context, id string) (*models.ProposalUpdate, error) {
	query := proposalUpdateSelect + ` WHERE pu.update_id = $1`

	var row proposalUpdateRow
	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{id},
		"result", row.ProposalID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u := row.toModel()
	return &u, nil
}

// ListByProposal returns the updates of proposalID, newest first.
func (r *ProposalUpdateReadRepository) ListByProposal(ctx context.Context, proposalID string) ([]models.ProposalUpdate, error) {
	query := proposalUpdateSelect + ` WHERE pu.proposal_id = $1 ORDER BY pu.created_at DESC`

	var rows []proposalUpdateRow
	err := r.db.SelectContext(ctx, &rows, query, proposalID)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{proposalID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	out := make([]models.ProposalUpdate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

type ProposalUpdateWriteRepository struct {
	db *sqlx.DB
}

func NewProposalUpdateWriteRepository(db *sqlx.DB) *ProposalUpdateWriteRepository {
	return &ProposalUpdateWriteRepository{db: db}
}

func (r *ProposalUpdateWriteRepository) exec(ctx context.Context, query string, args ...any) error {
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

// Save inserts a new update.
func (r *ProposalUpdateWriteRepository) Save(ctx context.Context, u models.ProposalUpdate) error {
	const query = `
		INSERT INTO proposal_updates (
			update_id, proposal_id, author_address, status, content, attachments, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)
	`
	return r.exec(ctx, query,
		u.ID, u.ProposalID, u.AuthorAddress, string(u.Status), u.Content,
		stringList(u.Attachments), u.CreatedAt.Time(), u.UpdatedAt.Time(),
	)
}

// Update overwrites status, content and attachments of an update.
func (r *ProposalUpdateWriteRepository) Update(ctx context.Context, u models.ProposalUpdate) error {
	const query = `
		UPDATE proposal_updates
		SET status = $2, content = $3, attachments = $4::jsonb, updated_at = $5
		WHERE update_id = $1
	`
	return r.exec(ctx, query, u.ID, string(u.Status), u.Content, stringList(u.Attachments), u.UpdatedAt.Time())
}

// Delete removes an update.
func (r *ProposalUpdateWriteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM proposal_updates WHERE update_id = $1`
	return r.exec(ctx, query, id)
}
