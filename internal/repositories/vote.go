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

type voteRow struct {
	ProposalID       string    `db:"proposal_id"`
	VoterAddress     string    `db:"voter_address"`
	Choice           string    `db:"choice"`
	WeightRaw        string    `db:"weight_raw"`
	Signature        string    `db:"signature"`
	MessageHash      string    `db:"message_hash"`
	SnapshotBlock    int64     `db:"snapshot_block"`
	MessageTimestamp int64     `db:"message_timestamp"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r voteRow) toModel() models.Vote {
	return models.Vote{
		ProposalID:    r.ProposalID,
		VoterAddress:  r.VoterAddress,
		Choice:        models.Choice(r.Choice),
		WeightRaw:     r.WeightRaw,
		Signature:     r.Signature,
		MessageHash:   r.MessageHash,
		SnapshotBlock: uint64(r.SnapshotBlock),
		Timestamp:     r.MessageTimestamp,
		CreatedAt:     toMillis(r.CreatedAt),
		UpdatedAt:     toMillis(r.UpdatedAt),
	}
}

const voteColumns = `
	proposal_id, voter_address, choice, weight_raw::text AS weight_raw,
	signature, message_hash, snapshot_block, message_timestamp, created_at, updated_at
`

type VoteReadRepository struct {
	db *sqlx.DB
}

func NewVoteReadRepository(db *sqlx.DB) *VoteReadRepository {
	return &VoteReadRepository{db: db}
}

// Get returns the ballot of voter on proposalID, or nil.
func (r *VoteReadRepository) Get(ctx context.Context, proposalID, voter string) (*models.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE proposal_id = $1 AND voter_address = $2`

	var row voteRow
	err := r.db.GetContext(ctx, &row, query, proposalID, voter)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{proposalID, voter},
		"result", row.Choice,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v := row.toModel()
	return &v, nil
}

// ListByProposal returns every ballot of proposalID ordered by voter address.
func (r *VoteReadRepository) ListByProposal(ctx context.Context, proposalID string) ([]models.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE proposal_id = $1 ORDER BY voter_address`

	var rows []voteRow
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
	out := make([]models.Vote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

type VoteWriteRepository struct {
	db *sqlx.DB
}

func NewVoteWriteRepository(db *sqlx.DB) *VoteWriteRepository {
	return &VoteWriteRepository{db: db}
}

// Upsert stores v as the only ballot of its voter on its proposal.
// A resubmission replaces choice, weight, signature, hash and timestamps but keeps created_at.
func (r *VoteWriteRepository) Upsert(ctx context.Context, v models.Vote) error {
	const query = `
		INSERT INTO votes (
			proposal_id, voter_address, choice, weight_raw, signature, message_hash,
			snapshot_block, message_timestamp, created_at, updated_at
		) VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (proposal_id, voter_address) DO UPDATE
		SET choice = EXCLUDED.choice,
		    weight_raw = EXCLUDED.weight_raw,
		    signature = EXCLUDED.signature,
		    message_hash = EXCLUDED.message_hash,
		    snapshot_block = EXCLUDED.snapshot_block,
		    message_timestamp = EXCLUDED.message_timestamp,
		    updated_at = EXCLUDED.updated_at
	`
	args := []any{
		v.ProposalID, v.VoterAddress, string(v.Choice), rawOrZero(v.WeightRaw), v.Signature, v.MessageHash,
		int64(v.SnapshotBlock), v.Timestamp, v.CreatedAt.Time(), v.UpdatedAt.Time(),
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{v.ProposalID, v.VoterAddress, v.Choice, v.WeightRaw},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
