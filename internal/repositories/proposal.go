package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

const proposalColumns = `
	proposal_id, title, category, description, author_address,
	created_at, start_time, end_time, status,
	snapshot_block, snapshot_chain_id, strategy, choices,
	total_for_raw::text AS total_for_raw,
	total_against_raw::text AS total_against_raw,
	token_power_voted_raw::text AS token_power_voted_raw,
	total_voters, finalized_at,
	proposal_cid, proposal_cid_status, results_cid, results_cid_status,
	signature, message_hash, message_timestamp, signed_message, snapshot_id
`

type proposalRow struct {
	ID                 string         `db:"proposal_id"`
	Title              string         `db:"title"`
	Category           string         `db:"category"`
	Description        string         `db:"description"`
	AuthorAddress      string         `db:"author_address"`
	CreatedAt          time.Time      `db:"created_at"`
	StartTime          time.Time      `db:"start_time"`
	EndTime            time.Time      `db:"end_time"`
	Status             string         `db:"status"`
	SnapshotBlock      int64          `db:"snapshot_block"`
	SnapshotChainID    int64          `db:"snapshot_chain_id"`
	Strategy           string         `db:"strategy"`
	Choices            stringList     `db:"choices"`
	TotalForRaw        string         `db:"total_for_raw"`
	TotalAgainstRaw    string         `db:"total_against_raw"`
	TokenPowerVotedRaw string         `db:"token_power_voted_raw"`
	TotalVoters        int            `db:"total_voters"`
	FinalizedAt        sql.NullTime   `db:"finalized_at"`
	ProposalCID        sql.NullString `db:"proposal_cid"`
	ProposalCIDStatus  string         `db:"proposal_cid_status"`
	ResultsCID         sql.NullString `db:"results_cid"`
	ResultsCIDStatus   string         `db:"results_cid_status"`
	Signature          string         `db:"signature"`
	MessageHash        string         `db:"message_hash"`
	MessageTimestamp   int64          `db:"message_timestamp"`
	SignedMessage      []byte         `db:"signed_message"`
	SnapshotID         sql.NullString `db:"snapshot_id"`
}

func (r proposalRow) toModel() models.Proposal {
	return models.Proposal{
		ID:                 r.ID,
		Title:              r.Title,
		Category:           r.Category,
		Description:        r.Description,
		AuthorAddress:      r.AuthorAddress,
		CreatedAt:          toMillis(r.CreatedAt),
		StartTime:          toMillis(r.StartTime),
		EndTime:            toMillis(r.EndTime),
		Status:             models.ProposalStatus(r.Status),
		SnapshotBlock:      uint64(r.SnapshotBlock),
		SnapshotChainID:    r.SnapshotChainID,
		Strategy:           r.Strategy,
		Choices:            []string(r.Choices),
		TotalForRaw:        r.TotalForRaw,
		TotalAgainstRaw:    r.TotalAgainstRaw,
		TokenPowerVotedRaw: r.TokenPowerVotedRaw,
		TotalVoters:        r.TotalVoters,
		FinalizedAt:        toNullMillis(r.FinalizedAt),
		ProposalCID:        toNullString(r.ProposalCID),
		ProposalCIDStatus:  models.CIDStatus(r.ProposalCIDStatus),
		ResultsCID:         toNullString(r.ResultsCID),
		ResultsCIDStatus:   models.CIDStatus(r.ResultsCIDStatus),
		Signature:          r.Signature,
		MessageHash:        r.MessageHash,
		Timestamp:          r.MessageTimestamp,
		SignedMessage:      decodeMessage(r.ID, r.SignedMessage),
		SnapshotID:         toNullString(r.SnapshotID),
	}
}

func decodeMessage(id string, raw []byte) *models.ProposalMessage {
	if len(raw) == 0 {
		return nil
	}
	var msg models.ProposalMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Log.Warnw("stored proposal message is not decodable", "proposal_id", id, "error", err)
		return nil
	}
	return &msg
}

func encodeMessage(msg *models.ProposalMessage) (any, error) {
	if msg == nil {
		return nil, nil
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type ProposalReadRepository struct {
	db *sqlx.DB
}

func NewProposalReadRepository(db *sqlx.DB) *ProposalReadRepository {
	return &ProposalReadRepository{db: db}
}

// Get returns the proposal with id, or nil when it does not exist.
func (r *ProposalReadRepository) Get(ctx context.Context, id string) (*models.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE proposal_id = $1`

	var row proposalRow
	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{id},
		"result", row.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

// GetBySnapshotID returns the imported proposal with snapshotID, or nil.
func (r *ProposalReadRepository) GetBySnapshotID(ctx context.Context, snapshotID string) (*models.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE snapshot_id = $1`

	var row proposalRow
	err := r.db.GetContext(ctx, &row, query, snapshotID)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{snapshotID},
		"result", row.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

// List returns all proposals, newest first.
func (r *ProposalReadRepository) List(ctx context.Context) ([]models.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC`

	var rows []proposalRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	out := make([]models.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

type ProposalWriteRepository struct {
	db *sqlx.DB
}

func NewProposalWriteRepository(db *sqlx.DB) *ProposalWriteRepository {
	return &ProposalWriteRepository{db: db}
}

func (r *ProposalWriteRepository) exec(ctx context.Context, query string, logArgs []any, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", logArgs,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Save inserts a new proposal.
func (r *ProposalWriteRepository) Save(ctx context.Context, p models.Proposal) error {
	const query = `
		INSERT INTO proposals (
			proposal_id, title, category, description, author_address,
			created_at, start_time, end_time, status,
			snapshot_block, snapshot_chain_id, strategy, choices,
			total_for_raw, total_against_raw, token_power_voted_raw, total_voters,
			proposal_cid_status, results_cid_status,
			signature, message_hash, message_timestamp, signed_message, snapshot_id
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13::jsonb,
			$14::numeric, $15::numeric, $16::numeric, $17,
			$18, $19,
			$20, $21, $22, $23::jsonb, $24
		)
	`
	message, err := encodeMessage(p.SignedMessage)
	if err != nil {
		return err
	}
	_, err = r.exec(ctx, query, []any{p.ID, p.AuthorAddress, p.Status},
		p.ID, p.Title, p.Category, p.Description, p.AuthorAddress,
		p.CreatedAt.Time(), p.StartTime.Time(), p.EndTime.Time(), string(p.Status),
		int64(p.SnapshotBlock), p.SnapshotChainID, p.Strategy, stringList(p.Choices),
		rawOrZero(p.TotalForRaw), rawOrZero(p.TotalAgainstRaw), rawOrZero(p.TokenPowerVotedRaw), p.TotalVoters,
		string(p.ProposalCIDStatus), string(p.ResultsCIDStatus),
		p.Signature, p.MessageHash, p.Timestamp, message, p.SnapshotID,
	)
	return err
}

// UpdateTotals stores a recomputed tally. It reports false when the proposal
// is already terminal, leaving the finalized totals untouched.
func (r *ProposalWriteRepository) UpdateTotals(ctx context.Context, id string, t models.TallyResult) (bool, error) {
	const query = `
		UPDATE proposals
		SET total_for_raw = $2::numeric,
		    total_against_raw = $3::numeric,
		    token_power_voted_raw = $4::numeric,
		    total_voters = $5
		WHERE proposal_id = $1
		  AND status NOT IN ('CLOSED', 'PASSED', 'FAILED')
	`
	n, err := r.exec(ctx, query, []any{id, t},
		id, rawOrZero(t.TotalForRaw), rawOrZero(t.TotalAgainstRaw), rawOrZero(t.TokenPowerVotedRaw), t.TotalVoters,
	)
	return n == 1, err
}

// Promote moves an UPCOMING proposal to ACTIVE. It reports false when the
// proposal was no longer UPCOMING.
func (r *ProposalWriteRepository) Promote(ctx context.Context, id string) (bool, error) {
	const query = `
		UPDATE proposals
		SET status = 'ACTIVE'
		WHERE proposal_id = $1 AND status = 'UPCOMING'
	`
	n, err := r.exec(ctx, query, []any{id}, id)
	return n == 1, err
}

// Finalize writes the terminal status, final totals and finalization time.
// It reports false when the proposal was already terminal, so finalizedAt is written once.
func (r *ProposalWriteRepository) Finalize(ctx context.Context, p models.Proposal) (bool, error) {
	const query = `
		UPDATE proposals
		SET status = $2,
		    total_for_raw = $3::numeric,
		    total_against_raw = $4::numeric,
		    token_power_voted_raw = $5::numeric,
		    total_voters = $6,
		    finalized_at = $7
		WHERE proposal_id = $1
		  AND status NOT IN ('CLOSED', 'PASSED', 'FAILED')
	`
	n, err := r.exec(ctx, query, []any{p.ID, p.Status, p.FinalizedAt},
		p.ID, string(p.Status),
		rawOrZero(p.TotalForRaw), rawOrZero(p.TotalAgainstRaw), rawOrZero(p.TokenPowerVotedRaw), p.TotalVoters,
		toNullTime(p.FinalizedAt),
	)
	return n == 1, err
}

// SetProposalArchive records the pin state of the proposal document.
func (r *ProposalWriteRepository) SetProposalArchive(ctx context.Context, id string, cid *string, status models.CIDStatus) error {
	const query = `
		UPDATE proposals
		SET proposal_cid = COALESCE($2, proposal_cid),
		    proposal_cid_status = $3
		WHERE proposal_id = $1
	`
	_, err := r.exec(ctx, query, []any{id, cid, status}, id, cid, string(status))
	return err
}

// SetResultsArchive records the pin state of the results document.
func (r *ProposalWriteRepository) SetResultsArchive(ctx context.Context, id string, cid *string, status models.CIDStatus) error {
	const query = `
		UPDATE proposals
		SET results_cid = COALESCE($2, results_cid),
		    results_cid_status = $3
		WHERE proposal_id = $1
	`
	_, err := r.exec(ctx, query, []any{id, cid, status}, id, cid, string(status))
	return err
}

// Delete removes a proposal together with its votes and updates.
func (r *ProposalWriteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM proposals WHERE proposal_id = $1`
	_, err := r.exec(ctx, query, []any{id}, id)
	return err
}

// UpsertImported inserts or refreshes a proposal keyed by its snapshot id.
// Status of an existing row only moves forward: terminal statuses are kept
// and ACTIVE is never reset to UPCOMING. It returns the stored id and whether a row was inserted.
func (r *ProposalWriteRepository) UpsertImported(ctx context.Context, p models.Proposal) (string, bool, error) {
	const query = `
		INSERT INTO proposals (
			proposal_id, title, category, description, author_address,
			created_at, start_time, end_time, status,
			snapshot_block, snapshot_chain_id, strategy, choices,
			total_for_raw, total_against_raw, token_power_voted_raw, total_voters,
			snapshot_id
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13::jsonb,
			$14::numeric, $15::numeric, $16::numeric, $17,
			$18
		)
		ON CONFLICT (snapshot_id) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time,
		    status = CASE
		        WHEN proposals.status IN ('CLOSED', 'PASSED', 'FAILED') THEN proposals.status
		        WHEN proposals.status = 'ACTIVE' AND EXCLUDED.status = 'UPCOMING' THEN proposals.status
		        ELSE EXCLUDED.status
		    END,
		    snapshot_block = EXCLUDED.snapshot_block,
		    choices = EXCLUDED.choices,
		    total_for_raw = EXCLUDED.total_for_raw,
		    total_against_raw = EXCLUDED.total_against_raw,
		    token_power_voted_raw = EXCLUDED.token_power_voted_raw,
		    total_voters = EXCLUDED.total_voters
		RETURNING proposal_id, (xmax = 0) AS inserted
	`

	var out struct {
		ID       string `db:"proposal_id"`
		Inserted bool   `db:"inserted"`
	}
	err := r.db.GetContext(ctx, &out, query,
		p.ID, p.Title, p.Category, p.Description, p.AuthorAddress,
		p.CreatedAt.Time(), p.StartTime.Time(), p.EndTime.Time(), string(p.Status),
		int64(p.SnapshotBlock), p.SnapshotChainID, p.Strategy, stringList(p.Choices),
		rawOrZero(p.TotalForRaw), rawOrZero(p.TotalAgainstRaw), rawOrZero(p.TokenPowerVotedRaw), p.TotalVoters,
		p.SnapshotID,
	)

	logger.Log.Infow(
		"query", logger.OneLine(query),
		"args", []any{p.SnapshotID, p.Status},
		"result", out,
		"error", err,
	)

	return out.ID, out.Inserted, err
}
