package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=import.go -destination=import_mock.go -package=services

const (
	importBatchSize = 100
	importCategory  = "Other"
)

// Import outcomes reported per proposal.
const (
	ImportStatusImported = "imported"
	ImportStatusUpdated  = "updated"
)

// SnapshotSource lists proposals of an off-chain poll space.
type SnapshotSource interface {
	ListProposals(ctx context.Context, space string, first int) ([]models.SnapshotProposal, error)
}

// ImportWriter upserts imported proposals by their external id.
type ImportWriter interface {
	UpsertImported(ctx context.Context, p models.Proposal) (string, bool, error)
}

// ImportConfig selects the space to import and how to scale its scores.
type ImportConfig struct {
	Space    string
	Decimals int32
	ChainID  int64
}

// ImportService copies proposals of an off-chain poll space into local storage.
type ImportService struct {
	source SnapshotSource
	writer ImportWriter
	cfg    ImportConfig
	now    Clock
}

// NewImportService creates a new ImportService.
func NewImportService(source SnapshotSource, writer ImportWriter, cfg ImportConfig, now Clock) *ImportService {
	if now == nil {
		now = SystemClock
	}
	return &ImportService{source: source, writer: writer, cfg: cfg, now: now}
}

// Import fetches the newest proposals of the configured space and upserts them.
// A failed row is logged and skipped.
func (s *ImportService) Import(ctx context.Context) ([]models.ImportResult, error) {
	if s.cfg.Space == "" {
		return nil, invalidInput("snapshot space is not configured")
	}

	proposals, err := s.source.ListProposals(ctx, s.cfg.Space, importBatchSize)
	if err != nil {
		logger.Log.Errorw("failed to list snapshot proposals", "space", s.cfg.Space, "error", err)
		return nil, err
	}

	results := make([]models.ImportResult, 0, len(proposals))
	for _, sp := range proposals {
		p := s.convert(sp)
		id, inserted, err := s.writer.UpsertImported(ctx, p)
		if err != nil {
			logger.Log.Errorw("failed to import snapshot proposal", "snapshot_id", sp.ID, "error", err)
			continue
		}

		status := ImportStatusUpdated
		if inserted {
			status = ImportStatusImported
		}
		results = append(results, models.ImportResult{Title: p.Title, Status: status, ID: id})
	}

	logger.Log.Infow("snapshot import finished", "space", s.cfg.Space, "fetched", len(proposals), "stored", len(results))
	return results, nil
}

func (s *ImportService) convert(sp models.SnapshotProposal) models.Proposal {
	forIdx, againstIdx := choiceIndexes(sp.Choices)
	forRaw := s.scoreRaw(sp.Scores, forIdx)
	againstRaw := s.scoreRaw(sp.Scores, againstIdx)

	power := decimal.RequireFromString(forRaw).Add(decimal.RequireFromString(againstRaw))

	block, err := strconv.ParseUint(sp.Snapshot, 10, 64)
	if err != nil {
		block = 0
	}

	snapshotID := sp.ID
	return models.Proposal{
		ID:                 uuid.NewString(),
		Title:              sp.Title,
		Category:           importCategory,
		Description:        sp.Body,
		AuthorAddress:      strings.ToLower(sp.Author),
		CreatedAt:          models.MillisFromSeconds(sp.Created),
		StartTime:          models.MillisFromSeconds(sp.Start),
		EndTime:            models.MillisFromSeconds(sp.End),
		Status:             importStatus(sp.State),
		SnapshotBlock:      block,
		SnapshotChainID:    s.cfg.ChainID,
		Strategy:           models.StrategySnapshotImport,
		Choices:            sp.Choices,
		TotalForRaw:        forRaw,
		TotalAgainstRaw:    againstRaw,
		TokenPowerVotedRaw: power.String(),
		TotalVoters:        sp.Votes,
		SnapshotID:         &snapshotID,
	}
}

func (s *ImportService) scoreRaw(scores []float64, idx int) string {
	if idx < 0 || idx >= len(scores) || scores[idx] <= 0 {
		return "0"
	}
	return ToRawUnits(decimal.NewFromFloat(scores[idx]), s.cfg.Decimals)
}

// choiceIndexes finds the FOR and AGAINST score positions by choice name,
// defaulting to the first two choices.
func choiceIndexes(choices []string) (forIdx, againstIdx int) {
	forIdx, againstIdx = -1, -1
	for i, c := range choices {
		switch strings.ToLower(c) {
		case "for":
			if forIdx < 0 {
				forIdx = i
			}
		case "against":
			if againstIdx < 0 {
				againstIdx = i
			}
		}
	}
	if forIdx < 0 {
		forIdx = 0
	}
	if againstIdx < 0 {
		againstIdx = 1
	}
	return forIdx, againstIdx
}

func importStatus(state string) models.ProposalStatus {
	switch state {
	case "active":
		return models.StatusActive
	case "closed":
		return models.StatusClosed
	}
	return models.StatusUpcoming
}
