package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=archive.go -destination=archive_mock.go -package=services

// Pinner stores JSON documents on IPFS.
type Pinner interface {
	PinJSON(ctx context.Context, v any) (string, error)
}

// ArchiveWriter records archive state on proposals.
type ArchiveWriter interface {
	SetProposalArchive(ctx context.Context, id string, cid *string, status models.CIDStatus) error
	SetResultsArchive(ctx context.Context, id string, cid *string, status models.CIDStatus) error
}

// ArchiveService pins signed proposals and final results.
type ArchiveService struct {
	pinner Pinner
	writer ArchiveWriter
}

// NewArchiveService creates an ArchiveService.
func NewArchiveService(pinner Pinner, writer ArchiveWriter) *ArchiveService {
	return &ArchiveService{pinner: pinner, writer: writer}
}

// ArchiveProposal pins env and records the outcome on p. A failed pin is
// recorded as failed and reported as ErrArchiveFailure.
func (s *ArchiveService) ArchiveProposal(ctx context.Context, p *models.Proposal, env models.ProposalEnvelope) error {
	cid, err := s.pin(ctx, p.ID, "proposal", env, s.writer.SetProposalArchive)
	if err != nil {
		p.ProposalCIDStatus = models.CIDStatusFailed
		return err
	}
	p.ProposalCID = &cid
	p.ProposalCIDStatus = models.CIDStatusPinned
	return nil
}

// ArchiveResults pins the final results of p and records the outcome on p.
func (s *ArchiveService) ArchiveResults(ctx context.Context, p *models.Proposal, votes []models.Vote) error {
	doc := BuildResults(*p, votes)
	cid, err := s.pin(ctx, p.ID, "results", doc, s.writer.SetResultsArchive)
	if err != nil {
		p.ResultsCIDStatus = models.CIDStatusFailed
		return err
	}
	p.ResultsCID = &cid
	p.ResultsCIDStatus = models.CIDStatusPinned
	return nil
}

func (s *ArchiveService) pin(
	ctx context.Context,
	id, kind string,
	doc any,
	record func(ctx context.Context, id string, cid *string, status models.CIDStatus) error,
) (string, error) {
	if err := record(ctx, id, nil, models.CIDStatusPending); err != nil {
		logger.Log.Errorw("failed to mark archive pending", "proposal_id", id, "kind", kind, "error", err)
	}

	cid, err := s.pinner.PinJSON(ctx, doc)
	if err != nil {
		logger.Log.Errorw("archive pin failed", "proposal_id", id, "kind", kind, "error", err)
		if recErr := record(ctx, id, nil, models.CIDStatusFailed); recErr != nil {
			logger.Log.Errorw("failed to record archive failure", "proposal_id", id, "kind", kind, "error", recErr)
		}
		return "", fmt.Errorf("%w: %v", ErrArchiveFailure, err)
	}

	if err := record(ctx, id, &cid, models.CIDStatusPinned); err != nil {
		logger.Log.Errorw("failed to record archive cid", "proposal_id", id, "kind", kind, "cid", cid, "error", err)
		if recErr := record(ctx, id, nil, models.CIDStatusFailed); recErr != nil {
			logger.Log.Errorw("failed to record archive failure", "proposal_id", id, "kind", kind, "error", recErr)
		}
		return "", fmt.Errorf("%w: %v", ErrArchiveFailure, err)
	}

	logger.Log.Infow("archived", "proposal_id", id, "kind", kind, "cid", cid)
	return cid, nil
}

// BuildResults renders the results document of a finalized proposal.
// Ballots are ordered by voter address.
func BuildResults(p models.Proposal, votes []models.Vote) models.ResultsDocument {
	sorted := make([]models.Vote, len(votes))
	copy(sorted, votes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].VoterAddress < sorted[j].VoterAddress
	})

	out := make([]models.ResultsVote, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, models.ResultsVote{
			Voter:       v.VoterAddress,
			Choice:      v.Choice,
			WeightRaw:   v.WeightRaw,
			Signature:   v.Signature,
			MessageHash: v.MessageHash,
		})
	}

	var finalizedAt models.Millis
	if p.FinalizedAt != nil {
		finalizedAt = *p.FinalizedAt
	}

	return models.ResultsDocument{
		Schema:          models.ResultsSchema,
		ProposalID:      p.ID,
		SnapshotBlock:   p.SnapshotBlock,
		SnapshotChainID: p.SnapshotChainID,
		FinalizedAt:     finalizedAt,
		Status:          string(p.Status),
		Totals:          models.TallyOf(p),
		Votes:           out,
	}
}
