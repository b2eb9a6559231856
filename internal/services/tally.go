package services

import (
	"context"
	"math/big"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=tally.go -destination=tally_mock.go -package=services

// Tally sums votes into exact integer totals. Each voter counts once; if the
// input holds several ballots of one voter the last one wins.
func Tally(votes []models.Vote) models.TallyResult {
	latest := make(map[string]models.Vote, len(votes))
	order := make([]string, 0, len(votes))
	for _, v := range votes {
		if _, seen := latest[v.VoterAddress]; seen {
			logger.Log.Warnw("duplicate ballot in tally input", "proposal_id", v.ProposalID, "voter", v.VoterAddress)
		} else {
			order = append(order, v.VoterAddress)
		}
		latest[v.VoterAddress] = v
	}

	forVotes, againstVotes := new(big.Int), new(big.Int)
	for _, voter := range order {
		v := latest[voter]
		weight, err := parseRaw(v.WeightRaw)
		if err != nil {
			logger.Log.Warnw("skipping ballot with invalid weight", "proposal_id", v.ProposalID, "voter", voter, "weight", v.WeightRaw)
			continue
		}
		switch v.Choice {
		case models.ChoiceFor:
			forVotes.Add(forVotes, weight)
		case models.ChoiceAgainst:
			againstVotes.Add(againstVotes, weight)
		}
	}

	return models.TallyResult{
		TotalForRaw:        forVotes.String(),
		TotalAgainstRaw:    againstVotes.String(),
		TotalVoters:        len(order),
		TokenPowerVotedRaw: new(big.Int).Add(forVotes, againstVotes).String(),
	}
}

// VoteReader reads stored ballots.
type VoteReader interface {
	Get(ctx context.Context, proposalID, voter string) (*models.Vote, error)
	ListByProposal(ctx context.Context, proposalID string) ([]models.Vote, error)
}

// TallyService recomputes proposal totals from stored ballots.
type TallyService struct {
	votes VoteReader
}

// NewTallyService creates a TallyService.
func NewTallyService(votes VoteReader) *TallyService {
	return &TallyService{votes: votes}
}

// Recompute tallies every ballot of proposalID.
func (s *TallyService) Recompute(ctx context.Context, proposalID string) (models.TallyResult, error) {
	votes, err := s.votes.ListByProposal(ctx, proposalID)
	if err != nil {
		logger.Log.Errorw("failed to list votes", "proposal_id", proposalID, "error", err)
		return models.TallyResult{}, err
	}
	return Tally(votes), nil
}
