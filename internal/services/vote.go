package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=vote.go -destination=vote_mock.go -package=services

// VoteWriter stores ballots.
type VoteWriter interface {
	Upsert(ctx context.Context, v models.Vote) error
}

// VoteSigner verifies signed vote payloads.
type VoteSigner interface {
	RecoverVote(msg models.VoteMessage, signature string) (string, error)
	HashVote(msg models.VoteMessage) (string, error)
}

// Tallier recomputes the totals of a proposal.
type Tallier interface {
	Recompute(ctx context.Context, proposalID string) (models.TallyResult, error)
}

// TotalsWriter persists recomputed totals of proposals still open.
type TotalsWriter interface {
	UpdateTotals(ctx context.Context, id string, t models.TallyResult) (bool, error)
}

// CastVoteInput is a signed ballot submission.
type CastVoteInput struct {
	Choice    models.Choice
	Signature string
	Timestamp int64 // Seconds, as signed
}

// VoteService records signed, balance-weighted ballots.
type VoteService struct {
	proposals ProposalReader
	totals    TotalsWriter
	writer    VoteWriter
	signer    VoteSigner
	power     VotingPower
	tallier   Tallier
	events    Publisher
	now       Clock
}

// NewVoteService creates a new VoteService.
func NewVoteService(
	proposals ProposalReader,
	totals TotalsWriter,
	writer VoteWriter,
	signer VoteSigner,
	power VotingPower,
	tallier Tallier,
	events Publisher,
	now Clock,
) *VoteService {
	if now == nil {
		now = SystemClock
	}
	return &VoteService{
		proposals: proposals,
		totals:    totals,
		writer:    writer,
		signer:    signer,
		power:     power,
		tallier:   tallier,
		events:    events,
		now:       now,
	}
}

// Cast records voter's ballot on proposalID, replacing any earlier ballot, and
// returns the stored vote with the proposal carrying refreshed totals.
func (s *VoteService) Cast(ctx context.Context, voter, proposalID string, in CastVoteInput) (*models.Vote, *models.Proposal, error) {
	if !in.Choice.Valid() {
		return nil, nil, invalidInput("choice must be FOR or AGAINST")
	}
	if strings.TrimSpace(in.Signature) == "" {
		return nil, nil, invalidInput("signature is required")
	}
	if in.Timestamp <= 0 {
		return nil, nil, invalidInput("timestamp is required")
	}

	p, err := s.proposals.Get(ctx, proposalID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrNotFound
	}

	msg := models.VoteMessage{
		ProposalID:    p.ID,
		Voter:         voter,
		Choice:        in.Choice,
		SnapshotBlock: p.SnapshotBlock,
		Timestamp:     in.Timestamp,
	}
	signer, err := s.signer.RecoverVote(msg, in.Signature)
	if err != nil {
		return nil, nil, err
	}
	if signer != voter {
		logger.Log.Warnw("vote signer mismatch", "proposal_id", p.ID, "voter", voter, "signer", signer)
		return nil, nil, ErrSignerMismatch
	}

	now := s.now()
	if !p.AcceptsVotes(now) {
		return nil, nil, fmt.Errorf("%w: proposal is not open for voting", ErrInvalidState)
	}

	tag := p.SnapshotBlockTag()
	weight, err := s.power.BalanceAt(ctx, voter, tag)
	if err != nil {
		return nil, nil, err
	}
	w, err := parseRaw(weight)
	if err != nil {
		return nil, nil, ErrOracleUnavailable
	}
	if w.Sign() == 0 {
		return nil, nil, fmt.Errorf("%w: no voting power at block %s", ErrInsufficientBalance, tag)
	}

	hash, err := s.signer.HashVote(msg)
	if err != nil {
		return nil, nil, err
	}

	v := models.Vote{
		ProposalID:    p.ID,
		VoterAddress:  voter,
		Choice:        in.Choice,
		WeightRaw:     weight,
		Signature:     in.Signature,
		MessageHash:   hash,
		SnapshotBlock: p.SnapshotBlock,
		Timestamp:     in.Timestamp,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.writer.Upsert(ctx, v); err != nil {
		logger.Log.Errorw("failed to store vote", "proposal_id", p.ID, "voter", voter, "error", err)
		return nil, nil, err
	}

	tally, err := s.tallier.Recompute(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	updated, err := s.totals.UpdateTotals(ctx, p.ID, tally)
	if err != nil {
		logger.Log.Errorw("failed to update totals", "proposal_id", p.ID, "error", err)
		return nil, nil, err
	}
	if !updated {
		logger.Log.Warnw("vote arrived after finalization", "proposal_id", p.ID, "voter", voter)
		return nil, nil, fmt.Errorf("%w: proposal was finalized", ErrInvalidState)
	}
	p.TotalForRaw = tally.TotalForRaw
	p.TotalAgainstRaw = tally.TotalAgainstRaw
	p.TokenPowerVotedRaw = tally.TokenPowerVotedRaw
	p.TotalVoters = tally.TotalVoters

	s.events.Publish(ctx, models.GovernanceEvent{
		Type:       models.EventVoteCast,
		ProposalID: p.ID,
		Actor:      voter,
		Payload: map[string]any{
			"choice":    v.Choice,
			"weightRaw": v.WeightRaw,
		},
	})

	return &v, p, nil
}
