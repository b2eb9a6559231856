package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=proposal.go -destination=proposal_mock.go -package=services

// ProposalReader defines read-only operations for proposals.
type ProposalReader interface {
	Get(ctx context.Context, id string) (*models.Proposal, error)
	List(ctx context.Context) ([]models.Proposal, error)
}

// ProposalWriter defines write operations for proposals.
type ProposalWriter interface {
	Save(ctx context.Context, p models.Proposal) error
	Promote(ctx context.Context, id string) (bool, error)
	Finalize(ctx context.Context, p models.Proposal) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ProposalSigner verifies and renders signed proposal payloads.
type ProposalSigner interface {
	RecoverProposal(msg models.ProposalMessage, signature string) (string, error)
	HashProposal(msg models.ProposalMessage) (string, error)
	ProposalDocument(msg models.ProposalMessage) models.TypedDataDocument
}

// VotingPower resolves token balances and the chain head.
type VotingPower interface {
	BalanceAt(ctx context.Context, address, blockTag string) (string, error)
	CurrentBlock(ctx context.Context) (uint64, error)
}

// Archiver pins proposal and results documents.
type Archiver interface {
	ArchiveProposal(ctx context.Context, p *models.Proposal, env models.ProposalEnvelope) error
	ArchiveResults(ctx context.Context, p *models.Proposal, votes []models.Vote) error
}

// ProposalConfig holds the proposal creation policy.
type ProposalConfig struct {
	MinBalanceRaw   string        // Creation threshold in raw units
	Decimals        int32         // Token decimals, for human-readable balances
	ChainID         int64         // Chain the snapshot block belongs to
	DefaultDuration time.Duration // Voting window when the message sets no end
}

// CreateProposalInput is a signed proposal submission.
type CreateProposalInput struct {
	Category  string
	Message   models.ProposalMessage
	Signature string
}

var defaultChoices = []string{"For", "Against"}

// ProposalService manages proposals and their time-driven lifecycle.
type ProposalService struct {
	reader   ProposalReader
	writer   ProposalWriter
	votes    VoteReader
	signer   ProposalSigner
	power    VotingPower
	archiver Archiver
	events   Publisher
	cfg      ProposalConfig
	now      Clock
}

// NewProposalService creates a new ProposalService.
func NewProposalService(
	reader ProposalReader,
	writer ProposalWriter,
	votes VoteReader,
	signer ProposalSigner,
	power VotingPower,
	archiver Archiver,
	events Publisher,
	cfg ProposalConfig,
	now Clock,
) *ProposalService {
	if now == nil {
		now = SystemClock
	}
	return &ProposalService{
		reader:   reader,
		writer:   writer,
		votes:    votes,
		signer:   signer,
		power:    power,
		archiver: archiver,
		events:   events,
		cfg:      cfg,
		now:      now,
	}
}

// Create validates and stores a signed proposal by author.
func (s *ProposalService) Create(ctx context.Context, author string, in CreateProposalInput) (*models.Proposal, error) {
	if err := s.checkCreationBalance(ctx, author); err != nil {
		return nil, err
	}

	msg := in.Message
	category := strings.TrimSpace(in.Category)
	switch {
	case strings.TrimSpace(msg.Title) == "":
		return nil, invalidInput("title is required")
	case category == "":
		return nil, invalidInput("category is required")
	case strings.TrimSpace(msg.Body) == "":
		return nil, invalidInput("description is required")
	case strings.TrimSpace(in.Signature) == "":
		return nil, invalidInput("signature is required")
	}

	signer, err := s.signer.RecoverProposal(msg, in.Signature)
	if err != nil {
		return nil, err
	}
	if signer != author || !strings.EqualFold(msg.From, author) {
		logger.Log.Warnw("proposal signer mismatch", "author", author, "signer", signer, "from", msg.From)
		return nil, ErrSignerMismatch
	}

	hash, err := s.signer.HashProposal(msg)
	if err != nil {
		return nil, err
	}

	block, err := s.power.CurrentBlock(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := now
	if msg.Start > 0 {
		start = models.MillisFromSeconds(msg.Start)
	}
	end := start.Add(s.cfg.DefaultDuration)
	if msg.End > 0 {
		end = models.MillisFromSeconds(msg.End)
	}
	if start > end {
		return nil, invalidInput("start must not be after end")
	}

	status := models.StatusActive
	if start > now {
		status = models.StatusUpcoming
	}

	choices := msg.Choices
	if len(choices) == 0 {
		choices = defaultChoices
	}

	signed := msg
	p := models.Proposal{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(msg.Title),
		Category:           category,
		Description:        msg.Body,
		AuthorAddress:      author,
		CreatedAt:          now,
		StartTime:          start,
		EndTime:            end,
		Status:             status,
		SnapshotBlock:      block,
		SnapshotChainID:    s.cfg.ChainID,
		Strategy:           models.StrategyERC20AtBlock,
		Choices:            choices,
		TotalForRaw:        "0",
		TotalAgainstRaw:    "0",
		TokenPowerVotedRaw: "0",
		Signature:          in.Signature,
		MessageHash:        hash,
		Timestamp:          msg.Timestamp,
		SignedMessage:      &signed,
	}

	if err := s.writer.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save proposal", "author", author, "error", err)
		return nil, err
	}

	if err := s.archiver.ArchiveProposal(ctx, &p, s.envelope(p)); err != nil {
		logger.Log.Warnw("proposal archive deferred", "proposal_id", p.ID, "error", err)
	}

	s.events.Publish(ctx, models.GovernanceEvent{
		Type:       models.EventProposalCreated,
		ProposalID: p.ID,
		Actor:      author,
		Payload: map[string]any{
			"title":         p.Title,
			"snapshotBlock": p.SnapshotBlock,
			"startTime":     p.StartTime,
			"endTime":       p.EndTime,
		},
	})

	return &p, nil
}

func (s *ProposalService) checkCreationBalance(ctx context.Context, author string) error {
	raw, err := s.power.BalanceAt(ctx, author, models.BlockTagLatest)
	if err != nil {
		return err
	}
	balance, err := parseRaw(raw)
	if err != nil {
		return ErrOracleUnavailable
	}
	threshold, err := parseRaw(s.cfg.MinBalanceRaw)
	if err != nil {
		return err
	}
	if balance.Cmp(threshold) < 0 {
		return &BalanceError{
			Required: FromRawUnits(s.cfg.MinBalanceRaw, s.cfg.Decimals),
			Current:  FromRawUnits(raw, s.cfg.Decimals),
		}
	}
	return nil
}

func (s *ProposalService) envelope(p models.Proposal) models.ProposalEnvelope {
	return models.ProposalEnvelope{
		Address:   p.AuthorAddress,
		Signature: p.Signature,
		Hash:      p.MessageHash,
		Data:      s.signer.ProposalDocument(*p.SignedMessage),
	}
}

// Get returns the proposal with id after applying due transitions. When viewer
// is set, the viewer's own ballot is returned alongside.
func (s *ProposalService) Get(ctx context.Context, id, viewer string) (*models.Proposal, *models.MyVote, error) {
	p, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrNotFound
	}

	current, err := s.refresh(ctx, *p)
	if err != nil {
		return nil, nil, err
	}
	if p.Status.Terminal() {
		s.retryArchives(ctx, &current)
	}

	if viewer == "" {
		return &current, nil, nil
	}
	v, err := s.votes.Get(ctx, id, viewer)
	if err != nil {
		logger.Log.Warnw("failed to load viewer ballot", "proposal_id", id, "viewer", viewer, "error", err)
		return &current, nil, nil
	}
	if v == nil {
		return &current, nil, nil
	}
	return &current, &models.MyVote{Choice: v.Choice, WeightRaw: v.WeightRaw}, nil
}

// List returns all proposals, newest first, after applying due transitions.
func (s *ProposalService) List(ctx context.Context) ([]models.Proposal, error) {
	proposals, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range proposals {
		current, err := s.refresh(ctx, proposals[i])
		if err != nil {
			return nil, err
		}
		proposals[i] = current
	}
	return proposals, nil
}

// Delete removes a proposal of author that has not reached a terminal state.
func (s *ProposalService) Delete(ctx context.Context, author, id string) error {
	p, err := s.reader.Get(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if p.AuthorAddress != author {
		return ErrForbidden
	}

	current, err := s.refresh(ctx, *p)
	if err != nil {
		return err
	}
	if current.Status.Terminal() {
		return ErrInvalidState
	}

	return s.writer.Delete(ctx, id)
}

// refresh persists any transition p is due for and returns the resulting proposal.
func (s *ProposalService) refresh(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	now := s.now()
	next, tr := EvaluateTransitions(p, now)

	switch tr {
	case TransitionPromote:
		ok, err := s.writer.Promote(ctx, p.ID)
		if err != nil {
			return p, err
		}
		if !ok {
			return s.reload(ctx, p)
		}
		return next, nil
	case TransitionFinalize:
		return s.finalize(ctx, p, now)
	}
	return p, nil
}

func (s *ProposalService) finalize(ctx context.Context, p models.Proposal, now models.Millis) (models.Proposal, error) {
	var votes []models.Vote
	tally := models.TallyOf(p)
	if !p.Imported() {
		var err error
		votes, err = s.votes.ListByProposal(ctx, p.ID)
		if err != nil {
			return p, err
		}
		tally = Tally(votes)
	}

	final := Finalize(p, tally, now)
	won, err := s.writer.Finalize(ctx, final)
	if err != nil {
		return p, err
	}
	if !won {
		return s.reload(ctx, p)
	}

	logger.Log.Infow("proposal finalized", "proposal_id", p.ID, "status", final.Status, "for", final.TotalForRaw, "against", final.TotalAgainstRaw)
	s.events.Publish(ctx, models.GovernanceEvent{
		Type:       models.EventProposalFinalized,
		ProposalID: p.ID,
		Payload: map[string]any{
			"status": final.Status,
			"totals": tally,
		},
	})

	if !final.Imported() {
		if err := s.archiver.ArchiveResults(ctx, &final, votes); err != nil {
			logger.Log.Warnw("results archive deferred", "proposal_id", p.ID, "error", err)
		}
	}
	return final, nil
}

func (s *ProposalService) reload(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	stored, err := s.reader.Get(ctx, p.ID)
	if err != nil {
		return p, err
	}
	if stored == nil {
		return p, ErrNotFound
	}
	return *stored, nil
}

// retryArchives re-pins documents of a terminal proposal that are not pinned.
// Pending is retried too, since a pin interrupted mid-flight never settles.
func (s *ProposalService) retryArchives(ctx context.Context, p *models.Proposal) {
	if p.ProposalCIDStatus != models.CIDStatusPinned && p.SignedMessage != nil {
		if err := s.archiver.ArchiveProposal(ctx, p, s.envelope(*p)); err != nil {
			logger.Log.Warnw("proposal archive retry failed", "proposal_id", p.ID, "error", err)
		}
	}

	if p.Imported() || p.Status == models.StatusClosed {
		return
	}
	if p.ResultsCIDStatus == models.CIDStatusPinned {
		return
	}
	votes, err := s.votes.ListByProposal(ctx, p.ID)
	if err != nil {
		logger.Log.Warnw("results archive retry skipped", "proposal_id", p.ID, "error", err)
		return
	}
	if err := s.archiver.ArchiveResults(ctx, p, votes); err != nil {
		logger.Log.Warnw("results archive retry failed", "proposal_id", p.ID, "error", err)
	}
}
