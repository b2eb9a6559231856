package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=update.go -destination=update_mock.go -package=services

const (
	maxUpdateContent     = 10000
	maxUpdateAttachments = 10
)

// ProposalGetter loads a proposal with its lifecycle brought up to date.
type ProposalGetter interface {
	Get(ctx context.Context, id, viewer string) (*models.Proposal, *models.MyVote, error)
}

// ProposalUpdateReader defines read-only operations for proposal updates.
type ProposalUpdateReader interface {
	Get(ctx context.Context, id string) (*models.ProposalUpdate, error)
	ListByProposal(ctx context.Context, proposalID string) ([]models.ProposalUpdate, error)
}

// ProposalUpdateWriter defines write operations for proposal updates.
type ProposalUpdateWriter interface {
	Save(ctx context.Context, u models.ProposalUpdate) error
	Update(ctx context.Context, u models.ProposalUpdate) error
	Delete(ctx context.Context, id string) error
}

// UpdateInput is a new progress note.
type UpdateInput struct {
	Status      models.UpdateStatus
	Content     string
	Attachments []string
}

// UpdateService manages progress notes on passed proposals.
type UpdateService struct {
	proposals ProposalGetter
	reader    ProposalUpdateReader
	writer    ProposalUpdateWriter
	sanitizer *bluemonday.Policy
	now       Clock
}

// NewUpdateService creates a new UpdateService.
func NewUpdateService(proposals ProposalGetter, reader ProposalUpdateReader, writer ProposalUpdateWriter, now Clock) *UpdateService {
	if now == nil {
		now = SystemClock
	}

	sanitizer := bluemonday.UGCPolicy()
	sanitizer.RequireParseableURLs(true)
	sanitizer.AddTargetBlankToFullyQualifiedLinks(true)
	sanitizer.RequireNoFollowOnLinks(true)

	return &UpdateService{
		proposals: proposals,
		reader:    reader,
		writer:    writer,
		sanitizer: sanitizer,
		now:       now,
	}
}

// List returns the updates of proposalID, oldest first.
func (s *UpdateService) List(ctx context.Context, proposalID string) ([]models.ProposalUpdate, error) {
	if _, _, err := s.proposals.Get(ctx, proposalID, ""); err != nil {
		return nil, err
	}
	return s.reader.ListByProposal(ctx, proposalID)
}

// Create posts a new update by author on proposalID.
func (s *UpdateService) Create(ctx context.Context, author, proposalID string, in UpdateInput) (*models.ProposalUpdate, error) {
	if err := s.authorize(ctx, author, proposalID); err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, invalidInput("unknown update status %q", in.Status)
	}
	content, err := s.sanitize(in.Content)
	if err != nil {
		return nil, err
	}
	attachments, err := cleanAttachments(in.Attachments)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := models.ProposalUpdate{
		ID:            uuid.NewString(),
		ProposalID:    proposalID,
		AuthorAddress: author,
		Status:        in.Status,
		Content:       content,
		Attachments:   attachments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.writer.Save(ctx, u); err != nil {
		logger.Log.Errorw("failed to save proposal update", "proposal_id", proposalID, "error", err)
		return nil, err
	}
	return &u, nil
}

// Edit applies patch to update id of author.
func (s *UpdateService) Edit(ctx context.Context, author, id string, patch models.ProposalUpdatePatch) (*models.ProposalUpdate, error) {
	u, err := s.load(ctx, author, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, invalidInput("unknown update status %q", *patch.Status)
		}
		u.Status = *patch.Status
	}
	if patch.Content != nil {
		content, err := s.sanitize(*patch.Content)
		if err != nil {
			return nil, err
		}
		u.Content = content
	}
	if patch.Attachments != nil {
		attachments, err := cleanAttachments(patch.Attachments)
		if err != nil {
			return nil, err
		}
		u.Attachments = attachments
	}
	u.UpdatedAt = s.now()

	if err := s.writer.Update(ctx, *u); err != nil {
		logger.Log.Errorw("failed to update proposal update", "update_id", id, "error", err)
		return nil, err
	}
	return u, nil
}

// Delete removes update id of author.
func (s *UpdateService) Delete(ctx context.Context, author, id string) error {
	if _, err := s.load(ctx, author, id); err != nil {
		return err
	}
	return s.writer.Delete(ctx, id)
}

func (s *UpdateService) load(ctx context.Context, author, id string) (*models.ProposalUpdate, error) {
	u, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if err := s.authorize(ctx, author, u.ProposalID); err != nil {
		return nil, err
	}
	return u, nil
}

// authorize allows only the proposal's author, and only once it passed.
func (s *UpdateService) authorize(ctx context.Context, author, proposalID string) error {
	p, _, err := s.proposals.Get(ctx, proposalID, "")
	if err != nil {
		return err
	}
	if p.AuthorAddress != author {
		return ErrForbidden
	}
	if p.Status != models.StatusPassed {
		return fmt.Errorf("%w: updates are only allowed on passed proposals", ErrInvalidState)
	}
	return nil
}

func (s *UpdateService) sanitize(content string) (string, error) {
	if !utf8.ValidString(content) {
		return "", invalidInput("content contains invalid characters")
	}
	if len(content) > maxUpdateContent {
		return "", invalidInput("content exceeds %d bytes", maxUpdateContent)
	}
	clean := strings.TrimSpace(s.sanitizer.Sanitize(content))
	if clean == "" {
		return "", invalidInput("content is required")
	}
	return clean, nil
}

func cleanAttachments(in []string) ([]string, error) {
	if len(in) > maxUpdateAttachments {
		return nil, invalidInput("at most %d attachments", maxUpdateAttachments)
	}
	out := make([]string, 0, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		u, err := url.Parse(a)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, invalidInput("attachment %q is not an http(s) url", a)
		}
		out = append(out, a)
	}
	return out, nil
}
