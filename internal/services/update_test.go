package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

type updateMocks struct {
	proposals *MockProposalGetter
	reader    *MockProposalUpdateReader
	writer    *MockProposalUpdateWriter
}

func newUpdateService(ctrl *gomock.Controller) (*UpdateService, updateMocks) {
	m := updateMocks{
		proposals: NewMockProposalGetter(ctrl),
		reader:    NewMockProposalUpdateReader(ctrl),
		writer:    NewMockProposalUpdateWriter(ctrl),
	}
	return NewUpdateService(m.proposals, m.reader, m.writer, fixedClock(proposalNow)), m
}

func passedProposal() *models.Proposal {
	return &models.Proposal{ID: "p1", AuthorAddress: testAddress, Status: models.StatusPassed}
}

func TestUpdateService_Create(t *testing.T) {
	ctx := context.Background()
	valid := UpdateInput{Status: models.UpdateInProgress, Content: "<p>Milestone one</p>", Attachments: []string{"https://example.org/report.pdf"}}

	tests := []struct {
		name      string
		author    string
		in        UpdateInput
		proposal  *models.Proposal
		getErr    error
		wantErr   error
		wantSaved bool
	}{
		{name: "stored", author: testAddress, in: valid, proposal: passedProposal(), wantSaved: true},
		{name: "proposal missing", author: testAddress, in: valid, getErr: ErrNotFound, wantErr: ErrNotFound},
		{name: "not the author", author: "0x00000000000000000000000000000000000000bb", in: valid, proposal: passedProposal(), wantErr: ErrForbidden},
		{
			name:     "proposal not passed",
			author:   testAddress,
			in:       valid,
			proposal: &models.Proposal{ID: "p1", AuthorAddress: testAddress, Status: models.StatusFailed},
			wantErr:  ErrInvalidState,
		},
		{
			name:     "unknown status",
			author:   testAddress,
			in:       UpdateInput{Status: "Paused", Content: "text"},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "content only markup",
			author:   testAddress,
			in:       UpdateInput{Status: models.UpdatePlanning, Content: "<script>alert(1)</script>"},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "content too long",
			author:   testAddress,
			in:       UpdateInput{Status: models.UpdatePlanning, Content: strings.Repeat("a", maxUpdateContent+1)},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "invalid utf8",
			author:   testAddress,
			in:       UpdateInput{Status: models.UpdatePlanning, Content: "bad \xff"},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "attachment scheme",
			author:   testAddress,
			in:       UpdateInput{Status: models.UpdatePlanning, Content: "text", Attachments: []string{"javascript:alert(1)"}},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "too many attachments",
			author:   testAddress,
			in:       UpdateInput{Status: models.UpdatePlanning, Content: "text", Attachments: make([]string, maxUpdateAttachments+1)},
			proposal: passedProposal(),
			wantErr:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newUpdateService(ctrl)
			m.proposals.EXPECT().Get(ctx, "p1", "").Return(tt.proposal, nil, tt.getErr)
			if tt.wantSaved {
				m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			}

			u, err := svc.Create(ctx, tt.author, "p1", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p1", u.ProposalID)
			assert.Equal(t, testAddress, u.AuthorAddress)
			assert.Equal(t, "<p>Milestone one</p>", u.Content)
			assert.Equal(t, []string{"https://example.org/report.pdf"}, u.Attachments)
			assert.Equal(t, proposalNow, u.CreatedAt)
		})
	}
}

func TestUpdateService_Create_SanitizesLinks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUpdateService(ctrl)
	m.proposals.EXPECT().Get(ctx, "p1", "").Return(passedProposal(), nil, nil)
	m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	u, err := svc.Create(ctx, testAddress, "p1", UpdateInput{
		Status:  models.UpdateStarted,
		Content: `<a href="https://example.org" onclick="steal()">docs</a><script>x()</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, u.Content, "onclick")
	assert.NotContains(t, u.Content, "<script>")
	assert.Contains(t, u.Content, "nofollow")
	assert.Contains(t, u.Content, `target="_blank"`)
}

func TestUpdateService_Edit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUpdateService(ctrl)
	stored := &models.ProposalUpdate{
		ID:            "u1",
		ProposalID:    "p1",
		AuthorAddress: testAddress,
		Status:        models.UpdatePlanning,
		Content:       "old",
		Attachments:   []string{"https://example.org/a"},
		CreatedAt:     1,
		UpdatedAt:     1,
	}
	status := models.UpdateCompleted
	content := "done"

	m.reader.EXPECT().Get(ctx, "u1").Return(stored, nil)
	m.proposals.EXPECT().Get(ctx, "p1", "").Return(passedProposal(), nil, nil)
	m.writer.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	u, err := svc.Edit(ctx, testAddress, "u1", models.ProposalUpdatePatch{Status: &status, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, models.UpdateCompleted, u.Status)
	assert.Equal(t, "done", u.Content)
	assert.Equal(t, []string{"https://example.org/a"}, u.Attachments)
	assert.Equal(t, models.Millis(1), u.CreatedAt)
	assert.Equal(t, proposalNow, u.UpdatedAt)
}

func TestUpdateService_Edit_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUpdateService(ctrl)
	m.reader.EXPECT().Get(ctx, "u1").Return(nil, nil)

	_, err := svc.Edit(ctx, testAddress, "u1", models.ProposalUpdatePatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateService_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &models.ProposalUpdate{ID: "u1", ProposalID: "p1", AuthorAddress: testAddress}

	t.Run("author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUpdateService(ctrl)
		m.reader.EXPECT().Get(ctx, "u1").Return(stored, nil)
		m.proposals.EXPECT().Get(ctx, "p1", "").Return(passedProposal(), nil, nil)
		m.writer.EXPECT().Delete(ctx, "u1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, testAddress, "u1"))
	})

	t.Run("stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUpdateService(ctrl)
		m.reader.EXPECT().Get(ctx, "u1").Return(stored, nil)
		m.proposals.EXPECT().Get(ctx, "p1", "").Return(passedProposal(), nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "0x00000000000000000000000000000000000000bb", "u1"), ErrForbidden)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUpdateService(ctrl)
		storeErr := errors.New("db down")
		m.reader.EXPECT().Get(ctx, "u1").Return(nil, storeErr)

		assert.ErrorIs(t, svc.Delete(ctx, testAddress, "u1"), storeErr)
	})
}

func TestUpdateService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUpdateService(ctrl)
	want := []models.ProposalUpdate{{ID: "u1"}, {ID: "u2"}}
	m.proposals.EXPECT().Get(ctx, "p1", "").Return(passedProposal(), nil, nil)
	m.reader.EXPECT().ListByProposal(ctx, "p1").Return(want, nil)

	got, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
