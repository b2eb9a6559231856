package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

func TestArchiveService_ArchiveProposal(t *testing.T) {
	ctx := context.Background()
	env := models.ProposalEnvelope{Address: testAddress, Signature: "0xsig", Hash: "0xhash"}

	t.Run("pinned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pinner := NewMockPinner(ctrl)
		writer := NewMockArchiveWriter(ctrl)
		cid := "bafyproposal"

		gomock.InOrder(
			writer.EXPECT().SetProposalArchive(ctx, "p1", (*string)(nil), models.CIDStatusPending).Return(nil),
			pinner.EXPECT().PinJSON(ctx, env).Return(cid, nil),
			writer.EXPECT().SetProposalArchive(ctx, "p1", &cid, models.CIDStatusPinned).Return(nil),
		)

		p := &models.Proposal{ID: "p1"}
		require.NoError(t, NewArchiveService(pinner, writer).ArchiveProposal(ctx, p, env))
		assert.Equal(t, models.CIDStatusPinned, p.ProposalCIDStatus)
		require.NotNil(t, p.ProposalCID)
		assert.Equal(t, cid, *p.ProposalCID)
	})

	t.Run("pin failure recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pinner := NewMockPinner(ctrl)
		writer := NewMockArchiveWriter(ctrl)

		gomock.InOrder(
			writer.EXPECT().SetProposalArchive(ctx, "p1", (*string)(nil), models.CIDStatusPending).Return(nil),
			pinner.EXPECT().PinJSON(ctx, env).Return("", errors.New("503")),
			writer.EXPECT().SetProposalArchive(ctx, "p1", (*string)(nil), models.CIDStatusFailed).Return(nil),
		)

		p := &models.Proposal{ID: "p1"}
		err := NewArchiveService(pinner, writer).ArchiveProposal(ctx, p, env)
		assert.ErrorIs(t, err, ErrArchiveFailure)
		assert.Equal(t, models.CIDStatusFailed, p.ProposalCIDStatus)
		assert.Nil(t, p.ProposalCID)
	})

	t.Run("unrecorded cid marked failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pinner := NewMockPinner(ctrl)
		writer := NewMockArchiveWriter(ctrl)
		cid := "bafyproposal"

		gomock.InOrder(
			writer.EXPECT().SetProposalArchive(ctx, "p1", (*string)(nil), models.CIDStatusPending).Return(nil),
			pinner.EXPECT().PinJSON(ctx, env).Return(cid, nil),
			writer.EXPECT().SetProposalArchive(ctx, "p1", &cid, models.CIDStatusPinned).Return(errors.New("conn reset")),
			writer.EXPECT().SetProposalArchive(ctx, "p1", (*string)(nil), models.CIDStatusFailed).Return(nil),
		)

		p := &models.Proposal{ID: "p1"}
		err := NewArchiveService(pinner, writer).ArchiveProposal(ctx, p, env)
		assert.ErrorIs(t, err, ErrArchiveFailure)
		assert.Equal(t, models.CIDStatusFailed, p.ProposalCIDStatus)
	})
}

func TestArchiveService_ArchiveResults(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinner := NewMockPinner(ctrl)
	writer := NewMockArchiveWriter(ctrl)
	cid := "bafyresults"

	finalizedAt := models.Millis(99)
	p := &models.Proposal{
		ID:              "p1",
		Status:          models.StatusPassed,
		SnapshotBlock:   100,
		SnapshotChainID: 30,
		FinalizedAt:     &finalizedAt,
		TotalForRaw:     "5",
		TotalAgainstRaw: "3",
	}
	votes := []models.Vote{vote("0xb", models.ChoiceAgainst, "3"), vote("0xa", models.ChoiceFor, "5")}

	writer.EXPECT().SetResultsArchive(ctx, "p1", (*string)(nil), models.CIDStatusPending).Return(nil)
	pinner.EXPECT().PinJSON(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v any) (string, error) {
		doc, ok := v.(models.ResultsDocument)
		require.True(t, ok)
		assert.Equal(t, models.ResultsSchema, doc.Schema)
		assert.Equal(t, finalizedAt, doc.FinalizedAt)
		return cid, nil
	})
	writer.EXPECT().SetResultsArchive(ctx, "p1", &cid, models.CIDStatusPinned).Return(nil)

	require.NoError(t, NewArchiveService(pinner, writer).ArchiveResults(ctx, p, votes))
	assert.Equal(t, models.CIDStatusPinned, p.ResultsCIDStatus)
	assert.Equal(t, cid, *p.ResultsCID)
}

func TestBuildResults(t *testing.T) {
	finalizedAt := models.Millis(1234)
	p := models.Proposal{
		ID:                 "p1",
		Status:             models.StatusFailed,
		SnapshotBlock:      7,
		SnapshotChainID:    30,
		FinalizedAt:        &finalizedAt,
		TotalForRaw:        "1",
		TotalAgainstRaw:    "2",
		TokenPowerVotedRaw: "3",
		TotalVoters:        2,
	}
	votes := []models.Vote{
		{VoterAddress: "0xc", Choice: models.ChoiceAgainst, WeightRaw: "2", Signature: "s2", MessageHash: "h2"},
		{VoterAddress: "0xa", Choice: models.ChoiceFor, WeightRaw: "1", Signature: "s1", MessageHash: "h1"},
	}

	doc := BuildResults(p, votes)

	assert.Equal(t, "gw-governance/results@1", doc.Schema)
	assert.Equal(t, "p1", doc.ProposalID)
	assert.Equal(t, uint64(7), doc.SnapshotBlock)
	assert.Equal(t, int64(30), doc.SnapshotChainID)
	assert.Equal(t, finalizedAt, doc.FinalizedAt)
	assert.Equal(t, "FAILED", doc.Status)
	assert.Equal(t, models.TallyOf(p), doc.Totals)
	require.Len(t, doc.Votes, 2)
	assert.Equal(t, "0xa", doc.Votes[0].Voter)
	assert.Equal(t, "0xc", doc.Votes[1].Voter)
	assert.Equal(t, "0xc", votes[0].VoterAddress, "input order is kept")
}
