package services

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

func vote(voter string, choice models.Choice, weight string) models.Vote {
	return models.Vote{ProposalID: "p1", VoterAddress: voter, Choice: choice, WeightRaw: weight}
}

func TestTally(t *testing.T) {
	tests := []struct {
		name  string
		votes []models.Vote
		want  models.TallyResult
	}{
		{
			name:  "no votes",
			votes: nil,
			want:  models.TallyResult{TotalForRaw: "0", TotalAgainstRaw: "0", TokenPowerVotedRaw: "0"},
		},
		{
			name: "for and against",
			votes: []models.Vote{
				vote("0xa", models.ChoiceFor, "5000000000000000000"),
				vote("0xb", models.ChoiceAgainst, "3000000000000000000"),
			},
			want: models.TallyResult{
				TotalForRaw:        "5000000000000000000",
				TotalAgainstRaw:    "3000000000000000000",
				TotalVoters:        2,
				TokenPowerVotedRaw: "8000000000000000000",
			},
		},
		{
			name: "duplicate voter counted once, last wins",
			votes: []models.Vote{
				vote("0xa", models.ChoiceFor, "10"),
				vote("0xa", models.ChoiceAgainst, "10"),
			},
			want: models.TallyResult{TotalForRaw: "0", TotalAgainstRaw: "10", TotalVoters: 1, TokenPowerVotedRaw: "10"},
		},
		{
			name: "invalid weight skipped",
			votes: []models.Vote{
				vote("0xa", models.ChoiceFor, "not-a-number"),
				vote("0xb", models.ChoiceFor, "4"),
			},
			want: models.TallyResult{TotalForRaw: "4", TotalAgainstRaw: "0", TotalVoters: 2, TokenPowerVotedRaw: "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tally(tt.votes))
		})
	}
}

func TestTally_IdempotentAndBalanced(t *testing.T) {
	votes := []models.Vote{
		vote("0x1", models.ChoiceFor, "123456789012345678901234567890"),
		vote("0x2", models.ChoiceAgainst, "98765432109876543210"),
		vote("0x3", models.ChoiceFor, "1"),
	}

	first := Tally(votes)
	second := Tally(votes)
	assert.Equal(t, first, second)

	forVotes, _ := new(big.Int).SetString(first.TotalForRaw, 10)
	against, _ := new(big.Int).SetString(first.TotalAgainstRaw, 10)
	power, _ := new(big.Int).SetString(first.TokenPowerVotedRaw, 10)
	assert.Zero(t, new(big.Int).Add(forVotes, against).Cmp(power))
}

func TestTallyService_Recompute(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockVoteReader(ctrl)
	svc := NewTallyService(reader)

	reader.EXPECT().ListByProposal(ctx, "p1").Return([]models.Vote{
		vote("0xa", models.ChoiceFor, "2"),
	}, nil)
	got, err := svc.Recompute(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.TotalForRaw)
	assert.Equal(t, 1, got.TotalVoters)

	dbErr := errors.New("db down")
	reader.EXPECT().ListByProposal(ctx, "p2").Return(nil, dbErr)
	_, err = svc.Recompute(ctx, "p2")
	assert.ErrorIs(t, err, dbErr)
}
