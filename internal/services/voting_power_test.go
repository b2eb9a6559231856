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

func TestVotingPowerService_BalanceAt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		tag     string
		setup   func(o *MockBalanceOracle, c *MockBalanceCache)
		want    string
		wantErr error
	}{
		{
			name: "cache hit",
			tag:  "100",
			setup: func(o *MockBalanceOracle, c *MockBalanceCache) {
				c.EXPECT().Get(ctx, testAddress, uint64(100)).Return("42", true, nil)
			},
			want: "42",
		},
		{
			name: "cache miss fills cache",
			tag:  "100",
			setup: func(o *MockBalanceOracle, c *MockBalanceCache) {
				c.EXPECT().Get(ctx, testAddress, uint64(100)).Return("", false, nil)
				o.EXPECT().BalanceAt(ctx, testAddress, "100").Return("7", nil)
				c.EXPECT().Set(ctx, testAddress, uint64(100), "7").Return(nil)
			},
			want: "7",
		},
		{
			name: "cache errors are bypassed",
			tag:  "100",
			setup: func(o *MockBalanceOracle, c *MockBalanceCache) {
				c.EXPECT().Get(ctx, testAddress, uint64(100)).Return("", false, errors.New("redis down"))
				o.EXPECT().BalanceAt(ctx, testAddress, "100").Return("7", nil)
				c.EXPECT().Set(ctx, testAddress, uint64(100), "7").Return(errors.New("redis down"))
			},
			want: "7",
		},
		{
			name: "latest is never cached",
			tag:  models.BlockTagLatest,
			setup: func(o *MockBalanceOracle, c *MockBalanceCache) {
				o.EXPECT().BalanceAt(ctx, testAddress, models.BlockTagLatest).Return("9", nil)
			},
			want: "9",
		},
		{
			name: "oracle failure is not zero",
			tag:  "100",
			setup: func(o *MockBalanceOracle, c *MockBalanceCache) {
				c.EXPECT().Get(ctx, testAddress, uint64(100)).Return("", false, nil)
				o.EXPECT().BalanceAt(ctx, testAddress, "100").Return("", ErrOracleUnavailable)
			},
			wantErr: ErrOracleUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			oracle := NewMockBalanceOracle(ctrl)
			cache := NewMockBalanceCache(ctrl)
			tt.setup(oracle, cache)

			svc := NewVotingPowerService(oracle, cache)
			got, err := svc.BalanceAt(ctx, testAddress, tt.tag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVotingPowerService_NoCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := NewMockBalanceOracle(ctrl)
	oracle.EXPECT().BalanceAt(ctx, testAddress, "5").Return("1", nil)
	oracle.EXPECT().CurrentBlock(ctx).Return(uint64(12), nil)

	svc := NewVotingPowerService(oracle, nil)
	got, err := svc.BalanceAt(ctx, testAddress, "5")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	head, err := svc.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), head)
}
