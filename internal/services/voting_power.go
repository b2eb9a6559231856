package services

import (
	"context"
	"strconv"

	"github.com/sbilibin2017/gw-governance/internal/logger"
)

//go:generate mockgen -source=voting_power.go -destination=voting_power_mock.go -package=services

// BalanceOracle reads token balances from the chain.
type BalanceOracle interface {
	BalanceAt(ctx context.Context, address, blockTag string) (string, error)
	CurrentBlock(ctx context.Context) (uint64, error)
}

// BalanceCache stores balances at fixed blocks.
type BalanceCache interface {
	Get(ctx context.Context, address string, block uint64) (string, bool, error)
	Set(ctx context.Context, address string, block uint64, balance string) error
}

// VotingPowerService resolves voting power, caching balances at historical blocks.
type VotingPowerService struct {
	oracle BalanceOracle
	cache  BalanceCache
}

// NewVotingPowerService creates a VotingPowerService. cache may be nil.
func NewVotingPowerService(oracle BalanceOracle, cache BalanceCache) *VotingPowerService {
	return &VotingPowerService{oracle: oracle, cache: cache}
}

// BalanceAt returns the raw balance of address at blockTag. Balances at a
// numeric block never change and are served from the cache when possible.
func (s *VotingPowerService) BalanceAt(ctx context.Context, address, blockTag string) (string, error) {
	block, err := strconv.ParseUint(blockTag, 10, 64)
	cacheable := err == nil && s.cache != nil

	if cacheable {
		balance, ok, err := s.cache.Get(ctx, address, block)
		if err != nil {
			logger.Log.Warnw("balance cache read failed", "address", address, "block", block, "error", err)
		} else if ok {
			return balance, nil
		}
	}

	balance, err := s.oracle.BalanceAt(ctx, address, blockTag)
	if err != nil {
		return "", err
	}

	if cacheable {
		if err := s.cache.Set(ctx, address, block, balance); err != nil {
			logger.Log.Warnw("balance cache write failed", "address", address, "block", block, "error", err)
		}
	}
	return balance, nil
}

// CurrentBlock returns the chain head.
func (s *VotingPowerService) CurrentBlock(ctx context.Context) (uint64, error) {
	return s.oracle.CurrentBlock(ctx)
}
