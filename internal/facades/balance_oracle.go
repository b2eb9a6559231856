package facades

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

// ErrOracleUnavailable is returned when a balance or block number cannot be read from the chain.
var ErrOracleUnavailable = errors.New("balance oracle unavailable")

const erc20BalanceOfABI = `[{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

// EVMClient is the subset of the Ethereum JSON-RPC used by the oracle.
type EVMClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// DialEVMClient connects to the JSON-RPC endpoint of the token chain.
func DialEVMClient(ctx context.Context, endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("rpc endpoint required")
	}
	return ethclient.DialContext(ctx, trimmed)
}

// BalanceOracle reads ERC-20 balances of the governance token.
type BalanceOracle struct {
	client EVMClient
	token  common.Address
	abi    abi.ABI
}

// NewBalanceOracle creates an oracle for the token contract at tokenAddress.
func NewBalanceOracle(client EVMClient, tokenAddress string) (*BalanceOracle, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, fmt.Errorf("invalid token address %q", tokenAddress)
	}
	parsed, err := abi.JSON(strings.NewReader(erc20BalanceOfABI))
	if err != nil {
		return nil, err
	}
	return &BalanceOracle{
		client: client,
		token:  common.HexToAddress(tokenAddress),
		abi:    parsed,
	}, nil
}

// CurrentBlock returns the chain head block number.
func (o *BalanceOracle) CurrentBlock(ctx context.Context) (uint64, error) {
	block, err := o.client.BlockNumber(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch block number", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	return block, nil
}

// BalanceAt returns the raw token balance of address at blockTag as a decimal string.
// blockTag is a decimal block number or "latest".
func (o *BalanceOracle) BalanceAt(ctx context.Context, address, blockTag string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: invalid address %q", ErrOracleUnavailable, address)
	}
	block, err := parseBlockTag(blockTag)
	if err != nil {
		return "", err
	}

	data, err := o.abi.Pack("balanceOf", common.HexToAddress(address))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	out, err := o.client.CallContract(ctx, ethereum.CallMsg{To: &o.token, Data: data}, block)
	if err != nil {
		logger.Log.Errorw("balanceOf call failed", "address", address, "block", blockTag, "error", err)
		return "", fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	values, err := o.abi.Unpack("balanceOf", out)
	if err != nil || len(values) != 1 {
		logger.Log.Errorw("balanceOf decode failed", "address", address, "block", blockTag, "error", err)
		return "", fmt.Errorf("%w: undecodable balanceOf result", ErrOracleUnavailable)
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return "", fmt.Errorf("%w: unexpected balanceOf type %T", ErrOracleUnavailable, values[0])
	}

	return balance.String(), nil
}

func parseBlockTag(tag string) (*big.Int, error) {
	if tag == "" || tag == models.BlockTagLatest {
		return nil, nil
	}
	block, ok := new(big.Int).SetString(tag, 10)
	if !ok || block.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid block tag %q", ErrOracleUnavailable, tag)
	}
	return block, nil
}
