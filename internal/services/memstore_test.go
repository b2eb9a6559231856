package services

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

// memDB backs the in-memory repositories used by scenario tests.
type memDB struct {
	mu        sync.Mutex
	proposals map[string]models.Proposal
	votes     map[string]map[string]models.Vote
	saves     int
	finalizes int
}

func newMemDB() *memDB {
	return &memDB{
		proposals: make(map[string]models.Proposal),
		votes:     make(map[string]map[string]models.Vote),
	}
}

type memProposals struct{ db *memDB }

func (m memProposals) Get(_ context.Context, id string) (*models.Proposal, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p, ok := m.db.proposals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m memProposals) List(_ context.Context) ([]models.Proposal, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := make([]models.Proposal, 0, len(m.db.proposals))
	for _, p := range m.db.proposals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m memProposals) Save(_ context.Context, p models.Proposal) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.saves++
	m.db.proposals[p.ID] = p
	return nil
}

func (m memProposals) UpdateTotals(_ context.Context, id string, t models.TallyResult) (bool, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p, ok := m.db.proposals[id]
	if !ok || p.Status.Terminal() {
		return false, nil
	}
	p.TotalForRaw = t.TotalForRaw
	p.TotalAgainstRaw = t.TotalAgainstRaw
	p.TokenPowerVotedRaw = t.TokenPowerVotedRaw
	p.TotalVoters = t.TotalVoters
	m.db.proposals[id] = p
	return true, nil
}

func (m memProposals) Promote(_ context.Context, id string) (bool, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p := m.db.proposals[id]
	if p.Status != models.StatusUpcoming {
		return false, nil
	}
	p.Status = models.StatusActive
	m.db.proposals[id] = p
	return true, nil
}

func (m memProposals) Finalize(_ context.Context, final models.Proposal) (bool, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p := m.db.proposals[final.ID]
	if p.Status.Terminal() {
		return false, nil
	}
	m.db.finalizes++
	p.Status = final.Status
	p.FinalizedAt = final.FinalizedAt
	p.TotalForRaw = final.TotalForRaw
	p.TotalAgainstRaw = final.TotalAgainstRaw
	p.TokenPowerVotedRaw = final.TokenPowerVotedRaw
	p.TotalVoters = final.TotalVoters
	m.db.proposals[final.ID] = p
	return true, nil
}

func (m memProposals) Delete(_ context.Context, id string) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	delete(m.db.proposals, id)
	delete(m.db.votes, id)
	return nil
}

func (m memProposals) SetProposalArchive(_ context.Context, id string, cid *string, status models.CIDStatus) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p := m.db.proposals[id]
	if cid != nil {
		p.ProposalCID = cid
	}
	p.ProposalCIDStatus = status
	m.db.proposals[id] = p
	return nil
}

func (m memProposals) SetResultsArchive(_ context.Context, id string, cid *string, status models.CIDStatus) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p := m.db.proposals[id]
	if cid != nil {
		p.ResultsCID = cid
	}
	p.ResultsCIDStatus = status
	m.db.proposals[id] = p
	return nil
}

type memVotes struct{ db *memDB }

func (m memVotes) Get(_ context.Context, proposalID, voter string) (*models.Vote, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	v, ok := m.db.votes[proposalID][voter]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m memVotes) ListByProposal(_ context.Context, proposalID string) ([]models.Vote, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := make([]models.Vote, 0, len(m.db.votes[proposalID]))
	for _, v := range m.db.votes[proposalID] {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VoterAddress < out[j].VoterAddress })
	return out, nil
}

func (m memVotes) Upsert(_ context.Context, v models.Vote) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	byVoter, ok := m.db.votes[v.ProposalID]
	if !ok {
		byVoter = make(map[string]models.Vote)
		m.db.votes[v.ProposalID] = byVoter
	}
	if prev, ok := byVoter[v.VoterAddress]; ok {
		v.CreatedAt = prev.CreatedAt
	}
	byVoter[v.VoterAddress] = v
	return nil
}

// fakeOracle serves fixed balances regardless of block.
// onBalance, when set, runs once per lookup before the balance is returned.
type fakeOracle struct {
	mu        sync.Mutex
	head      uint64
	balances  map[string]string
	tags      []string
	err       error
	onBalance func()
}

func (o *fakeOracle) BalanceAt(_ context.Context, address, blockTag string) (string, error) {
	o.mu.Lock()
	o.tags = append(o.tags, blockTag)
	hook := o.onBalance
	err := o.err
	b, ok := o.balances[address]
	o.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return "", err
	}
	if ok {
		return b, nil
	}
	return "0", nil
}

func (o *fakeOracle) CurrentBlock(_ context.Context) (uint64, error) {
	if o.err != nil {
		return 0, o.err
	}
	return o.head, nil
}

// fakePinner hands out sequential CIDs, or fails when err is set.
type fakePinner struct {
	mu    sync.Mutex
	docs  []any
	err   error
	calls int
}

func (p *fakePinner) PinJSON(_ context.Context, v any) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	p.docs = append(p.docs, v)
	return fmt.Sprintf("bafy%d", len(p.docs)), nil
}

// recordingPublisher keeps published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.GovernanceEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt models.GovernanceEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type wallet struct {
	key     *ecdsa.PrivateKey
	address string
}

func newWallet(t *testing.T) wallet {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return wallet{key: key, address: strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())}
}
