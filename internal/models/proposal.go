package models

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

// Proposal lifecycle states.
const (
	StatusUpcoming ProposalStatus = "UPCOMING"
	StatusActive   ProposalStatus = "ACTIVE"
	StatusClosed   ProposalStatus = "CLOSED"
	StatusPassed   ProposalStatus = "PASSED"
	StatusFailed   ProposalStatus = "FAILED"
)

// Terminal reports whether no further automatic transition can happen.
func (s ProposalStatus) Terminal() bool {
	return s == StatusClosed || s == StatusPassed || s == StatusFailed
}

// CIDStatus tracks the pinning state of an archived document.
type CIDStatus string

// Archive pin states. The zero value means nothing was archived yet.
const (
	CIDStatusNone    CIDStatus = ""
	CIDStatusPending CIDStatus = "pending"
	CIDStatusPinned  CIDStatus = "pinned"
	CIDStatusFailed  CIDStatus = "failed"
)

// Strategies recorded on proposals.
const (
	StrategyERC20AtBlock   = "erc20-balance@block"
	StrategySnapshotImport = "snapshot-import"
)

// Proposal is a governance proposal and its running tally.
type Proposal struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Category           string           `json:"category"`
	Description        string           `json:"description"`
	AuthorAddress      string           `json:"authorAddress"`
	CreatedAt          Millis           `json:"createdAt"`
	StartTime          Millis           `json:"startTime"`
	EndTime            Millis           `json:"endTime"`
	Status             ProposalStatus   `json:"status"`
	SnapshotBlock      uint64           `json:"snapshotBlock"` // Fixed at creation, 0 only for legacy records
	SnapshotChainID    int64            `json:"snapshotChainId"`
	Strategy           string           `json:"strategy"`
	Choices            []string         `json:"choices"`
	TotalForRaw        string           `json:"totalForRaw"`
	TotalAgainstRaw    string           `json:"totalAgainstRaw"`
	TokenPowerVotedRaw string           `json:"tokenPowerVotedRaw"`
	TotalVoters        int              `json:"totalVoters"`
	FinalizedAt        *Millis          `json:"finalizedAt"`
	ProposalCID        *string          `json:"proposalCid"`
	ProposalCIDStatus  CIDStatus        `json:"proposalCidStatus"`
	ResultsCID         *string          `json:"resultsCid"`
	ResultsCIDStatus   CIDStatus        `json:"resultsCidStatus"`
	Signature          string           `json:"signature"`
	MessageHash        string           `json:"messageHash"`
	Timestamp          int64            `json:"timestamp"`         // Signed message timestamp, seconds
	SignedMessage      *ProposalMessage `json:"message,omitempty"` // Typed-data payload the author signed
	SnapshotID         *string          `json:"snapshotId,omitempty"`
}

// Imported reports whether the proposal came from the external poll import.
func (p Proposal) Imported() bool {
	return p.SnapshotID != nil && *p.SnapshotID != ""
}

// AcceptsVotes reports whether a vote may be recorded at now.
func (p Proposal) AcceptsVotes(now Millis) bool {
	if p.Status.Terminal() {
		return false
	}
	return p.StartTime <= now && now < p.EndTime
}

// SnapshotBlockTag returns the block tag voting power is evaluated at.
// Proposals created before snapshot pinning carry block 0 and fall back to "latest".
func (p Proposal) SnapshotBlockTag() string {
	if p.SnapshotBlock == 0 {
		return BlockTagLatest
	}
	return formatUint(p.SnapshotBlock)
}
