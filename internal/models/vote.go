package models

// Choice is the direction of a vote.
type Choice string

// Supported vote choices.
const (
	ChoiceFor     Choice = "FOR"
	ChoiceAgainst Choice = "AGAINST"
)

// Valid reports whether c is a supported choice.
func (c Choice) Valid() bool {
	return c == ChoiceFor || c == ChoiceAgainst
}

// Vote is a single voter's ballot on a proposal. At most one exists per
// (ProposalID, VoterAddress); resubmission replaces it and keeps CreatedAt.
type Vote struct {
	ProposalID    string `json:"proposalId"`
	VoterAddress  string `json:"voterAddress"`
	Choice        Choice `json:"choice"`
	WeightRaw     string `json:"weightRaw"`     // Balance at the proposal snapshot block, frozen at vote time
	Signature     string `json:"signature"`     // EIP-712 signature over the vote message
	MessageHash   string `json:"messageHash"`   // EIP-712 digest of the vote message
	SnapshotBlock uint64 `json:"snapshotBlock"` // Copied from the proposal
	Timestamp     int64  `json:"timestamp"`     // Signed message timestamp, seconds
	CreatedAt     Millis `json:"createdAt"`
	UpdatedAt     Millis `json:"updatedAt"`
}

// MyVote is the caller's own ballot as shown next to a proposal.
type MyVote struct {
	Choice    Choice `json:"choice"`
	WeightRaw string `json:"weightRaw"`
}
