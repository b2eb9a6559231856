package models

// VoteMessage is the typed-data payload a voter signs.
type VoteMessage struct {
	ProposalID    string `json:"proposalId"`
	Voter         string `json:"voter"`
	Choice        Choice `json:"choice"`
	SnapshotBlock uint64 `json:"snapshotBlock"`
	Timestamp     int64  `json:"timestamp"` // Seconds
}

// ProposalMessage is the typed-data payload an author signs, shaped after
// off-chain poll proposals.
type ProposalMessage struct {
	From       string   `json:"from"`
	Space      string   `json:"space"`
	Timestamp  int64    `json:"timestamp"`
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Discussion string   `json:"discussion"`
	Choices    []string `json:"choices"`
	Start      int64    `json:"start"`    // Seconds, 0 means "now"
	End        int64    `json:"end"`      // Seconds, 0 means default duration
	Snapshot   uint64   `json:"snapshot"` // Client-observed block, informational
	Plugins    string   `json:"plugins"`
	App        string   `json:"app"`
}
