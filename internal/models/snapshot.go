package models

// SnapshotProposal is a proposal as returned by the off-chain poll aggregator.
type SnapshotProposal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Choices     []string  `json:"choices"`
	Start       int64     `json:"start"`
	End         int64     `json:"end"`
	State       string    `json:"state"`
	Scores      []float64 `json:"scores"`
	ScoresTotal float64   `json:"scores_total"`
	Votes       int       `json:"votes"`
	Author      string    `json:"author"`
	Created     int64     `json:"created"`
	Snapshot    string    `json:"snapshot"`
}

// ImportResult reports what happened to one imported proposal.
type ImportResult struct {
	Title  string `json:"title"`
	Status string `json:"status"` // "imported" or "updated"
	ID     string `json:"id"`
}
