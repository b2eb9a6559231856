package models

// TallyResult holds the aggregate totals of a proposal's votes.
type TallyResult struct {
	TotalForRaw        string `json:"totalForRaw"`
	TotalAgainstRaw    string `json:"totalAgainstRaw"`
	TotalVoters        int    `json:"totalVoters"`
	TokenPowerVotedRaw string `json:"tokenPowerVotedRaw"`
}

// TallyOf extracts the stored totals of p.
func TallyOf(p Proposal) TallyResult {
	return TallyResult{
		TotalForRaw:        p.TotalForRaw,
		TotalAgainstRaw:    p.TotalAgainstRaw,
		TotalVoters:        p.TotalVoters,
		TokenPowerVotedRaw: p.TokenPowerVotedRaw,
	}
}
