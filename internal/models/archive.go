package models

// ResultsSchema tags archived result documents.
const ResultsSchema = "gw-governance/results@1"

// TypedDataDocument is the JSON form of an EIP-712 payload.
type TypedDataDocument struct {
	Domain      map[string]any `json:"domain"`
	Types       map[string]any `json:"types"`
	PrimaryType string         `json:"primaryType"`
	Message     map[string]any `json:"message"`
}

// ProposalEnvelope is the archived record of a signed proposal.
type ProposalEnvelope struct {
	Address   string            `json:"address"`
	Signature string            `json:"signature"`
	Hash      string            `json:"hash"`
	Data      TypedDataDocument `json:"data"`
}

// ResultsVote is one ballot inside an archived results document.
type ResultsVote struct {
	Voter       string `json:"voter"`
	Choice      Choice `json:"choice"`
	WeightRaw   string `json:"weightRaw"`
	Signature   string `json:"signature"`
	MessageHash string `json:"messageHash"`
}

// ResultsDocument is the archived record of a finalized proposal.
type ResultsDocument struct {
	Schema          string        `json:"schema"`
	ProposalID      string        `json:"proposalId"`
	SnapshotBlock   uint64        `json:"snapshotBlock"`
	SnapshotChainID int64         `json:"snapshotChainId"`
	FinalizedAt     Millis        `json:"finalizedAt"`
	Status          string        `json:"status"`
	Totals          TallyResult   `json:"totals"`
	Votes           []ResultsVote `json:"votes"`
}
