package models

// Governance event types published to the audit stream.
const (
	EventProposalCreated   = "proposal_created"
	EventVoteCast          = "vote_cast"
	EventProposalFinalized = "proposal_finalized"
)

// GovernanceEvent is an audit record of a state-changing protocol action.
type GovernanceEvent struct {
	EventID    string         `json:"event_id"`          // Unique identifier of the event
	Type       string         `json:"type"`              // One of the Event* constants
	ProposalID string         `json:"proposal_id"`       // Affected proposal
	Actor      string         `json:"actor,omitempty"`   // Address that triggered the event, if any
	Timestamp  Millis         `json:"timestamp"`         // Event time
	Payload    map[string]any `json:"payload,omitempty"` // Type-specific details
}
