package services

import (
	"github.com/sbilibin2017/gw-governance/internal/models"
)

// Transition is the time-driven change a proposal is due for.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionPromote
	TransitionFinalize
)

func (t Transition) String() string {
	switch t {
	case TransitionPromote:
		return "promote"
	case TransitionFinalize:
		return "finalize"
	}
	return "none"
}

// EvaluateTransitions returns the transition p is due for at now, and p with
// any status change that needs no tally applied. Finalization still needs
// Finalize with the proposal's tally.
func EvaluateTransitions(p models.Proposal, now models.Millis) (models.Proposal, Transition) {
	if p.Status.Terminal() {
		return p, TransitionNone
	}
	if now >= p.EndTime {
		return p, TransitionFinalize
	}
	if p.Status == models.StatusUpcoming && now >= p.StartTime {
		p.Status = models.StatusActive
		return p, TransitionPromote
	}
	return p, TransitionNone
}

// Finalize settles p with tally t at now. The proposal passes only when FOR
// strictly outweighs AGAINST.
func Finalize(p models.Proposal, t models.TallyResult, now models.Millis) models.Proposal {
	p.TotalForRaw = rawOrZero(t.TotalForRaw)
	p.TotalAgainstRaw = rawOrZero(t.TotalAgainstRaw)
	p.TokenPowerVotedRaw = rawOrZero(t.TokenPowerVotedRaw)
	p.TotalVoters = t.TotalVoters

	forVotes, errFor := parseRaw(p.TotalForRaw)
	againstVotes, errAgainst := parseRaw(p.TotalAgainstRaw)
	if errFor == nil && errAgainst == nil && forVotes.Cmp(againstVotes) > 0 {
		p.Status = models.StatusPassed
	} else {
		p.Status = models.StatusFailed
	}

	at := now
	p.FinalizedAt = &at
	return p
}

func rawOrZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
