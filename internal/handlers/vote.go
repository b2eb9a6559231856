package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-governance/internal/middlewares"
	"github.com/sbilibin2017/gw-governance/internal/models"
	"github.com/sbilibin2017/gw-governance/internal/services"
)

//go:generate mockgen -source=vote.go -destination=vote_mock.go -package=handlers

// VoteCaster records ballots.
type VoteCaster interface {
	Cast(ctx context.Context, voter, proposalID string, in services.CastVoteInput) (*models.Vote, *models.Proposal, error)
}

// VoteRequest is a signed ballot
// swagger:model VoteRequest
type VoteRequest struct {
	// FOR or AGAINST
	// required: true
	// default: FOR
	Choice models.Choice `json:"choice"`

	// EIP-712 signature over the vote message
	// required: true
	Signature string `json:"signature"`

	// Signed timestamp, seconds
	// required: true
	Timestamp int64 `json:"timestamp"`
}

// VoteResponse confirms a recorded ballot
// swagger:model VoteResponse
type VoteResponse struct {
	Message  string          `json:"message"`
	MyVote   models.MyVote   `json:"myVote"`
	Proposal models.Proposal `json:"proposal"`
}

// NewCastVoteHandler returns an HTTP handler recording votes.
// @Summary Vote on proposal
// @Description Record or replace the caller's ballot, weighted by balance at the snapshot block
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param voteRequest body handlers.VoteRequest true "Vote Request"
// @Success 200 {object} handlers.VoteResponse "Vote recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, signature or voting window"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "No voting power or signer mismatch"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 503 {object} handlers.ErrorResponse "Voting power unavailable"
// @Router /proposals/{id}/votes [post]
// @Security BearerAuth
func NewCastVoteHandler(svc VoteCaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voter, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		var req VoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		vote, p, err := svc.Cast(r.Context(), voter, chi.URLParam(r, "id"), services.CastVoteInput{
			Choice:    req.Choice,
			Signature: req.Signature,
			Timestamp: req.Timestamp,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VoteResponse{
			Message:  "Vote recorded",
			MyVote:   models.MyVote{Choice: vote.Choice, WeightRaw: vote.WeightRaw},
			Proposal: *p,
		})
	}
}
