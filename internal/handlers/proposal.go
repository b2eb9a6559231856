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

//go:generate mockgen -source=proposal.go -destination=proposal_mock.go -package=handlers

// ProposalLister lists proposals.
type ProposalLister interface {
	List(ctx context.Context) ([]models.Proposal, error)
}

// ProposalGetter loads one proposal with the viewer's ballot.
type ProposalGetter interface {
	Get(ctx context.Context, id, viewer string) (*models.Proposal, *models.MyVote, error)
}

// ProposalCreator stores signed proposals.
type ProposalCreator interface {
	Create(ctx context.Context, author string, in services.CreateProposalInput) (*models.Proposal, error)
}

// ProposalDeleter removes proposals.
type ProposalDeleter interface {
	Delete(ctx context.Context, author, id string) error
}

// ProposalResponse is a proposal with the caller's ballot, if any
// swagger:model ProposalResponse
type ProposalResponse struct {
	models.Proposal
	MyVote *models.MyVote `json:"myVote,omitempty"`
}

// ProposalListResponse lists proposals, newest first
// swagger:model ProposalListResponse
type ProposalListResponse struct {
	Proposals []models.Proposal `json:"proposals"`
}

// NewListProposalsHandler returns an HTTP handler listing proposals.
// @Summary List proposals
// @Description All proposals, newest first, with due status transitions applied
// @Tags proposals
// @Produce json
// @Success 200 {object} handlers.ProposalListResponse "Proposals"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /proposals [get]
func NewListProposalsHandler(svc ProposalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposals, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if proposals == nil {
			proposals = []models.Proposal{}
		}
		writeJSON(w, http.StatusOK, ProposalListResponse{Proposals: proposals})
	}
}

// NewGetProposalHandler returns an HTTP handler for one proposal.
// @Summary Get proposal
// @Description Proposal by id; includes myVote when a valid bearer token is sent
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} handlers.ProposalResponse "Proposal"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /proposals/{id} [get]
func NewGetProposalHandler(svc ProposalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := middlewares.GetAddressFromContext(r.Context())

		p, myVote, err := svc.Get(r.Context(), chi.URLParam(r, "id"), viewer)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ProposalResponse{Proposal: *p, MyVote: myVote})
	}
}

// CreateProposalRequest is a signed proposal submission
// swagger:model CreateProposalRequest
type CreateProposalRequest struct {
	// Proposal category
	// required: true
	Category string `json:"category"`

	// Typed-data message the author signed
	// required: true
	Message models.ProposalMessage `json:"message"`

	// EIP-712 signature over message
	// required: true
	Signature string `json:"signature"`
}

// NewCreateProposalHandler returns an HTTP handler creating proposals.
// @Summary Create proposal
// @Description Store a typed-data signed proposal; requires the creation balance
// @Tags proposals
// @Accept json
// @Produce json
// @Param createProposalRequest body handlers.CreateProposalRequest true "Create Proposal Request"
// @Success 201 {object} models.Proposal "Created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or signature"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Insufficient balance or signer mismatch"
// @Failure 503 {object} handlers.ErrorResponse "Voting power unavailable"
// @Router /proposals [post]
// @Security BearerAuth
func NewCreateProposalHandler(svc ProposalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		var req CreateProposalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		p, err := svc.Create(r.Context(), author, services.CreateProposalInput{
			Category:  req.Category,
			Message:   req.Message,
			Signature: req.Signature,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// DeleteResponse confirms a deletion
// swagger:model DeleteResponse
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// NewDeleteProposalHandler returns an HTTP handler deleting proposals.
// @Summary Delete proposal
// @Description Author-only deletion of a proposal that has not reached a final state
// @Tags proposals
// @Param id path string true "Proposal ID"
// @Success 200 {object} handlers.DeleteResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Proposal already final"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /proposals/{id} [delete]
// @Security BearerAuth
func NewDeleteProposalHandler(svc ProposalDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), author, id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteResponse{Message: "Proposal deleted successfully", ID: id})
	}
}
