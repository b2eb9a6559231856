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

//go:generate mockgen -source=proposal_update.go -destination=proposal_update_mock.go -package=handlers

// UpdateManager manages progress notes on proposals.
type UpdateManager interface {
	List(ctx context.Context, proposalID string) ([]models.ProposalUpdate, error)
	Create(ctx context.Context, author, proposalID string, in services.UpdateInput) (*models.ProposalUpdate, error)
	Edit(ctx context.Context, author, id string, patch models.ProposalUpdatePatch) (*models.ProposalUpdate, error)
	Delete(ctx context.Context, author, id string) error
}

// UpdateListResponse lists the updates of a proposal
// swagger:model UpdateListResponse
type UpdateListResponse struct {
	Updates []models.ProposalUpdate `json:"updates"`
}

// CreateUpdateRequest is a new progress note
// swagger:model CreateUpdateRequest
type CreateUpdateRequest struct {
	// One of Planning, In Progress, Delayed, Completed, Started
	// required: true
	Status models.UpdateStatus `json:"status"`

	// Note body; basic HTML is kept, everything else stripped
	// required: true
	Content string `json:"content"`

	// http(s) links
	Attachments []string `json:"attachments"`
}

// EditUpdateRequest carries the fields to change
// swagger:model EditUpdateRequest
type EditUpdateRequest struct {
	Status      *models.UpdateStatus `json:"status,omitempty"`
	Content     *string              `json:"content,omitempty"`
	Attachments []string             `json:"attachments,omitempty"`
}

// NewListUpdatesHandler returns an HTTP handler listing proposal updates.
// @Summary List proposal updates
// @Tags updates
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} handlers.UpdateListResponse "Updates"
// @Failure 404 {object} handlers.ErrorResponse "Proposal not found"
// @Router /proposals/{id}/updates [get]
func NewListUpdatesHandler(svc UpdateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updates, err := svc.List(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if updates == nil {
			updates = []models.ProposalUpdate{}
		}
		writeJSON(w, http.StatusOK, UpdateListResponse{Updates: updates})
	}
}

// NewCreateUpdateHandler returns an HTTP handler posting proposal updates.
// @Summary Add proposal update
// @Description Author-only, on passed proposals
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param createUpdateRequest body handlers.CreateUpdateRequest true "Create Update Request"
// @Success 201 {object} models.ProposalUpdate "Created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or proposal not passed"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Proposal not found"
// @Router /proposals/{id}/updates [post]
// @Security BearerAuth
func NewCreateUpdateHandler(svc UpdateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		var req CreateUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		u, err := svc.Create(r.Context(), author, chi.URLParam(r, "id"), services.UpdateInput{
			Status:      req.Status,
			Content:     req.Content,
			Attachments: req.Attachments,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	}
}

// NewEditUpdateHandler returns an HTTP handler editing proposal updates.
// @Summary Edit proposal update
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Update ID"
// @Param editUpdateRequest body handlers.EditUpdateRequest true "Edit Update Request"
// @Success 200 {object} models.ProposalUpdate "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /updates/{id} [put]
// @Security BearerAuth
func NewEditUpdateHandler(svc UpdateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		var req EditUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		u, err := svc.Edit(r.Context(), author, chi.URLParam(r, "id"), models.ProposalUpdatePatch{
			Status:      req.Status,
			Content:     req.Content,
			Attachments: req.Attachments,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// NewDeleteUpdateHandler returns an HTTP handler deleting proposal updates.
// @Summary Delete proposal update
// @Tags updates
// @Param id path string true "Update ID"
// @Success 200 {object} handlers.DeleteResponse "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /updates/{id} [delete]
// @Security BearerAuth
func NewDeleteUpdateHandler(svc UpdateManager) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, DeleteResponse{Message: "Update deleted successfully", ID: id})
	}
}
