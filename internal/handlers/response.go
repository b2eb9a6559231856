package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`

	// Details for balance failures
	Message string `json:"message,omitempty"`

	// Caller's balance, human-scaled, for balance failures
	CurrentBalance string `json:"currentBalance,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// writeError maps a service error onto its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	var balanceErr *services.BalanceError

	switch {
	case errors.As(err, &balanceErr):
		writeJSON(w, http.StatusForbidden, ErrorResponse{
			Error:          "Insufficient balance",
			Message:        fmt.Sprintf("At least %s tokens are required", balanceErr.Required),
			CurrentBalance: balanceErr.Current,
		})
	case errors.Is(err, services.ErrInsufficientBalance):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Insufficient balance", Message: err.Error()})
	case errors.Is(err, services.ErrInvalidSignature):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid signature"})
	case errors.Is(err, services.ErrSignerMismatch):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Signature does not match address"})
	case errors.Is(err, services.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Username already taken"})
	case errors.Is(err, services.ErrOracleUnavailable):
		logger.Log.Errorw("voting power unavailable", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Voting power unavailable, try again later"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
