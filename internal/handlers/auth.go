package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-governance/internal/middlewares"
	"github.com/sbilibin2017/gw-governance/internal/models"
	"github.com/sbilibin2017/gw-governance/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// NonceRequester issues login challenges.
type NonceRequester interface {
	RequestNonce(ctx context.Context, address string) (string, string, error)
}

// SignatureVerifier exchanges a signed challenge for a session token.
type SignatureVerifier interface {
	Verify(ctx context.Context, in services.VerifyInput) (string, string, error)
}

// UsernameChecker reports username availability.
type UsernameChecker interface {
	CheckUsername(ctx context.Context, username string) (bool, string, error)
}

// ProfileReader loads the caller's profile.
type ProfileReader interface {
	Profile(ctx context.Context, address string) (*models.User, error)
}

// NonceRequest represents the JSON body for a login challenge
// swagger:model NonceRequest
type NonceRequest struct {
	// Wallet address
	// required: true
	// default: 0x0000000000000000000000000000000000000001
	Address string `json:"address"`
}

// NonceResponse carries the challenge to sign
// swagger:model NonceResponse
type NonceResponse struct {
	// Random single-use nonce
	Nonce string `json:"nonce"`

	// Exact message the wallet must sign
	Message string `json:"message"`
}

// NewRequestNonceHandler returns an HTTP handler issuing login challenges.
// @Summary Request login nonce
// @Description Issue a single-use nonce and the message to sign with the wallet
// @Tags auth
// @Accept json
// @Produce json
// @Param nonceRequest body handlers.NonceRequest true "Nonce Request"
// @Success 200 {object} handlers.NonceResponse "Challenge issued"
// @Failure 400 {object} handlers.ErrorResponse "Malformed address"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/nonce [post]
func NewRequestNonceHandler(svc NonceRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NonceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		nonce, message, err := svc.RequestNonce(r.Context(), req.Address)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NonceResponse{Nonce: nonce, Message: message})
	}
}

// VerifyRequest represents the JSON body of a signed login
// swagger:model VerifyRequest
type VerifyRequest struct {
	// Wallet address
	// required: true
	Address string `json:"address"`

	// Personal-message signature over the login message
	// required: true
	Signature string `json:"signature"`

	// Optional username to claim
	Username *string `json:"username,omitempty"`

	// Optional contact email
	Email *string `json:"email,omitempty"`
}

// VerifyResponse represents a successful login
// swagger:model VerifyResponse
type VerifyResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated address, lowercase
	Address string `json:"address"`
}

// NewVerifyHandler returns an HTTP handler completing the wallet login.
// @Summary Verify login signature
// @Description Verify the signed nonce and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyRequest body handlers.VerifyRequest true "Verify Request"
// @Success 200 {object} handlers.VerifyResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Nonce missing, expired, used or signature mismatch"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/verify [post]
func NewVerifyHandler(svc SignatureVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		token, address, err := svc.Verify(r.Context(), services.VerifyInput{
			Address:   req.Address,
			Signature: req.Signature,
			Username:  req.Username,
			Email:     req.Email,
		})
		if err != nil {
			if errors.Is(err, services.ErrSignerMismatch) {
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Signature does not match address"})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VerifyResponse{Token: token, Address: address})
	}
}

// UsernameResponse reports username availability
// swagger:model UsernameResponse
type UsernameResponse struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// NewCheckUsernameHandler returns an HTTP handler checking username availability.
// @Summary Check username
// @Description Report whether a username is well-formed and free
// @Tags auth
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} handlers.UsernameResponse "Availability"
// @Failure 400 {object} handlers.ErrorResponse "Username missing"
// @Router /auth/username [get]
func NewCheckUsernameHandler(svc UsernameChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available, reason, err := svc.CheckUsername(r.Context(), r.URL.Query().Get("username"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UsernameResponse{Available: available, Error: reason})
	}
}

// NewProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := middlewares.GetAddressFromContext(r.Context())
		if !ok {
			writeError(w, services.ErrUnauthorized)
			return
		}

		user, err := svc.Profile(r.Context(), address)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
