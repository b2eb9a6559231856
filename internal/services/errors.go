package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-governance/internal/eip712"
	"github.com/sbilibin2017/gw-governance/internal/facades"
)

var (
	// ErrUnauthorized is returned for a missing, invalid or expired credential or nonce.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSignerMismatch is returned when a signature recovers to an address other than the claimed one.
	ErrSignerMismatch = errors.New("signature does not match address")
	// ErrInvalidSignature is returned for malformed or undecodable signatures.
	ErrInvalidSignature = eip712.ErrInvalidSignature
	// ErrInsufficientBalance is returned when voting power is below what the action needs.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNotFound is returned for unknown proposals, updates or nonces.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned for actions outside the allowed lifecycle window.
	ErrInvalidState = errors.New("invalid state")
	// ErrOracleUnavailable is returned when voting power cannot be determined.
	ErrOracleUnavailable = facades.ErrOracleUnavailable
	// ErrArchiveFailure marks a failed pin. It is recorded on the proposal and never fails the caller.
	ErrArchiveFailure = errors.New("archive failure")
	// ErrForbidden is returned when the caller is not the author of the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned for missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUsernameTaken is returned when a requested username belongs to another address.
	ErrUsernameTaken = errors.New("username already taken")
)

// BalanceError describes a rejected action due to insufficient voting power.
type BalanceError struct {
	Required string // Human-scaled
	Current  string // Human-scaled
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s: need %s, have %s", ErrInsufficientBalance, e.Required, e.Current)
}

func (e *BalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
