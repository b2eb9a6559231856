package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{5,20}$`)

// Noncer issues and consumes login challenges.
type Noncer interface {
	Issue(ctx context.Context, address string) (string, error)
	Peek(ctx context.Context, address string) (string, bool, error)
	Consume(ctx context.Context, address, nonce string) error
}

// LoginVerifier builds the login message and recovers its signer.
type LoginVerifier interface {
	LoginMessage(nonce string) string
	RecoverLogin(message, signature string) (string, error)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByAddress(ctx context.Context, address string) (*models.User, error)
	UsernameTaken(ctx context.Context, username, exceptAddress string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, address string, username, email *string, now models.Millis) error
}

// SessionGenerator issues session tokens.
type SessionGenerator interface {
	Generate(ctx context.Context, address string) (string, error)
}

// AuthService runs the wallet challenge/response login.
type AuthService struct {
	nonces   Noncer
	verifier LoginVerifier
	reader   UserReader
	writer   UserWriter
	sessions SessionGenerator
	now      Clock
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	nonces Noncer,
	verifier LoginVerifier,
	reader UserReader,
	writer UserWriter,
	sessions SessionGenerator,
	now Clock,
) *AuthService {
	if now == nil {
		now = SystemClock
	}
	return &AuthService{
		nonces:   nonces,
		verifier: verifier,
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		now:      now,
	}
}

// VerifyInput is a signed login attempt.
type VerifyInput struct {
	Address   string
	Signature string
	Username  *string
	Email     *string
}

// RequestNonce issues a challenge for address and returns it with the message to sign.
func (svc *AuthService) RequestNonce(ctx context.Context, address string) (nonce, message string, err error) {
	address, err = NormalizeAddress(address)
	if err != nil {
		return "", "", err
	}

	nonce, err = svc.nonces.Issue(ctx, address)
	if err != nil {
		return "", "", err
	}
	return nonce, svc.verifier.LoginMessage(nonce), nil
}

// Verify checks a signed challenge and returns a session token for the signer.
func (svc *AuthService) Verify(ctx context.Context, in VerifyInput) (token, address string, err error) {
	address, err = NormalizeAddress(in.Address)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(in.Signature) == "" {
		return "", "", invalidInput("signature is required")
	}

	nonce, ok, err := svc.nonces.Peek(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to read nonce", "address", address, "error", err)
		return "", "", err
	}
	if !ok {
		return "", "", ErrUnauthorized
	}

	signer, err := svc.verifier.RecoverLogin(svc.verifier.LoginMessage(nonce), in.Signature)
	if err != nil {
		return "", "", err
	}
	if signer != address {
		logger.Log.Warnw("login signer mismatch", "address", address, "signer", signer)
		return "", "", ErrSignerMismatch
	}

	username, email, err := svc.profile(ctx, address, in.Username, in.Email)
	if err != nil {
		return "", "", err
	}

	if err := svc.nonces.Consume(ctx, address, nonce); err != nil {
		logger.Log.Warnw("nonce already consumed", "address", address, "error", err)
		return "", "", err
	}

	if err := svc.writer.Save(ctx, address, username, email, svc.now()); err != nil {
		logger.Log.Errorw("failed to save user", "address", address, "error", err)
		return "", "", err
	}

	token, err = svc.sessions.Generate(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "address", address, "error", err)
		return "", "", err
	}
	return token, address, nil
}

func (svc *AuthService) profile(ctx context.Context, address string, username, email *string) (*string, *string, error) {
	if username != nil {
		u := strings.TrimSpace(*username)
		if u == "" {
			username = nil
		} else {
			available, err := svc.usernameAvailable(ctx, u, address)
			if err != nil {
				return nil, nil, err
			}
			if !available {
				return nil, nil, ErrUsernameTaken
			}
			username = &u
		}
	}
	if email != nil {
		e := strings.TrimSpace(*email)
		if e == "" {
			email = nil
		} else {
			email = &e
		}
	}
	return username, email, nil
}

func (svc *AuthService) usernameAvailable(ctx context.Context, username, exceptAddress string) (bool, error) {
	if !usernamePattern.MatchString(username) {
		return false, invalidInput("username must be 5-20 characters of lowercase letters, digits or underscores")
	}
	taken, err := svc.reader.UsernameTaken(ctx, username, exceptAddress)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "error", err)
		return false, err
	}
	return !taken, nil
}

// CheckUsername reports whether username can be claimed. A non-empty reason
// explains why it cannot.
func (svc *AuthService) CheckUsername(ctx context.Context, username string) (available bool, reason string, err error) {
	if username == "" {
		return false, "", invalidInput("username is required")
	}
	available, err = svc.usernameAvailable(ctx, username, "")
	if errors.Is(err, ErrInvalidInput) {
		return false, "Invalid format. Use 5-20 characters, lowercase, numbers, or underscores.", nil
	}
	if err != nil {
		return false, "", err
	}
	if !available {
		return false, "Username already taken", nil
	}
	return true, "", nil
}

// Profile returns the stored user of address.
func (svc *AuthService) Profile(ctx context.Context, address string) (*models.User, error) {
	user, err := svc.reader.GetByAddress(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to load user", "address", address, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
