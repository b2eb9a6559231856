package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=nonce.go -destination=nonce_mock.go -package=services

// NonceReader reads stored nonces.
type NonceReader interface {
	Get(ctx context.Context, address string) (*models.Nonce, error)
}

// NonceWriter stores and consumes nonces.
type NonceWriter interface {
	Save(ctx context.Context, n models.Nonce) error
	Consume(ctx context.Context, address, nonce string, now models.Millis) (bool, error)
}

// NonceService issues single-use, time-limited login challenges.
type NonceService struct {
	reader NonceReader
	writer NonceWriter
	ttl    time.Duration
	now    Clock
}

// NewNonceService creates a NonceService whose nonces live for ttl.
func NewNonceService(reader NonceReader, writer NonceWriter, ttl time.Duration, now Clock) *NonceService {
	if now == nil {
		now = SystemClock
	}
	return &NonceService{reader: reader, writer: writer, ttl: ttl, now: now}
}

// Issue creates a fresh nonce for address, replacing any earlier one.
func (s *NonceService) Issue(ctx context.Context, address string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	now := s.now()

	n := models.Nonce{
		Address:   address,
		Value:     hex.EncodeToString(buf),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.writer.Save(ctx, n); err != nil {
		logger.Log.Errorw("failed to save nonce", "address", address, "error", err)
		return "", err
	}
	return n.Value, nil
}

// Peek returns the live nonce of address. Expired nonces are reported as absent.
func (s *NonceService) Peek(ctx context.Context, address string) (string, bool, error) {
	n, err := s.reader.Get(ctx, address)
	if err != nil {
		return "", false, err
	}
	if n == nil || !n.Live(s.now()) {
		return "", false, nil
	}
	return n.Value, true, nil
}

// Consume deletes nonce. It fails with ErrUnauthorized when the nonce was
// already used, superseded or expired.
func (s *NonceService) Consume(ctx context.Context, address, nonce string) error {
	ok, err := s.writer.Consume(ctx, address, nonce, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
