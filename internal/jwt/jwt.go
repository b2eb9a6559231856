package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that fail parsing, signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when the request carries no usable bearer token.
	ErrMissingToken = errors.New("authorization header missing or malformed")
)

// Claims are the session claims. Subject holds the lowercase wallet address.
type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// JWT issues and validates HS256 session tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC secret.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(d time.Duration) Opt {
	return func(j *JWT) {
		j.exp = d
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT with a 24h lifetime unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: 24 * time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a session token for address.
func (j *JWT) Generate(ctx context.Context, address string) (string, error) {
	address = strings.ToLower(address)
	now := j.now()

	claims := Claims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   address,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and verifies tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	claims.Address = strings.ToLower(claims.Subject)
	return claims, nil
}

// Validate reports whether tokenString is a valid session token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetAddress returns the session address carried by tokenString.
func (j *JWT) GetAddress(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Address, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMissingToken
	}

	return parts[1], nil
}
