package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

type authMocks struct {
	nonces   *MockNoncer
	verifier *MockLoginVerifier
	reader   *MockUserReader
	writer   *MockUserWriter
	sessions *MockSessionGenerator
}

func newAuthService(ctrl *gomock.Controller) (*AuthService, authMocks) {
	m := authMocks{
		nonces:   NewMockNoncer(ctrl),
		verifier: NewMockLoginVerifier(ctrl),
		reader:   NewMockUserReader(ctrl),
		writer:   NewMockUserWriter(ctrl),
		sessions: NewMockSessionGenerator(ctrl),
	}
	return NewAuthService(m.nonces, m.verifier, m.reader, m.writer, m.sessions, fixedClock(777)), m
}

func strPtr(s string) *string { return &s }

func TestAuthService_RequestNonce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	m.nonces.EXPECT().Issue(ctx, testAddress).Return("n1", nil)
	m.verifier.EXPECT().LoginMessage("n1").Return("Sign in\nNonce: n1")

	nonce, message, err := svc.RequestNonce(ctx, "0x00000000000000000000000000000000000000AA")
	require.NoError(t, err)
	assert.Equal(t, "n1", nonce)
	assert.Equal(t, "Sign in\nNonce: n1", message)

	_, _, err = svc.RequestNonce(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	const message = "Sign in\nNonce: n1"

	tests := []struct {
		name      string
		in        VerifyInput
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name: "success",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig"},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return(testAddress, nil)
				m.nonces.EXPECT().Consume(ctx, testAddress, "n1").Return(nil)
				m.writer.EXPECT().Save(ctx, testAddress, (*string)(nil), (*string)(nil), models.Millis(777)).Return(nil)
				m.sessions.EXPECT().Generate(ctx, testAddress).Return("jwt", nil)
			},
			wantToken: "jwt",
		},
		{
			name: "success with profile",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig", Username: strPtr(" alice_01 "), Email: strPtr("a@b.c")},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return(testAddress, nil)
				m.reader.EXPECT().UsernameTaken(ctx, "alice_01", testAddress).Return(false, nil)
				m.nonces.EXPECT().Consume(ctx, testAddress, "n1").Return(nil)
				m.writer.EXPECT().Save(ctx, testAddress, strPtr("alice_01"), strPtr("a@b.c"), models.Millis(777)).Return(nil)
				m.sessions.EXPECT().Generate(ctx, testAddress).Return("jwt", nil)
			},
			wantToken: "jwt",
		},
		{
			name: "no live nonce",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig"},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("", false, nil)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "invalid signature",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig"},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return("", ErrInvalidSignature)
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "signer mismatch keeps nonce",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig"},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return("0x00000000000000000000000000000000000000bb", nil)
			},
			wantErr: ErrSignerMismatch,
		},
		{
			name: "username taken",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig", Username: strPtr("alice_01")},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return(testAddress, nil)
				m.reader.EXPECT().UsernameTaken(ctx, "alice_01", testAddress).Return(true, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "nonce raced away",
			in:   VerifyInput{Address: testAddress, Signature: "0xsig"},
			setup: func(m authMocks) {
				m.nonces.EXPECT().Peek(ctx, testAddress).Return("n1", true, nil)
				m.verifier.EXPECT().LoginMessage("n1").Return(message)
				m.verifier.EXPECT().RecoverLogin(message, "0xsig").Return(testAddress, nil)
				m.nonces.EXPECT().Consume(ctx, testAddress, "n1").Return(ErrUnauthorized)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "missing signature",
			in:      VerifyInput{Address: testAddress},
			setup:   func(m authMocks) {},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed address",
			in:      VerifyInput{Address: "0x1", Signature: "0xsig"},
			setup:   func(m authMocks) {},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setup(m)

			token, address, err := svc.Verify(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, testAddress, address)
		})
	}
}

func TestAuthService_CheckUsername(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		username   string
		setup      func(m authMocks)
		want       bool
		wantReason string
		wantErr    bool
	}{
		{
			name:     "available",
			username: "alice_01",
			setup: func(m authMocks) {
				m.reader.EXPECT().UsernameTaken(ctx, "alice_01", "").Return(false, nil)
			},
			want: true,
		},
		{
			name:     "taken",
			username: "alice_01",
			setup: func(m authMocks) {
				m.reader.EXPECT().UsernameTaken(ctx, "alice_01", "").Return(true, nil)
			},
			wantReason: "Username already taken",
		},
		{name: "too short", username: "abc", setup: func(m authMocks) {}, wantReason: "Invalid format. Use 5-20 characters, lowercase, numbers, or underscores."},
		{name: "uppercase", username: "Alice_01", setup: func(m authMocks) {}, wantReason: "Invalid format. Use 5-20 characters, lowercase, numbers, or underscores."},
		{name: "empty", username: "", setup: func(m authMocks) {}, wantErr: true},
		{
			name:     "store error",
			username: "alice_01",
			setup: func(m authMocks) {
				m.reader.EXPECT().UsernameTaken(ctx, "alice_01", "").Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setup(m)

			available, reason, err := svc.CheckUsername(ctx, tt.username)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	user := &models.User{Address: testAddress, CreatedAt: 1, LastLoginAt: 2}
	m.reader.EXPECT().GetByAddress(ctx, testAddress).Return(user, nil)
	got, err := svc.Profile(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	m.reader.EXPECT().GetByAddress(ctx, testAddress).Return(nil, nil)
	_, err = svc.Profile(ctx, testAddress)
	assert.ErrorIs(t, err, ErrNotFound)
}
