package eip712

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// ErrInvalidSignature is returned when a signature is malformed or no signer can be recovered from it.
var ErrInvalidSignature = errors.New("invalid signature")

const signatureLength = 65

// Verifier builds typed-data payloads for the governance domain and recovers their signers.
type Verifier struct {
	appName           string
	name              string
	version           string
	chainID           int64
	verifyingContract string
}

// Opt configures a Verifier.
type Opt func(*Verifier)

// WithAppName sets the name shown in the login message.
func WithAppName(name string) Opt {
	return func(v *Verifier) {
		v.appName = name
	}
}

// WithDomain sets the EIP-712 domain name and version.
func WithDomain(name, version string) Opt {
	return func(v *Verifier) {
		v.name = name
		v.version = version
	}
}

// WithChainID binds the domain to a chain. Zero leaves chainId out of the domain.
func WithChainID(chainID int64) Opt {
	return func(v *Verifier) {
		v.chainID = chainID
	}
}

// WithVerifyingContract binds the domain to a contract. Empty leaves it out of the domain.
func WithVerifyingContract(addr string) Opt {
	return func(v *Verifier) {
		v.verifyingContract = addr
	}
}

// New creates a Verifier for the {name: "parallel", version: "1"} domain unless overridden.
func New(opts ...Opt) *Verifier {
	v := &Verifier{
		appName: "Parallel Society Governance",
		name:    "parallel",
		version: "1",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// LoginMessage is the plain text a wallet signs to prove control of an address.
func (v *Verifier) LoginMessage(nonce string) string {
	return fmt.Sprintf("Sign in to %s\nNonce: %s", v.appName, nonce)
}

// RecoverLogin recovers the lowercase address that personal-signed message.
func (v *Verifier) RecoverLogin(message, signature string) (string, error) {
	return recoverAddress(accounts.TextHash([]byte(message)), signature)
}

func (v *Verifier) domain() apitypes.TypedDataDomain {
	d := apitypes.TypedDataDomain{
		Name:    v.name,
		Version: v.version,
	}
	if v.chainID != 0 {
		d.ChainId = math.NewHexOrDecimal256(v.chainID)
	}
	if v.verifyingContract != "" {
		d.VerifyingContract = v.verifyingContract
	}
	return d
}

func (v *Verifier) domainTypes() []apitypes.Type {
	types := []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
	}
	if v.chainID != 0 {
		types = append(types, apitypes.Type{Name: "chainId", Type: "uint256"})
	}
	if v.verifyingContract != "" {
		types = append(types, apitypes.Type{Name: "verifyingContract", Type: "address"})
	}
	return types
}

func digest(td apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return nil, fmt.Errorf("%w: encode typed data: %v", ErrInvalidSignature, err)
	}
	return hash, nil
}

func recoverAddress(hash []byte, signature string) (string, error) {
	sig, err := decodeSignature(signature)
	if err != nil {
		return "", err
	}
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
}

func decodeSignature(signature string) ([]byte, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(signature, "0x"), "0X")
	sig, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex", ErrInvalidSignature)
	}
	if len(sig) != signatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, signatureLength, len(sig))
	}
	switch sig[64] {
	case 0, 1:
	case 27, 28:
		sig[64] -= 27
	default:
		return nil, fmt.Errorf("%w: invalid recovery id %d", ErrInvalidSignature, sig[64])
	}
	return sig, nil
}

func encodeSignature(hash []byte, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return "", err
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}

func hexDigest(hash []byte) string {
	return "0x" + hex.EncodeToString(hash)
}
