package eip712

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

// SignLogin personal-signs message with key the way a browser wallet does.
func (v *Verifier) SignLogin(message string, key *ecdsa.PrivateKey) (string, error) {
	return encodeSignature(accounts.TextHash([]byte(message)), key)
}

// SignVote signs the typed-data vote with key.
func (v *Verifier) SignVote(msg models.VoteMessage, key *ecdsa.PrivateKey) (string, error) {
	hash, err := digest(v.VoteTypedData(msg))
	if err != nil {
		return "", err
	}
	return encodeSignature(hash, key)
}

// SignProposal signs the typed-data proposal with key.
func (v *Verifier) SignProposal(msg models.ProposalMessage, key *ecdsa.PrivateKey) (string, error) {
	hash, err := digest(v.ProposalTypedData(msg))
	if err != nil {
		return "", err
	}
	return encodeSignature(hash, key)
}
