package eip712

import (
	"strconv"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

var voteTypes = []apitypes.Type{
	{Name: "proposalId", Type: "string"},
	{Name: "voter", Type: "address"},
	{Name: "choice", Type: "string"},
	{Name: "snapshotBlock", Type: "uint256"},
	{Name: "timestamp", Type: "uint64"},
}

// VoteTypedData returns the typed-data payload for a vote.
func (v *Verifier) VoteTypedData(msg models.VoteMessage) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": v.domainTypes(),
			"Vote":         voteTypes,
		},
		PrimaryType: "Vote",
		Domain:      v.domain(),
		Message: apitypes.TypedDataMessage{
			"proposalId":    msg.ProposalID,
			"voter":         msg.Voter,
			"choice":        string(msg.Choice),
			"snapshotBlock": strconv.FormatUint(msg.SnapshotBlock, 10),
			"timestamp":     strconv.FormatInt(msg.Timestamp, 10),
		},
	}
}

// HashVote returns the 0x-prefixed EIP-712 digest of msg.
func (v *Verifier) HashVote(msg models.VoteMessage) (string, error) {
	hash, err := digest(v.VoteTypedData(msg))
	if err != nil {
		return "", err
	}
	return hexDigest(hash), nil
}

// RecoverVote returns the lowercase address that signed msg.
func (v *Verifier) RecoverVote(msg models.VoteMessage, signature string) (string, error) {
	hash, err := digest(v.VoteTypedData(msg))
	if err != nil {
		return "", err
	}
	return recoverAddress(hash, signature)
}
