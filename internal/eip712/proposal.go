package eip712

import (
	"strconv"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

var proposalTypes = []apitypes.Type{
	{Name: "from", Type: "address"},
	{Name: "space", Type: "string"},
	{Name: "timestamp", Type: "uint64"},
	{Name: "type", Type: "string"},
	{Name: "title", Type: "string"},
	{Name: "body", Type: "string"},
	{Name: "discussion", Type: "string"},
	{Name: "choices", Type: "string[]"},
	{Name: "start", Type: "uint64"},
	{Name: "end", Type: "uint64"},
	{Name: "snapshot", Type: "uint64"},
	{Name: "plugins", Type: "string"},
	{Name: "app", Type: "string"},
}

// ProposalTypedData returns the typed-data payload for a proposal.
func (v *Verifier) ProposalTypedData(msg models.ProposalMessage) apitypes.TypedData {
	choices := make([]interface{}, 0, len(msg.Choices))
	for _, c := range msg.Choices {
		choices = append(choices, c)
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": v.domainTypes(),
			"Proposal":     proposalTypes,
		},
		PrimaryType: "Proposal",
		Domain:      v.domain(),
		Message: apitypes.TypedDataMessage{
			"from":       msg.From,
			"space":      msg.Space,
			"timestamp":  strconv.FormatInt(msg.Timestamp, 10),
			"type":       msg.Type,
			"title":      msg.Title,
			"body":       msg.Body,
			"discussion": msg.Discussion,
			"choices":    choices,
			"start":      strconv.FormatInt(msg.Start, 10),
			"end":        strconv.FormatInt(msg.End, 10),
			"snapshot":   strconv.FormatUint(msg.Snapshot, 10),
			"plugins":    msg.Plugins,
			"app":        msg.App,
		},
	}
}

// HashProposal returns the 0x-prefixed EIP-712 digest of msg.
func (v *Verifier) HashProposal(msg models.ProposalMessage) (string, error) {
	hash, err := digest(v.ProposalTypedData(msg))
	if err != nil {
		return "", err
	}
	return hexDigest(hash), nil
}

// RecoverProposal returns the lowercase address that signed msg.
func (v *Verifier) RecoverProposal(msg models.ProposalMessage, signature string) (string, error) {
	hash, err := digest(v.ProposalTypedData(msg))
	if err != nil {
		return "", err
	}
	return recoverAddress(hash, signature)
}

// ProposalDocument renders the proposal payload in the JSON shape wallets sign.
func (v *Verifier) ProposalDocument(msg models.ProposalMessage) models.TypedDataDocument {
	td := v.ProposalTypedData(msg)

	types := make(map[string]any, len(td.Types))
	for name, fields := range td.Types {
		types[name] = fields
	}
	domain := make(map[string]any)
	for k, val := range td.Domain.Map() {
		domain[k] = val
	}
	message := make(map[string]any, len(td.Message))
	for k, val := range td.Message {
		message[k] = val
	}

	return models.TypedDataDocument{
		Domain:      domain,
		Types:       types,
		PrimaryType: td.PrimaryType,
		Message:     message,
	}
}
