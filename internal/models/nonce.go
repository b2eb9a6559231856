package models

// Nonce is a single-use authentication challenge issued to an address.
type Nonce struct {
	Address   string `json:"address"`   // Lowercase hex address, one active nonce per address
	Value     string `json:"nonce"`     // Random hex token
	CreatedAt Millis `json:"createdAt"` // Issue time
	ExpiresAt Millis `json:"expiresAt"` // Nonce is unusable from this instant on
}

// Live reports whether the nonce can still be presented at now.
func (n Nonce) Live(now Millis) bool {
	return now < n.ExpiresAt
}
