package models

// User represents a wallet holder that has signed in at least once.
type User struct {
	Address     string  `json:"address"`            // Lowercase hex address, primary key
	Username    *string `json:"username,omitempty"` // Optional unique handle
	Email       *string `json:"email,omitempty"`    // Optional contact email
	CreatedAt   Millis  `json:"createdAt"`          // First successful verification
	LastLoginAt Millis  `json:"lastLoginAt"`        // Most recent successful verification
}
