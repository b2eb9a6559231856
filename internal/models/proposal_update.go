package models

// UpdateStatus is the progress label of a proposal update.
type UpdateStatus string

// Supported update statuses.
const (
	UpdatePlanning   UpdateStatus = "Planning"
	UpdateInProgress UpdateStatus = "In Progress"
	UpdateDelayed    UpdateStatus = "Delayed"
	UpdateCompleted  UpdateStatus = "Completed"
	UpdateStarted    UpdateStatus = "Started"
)

// Valid reports whether s is a supported update status.
func (s UpdateStatus) Valid() bool {
	switch s {
	case UpdatePlanning, UpdateInProgress, UpdateDelayed, UpdateCompleted, UpdateStarted:
		return true
	}
	return false
}

// ProposalUpdate is a progress note posted by a proposal's author.
type ProposalUpdate struct {
	ID            string       `json:"id"`
	ProposalID    string       `json:"proposalId"`
	AuthorAddress string       `json:"authorAddress"`
	AuthorName    *string      `json:"authorName,omitempty"` // Filled from users on listing
	Status        UpdateStatus `json:"status"`
	Content       string       `json:"content"`
	Attachments   []string     `json:"attachments"`
	CreatedAt     Millis       `json:"createdAt"`
	UpdatedAt     Millis       `json:"updatedAt"`
}

// ProposalUpdatePatch carries the optional fields of an update edit.
type ProposalUpdatePatch struct {
	Status      *UpdateStatus
	Content     *string
	Attachments []string
}
