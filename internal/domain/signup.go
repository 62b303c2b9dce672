package domain

import "time"

type Signup struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ToggleOutcome string

const (
	OutcomeAdmitted          ToggleOutcome = "admitted"
	OutcomeWithdrawn         ToggleOutcome = "withdrawn"
	OutcomeCapacityFull      ToggleOutcome = "capacity_full"
	OutcomeQuotaFull         ToggleOutcome = "quota_full"
	OutcomeAlreadyRegistered ToggleOutcome = "already_registered"
)

// Rejected is true for outcomes that left the signup set unchanged.
func (o ToggleOutcome) Rejected() bool {
	switch o {
	case OutcomeCapacityFull, OutcomeQuotaFull, OutcomeAlreadyRegistered:
		return true
	}
	return false
}

type SignupInput struct {
	EventID string
	UserID  string
	Role    Role
	// DisplayName, when set for a volunteer, is mirrored into the event roster.
	DisplayName string
}

type ToggleResult struct {
	Outcome ToggleOutcome `json:"outcome"`
	Signup  *Signup       `json:"signup,omitempty"`
	// Signups is the caller's signup set after the operation.
	Signups []*Signup `json:"signups"`
}
