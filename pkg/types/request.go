package types

import "time"

// Request urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// validUrgencies is the set of recognized urgency values.
var validUrgencies = map[string]bool{
	UrgencyLow:    true,
	UrgencyMedium: true,
	UrgencyHigh:   true,
}

// ValidUrgency reports whether the given urgency value is recognized.
func ValidUrgency(u string) bool {
	return validUrgencies[u]
}

// Request is an incoming work request awaiting triage. A request is either
// promoted to an InProgressItem (copy plus delete, not a state transition
// on the same record) or deleted.
//
// ProjectID and DivisionID are optional; a request with no (or a dangling)
// project reference is "unassigned".
type Request struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Requester     string    `json:"requester"`
	Urgency       string    `json:"urgency"`
	ProjectID     string    `json:"projectId,omitempty"`
	DivisionID    string    `json:"divisionId,omitempty"`
	DateSubmitted time.Time `json:"dateSubmitted"`
}

// RequestUpdate carries optional field overrides for UpdateRequest.
// Nil fields are left untouched (shallow merge).
type RequestUpdate struct {
	Description *string
	Requester   *string
	Urgency     *string
	ProjectID   *string
	DivisionID  *string
}
