package types

import "time"

// InProgressItem statuses. Status is mutated in place; there is no
// enforced transition order.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusInReview   = "in-review"
)

// validItemStatuses is the set of recognized item status values.
var validItemStatuses = map[string]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusInReview:   true,
}

// ValidItemStatus reports whether the given status value is recognized.
func ValidItemStatus(s string) bool {
	return validItemStatuses[s]
}

// InProgressItem is an accepted task being worked on. It is created
// directly or by promoting a Request. Completing an item deletes it;
// there is no archival.
type InProgressItem struct {
	ID                   string     `json:"id"`
	TaskDescription      string     `json:"taskDescription"`
	Requester            string     `json:"requester"`
	Status               string     `json:"status"`
	TargetCompletionDate *time.Time `json:"targetCompletionDate,omitempty"`
	ProjectID            string     `json:"projectId,omitempty"`
	DivisionID           string     `json:"divisionId,omitempty"`
	DateCreated          time.Time  `json:"dateCreated"`
}

// SetStatus sets the item status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
// Idempotent: setting the current status succeeds without error.
func (i *InProgressItem) SetStatus(status string) error {
	if !validItemStatuses[status] {
		return ErrInvalidStatus
	}
	i.Status = status
	return nil
}

// InProgressItemUpdate carries optional field overrides for UpdateInProgressItem.
// Nil fields are left untouched (shallow merge).
type InProgressItemUpdate struct {
	TaskDescription      *string
	Requester            *string
	Status               *string
	TargetCompletionDate *time.Time
	ProjectID            *string
	DivisionID           *string
}
