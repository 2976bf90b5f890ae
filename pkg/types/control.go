package types

import "time"

// Control item frequencies.
const (
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnually  = "annually"
	FrequencyAdHoc     = "ad-hoc"
)

// validFrequencies is the set of recognized frequency values.
var validFrequencies = map[string]bool{
	FrequencyWeekly:    true,
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyAnnually:  true,
	FrequencyAdHoc:     true,
}

// ValidFrequency reports whether the given frequency value is recognized.
func ValidFrequency(f string) bool {
	return validFrequencies[f]
}

// Control item statuses, ordered most urgent first.
const (
	ControlStatusOverdue  = "overdue"
	ControlStatusUpcoming = "upcoming"
	ControlStatusCurrent  = "current"
)

// validControlStatuses is the set of recognized control status values.
var validControlStatuses = map[string]bool{
	ControlStatusOverdue:  true,
	ControlStatusUpcoming: true,
	ControlStatusCurrent:  true,
}

// ValidControlStatus reports whether the given status value is recognized.
func ValidControlStatus(s string) bool {
	return validControlStatuses[s]
}

// ControlItem is a recurring oversight obligation for a project. Always
// created with an explicit project context.
type ControlItem struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Assignee      string     `json:"assignee"`
	Frequency     string     `json:"frequency"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
	NextDue       *time.Time `json:"nextDue,omitempty"`
	Status        string     `json:"status"`
	DateCreated   time.Time  `json:"dateCreated"`
}

// NextDueAfter returns the due date following the given completion time for
// this item's frequency. The second return value is false for ad-hoc items,
// which have no schedule.
func (c *ControlItem) NextDueAfter(completed time.Time) (time.Time, bool) {
	switch c.Frequency {
	case FrequencyWeekly:
		return completed.AddDate(0, 0, 7), true
	case FrequencyMonthly:
		return completed.AddDate(0, 1, 0), true
	case FrequencyQuarterly:
		return completed.AddDate(0, 3, 0), true
	case FrequencyAnnually:
		return completed.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// ControlItemUpdate carries optional field overrides for UpdateControlItem.
// Nil fields are left untouched (shallow merge).
type ControlItemUpdate struct {
	ProjectID   *string
	Title       *string
	Description *string
	Assignee    *string
	Frequency   *string
	Status      *string
}
