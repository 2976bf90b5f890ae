package types

import "time"

// Dashboard link types.
const (
	LinkTypePerformance = "performance"
	LinkTypeValuation   = "valuation"
	LinkTypeImpairment  = "impairment"
)

// validLinkTypes is the set of recognized dashboard link type values.
var validLinkTypes = map[string]bool{
	LinkTypePerformance: true,
	LinkTypeValuation:   true,
	LinkTypeImpairment:  true,
}

// ValidLinkType reports whether the given link type value is recognized.
func ValidLinkType(t string) bool {
	return validLinkTypes[t]
}

// DashboardLink is a pointer to an external monitoring dashboard for a
// project. Always created with an explicit project context.
type DashboardLink struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"dateAdded"`
}

// DashboardLinkUpdate carries optional field overrides for UpdateDashboardLink.
// Nil fields are left untouched (shallow merge).
type DashboardLinkUpdate struct {
	ProjectID   *string
	Title       *string
	URL         *string
	Type        *string
	Description *string
}
