package types

import "time"

// Report and Document categories.
const (
	CategoryLegal     = "legal"
	CategoryPricing   = "pricing"
	CategoryRecurring = "recurring"
)

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryLegal:     true,
	CategoryPricing:   true,
	CategoryRecurring: true,
}

// ValidCategory reports whether the given category value is recognized.
func ValidCategory(c string) bool {
	return validCategories[c]
}

// Report is a published deliverable with an external link. Reports created
// before the v1 schema generation have no category; migration defaults
// them to "recurring".
type Report struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DatePublished time.Time `json:"datePublished"`
	Description   string    `json:"description"`
	LinkURL       string    `json:"linkUrl"`
	IsActive      bool      `json:"isActive"`
	ProjectID     string    `json:"projectId,omitempty"`
	DivisionID    string    `json:"divisionId,omitempty"`
	Category      string    `json:"category"`
}

// ReportUpdate carries optional field overrides for UpdateReport.
// Nil fields are left untouched (shallow merge).
type ReportUpdate struct {
	Title         *string
	DatePublished *time.Time
	Description   *string
	LinkURL       *string
	IsActive      *bool
	ProjectID     *string
	DivisionID    *string
	Category      *string
}
