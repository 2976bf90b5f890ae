package types

import "time"

// Document sources.
const (
	SourceManual        = "manual"
	SourceClientEmail   = "client-email"
	SourceNelnetCreated = "nelnet-created"
)

// validSources is the set of recognized document source values.
var validSources = map[string]bool{
	SourceManual:        true,
	SourceClientEmail:   true,
	SourceNelnetCreated: true,
}

// ValidSource reports whether the given source value is recognized.
func ValidSource(s string) bool {
	return validSources[s]
}

// Document is a filed artifact attached to a project. Unlike requests and
// reports, documents are always created with an explicit project context,
// though the reference may dangle after the project is deleted.
type Document struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	Category      string     `json:"category"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	LinkURL       string     `json:"linkUrl"`
	Source        string     `json:"source"`
	DateAdded     time.Time  `json:"dateAdded"`
	DatePublished *time.Time `json:"datePublished,omitempty"`
}

// DocumentUpdate carries optional field overrides for UpdateDocument.
// Nil fields are left untouched (shallow merge).
type DocumentUpdate struct {
	ProjectID     *string
	Category      *string
	Title         *string
	Description   *string
	LinkURL       *string
	Source        *string
	DatePublished *time.Time
}
