package types

// Division is one of three fixed top-level organizational groupings.
// Divisions are a static reference table: never created, mutated, or
// deleted at runtime.
type Division struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// Static division IDs.
const (
	DivisionAssetManagement   = "div-asset-management"
	DivisionCapitalMarkets    = "div-capital-markets"
	DivisionCorporateServices = "div-corporate-services"
)

// divisions is the fixed reference table, ordered by SortOrder.
var divisions = []Division{
	{ID: DivisionAssetManagement, Name: "Asset Management", SortOrder: 1},
	{ID: DivisionCapitalMarkets, Name: "Capital Markets", SortOrder: 2},
	{ID: DivisionCorporateServices, Name: "Corporate Services", SortOrder: 3},
}

// Divisions returns a fresh copy of the static division table, ordered by
// sort order. Callers may modify the returned slice freely.
func Divisions() []Division {
	out := make([]Division, len(divisions))
	copy(out, divisions)
	return out
}

// DivisionByID returns the static division with the given ID.
// The second return value is false when no division matches; an unmatched
// division reference is treated as "unassigned", not an error.
func DivisionByID(id string) (Division, bool) {
	for _, d := range divisions {
		if d.ID == id {
			return d, true
		}
	}
	return Division{}, false
}
