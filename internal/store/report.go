package store

import (
	"sort"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// UnassignedGroup is the display bucket for reports with no (or a
// dangling) project reference.
const UnassignedGroup = "Unassigned"

// sortReports orders reports by publish date descending.
func sortReports(reports []types.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].DatePublished.After(reports[j].DatePublished)
	})
}

// AddReport creates a report. String fields are trimmed, the ID is
// assigned, the publish date defaults to now when unset, and category
// defaults to recurring when omitted. Returns the stored record.
func (s *Store) AddReport(report types.Report) (*types.Report, error) {
	report.ID = s.newID()
	report.Title = trim(report.Title)
	report.Description = trim(report.Description)
	report.LinkURL = trim(report.LinkURL)
	report.ProjectID = trim(report.ProjectID)
	report.DivisionID = trim(report.DivisionID)
	if report.DatePublished.IsZero() {
		report.DatePublished = s.now()
	}

	if report.Category == "" {
		report.Category = types.CategoryRecurring
	} else if !types.ValidCategory(report.Category) {
		return nil, types.ErrInvalidCategory
	}

	reports := readCollection[types.Report](s, keyReports)
	reports = append(reports, report)
	if err := writeCollection(s, keyReports, reports); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReports returns all reports, newest publication first.
func (s *Store) GetReports() []types.Report {
	reports := readCollection[types.Report](s, keyReports)
	sortReports(reports)
	return reports
}

// GetReportByID returns the report with the given ID, or ErrNotFound.
func (s *Store) GetReportByID(id string) (*types.Report, error) {
	for _, r := range readCollection[types.Report](s, keyReports) {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, types.ErrNotFound
}

// GetReportsByProject returns reports referencing the given project,
// newest publication first. When activeOnly is set, inactive reports are
// filtered out. A deleted or unknown project ID yields an empty slice;
// survivors with a dangling reference belong to GetUnassignedReports.
func (s *Store) GetReportsByProject(projectID string, activeOnly bool) []types.Report {
	out := []types.Report{}
	if projectID == "" || !s.projectIDSet()[projectID] {
		return out
	}
	for _, r := range readCollection[types.Report](s, keyReports) {
		if r.ProjectID != projectID {
			continue
		}
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	sortReports(out)
	return out
}

// GetUnassignedReports returns reports with no project reference or a
// dangling one, newest publication first.
func (s *Store) GetUnassignedReports(activeOnly bool) []types.Report {
	known := s.projectIDSet()
	out := []types.Report{}
	for _, r := range readCollection[types.Report](s, keyReports) {
		if r.ProjectID != "" && known[r.ProjectID] {
			continue
		}
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	sortReports(out)
	return out
}

// GetReportsGroupedByProject buckets reports by the display name of their
// project, mapping name to a list ordered newest publication first.
// Reports with no or a dangling project reference bucket under
// UnassignedGroup.
func (s *Store) GetReportsGroupedByProject(activeOnly bool) map[string][]types.Report {
	names := make(map[string]string)
	for _, p := range readCollection[types.Project](s, keyProjects) {
		names[p.ID] = p.Name
	}

	groups := make(map[string][]types.Report)
	for _, r := range readCollection[types.Report](s, keyReports) {
		if activeOnly && !r.IsActive {
			continue
		}
		name, ok := names[r.ProjectID]
		if r.ProjectID == "" || !ok {
			name = UnassignedGroup
		}
		groups[name] = append(groups[name], r)
	}
	for name := range groups {
		sortReports(groups[name])
	}
	return groups
}

// UpdateReport shallow-merges the provided fields over the stored record.
// Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateReport(id string, upd types.ReportUpdate) (*types.Report, error) {
	reports := readCollection[types.Report](s, keyReports)
	for i := range reports {
		if reports[i].ID != id {
			continue
		}
		if upd.Title != nil {
			reports[i].Title = trim(*upd.Title)
		}
		if upd.DatePublished != nil {
			reports[i].DatePublished = *upd.DatePublished
		}
		if upd.Description != nil {
			reports[i].Description = trim(*upd.Description)
		}
		if upd.LinkURL != nil {
			reports[i].LinkURL = trim(*upd.LinkURL)
		}
		if upd.IsActive != nil {
			reports[i].IsActive = *upd.IsActive
		}
		if upd.ProjectID != nil {
			reports[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.DivisionID != nil {
			reports[i].DivisionID = trim(*upd.DivisionID)
		}
		if upd.Category != nil {
			if !types.ValidCategory(*upd.Category) {
				return nil, types.ErrInvalidCategory
			}
			reports[i].Category = *upd.Category
		}
		if err := writeCollection(s, keyReports, reports); err != nil {
			return nil, err
		}
		updated := reports[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// DeleteReport removes a report. Deleting a nonexistent ID is a no-op
// success.
func (s *Store) DeleteReport(id string) error {
	reports := readCollection[types.Report](s, keyReports)
	reports, removed := deleteByID(reports, id, func(r types.Report) string { return r.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyReports, reports)
}
