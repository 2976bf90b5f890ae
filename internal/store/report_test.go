package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestReportRoundTrip(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddReport(types.Report{
		Title:       "Q4 Impairment Review",
		Description: "Year-end impairment analysis",
		LinkURL:     "https://example.test/q4",
		IsActive:    true,
		Category:    types.CategoryPricing,
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	fetched, err := s.GetReportByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, fetched.ID)
	assert.Equal(t, added.Title, fetched.Title)
	assert.Equal(t, added.Description, fetched.Description)
	assert.Equal(t, added.LinkURL, fetched.LinkURL)
	assert.Equal(t, added.Category, fetched.Category)
	assert.True(t, fetched.IsActive)
	assert.True(t, added.DatePublished.Equal(fetched.DatePublished))

	inactive := false
	_, err = s.UpdateReport(added.ID, types.ReportUpdate{IsActive: &inactive})
	require.NoError(t, err)

	refetched, err := s.GetReportByID(added.ID)
	require.NoError(t, err)
	assert.False(t, refetched.IsActive)

	// Only the named field changed.
	assert.Equal(t, added.Title, refetched.Title)
	assert.Equal(t, added.Category, refetched.Category)
	assert.True(t, added.DatePublished.Equal(refetched.DatePublished))
}

func TestAddReportDefaultsCategory(t *testing.T) {
	s := newTestStore(t)

	report, err := s.AddReport(types.Report{Title: "untagged"})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryRecurring, report.Category)
}

func TestGetReportsByProject(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err = s.AddReport(types.Report{Title: "old active", ProjectID: project.ID, IsActive: true, DatePublished: older})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "new active", ProjectID: project.ID, IsActive: true, DatePublished: newer})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "retired", ProjectID: project.ID, IsActive: false, DatePublished: newer})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "other project", IsActive: true})
	require.NoError(t, err)

	t.Run("all reports, newest first", func(t *testing.T) {
		got := s.GetReportsByProject(project.ID, false)
		require.Len(t, got, 3)
		assert.True(t, !got[0].DatePublished.Before(got[1].DatePublished))
	})

	t.Run("active only", func(t *testing.T) {
		got := s.GetReportsByProject(project.ID, true)
		require.Len(t, got, 2)
		assert.Equal(t, "new active", got[0].Title)
		assert.Equal(t, "old active", got[1].Title)
	})
}

func TestGetReportsGroupedByProject(t *testing.T) {
	s := newTestStore(t)

	harbor, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	_, err = s.AddReport(types.Report{Title: "harbor report", ProjectID: harbor.ID, IsActive: true})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "floating report", IsActive: true})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "dangling report", ProjectID: "gone", IsActive: true})
	require.NoError(t, err)

	groups := s.GetReportsGroupedByProject(false)

	require.Len(t, groups["Harbor Fund"], 1)
	assert.Equal(t, "harbor report", groups["Harbor Fund"][0].Title)

	require.Len(t, groups[UnassignedGroup], 2)
}

func TestGetUnassignedReports(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	_, err = s.AddReport(types.Report{Title: "assigned", ProjectID: project.ID, IsActive: true})
	require.NoError(t, err)
	_, err = s.AddReport(types.Report{Title: "floating", IsActive: true})
	require.NoError(t, err)

	got := s.GetUnassignedReports(false)
	require.Len(t, got, 1)
	assert.Equal(t, "floating", got[0].Title)
}

func TestReportsByProjectExcludesDanglingAfterDelete(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	report, err := s.AddReport(types.Report{Title: "orphaned soon", ProjectID: project.ID, IsActive: true})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(project.ID))

	assert.Empty(t, s.GetReportsByProject(project.ID, false))

	unassigned := s.GetUnassignedReports(false)
	require.Len(t, unassigned, 1)
	assert.Equal(t, report.ID, unassigned[0].ID)
	assert.Equal(t, project.ID, unassigned[0].ProjectID, "dangling reference is kept, not cleared")
}

func TestDeleteReportMissingIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.DeleteReport("never-existed"))
}
