package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/internal/kv"
	"github.com/mesh-intelligence/worktop/internal/router"
	"github.com/mesh-intelligence/worktop/internal/store"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// newTestModel builds a model over an in-memory store seeded with one
// project in each division state plus some work items.
func newTestModel(t *testing.T) (Model, *store.Store, *router.Router) {
	t.Helper()

	s := store.New(kv.NewMemory())
	require.NoError(t, s.Open())

	_, err := s.AddProject(types.Project{
		Name:       "Harbor Fund",
		DivisionID: types.DivisionAssetManagement,
	})
	require.NoError(t, err)

	_, err = s.AddRequest(types.Request{
		Description: "annual audit prep",
		Requester:   "J. Kim",
		Urgency:     types.UrgencyHigh,
	})
	require.NoError(t, err)

	r := router.New(s)
	return New(s, r), s, r
}

func keyPress(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestHomeViewRendersWorkQueues(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Requests")
	assert.Contains(t, out, "annual audit prep")
	assert.Contains(t, out, "Asset Management")
}

func TestExpandDivisionAndSelectProject(t *testing.T) {
	m, _, r := newTestModel(t)

	// Cursor starts on the first division; enter expands it, then the
	// project appears as the next row and enter opens it.
	next := keyPress(m, "enter")
	assert.True(t, r.State().ExpandedDivisions[types.DivisionAssetManagement])

	next = keyPress(next, "down", "enter")

	st := r.State()
	assert.Equal(t, router.ViewProject, st.CurrentView)
	require.NotEmpty(t, st.SelectedProjectID)

	out := next.View()
	assert.Contains(t, out, "Harbor Fund")
	assert.Contains(t, out, "Reports & Documents")
}

func TestZoneCyclingClearsReportsSearch(t *testing.T) {
	m, _, r := newTestModel(t)

	m2 := keyPress(m, "enter", "down", "enter")
	require.Equal(t, router.ViewProject, r.State().CurrentView)

	r.SetReportsSearch("valuation")
	m2 = keyPress(m2, "tab")

	st := r.State()
	assert.Equal(t, router.ZonePerformance, st.ActiveZone)
	assert.Empty(t, st.ReportsSearchTerm)
}

func TestEscReturnsHome(t *testing.T) {
	m, _, r := newTestModel(t)

	m2 := keyPress(m, "enter", "down", "enter")
	require.Equal(t, router.ViewProject, r.State().CurrentView)

	keyPress(m2, "esc")
	assert.Equal(t, router.ViewHome, r.State().CurrentView)
}

func TestManageProjectsToggle(t *testing.T) {
	m, s, r := newTestModel(t)

	m2 := keyPress(m, "m")
	require.Equal(t, router.ViewManageProjects, r.State().CurrentView)

	out := m2.View()
	assert.Contains(t, out, "Manage Projects")
	assert.Contains(t, out, "active")

	keyPress(m2, "enter")
	projects := s.GetProjects(false)
	require.Len(t, projects, 1)
	assert.False(t, projects[0].IsActive)
}

func TestSearchDebounceDiscardsStaleTicks(t *testing.T) {
	m, _, r := newTestModel(t)

	m2 := keyPress(m, "/")
	mm := m2.(Model)
	require.True(t, mm.searchMode)

	// Two keystrokes bump the sequence twice; only the latest tick may
	// commit the term.
	m2 = keyPress(m2, "a")
	m2 = keyPress(m2, "b")
	mm = m2.(Model)

	m2, _ = m2.Update(searchDebounceMsg{seq: mm.searchSeq - 1})
	assert.Empty(t, r.State().GlobalSearchTerm, "stale tick must not commit")

	m2, _ = m2.Update(searchDebounceMsg{seq: mm.searchSeq})
	assert.Equal(t, "ab", r.State().GlobalSearchTerm)
}

func TestSearchFiltersRequests(t *testing.T) {
	m, s, r := newTestModel(t)

	_, err := s.AddRequest(types.Request{Description: "pricing refresh", Requester: "A. Okafor"})
	require.NoError(t, err)

	r.SetGlobalSearch("audit")
	out := m.View()

	assert.Contains(t, out, "annual audit prep")
	assert.False(t, strings.Contains(out, "pricing refresh"))
}
