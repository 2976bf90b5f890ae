// Package tui provides the Bubble Tea model for the interactive dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/worktop/internal/router"
	"github.com/mesh-intelligence/worktop/internal/store"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// searchDebounce is how long typing must pause before a search term is
// pushed into the navigation state.
const searchDebounce = 300 * time.Millisecond

// rowKind tags an entry in the home sidebar.
type rowKind int

const (
	rowDivision rowKind = iota
	rowProject
	rowUnassignedHeader
)

// sidebarRow is one selectable line in the home view's project tree.
type sidebarRow struct {
	kind       rowKind
	divisionID string
	projectID  string
	label      string
}

// searchDebounceMsg fires after the debounce interval; stale sequence
// numbers are discarded so only the last keystroke commits.
type searchDebounceMsg struct {
	seq int
}

// Model is the root Bubble Tea model. It renders whatever view the
// router currently points at and translates key presses into router
// transitions and store operations.
type Model struct {
	store  *store.Store
	router *router.Router

	keymap      KeyMap
	help        help.Model
	searchInput textinput.Model

	width  int
	height int

	cursor     int
	searchMode bool
	searchSeq  int
	showHelp   bool
	errText    string
}

// New creates the dashboard model on top of an opened store.
func New(s *store.Store, r *router.Router) Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "

	return Model{
		store:       s,
		router:      r,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		searchInput: ti,
	}
}

// Init requests the initial window size.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.commitSearch()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search input is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ApplySearch):
		m.searchMode = false
		m.searchInput.Blur()
		m.commitSearch()
		return m, nil

	case key.Matches(msg, m.keymap.CancelSearch):
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.commitSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	m.searchSeq++
	seq := m.searchSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

// commitSearch pushes the input's current value into the router. The
// reports search applies inside the project view's reports zone; the
// global search applies everywhere else.
func (m *Model) commitSearch() {
	st := m.router.State()
	term := m.searchInput.Value()
	if st.CurrentView == router.ViewProject && st.ActiveZone == router.ZoneReports {
		m.router.SetReportsSearch(term)
	} else {
		m.router.SetGlobalSearch(term)
	}
}

// updateKeys handles keys in browse mode.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.router.State()
	m.errText = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.searchMode = true
		if st.CurrentView == router.ViewProject && st.ActiveZone == router.ZoneReports {
			m.searchInput.SetValue(st.ReportsSearchTerm)
		} else {
			m.searchInput.SetValue(st.GlobalSearchTerm)
		}
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.Back):
		m.router.GoHome()
		m.searchInput.SetValue("")
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keymap.ManageProjects):
		m.router.Navigate(router.ViewManageProjects, router.Params{})
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keymap.ToggleActive):
		m.router.SetActiveProjectsOnly(!st.ShowActiveOnly)
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.cursor++
		return m, nil
	}

	switch st.CurrentView {
	case router.ViewHome:
		return m.updateHomeKeys(msg, st)
	case router.ViewProject:
		return m.updateProjectKeys(msg, st)
	case router.ViewManageProjects:
		return m.updateManageKeys(msg, st)
	}
	return m, nil
}

func (m Model) updateHomeKeys(msg tea.KeyMsg, st router.State) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keymap.Select) {
		return m, nil
	}

	rows := m.sidebarRows(st)
	if len(rows) == 0 {
		return m, nil
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}

	switch row := rows[m.cursor]; row.kind {
	case rowDivision:
		m.router.ToggleDivision(row.divisionID)
	case rowProject:
		m.router.SelectProject(row.projectID)
		m.searchInput.SetValue("")
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateProjectKeys(msg tea.KeyMsg, st router.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.NextZone):
		m.setZone(nextZone(st.ActiveZone))
		return m, nil

	case key.Matches(msg, m.keymap.PrevZone):
		m.setZone(prevZone(st.ActiveZone))
		return m, nil

	case key.Matches(msg, m.keymap.Complete):
		if st.ActiveZone != router.ZoneControls {
			return m, nil
		}
		items := m.store.GetControlItems(st.SelectedProjectID)
		if len(items) == 0 {
			return m, nil
		}
		if m.cursor >= len(items) {
			m.cursor = len(items) - 1
		}
		if _, err := m.store.CompleteControlItem(items[m.cursor].ID); err != nil {
			m.errText = fmt.Sprintf("complete failed: %v", err)
		}
		return m, nil
	}
	return m, nil
}

// setZone switches zones and refreshes control statuses when entering
// the controls zone, so due dates are evaluated against the clock now.
func (m *Model) setZone(zone router.Zone) {
	m.router.SetActiveZone(zone)
	m.searchInput.SetValue("")
	m.cursor = 0
	if zone == router.ZoneControls {
		st := m.router.State()
		if err := m.store.RefreshControlStatuses(st.SelectedProjectID); err != nil {
			m.errText = fmt.Sprintf("status refresh failed: %v", err)
		}
	}
}

func nextZone(z router.Zone) router.Zone {
	switch z {
	case router.ZoneReports:
		return router.ZonePerformance
	case router.ZonePerformance:
		return router.ZoneControls
	default:
		return router.ZoneReports
	}
}

func prevZone(z router.Zone) router.Zone {
	switch z {
	case router.ZoneReports:
		return router.ZoneControls
	case router.ZoneControls:
		return router.ZonePerformance
	default:
		return router.ZoneReports
	}
}

func (m Model) updateManageKeys(msg tea.KeyMsg, st router.State) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keymap.Select) {
		return m, nil
	}

	projects := m.store.GetProjects(false)
	if len(projects) == 0 {
		return m, nil
	}
	if m.cursor >= len(projects) {
		m.cursor = len(projects) - 1
	}

	active := !projects[m.cursor].IsActive
	if _, err := m.store.UpdateProject(projects[m.cursor].ID, types.ProjectUpdate{IsActive: &active}); err != nil {
		m.errText = fmt.Sprintf("update failed: %v", err)
	}
	return m, nil
}

// View renders the current router view.
func (m Model) View() string {
	st := m.router.State()

	var body string
	switch st.CurrentView {
	case router.ViewProject:
		body = m.viewProject(st)
	case router.ViewManageProjects:
		body = m.viewManageProjects(st)
	default:
		body = m.viewHome(st)
	}

	var b strings.Builder
	b.WriteString(body)
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	if m.searchMode {
		b.WriteString("\n" + m.searchInput.View())
	}
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.keymap)))
	return b.String()
}

// sidebarRows builds the selectable rows of the home project tree:
// divisions with their projects nested under the expanded ones, then an
// unassigned section for projects with no or dangling division.
func (m Model) sidebarRows(st router.State) []sidebarRow {
	rows := make([]sidebarRow, 0, 16)
	for _, div := range types.Divisions() {
		rows = append(rows, sidebarRow{kind: rowDivision, divisionID: div.ID, label: div.Name})
		if !st.ExpandedDivisions[div.ID] {
			continue
		}
		for _, p := range m.filterProjects(m.store.GetProjectsByDivision(div.ID, st.ShowActiveOnly), st.GlobalSearchTerm) {
			rows = append(rows, sidebarRow{kind: rowProject, divisionID: div.ID, projectID: p.ID, label: p.Name})
		}
	}

	unassigned := m.filterProjects(m.store.GetUnassignedProjects(st.ShowActiveOnly), st.GlobalSearchTerm)
	if len(unassigned) > 0 {
		rows = append(rows, sidebarRow{kind: rowUnassignedHeader, label: "Unassigned"})
		for _, p := range unassigned {
			rows = append(rows, sidebarRow{kind: rowProject, projectID: p.ID, label: p.Name})
		}
	}
	return rows
}

func (m Model) filterProjects(projects []types.Project, term string) []types.Project {
	return store.FilterBySearchTerm(projects, term, store.ProjectSearchFields)
}

func (m Model) viewHome(st router.State) string {
	rows := m.sidebarRows(st)
	cursor := m.cursor
	if cursor >= len(rows) && len(rows) > 0 {
		cursor = len(rows) - 1
	}

	var sidebar strings.Builder
	sidebar.WriteString(titleStyle.Render("Worktop") + "\n")
	for i, row := range rows {
		style := normalStyle
		switch row.kind {
		case rowDivision:
			style = divisionStyle
			marker := "▸ "
			if st.ExpandedDivisions[row.divisionID] {
				marker = "▾ "
			}
			line := marker + row.label
			if i == cursor {
				line = selectedStyle.Render(line)
			} else {
				line = style.Render(line)
			}
			sidebar.WriteString(line + "\n")
			continue
		case rowUnassignedHeader:
			sidebar.WriteString(dimStyle.Render(row.label) + "\n")
			continue
		}
		line := "  " + row.label
		if i == cursor {
			line = selectedStyle.Render(line)
		} else {
			line = style.Render(line)
		}
		sidebar.WriteString(line + "\n")
	}
	if !st.ShowActiveOnly {
		sidebar.WriteString(dimStyle.Render("showing inactive projects") + "\n")
	}

	main := m.viewWorkQueues(st)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(32).Render(sidebar.String()),
		main,
	)
}

// viewWorkQueues renders the home view's right pane: open requests and
// the in-progress board, both narrowed by the global search term.
func (m Model) viewWorkQueues(st router.State) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Requests") + "\n")
	requests := store.FilterBySearchTerm(m.store.GetRequests(), st.GlobalSearchTerm, store.RequestSearchFields)
	if len(requests) == 0 {
		b.WriteString(dimStyle.Render("no open requests") + "\n")
	}
	for _, r := range requests {
		style := normalStyle
		switch r.Urgency {
		case types.UrgencyHigh:
			style = urgentStyle
		case types.UrgencyMedium:
			style = warnStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s", r.Urgency, r.Description)))
		b.WriteString(dimStyle.Render("  " + r.Requester))
		b.WriteString("\n")
	}

	b.WriteString("\n" + titleStyle.Render("In Progress") + "\n")
	items := store.FilterBySearchTerm(m.store.GetInProgressItems(), st.GlobalSearchTerm, store.ItemSearchFields)
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("nothing in progress") + "\n")
	}
	for _, item := range items {
		b.WriteString(normalStyle.Render(fmt.Sprintf("[%s] %s", item.Status, item.TaskDescription)) + "\n")
	}
	return b.String()
}

func (m Model) viewProject(st router.State) string {
	project, err := m.store.GetProjectByID(st.SelectedProjectID)
	if err != nil {
		return errorStyle.Render("project no longer exists; press esc")
	}

	var b strings.Builder
	title := project.Name
	if div, ok := types.DivisionByID(project.DivisionID); ok {
		title += dimStyle.Render("  " + div.Name)
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(m.viewZoneTabs(st.ActiveZone) + "\n\n")

	switch st.ActiveZone {
	case router.ZonePerformance:
		b.WriteString(m.viewPerformanceZone(st))
	case router.ZoneControls:
		b.WriteString(m.viewControlsZone(st))
	default:
		b.WriteString(m.viewReportsZone(st))
	}
	return b.String()
}

func (m Model) viewZoneTabs(active router.Zone) string {
	tabs := []struct {
		zone  router.Zone
		label string
	}{
		{router.ZoneReports, "Reports & Documents"},
		{router.ZonePerformance, "Performance Monitoring"},
		{router.ZoneControls, "Controls & Oversight"},
	}

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab.zone == active {
			parts[i] = activeZoneTabStyle.Render(tab.label)
		} else {
			parts[i] = zoneTabStyle.Render(tab.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewReportsZone(st router.State) string {
	var b strings.Builder

	reports := m.store.GetReportsByProject(st.SelectedProjectID, st.ShowActiveOnly)
	reports = store.FilterBySearchTerm(reports, st.ReportsSearchTerm, store.ReportSearchFields)
	b.WriteString(divisionStyle.Render("Reports") + "\n")
	if len(reports) == 0 {
		b.WriteString(dimStyle.Render("no reports") + "\n")
	}
	for _, r := range reports {
		b.WriteString(normalStyle.Render(r.Title))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", r.Category, r.DatePublished.Format("2006-01-02"))))
		b.WriteString("\n")
	}

	docs := m.store.GetDocumentsByProject(st.SelectedProjectID)
	docs = store.FilterBySearchTerm(docs, st.ReportsSearchTerm, store.DocumentSearchFields)
	b.WriteString("\n" + divisionStyle.Render("Documents") + "\n")
	if len(docs) == 0 {
		b.WriteString(dimStyle.Render("no documents") + "\n")
	}
	for _, d := range docs {
		b.WriteString(normalStyle.Render(d.Title))
		b.WriteString(dimStyle.Render("  " + d.Source))
		b.WriteString("\n")
	}

	if st.ReportsSearchTerm != "" {
		b.WriteString("\n" + dimStyle.Render("filtered by: "+st.ReportsSearchTerm) + "\n")
	}
	return b.String()
}

func (m Model) viewPerformanceZone(st router.State) string {
	var b strings.Builder
	links := m.store.GetDashboardLinksByProject(st.SelectedProjectID)
	if len(links) == 0 {
		b.WriteString(dimStyle.Render("no dashboards linked") + "\n")
	}
	for _, link := range links {
		b.WriteString(normalStyle.Render(link.Title))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s]  %s", link.Type, link.URL)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewControlsZone(st router.State) string {
	items := m.store.GetControlItems(st.SelectedProjectID)
	cursor := m.cursor
	if cursor >= len(items) && len(items) > 0 {
		cursor = len(items) - 1
	}

	var b strings.Builder
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("no control items") + "\n")
	}
	for i, item := range items {
		style := okStyle
		switch item.Status {
		case types.ControlStatusOverdue:
			style = urgentStyle
		case types.ControlStatusUpcoming:
			style = warnStyle
		}
		line := fmt.Sprintf("[%s] %s", item.Status, item.Title)
		if item.NextDue != nil {
			line += dimStyle.Render("  due " + item.NextDue.Format("2006-01-02"))
		}
		if i == cursor {
			b.WriteString(selectedStyle.Render("> ") + style.Render(line) + "\n")
		} else {
			b.WriteString("  " + style.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewManageProjects(st router.State) string {
	projects := m.store.GetProjects(false)
	cursor := m.cursor
	if cursor >= len(projects) && len(projects) > 0 {
		cursor = len(projects) - 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Manage Projects") + "\n")
	if len(projects) == 0 {
		b.WriteString(dimStyle.Render("no projects yet") + "\n")
	}
	for i, p := range projects {
		marker := urgentStyle.Render("inactive")
		if p.IsActive {
			marker = okStyle.Render("active")
		}
		divName := "unassigned"
		if div, ok := types.DivisionByID(p.DivisionID); ok {
			divName = div.Name
		}
		counts := m.store.CountItemsByProject(p.ID)
		line := fmt.Sprintf("%-30s %s  %s", p.Name, marker,
			dimStyle.Render(fmt.Sprintf("%s  %d reports, %d docs, %d controls",
				divName, counts.Reports, counts.Documents, counts.ControlItems)))
		if i == cursor {
			b.WriteString(selectedStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("enter toggles active; deletion never removes a project's requests or reports"))
	return b.String()
}
