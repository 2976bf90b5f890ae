// Package router holds the navigation state for Worktop: which view is
// active, which project and zone are selected, and the transient search
// and expansion flags. It is the single source of truth for "what is
// currently displayed", independent of the store's persisted data.
package router

import "github.com/mesh-intelligence/worktop/pkg/types"

// View identifies a top-level screen.
type View string

// Top-level views.
const (
	ViewHome           View = "home"
	ViewProject        View = "project"
	ViewManageProjects View = "manage-projects"
)

// validViews is the set of recognized view values.
var validViews = map[View]bool{
	ViewHome:           true,
	ViewProject:        true,
	ViewManageProjects: true,
}

// Zone is the nested 3-way content selector inside the project view.
type Zone int

// Project view zones.
const (
	ZoneReports     Zone = 1 // Reports & Documents
	ZonePerformance Zone = 2 // Performance Monitoring
	ZoneControls    Zone = 3 // Controls & Oversight
)

// State is a snapshot of the navigation state. Snapshots are defensive
// copies; mutating one never affects the Router.
type State struct {
	CurrentView        View
	SelectedDivisionID string
	SelectedProjectID  string
	ActiveZone         Zone
	ExpandedDivisions  map[string]bool
	GlobalSearchTerm   string
	ReportsSearchTerm  string
	ShowActiveOnly     bool
}

// clone returns a deep copy of the state.
func (st State) clone() State {
	expanded := make(map[string]bool, len(st.ExpandedDivisions))
	for id, v := range st.ExpandedDivisions {
		expanded[id] = v
	}
	st.ExpandedDivisions = expanded
	return st
}

// ProjectLookup is the one read-only store capability the Router needs:
// resolving a project ID during the guarded SelectProject transition.
type ProjectLookup interface {
	GetProjectByID(id string) (*types.Project, error)
}

// Params carries optional state overrides for Navigate. Nil fields are
// left untouched (shallow merge).
type Params struct {
	SelectedDivisionID *string
	SelectedProjectID  *string
	ActiveZone         *Zone
	GlobalSearchTerm   *string
	ReportsSearchTerm  *string
	ShowActiveOnly     *bool
}

// Router owns the navigation state machine. Every transition ends by
// synchronously notifying all subscribers with a state snapshot; there is
// no batching or coalescing of rapid successive transitions.
type Router struct {
	lookup      ProjectLookup
	state       State
	subscribers []func(State)
}

// New creates a Router starting on the home view.
func New(lookup ProjectLookup) *Router {
	return &Router{
		lookup: lookup,
		state: State{
			CurrentView:       ViewHome,
			ActiveZone:        ZoneReports,
			ExpandedDivisions: make(map[string]bool),
			ShowActiveOnly:    true,
		},
	}
}

// Subscribe registers a listener invoked after every state transition.
// Listeners are called synchronously, in registration order.
func (r *Router) Subscribe(fn func(State)) {
	r.subscribers = append(r.subscribers, fn)
}

// State returns a defensive copy of the current navigation state.
func (r *Router) State() State {
	return r.state.clone()
}

// notify pushes a snapshot to every subscriber.
func (r *Router) notify() {
	for _, fn := range r.subscribers {
		fn(r.state.clone())
	}
}

// Navigate sets the current view and shallow-merges any supplied param
// overrides. Unknown views are ignored (state unchanged, no notification).
// This is the generic escape hatch; prefer the named transitions.
func (r *Router) Navigate(view View, params Params) {
	if !validViews[view] {
		return
	}
	r.state.CurrentView = view
	if params.SelectedDivisionID != nil {
		r.state.SelectedDivisionID = *params.SelectedDivisionID
	}
	if params.SelectedProjectID != nil {
		r.state.SelectedProjectID = *params.SelectedProjectID
	}
	if params.ActiveZone != nil {
		r.state.ActiveZone = *params.ActiveZone
	}
	if params.GlobalSearchTerm != nil {
		r.state.GlobalSearchTerm = *params.GlobalSearchTerm
	}
	if params.ReportsSearchTerm != nil {
		r.state.ReportsSearchTerm = *params.ReportsSearchTerm
	}
	if params.ShowActiveOnly != nil {
		r.state.ShowActiveOnly = *params.ShowActiveOnly
	}
	r.notify()
}

// SelectProject switches to the project view for the given project. The
// transition is guarded: if the project does not exist the transition is
// silently aborted and the state is unchanged, since a stale reference is
// not a runtime fault. On success the zone resets to Reports & Documents, the
// reports search clears, and the project's parent division is expanded in
// the sidebar (idempotent).
func (r *Router) SelectProject(id string) {
	project, err := r.lookup.GetProjectByID(id)
	if err != nil || project == nil {
		return
	}

	r.state.CurrentView = ViewProject
	r.state.SelectedProjectID = project.ID
	r.state.SelectedDivisionID = project.DivisionID
	r.state.ActiveZone = ZoneReports
	r.state.ReportsSearchTerm = ""
	if project.DivisionID != "" {
		r.state.ExpandedDivisions[project.DivisionID] = true
	}
	r.notify()
}

// SetActiveZone switches the project view's nested zone and clears the
// reports search term; the reports search is scoped per zone visit.
func (r *Router) SetActiveZone(zone Zone) {
	r.state.ActiveZone = zone
	r.state.ReportsSearchTerm = ""
	r.notify()
}

// ToggleDivision expands or collapses a division in the sidebar.
func (r *Router) ToggleDivision(id string) {
	if r.state.ExpandedDivisions[id] {
		delete(r.state.ExpandedDivisions, id)
	} else {
		r.state.ExpandedDivisions[id] = true
	}
	r.notify()
}

// SetGlobalSearch sets the global search term.
func (r *Router) SetGlobalSearch(term string) {
	r.state.GlobalSearchTerm = term
	r.notify()
}

// SetReportsSearch sets the reports search term.
func (r *Router) SetReportsSearch(term string) {
	r.state.ReportsSearchTerm = term
	r.notify()
}

// SetActiveProjectsOnly sets the active-projects-only filter.
func (r *Router) SetActiveProjectsOnly(activeOnly bool) {
	r.state.ShowActiveOnly = activeOnly
	r.notify()
}

// GoHome resets to the home view: selection and both search terms clear,
// but the expanded-division set persists for sidebar continuity.
func (r *Router) GoHome() {
	r.state.CurrentView = ViewHome
	r.state.SelectedProjectID = ""
	r.state.SelectedDivisionID = ""
	r.state.GlobalSearchTerm = ""
	r.state.ReportsSearchTerm = ""
	r.notify()
}
