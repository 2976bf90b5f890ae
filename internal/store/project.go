package store

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// sortProjects orders projects by name, case-insensitively.
func sortProjects(projects []types.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
}

// AddProject creates a project. The name is required; string fields are
// trimmed and the ID and creation timestamp are assigned. New projects
// start active. Returns the stored record.
func (s *Store) AddProject(project types.Project) (*types.Project, error) {
	project.Name = trim(project.Name)
	if project.Name == "" {
		return nil, types.ErrInvalidName
	}
	project.ID = s.newID()
	project.DivisionID = trim(project.DivisionID)
	project.IsActive = true
	project.DateCreated = s.now()

	projects := readCollection[types.Project](s, keyProjects)
	projects = append(projects, project)
	if err := writeCollection(s, keyProjects, projects); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects returns all projects sorted by name. When activeOnly is set,
// inactive projects are filtered out.
func (s *Store) GetProjects(activeOnly bool) []types.Project {
	projects := readCollection[types.Project](s, keyProjects)
	if activeOnly {
		filtered := projects[:0:0]
		for _, p := range projects {
			if p.IsActive {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	sortProjects(projects)
	if projects == nil {
		projects = []types.Project{}
	}
	return projects
}

// GetProjectsByDivision returns the projects belonging to the given static
// division, sorted by name. Projects whose division reference matches no
// static division are returned by GetUnassignedProjects instead.
func (s *Store) GetProjectsByDivision(divisionID string, activeOnly bool) []types.Project {
	out := []types.Project{}
	for _, p := range s.GetProjects(activeOnly) {
		if p.DivisionID == divisionID {
			out = append(out, p)
		}
	}
	return out
}

// GetUnassignedProjects returns projects whose division reference is empty
// or matches none of the static divisions.
func (s *Store) GetUnassignedProjects(activeOnly bool) []types.Project {
	out := []types.Project{}
	for _, p := range s.GetProjects(activeOnly) {
		if _, ok := types.DivisionByID(p.DivisionID); !ok {
			out = append(out, p)
		}
	}
	return out
}

// GetProjectByID returns the project with the given ID, or ErrNotFound.
func (s *Store) GetProjectByID(id string) (*types.Project, error) {
	for _, p := range readCollection[types.Project](s, keyProjects) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, types.ErrNotFound
}

// UpdateProject shallow-merges the provided fields over the stored record.
// Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateProject(id string, upd types.ProjectUpdate) (*types.Project, error) {
	projects := readCollection[types.Project](s, keyProjects)
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if upd.Name != nil {
			name := trim(*upd.Name)
			if name == "" {
				return nil, types.ErrInvalidName
			}
			projects[i].Name = name
		}
		if upd.DivisionID != nil {
			projects[i].DivisionID = trim(*upd.DivisionID)
		}
		if upd.IsActive != nil {
			projects[i].IsActive = *upd.IsActive
		}
		if err := writeCollection(s, keyProjects, projects); err != nil {
			return nil, err
		}
		updated := projects[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// DeleteProject removes the project record only. Dependent requests,
// items, reports, documents, links, and controls keep their now-dangling
// projectId and surface as unassigned; deletion never cascades.
func (s *Store) DeleteProject(id string) error {
	projects := readCollection[types.Project](s, keyProjects)
	projects, removed := deleteByID(projects, id, func(p types.Project) string { return p.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyProjects, projects)
}

// ProjectCounts summarizes how many records of each kind reference a
// project. Used by the dashboard sidebar.
type ProjectCounts struct {
	Requests       int
	InProgress     int
	Reports        int
	Documents      int
	DashboardLinks int
	ControlItems   int
}

// CountItemsByProject tallies every collection's references to projectID.
func (s *Store) CountItemsByProject(projectID string) ProjectCounts {
	var counts ProjectCounts
	for _, r := range readCollection[types.Request](s, keyRequests) {
		if r.ProjectID == projectID {
			counts.Requests++
		}
	}
	for _, i := range readCollection[types.InProgressItem](s, keyInProgressItems) {
		if i.ProjectID == projectID {
			counts.InProgress++
		}
	}
	for _, r := range readCollection[types.Report](s, keyReports) {
		if r.ProjectID == projectID {
			counts.Reports++
		}
	}
	for _, d := range readCollection[types.Document](s, keyDocuments) {
		if d.ProjectID == projectID {
			counts.Documents++
		}
	}
	for _, l := range readCollection[types.DashboardLink](s, keyDashboardLinks) {
		if l.ProjectID == projectID {
			counts.DashboardLinks++
		}
	}
	for _, c := range readCollection[types.ControlItem](s, keyControlItems) {
		if c.ProjectID == projectID {
			counts.ControlItems++
		}
	}
	return counts
}

// projectIDSet returns the set of existing project IDs, used to decide
// whether a reference dangles.
func (s *Store) projectIDSet() map[string]bool {
	known := make(map[string]bool)
	for _, p := range readCollection[types.Project](s, keyProjects) {
		known[p.ID] = true
	}
	return known
}
