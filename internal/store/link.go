package store

import (
	"sort"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// sortDashboardLinks orders links newest first.
func sortDashboardLinks(links []types.DashboardLink) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].DateAdded.After(links[j].DateAdded)
	})
}

// AddDashboardLink creates a dashboard link. Links are always created with
// an explicit project context. String fields are trimmed, the ID and added
// timestamp are assigned, and type defaults to performance when omitted.
// Returns the stored record.
func (s *Store) AddDashboardLink(link types.DashboardLink) (*types.DashboardLink, error) {
	link.ProjectID = trim(link.ProjectID)
	if link.ProjectID == "" {
		return nil, types.ErrInvalidData
	}
	link.ID = s.newID()
	link.Title = trim(link.Title)
	link.URL = trim(link.URL)
	link.Description = trim(link.Description)
	link.DateAdded = s.now()

	if link.Type == "" {
		link.Type = types.LinkTypePerformance
	} else if !types.ValidLinkType(link.Type) {
		return nil, types.ErrInvalidLinkType
	}

	links := readCollection[types.DashboardLink](s, keyDashboardLinks)
	links = append(links, link)
	if err := writeCollection(s, keyDashboardLinks, links); err != nil {
		return nil, err
	}
	return &link, nil
}

// GetDashboardLinkByID returns the link with the given ID, or ErrNotFound.
func (s *Store) GetDashboardLinkByID(id string) (*types.DashboardLink, error) {
	for _, l := range readCollection[types.DashboardLink](s, keyDashboardLinks) {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, types.ErrNotFound
}

// GetDashboardLinksByProject returns links for the given project, newest
// first.
func (s *Store) GetDashboardLinksByProject(projectID string) []types.DashboardLink {
	out := []types.DashboardLink{}
	if projectID == "" {
		return out
	}
	for _, l := range readCollection[types.DashboardLink](s, keyDashboardLinks) {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	sortDashboardLinks(out)
	return out
}

// UpdateDashboardLink shallow-merges the provided fields over the stored
// record. Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateDashboardLink(id string, upd types.DashboardLinkUpdate) (*types.DashboardLink, error) {
	links := readCollection[types.DashboardLink](s, keyDashboardLinks)
	for i := range links {
		if links[i].ID != id {
			continue
		}
		if upd.ProjectID != nil {
			links[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.Title != nil {
			links[i].Title = trim(*upd.Title)
		}
		if upd.URL != nil {
			links[i].URL = trim(*upd.URL)
		}
		if upd.Type != nil {
			if !types.ValidLinkType(*upd.Type) {
				return nil, types.ErrInvalidLinkType
			}
			links[i].Type = *upd.Type
		}
		if upd.Description != nil {
			links[i].Description = trim(*upd.Description)
		}
		if err := writeCollection(s, keyDashboardLinks, links); err != nil {
			return nil, err
		}
		updated := links[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// DeleteDashboardLink removes a link. Deleting a nonexistent ID is a no-op
// success.
func (s *Store) DeleteDashboardLink(id string) error {
	links := readCollection[types.DashboardLink](s, keyDashboardLinks)
	links, removed := deleteByID(links, id, func(l types.DashboardLink) string { return l.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyDashboardLinks, links)
}
