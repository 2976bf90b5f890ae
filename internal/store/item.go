package store

import (
	"sort"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// sortItems orders in-progress items newest first.
func sortItems(items []types.InProgressItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateCreated.After(items[j].DateCreated)
	})
}

// AddInProgressItem creates an in-progress item. String fields are trimmed,
// the ID and creation timestamp are assigned, and status defaults to
// not-started when omitted. Returns the stored record.
func (s *Store) AddInProgressItem(item types.InProgressItem) (*types.InProgressItem, error) {
	item.ID = s.newID()
	item.TaskDescription = trim(item.TaskDescription)
	item.Requester = trim(item.Requester)
	item.ProjectID = trim(item.ProjectID)
	item.DivisionID = trim(item.DivisionID)
	item.DateCreated = s.now()

	if item.Status == "" {
		item.Status = types.StatusNotStarted
	} else if !types.ValidItemStatus(item.Status) {
		return nil, types.ErrInvalidStatus
	}

	items := readCollection[types.InProgressItem](s, keyInProgressItems)
	items = append(items, item)
	if err := writeCollection(s, keyInProgressItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetInProgressItems returns all in-progress items, newest first.
func (s *Store) GetInProgressItems() []types.InProgressItem {
	items := readCollection[types.InProgressItem](s, keyInProgressItems)
	sortItems(items)
	return items
}

// GetInProgressItemByID returns the item with the given ID, or ErrNotFound.
func (s *Store) GetInProgressItemByID(id string) (*types.InProgressItem, error) {
	for _, item := range readCollection[types.InProgressItem](s, keyInProgressItems) {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, types.ErrNotFound
}

// GetInProgressItemsByProject returns items referencing the given project,
// newest first. A deleted or unknown project ID yields an empty slice;
// survivors with a dangling reference belong to
// GetUnassignedInProgressItems.
func (s *Store) GetInProgressItemsByProject(projectID string) []types.InProgressItem {
	out := []types.InProgressItem{}
	if projectID == "" || !s.projectIDSet()[projectID] {
		return out
	}
	for _, item := range readCollection[types.InProgressItem](s, keyInProgressItems) {
		if item.ProjectID == projectID {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out
}

// GetUnassignedInProgressItems returns items with no project reference or a
// dangling one, newest first.
func (s *Store) GetUnassignedInProgressItems() []types.InProgressItem {
	known := s.projectIDSet()
	out := []types.InProgressItem{}
	for _, item := range readCollection[types.InProgressItem](s, keyInProgressItems) {
		if item.ProjectID == "" || !known[item.ProjectID] {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out
}

// UpdateInProgressItem shallow-merges the provided fields over the stored
// record. Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateInProgressItem(id string, upd types.InProgressItemUpdate) (*types.InProgressItem, error) {
	items := readCollection[types.InProgressItem](s, keyInProgressItems)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if upd.TaskDescription != nil {
			items[i].TaskDescription = trim(*upd.TaskDescription)
		}
		if upd.Requester != nil {
			items[i].Requester = trim(*upd.Requester)
		}
		if upd.Status != nil {
			if !types.ValidItemStatus(*upd.Status) {
				return nil, types.ErrInvalidStatus
			}
			items[i].Status = *upd.Status
		}
		if upd.TargetCompletionDate != nil {
			target := *upd.TargetCompletionDate
			items[i].TargetCompletionDate = &target
		}
		if upd.ProjectID != nil {
			items[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.DivisionID != nil {
			items[i].DivisionID = trim(*upd.DivisionID)
		}
		if err := writeCollection(s, keyInProgressItems, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// SetInProgressItemStatus mutates the item's status in place.
// Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) SetInProgressItemStatus(id, status string) (*types.InProgressItem, error) {
	return s.UpdateInProgressItem(id, types.InProgressItemUpdate{Status: &status})
}

// CompleteInProgressItem finishes an item by deleting it. There is no
// archival; completion and deletion are the same hard delete.
func (s *Store) CompleteInProgressItem(id string) error {
	return s.DeleteInProgressItem(id)
}

// DeleteInProgressItem removes an item. Deleting a nonexistent ID is a
// no-op success.
func (s *Store) DeleteInProgressItem(id string) error {
	items := readCollection[types.InProgressItem](s, keyInProgressItems)
	items, removed := deleteByID(items, id, func(i types.InProgressItem) string { return i.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyInProgressItems, items)
}
