package store

import (
	"sort"
	"time"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// upcomingWindow is how far ahead of the due date an item reads as
// "upcoming" rather than "current".
const upcomingWindow = 14 * 24 * time.Hour

// controlStatusRank orders control items most urgent first. Unknown
// status values sort last.
var controlStatusRank = map[string]int{
	types.ControlStatusOverdue:  0,
	types.ControlStatusUpcoming: 1,
	types.ControlStatusCurrent:  2,
}

// sortControlItems orders by status urgency, then due date ascending
// (items without a due date last).
func sortControlItems(items []types.ControlItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, iOK := controlStatusRank[items[i].Status]
		rj, jOK := controlStatusRank[items[j].Status]
		if !iOK {
			ri = len(controlStatusRank)
		}
		if !jOK {
			rj = len(controlStatusRank)
		}
		if ri != rj {
			return ri < rj
		}
		switch {
		case items[i].NextDue == nil:
			return false
		case items[j].NextDue == nil:
			return true
		default:
			return items[i].NextDue.Before(*items[j].NextDue)
		}
	})
}

// AddControlItem creates a control item. Control items are always created
// with an explicit project context. String fields are trimmed, the ID and
// creation timestamp are assigned, frequency defaults to ad-hoc and status
// to current when omitted. Returns the stored record.
func (s *Store) AddControlItem(item types.ControlItem) (*types.ControlItem, error) {
	item.ProjectID = trim(item.ProjectID)
	if item.ProjectID == "" {
		return nil, types.ErrInvalidData
	}
	item.ID = s.newID()
	item.Title = trim(item.Title)
	item.Description = trim(item.Description)
	item.Assignee = trim(item.Assignee)
	item.DateCreated = s.now()

	if item.Frequency == "" {
		item.Frequency = types.FrequencyAdHoc
	} else if !types.ValidFrequency(item.Frequency) {
		return nil, types.ErrInvalidFrequency
	}
	if item.Status == "" {
		item.Status = types.ControlStatusCurrent
	} else if !types.ValidControlStatus(item.Status) {
		return nil, types.ErrInvalidStatus
	}

	items := readCollection[types.ControlItem](s, keyControlItems)
	items = append(items, item)
	if err := writeCollection(s, keyControlItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetControlItems returns the project's control items, most urgent status
// first (overdue, then upcoming, then current; unknown statuses last).
func (s *Store) GetControlItems(projectID string) []types.ControlItem {
	out := []types.ControlItem{}
	if projectID == "" {
		return out
	}
	for _, item := range readCollection[types.ControlItem](s, keyControlItems) {
		if item.ProjectID == projectID {
			out = append(out, item)
		}
	}
	sortControlItems(out)
	return out
}

// GetControlItemByID returns the control item with the given ID, or
// ErrNotFound.
func (s *Store) GetControlItemByID(id string) (*types.ControlItem, error) {
	for _, item := range readCollection[types.ControlItem](s, keyControlItems) {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, types.ErrNotFound
}

// UpdateControlItem shallow-merges the provided fields over the stored
// record. Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateControlItem(id string, upd types.ControlItemUpdate) (*types.ControlItem, error) {
	items := readCollection[types.ControlItem](s, keyControlItems)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if upd.ProjectID != nil {
			items[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.Title != nil {
			items[i].Title = trim(*upd.Title)
		}
		if upd.Description != nil {
			items[i].Description = trim(*upd.Description)
		}
		if upd.Assignee != nil {
			items[i].Assignee = trim(*upd.Assignee)
		}
		if upd.Frequency != nil {
			if !types.ValidFrequency(*upd.Frequency) {
				return nil, types.ErrInvalidFrequency
			}
			items[i].Frequency = *upd.Frequency
		}
		if upd.Status != nil {
			if !types.ValidControlStatus(*upd.Status) {
				return nil, types.ErrInvalidStatus
			}
			items[i].Status = *upd.Status
		}
		if err := writeCollection(s, keyControlItems, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// CompleteControlItem records a completion: lastCompleted is set to now,
// the next due date is computed from the item's frequency (ad-hoc items
// have none), and status resets to current. Returns the updated record,
// or ErrNotFound if no record matches.
func (s *Store) CompleteControlItem(id string) (*types.ControlItem, error) {
	items := readCollection[types.ControlItem](s, keyControlItems)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		completed := s.now()
		items[i].LastCompleted = &completed
		if due, ok := items[i].NextDueAfter(completed); ok {
			items[i].NextDue = &due
		} else {
			items[i].NextDue = nil
		}
		items[i].Status = types.ControlStatusCurrent
		if err := writeCollection(s, keyControlItems, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// RefreshControlStatuses recomputes the project's control statuses from
// their due dates: past due reads overdue, due within two weeks reads
// upcoming, anything else (including unscheduled ad-hoc items) reads
// current. Persists only when something changed.
func (s *Store) RefreshControlStatuses(projectID string) error {
	items := readCollection[types.ControlItem](s, keyControlItems)
	now := s.now()

	changed := false
	for i := range items {
		if items[i].ProjectID != projectID {
			continue
		}
		status := types.ControlStatusCurrent
		if due := items[i].NextDue; due != nil {
			switch {
			case due.Before(now):
				status = types.ControlStatusOverdue
			case due.Sub(now) <= upcomingWindow:
				status = types.ControlStatusUpcoming
			}
		}
		if items[i].Status != status {
			items[i].Status = status
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return writeCollection(s, keyControlItems, items)
}

// DeleteControlItem removes a control item. Deleting a nonexistent ID is
// a no-op success.
func (s *Store) DeleteControlItem(id string) error {
	items := readCollection[types.ControlItem](s, keyControlItems)
	items, removed := deleteByID(items, id, func(c types.ControlItem) string { return c.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyControlItems, items)
}
