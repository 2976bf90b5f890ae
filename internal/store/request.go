package store

import (
	"sort"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// urgencyRank orders requests most urgent first. Unknown values sort last.
var urgencyRank = map[string]int{
	types.UrgencyHigh:   0,
	types.UrgencyMedium: 1,
	types.UrgencyLow:    2,
}

// sortRequests orders by urgency ascending (high first), then submission
// date descending (newest first) among ties.
func sortRequests(requests []types.Request) {
	sort.SliceStable(requests, func(i, j int) bool {
		ri, iOK := urgencyRank[requests[i].Urgency]
		rj, jOK := urgencyRank[requests[j].Urgency]
		if !iOK {
			ri = len(urgencyRank)
		}
		if !jOK {
			rj = len(urgencyRank)
		}
		if ri != rj {
			return ri < rj
		}
		return requests[i].DateSubmitted.After(requests[j].DateSubmitted)
	})
}

// AddRequest creates a request. String fields are trimmed, the ID and
// submission timestamp are assigned, and urgency defaults to medium when
// omitted. Returns the stored record.
func (s *Store) AddRequest(req types.Request) (*types.Request, error) {
	req.ID = s.newID()
	req.Description = trim(req.Description)
	req.Requester = trim(req.Requester)
	req.ProjectID = trim(req.ProjectID)
	req.DivisionID = trim(req.DivisionID)
	req.DateSubmitted = s.now()

	if req.Urgency == "" {
		req.Urgency = types.UrgencyMedium
	} else if !types.ValidUrgency(req.Urgency) {
		return nil, types.ErrInvalidUrgency
	}

	requests := readCollection[types.Request](s, keyRequests)
	requests = append(requests, req)
	if err := writeCollection(s, keyRequests, requests); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetRequests returns all requests, most urgent first.
func (s *Store) GetRequests() []types.Request {
	requests := readCollection[types.Request](s, keyRequests)
	sortRequests(requests)
	return requests
}

// GetRequestByID returns the request with the given ID, or ErrNotFound.
func (s *Store) GetRequestByID(id string) (*types.Request, error) {
	for _, req := range readCollection[types.Request](s, keyRequests) {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, types.ErrNotFound
}

// GetRequestsByProject returns requests referencing the given project,
// most urgent first. A deleted or unknown project ID yields an empty
// slice; survivors with a dangling reference belong to
// GetUnassignedRequests.
func (s *Store) GetRequestsByProject(projectID string) []types.Request {
	out := []types.Request{}
	if projectID == "" || !s.projectIDSet()[projectID] {
		return out
	}
	for _, req := range readCollection[types.Request](s, keyRequests) {
		if req.ProjectID == projectID {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out
}

// GetUnassignedRequests returns requests with no project reference or a
// dangling one (the referenced project no longer exists), most urgent first.
func (s *Store) GetUnassignedRequests() []types.Request {
	known := s.projectIDSet()
	var out []types.Request
	for _, req := range readCollection[types.Request](s, keyRequests) {
		if req.ProjectID == "" || !known[req.ProjectID] {
			out = append(out, req)
		}
	}
	sortRequests(out)
	if out == nil {
		out = []types.Request{}
	}
	return out
}

// UpdateRequest shallow-merges the provided fields over the stored record.
// Returns the updated record, or ErrNotFound if no record matches.
func (s *Store) UpdateRequest(id string, upd types.RequestUpdate) (*types.Request, error) {
	requests := readCollection[types.Request](s, keyRequests)
	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		if upd.Description != nil {
			requests[i].Description = trim(*upd.Description)
		}
		if upd.Requester != nil {
			requests[i].Requester = trim(*upd.Requester)
		}
		if upd.Urgency != nil {
			if !types.ValidUrgency(*upd.Urgency) {
				return nil, types.ErrInvalidUrgency
			}
			requests[i].Urgency = *upd.Urgency
		}
		if upd.ProjectID != nil {
			requests[i].ProjectID = trim(*upd.ProjectID)
		}
		if upd.DivisionID != nil {
			requests[i].DivisionID = trim(*upd.DivisionID)
		}
		if err := writeCollection(s, keyRequests, requests); err != nil {
			return nil, err
		}
		updated := requests[i]
		return &updated, nil
	}
	return nil, types.ErrNotFound
}

// DeleteRequest removes a request. Deleting a nonexistent ID is a no-op
// success.
func (s *Store) DeleteRequest(id string) error {
	requests := readCollection[types.Request](s, keyRequests)
	requests, removed := deleteByID(requests, id, func(r types.Request) string { return r.ID })
	if !removed {
		return nil
	}
	return writeCollection(s, keyRequests, requests)
}

// PromoteRequest converts a request into an InProgressItem: the request's
// fields are copied into a new item with status not-started, then the
// request is deleted. This is a copy plus delete, not a state transition
// on the same record. Returns ErrNotFound if the request does not exist.
func (s *Store) PromoteRequest(id string) (*types.InProgressItem, error) {
	req, err := s.GetRequestByID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.AddInProgressItem(types.InProgressItem{
		TaskDescription: req.Description,
		Requester:       req.Requester,
		ProjectID:       req.ProjectID,
		DivisionID:      req.DivisionID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.DeleteRequest(id); err != nil {
		return nil, err
	}
	return item, nil
}
