package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestGetRequestsSortOrder(t *testing.T) {
	s := newTestStore(t)

	// Inserted low, high, medium, high; the test clock advances one
	// minute per call, so later adds are newer.
	for _, urgency := range []string{
		types.UrgencyLow, types.UrgencyHigh, types.UrgencyMedium, types.UrgencyHigh,
	} {
		_, err := s.AddRequest(types.Request{Description: "task", Urgency: urgency})
		require.NoError(t, err)
	}

	got := s.GetRequests()
	require.Len(t, got, 4)

	urgencies := make([]string, len(got))
	for i, r := range got {
		urgencies[i] = r.Urgency
	}
	assert.Equal(t, []string{
		types.UrgencyHigh, types.UrgencyHigh, types.UrgencyMedium, types.UrgencyLow,
	}, urgencies)

	// Among the two high entries, the newer submission comes first.
	assert.True(t, got[0].DateSubmitted.After(got[1].DateSubmitted))
}

func TestAddRequestDefaultsUrgency(t *testing.T) {
	s := newTestStore(t)

	req, err := s.AddRequest(types.Request{Description: "no urgency given"})
	require.NoError(t, err)
	assert.Equal(t, types.UrgencyMedium, req.Urgency)
}

func TestAddRequestRejectsUnknownUrgency(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddRequest(types.Request{Description: "x", Urgency: "critical"})
	assert.ErrorIs(t, err, types.ErrInvalidUrgency)
}

func TestUnassignedPartitionAfterProjectDelete(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{
		Name:       "Harbor Fund",
		DivisionID: types.DivisionAssetManagement,
	})
	require.NoError(t, err)

	assigned, err := s.AddRequest(types.Request{Description: "assigned", ProjectID: project.ID})
	require.NoError(t, err)
	floating, err := s.AddRequest(types.Request{Description: "floating"})
	require.NoError(t, err)

	// Before deletion the assigned request is not unassigned.
	ids := func(reqs []types.Request) []string {
		out := make([]string, len(reqs))
		for i, r := range reqs {
			out[i] = r.ID
		}
		return out
	}
	assert.ElementsMatch(t, []string{floating.ID}, ids(s.GetUnassignedRequests()))
	assert.ElementsMatch(t, []string{assigned.ID}, ids(s.GetRequestsByProject(project.ID)))

	// Deletion does not cascade: the request survives with a dangling
	// reference and moves to the unassigned partition.
	require.NoError(t, s.DeleteProject(project.ID))

	assert.ElementsMatch(t, []string{assigned.ID, floating.ID}, ids(s.GetUnassignedRequests()))
	assert.Empty(t, s.GetRequestsByProject(project.ID))

	survived, err := s.GetRequestByID(assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, survived.ProjectID, "dangling reference is kept, not cleared")
}

func TestUpdateRequest(t *testing.T) {
	s := newTestStore(t)

	req, err := s.AddRequest(types.Request{Description: "initial", Urgency: types.UrgencyLow})
	require.NoError(t, err)

	t.Run("merges only provided fields", func(t *testing.T) {
		urgency := types.UrgencyHigh
		updated, err := s.UpdateRequest(req.ID, types.RequestUpdate{Urgency: &urgency})
		require.NoError(t, err)

		assert.Equal(t, types.UrgencyHigh, updated.Urgency)
		assert.Equal(t, "initial", updated.Description)
		assert.True(t, req.DateSubmitted.Equal(updated.DateSubmitted))
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		desc := "nope"
		_, err := s.UpdateRequest("missing", types.RequestUpdate{Description: &desc})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDeleteRequestMissingIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.DeleteRequest("never-existed"))
}

func TestPromoteRequest(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)
	req, err := s.AddRequest(types.Request{
		Description: "model rebuild",
		Requester:   "J. Kim",
		Urgency:     types.UrgencyHigh,
		ProjectID:   project.ID,
	})
	require.NoError(t, err)

	item, err := s.PromoteRequest(req.ID)
	require.NoError(t, err)

	// Copy plus delete: a fresh record with its own identity.
	assert.NotEqual(t, req.ID, item.ID)
	assert.Equal(t, "model rebuild", item.TaskDescription)
	assert.Equal(t, "J. Kim", item.Requester)
	assert.Equal(t, project.ID, item.ProjectID)
	assert.Equal(t, types.StatusNotStarted, item.Status)

	_, err = s.GetRequestByID(req.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.Len(t, s.GetInProgressItems(), 1)
}

func TestPromoteMissingRequest(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PromoteRequest("missing")
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.Empty(t, s.GetInProgressItems())
}
