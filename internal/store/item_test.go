package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestItemsByProjectExcludesDanglingAfterDelete(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{
		Name:       "Harbor Fund",
		DivisionID: types.DivisionAssetManagement,
	})
	require.NoError(t, err)

	item, err := s.AddInProgressItem(types.InProgressItem{
		TaskDescription: "model rebuild",
		ProjectID:       project.ID,
	})
	require.NoError(t, err)

	got := s.GetInProgressItemsByProject(project.ID)
	require.Len(t, got, 1)
	assert.Equal(t, item.ID, got[0].ID)

	// Deletion does not cascade: the item survives with its dangling
	// reference but moves out of the by-project view.
	require.NoError(t, s.DeleteProject(project.ID))

	assert.Empty(t, s.GetInProgressItemsByProject(project.ID))

	unassigned := s.GetUnassignedInProgressItems()
	require.Len(t, unassigned, 1)
	assert.Equal(t, item.ID, unassigned[0].ID)
	assert.Equal(t, project.ID, unassigned[0].ProjectID)
}

func TestSetInProgressItemStatus(t *testing.T) {
	s := newTestStore(t)

	item, err := s.AddInProgressItem(types.InProgressItem{TaskDescription: "draft memo"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusNotStarted, item.Status)

	updated, err := s.SetInProgressItemStatus(item.ID, types.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInProgress, updated.Status)

	_, err = s.SetInProgressItemStatus(item.ID, "paused")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestCompleteInProgressItemDeletes(t *testing.T) {
	s := newTestStore(t)

	item, err := s.AddInProgressItem(types.InProgressItem{TaskDescription: "done soon"})
	require.NoError(t, err)

	require.NoError(t, s.CompleteInProgressItem(item.ID))
	assert.Empty(t, s.GetInProgressItems())

	// Completing again is the same no-op as deleting a missing ID.
	assert.NoError(t, s.CompleteInProgressItem(item.ID))
}
