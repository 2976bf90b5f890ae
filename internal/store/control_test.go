package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/internal/kv"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestGetControlItemsSortOrder(t *testing.T) {
	backing := kv.NewMemory()
	s := newTestStoreOn(t, backing)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	for _, status := range []string{
		types.ControlStatusCurrent, types.ControlStatusOverdue, types.ControlStatusUpcoming,
	} {
		_, err := s.AddControlItem(types.ControlItem{
			ProjectID: project.ID,
			Title:     status + " item",
			Status:    status,
		})
		require.NoError(t, err)
	}

	// An unknown status can only arrive via hand-edited data; it must
	// sort last, not break the ordering.
	require.NoError(t, backing.Set(keyControlItems, mustAppendRawControl(t, backing,
		`{"id":"weird","projectId":"`+project.ID+`","title":"mystery","status":"paused","frequency":"ad-hoc","dateCreated":"2026-01-01T00:00:00Z"}`)))

	got := s.GetControlItems(project.ID)
	require.Len(t, got, 4)

	statuses := make([]string, len(got))
	for i, item := range got {
		statuses[i] = item.Status
	}
	assert.Equal(t, []string{
		types.ControlStatusOverdue, types.ControlStatusUpcoming, types.ControlStatusCurrent, "paused",
	}, statuses)
}

// mustAppendRawControl splices a raw record into the stored collection.
func mustAppendRawControl(t *testing.T, backing kv.Store, record string) []byte {
	t.Helper()
	raw, err := backing.Get(keyControlItems)
	require.NoError(t, err)
	return []byte(string(raw[:len(raw)-1]) + "," + record + "]")
}

func TestCompleteControlItem(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	t.Run("scheduled frequency computes next due", func(t *testing.T) {
		item, err := s.AddControlItem(types.ControlItem{
			ProjectID: project.ID,
			Title:     "covenant check",
			Frequency: types.FrequencyMonthly,
			Status:    types.ControlStatusOverdue,
		})
		require.NoError(t, err)

		completed, err := s.CompleteControlItem(item.ID)
		require.NoError(t, err)

		require.NotNil(t, completed.LastCompleted)
		require.NotNil(t, completed.NextDue)
		assert.True(t, completed.NextDue.Equal(completed.LastCompleted.AddDate(0, 1, 0)))
		assert.Equal(t, types.ControlStatusCurrent, completed.Status)
	})

	t.Run("ad-hoc items have no schedule", func(t *testing.T) {
		item, err := s.AddControlItem(types.ControlItem{
			ProjectID: project.ID,
			Title:     "one-off attestation",
			Frequency: types.FrequencyAdHoc,
		})
		require.NoError(t, err)

		completed, err := s.CompleteControlItem(item.ID)
		require.NoError(t, err)

		assert.NotNil(t, completed.LastCompleted)
		assert.Nil(t, completed.NextDue)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := s.CompleteControlItem("missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestRefreshControlStatuses(t *testing.T) {
	s := newTestStore(t)

	project, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	now := s.now()
	past := now.Add(-48 * time.Hour)
	soon := now.Add(7 * 24 * time.Hour)
	far := now.Add(60 * 24 * time.Hour)

	mk := func(title string, due *time.Time) string {
		item, err := s.AddControlItem(types.ControlItem{
			ProjectID: project.ID,
			Title:     title,
			Frequency: types.FrequencyMonthly,
		})
		require.NoError(t, err)
		if due != nil {
			// Seed the due date directly; Add always starts current.
			items := readCollection[types.ControlItem](s, keyControlItems)
			for i := range items {
				if items[i].ID == item.ID {
					items[i].NextDue = due
				}
			}
			require.NoError(t, writeCollection(s, keyControlItems, items))
		}
		return item.ID
	}

	overdueID := mk("late", &past)
	upcomingID := mk("due soon", &soon)
	currentID := mk("far out", &far)
	adhocID := mk("no schedule", nil)

	require.NoError(t, s.RefreshControlStatuses(project.ID))

	byID := make(map[string]types.ControlItem)
	for _, item := range s.GetControlItems(project.ID) {
		byID[item.ID] = item
	}
	assert.Equal(t, types.ControlStatusOverdue, byID[overdueID].Status)
	assert.Equal(t, types.ControlStatusUpcoming, byID[upcomingID].Status)
	assert.Equal(t, types.ControlStatusCurrent, byID[currentID].Status)
	assert.Equal(t, types.ControlStatusCurrent, byID[adhocID].Status)
}

func TestAddControlItemRequiresProject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddControlItem(types.ControlItem{Title: "floating control"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}
