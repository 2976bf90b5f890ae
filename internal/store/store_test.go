package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worktop/internal/kv"
	"github.com/mesh-intelligence/worktop/pkg/types"
)

// newTestStore returns an opened Store over a fresh in-memory backend with
// a deterministic clock (one minute per call) and sequential IDs.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return newTestStoreOn(t, kv.NewMemory())
}

func newTestStoreOn(t *testing.T, backing kv.Store) *Store {
	t.Helper()

	var calls int
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	var seq int
	ids := func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}

	s := New(backing, WithClock(clock), WithIDGenerator(ids))
	require.NoError(t, s.Open())
	return s
}

// failingKV wraps a working backend but fails every write.
type failingKV struct {
	*kv.Memory
}

var errDiskFull = errors.New("disk full")

func (f *failingKV) Set(key string, value []byte) error {
	return errDiskFull
}

func TestReadFailsSoft(t *testing.T) {
	t.Run("corrupt collection reads as empty", func(t *testing.T) {
		backing := kv.NewMemory()
		s := newTestStoreOn(t, backing)

		require.NoError(t, backing.Set(keyRequests, []byte("{not json")))

		assert.Empty(t, s.GetRequests())
	})

	t.Run("missing collection reads as empty", func(t *testing.T) {
		s := newTestStore(t)
		assert.Empty(t, s.GetReports())
		assert.Empty(t, s.GetInProgressItems())
	})

	t.Run("wrong-shape content reads as empty", func(t *testing.T) {
		backing := kv.NewMemory()
		s := newTestStoreOn(t, backing)

		require.NoError(t, backing.Set(keyReports, []byte(`{"id":"not-an-array"}`)))

		assert.Empty(t, s.GetReports())
	})
}

func TestWriteFailureIsReported(t *testing.T) {
	// Open against a working backend first so migration succeeds, then
	// swap in the failing writer.
	working := kv.NewMemory()
	_ = newTestStoreOn(t, working)

	s := New(&failingKV{Memory: working})

	_, err := s.AddRequest(types.Request{Description: "won't stick"})
	assert.ErrorIs(t, err, errDiskFull)

	_, err = s.AddProject(types.Project{Name: "won't stick either"})
	assert.ErrorIs(t, err, errDiskFull)
}

func TestAddTrimsStringFields(t *testing.T) {
	s := newTestStore(t)

	req, err := s.AddRequest(types.Request{
		Description: "  quarterly valuation refresh  ",
		Requester:   "\tM. Alvarez ",
	})
	require.NoError(t, err)

	assert.Equal(t, "quarterly valuation refresh", req.Description)
	assert.Equal(t, "M. Alvarez", req.Requester)
}

func TestGettersReturnFreshCopies(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddProject(types.Project{Name: "Harbor Fund"})
	require.NoError(t, err)

	first := s.GetProjects(false)
	first[0].Name = "mutated"

	second := s.GetProjects(false)
	assert.Equal(t, "Harbor Fund", second[0].Name,
		"mutating a returned collection must not affect storage")
}
