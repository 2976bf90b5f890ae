package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest lets the same contract run against both backends.
func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "memory":
		return NewMemory()
	case "sqlite":
		s, err := OpenSQLite(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	default:
		t.Fatalf("unknown backend %q", name)
		return nil
	}
}

func TestStoreContract(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			t.Run("get missing key", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				_, err := s.Get("requests")
				assert.ErrorIs(t, err, ErrKeyNotFound)
			})

			t.Run("set then get", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				require.NoError(t, s.Set("requests", []byte(`[{"id":"r1"}]`)))

				got, err := s.Get("requests")
				require.NoError(t, err)
				assert.Equal(t, []byte(`[{"id":"r1"}]`), got)
			})

			t.Run("set replaces existing value", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				require.NoError(t, s.Set("schemaVersion", []byte("1")))
				require.NoError(t, s.Set("schemaVersion", []byte("2")))

				got, err := s.Get("schemaVersion")
				require.NoError(t, err)
				assert.Equal(t, []byte("2"), got)
			})

			t.Run("delete is a no-op for absent keys", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				assert.NoError(t, s.Delete("never-set"))
			})

			t.Run("delete removes key", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				require.NoError(t, s.Set("reports", []byte("[]")))
				require.NoError(t, s.Delete("reports"))

				_, err := s.Get("reports")
				assert.ErrorIs(t, err, ErrKeyNotFound)
			})

			t.Run("keys lists all entries", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				require.NoError(t, s.Set("a", []byte("1")))
				require.NoError(t, s.Set("b", []byte("2")))

				keys, err := s.Keys()
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"a", "b"}, keys)
			})

			t.Run("operations after close fail", func(t *testing.T) {
				s := storeUnderTest(t, backend)
				require.NoError(t, s.Close())
				require.NoError(t, s.Close()) // idempotent

				_, err := s.Get("requests")
				assert.ErrorIs(t, err, ErrClosed)
				assert.ErrorIs(t, s.Set("requests", nil), ErrClosed)
			})
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	first, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("projects", []byte(`[{"id":"p1"}]`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get("projects")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), got)
}
