package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	return store
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := Open(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadMissingCollectionIsEmpty(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Load("users"))
	assert.Empty(t, LoadAll[record](store, "users"))
}

func TestLoadCorruptCollectionIsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path("users"), []byte("{not json"), 0o644))

	assert.Empty(t, store.Load("users"))
	assert.Empty(t, LoadAll[record](store, "users"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := []record{
		{ID: "a", Name: "first", CreatedAt: time.Now().UTC()},
		{ID: "b", Name: "second", CreatedAt: time.Now().UTC().Add(time.Second)},
	}
	require.NoError(t, SaveAll(store, "records", want))

	got := LoadAll[record](store, "records")
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestSaveKeepsNonASCIILiteral(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SaveAll(store, "records", []record{{ID: "a", Name: "Анна Сидорова"}}))

	raw, err := os.ReadFile(store.Path("records"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Анна Сидорова")

	got := LoadAll[record](store, "records")
	require.Len(t, got, 1)
	assert.Equal(t, "Анна Сидорова", got[0].Name)
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SaveAll(store, "records", []record{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, SaveAll(store, "records", []record{{ID: "c"}}))

	got := LoadAll[record](store, "records")
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestSaveNilSliceWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, SaveAll[record](store, "records", nil))

	raw, err := os.ReadFile(store.Path("records"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}
