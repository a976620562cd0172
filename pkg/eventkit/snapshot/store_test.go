package snapshot_test

import (
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBasicOperations(t *testing.T) {
	db := snapshot.NewStore()

	_, ok := db.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, db.Len())

	db.Set("a", 1)
	db.Set("b", "two")

	v, ok := db.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, db.Len())
	assert.Equal(t, []string{"a", "b"}, db.Keys())

	db.Delete("a")
	db.Delete("never-existed")
	assert.Equal(t, 1, db.Len())
}

func TestStoreSaveRestoreRoundTrip(t *testing.T) {
	db := snapshot.NewStore()
	db.Set("name", "alice")
	db.Set("count", float64(3))

	snap, err := db.Save()
	require.NoError(t, err)

	db.Set("name", "bob")
	db.Delete("count")
	db.Set("extra", true)

	require.NoError(t, db.Restore(snap))

	name, _ := db.Get("name")
	count, ok := db.Get("count")
	assert.Equal(t, "alice", name)
	assert.True(t, ok)
	assert.Equal(t, float64(3), count)
	_, ok = db.Get("extra")
	assert.False(t, ok)
}

func TestStoreRestoreNumbersAsFloat(t *testing.T) {
	// JSON round-trip rehydrates numbers as float64.
	db := snapshot.NewStore()
	db.Set("n", 42)

	snap, err := db.Save()
	require.NoError(t, err)
	require.NoError(t, db.Restore(snap))

	n, _ := db.Get("n")
	assert.Equal(t, float64(42), n)
}
