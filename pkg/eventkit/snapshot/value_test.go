package snapshot_test

import (
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsolatedFromLaterMutation(t *testing.T) {
	v := snapshot.NewValue(gameState{Level: 1, Inventory: []string{"sword"}})

	snap, err := v.Save()
	require.NoError(t, err)

	// Mutate nested state after saving.
	v.Update(func(s *gameState) {
		s.Level = 99
		s.Inventory[0] = "cursed"
		s.Inventory = append(s.Inventory, "junk")
	})

	// Restoring brings back the state at capture time.
	require.NoError(t, v.Restore(snap))
	assert.Equal(t, 1, v.Get().Level)
	assert.Equal(t, []string{"sword"}, v.Get().Inventory)
}

func TestRestoreDoesNotAliasSnapshot(t *testing.T) {
	v := snapshot.NewValue(gameState{Level: 1, Inventory: []string{"sword"}})

	snap, err := v.Save()
	require.NoError(t, err)

	require.NoError(t, v.Restore(snap))
	v.Update(func(s *gameState) {
		s.Inventory[0] = "mutated"
	})

	// The snapshot can be restored from again, unchanged.
	require.NoError(t, v.Restore(snap))
	assert.Equal(t, []string{"sword"}, v.Get().Inventory)
}

func TestRestoreNilSnapshot(t *testing.T) {
	v := snapshot.NewValue(gameState{Level: 1})

	err := v.Restore(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, snapshot.ErrNilSnapshot)

	var snapErr *snapshot.SnapshotError
	require.ErrorAs(t, err, &snapErr)
	assert.Equal(t, "restore", snapErr.Op)
}

func TestSaveRejectsUnserializableState(t *testing.T) {
	// Channels cannot round-trip through JSON.
	v := snapshot.NewValue(make(chan int))

	_, err := v.Save()
	require.Error(t, err)

	var snapErr *snapshot.SnapshotError
	require.ErrorAs(t, err, &snapErr)
	assert.Equal(t, "save", snapErr.Op)
}

func TestSnapshotAccessors(t *testing.T) {
	v := snapshot.NewValue(gameState{Level: 1})

	snap, err := v.Save()
	require.NoError(t, err)

	assert.False(t, snap.TakenAt().IsZero())
	assert.Equal(t, snap.Size(), len(snap.State()))
	assert.Contains(t, snap.String(), "bytes")

	// State returns a copy; scribbling on it does not corrupt the snapshot.
	raw := snap.State()
	for i := range raw {
		raw[i] = 'x'
	}
	require.NoError(t, v.Restore(snap))
	assert.Equal(t, 1, v.Get().Level)
}
