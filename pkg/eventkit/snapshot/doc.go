/*
Package snapshot provides memento-style state capture, LIFO undo, and
transactional rollback.

# Roles

Three roles cooperate:

  - An Originator owns mutable state and can Save it into a Snapshot and
    Restore from one. Value[T] wraps any JSON-serializable value; Store is a
    ready-made key-value originator.
  - A Snapshot is an immutable, timestamped deep copy of state at capture
    time. Only originators create snapshots.
  - A Caretaker owns the ordered history of snapshots for one originator and
    never looks inside them.

Deep-copy isolation comes from serialization: a snapshot stores state as
JSON, so no later mutation of the originator can reach into a snapshot, and
restoring copies state back out rather than aliasing it.

# Undo

	game := snapshot.NewValue(GameState{Level: 1})
	ct := snapshot.NewCaretaker(game)

	ct.Backup(ctx)
	game.Update(func(s *GameState) { s.Level = 2 })

	ct.Undo(ctx) // back to Level 1
	ct.Undo(ctx) // history exhausted: reported no-op, state unchanged

Undo is LIFO: each call reverts to the state at the previous Backup. Undo on
an empty history returns (false, nil) and never touches the originator.

# Transactions

Transact guards a block of mutations. On failure the state is rolled back to
the entry snapshot and the failure is re-surfaced:

	db := snapshot.NewStore()
	ct := snapshot.NewCaretaker(db)

	err := ct.Transact(ctx, func(ctx context.Context) error {
	    db.Set("b", 20)
	    return errors.New("something went wrong")
	})
	// err wraps the failure; db no longer contains the write to "b"

# History Backends

The history defaults to an in-memory stack. NewSQLiteHistory persists the
stack so undo history survives restarts:

	hist, err := snapshot.NewSQLiteHistory("./undo.db")
	ct := snapshot.NewCaretaker(db, snapshot.WithHistory(hist))

HistoryFromConfig selects a backend from configuration.
*/
package snapshot
