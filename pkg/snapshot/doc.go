// Package snapshot persists reactive trees.
//
// A Store keeps named byte blobs; a Codec turns a tree snapshot into bytes
// and back. Four stores are provided:
//   - FileStore: one file per snapshot in a directory
//   - BoltStore: a bucket in a bbolt database file
//   - S3Store: objects under a prefix in an S3 bucket
//   - MemoryStore: a map, for tests and short-lived processes
//
// Persist keeps a store in sync with a live tree:
//
//	store, _ := snapshot.OpenBolt("state.db")
//	defer store.Close()
//	h, _ := snapshot.Persist(ctx, root, store, "app", snapshot.JSON)
//	defer h.Stop()
//
// Restore builds a new tree from a stored snapshot:
//
//	root, err := snapshot.Restore(ctx, store, "app", snapshot.JSON)
package snapshot
