// Package pebble provides a blobstore.Store backed by an embedded
// CockroachDB pebble database.
//
// It suits processes that keep many small snapshots on local disk and want
// them in a single crash-safe file set instead of one file per blob.
//
//	store, err := pebble.Open("/var/lib/app/snapshots", "lists")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	err = snapshot.Save(ctx, store, "pending.sgl", l)
package pebble
