// Package store implements the keyed record store: one serialized JSON record
// per string key, persisted in a local SQLite database. It also provides the
// namespaced key builder, the default hydrator, and versioned record
// migrations run at hydration time.
package store

import "context"

// RecordStore is raw get/set of a serialized value under a string key.
//
// Set is a whole-record overwrite. There is no locking, no versioning, and no
// merge across concurrent writers: two writers that read the same base and
// write back independently will silently lose one write (last writer wins).
// That hazard is a documented property of the layer, not an oversight.
type RecordStore interface {
	// Get returns the stored value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set overwrites the value stored under key. It returns an error wrapping
	// common.ErrStoreFull when the store refuses the write.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the record under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
