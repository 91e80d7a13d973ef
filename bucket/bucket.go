// Package bucket defines the versioned bucket storage used by offcache.
//
// A Store holds named buckets of framed request/response entries. One bucket
// exists per cache generation (version tag); offcache populates the current
// bucket in a single batch at install time and deletes every other bucket at
// activation.
//
// Implementations MUST be safe for concurrent use and byte-for-byte
// transparent: Get must return exactly the same []byte previously stored for
// a key (no prepended/appended metadata, no re-encoding, no mutation).
// PutAll MUST be all-or-nothing: either the entire batch becomes visible
// under the bucket name or none of it does. A failed PutAll MUST NOT leave a
// bucket that satisfies lookups for a subset of the batch.
package bucket

import "context"

// Store is a named multi-bucket byte store.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, name, key string) ([]byte, bool, error)

	// PutAll creates the named bucket if needed and stores the whole batch
	// atomically. Keys already present in the bucket are overwritten.
	PutAll(ctx context.Context, name string, entries map[string][]byte) error

	// Names enumerates existing bucket names.
	Names(ctx context.Context) ([]string, error)

	// Delete removes a bucket and all its entries.
	Delete(ctx context.Context, name string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
