package ports

import "context"

// DocumentCache stores compiled, wire-encoded documents keyed by the
// fingerprint of the screens they were compiled from. Compilation is
// deterministic, so an entry never goes stale for its key.
type DocumentCache interface {
	// Get returns the cached document.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a document under key, replacing any previous entry.
	Put(ctx context.Context, key string, doc []byte) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the fingerprints currently cached, in no particular order.
	Keys(ctx context.Context) ([]string, error)
}
