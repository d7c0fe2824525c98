package catalog

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces a fresh element id on every call.
type IDGenerator func() string

// UUIDs returns the production generator backed by random UUIDs.
func UUIDs() IDGenerator {
	return uuid.NewString
}

// Sequence returns a deterministic generator yielding prefix_1, prefix_2, ...
// It is safe for concurrent use.
func Sequence(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s_%d", prefix, n.Add(1))
	}
}
