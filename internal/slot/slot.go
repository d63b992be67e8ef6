// Package slot provides a single named durable blob, the persistence
// backend behind the favorites store. A slot holds one opaque value that is
// read wholesale at startup and rewritten wholesale on every mutation.
package slot

import "context"

// Slot is a durable single-value store.
//
// Read returns (nil, nil) when nothing has ever been written; a missing
// value is a normal state, not an error. Write replaces the stored value
// atomically from the caller's point of view: when it returns nil the value
// is durable.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, value []byte) error
}
