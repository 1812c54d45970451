// Package blob abstracts the durable key-value mechanism the booking
// collection lives in: one serialized blob per namespace key, read and
// written whole.
package blob

import "context"

type Backend interface {
	// Load returns the blob stored under key. A missing key is an
	// infra.KindNotFound error.
	Load(ctx context.Context, key string) ([]byte, error)
	// Store replaces the blob under key. Implementations must not leave a
	// partially written blob observable, even on failure.
	Store(ctx context.Context, key string, data []byte) error
}
