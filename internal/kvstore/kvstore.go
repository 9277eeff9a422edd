// Package kvstore provides the durable key-value store the application state
// is mirrored into. Values are raw strings (JSON text for structured data);
// keys are fixed per store.
package kvstore

import "context"

// Store is the durable key-value adapter. Get reports absence through the
// boolean, not an error; errors mean the backend itself failed. Callers are
// expected to log failures and degrade rather than propagate them.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
