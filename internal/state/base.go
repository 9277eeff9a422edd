// Package state holds the application state: in-memory stores for contents,
// platform accounts and configuration, each mirrored write-through into the
// durable key-value store, plus the facade composing them.
package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/rs/zerolog"
)

// base carries what every store needs: the durable adapter, a component
// logger and the lock guarding the in-memory state. Adapter failures never
// escape a store; they are logged and the store keeps serving from memory.
type base struct {
	kv  kvstore.Store
	log zerolog.Logger
	mu  sync.RWMutex
}

func newBase(kv kvstore.Store, log zerolog.Logger, component string) base {
	return base{
		kv:  kv,
		log: log.With().Str("store", component).Logger(),
	}
}

// get reads a raw value, swallowing adapter errors so load paths can fall
// back to defaults
func (b *base) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := b.kv.Get(ctx, key)
	if err != nil {
		b.log.Error().Err(err).Str("key", key).Msg("Failed to read from durable store")
		return "", false
	}
	return raw, ok
}

// set writes a raw value. On failure the in-memory mutation stands; the
// unpersisted change is lost on restart, which is the accepted gap.
func (b *base) set(ctx context.Context, key, value string) {
	if err := b.kv.Set(ctx, key, value); err != nil {
		b.log.Error().Err(err).Str("key", key).Msg("Failed to persist to durable store, in-memory state retained")
	}
}

// setJSON marshals v and writes it under key
func (b *base) setJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.log.Error().Err(err).Str("key", key).Msg("Failed to marshal state for persistence")
		return
	}
	b.set(ctx, key, string(data))
}
