package store

import (
	"context"
	"time"

	pr "github.com/unkn0wn-root/uvarint/provider"
)

// SetCostFunc returns the cost reported to the provider for one entry.
type SetCostFunc func(storageKey string, raw []byte) int64

// Store is the provider-agnostic API over uint64 values.
type Store interface {
	Enabled() bool
	Close(context.Context) error

	// Single
	Get(ctx context.Context, key string) (v uint64, ok bool, err error)
	Set(ctx context.Context, key string, v uint64, ttl time.Duration) error
	Del(ctx context.Context, key string) error

	// Many (order-agnostic return; use your own ordering by keys slice)
	GetMany(ctx context.Context, keys []string) (values map[string]uint64, missing []string, err error)
	SetMany(ctx context.Context, items map[string]uint64, ttl time.Duration) error
	DelMany(ctx context.Context, keys []string) error

	// Blob transfer of present keys (see package doc for the layout)
	Export(ctx context.Context, keys []string) ([]byte, error)
	Import(ctx context.Context, blob []byte, ttl time.Duration) (int, error)
}

// Options tune the store. Only Namespace and Provider are required.
type Options struct {
	// Required
	Namespace string // isolates keys, e.g. "quota", "seq", "offsets"
	Provider  pr.Provider

	Logger         Logger        // nil => NopLogger
	Hooks          Hooks         // nil => NopHooks
	DefaultTTL     time.Duration // 0 => 10m; used when ttl == 0
	Disabled       bool          // default false (enabled)
	ComputeSetCost SetCostFunc   // default len(raw)
}

func New(opts Options) (Store, error) {
	return newStore(opts)
}
