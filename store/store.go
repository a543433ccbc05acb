package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/unkn0wn-root/uvarint/internal/wire"
	pr "github.com/unkn0wn-root/uvarint/provider"
)

const defaultTTL = 10 * time.Minute

type store struct {
	ns             string
	prefix         string
	provider       pr.Provider
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func newStore(opts Options) (*store, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	s := &store{
		ns:       opts.Namespace,
		prefix:   "uv:" + opts.Namespace + ":",
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}

	return s, nil
}

func (s *store) Enabled() bool { return s.enabled }

func (s *store) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store) Get(ctx context.Context, key string) (uint64, bool, error) {
	if !s.enabled {
		return 0, false, nil
	}
	if key == "" {
		return 0, false, ErrEmptyKey
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	v, err := wire.DecodeSingle(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return 0, false, nil
	}
	return v, true, nil
}

func (s *store) Set(ctx context.Context, key string, v uint64, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	k := s.storageKey(key)
	raw := wire.EncodeSingle(v)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", Fields{"key": key})
	}
	return nil
}

func (s *store) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	k := s.storageKey(key)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return err
	}
	return nil
}

func (s *store) GetMany(ctx context.Context, keys []string) (map[string]uint64, []string, error) {
	out := make(map[string]uint64, len(keys))
	if !s.enabled {
		missing := make([]string, 0, len(keys))
		missing = append(missing, keys...)
		return out, missing, nil
	}

	var missing []string
	for _, k := range keys {
		if _, seen := out[k]; seen {
			continue
		}
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return nil, nil, fmt.Errorf("store: get %q: %w", k, err)
		}
		if ok {
			out[k] = v
		} else {
			missing = append(missing, k)
		}
	}
	return out, missing, nil
}

func (s *store) SetMany(ctx context.Context, items map[string]uint64, ttl time.Duration) error {
	if !s.enabled || len(items) == 0 {
		return nil
	}
	// stable order keeps provider-side behavior reproducible
	for _, k := range sortedKeys(items) {
		if err := s.Set(ctx, k, items[k], ttl); err != nil {
			return fmt.Errorf("store: set %q: %w", k, err)
		}
	}
	return nil
}

// DelMany attempts every key and returns a *DeleteError listing the ones that
// failed.
func (s *store) DelMany(ctx context.Context, keys []string) error {
	if !s.enabled {
		return nil
	}
	var derr *DeleteError
	for _, k := range keys {
		if err := s.Del(ctx, k); err != nil {
			if derr == nil {
				derr = &DeleteError{}
			}
			derr.Keys = append(derr.Keys, k)
			derr.Errs = append(derr.Errs, err)
		}
	}
	if derr != nil {
		return derr
	}
	return nil
}

// Export encodes the present members of keys, sorted by key. Missing and
// corrupt entries are left out.
func (s *store) Export(ctx context.Context, keys []string) ([]byte, error) {
	values, _, err := s.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	items := make([]wire.BulkItem, 0, len(values))
	for _, k := range sortedKeys(values) {
		items = append(items, wire.BulkItem{Key: k, Value: values[k]})
	}
	return wire.EncodeBulk(items)
}

// Import stores every member of a blob produced by Export and returns how
// many were written. A malformed blob is rejected as a whole before anything
// is written.
func (s *store) Import(ctx context.Context, blob []byte, ttl time.Duration) (int, error) {
	items, err := wire.DecodeBulk(blob)
	if err != nil {
		return 0, fmt.Errorf("store: import: %w", err)
	}
	if !s.enabled {
		return 0, nil
	}
	for i, it := range items {
		if err := s.Set(ctx, it.Key, it.Value, ttl); err != nil {
			return i, fmt.Errorf("store: import %q: %w", it.Key, err)
		}
	}
	s.log.Debug("imported values", Fields{"ns": s.ns, "count": len(items)})
	return len(items), nil
}

func (s *store) selfHeal(ctx context.Context, storageKey, reason string) {
	s.hooks.SelfHeal(storageKey, reason)
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.hooks.ProviderError("del", storageKey, err)
		s.log.Warn("self-heal delete failed", Fields{"key": storageKey, "reason": reason, "err": err})
		return
	}
	s.log.Debug("self-healed entry", Fields{"key": storageKey, "reason": reason})
}

func (s *store) storageKey(userKey string) string {
	// isolate by namespace
	return s.prefix + userKey
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
