// Package local is an in-process Provider backed by a map.
// Expired entries are dropped on read and by an optional sweep goroutine.
package local

import (
	"context"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/uvarint/provider"
)

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

// Provider keeps entries in memory. MaxEntries > 0 makes Set return ok=false
// for new keys once the map is full.
type Provider struct {
	mu         sync.RWMutex
	m          map[string]entry
	maxEntries int

	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	now func() time.Time
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	SweepInterval time.Duration // 0 disables the sweep goroutine
	MaxEntries    int           // 0 => unbounded
}

func New(cfg Config) *Provider {
	p := &Provider{
		m:          make(map[string]entry),
		maxEntries: cfg.MaxEntries,
		now:        time.Now,
	}
	if cfg.SweepInterval > 0 {
		p.ticker = time.NewTicker(cfg.SweepInterval)
		p.stopCh = make(chan struct{})
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.ticker.C:
					p.Sweep()
				case <-p.stopCh:
					return
				}
			}
		}()
	}
	return p
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	e, ok := p.m[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && !p.now().Before(e.exp) {
		p.mu.Lock()
		// re-check; a concurrent Set may have replaced it
		if cur, ok := p.m[key]; ok && cur.exp.Equal(e.exp) {
			delete(p.m, key)
		}
		p.mu.Unlock()
		return nil, false, nil
	}
	return e.v, true, nil
}

// Set copies value, so callers may reuse their buffer.
func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = p.now().Add(ttl)
	}
	v := append([]byte(nil), value...)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.m[key]; !exists && p.maxEntries > 0 && len(p.m) >= p.maxEntries {
		return false, nil
	}
	p.m[key] = entry{v: v, exp: exp}
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired ones included until
// they are swept.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.m)
}

// Sweep removes expired entries.
func (p *Provider) Sweep() {
	now := p.now()
	p.mu.Lock()
	for k, e := range p.m {
		if !e.exp.IsZero() && !now.Before(e.exp) {
			delete(p.m, k)
		}
	}
	p.mu.Unlock()
}

func (p *Provider) Close(_ context.Context) error {
	p.once.Do(func() {
		if p.stopCh != nil {
			close(p.stopCh)
			p.ticker.Stop()
			p.wg.Wait()
		}
	})
	return nil
}
