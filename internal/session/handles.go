// Package session keeps loaded uploads addressable for later export
// actions. Callers receive an opaque handle token instead of a file path;
// handles expire after a TTL and are swept by a background janitor.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"datalens/domain/core"
	"datalens/domain/table"
)

// Handle associates an opaque token with a loaded table.
type Handle struct {
	ID          core.HandleID
	Filename    string
	Fingerprint core.Fingerprint
	Table       *table.Table
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Registry is a concurrency-safe, in-memory handle store. Each upload gets
// an independent handle; expiry and deletion are idempotent so concurrent
// sweeps and explicit deletes cannot race destructively.
type Registry struct {
	mu      sync.RWMutex
	handles map[core.HandleID]*Handle
	ttl     time.Duration
}

// NewRegistry creates a handle registry with the given time-to-live.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		handles: make(map[core.HandleID]*Handle),
		ttl:     ttl,
	}
}

// Put registers a loaded table under its content fingerprint and returns
// the handle.
func (r *Registry) Put(filename string, fp core.Fingerprint, t *table.Table) *Handle {
	now := time.Now()
	h := &Handle{
		ID:          core.HandleID(core.NewID()),
		Filename:    filename,
		Fingerprint: fp,
		Table:       t,
		CreatedAt:   now,
		ExpiresAt:   now.Add(r.ttl),
	}

	r.mu.Lock()
	r.handles[h.ID] = h
	r.mu.Unlock()

	log.Printf("[Session] Registered handle %s for %s (content %s, expires %s)", h.ID, filename, fp.Short(), h.ExpiresAt.Format(time.RFC3339))
	return h
}

// Get resolves a handle token. Expired handles are removed on access and
// reported as expired rather than missing.
func (r *Registry) Get(id core.HandleID) (*Handle, error) {
	r.mu.RLock()
	h, ok := r.handles[id]
	r.mu.RUnlock()

	if !ok {
		return nil, core.ErrHandleNotFound
	}
	if time.Now().After(h.ExpiresAt) {
		r.Delete(id)
		return nil, core.ErrHandleExpired
	}
	return h, nil
}

// Delete removes a handle. Deleting an absent handle is a no-op.
func (r *Registry) Delete(id core.HandleID) {
	r.mu.Lock()
	delete(r.handles, id)
	r.mu.Unlock()
}

// Len returns the number of live entries, expired or not.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

// SweepExpired drops every handle whose expiry is at or before now and
// returns how many were removed. Safe to call concurrently with Get/Delete.
func (r *Registry) SweepExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, h := range r.handles {
		if !now.Before(h.ExpiresAt) {
			delete(r.handles, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[Session] Swept %d expired handles", removed)
	}
	return removed
}

// StartJanitor runs a periodic expiry sweep until the context is canceled.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r.SweepExpired(now)
			}
		}
	}()
}
