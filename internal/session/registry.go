package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/responsive-toolbar/internal/page"
)

const (
	// DefaultTTL is how long a rendered view waits for its event connection.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxViews caps the views held at once.
	DefaultMaxViews = 10000
)

type entry struct {
	prepared *page.Prepared
	lastSeen time.Time
	attached int
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxViews caps the number of views held. When full, Add evicts the
// least recently seen view without an event connection. n <= 0 keeps the
// default.
func WithMaxViews(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxViews = n
		}
	}
}

// Registry keeps the views rendered for live browser pages so that click
// events can be routed back to them.
type Registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	maxViews int
	entries  map[string]*entry
	now      func() time.Time
}

// NewRegistry creates a registry. A non-positive ttl uses DefaultTTL.
func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		ttl:      ttl,
		maxViews: DefaultMaxViews,
		entries:  make(map[string]*entry),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add stores p and returns its view id.
func (r *Registry) Add(p *page.Prepared) string {
	id := uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) >= r.maxViews {
		r.evictOldest()
	}
	r.entries[id] = &entry{prepared: p, lastSeen: r.now()}
	return id
}

// evictOldest drops the least recently seen unattached view. Views with a
// live connection are kept even when that leaves the registry over its cap.
func (r *Registry) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.entries {
		if e.attached > 0 {
			continue
		}
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.entries, oldestID)
	}
}

// Get returns the view for id and refreshes its idle timer.
func (r *Registry) Get(id string) (*page.Prepared, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.prepared, true
}

// Attach records a live event connection for a view. Attached views are
// never swept or evicted; the view is forgotten when its last connection
// detaches.
func (r *Registry) Attach(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	e.attached++
	e.lastSeen = r.now()
	return true
}

// Detach releases one event connection and forgets the view once none remain.
func (r *Registry) Detach(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return
	}
	if e.attached > 0 {
		e.attached--
	}
	if e.attached == 0 {
		delete(r.entries, id)
	}
}

// Remove forgets a view.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops unattached views idle for longer than the TTL and returns how
// many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	n := 0
	for id, e := range r.entries {
		if e.attached == 0 && e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
