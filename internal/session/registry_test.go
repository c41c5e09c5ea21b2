package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/responsive-toolbar/internal/page"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRegistry(ttl time.Duration) (*Registry, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(ttl)
	r.now = c.now
	return r, c
}

func TestAddGetRemove(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	p := &page.Prepared{}
	id := r.Add(p)

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a uuid: %v", id, err)
	}
	got, ok := r.Get(id)
	if !ok || got != p {
		t.Fatal("expected to get the stored view back")
	}
	r.Remove(id)
	if _, ok := r.Get(id); ok {
		t.Error("view still present after Remove")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestSweepDropsIdleViews(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	idle := r.Add(&page.Prepared{})
	c.advance(30 * time.Second)
	fresh := r.Add(&page.Prepared{})
	c.advance(45 * time.Second)

	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep dropped %d, want 1", n)
	}
	if _, ok := r.Get(idle); ok {
		t.Error("idle view should be gone")
	}
	if _, ok := r.Get(fresh); !ok {
		t.Error("fresh view should remain")
	}
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	id := r.Add(&page.Prepared{})
	c.advance(50 * time.Second)
	r.Get(id)
	c.advance(50 * time.Second)
	if n := r.Sweep(); n != 0 {
		t.Errorf("Sweep dropped %d, want 0", n)
	}
}

func TestAttachedViewsNotSwept(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	id := r.Add(&page.Prepared{})
	if !r.Attach(id) {
		t.Fatal("Attach failed")
	}
	c.advance(time.Hour)
	if n := r.Sweep(); n != 0 {
		t.Errorf("Sweep dropped %d attached views", n)
	}
	r.Detach(id)
	if r.Len() != 0 {
		t.Error("Detach should forget the view")
	}
	if r.Attach("missing") {
		t.Error("Attach of unknown id should fail")
	}
}

func TestViewKeptUntilLastConnectionDetaches(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	id := r.Add(&page.Prepared{})
	r.Attach(id)
	r.Attach(id)

	r.Detach(id)
	if _, ok := r.Get(id); !ok {
		t.Fatal("view gone while a second connection is still attached")
	}
	c.advance(time.Hour)
	if n := r.Sweep(); n != 0 {
		t.Errorf("Sweep dropped %d views with a live connection", n)
	}

	r.Detach(id)
	if _, ok := r.Get(id); ok {
		t.Error("view still present after its last connection detached")
	}
	r.Detach(id)
}

func TestMaxViewsEvictsOldestUnattached(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(time.Hour, WithMaxViews(2))
	r.now = c.now

	live := r.Add(&page.Prepared{})
	r.Attach(live)
	c.advance(time.Second)
	stale := r.Add(&page.Prepared{})
	c.advance(time.Second)
	fresh := r.Add(&page.Prepared{})

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if _, ok := r.Get(stale); ok {
		t.Error("oldest unattached view should have been evicted")
	}
	if _, ok := r.Get(live); !ok {
		t.Error("attached view must not be evicted")
	}
	if _, ok := r.Get(fresh); !ok {
		t.Error("newest view missing")
	}
}

func TestDefaults(t *testing.T) {
	r := NewRegistry(0, WithMaxViews(0))
	if r.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", r.ttl, DefaultTTL)
	}
	if r.maxViews != DefaultMaxViews {
		t.Errorf("maxViews = %d, want %d", r.maxViews, DefaultMaxViews)
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := r.Add(&page.Prepared{})
			r.Get(id)
			r.Sweep()
			r.Remove(id)
		}()
	}
	wg.Wait()
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := NewRegistry(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
