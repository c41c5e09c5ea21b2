package page

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

// ErrDuplicateRoute is returned when a path is registered twice.
var ErrDuplicateRoute = errors.New("route already registered")

// View is a page root: it renders the element tree shown for a route.
type View interface {
	Render() *ui.Element
}

// Configurator is implemented by views that contribute head metadata.
type Configurator interface {
	ConfigurePage(s *Settings)
}

// Factory builds a fresh view for one navigation.
type Factory func() (View, error)

// Router maps URL paths to view factories.
type Router struct {
	mu     sync.RWMutex
	routes map[string]Factory
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]Factory)}
}

// NormalizePath maps a route value to its URL path: "" and "/" are the root,
// other values get a single leading slash and no trailing slash.
func NormalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	return "/" + path
}

// Register binds a factory to path.
func (r *Router) Register(path string, f Factory) error {
	if f == nil {
		return fmt.Errorf("registering %q: nil factory", path)
	}
	p := NormalizePath(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[p]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, p)
	}
	r.routes[p] = f
	return nil
}

// Resolve returns the factory for path.
func (r *Router) Resolve(path string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.routes[NormalizePath(path)]
	return f, ok
}

// Routes returns the registered paths, sorted.
func (r *Router) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.routes))
	for p := range r.routes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
