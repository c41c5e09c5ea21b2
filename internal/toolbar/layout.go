package toolbar

import (
	"github.com/ziadkadry99/responsive-toolbar/internal/page"
	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

// Route is the path MainLayout is served at: the application root.
const Route = ""

// Viewport is the mobile viewport directive of the page.
const Viewport = "width=device-width, minimum-scale=1.0, initial-scale=1.0, user-scalable=yes"

// Meta tags that let the page run as a full-screen mobile web app.
const (
	MetaWebAppCapable  = "apple-mobile-web-app-capable"
	MetaStatusBarStyle = "apple-mobile-web-app-status-bar-style"
)

var (
	_ page.View         = (*MainLayout)(nil)
	_ page.Configurator = (*MainLayout)(nil)
)

// MainLayout is the page root: a container holding a single Toolbar.
type MainLayout struct {
	root    *ui.Element
	toolbar *Toolbar
}

// NewMainLayout builds the layout and its toolbar.
func NewMainLayout(opts ...Option) (*MainLayout, error) {
	tb, err := New(opts...)
	if err != nil {
		return nil, err
	}
	root := ui.Div(ui.WithClass("main-layout"))
	root.Add(tb.Render())
	if err := root.Err(); err != nil {
		return nil, err
	}
	return &MainLayout{root: root, toolbar: tb}, nil
}

// Render returns the layout's root element.
func (m *MainLayout) Render() *ui.Element { return m.root }

// Toolbar returns the embedded toolbar.
func (m *MainLayout) Toolbar() *Toolbar { return m.toolbar }

// ConfigurePage sets the viewport and the mobile web app meta tags.
func (m *MainLayout) ConfigurePage(s *page.Settings) {
	s.SetViewport(Viewport)
	s.AddMetaTag(MetaWebAppCapable, "yes")
	s.AddMetaTag(MetaStatusBarStyle, "black")
}

// Register serves MainLayout at Route on r. Each navigation gets a fresh
// layout built with opts.
func Register(r *page.Router, opts ...Option) error {
	return r.Register(Route, func() (page.View, error) {
		m, err := NewMainLayout(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}
