package page

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

// IDPrefix prefixes the element ids allocated for a rendered view.
const IDPrefix = "e"

// DefaultEventsPath is where the client script opens its event socket.
const DefaultEventsPath = "/ws/events"

var docTmpl = template.Must(template.New("document").Parse(documentTemplate))

// Prepared is a view whose element tree has been built and whose page
// metadata has been collected.
type Prepared struct {
	View     View
	Root     *ui.Element
	Settings *Settings
}

// Prepare renders v's element tree, allocates element ids and applies the
// view's page configuration on top of a copy of base.
func Prepare(v View, base *Settings) (*Prepared, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil view", ui.ErrConstruction)
	}
	root := v.Render()
	if root == nil {
		return nil, fmt.Errorf("%w: view rendered no root element", ui.ErrConstruction)
	}
	if err := root.Err(); err != nil {
		return nil, err
	}
	ui.AssignIDs(root, IDPrefix)

	s := base.clone()
	if c, ok := v.(Configurator); ok {
		c.ConfigurePage(s)
	}
	return &Prepared{View: v, Root: root, Settings: s}, nil
}

func (s *Settings) clone() *Settings {
	if s == nil {
		return NewSettings()
	}
	return &Settings{
		title:       s.title,
		viewport:    s.viewport,
		meta:        s.MetaTags(),
		stylesheets: s.Stylesheets(),
	}
}

type documentData struct {
	Title       string
	Viewport    string
	Meta        []MetaTag
	Stylesheets []string
	ViewID      string
	EventsPath  string
	Body        template.HTML
	Script      template.JS
}

// WriteDocument writes the full HTML document for p. When viewID is empty
// the page is static: the client script still opens menus but sends no
// events.
func WriteDocument(w io.Writer, p *Prepared, viewID string) error {
	body, err := ui.RenderString(p.Root)
	if err != nil {
		return fmt.Errorf("rendering body: %w", err)
	}
	data := documentData{
		Title:       p.Settings.Title(),
		Viewport:    p.Settings.Viewport(),
		Meta:        p.Settings.MetaTags(),
		Stylesheets: p.Settings.Stylesheets(),
		ViewID:      viewID,
		EventsPath:  DefaultEventsPath,
		Body:        template.HTML(body),
		Script:      template.JS(clientScript),
	}
	if err := docTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing document template: %w", err)
	}
	return nil
}
