package toolbar

import (
	"context"

	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

const (
	// ClassName marks the toolbar row for stylesheet targeting.
	ClassName = "toolbar"
	// OverflowClassName marks the button that opens the overflow menu.
	OverflowClassName = "overflow"
	// DefaultTitle is the text of the title label.
	DefaultTitle = "Toolbar"
)

// Handler runs when an action is triggered from its button or menu item.
type Handler func(ctx context.Context, a Action) error

// Toolbar is a row of formatting buttons with an overflow menu that repeats
// the same actions. Hiding one or the other at narrow widths is left to the
// stylesheet.
type Toolbar struct {
	root     *ui.Element
	title    *ui.Element
	buttons  []*ui.Element
	overflow *ui.Element
	menu     *ui.ContextMenu
	actions  []Action
}

type options struct {
	title   string
	actions []Action
	handler Handler
}

// Option configures a Toolbar.
type Option func(*options)

// WithTitle replaces the title label text.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithActions replaces the action list.
func WithActions(actions []Action) Option {
	return func(o *options) { o.actions = actions }
}

// WithHandler binds fn to every action, on both the inline button and the
// menu item. Without it actions do nothing.
func WithHandler(fn Handler) Option {
	return func(o *options) { o.handler = fn }
}

// New builds a toolbar.
func New(opts ...Option) (*Toolbar, error) {
	o := options{title: DefaultTitle, actions: Actions}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Toolbar{actions: append([]Action(nil), o.actions...)}

	t.root = ui.HorizontalLayout(ui.WithClass(ClassName))
	t.root.SetAlignItems(ui.AlignCenter)
	t.root.SetPadding(true)

	t.title = ui.Span(o.title, ui.WithClass("toolbar-title"))

	for _, a := range t.actions {
		b := ui.Button(ui.Icon(a.Icon),
			ui.WithAttribute("data-action", a.Name),
			ui.WithAttribute("aria-label", a.Label),
			ui.WithAttribute("title", a.Label),
		)
		b.OnClick(bind(o.handler, a))
		t.buttons = append(t.buttons, b)
	}

	t.overflow = ui.Button(ui.Icon(IconEllipsisV),
		ui.WithClass(OverflowClassName),
		ui.WithAttribute("aria-label", "More actions"),
		ui.WithAttribute("aria-haspopup", "menu"),
	)

	t.menu = ui.NewContextMenu()
	t.menu.SetTarget(t.overflow)
	t.menu.SetOpenOnClick(true)
	for _, a := range t.actions {
		item := t.menu.AddItem(a.Label, bind(o.handler, a))
		item.Element().SetAttribute("data-action", a.Name)
	}

	t.root.Add(t.title)
	t.root.Add(t.buttons...)
	t.root.Add(t.overflow)
	t.root.SetFlexGrow(1, t.title)

	if err := t.root.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func bind(h Handler, a Action) ui.ClickHandler {
	if h == nil {
		return ui.NoOp
	}
	return func(ctx context.Context) error { return h(ctx, a) }
}

// Render returns the toolbar's root element.
func (t *Toolbar) Render() *ui.Element { return t.root }

// Title returns the title label.
func (t *Toolbar) Title() *ui.Element { return t.title }

// Buttons returns the inline action buttons in order.
func (t *Toolbar) Buttons() []*ui.Element {
	out := make([]*ui.Element, len(t.buttons))
	copy(out, t.buttons)
	return out
}

// Overflow returns the overflow button.
func (t *Toolbar) Overflow() *ui.Element { return t.overflow }

// Menu returns the overflow menu.
func (t *Toolbar) Menu() *ui.ContextMenu { return t.menu }

// Actions returns the toolbar's actions in order.
func (t *Toolbar) Actions() []Action {
	return append([]Action(nil), t.actions...)
}

// ButtonLabels returns the aria labels of the inline buttons in order.
func (t *Toolbar) ButtonLabels() []string {
	out := make([]string, len(t.buttons))
	for i, b := range t.buttons {
		out[i], _ = b.Attribute("aria-label")
	}
	return out
}
