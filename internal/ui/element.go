package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrConstruction is returned when an element tree could not be assembled.
var ErrConstruction = errors.New("UI element construction failed")

// ClickHandler runs when the browser reports a click on an element.
type ClickHandler func(ctx context.Context) error

// NoOp is a click handler that does nothing.
func NoOp(context.Context) error { return nil }

type attribute struct {
	key, value string
}

type styleProp struct {
	name, value string
}

// Element is a node in a server-side component tree. It owns its children
// and any context menus targeted at it.
type Element struct {
	tag      string
	id       string
	text     string
	classes  []string
	attrs    []attribute
	style    []styleProp
	children []*Element
	parent   *Element
	menus    []*ContextMenu
	onClick  ClickHandler

	// first construction error recorded on this element
	err error
}

// Option configures an Element at construction time.
type Option func(*Element)

// WithID sets an explicit element id instead of an allocated one.
func WithID(id string) Option {
	return func(e *Element) { e.id = id }
}

// WithText sets the element's text content.
func WithText(text string) Option {
	return func(e *Element) { e.text = text }
}

// WithClass adds a CSS class name.
func WithClass(name string) Option {
	return func(e *Element) { e.AddClassName(name) }
}

// WithAttribute sets an HTML attribute.
func WithAttribute(key, value string) Option {
	return func(e *Element) { e.SetAttribute(key, value) }
}

// WithStyle sets an inline style property.
func WithStyle(name, value string) Option {
	return func(e *Element) { e.SetStyle(name, value) }
}

// WithClickHandler binds fn to click events on the element.
func WithClickHandler(fn ClickHandler) Option {
	return func(e *Element) { e.onClick = fn }
}

// NewElement creates an element with the given tag name. An invalid tag is
// recorded as a construction error and reported by Err.
func NewElement(tag string, opts ...Option) *Element {
	e := &Element{tag: tag}
	if !validTag(tag) {
		e.err = fmt.Errorf("%w: invalid tag %q", ErrConstruction, tag)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// ID returns the element id, or "" when none has been assigned yet.
func (e *Element) ID() string { return e.id }

// Text returns the element's own text content.
func (e *Element) Text() string { return e.text }

// Parent returns the containing element, or nil for a root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's direct children in order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Menus returns the context menus targeted at this element.
func (e *Element) Menus() []*ContextMenu {
	out := make([]*ContextMenu, len(e.menus))
	copy(out, e.menus)
	return out
}

// Add appends children in order. A nil child or a child that already has a
// parent is a construction error.
func (e *Element) Add(children ...*Element) {
	for _, c := range children {
		if c == nil {
			e.fail(fmt.Errorf("%w: nil child added to <%s>", ErrConstruction, e.tag))
			continue
		}
		if c.parent != nil {
			e.fail(fmt.Errorf("%w: <%s> is already attached", ErrConstruction, c.tag))
			continue
		}
		c.parent = e
		e.children = append(e.children, c)
	}
}

func (e *Element) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the first construction error found in the tree rooted at e,
// including context menus.
func (e *Element) Err() error {
	var found error
	e.Walk(func(el *Element) bool {
		if el.err != nil {
			found = el.err
			return false
		}
		return true
	})
	return found
}

// AddClassName adds a CSS class; duplicates are ignored.
func (e *Element) AddClassName(name string) {
	name = strings.TrimSpace(name)
	if name == "" || e.HasClassName(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// HasClassName reports whether the element carries the class.
func (e *Element) HasClassName(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassNames returns the element's classes in the order they were added.
func (e *Element) ClassNames() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// SetAttribute sets or replaces an attribute. "class", "id" and "style" are
// managed by their own setters.
func (e *Element) SetAttribute(key, value string) {
	switch key {
	case "class":
		for _, c := range strings.Fields(value) {
			e.AddClassName(c)
		}
		return
	case "id":
		e.id = value
		return
	case "style":
		e.fail(fmt.Errorf("%w: use SetStyle for inline styles", ErrConstruction))
		return
	}
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{key: key, value: value})
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// SetStyle sets or replaces an inline style property. An empty value removes
// the property.
func (e *Element) SetStyle(name, value string) {
	for i := range e.style {
		if e.style[i].name == name {
			if value == "" {
				e.style = append(e.style[:i], e.style[i+1:]...)
			} else {
				e.style[i].value = value
			}
			return
		}
	}
	if value != "" {
		e.style = append(e.style, styleProp{name: name, value: value})
	}
}

// Style returns an inline style property value.
func (e *Element) Style(name string) string {
	for _, p := range e.style {
		if p.name == name {
			return p.value
		}
	}
	return ""
}

func (e *Element) styleString() string {
	parts := make([]string, 0, len(e.style))
	for _, p := range e.style {
		parts = append(parts, p.name+": "+p.value)
	}
	return strings.Join(parts, "; ")
}

// OnClick replaces the element's click handler.
func (e *Element) OnClick(fn ClickHandler) { e.onClick = fn }

// Clickable reports whether a click handler is bound.
func (e *Element) Clickable() bool { return e.onClick != nil }

// Walk visits e and its descendants depth-first, then the context menus
// targeted at each visited element. Returning false stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.Walk(fn) {
			return false
		}
	}
	for _, m := range e.menus {
		if !m.Element().Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the element with the given id in the tree rooted at e.
func (e *Element) FindByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}
