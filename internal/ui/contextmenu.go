package ui

import "fmt"

// ContextMenu is an overlay menu bound to a target element. It is rendered
// outside the target's container so it never counts as one of its children.
type ContextMenu struct {
	root        *Element
	target      *Element
	openOnClick bool
	items       []*MenuItem
}

// MenuItem is a single text entry of a ContextMenu.
type MenuItem struct {
	el    *Element
	label string
}

// NewContextMenu creates an empty, untargeted menu.
func NewContextMenu() *ContextMenu {
	return &ContextMenu{
		root: NewElement("div",
			WithClass("context-menu"),
			WithAttribute("role", "menu"),
			WithAttribute("hidden", ""),
		),
	}
}

// SetTarget binds the menu to target. Rebinding detaches it from the
// previous target first.
func (m *ContextMenu) SetTarget(target *Element) {
	if target == nil {
		m.root.fail(fmt.Errorf("%w: context menu target is nil", ErrConstruction))
		return
	}
	if m.target != nil {
		m.target.removeMenu(m)
	}
	m.target = target
	target.menus = append(target.menus, m)
}

func (e *Element) removeMenu(m *ContextMenu) {
	for i, cur := range e.menus {
		if cur == m {
			e.menus = append(e.menus[:i], e.menus[i+1:]...)
			return
		}
	}
}

// Target returns the element the menu is bound to.
func (m *ContextMenu) Target() *Element { return m.target }

// SetOpenOnClick selects whether a plain click opens the menu, instead of
// the default context-click or long-press.
func (m *ContextMenu) SetOpenOnClick(on bool) { m.openOnClick = on }

// OpenOnClick reports whether a plain click opens the menu.
func (m *ContextMenu) OpenOnClick() bool { return m.openOnClick }

// AddItem appends a text item. A nil handler leaves the item without one.
func (m *ContextMenu) AddItem(label string, handler ClickHandler) *MenuItem {
	el := NewElement("div",
		WithText(label),
		WithClass("context-menu-item"),
		WithAttribute("role", "menuitem"),
	)
	el.onClick = handler
	m.root.Add(el)
	item := &MenuItem{el: el, label: label}
	m.items = append(m.items, item)
	return item
}

// Items returns the menu items in order.
func (m *ContextMenu) Items() []*MenuItem {
	out := make([]*MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Labels returns the item labels in order.
func (m *ContextMenu) Labels() []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = it.label
	}
	return out
}

// Element returns the menu's root element.
func (m *ContextMenu) Element() *Element { return m.root }

// Label returns the item's text.
func (it *MenuItem) Label() string { return it.label }

// Element returns the item's element.
func (it *MenuItem) Element() *Element { return it.el }
