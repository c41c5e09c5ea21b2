package ui

import (
	"fmt"
	"strconv"
)

// Alignment is a cross-axis alignment of a flex container's children.
type Alignment string

const (
	AlignStart    Alignment = "flex-start"
	AlignCenter   Alignment = "center"
	AlignEnd      Alignment = "flex-end"
	AlignStretch  Alignment = "stretch"
	AlignBaseline Alignment = "baseline"
)

// DefaultPadding is the padding applied by SetPadding(true).
const DefaultPadding = "var(--toolbar-padding, 1em)"

// Div creates a plain container.
func Div(opts ...Option) *Element {
	return NewElement("div", opts...)
}

// Span creates an inline text element.
func Span(text string, opts ...Option) *Element {
	return NewElement("span", append([]Option{WithText(text)}, opts...)...)
}

// Icon creates an icon placeholder. Icon glyphs come from the page's
// stylesheets; the element only carries the icon name.
func Icon(name string, opts ...Option) *Element {
	base := []Option{
		WithClass("icon"),
		WithAttribute("data-icon", name),
		WithAttribute("aria-hidden", "true"),
	}
	return NewElement("span", append(base, opts...)...)
}

// Button creates a button. A non-nil icon becomes the button's only child.
func Button(icon *Element, opts ...Option) *Element {
	b := NewElement("button", append([]Option{WithAttribute("type", "button")}, opts...)...)
	if icon != nil {
		b.Add(icon)
	}
	return b
}

// HorizontalLayout creates a row flex container.
func HorizontalLayout(opts ...Option) *Element {
	base := []Option{
		WithStyle("display", "flex"),
		WithStyle("flex-direction", "row"),
	}
	return NewElement("div", append(base, opts...)...)
}

// SetAlignItems sets the cross-axis alignment of a flex container.
func (e *Element) SetAlignItems(a Alignment) {
	e.SetStyle("align-items", string(a))
}

// SetPadding toggles the container padding.
func (e *Element) SetPadding(on bool) {
	if on {
		e.SetStyle("padding", DefaultPadding)
		return
	}
	e.SetStyle("padding", "")
}

// SetFlexGrow sets flex-grow on direct children of e. Zero removes it.
// Passing an element that is not a child of e is a construction error.
func (e *Element) SetFlexGrow(grow float64, children ...*Element) {
	for _, c := range children {
		if c == nil || c.parent != e {
			e.fail(errNotChild(e))
			continue
		}
		if grow == 0 {
			c.SetStyle("flex-grow", "")
			continue
		}
		c.SetStyle("flex-grow", strconv.FormatFloat(grow, 'f', -1, 64))
	}
}

func errNotChild(e *Element) error {
	return fmt.Errorf("%w: flex-grow target is not a child of <%s>", ErrConstruction, e.tag)
}
