// Package preview draws a toolbar in the terminal, collapsing its actions
// into the overflow menu when the row does not fit the given width.
package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/responsive-toolbar/internal/toolbar"
)

var glyphs = map[string]string{
	toolbar.IconBold:         "B",
	toolbar.IconItalic:       "I",
	toolbar.IconUnderline:    "U",
	toolbar.IconAlignLeft:    "⇤",
	toolbar.IconAlignCenter:  "≡",
	toolbar.IconAlignRight:   "⇥",
	toolbar.IconAlignJustify: "☰",
	toolbar.IconEllipsisV:    "⋮",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1)
	menuStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func glyph(a toolbar.Action) string {
	if g, ok := glyphs[a.Icon]; ok {
		return g
	}
	if r, size := utf8.DecodeRuneInString(a.Label); size > 0 && r != utf8.RuneError {
		return string(r)
	}
	return "?"
}

func inlineButtons(t *toolbar.Toolbar) string {
	var parts []string
	for _, a := range t.Actions() {
		parts = append(parts, buttonStyle.Render(glyph(a)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func overflowButton() string {
	return buttonStyle.Render(glyphs[toolbar.IconEllipsisV])
}

// Breakpoint is the narrowest width at which every action fits inline.
func Breakpoint(t *toolbar.Toolbar) int {
	return lipgloss.Width(titleStyle.Render(t.Title().Text())) + 1 + lipgloss.Width(inlineButtons(t))
}

// Collapsed reports whether the toolbar shows its overflow menu at width.
func Collapsed(t *toolbar.Toolbar, width int) bool {
	return width < Breakpoint(t)
}

// Render draws the toolbar row for a terminal of the given width. The title
// absorbs the leftover space. When collapsed, the overflow menu items are
// listed under the row.
func Render(t *toolbar.Toolbar, width int) string {
	title := titleStyle.Render(t.Title().Text())
	actions := inlineButtons(t)
	collapsed := Collapsed(t, width)
	if collapsed {
		actions = overflowButton()
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(actions)
	if gap < 1 {
		gap = 1
	}
	row := title + strings.Repeat(" ", gap) + actions
	if !collapsed {
		return row
	}

	menu := menuStyle.Render(strings.Join(t.Menu().Labels(), "\n"))
	menuWidth := lipgloss.Width(menu)
	indent := lipgloss.Width(row) - menuWidth
	if indent > 0 {
		menu = lipgloss.NewStyle().MarginLeft(indent).Render(menu)
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, menu)
}
