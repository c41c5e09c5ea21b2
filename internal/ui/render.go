package ui

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Nodes converts the tree rooted at root into HTML nodes: the root itself
// followed by one node per context menu found in the tree, in walk order.
// Elements must already carry ids when menus are present, so that menus can
// reference their targets.
func Nodes(root *Element) ([]*html.Node, error) {
	if err := root.Err(); err != nil {
		return nil, err
	}

	nodes := []*html.Node{toNode(root)}
	var menuErr error
	root.Walk(func(el *Element) bool {
		for _, m := range el.menus {
			if el.id == "" {
				menuErr = fmt.Errorf("%w: context menu target <%s> has no id", ErrConstruction, el.tag)
				return false
			}
			nodes = append(nodes, menuNode(m))
		}
		return true
	})
	if menuErr != nil {
		return nil, menuErr
	}
	return nodes, nil
}

// Render writes the HTML for the tree rooted at root.
func Render(w io.Writer, root *Element) error {
	nodes, err := Nodes(root)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering <%s>: %w", n.Data, err)
		}
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(root *Element) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toNode(e *Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	if e.id != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: e.id})
	}
	if len(e.classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: joinClasses(e.classes)})
	}
	for _, a := range e.attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.key, Val: a.value})
	}
	if len(e.style) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: e.styleString()})
	}
	if e.Clickable() {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-event", Val: "click"})
	}
	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, c := range e.children {
		n.AppendChild(toNode(c))
	}
	return n
}

func menuNode(m *ContextMenu) *html.Node {
	n := toNode(m.root)
	openOn := "contextmenu"
	if m.openOnClick {
		openOn = "click"
	}
	n.Attr = append(n.Attr,
		html.Attribute{Key: "data-target", Val: m.target.id},
		html.Attribute{Key: "data-open-on", Val: openOn},
	)
	return n
}

func joinClasses(classes []string) string {
	var buf bytes.Buffer
	for i, c := range classes {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(c)
	}
	return buf.String()
}
