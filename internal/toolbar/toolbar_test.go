package toolbar

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/responsive-toolbar/internal/page"
	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

var wantLabels = []string{"Bold", "Italic", "Underline", "Left", "Center", "Right", "Justify"}

func newToolbar(t *testing.T, opts ...Option) *Toolbar {
	t.Helper()
	tb, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tb
}

func TestActionsOrder(t *testing.T) {
	if got := Labels(Actions); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("Labels(Actions) = %v, want %v", got, wantLabels)
	}
}

func TestButtonsAndMenuMatch(t *testing.T) {
	tb := newToolbar(t)

	if got := tb.ButtonLabels(); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("button labels = %v, want %v", got, wantLabels)
	}
	if got := tb.Menu().Labels(); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("menu labels = %v, want %v", got, wantLabels)
	}

	for i, b := range tb.Buttons() {
		icon := b.Children()
		if len(icon) != 1 {
			t.Fatalf("button %d: expected a single icon child, got %d", i, len(icon))
		}
		got, _ := icon[0].Attribute("data-icon")
		if got != Actions[i].Icon {
			t.Errorf("button %d icon = %q, want %q", i, got, Actions[i].Icon)
		}
		if b.Text() != "" {
			t.Errorf("button %d should be icon-only, has text %q", i, b.Text())
		}
	}
}

func TestRowStructure(t *testing.T) {
	tb := newToolbar(t)
	row := tb.Render()

	if !row.HasClassName(ClassName) {
		t.Error("root missing toolbar class")
	}
	if row.Style("align-items") != "center" {
		t.Errorf("align-items = %q, want center", row.Style("align-items"))
	}
	if row.Style("padding") == "" {
		t.Error("expected padding on the row")
	}

	kids := row.Children()
	if len(kids) != 9 {
		t.Fatalf("expected 9 children, got %d", len(kids))
	}
	if kids[0] != tb.Title() || kids[0].Text() != DefaultTitle {
		t.Error("title must be the first child")
	}
	last := kids[len(kids)-1]
	if last != tb.Overflow() || !last.HasClassName(OverflowClassName) {
		t.Error("overflow button must be the last child")
	}
}

func TestFlexGrowOnlyOnTitle(t *testing.T) {
	tb := newToolbar(t)
	for i, c := range tb.Render().Children() {
		grow := c.Style("flex-grow")
		if i == 0 && grow != "1" {
			t.Errorf("title flex-grow = %q, want 1", grow)
		}
		if i > 0 && grow != "" {
			t.Errorf("child %d has flex-grow %q", i, grow)
		}
	}
}

func TestMenuBoundToOverflow(t *testing.T) {
	tb := newToolbar(t)
	m := tb.Menu()
	if m.Target() != tb.Overflow() {
		t.Error("menu must target the overflow button")
	}
	if !m.OpenOnClick() {
		t.Error("menu must open on click")
	}
	if len(tb.Overflow().Menus()) != 1 {
		t.Errorf("overflow should carry exactly one menu, got %d", len(tb.Overflow().Menus()))
	}
}

func TestDefaultHandlersAreNoOps(t *testing.T) {
	tb := newToolbar(t)
	ui.AssignIDs(tb.Render(), "e")
	ctx := context.Background()

	for _, it := range tb.Menu().Items() {
		if err := ui.Dispatch(ctx, tb.Render(), it.Element().ID()); err != nil {
			t.Errorf("menu item %s: %v", it.Label(), err)
		}
	}
	for _, b := range tb.Buttons() {
		if err := ui.Dispatch(ctx, tb.Render(), b.ID()); err != nil {
			t.Errorf("button %s: %v", b.ID(), err)
		}
	}
	if err := ui.Dispatch(ctx, tb.Render(), tb.Title().ID()); !errors.Is(err, ui.ErrNoHandler) {
		t.Errorf("title click: expected ErrNoHandler, got %v", err)
	}
}

func TestWithHandlerSharedByButtonAndItem(t *testing.T) {
	var got []string
	tb := newToolbar(t, WithHandler(func(_ context.Context, a Action) error {
		got = append(got, a.Name)
		return nil
	}))
	ui.AssignIDs(tb.Render(), "e")
	ctx := context.Background()

	if err := ui.Dispatch(ctx, tb.Render(), tb.Buttons()[2].ID()); err != nil {
		t.Fatalf("dispatch button: %v", err)
	}
	if err := ui.Dispatch(ctx, tb.Render(), tb.Menu().Items()[2].Element().ID()); err != nil {
		t.Fatalf("dispatch item: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"underline", "underline"}) {
		t.Errorf("handled = %v", got)
	}
}

func TestWithActionsAndTitle(t *testing.T) {
	custom := []Action{{Name: "x", Label: "X", Icon: "x"}}
	tb := newToolbar(t, WithActions(custom), WithTitle("Editor"))
	if tb.Title().Text() != "Editor" {
		t.Errorf("title = %q", tb.Title().Text())
	}
	if len(tb.Render().Children()) != 3 {
		t.Errorf("expected title, one button and overflow, got %d children", len(tb.Render().Children()))
	}
	if !reflect.DeepEqual(tb.Menu().Labels(), []string{"X"}) {
		t.Errorf("menu labels = %v", tb.Menu().Labels())
	}
	custom[0].Label = "changed"
	if tb.Actions()[0].Label != "X" {
		t.Error("toolbar must copy its action list")
	}
}

func TestMainLayoutHoldsOneToolbar(t *testing.T) {
	m, err := NewMainLayout()
	if err != nil {
		t.Fatalf("NewMainLayout: %v", err)
	}
	kids := m.Render().Children()
	if len(kids) != 1 || kids[0] != m.Toolbar().Render() {
		t.Fatalf("expected exactly the toolbar as child, got %d children", len(kids))
	}
}

func TestConfigurePageIdempotent(t *testing.T) {
	m, err := NewMainLayout()
	if err != nil {
		t.Fatalf("NewMainLayout: %v", err)
	}
	s := page.NewSettings()
	for i := 0; i < 3; i++ {
		m.ConfigurePage(s)
	}
	want := []page.MetaTag{
		{Name: "apple-mobile-web-app-capable", Content: "yes"},
		{Name: "apple-mobile-web-app-status-bar-style", Content: "black"},
	}
	if got := s.MetaTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("meta tags = %v, want %v", got, want)
	}
	if s.Viewport() != "width=device-width, minimum-scale=1.0, initial-scale=1.0, user-scalable=yes" {
		t.Errorf("viewport = %q", s.Viewport())
	}
}

func TestRegisterSingleRootRoute(t *testing.T) {
	r := page.NewRouter()
	if err := Register(r); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := r.Routes(); !reflect.DeepEqual(got, []string{"/"}) {
		t.Errorf("routes = %v, want [/]", got)
	}
	f, ok := r.Resolve("")
	if !ok {
		t.Fatal("root route not resolvable")
	}
	v1, err := f()
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	v2, _ := f()
	if v1 == v2 {
		t.Error("each navigation should get a fresh layout")
	}
	if err := Register(r); !errors.Is(err, page.ErrDuplicateRoute) {
		t.Errorf("second Register: expected ErrDuplicateRoute, got %v", err)
	}
}

func TestRenderedDocument(t *testing.T) {
	m, err := NewMainLayout()
	if err != nil {
		t.Fatalf("NewMainLayout: %v", err)
	}
	p, err := page.Prepare(m, nil)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	var buf bytes.Buffer
	if err := page.WriteDocument(&buf, p, ""); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	bars := doc.Find(".toolbar")
	if bars.Length() != 1 {
		t.Fatalf("expected one .toolbar, got %d", bars.Length())
	}
	kids := bars.Children()
	if kids.Length() != 9 {
		t.Fatalf("expected 9 toolbar children, got %d", kids.Length())
	}
	if kids.Filter("button").Length() != 8 {
		t.Errorf("expected 8 buttons, got %d", kids.Filter("button").Length())
	}
	overflow := kids.Last()
	if !overflow.HasClass("overflow") {
		t.Fatal("last child must be the overflow button")
	}
	overflowID, _ := overflow.Attr("id")

	menu := doc.Find(".context-menu")
	if menu.Length() != 1 {
		t.Fatalf("expected one context menu, got %d", menu.Length())
	}
	if target, _ := menu.Attr("data-target"); target != overflowID {
		t.Errorf("menu target = %q, want %q", target, overflowID)
	}
	var labels []string
	menu.Find("[role=menuitem]").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	if !reflect.DeepEqual(labels, wantLabels) {
		t.Errorf("menu items = %v, want %v", labels, wantLabels)
	}

	metas := map[string]string{}
	doc.Find("meta[name]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		metas[name] = content
	})
	want := map[string]string{
		"viewport":                              Viewport,
		"apple-mobile-web-app-capable":          "yes",
		"apple-mobile-web-app-status-bar-style": "black",
	}
	if !reflect.DeepEqual(metas, want) {
		t.Errorf("meta tags = %v, want %v", metas, want)
	}
}
