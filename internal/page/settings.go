package page

// MetaTag is a <meta name=... content=...> entry of the page head.
type MetaTag struct {
	Name    string
	Content string
}

// Settings collects the head metadata of one page render.
type Settings struct {
	title       string
	viewport    string
	meta        []MetaTag
	stylesheets []string
}

// NewSettings returns empty page settings.
func NewSettings() *Settings {
	return &Settings{}
}

// SetTitle sets the document title.
func (s *Settings) SetTitle(title string) { s.title = title }

// Title returns the document title.
func (s *Settings) Title() string { return s.title }

// SetViewport sets the viewport meta directive.
func (s *Settings) SetViewport(content string) { s.viewport = content }

// Viewport returns the viewport meta directive.
func (s *Settings) Viewport() string { return s.viewport }

// AddMetaTag adds a named meta tag. A tag with the same name replaces the
// earlier content in place, so configuring a page repeatedly never
// duplicates tags.
func (s *Settings) AddMetaTag(name, content string) {
	for i := range s.meta {
		if s.meta[i].Name == name {
			s.meta[i].Content = content
			return
		}
	}
	s.meta = append(s.meta, MetaTag{Name: name, Content: content})
}

// MetaTags returns the named meta tags in insertion order. The viewport
// directive is not included.
func (s *Settings) MetaTags() []MetaTag {
	out := make([]MetaTag, len(s.meta))
	copy(out, s.meta)
	return out
}

// AddStylesheet appends a stylesheet href, ignoring duplicates.
func (s *Settings) AddStylesheet(href string) {
	for _, h := range s.stylesheets {
		if h == href {
			return
		}
	}
	s.stylesheets = append(s.stylesheets, href)
}

// Stylesheets returns the stylesheet hrefs in order.
func (s *Settings) Stylesheets() []string {
	out := make([]string, len(s.stylesheets))
	copy(out, s.stylesheets)
	return out
}
