// Package layout renders the chrome shared by every page of the site.
package layout

import (
	"github.com/Fantasim/site/internal/view"
)

// Site is the shared page layout. It is immutable after construction and safe
// for concurrent use.
type Site struct {
	cfg SiteConfig
}

// New returns a layout for the given site description.
func New(cfg SiteConfig) *Site {
	return &Site{cfg: cfg}
}

// Config returns the site description the layout renders.
func (s *Site) Config() SiteConfig {
	return s.cfg
}

// Render wraps children in html/head/body with header navigation and footer.
// The nav link matching loc.Path is marked active; a nil loc marks none.
func (s *Site) Render(loc *view.Location, children ...*view.Node) (*view.Node, error) {
	lang := s.cfg.Lang
	if lang == "" {
		lang = "en"
	}

	return view.El("html", []view.Attr{{Key: "lang", Value: lang}},
		s.head(),
		view.El("body", nil,
			view.El("header", nil, s.nav(loc)),
			view.El("main", nil, children...),
			s.footer(),
		),
	), nil
}

func (s *Site) head() *view.Node {
	head := view.El("head", nil,
		view.El("meta", []view.Attr{{Key: "charset", Value: "utf-8"}}),
		view.El("meta", []view.Attr{
			{Key: "name", Value: "viewport"},
			{Key: "content", Value: "width=device-width, initial-scale=1"},
		}),
		view.El("title", nil, view.Text(s.cfg.Title)),
	)
	if s.cfg.Description != "" {
		head.Children = append(head.Children, view.El("meta", []view.Attr{
			{Key: "name", Value: "description"},
			{Key: "content", Value: s.cfg.Description},
		}))
	}
	if s.cfg.Stylesheet != "" {
		head.Children = append(head.Children, view.El("link", []view.Attr{
			{Key: "rel", Value: "stylesheet"},
			{Key: "href", Value: s.cfg.Stylesheet},
		}))
	}
	return head
}

func (s *Site) nav(loc *view.Location) *view.Node {
	items := make([]*view.Node, 0, len(s.cfg.Nav))
	for _, link := range s.cfg.Nav {
		attrs := []view.Attr{{Key: "href", Value: link.Path}}
		if loc != nil && loc.Path == link.Path {
			attrs = append(attrs,
				view.Attr{Key: "class", Value: "active"},
				view.Attr{Key: "aria-current", Value: "page"},
			)
		}
		items = append(items, view.El("li", nil, view.El("a", attrs, view.Text(link.Label))))
	}

	return view.El("nav", nil,
		view.El("a", []view.Attr{{Key: "class", Value: "brand"}, {Key: "href", Value: "/"}}, view.Text(s.cfg.Title)),
		view.El("ul", nil, items...),
	)
}

func (s *Site) footer() *view.Node {
	if s.cfg.Footer == "" {
		return view.El("footer", nil)
	}
	return view.El("footer", nil, view.El("p", nil, view.Text(s.cfg.Footer)))
}
