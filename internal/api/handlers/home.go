package handlers

import (
	"net/http"

	"github.com/Fantasim/site/internal/httputil"
	"github.com/Fantasim/site/internal/layout"
	"github.com/Fantasim/site/internal/view"
)

// HomeHandler renders the landing page: the site title and, when set, its description.
func HomeHandler(l view.Layout, site layout.SiteConfig) http.HandlerFunc {
	content := []*view.Node{view.El("h1", nil, view.Text(site.Title))}
	if site.Description != "" {
		content = append(content, view.El("p", nil, view.Text(site.Description)))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		page, err := l.Render(view.LocationFromRequest(r), content...)
		if err != nil {
			serverError(w, r, "home", err)
			return
		}
		if err := httputil.HTML(w, http.StatusOK, page); err != nil {
			serverError(w, r, "home", err)
		}
	}
}
