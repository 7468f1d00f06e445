package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fantasim/site/internal/config"
	"github.com/Fantasim/site/internal/httputil"
	"github.com/Fantasim/site/internal/view"
)

// NotFoundHandler answers every unmatched route with the not-found page and a 404.
// Unknown /api/ paths get a JSON error instead of HTML.
func NotFoundHandler(layout view.Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			httputil.Error(w, http.StatusNotFound, config.ErrorNotFound, "no such endpoint")
			return
		}

		page, err := view.NotFound(layout, view.LocationFromRequest(r))
		if err != nil {
			serverError(w, r, "not-found page", err)
			return
		}

		if err := httputil.HTML(w, http.StatusNotFound, page); err != nil {
			serverError(w, r, "not-found page", err)
		}
	}
}

// MethodNotAllowedHandler answers a known path requested with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	httputil.Error(w, http.StatusMethodNotAllowed, config.ErrorMethodNotAllowed,
		r.Method+" is not allowed on "+r.URL.Path)
}

// serverError is the generic failure path for page handlers: log, then a plain 500.
func serverError(w http.ResponseWriter, r *http.Request, page string, err error) {
	slog.Error("failed to render page",
		"page", page,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
