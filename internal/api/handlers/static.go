package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fantasim/site/internal/config"
)

// StaticHandler serves embedded assets under /static/. Paths that don't name a
// regular file are handed to notFound.
func StaticHandler(staticFS fs.FS, notFound http.Handler) http.HandlerFunc {
	fileServer := http.StripPrefix(strings.TrimSuffix(config.StaticPrefix, "/"), http.FileServer(http.FS(staticFS)))

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, config.StaticPrefix)

		info, err := fs.Stat(staticFS, name)
		if err != nil || info.IsDir() {
			slog.Debug("static asset not found", "path", r.URL.Path)
			notFound.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", config.CacheControlAsset)
		fileServer.ServeHTTP(w, r)
	}
}
