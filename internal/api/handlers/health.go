package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Fantasim/site/internal/httputil"
)

// HealthHandler returns a handler for the GET /api/health endpoint.
func HealthHandler(siteTitle, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("health check requested", "remoteAddr", r.RemoteAddr)

		httputil.JSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
			"site":    siteTitle,
		})
	}
}
