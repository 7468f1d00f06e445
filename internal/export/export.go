// Package export writes pre-rendered pages for static hosting.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Fantasim/site/internal/config"
	"github.com/Fantasim/site/internal/view"
)

// NotFoundPage renders the not-found document into outputDir/404.html, which is
// what most static hosts serve for unknown paths. Returns the written path.
func NotFoundPage(layout view.Layout, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = config.ExportDir
	}

	page, err := view.NotFound(layout, &view.Location{Path: "/" + config.ExportNotFoundFile})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := view.RenderDocument(&buf, page); err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", outputDir, err)
	}

	outPath := filepath.Join(outputDir, config.ExportNotFoundFile)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %q: %w", outPath, err)
	}

	slog.Info("not-found page exported",
		"path", outPath,
		"bytes", buf.Len(),
	)
	return outPath, nil
}
