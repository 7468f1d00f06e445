package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fantasim/site/internal/api"
	"github.com/Fantasim/site/internal/config"
	"github.com/Fantasim/site/internal/export"
	"github.com/Fantasim/site/internal/layout"
	"github.com/Fantasim/site/internal/logging"
	"github.com/Fantasim/site/web"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case "export":
		if err := runExport(); err != nil {
			slog.Error("export error", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("site %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: site <command>

Commands:
  serve     Start the HTTP server
  export    Write a static 404.html for static hosting
  version   Print version information
`)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Setup(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logCloser.Close()

	slog.Info("starting site",
		"version", version,
		"addr", cfg.Addr(),
		"siteFile", cfg.SiteFile,
		"logLevel", cfg.LogLevel,
	)

	siteCfg, err := layout.LoadSite(cfg.SiteFile)
	if err != nil {
		return fmt.Errorf("failed to load site file: %w", err)
	}

	staticFS, err := fs.Sub(web.StaticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to access embedded static files: %w", err)
	}

	api.Version = version
	router := api.NewRouter(cfg, layout.New(siteCfg), staticFS)

	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        router,
		ReadTimeout:    config.ServerReadTimeout,
		WriteTimeout:   config.ServerWriteTimeout,
		IdleTimeout:    config.ServerIdleTimeout,
		MaxHeaderBytes: config.ServerMaxHeaderBytes,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server listen error: %w", err)
	case <-done:
	}

	slog.Info("initiating graceful shutdown", "timeout", config.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func runExport() error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	siteFile := fs.String("site", "", "Site file (default: from SITE_FILE or ./site.yaml)")
	outputDir := fs.String("output", config.ExportDir, "Output directory")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Setup(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logCloser.Close()

	if *siteFile != "" {
		cfg.SiteFile = *siteFile
	}

	siteCfg, err := layout.LoadSite(cfg.SiteFile)
	if err != nil {
		return fmt.Errorf("failed to load site file: %w", err)
	}

	path, err := export.NotFoundPage(layout.New(siteCfg), *outputDir)
	if err != nil {
		return fmt.Errorf("export not-found page: %w", err)
	}

	fmt.Println(path)
	return nil
}
