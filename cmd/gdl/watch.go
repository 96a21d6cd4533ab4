package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/catalog"
	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
	"github.com/gsingh93/gdl-parser/pkg/telemetry/metrics"
)

var watchFlags struct {
	paths []string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch description files and keep the catalog in sync",
	Long: `Watch game description directories and keep the catalog in sync.

Changed files are re-parsed after a debounce interval and upserted into
the catalog under their file stem. If a sweep schedule is configured,
periodic catalog audits run in the background. With metrics enabled, a
Prometheus endpoint is served at /metrics.

The command runs until interrupted (SIGINT/SIGTERM).

Examples:
  # Watch the configured paths
  gdl watch --config gdl.yaml

  # Watch specific directories
  gdl watch --path games/ --path drafts/`,
	RunE: watchDescriptions,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringSliceVar(&watchFlags.paths, "path", nil, "paths to watch (overrides config)")
}

func watchDescriptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(watchFlags.paths) > 0 {
		cfg.Watch.Paths = watchFlags.paths
	}
	if len(cfg.Watch.Paths) == 0 {
		return fmt.Errorf("no watch paths configured: set watch.paths or pass --path")
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	ctx := cli.SetupSignalHandler()

	if cfg.Telemetry.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server := &http.Server{
			Addr:    cfg.Telemetry.Metrics.ListenAddress,
			Handler: mux,
		}
		go func() {
			logger.Info("metrics server listening", "address", cfg.Telemetry.Metrics.ListenAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
	}

	if cfg.Sweep.Schedule != "" {
		sweeper := catalog.NewSweeper(store, &cfg.Sweep, logger.Slog())
		sweeper.OnSweep(func(r catalog.SweepResult) {
			collector.RecordSweep(r.Pruned, r.Failed)
			refreshEntryCount(ctx, store, collector)
		})
		if err := sweeper.Start(ctx); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer sweeper.Stop()
		if next := sweeper.NextRun(); next != nil {
			logger.Debug("catalog sweeper started", "next_run", next)
		}
	}

	watcher, err := catalog.NewWatcher(&cfg.Watch, logger.Slog())
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	p := parser.NewParser().WithMaxDepth(cfg.Parser.MaxDepth)

	refreshEntryCount(ctx, store, collector)

	err = watcher.Watch(ctx, func(paths []string) {
		for _, path := range paths {
			reloadFile(ctx, p, store, collector, logger.Slog(), path)
		}
		collector.RecordWatcherReload()
		refreshEntryCount(ctx, store, collector)
	})
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// reloadFile re-parses one changed file and upserts it into the catalog.
// Files that have been removed are skipped; the sweeper prunes their entries.
func reloadFile(ctx context.Context, p *parser.Parser, store catalog.Store, collector *metrics.Collector, logger *slog.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("watched file removed", "path", path)
			return
		}
		logger.Warn("failed to read watched file", "path", path, "error", err)
		return
	}

	start := time.Now()
	desc, err := p.Parse(string(data))
	if err != nil {
		collector.RecordParse("error", time.Since(start), 0)
		logger.Warn("watched file failed to parse", "path", path, "error", err)
		return
	}
	collector.RecordParse("success", time.Since(start), len(desc.Clauses))

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	entry, err := catalog.NewEntry(name, path, string(data), desc)
	if err != nil {
		logger.Warn("failed to build catalog entry", "path", path, "error", err)
		return
	}
	if err := store.Put(ctx, entry); err != nil {
		logger.Warn("failed to store catalog entry", "name", name, "error", err)
		return
	}
	logger.Info("catalog entry updated", "name", name, "clauses", entry.ClauseCount)
}

func refreshEntryCount(ctx context.Context, store catalog.Store, collector *metrics.Collector) {
	if n, err := store.Count(ctx); err == nil {
		collector.SetCatalogEntries(n)
	}
}
