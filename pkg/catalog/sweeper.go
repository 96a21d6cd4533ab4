package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gsingh93/gdl-parser/pkg/config"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

// SweepResult summarizes one sweep over the catalog.
type SweepResult struct {
	Checked int `json:"checked"`
	Pruned  int `json:"pruned"`
	Failed  int `json:"failed"`
}

// Sweeper periodically audits the catalog: entries whose source file has
// disappeared are pruned, and stored canonical text is re-parsed and compared
// against the stored syntax tree to detect drift.
type Sweeper struct {
	store  Store
	config *config.SweepConfig
	parser *parser.Parser
	cron   *cron.Cron
	logger *slog.Logger

	mu      sync.Mutex
	running bool

	// onSweep, when set, observes each completed sweep.
	onSweep func(SweepResult)
}

// NewSweeper creates a sweeper over the given store.
func NewSweeper(store Store, cfg *config.SweepConfig, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		store:  store,
		config: cfg,
		parser: parser.NewParser(),
		cron:   cron.New(),
		logger: logger.With("component", "catalog.sweeper"),
	}
}

// OnSweep registers a callback invoked after every completed sweep. It must
// be called before Start.
func (s *Sweeper) OnSweep(fn func(SweepResult)) {
	s.onSweep = fn
}

// Start begins scheduled sweeping based on the configured cron expression.
//
// Common schedules:
//   - "@hourly"      - Every hour
//   - "0 3 * * *"    - Daily at 3 AM
//   - "*/15 * * * *" - Every 15 minutes
//
// If the schedule is empty, the sweeper does nothing.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Schedule == "" {
		s.logger.Info("sweep schedule not configured, skipping sweeper")
		return nil
	}

	if _, err := cron.ParseStandard(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.config.Schedule, err)
	}

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("catalog sweeper started",
		"schedule", s.config.Schedule,
		"prune_missing", s.config.PruneMissing,
		"verify_round_trip", s.config.VerifyRoundTrip,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runSweep executes one scheduled sweep cycle.
func (s *Sweeper) runSweep(ctx context.Context) {
	s.logger.Info("starting scheduled catalog sweep")

	result, err := s.Sweep(ctx)
	if err != nil {
		s.logger.Error("scheduled sweep failed", "error", err)
		return
	}

	if result.Pruned > 0 || result.Failed > 0 {
		s.logger.Info("scheduled sweep completed",
			"checked", result.Checked,
			"pruned", result.Pruned,
			"failed", result.Failed,
		)
	} else {
		s.logger.Debug("scheduled sweep completed, catalog clean",
			"checked", result.Checked,
		)
	}
}

// Sweep runs a single audit pass over every catalog entry.
func (s *Sweeper) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	entries, err := s.store.List(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	for _, entry := range entries {
		result.Checked++

		if s.config.PruneMissing && entry.Path != "" {
			if _, err := os.Stat(entry.Path); os.IsNotExist(err) {
				s.logger.Info("pruning entry with missing source",
					"name", entry.Name,
					"path", entry.Path,
				)
				if err := s.store.Delete(ctx, entry.Name); err != nil {
					s.logger.Error("failed to prune entry",
						"name", entry.Name,
						"error", err,
					)
					result.Failed++
					continue
				}
				result.Pruned++
				continue
			}
		}

		if s.config.VerifyRoundTrip {
			if err := s.verifyEntry(entry); err != nil {
				s.logger.Error("catalog entry failed verification",
					"name", entry.Name,
					"error", err,
				)
				result.Failed++
			}
		}
	}

	if s.onSweep != nil {
		s.onSweep(result)
	}
	return result, nil
}

// verifyEntry re-parses the stored canonical text and checks it is
// structurally identical to the stored syntax tree.
func (s *Sweeper) verifyEntry(entry *Entry) error {
	reparsed, err := s.parser.Parse(entry.Canonical)
	if err != nil {
		return fmt.Errorf("canonical text no longer parses: %w", err)
	}

	stored, err := entry.Description()
	if err != nil {
		return fmt.Errorf("stored syntax tree is corrupt: %w", err)
	}

	if !reparsed.Equal(stored) {
		return fmt.Errorf("canonical text and stored tree diverge")
	}
	return nil
}

// Stop stops the sweeper and waits for any running sweep to complete.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("catalog sweeper stopped")
	}
}

// IsRunning returns true if the sweeper is running.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled sweep time.
func (s *Sweeper) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
