package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/catalog"
	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/config"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

var catalogFlags struct {
	name   string
	format string
	ast    bool
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the game description catalog",
	Long: `Manage the catalog of parsed game descriptions.

The catalog stores each game's canonical text and syntax tree, keyed by
name. The SQLite backend persists across runs; the memory backend is
useful for scripting.

Subcommands:
  add     - Parse files and store them in the catalog
  list    - List catalog entries
  show    - Show a single entry
  remove  - Remove an entry
  sweep   - Audit the catalog once (prune missing, verify round-trips)

Examples:
  # Add a game (name defaults to the file stem)
  gdl catalog add games/chess.kif

  # List all games as JSON
  gdl catalog list --format json

  # Show the stored canonical text
  gdl catalog show chess

  # Remove a game
  gdl catalog remove chess`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [files...]",
	Short: "Parse files and store them in the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  catalogAdd,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	RunE:  catalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a single catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  catalogShow,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  catalogRemove,
}

var catalogSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Audit the catalog once",
	Long: `Run a single catalog audit pass.

Entries whose source file no longer exists are pruned, and each entry's
stored canonical text is re-parsed and checked against its stored syntax
tree.`,
	RunE: catalogSweep,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogAddCmd, catalogListCmd, catalogShowCmd, catalogRemoveCmd, catalogSweepCmd)

	catalogAddCmd.Flags().StringVar(&catalogFlags.name, "name", "", "entry name (default: file stem; only valid with a single file)")
	catalogListCmd.Flags().StringVar(&catalogFlags.format, "format", "text", "output format: text, json")
	catalogShowCmd.Flags().BoolVar(&catalogFlags.ast, "ast", false, "print the stored syntax tree as JSON instead of canonical text")
}

// openCatalog opens the configured catalog backend.
func openCatalog(cfg *config.Config) (catalog.Store, error) {
	store, err := catalog.Open(&cfg.Catalog)
	if err != nil {
		return nil, cli.NewConfigError("catalog", err.Error())
	}
	return store, nil
}

func catalogAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if catalogFlags.name != "" && len(args) > 1 {
		return fmt.Errorf("--name is only valid with a single file")
	}

	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	p := parser.NewParser().WithMaxDepth(cfg.Parser.MaxDepth)

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}
		desc, err := p.ParseFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cli.NewCommandError("catalog add", fmt.Errorf("parse failed"))
		}

		name := catalogFlags.name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		entry, err := catalog.NewEntry(name, path, string(data), desc)
		if err != nil {
			return fmt.Errorf("failed to build entry for %q: %w", path, err)
		}
		if err := store.Put(ctx, entry); err != nil {
			return fmt.Errorf("failed to store %q: %w", name, err)
		}

		fmt.Printf("added %s (%d clauses, %d rules)\n", name, entry.ClauseCount, entry.RuleCount)
	}
	return nil
}

func catalogList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	if catalogFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Println("catalog is empty")
		return nil
	}
	fmt.Printf("%-20s %-8s %-8s %s\n", "NAME", "CLAUSES", "RULES", "UPDATED")
	for _, entry := range entries {
		fmt.Printf("%-20s %-8d %-8d %s\n",
			entry.Name, entry.ClauseCount, entry.RuleCount,
			entry.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func catalogShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", args[0], err)
	}

	if catalogFlags.ast {
		_, err := os.Stdout.Write(append(entry.AST, '\n'))
		return err
	}
	fmt.Println(entry.Canonical)
	return nil
}

func catalogRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove %q: %w", args[0], err)
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

func catalogSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
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

	sweeper := catalog.NewSweeper(store, &cfg.Sweep, logger.Slog())
	result, err := sweeper.Sweep(context.Background())
	if err != nil {
		return cli.NewCommandError("catalog sweep", err)
	}

	fmt.Printf("checked %d, pruned %d, failed %d\n", result.Checked, result.Pruned, result.Failed)
	if result.Failed > 0 {
		return cli.NewCommandError("catalog sweep", fmt.Errorf("%d entries failed verification", result.Failed))
	}
	return nil
}
