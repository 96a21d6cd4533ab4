package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

var parseFlags struct {
	format string
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a game description and print it",
	Long: `Parse a game description file and print the result.

Reads from stdin when no file is given. By default the description is
printed in canonical form; with --format json the full syntax tree is
printed as JSON.

Examples:
  # Parse a file and print canonical form
  gdl parse games/tictactoe.kif

  # Parse stdin
  cat games/tictactoe.kif | gdl parse

  # Print the syntax tree as JSON
  gdl parse games/tictactoe.kif --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseDescription,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseFlags.format, "format", "text", "output format: text, json")
}

func parseDescription(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := parser.NewParser().WithMaxDepth(cfg.Parser.MaxDepth)

	var desc *ast.Description
	if len(args) == 1 {
		desc, err = p.ParseFile(args[0])
	} else {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		desc, err = p.Parse(string(data))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.NewCommandError("parse", fmt.Errorf("parse failed"))
	}

	if parseFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, desc)
	}

	fmt.Println(desc.String())
	return nil
}
