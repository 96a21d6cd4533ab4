package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	gdlErrors "github.com/gsingh93/gdl-parser/pkg/gdl/errors"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

var lintFlags struct {
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Validate game description files",
	Long: `Validate game description files for syntax and structural problems.

The lint command parses description files and reports:
  - Syntax errors with source locations
  - Singleton variables (used exactly once in a rule)
  - Head variables that never appear in the rule body

Examples:
  # Lint single file
  gdl lint games/tictactoe.kif

  # Lint directory
  gdl lint --dir games/

  # Strict mode (warnings as errors)
  gdl lint games/tictactoe.kif --strict

  # JSON output for CI/CD
  gdl lint --dir games/ --format json`,
	RunE: lintDescriptions,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of description files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintDescriptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	files := append([]string(nil), args...)
	if lintFlags.dir != "" {
		for _, ext := range cfg.Watch.Extensions {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, "*"+ext))
			if err != nil {
				return fmt.Errorf("failed to list description files: %w", err)
			}
			files = append(files, matches...)
		}
		sort.Strings(files)
	}

	if len(files) == 0 {
		return fmt.Errorf("no description files given: pass files or --dir")
	}

	p := parser.NewParser().WithMaxDepth(cfg.Parser.MaxDepth)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateFile(p, file))
	}

	if lintFlags.format == "json" {
		return outputJSON(results)
	}
	return outputText(results, lintFlags.strict)
}

// ValidationResult represents the validation result for a single file.
type ValidationResult struct {
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// ValidationError represents a single validation error or warning.
type ValidationError struct {
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Type     string `json:"type,omitempty"`
}

func validateFile(p *parser.Parser, path string) ValidationResult {
	result := ValidationResult{
		File:  path,
		Valid: true,
	}

	desc, err := p.ParseFile(path)
	if err != nil {
		result.Valid = false

		if gdlErr, ok := err.(*gdlErrors.Error); ok {
			result.Errors = append(result.Errors, ValidationError{
				Line:     gdlErr.Location.Line,
				Column:   gdlErr.Location.Column,
				Message:  gdlErr.Message,
				Severity: "error",
				Type:     string(gdlErr.Type),
			})
		} else {
			result.Errors = append(result.Errors, ValidationError{
				Message:  err.Error(),
				Severity: "error",
			})
		}
		return result
	}

	for _, warning := range checkRules(desc) {
		result.Warnings = append(result.Warnings, warning)
	}
	return result
}

// checkRules reports structural warnings for each rule: singleton variables
// and head variables that the body never binds.
func checkRules(desc *ast.Description) []ValidationError {
	var warnings []ValidationError

	for _, clause := range desc.Clauses {
		rule, ok := clause.(*ast.Rule)
		if !ok {
			continue
		}

		// Propositions and relations are literals as well as sentences.
		headVars := collectVariables(rule.Head.(ast.Literal))
		bodyVars := make(map[string]int)
		for _, lit := range rule.Body {
			for name, n := range collectVariables(lit) {
				bodyVars[name] += n
			}
		}

		for name := range headVars {
			if bodyVars[name] == 0 {
				warnings = append(warnings, ValidationError{
					Message:  fmt.Sprintf("rule %s: head variable ?%s never appears in the body", rule.Head.String(), name),
					Severity: "warning",
					Type:     "unbound-head-variable",
				})
			}
		}

		for name, n := range bodyVars {
			if n == 1 && headVars[name] == 0 {
				warnings = append(warnings, ValidationError{
					Message:  fmt.Sprintf("rule %s: variable ?%s is used only once", rule.Head.String(), name),
					Severity: "warning",
					Type:     "singleton-variable",
				})
			}
		}
	}
	return warnings
}

// collectVariables counts variable occurrences under a literal.
func collectVariables(lit ast.Literal) map[string]int {
	counts := make(map[string]int)
	v := &variableCounter{counts: counts}
	l := lit
	ast.WalkLiteral(&l, v)
	return counts
}

type variableCounter struct {
	ast.BaseVisitor
	counts map[string]int
}

func (v *variableCounter) VisitVariable(n *ast.Variable) {
	v.counts[n.Name.Name]++
}

func outputText(results []ValidationResult, strict bool) error {
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			fmt.Println("✓ Description valid")
		}

		for _, err := range result.Errors {
			fmt.Printf("✗ Error: %s", err.Message)
			if err.Line > 0 {
				fmt.Printf(" (line %d", err.Line)
				if err.Column > 0 {
					fmt.Printf(", col %d", err.Column)
				}
				fmt.Print(")")
			}
			if err.Type != "" {
				fmt.Printf(" [%s]", err.Type)
			}
			fmt.Println()
			totalErrors++
		}

		for _, warn := range result.Warnings {
			fmt.Printf("⚠  Warning: %s", warn.Message)
			if warn.Type != "" {
				fmt.Printf(" [%s]", warn.Type)
			}
			fmt.Println()
			totalWarnings++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if strict && totalWarnings > 0 {
		fmt.Println("  Strict mode enabled: treating warnings as errors")
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}

	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}

	return nil
}

func outputJSON(results []ValidationResult) error {
	formatter := cli.NewFormatter(cli.FormatJSON)
	return formatter.FormatTo(os.Stdout, results)
}
