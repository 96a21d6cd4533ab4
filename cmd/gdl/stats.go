package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsingh93/gdl-parser/pkg/cli"
	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

var statsFlags struct {
	format string
}

var statsCmd = &cobra.Command{
	Use:   "stats [files...]",
	Short: "Report structural statistics for game descriptions",
	Long: `Report structural statistics for game description files.

For each file the command reports clause, rule, relation, proposition,
variable, and negation counts, the number of distinct variable names, and
the maximum term nesting depth.

Examples:
  # Text report
  gdl stats games/tictactoe.kif

  # JSON for tooling
  gdl stats --format json games/*.kif`,
	Args: cobra.MinimumNArgs(1),
	RunE: reportStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFlags.format, "format", "text", "output format: text, json")
}

// DescriptionStats holds structural counts for a single description file.
type DescriptionStats struct {
	File          string `json:"file"`
	Clauses       int    `json:"clauses"`
	Rules         int    `json:"rules"`
	Relations     int    `json:"relations"`
	Propositions  int    `json:"propositions"`
	Variables     int    `json:"variables"`
	UniqueVarNames int   `json:"unique_variable_names"`
	Negations     int    `json:"negations"`
	Disjunctions  int    `json:"disjunctions"`
	Distincts     int    `json:"distincts"`
	MaxTermDepth  int    `json:"max_term_depth"`
}

func reportStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := parser.NewParser().WithMaxDepth(cfg.Parser.MaxDepth)

	all := make([]DescriptionStats, 0, len(args))
	for _, path := range args {
		desc, err := p.ParseFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cli.NewCommandError("stats", fmt.Errorf("parse failed"))
		}
		all = append(all, collectStats(path, desc))
	}

	if statsFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, all)
	}

	for _, s := range all {
		fmt.Printf("%s:\n", s.File)
		fmt.Printf("  clauses:       %d\n", s.Clauses)
		fmt.Printf("  rules:         %d\n", s.Rules)
		fmt.Printf("  relations:     %d\n", s.Relations)
		fmt.Printf("  propositions:  %d\n", s.Propositions)
		fmt.Printf("  variables:     %d (%d unique)\n", s.Variables, s.UniqueVarNames)
		fmt.Printf("  negations:     %d\n", s.Negations)
		fmt.Printf("  disjunctions:  %d\n", s.Disjunctions)
		fmt.Printf("  distincts:     %d\n", s.Distincts)
		fmt.Printf("  max term depth: %d\n", s.MaxTermDepth)
	}
	return nil
}

// collectStats walks the description once and tallies node counts.
func collectStats(path string, desc *ast.Description) DescriptionStats {
	collector := &statsCollector{varNames: make(map[string]struct{})}
	ast.Walk(desc, collector)

	s := collector.stats
	s.File = path
	s.Clauses = len(desc.Clauses)
	s.UniqueVarNames = len(collector.varNames)
	s.MaxTermDepth = maxDescriptionDepth(desc)
	return s
}

type statsCollector struct {
	ast.BaseVisitor
	stats    DescriptionStats
	varNames map[string]struct{}
}

func (c *statsCollector) VisitRule(*ast.Rule)     { c.stats.Rules++ }
func (c *statsCollector) VisitRelation(*ast.Relation) { c.stats.Relations++ }
func (c *statsCollector) VisitProposition(*ast.Proposition) { c.stats.Propositions++ }
func (c *statsCollector) VisitNot(*ast.Not)       { c.stats.Negations++ }
func (c *statsCollector) VisitOr(*ast.Or)         { c.stats.Disjunctions++ }
func (c *statsCollector) VisitDistinct(*ast.Distinct) { c.stats.Distincts++ }

func (c *statsCollector) VisitVariable(v *ast.Variable) {
	c.stats.Variables++
	c.varNames[v.Name.Name] = struct{}{}
}

// maxDescriptionDepth computes the deepest term nesting in the description.
// Constants and variables have depth 1; a function adds one level over its
// deepest argument.
func maxDescriptionDepth(desc *ast.Description) int {
	max := 0
	for _, clause := range desc.Clauses {
		if d := clauseDepth(clause); d > max {
			max = d
		}
	}
	return max
}

func clauseDepth(c ast.Clause) int {
	switch n := c.(type) {
	case *ast.Rule:
		max := sentenceDepth(n.Head)
		for _, lit := range n.Body {
			if d := literalDepth(lit); d > max {
				max = d
			}
		}
		return max
	case *ast.Proposition:
		return 0
	case *ast.Relation:
		return relationDepth(n)
	}
	return 0
}

func sentenceDepth(s ast.Sentence) int {
	if r, ok := s.(*ast.Relation); ok {
		return relationDepth(r)
	}
	return 0
}

func literalDepth(l ast.Literal) int {
	switch n := l.(type) {
	case *ast.Not:
		return literalDepth(n.Lit)
	case *ast.Or:
		max := 0
		for _, lit := range n.Lits {
			if d := literalDepth(lit); d > max {
				max = d
			}
		}
		return max
	case *ast.Distinct:
		d1, d2 := termDepth(n.Term1), termDepth(n.Term2)
		if d1 > d2 {
			return d1
		}
		return d2
	case *ast.Proposition:
		return 0
	case *ast.Relation:
		return relationDepth(n)
	}
	return 0
}

func relationDepth(r *ast.Relation) int {
	max := 0
	for _, arg := range r.Args {
		if d := termDepth(arg); d > max {
			max = d
		}
	}
	return max
}

func termDepth(t ast.Term) int {
	f, ok := t.(*ast.Function)
	if !ok {
		return 1
	}
	max := 0
	for _, arg := range f.Args {
		if d := termDepth(arg); d > max {
			max = d
		}
	}
	return max + 1
}
