// Gdl is a toolkit for working with Game Description Language files.
//
// It parses game descriptions, prints them in canonical form, and maintains
// a catalog of parsed games:
//   - Parse and validate description files
//   - Rewrite files into canonical form
//   - Report structural statistics
//   - Store parsed games in a SQLite-backed catalog
//   - Watch description directories and reload on change
//
// Usage:
//
//	# Parse a file and print its canonical form
//	gdl parse games/tictactoe.kif
//
//	# Rewrite files in place
//	gdl fmt --write games/*.kif
//
//	# Validate files for CI
//	gdl lint --dir games/ --format json
//
//	# Add a game to the catalog
//	gdl catalog add games/chess.kif
//
//	# Watch directories and serve metrics
//	gdl watch --config gdl.yaml
package main

func main() {
	Execute()
}
