package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
)

// ErrNotFound is returned when a catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// Entry is a stored game description: the parse result of one source file,
// indexed by name and content hash.
type Entry struct {
	// ID is a stable unique identifier assigned when the entry is created.
	ID string `json:"id"`

	// Name identifies the game, typically the source file's base name.
	Name string `json:"name"`

	// Path is the source file the description was parsed from, if any.
	Path string `json:"path,omitempty"`

	// SourceHash is the hex SHA-256 of the raw source text.
	SourceHash string `json:"source_hash"`

	// Canonical is the canonical rendering of the parsed description.
	Canonical string `json:"canonical"`

	// AST is the tagged-union JSON encoding of the parsed description.
	AST json.RawMessage `json:"ast"`

	// ClauseCount is the total number of top-level clauses.
	ClauseCount int `json:"clause_count"`

	// RuleCount is the number of clauses that are rules.
	RuleCount int `json:"rule_count"`

	// CreatedAt is when the entry was first stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the entry was last re-stored.
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists catalog entries. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put inserts an entry, or replaces the existing entry with the same
	// name.
	Put(ctx context.Context, entry *Entry) error

	// Get returns the entry with the given name, or ErrNotFound.
	Get(ctx context.Context, name string) (*Entry, error)

	// List returns all entries ordered by name.
	List(ctx context.Context) ([]*Entry, error)

	// Delete removes the entry with the given name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}

// NewEntry builds a catalog entry from a parsed description and its raw
// source text. The entry is assigned a fresh ID and timestamps.
func NewEntry(name, path, source string, desc *ast.Description) (*Entry, error) {
	astJSON, err := json.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode AST: %w", err)
	}

	sum := sha256.Sum256([]byte(source))
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New().String(),
		Name:        name,
		Path:        path,
		SourceHash:  hex.EncodeToString(sum[:]),
		Canonical:   desc.String(),
		AST:         astJSON,
		ClauseCount: len(desc.Clauses),
		RuleCount:   countRules(desc),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Description decodes the entry's stored AST.
func (e *Entry) Description() (*ast.Description, error) {
	var desc ast.Description
	if err := json.Unmarshal(e.AST, &desc); err != nil {
		return nil, fmt.Errorf("failed to decode stored AST for %q: %w", e.Name, err)
	}
	return &desc, nil
}

func countRules(desc *ast.Description) int {
	n := 0
	for _, clause := range desc.Clauses {
		if _, ok := clause.(*ast.Rule); ok {
			n++
		}
	}
	return n
}
