// Package tables holds the static mapping tables consumed by the rewrite
// passes: Python type names to C++ type names, builtin function names, and
// library imports to C++ header lists. The tables ship embedded as TOML and
// are never mutated after load; callers pass them explicitly into the
// passes that need them.
package tables

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

// Untyped is the fallback C++ type emitted when no mapping or literal
// shape applies.
const Untyped = "auto"

// IncludePrefix roots project-relative includes derived from Python
// module paths.
const IncludePrefix = "reservoircpp/"

// GuardPrefix and GuardSuffix frame include-guard macro names for
// declaration units.
const (
	GuardPrefix = "RESERVOIRCPP_"
	GuardSuffix = "_HPP"
)

//go:embed tables.toml
var embedded []byte

// Tables is one immutable set of mapping tables.
type Tables struct {
	Types     map[string]string   `toml:"types"`
	Builtins  map[string]string   `toml:"builtins"`
	Libraries map[string][]string `toml:"libraries"`
}

var defaultTables = sync.OnceValue(func() *Tables {
	var t Tables
	if err := toml.Unmarshal(embedded, &t); err != nil {
		// The embedded document is part of the build; a parse failure
		// means a broken release, not a runtime condition.
		panic(fmt.Sprintf("tables: embedded tables.toml: %v", err))
	}
	return &t
})

// Default returns the embedded table set, parsed once per process.
func Default() *Tables {
	return defaultTables()
}

// LoadFile parses a table override file with the same schema as the
// embedded document. Sections missing from the file fall back to the
// embedded defaults.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	var t Tables
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	def := Default()
	if t.Types == nil {
		t.Types = def.Types
	}
	if t.Builtins == nil {
		t.Builtins = def.Builtins
	}
	if t.Libraries == nil {
		t.Libraries = def.Libraries
	}
	return &t, nil
}

// ResolveType maps a Python type annotation to its C++ type, falling back
// to the untyped marker for unknown names.
func (t *Tables) ResolveType(name string) string {
	if cpp, ok := t.Types[name]; ok {
		return cpp
	}
	return Untyped
}

// ResolveBuiltin maps a Python builtin function name to its C++
// counterpart.
func (t *Tables) ResolveBuiltin(name string) (string, bool) {
	cpp, ok := t.Builtins[name]
	return cpp, ok
}

// IncludesFor returns the C++ headers replacing a Python library import.
func (t *Tables) IncludesFor(module string) ([]string, bool) {
	headers, ok := t.Libraries[module]
	return headers, ok
}
