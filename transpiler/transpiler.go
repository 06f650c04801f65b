// Package transpiler orchestrates the pycpp rewrite pipeline: it reads one
// Python source unit, threads it through the rewrite passes in fixed
// order, and writes one C++ output unit. The whole unit is read before any
// transformation begins and written after the last pass completes, so a
// failed run never leaves a half-written file.
package transpiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubiojr/pycpp/rewrite"
	"github.com/rubiojr/pycpp/tables"
)

// HeaderSuffix marks an output unit as a declaration unit, eligible for
// include-guard wrapping.
const HeaderSuffix = ".hpp"

// Transpiler converts Python source text to C++ source text. The zero
// value uses the embedded mapping tables.
type Transpiler struct {
	Tables *tables.Tables
}

// New returns a Transpiler using the given tables, or the embedded
// defaults when tb is nil.
func New(tb *tables.Tables) *Transpiler {
	if tb == nil {
		tb = tables.Default()
	}
	return &Transpiler{Tables: tb}
}

func (t *Transpiler) tables() *tables.Tables {
	if t.Tables == nil {
		return tables.Default()
	}
	return t.Tables
}

// Transpile runs the full pipeline over src. outName is the output unit's
// path, used to derive the include-guard name; a declaration unit (one
// whose path ends in HeaderSuffix) is wrapped in guard boilerplate. Empty
// input (after trimming whitespace) yields empty output.
func (t *Transpiler) Transpile(src, outName string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	out := rewrite.Pipeline(t.tables()).Apply(src)
	if strings.HasSuffix(outName, HeaderSuffix) {
		out = wrapHeaderGuard(out, outName)
	}
	return out
}

// ConvertFile reads one input unit, transpiles it, and writes the output
// unit. The output buffer is fully constructed before the file is opened.
func (t *Transpiler) ConvertFile(input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	out := t.Transpile(string(src), output)
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

// Emit reads one input unit and returns the transpiled text. The implied
// output unit is the input with its extension swapped to .cpp, so the
// result is never guard-wrapped.
func (t *Transpiler) Emit(input string) (string, error) {
	src, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", input, err)
	}
	outName := strings.TrimSuffix(input, filepath.Ext(input)) + ".cpp"
	return t.Transpile(string(src), outName), nil
}

// wrapHeaderGuard wraps a declaration unit's body in include-guard
// boilerplate. The guard name derives from the output path's base name,
// uppercased and framed by the fixed project prefix and suffix.
func wrapHeaderGuard(code, outName string) string {
	base := strings.TrimSuffix(filepath.Base(outName), filepath.Ext(outName))
	guard := tables.GuardPrefix + strings.ToUpper(base) + tables.GuardSuffix
	return fmt.Sprintf("#ifndef %s\n#define %s\n\n%s\n\n#endif // %s\n", guard, guard, code, guard)
}
