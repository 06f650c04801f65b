package rewrite

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rubiojr/pycpp/tables"
)

// The two namespace directives emitted after the hoisted include block.
const usingDirectives = "using namespace reservoircpp;\nusing namespace Eigen;"

var (
	fromImportRe  = regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`)
	plainImportRe = regexp.MustCompile(`^import\s+(.+)$`)
	asAliasRe     = regexp.MustCompile(`\s+as\s+\w+$`)
)

// ResolveImports rewrites Python import statements into C++ include
// directives. Recognized statements are deleted in place (the line is left
// blank so indentation accounting is unaffected) and the resulting
// directives are deduplicated, sorted, and hoisted to the top of the unit,
// followed by the two fixed namespace-usage directives.
//
// Only column-zero imports are recognized; an indented import passes
// through unmodified. Continuation forms are expected to have been joined
// into one physical line already.
func ResolveImports(src string, tb *tables.Tables) string {
	lines := strings.Split(src, "\n")
	includes := make(map[string]bool)
	matched := false

	for i, line := range lines {
		dirs, ok := resolveImportLine(stripComment(line), tb)
		if !ok {
			continue
		}
		for _, d := range dirs {
			includes[d] = true
		}
		lines[i] = ""
		matched = true
	}
	if !matched {
		return src
	}

	sorted := make([]string, 0, len(includes))
	for d := range includes {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var sb strings.Builder
	for _, d := range sorted {
		sb.WriteString(d)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(usingDirectives)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// resolveImportLine maps one import statement to include directives.
// Returns ok=false when the line is not a recognizable import.
func resolveImportLine(line string, tb *tables.Tables) ([]string, bool) {
	if line != strings.TrimLeft(line, " \t") {
		return nil, false
	}

	if m := fromImportRe.FindStringSubmatch(line); m != nil {
		module, names := m[1], strings.TrimSpace(m[2])
		if headers, ok := tb.IncludesFor(module); ok {
			// Known library: imported names and aliases are irrelevant,
			// the mapped headers replace the whole module.
			return angleIncludes(headers), true
		}
		path := strings.ReplaceAll(module, ".", "/")
		if strings.TrimSpace(asAliasRe.ReplaceAllString(names, "")) == "*" {
			return []string{quotedInclude(tables.IncludePrefix + path + ".hpp")}, true
		}
		var dirs []string
		for _, name := range importedNames(names) {
			dirs = append(dirs, quotedInclude(tables.IncludePrefix+path+"/"+name+".hpp"))
		}
		return dirs, len(dirs) > 0
	}

	if m := plainImportRe.FindStringSubmatch(line); m != nil {
		var dirs []string
		for _, name := range importedNames(m[1]) {
			if headers, ok := tb.IncludesFor(name); ok {
				dirs = append(dirs, angleIncludes(headers)...)
			} else {
				dirs = append(dirs, quotedInclude(name+".hpp"))
			}
		}
		return dirs, len(dirs) > 0
	}

	return nil, false
}

// importedNames splits an import name list, dropping aliases and any
// surrounding parentheses.
func importedNames(names string) []string {
	names = strings.TrimSpace(names)
	names = strings.TrimPrefix(names, "(")
	names = strings.TrimSuffix(names, ")")
	var out []string
	for _, n := range strings.Split(names, ",") {
		n = strings.TrimSpace(asAliasRe.ReplaceAllString(strings.TrimSpace(n), ""))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func angleIncludes(headers []string) []string {
	dirs := make([]string, len(headers))
	for i, h := range headers {
		dirs[i] = "#include <" + h + ">"
	}
	return dirs
}

func quotedInclude(header string) string {
	return `#include "` + header + `"`
}
