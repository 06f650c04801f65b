package rewrite

import (
	"regexp"
	"strings"

	"github.com/rubiojr/pycpp/scanner"
	"github.com/rubiojr/pycpp/tables"
)

// RewriteDeclarations rewrites class and function declaration headers into
// C++ signatures. Class headers are rewritten first, then a visibility
// marker is inserted before every indented method header, then the method
// and function headers themselves are rewritten. Each rewritten header
// opens a block with a trailing brace; closing is deferred to block
// synthesis.
func RewriteDeclarations(src string, tb *tables.Tables) string {
	src = mapLines(src, rewriteClassLine)
	src = insertVisibilityMarkers(src)
	src = mapLines(src, func(line string) string { return rewriteDefLine(line, tb) })
	return src
}

// rewriteClassLine turns `class Name(Base1, Base2):` into
// `class Name : public Base1, public Base2 {`. Bases become public
// inheritance references; a class without bases keeps a bare brace.
func rewriteClassLine(line string) string {
	indent := leadingWS(line)
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "class ") {
		return line
	}
	rest := strings.TrimSpace(trimmed[len("class"):])
	name, after := firstToken(rest)
	if !isIdent(name) {
		return line
	}
	after = strings.TrimSpace(after)

	var bases []string
	if strings.HasPrefix(after, "(") {
		rp := matchingBracket(after, 0)
		if rp < 0 {
			return line
		}
		for _, b := range scanner.SplitTopLevel(after[1:rp], ',') {
			b = strings.TrimSpace(b)
			if b != "" {
				bases = append(bases, "public "+b)
			}
		}
		after = strings.TrimSpace(after[rp+1:])
	}
	if !strings.HasPrefix(after, ":") {
		return line
	}
	tail := after[1:]

	header := indent + "class " + name
	if len(bases) > 0 {
		header += " : " + strings.Join(bases, ", ")
	}
	return header + " {" + tail
}

var methodHeaderRe = regexp.MustCompile(`^[ \t]+def\s`)

// insertVisibilityMarkers inserts a `public:` line before every indented
// method header. The insertion is blind: it does not track existing
// visibility sections, so running it over already-marked text duplicates
// the markers. Single application only.
func insertVisibilityMarkers(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if methodHeaderRe.MatchString(line) {
			out = append(out, leadingWS(line)+"public:")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// rewriteDefLine turns `def name(params) -> ret:` into
// `<ret> name(<params>) {`. Parameter types come from explicit annotations
// resolved through the type table, or from the default value's literal
// shape; parameters with neither are emitted as auto.
func rewriteDefLine(line string, tb *tables.Tables) string {
	indent := leadingWS(line)
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "def ") {
		return line
	}
	rest := strings.TrimSpace(trimmed[len("def"):])
	name, after := firstToken(rest)
	if !isIdent(name) {
		return line
	}
	after = strings.TrimSpace(after)
	if !strings.HasPrefix(after, "(") {
		return line
	}
	rp := matchingBracket(after, 0)
	if rp < 0 {
		return line
	}
	params := after[1:rp]
	tail := strings.TrimSpace(after[rp+1:])

	retType := tables.Untyped
	switch {
	case strings.HasPrefix(tail, "->"):
		ci := strings.Index(tail, ":")
		if ci < 0 {
			return line
		}
		retType = tb.ResolveType(strings.TrimSpace(tail[2:ci]))
		tail = tail[ci+1:]
	case strings.HasPrefix(tail, ":"):
		tail = tail[1:]
	default:
		return line
	}

	return indent + retType + " " + name + "(" + rewriteParams(params, tb) + ") {" + tail
}

// rewriteParams rewrites a Python parameter list into typed C++
// parameters.
func rewriteParams(params string, tb *tables.Tables) string {
	if strings.TrimSpace(params) == "" {
		return ""
	}
	var out []string
	for _, p := range scanner.SplitTopLevel(params, ',') {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, rewriteParam(p, tb))
	}
	return strings.Join(out, ", ")
}

func rewriteParam(p string, tb *tables.Tables) string {
	if eq := scanner.FindTopLevel(p, func(ch byte, _ int, _ string) bool { return ch == '=' }); eq >= 0 {
		name := strings.TrimSpace(p[:eq])
		def := lowerBool(strings.TrimSpace(p[eq+1:]))
		ann := ""
		if ci := strings.Index(name, ":"); ci >= 0 {
			ann = strings.TrimSpace(name[ci+1:])
			name = strings.TrimSpace(name[:ci])
		}
		typ := inferLiteralType(strings.TrimSpace(p[eq+1:]))
		if ann != "" {
			// An explicit annotation wins over the default's shape.
			typ = tb.ResolveType(ann)
		}
		return typ + " " + name + " = " + def
	}
	if ci := strings.Index(p, ":"); ci >= 0 {
		name := strings.TrimSpace(p[:ci])
		ann := strings.TrimSpace(p[ci+1:])
		return tb.ResolveType(ann) + " " + name
	}
	return tables.Untyped + " " + p
}

// matchingBracket returns the offset of the bracket closing the one at
// open, honoring nesting and string literals. Returns -1 when unclosed.
func matchingBracket(s string, open int) int {
	depth := 0
	sc := scanner.New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if sc.InString() || sc.Pos() < open {
			continue
		}
		if scanner.IsOpenBracket(ch) {
			depth++
		} else if scanner.IsCloseBracket(ch) {
			depth--
			if depth == 0 {
				return sc.Pos()
			}
		}
	}
	return -1
}
