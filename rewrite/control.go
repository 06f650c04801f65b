package rewrite

import (
	"strings"

	"github.com/rubiojr/pycpp/scanner"
)

// RewriteControlFlow rewrites conditional and loop headers into C++
// syntax, opening one block per header:
//
//	if cond:        -> if (cond) {
//	elif cond:      -> } else if (cond) {
//	else:           -> } else {
//	for v in iter:  -> for (auto v : iter) {
//	while cond:     -> while (cond) {
//
// The rewrite is line-scoped and dispatches on the first token, so elif is
// never mistaken for a plain if. An elif header closes the previous block
// before opening its own. No attempt is made to validate that the
// condition or iterable is well-formed C++.
func RewriteControlFlow(src string) string {
	return mapLines(src, rewriteControlLine)
}

func rewriteControlLine(line string) string {
	indent := leadingWS(line)
	trimmed := strings.TrimSpace(line)
	keyword, _ := firstToken(trimmed)

	switch keyword {
	case "if", "elif", "while":
		ci := headerColon(trimmed)
		if ci < 0 {
			return line
		}
		cond := strings.TrimSpace(trimmed[len(keyword):ci])
		tail := trimmed[ci+1:]
		switch keyword {
		case "if":
			return indent + "if (" + cond + ") {" + tail
		case "elif":
			return indent + "} else if (" + cond + ") {" + tail
		default:
			return indent + "while (" + cond + ") {" + tail
		}
	case "else":
		ci := headerColon(trimmed)
		if ci < 0 || strings.TrimSpace(trimmed[len(keyword):ci]) != "" {
			return line
		}
		return indent + "} else {" + trimmed[ci+1:]
	case "for":
		ci := headerColon(trimmed)
		if ci < 0 {
			return line
		}
		clause := trimmed[len(keyword):ci]
		in := scanner.FindTopLevel(clause, func(_ byte, pos int, s string) bool {
			return strings.HasPrefix(s[pos:], " in ")
		})
		if in < 0 {
			return line
		}
		vars := strings.TrimSpace(clause[:in])
		iter := strings.TrimSpace(clause[in+len(" in "):])
		return indent + "for (auto " + vars + " : " + iter + ") {" + trimmed[ci+1:]
	}
	return line
}

// headerColon returns the offset of the colon terminating a block header:
// the first colon at bracket depth 0 outside string literals. Colons
// inside slices, dict literals, or lambdas sit at depth > 0 and are
// skipped.
func headerColon(s string) int {
	return scanner.FindTopLevel(s, func(ch byte, _ int, _ string) bool { return ch == ':' })
}
