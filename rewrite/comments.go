package rewrite

import (
	"regexp"
	"strings"

	"github.com/rubiojr/pycpp/scanner"
)

var (
	tripleDouble = regexp.MustCompile(`(?s)"""(.*?)"""`)
	tripleSingle = regexp.MustCompile(`(?s)'''(.*?)'''`)
)

// NormalizeComments rewrites Python comments into C++ style: triple-quoted
// docstring blocks become /** ... */ comments with the interior preserved
// verbatim, and # line comments become // comments with the code portion
// left untouched.
//
// A # inside a single- or double-quoted string literal is recognized as
// string content and preserved. Triple-quoted conversion is shape-based:
// any triple-quoted literal is converted, including ones used as values
// rather than docstrings.
func NormalizeComments(src string) string {
	src = tripleDouble.ReplaceAllString(src, "/**\n$1\n*/")
	src = tripleSingle.ReplaceAllString(src, "/**\n$1\n*/")

	return mapLines(src, func(line string) string {
		if idx := hashIndex(line); idx >= 0 {
			return line[:idx] + "//" + line[idx+1:]
		}
		return line
	})
}

// hashIndex returns the offset of the first # on the line that sits
// outside string literals, or -1. String state is tracked per line, so a
// string left open by an earlier line hides nothing here.
func hashIndex(line string) int {
	sc := scanner.New(line)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if ch == '#' && sc.InCode() {
			return sc.Pos()
		}
	}
	return -1
}

// commentIndex returns the offset of the first // outside string literals,
// or -1. Used by later passes to ignore already-normalized comments.
func commentIndex(line string) int {
	sc := scanner.New(line)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if ch == '/' && sc.InCode() && sc.LookingAt("//") {
			return sc.Pos()
		}
	}
	return -1
}

// stripComment returns the line with any trailing // comment removed.
func stripComment(line string) string {
	if idx := commentIndex(line); idx >= 0 {
		return strings.TrimRight(line[:idx], " \t")
	}
	return line
}
