package rewrite

import (
	"strings"

	"github.com/rubiojr/pycpp/scanner"
)

// JoinContinuations merges physical lines that continue a statement onto
// the line that started it: a trailing backslash, or brackets left open
// outside string literals. Without this, a multi-line import (or any
// multi-line statement) would be invisible to the line-scoped passes and
// its continuation indentation would desynchronize block accounting.
//
// Lines inside /** ... */ comment blocks are left untouched; bracket
// counting ignores text after a // comment marker.
func JoinContinuations(src string) string {
	lines := strings.Split(src, "\n")
	var out []string
	inComment := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if inComment {
			out = append(out, line)
			if strings.Contains(line, "*/") {
				inComment = false
			}
			continue
		}
		if opensComment(line) {
			out = append(out, line)
			inComment = true
			continue
		}

		for i+1 < len(lines) {
			trimmed := strings.TrimRight(line, " \t")
			if strings.HasSuffix(trimmed, "\\") {
				line = strings.TrimRight(trimmed[:len(trimmed)-1], " \t") + " " + strings.TrimSpace(lines[i+1])
				i++
				continue
			}
			if scanner.BracketDepth(stripComment(line)) > 0 {
				line = trimmed + " " + strings.TrimSpace(lines[i+1])
				i++
				continue
			}
			break
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// opensComment reports whether the line opens a /** block that does not
// close on the same line.
func opensComment(line string) bool {
	open := strings.Index(line, "/**")
	if open < 0 {
		return false
	}
	return !strings.Contains(line[open:], "*/")
}
