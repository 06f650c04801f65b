// Package scanner provides string-boundary-aware scanning for the pycpp
// rewrite passes. It encapsulates the tracking of double-quoted,
// single-quoted, and triple-quoted Python string literals plus escape
// sequences, eliminating the need for every rewrite pass to re-implement
// this logic.
package scanner

import "strings"

// closingKind tracks which type of string delimiter was just closed.
type closingKind byte

const (
	noClosing     closingKind = iota
	closingDouble             // just closed a "..." string
	closingSingle             // just closed a '...' string
	closingTriple             // just closed a """...""" or '''...''' string
)

// CodeScanner iterates byte-by-byte over source text, tracking string
// literal boundaries (double-quoted, single-quoted, triple-quoted) and
// escape sequences. Callers check InString() instead of maintaining their
// own inDouble/inSingle/escaped flags.
//
// InString() returns true for the entire string span including both
// opening and closing delimiters, matching the rewrite passes' convention
// of skipping all bytes that are part of string literals.
type CodeScanner struct {
	src     string
	pos     int
	line    int
	inDbl   bool
	inSgl   bool
	inTrpl  bool
	trplDbl bool // the open triple quote is """ rather than '''
	escaped bool
	// pending counts delimiter bytes still to consume for a multi-byte
	// triple-quote open or close.
	pending     int
	pendingKind closingKind
	closing     closingKind // set when a closing delimiter is processed
}

// New creates a CodeScanner for the given source text.
// Call Next() to advance to the first byte.
func New(src string) *CodeScanner {
	return &CodeScanner{src: src, pos: -1, line: 1}
}

// Next advances to the next byte, updating string/escape state.
// Returns the byte and true, or (0, false) at end of input.
func (s *CodeScanner) Next() (byte, bool) {
	s.closing = noClosing
	s.pos++
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	if ch == '\n' {
		s.line++
	}

	if s.pending > 0 {
		s.pending--
		if s.pending == 0 && s.pendingKind != noClosing {
			s.closing = s.pendingKind
			s.pendingKind = noClosing
		}
		return ch, true
	}
	if s.escaped {
		s.escaped = false
		return ch, true
	}
	if ch == '\\' && (s.inDbl || s.inSgl || s.inTrpl) {
		s.escaped = true
		return ch, true
	}

	switch {
	case s.inTrpl:
		quote := byte('\'')
		if s.trplDbl {
			quote = '"'
		}
		if ch == quote && s.LookingAt(strings.Repeat(string(quote), 3)) {
			s.inTrpl = false
			s.pending = 2
			s.pendingKind = closingTriple
		}
	case ch == '"' && !s.inSgl:
		if s.inDbl {
			s.closing = closingDouble
			s.inDbl = false
		} else if s.LookingAt(`"""`) {
			s.inTrpl = true
			s.trplDbl = true
			s.pending = 2
		} else {
			s.inDbl = true
		}
	case ch == '\'' && !s.inDbl:
		if s.inSgl {
			s.closing = closingSingle
			s.inSgl = false
		} else if s.LookingAt(`'''`) {
			s.inTrpl = true
			s.trplDbl = false
			s.pending = 2
		} else {
			s.inSgl = true
		}
	}

	return ch, true
}

// InString reports whether the current position is inside a string literal
// (double-quoted, single-quoted, or triple-quoted), including both opening
// and closing delimiters.
func (s *CodeScanner) InString() bool {
	return s.inDbl || s.inSgl || s.inTrpl || s.pending > 0 || s.closing != noClosing
}

// InTriple reports whether the current position is inside a triple-quoted
// string literal.
func (s *CodeScanner) InTriple() bool {
	return s.inTrpl || s.pending > 0 || s.closing == closingTriple
}

// InCode reports whether the current position is outside all string literals.
func (s *CodeScanner) InCode() bool { return !s.InString() }

// Pos returns the current byte offset (the position of the last byte
// returned by Next). Returns -1 before the first call to Next.
func (s *CodeScanner) Pos() int { return s.pos }

// Line returns the current 1-based line number.
func (s *CodeScanner) Line() int { return s.line }

// Peek returns the next byte without advancing, or (0, false) at end.
func (s *CodeScanner) Peek() (byte, bool) {
	if s.pos+1 >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+1], true
}

// LookingAt checks if src[pos:] starts with the given prefix.
func (s *CodeScanner) LookingAt(prefix string) bool {
	return strings.HasPrefix(s.src[s.pos:], prefix)
}

// IsOpenBracket reports whether ch is an opening bracket/paren/brace.
func IsOpenBracket(ch byte) bool {
	return ch == '(' || ch == '[' || ch == '{'
}

// IsCloseBracket reports whether ch is a closing bracket/paren/brace.
func IsCloseBracket(ch byte) bool {
	return ch == ')' || ch == ']' || ch == '}'
}

// FindTopLevel scans s for a byte matching pred at bracket depth 0,
// outside all string literals. Returns the byte offset or -1.
func FindTopLevel(s string, pred func(ch byte, pos int, src string) bool) int {
	depth := 0
	sc := New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if sc.InString() {
			continue
		}
		if IsOpenBracket(ch) {
			depth++
		} else if IsCloseBracket(ch) {
			depth--
		}
		if depth == 0 && pred(ch, sc.Pos(), s) {
			return sc.Pos()
		}
	}
	return -1
}

// SplitTopLevel splits s on the given separator byte at bracket depth 0,
// outside all string literals. An empty s yields a single empty element.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	sc := New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if sc.InString() {
			continue
		}
		if IsOpenBracket(ch) {
			depth++
		} else if IsCloseBracket(ch) {
			depth--
		}
		if depth == 0 && ch == sep {
			parts = append(parts, s[start:sc.Pos()])
			start = sc.Pos() + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// BracketDepth returns the bracket nesting depth at the end of s, counting
// only brackets outside string literals. Unbalanced closers drive the
// result negative.
func BracketDepth(s string) int {
	depth := 0
	sc := New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if sc.InString() {
			continue
		}
		if IsOpenBracket(ch) {
			depth++
		} else if IsCloseBracket(ch) {
			depth--
		}
	}
	return depth
}
