// Package rewrite implements the text-rewrite passes that turn
// indentation-delimited Python source into brace-delimited C++ source.
// Every pass is a total function over its input text: it always produces
// some output and never fails on malformed source. Correctness is
// best-effort; unrecognized shapes pass through unmodified.
package rewrite

import (
	"strings"

	"github.com/rubiojr/pycpp/tables"
)

// Pass rewrites a text buffer. Passes run in a fixed order; later passes
// operate on text produced by earlier ones, so ordering is part of the
// contract, not an implementation detail.
type Pass interface {
	Name() string
	Apply(src string) string
}

// PassFunc adapts a named function to the Pass interface.
type PassFunc struct {
	N string
	F func(string) string
}

func (p PassFunc) Name() string            { return p.N }
func (p PassFunc) Apply(src string) string { return p.F(src) }

// Chain composes passes left-to-right into a single Pass.
// Each pass receives the output of the previous one.
func Chain(passes ...Pass) Pass {
	return PassFunc{
		N: "chain",
		F: func(src string) string {
			for _, p := range passes {
				src = p.Apply(src)
			}
			return src
		},
	}
}

// Pipeline returns the full rewrite chain in pipeline order. Block closing
// braces are synthesized last, after every construct rewrite has opened
// its block.
func Pipeline(tb *tables.Tables) Pass {
	return Chain(
		PassFunc{N: "comments", F: NormalizeComments},
		PassFunc{N: "continuations", F: JoinContinuations},
		PassFunc{N: "imports", F: func(src string) string { return ResolveImports(src, tb) }},
		PassFunc{N: "declarations", F: func(src string) string { return RewriteDeclarations(src, tb) }},
		PassFunc{N: "control", F: RewriteControlFlow},
		PassFunc{N: "bindings", F: RewriteBindings},
		PassFunc{N: "blocks", F: SynthesizeBlocks},
	)
}

// mapLines applies fn to each line of src independently.
func mapLines(src string, fn func(line string) string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// leadingWS returns the leading whitespace of line.
func leadingWS(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// firstToken returns the leading identifier-like token of s and the text
// after it. Returns "" when s does not start with an identifier byte.
func firstToken(s string) (string, string) {
	i := 0
	for i < len(s) && (isAlphaNum(s[i]) || s[i] == '_') {
		i++
	}
	return s[:i], s[i:]
}

func isAlphaNum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

// isIdent reports whether s is a plain identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlphaNum(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}
