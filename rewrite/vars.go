package rewrite

import (
	"regexp"
)

// assignRe matches a simple single-assignment line: optional indent, a
// plain identifier, `=`, and an expression. Member-access targets such as
// self.x never match (the dot breaks the identifier), which is exactly the
// contract: an instance field's type is declared elsewhere, so the binding
// passes through untouched. Comparison (`==`) and augmented assignment
// (`+=` etc.) shapes do not match either.
var assignRe = regexp.MustCompile(`^([ \t]*)([A-Za-z_][A-Za-z0-9_]*)[ \t]*=[ \t]*(.+)$`)

// RewriteBindings rewrites `name = expression` lines into typed C++
// declarations, inferring the type from the right-hand literal's lexical
// shape. Boolean literal casing is normalized; any shape the classifier
// does not recognize declares auto.
func RewriteBindings(src string) string {
	return mapLines(src, rewriteBindingLine)
}

func rewriteBindingLine(line string) string {
	m := assignRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	indent, name, value := m[1], m[2], m[3]
	if value[0] == '=' {
		// `name == expr` is a comparison, not a binding.
		return line
	}
	typ := inferLiteralType(value)
	return indent + typ + " " + name + " = " + lowerBool(value)
}
