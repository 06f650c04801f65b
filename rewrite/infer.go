package rewrite

import (
	"strings"

	"github.com/rubiojr/pycpp/tables"
)

// inferLiteralType classifies a literal by lexical shape and returns the
// C++ type to declare for it. The rules are ordered and purely textual:
//
//	digits                      -> int
//	digits with one decimal dot -> double
//	True / False                -> bool
//	quoted text                 -> std::string
//	anything else               -> auto
//
// Container-shaped literals ([, {, () and arbitrary expressions fall into
// the final rule deliberately: guessing element types is out of scope.
func inferLiteralType(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case isDigits(value):
		return "int"
	case isFloatShape(value):
		return "double"
	case value == "True" || value == "False":
		return "bool"
	case strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`):
		return "std::string"
	default:
		return tables.Untyped
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatShape reports whether s is digits containing exactly one decimal
// point, e.g. "1.5" or ".5".
func isFloatShape(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}
	return isDigits(strings.Replace(s, ".", "", 1))
}

// lowerBool normalizes Python boolean literal casing to C++.
func lowerBool(value string) string {
	if value == "True" || value == "False" {
		return strings.ToLower(value)
	}
	return value
}
