package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinContinuations_Backslash(t *testing.T) {
	assert.Equal(t, "x = 1 + 2", JoinContinuations("x = 1 + \\\n    2"))
}

func TestJoinContinuations_OpenBracket(t *testing.T) {
	src := "from m import (a,\n    b)"
	assert.Equal(t, "from m import (a, b)", JoinContinuations(src))
}

func TestJoinContinuations_NestedBrackets(t *testing.T) {
	src := "x = f(a,\n    g(b,\n    c))"
	assert.Equal(t, "x = f(a, g(b, c))", JoinContinuations(src))
}

func TestJoinContinuations_BalancedLinesUntouched(t *testing.T) {
	src := "x = f(a, b)\ny = 2"
	assert.Equal(t, src, JoinContinuations(src))
}

func TestJoinContinuations_BracketInStringIgnored(t *testing.T) {
	src := "x = \"((\"\ny = 2"
	assert.Equal(t, src, JoinContinuations(src))
}

func TestJoinContinuations_BracketInCommentIgnored(t *testing.T) {
	src := "x = 1  // see f(\ny = 2"
	assert.Equal(t, src, JoinContinuations(src))
}

func TestJoinContinuations_CommentBlockUntouched(t *testing.T) {
	src := "/**\nunbalanced (\n*/\nx = 1"
	assert.Equal(t, src, JoinContinuations(src))
}
