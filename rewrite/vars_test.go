package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteBindings_Shapes(t *testing.T) {
	assert.Equal(t, "int x = 5", RewriteBindings("x = 5"))
	assert.Equal(t, "double r = 1.5", RewriteBindings("r = 1.5"))
	assert.Equal(t, `std::string y = "hi"`, RewriteBindings(`y = "hi"`))
	assert.Equal(t, "std::string c = 'a'", RewriteBindings("c = 'a'"))
}

func TestRewriteBindings_BoolLowercased(t *testing.T) {
	assert.Equal(t, "bool b = true", RewriteBindings("b = True"))
	assert.Equal(t, "bool b = false", RewriteBindings("b = False"))
}

func TestRewriteBindings_ContainersStayUntyped(t *testing.T) {
	assert.Equal(t, "auto l = [1, 2]", RewriteBindings("l = [1, 2]"))
	assert.Equal(t, `auto d = {"a": 1}`, RewriteBindings(`d = {"a": 1}`))
	assert.Equal(t, "auto p = (1, 2)", RewriteBindings("p = (1, 2)"))
}

func TestRewriteBindings_ExpressionsStayUntyped(t *testing.T) {
	assert.Equal(t, "auto z = x + 1", RewriteBindings("z = x + 1"))
	assert.Equal(t, "auto n = -5", RewriteBindings("n = -5"))
}

func TestRewriteBindings_InstanceFieldSkipped(t *testing.T) {
	assert.Equal(t, "self.units = 100", RewriteBindings("self.units = 100"))
	assert.Equal(t, "        self.sr = 0.9", RewriteBindings("        self.sr = 0.9"))
}

func TestRewriteBindings_ComparisonSkipped(t *testing.T) {
	assert.Equal(t, "x == 5", RewriteBindings("x == 5"))
}

func TestRewriteBindings_AugmentedAssignSkipped(t *testing.T) {
	assert.Equal(t, "x += 1", RewriteBindings("x += 1"))
}

func TestRewriteBindings_IndentPreserved(t *testing.T) {
	assert.Equal(t, "    int z = 0", RewriteBindings("    z = 0"))
}

func TestRewriteBindings_CallLineUntouched(t *testing.T) {
	assert.Equal(t, "run(x)", RewriteBindings("run(x)"))
}

func TestInferLiteralType(t *testing.T) {
	assert.Equal(t, "int", inferLiteralType("42"))
	assert.Equal(t, "double", inferLiteralType("3.14"))
	assert.Equal(t, "double", inferLiteralType(".5"))
	assert.Equal(t, "auto", inferLiteralType("1.2.3"))
	assert.Equal(t, "bool", inferLiteralType("True"))
	assert.Equal(t, "std::string", inferLiteralType(`"x"`))
	assert.Equal(t, "auto", inferLiteralType("None"))
	assert.Equal(t, "auto", inferLiteralType(""))
}
