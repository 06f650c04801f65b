package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeComments_LineComment(t *testing.T) {
	assert.Equal(t, "x = 1  // note", NormalizeComments("x = 1  # note"))
}

func TestNormalizeComments_WholeLineComment(t *testing.T) {
	assert.Equal(t, "// setup", NormalizeComments("# setup"))
}

func TestNormalizeComments_CodePreserved(t *testing.T) {
	out := NormalizeComments("y = compute(x)  # temp")
	assert.Equal(t, "y = compute(x)  // temp", out)
}

func TestNormalizeComments_HashInsideStringPreserved(t *testing.T) {
	assert.Equal(t, `s = "a#b"`, NormalizeComments(`s = "a#b"`))
	assert.Equal(t, `s = 'a#b'  // real`, NormalizeComments(`s = 'a#b'  # real`))
}

func TestNormalizeComments_Docstring(t *testing.T) {
	assert.Equal(t, "/**\ndoc\n*/", NormalizeComments(`"""doc"""`))
	assert.Equal(t, "/**\ndoc\n*/", NormalizeComments("'''doc'''"))
}

func TestNormalizeComments_MultilineDocstring(t *testing.T) {
	out := NormalizeComments("\"\"\"first\nsecond\"\"\"\nx = 1")
	assert.Equal(t, "/**\nfirst\nsecond\n*/\nx = 1", out)
}

func TestNormalizeComments_DocstringInteriorVerbatim(t *testing.T) {
	out := NormalizeComments(`"""keep  spacing   intact"""`)
	assert.Contains(t, out, "keep  spacing   intact")
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "x = 1", stripComment("x = 1  // note"))
	assert.Equal(t, "x = 1", stripComment("x = 1"))
	assert.Equal(t, `u = "http://x"`, stripComment(`u = "http://x"`))
}
