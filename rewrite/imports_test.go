package rewrite

import (
	"strings"
	"testing"

	"github.com/rubiojr/pycpp/tables"
	"github.com/stretchr/testify/assert"
)

func TestResolveImports_KnownLibrary(t *testing.T) {
	out := ResolveImports("import numpy\n", tables.Default())
	assert.True(t, strings.HasPrefix(out,
		"#include <Eigen/Dense>\n#include <Eigen/Sparse>\n#include <reservoircpp/numpy.hpp>\n"))
	assert.Contains(t, out, "using namespace reservoircpp;\nusing namespace Eigen;")
	assert.NotContains(t, out, "import numpy")
}

func TestResolveImports_AliasDiscarded(t *testing.T) {
	out := ResolveImports("import numpy as np\n", tables.Default())
	assert.Contains(t, out, "#include <Eigen/Dense>")
	assert.NotContains(t, out, "as np")
}

func TestResolveImports_FromKnownLibrary(t *testing.T) {
	out := ResolveImports("from logging import getLogger\n", tables.Default())
	assert.Contains(t, out, "#include <iostream>")
	assert.Contains(t, out, "#include <reservoircpp/logging.hpp>")
	assert.NotContains(t, out, "getLogger")
}

func TestResolveImports_ProjectModule(t *testing.T) {
	out := ResolveImports("from reservoirpy.nodes import Reservoir, Ridge\n", tables.Default())
	assert.Contains(t, out, `#include "reservoircpp/reservoirpy/nodes/Reservoir.hpp"`)
	assert.Contains(t, out, `#include "reservoircpp/reservoirpy/nodes/Ridge.hpp"`)
}

func TestResolveImports_StarImport(t *testing.T) {
	out := ResolveImports("from reservoirpy.utils import *\n", tables.Default())
	assert.Contains(t, out, `#include "reservoircpp/reservoirpy/utils.hpp"`)
}

func TestResolveImports_ParenthesizedNames(t *testing.T) {
	out := ResolveImports("from reservoirpy.nodes import (Reservoir, Ridge)\n", tables.Default())
	assert.Contains(t, out, `#include "reservoircpp/reservoirpy/nodes/Reservoir.hpp"`)
	assert.Contains(t, out, `#include "reservoircpp/reservoirpy/nodes/Ridge.hpp"`)
}

func TestResolveImports_BareUnknownModule(t *testing.T) {
	out := ResolveImports("import custom\n", tables.Default())
	assert.Contains(t, out, `#include "custom.hpp"`)
}

func TestResolveImports_MultipleNames(t *testing.T) {
	out := ResolveImports("import random, custom\n", tables.Default())
	assert.Contains(t, out, "#include <random>")
	assert.Contains(t, out, `#include "custom.hpp"`)
}

func TestResolveImports_Deduplicated(t *testing.T) {
	out := ResolveImports("import numpy\nfrom numpy import linalg\n", tables.Default())
	assert.Equal(t, 1, strings.Count(out, "#include <Eigen/Dense>"))
	assert.Equal(t, 1, strings.Count(out, "#include <reservoircpp/numpy.hpp>"))
}

func TestResolveImports_IndentedImportPassesThrough(t *testing.T) {
	src := "def f():\n    import numpy\n"
	assert.Equal(t, src, ResolveImports(src, tables.Default()))
}

func TestResolveImports_NoImportsNoPrelude(t *testing.T) {
	src := "x = 5\n"
	assert.Equal(t, src, ResolveImports(src, tables.Default()))
}

func TestResolveImports_ImportLineLeftBlank(t *testing.T) {
	out := ResolveImports("import numpy\nx = 5\n", tables.Default())
	body := out[strings.Index(out, "using namespace Eigen;")+len("using namespace Eigen;"):]
	assert.Equal(t, "\n\n\nx = 5\n", body)
}

func TestResolveImports_TrailingCommentIgnored(t *testing.T) {
	out := ResolveImports("import numpy  // linear algebra\n", tables.Default())
	assert.Contains(t, out, "#include <Eigen/Dense>")
	assert.NotContains(t, out, "linear algebra")
}
