// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

package shader_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/shader"
	"github.com/jetsetilly/embr/test"
)

func TestNoIncludes(t *testing.T) {
	reg := shader.NewRegistry()

	src := "void main() {\n\tgl_FragColor = vec4(1.0);\n}\n"
	test.ExpectEquality(t, reg.Register("plain.glsl", src), src)

	stored, ok := reg.Lookup("plain.glsl")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, stored, src)

	// the empty source is also returned unchanged
	test.ExpectEquality(t, reg.Register("empty.glsl", ""), "")
}

func TestSimpleInclude(t *testing.T) {
	reg := shader.NewRegistry()
	reg.Register("a.glsl", "A-BODY")
	test.ExpectEquality(t, reg.Register("b.glsl", "#include \"a.glsl\"\nrest"), "A-BODY\nrest")
}

func TestIncludeLeadingSpaces(t *testing.T) {
	reg := shader.NewRegistry()
	reg.Register("a.glsl", "A-BODY")

	test.ExpectEquality(t, reg.Register("b.glsl", "first\n    #include   \"a.glsl\"\nrest"), "first\nA-BODY\nrest")

	// tabs are not permitted before the directive
	test.ExpectEquality(t, reg.Register("c.glsl", "\t#include \"a.glsl\""), "\t#include \"a.glsl\"")

	// nor is anything other than spaces
	test.ExpectEquality(t, reg.Register("d.glsl", "x #include \"a.glsl\""), "x #include \"a.glsl\"")
}

func TestIdentifierCharacters(t *testing.T) {
	reg := shader.NewRegistry()
	reg.Register("lib/noise.glsl", "NOISE")
	reg.Register("noise-2d.v1.glsl", "NOISE2D")

	// hyphen, dot and word characters are allowed
	test.ExpectEquality(t, reg.Register("x", "#include \"noise-2d.v1.glsl\""), "NOISE2D")

	// a slash is not an identifier character so the directive does not match
	test.ExpectEquality(t, reg.Register("y", "#include \"lib/noise.glsl\""), "#include \"lib/noise.glsl\"")
}

func TestUnresolvedInclude(t *testing.T) {
	reg := shader.NewRegistry()

	src := "#include \"missing.glsl\"\nvoid main() {}\n"
	test.ExpectEquality(t, reg.Register("main.glsl", src), src)

	// a resolvable include after an unresolved one is still expanded
	reg.Register("a.glsl", "A-BODY")
	test.ExpectEquality(t,
		reg.Register("main.glsl", "#include \"missing.glsl\"\n#include \"a.glsl\"\n"),
		"#include \"missing.glsl\"\nA-BODY\n")
}

func TestLastWriteWins(t *testing.T) {
	reg := shader.NewRegistry()

	reg.Register("a.glsl", "FIRST")
	test.ExpectEquality(t, reg.Register("b.glsl", "#include \"a.glsl\""), "FIRST")

	reg.Register("a.glsl", "SECOND")
	test.ExpectEquality(t, reg.Register("b.glsl", "#include \"a.glsl\""), "SECOND")

	// sources registered before the change are not updated
	reg.Register("c.glsl", "#include \"b.glsl\"")
	stored, _ := reg.Lookup("c.glsl")
	test.ExpectEquality(t, stored, "SECOND")
}

func TestIncludeIsNotRecursive(t *testing.T) {
	reg := shader.NewRegistry()

	// inner.glsl is registered before leaf.glsl exists so its include
	// remains unresolved in the stored text
	reg.Register("inner.glsl", "#include \"leaf.glsl\"\nINNER")
	reg.Register("leaf.glsl", "LEAF")

	// the include inside the inserted text is not expanded even though
	// leaf.glsl is now registered
	test.ExpectEquality(t,
		reg.Register("outer.glsl", "#include \"inner.glsl\"\nOUTER"),
		"#include \"leaf.glsl\"\nINNER\nOUTER")
}

func TestMultipleIncludes(t *testing.T) {
	reg := shader.NewRegistry()
	reg.Register("a.glsl", "A")
	reg.Register("b.glsl", "B1\nB2")

	test.ExpectEquality(t,
		reg.Register("c.glsl", "#include \"a.glsl\"\n#include \"b.glsl\"\n#include \"a.glsl\"\nend"),
		"A\nB1\nB2\nA\nend")

	// text on the same line after the directive is kept
	test.ExpectEquality(t,
		reg.Register("d.glsl", "#include \"a.glsl\" // comment\n"),
		"A // comment\n")
}

func TestIDs(t *testing.T) {
	reg := shader.NewRegistry()
	reg.Register("b.glsl", "")
	reg.Register("a.glsl", "")
	reg.Register("b.glsl", "again")

	ids := reg.IDs()
	test.DemandEquality(t, len(ids), 2)
	test.ExpectEquality(t, ids[0], "a.glsl")
	test.ExpectEquality(t, ids[1], "b.glsl")
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"common.glsl": {Data: []byte("float sq(float x) { return x * x; }")},
		"main.glsl":   {Data: []byte("#include \"common.glsl\"\nvoid main() {}")},
	}

	reg := shader.NewRegistry()

	// loading the dependent first leaves the include unresolved
	src, err := reg.LoadFile(fsys, "main.glsl")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src, "#include \"common.glsl\"\nvoid main() {}")

	_, err = reg.LoadFile(fsys, "common.glsl")
	test.DemandSuccess(t, err)

	// reloading the dependent now resolves the include
	src, err = reg.LoadFile(fsys, "main.glsl")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src, "float sq(float x) { return x * x; }\nvoid main() {}")

	_, err = reg.LoadFile(fsys, "missing.glsl")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, shader.LoadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	_, ok := reg.Lookup("missing.glsl")
	test.ExpectFailure(t, ok)
}
