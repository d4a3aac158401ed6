// This file is part of Lightmass.
//
// Lightmass is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lightmass is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lightmass.  If not, see <https://www.gnu.org/licenses/>.

package presets_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/presets"
	"github.com/lightmass/lightmass/test"
)

const example = `
[[preset]]
name = "opaque"
enable = ["DEPTH_TEST", "CULL_FACE"]

[preset.depth]
func = "LEQUAL"

[[preset]]
name = "transparent"
base = "opaque"
primitive = "TRIANGLE_STRIP"
enable = ["BLEND"]
disable = ["CULL_FACE"]

[preset.blend]
src = "SRC_ALPHA"
dst = "ONE_MINUS_SRC_ALPHA"
color = [0.0, 0.5, 1.0, 1.0]

[preset.depth]
mask = false

[[preset]]
name = "outline"
enable = ["SCISSOR_TEST", "STENCIL_TEST"]
clip = [0, 3]
viewport = [0.0, 0.0, 640.0, 480.0]
scissor = [8, 8, 624, 464]
color_mask = [true, true, true, false]
logic_op = "XOR"

[preset.stencil]
func = "NOTEQUAL"
ref = 1
mask = 255
zpass = "REPLACE"
write_mask = 15

[preset.raster]
polygon_mode = "LINE"
line_width = 2.0
front_face = "CW"
`

func TestParse(t *testing.T) {
	p, err := presets.Parse([]byte(example))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 3)

	test.ExpectEquality(t, p[0].Name, "opaque")
	test.ExpectEquality(t, p[1].Name, "transparent")
	test.ExpectEquality(t, p[2].Name, "outline")

	// opaque
	def := glstate.NewState()
	st := p[0].State
	test.ExpectSuccess(t, st.Enable.IsEnabled(glstate.CapDepthTest))
	test.ExpectSuccess(t, st.Enable.IsEnabled(glstate.CapCullFace))
	test.ExpectEquality(t, st.Depth.Func, glstate.Lequal)
	test.ExpectEquality(t, p[0].Primitive, glstate.Triangles)

	// everything not named keeps the default value
	st.Enable = def.Enable
	st.Depth = def.Depth
	test.ExpectEquality(t, st, def)

	// transparent inherits from opaque
	st = p[1].State
	test.ExpectSuccess(t, st.Enable.IsEnabled(glstate.CapDepthTest))
	test.ExpectFailure(t, st.Enable.IsEnabled(glstate.CapCullFace))
	test.ExpectSuccess(t, st.Enable.IsEnabled(glstate.CapBlend))
	test.ExpectEquality(t, st.Depth.Func, glstate.Lequal)
	test.ExpectFailure(t, st.Mask.Depth)
	test.ExpectEquality(t, st.Blend.Blends[0].RGB.SrcW, glstate.SrcAlpha)
	test.ExpectEquality(t, st.Blend.Blends[0].RGB.DstW, glstate.OneMinusSrcAlpha)
	test.ExpectEquality(t, st.Blend.Blends[0].Alpha.SrcW, glstate.SrcAlpha)
	test.ExpectEquality(t, st.Blend.Blends[0].Alpha.DstW, glstate.OneMinusSrcAlpha)
	test.ExpectEquality(t, st.Blend.Blends[0].RGB.Equ, glstate.FuncAdd)
	test.ExpectEquality(t, st.Blend.Color, [4]float32{0, 0.5, 1, 1})
	test.ExpectEquality(t, p[1].Primitive, glstate.TriangleStrip)

	// outline
	st = p[2].State
	test.ExpectEquality(t, st.ScissorEnable.SeparateEnable, uint32(1))
	test.ExpectFailure(t, st.ScissorEnable.UseSeparate)
	test.ExpectSuccess(t, st.Enable.IsEnabled(glstate.CapStencilTest))
	test.ExpectEquality(t, st.Clip.Enabled, uint32(0b1001))
	test.ExpectEquality(t, st.Viewport.Rects[0], glstate.Rect{X: 0, Y: 0, Width: 640, Height: 480})
	test.ExpectEquality(t, st.Scissor.Rects[0], glstate.ScissorRect{X: 8, Y: 8, Width: 624, Height: 464})
	test.ExpectEquality(t, st.Mask.Colormask[0], [4]bool{true, true, true, false})
	test.ExpectEquality(t, st.Logic.Op, glstate.Xor)
	test.ExpectEquality(t, st.Raster.PolyMode, glstate.Line)
	test.ExpectEquality(t, st.Raster.LineWidth, float32(2))
	test.ExpectEquality(t, st.Raster.FrontFace, glstate.CW)
	test.ExpectEquality(t, st.Raster.CullFace, glstate.Back)

	for f := range glstate.NumFaces {
		test.ExpectEquality(t, st.Stencil.Funcs[f], glstate.StencilFunc{Func: glstate.Notequal, Ref: 1, Mask: 255})
		test.ExpectEquality(t, st.Stencil.Ops[f], glstate.StencilOp{Fail: glstate.Keep, ZFail: glstate.Keep, ZPass: glstate.Replace})
		test.ExpectEquality(t, st.Mask.Stencil[f], uint32(15))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		data    string
		pattern string
	}{
		{"[[preset]]\nname = \"a\"\nenable = [\"NOT_A_CAP\"]", presets.UnknownEnum},
		{"[[preset]]\nname = \"a\"\n[preset.blend]\nsrc = \"ALPHA\"", presets.UnknownEnum},
		{"[[preset]]\nname = \"a\"\nprimitive = \"QUADS\"", presets.UnknownEnum},
		{"[[preset]]\nname = \"a\"\nenable = [\"FLOAT\"]", presets.UnknownEnum},
		{"[[preset]]\nenable = [\"BLEND\"]", presets.NoName},
		{"[[preset]]\nname = \"a\"\n[[preset]]\nname = \"a\"", presets.DuplicateName},
		{"[[preset]]\nname = \"a\"\nbase = \"b\"", presets.UnknownBase},
		{"[[preset]]\nname = \"a\"\nviewport = [1.0, 2.0]", presets.BadLength},
		{"[[preset]]\nname = \"a\"\nclip = [8]", presets.BadValue},
		{"[[preset]]\nname = \"a\"\nfog = true", presets.UnknownField},
		{"[[preset]\nname = \"a\"", presets.SyntaxError},
	}

	for _, c := range cases {
		_, err := presets.Parse([]byte(c.data))
		test.ExpectSuccess(t, curated.Is(err, c.pattern), c.data, err)
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := presets.Parse(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(p), 0)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "presets.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(example), 0o600))

	p, err := presets.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p), 3)

	_, err = presets.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectSuccess(t, curated.Is(err, presets.ParseError))
}

func TestWatcher(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "presets.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[[preset]]\nname = \"a\"\n"), 0o600))

	w, err := presets.NewWatcher(fn)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, os.WriteFile(fn, []byte(example), 0o600))

	// a write may be seen before it is complete so wait for a reload with
	// the full content
	timeout := time.After(5 * time.Second)
	var got int
	for got != 3 {
		select {
		case r := <-w.Reloads():
			if r.Err == nil {
				got = len(r.Presets)
			}
		case <-timeout:
			t.Fatalf("no reload seen")
		}
	}

	test.ExpectSuccess(t, w.Close())

	// the channel is closed once the watcher has stopped
	for range w.Reloads() {
	}
}
