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

package glstate_test

import (
	"testing"

	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/test"
)

func TestZeroDiff(t *testing.T) {
	for i, st := range all() {
		d := glstate.MakeDiff(&st, &st)
		test.ExpectSuccess(t, d.IsZero(), i)
	}
}

func TestSingleChange(t *testing.T) {
	for _, m := range mutations {
		a := glstate.NewState()
		b := a
		m.mutate(&b)

		d := glstate.MakeDiff(&a, &b)
		test.ExpectEquality(t, d.ContentBits, m.bit, m.name)

		// the reverse diff names the same slice
		d = glstate.MakeDiff(&b, &a)
		test.ExpectEquality(t, d.ContentBits, m.bit, m.name)
	}
}

func TestFineBits(t *testing.T) {
	a := glstate.NewState()
	b := a
	b.Enable.Set(glstate.CapStencilTest, true)
	b.Enable.Set(glstate.CapDither, false)
	b.VertexFormat.Formats[4].Type = glstate.Short
	b.VertexFormat.Bindings[9].Divisor = 1
	b.VertexEnable.Enabled = 1<<0 | 1<<15
	b.EnableDepr.Set(glstate.CapDeprLineStipple, true)

	d := glstate.MakeDiff(&a, &b)
	test.ExpectEquality(t, d.StateBits, uint32(1<<glstate.CapStencilTest|1<<glstate.CapDither))
	test.ExpectEquality(t, d.StateDeprBits, uint32(1<<glstate.CapDeprLineStipple))
	test.ExpectEquality(t, d.VertexFormat, uint32(1<<4))
	test.ExpectEquality(t, d.VertexBinding, uint32(1<<9))
	test.ExpectEquality(t, d.VertexEnable, uint32(1<<0|1<<15))
	test.ExpectEquality(t, d.ContentBits,
		glstate.DiffEnable|glstate.DiffEnableDepr|glstate.DiffVertexFormat|glstate.DiffVertexEnable)
}

func TestBlendDependencies(t *testing.T) {
	const blendBit = uint32(1 << glstate.CapBlend)

	broadcast := glstate.NewState()
	sep := broadcast
	sep.Blend.UseSeparate = true
	sep.Blend.SeparateEnable = 0b10

	// broadcast to separate. the per-buffer enables are set by the blend
	// slice
	d := glstate.MakeDiff(&broadcast, &sep)
	test.ExpectEquality(t, d.ContentBits, glstate.DiffBlend)
	test.ExpectEquality(t, d.StateBits, uint32(0))

	// separate to broadcast. the global enable must be reissued
	d = glstate.MakeDiff(&sep, &broadcast)
	test.ExpectEquality(t, d.ContentBits, glstate.DiffBlend|glstate.DiffEnable)
	test.ExpectEquality(t, d.StateBits, blendBit)

	// global enable changes while separate. the per-buffer enables must be
	// reapplied
	sepOn := sep
	sepOn.Enable.Set(glstate.CapBlend, true)
	d = glstate.MakeDiff(&sep, &sepOn)
	test.ExpectEquality(t, d.ContentBits, glstate.DiffBlend|glstate.DiffEnable)
}

func TestContentBitsString(t *testing.T) {
	test.ExpectEquality(t, glstate.ContentBits(0).String(), "none")
	test.ExpectEquality(t, (glstate.DiffBlend | glstate.DiffDepth).String(), "blend|depth")
	test.ExpectEquality(t, glstate.DiffVertexEnable.String(), "vertexenable")
}

func TestFullDiff(t *testing.T) {
	d := glstate.FullDiff()
	test.ExpectEquality(t, d.ContentBits, glstate.DiffAll)
	test.ExpectSuccess(t, d.Has(glstate.DiffEnable))
	test.ExpectSuccess(t, d.Has(glstate.DiffVertexEnable))
	test.ExpectFailure(t, glstate.StateDiff{}.Has(glstate.DiffAll))
}

func TestEnums(t *testing.T) {
	e, ok := glstate.EnumByName("SRC_ALPHA")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, glstate.SrcAlpha)

	_, ok = glstate.EnumByName("GL_SRC_ALPHA")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, glstate.Zero.String(), "ZERO")
	test.ExpectEquality(t, glstate.FuncAdd.String(), "FUNC_ADD")
	test.ExpectEquality(t, glstate.Enum(0xbeef).String(), "0xbeef")

	c, ok := glstate.CapabilityByEnum(glstate.DepthTest)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, glstate.CapDepthTest)
	_, ok = glstate.CapabilityByEnum(glstate.ScissorTest)
	test.ExpectFailure(t, ok)
}
