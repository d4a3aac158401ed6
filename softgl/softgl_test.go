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

package softgl_test

import (
	"strings"
	"testing"

	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/test"
)

func TestImplements(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	test.DemandImplements[glstate.Context](t, ctx)
	test.DemandImplements[pipeline.Context](t, ctx)

	_, ok := any(ctx).(pipeline.AddressRangeBinder)
	test.ExpectFailure(t, ok)

	ar := softgl.NewAddressRange(softgl.Compatibility)
	test.DemandImplements[pipeline.AddressRangeBinder](t, ar)
	test.DemandImplements[glstate.Context](t, ar)
}

func TestIndexedBroadcast(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)

	ctx.Enablei(glstate.Blend, 3)
	test.ExpectSuccess(t, ctx.IsEnabledi(glstate.Blend, 3))
	test.ExpectFailure(t, ctx.IsEnabled(glstate.Blend))

	// the non-indexed entry point changes every index
	ctx.Enable(glstate.Blend)
	for i := range uint32(glstate.MaxDrawBuffers) {
		test.ExpectSuccess(t, ctx.IsEnabledi(glstate.Blend, i), i)
	}

	ctx.Disable(glstate.ScissorTest)
	ctx.Enablei(glstate.ScissorTest, 15)
	test.ExpectSuccess(t, ctx.IsEnabledi(glstate.ScissorTest, 15))
	test.ExpectFailure(t, ctx.IsEnabled(glstate.ScissorTest))

	ctx.BlendFuncSeparatei(2, glstate.SrcAlpha, glstate.OneMinusSrcAlpha, glstate.One, glstate.Zero)
	ctx.ColorMask(false, false, false, true)
	snap := ctx.Snapshot()
	test.ExpectEquality(t, snap.Blend[2].RGB.SrcW, glstate.SrcAlpha)
	test.ExpectEquality(t, snap.Blend[1].RGB.SrcW, glstate.One)
	test.ExpectEquality(t, snap.ColorMask[7], [4]bool{false, false, false, true})

	ctx.BlendFuncSeparate(glstate.DstColor, glstate.Zero, glstate.One, glstate.Zero)
	snap = ctx.Snapshot()
	test.ExpectEquality(t, snap.Blend[2].RGB.SrcW, glstate.DstColor)

	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}

func TestErrors(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)

	ctx.Enable(glstate.Enum(0x1234))
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)

	ctx.Enablei(glstate.Blend, glstate.MaxDrawBuffers)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidValue)

	// only the first error is kept
	ctx.Enablei(glstate.DepthTest, 0)
	ctx.LineWidth(0)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)

	ctx.DepthFunc(glstate.Keep)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)
	test.ExpectEquality(t, ctx.Snapshot().DepthFunc, glstate.Less)

	var v [1]int32
	ctx.GetIntegerv(glstate.Enum(0x1234), v[:])
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)
}

func TestCoreProfile(t *testing.T) {
	ctx := softgl.New(softgl.Core)
	test.ExpectEquality(t, ctx.Profile().String(), "core")

	ctx.Enable(glstate.Fog)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)

	ctx.ShadeModel(glstate.Flat)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidOperation)

	ctx.PolygonMode(glstate.Front, glstate.Line)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)

	ctx.PolygonMode(glstate.FrontAndBack, glstate.Line)
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
	test.ExpectEquality(t, ctx.Snapshot().PolygonMode, [2]glstate.Enum{glstate.Line, glstate.Line})
}

func TestCallLog(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)

	var w strings.Builder
	ctx.SetLog(&w)
	ctx.Enable(glstate.DepthTest)
	ctx.DepthFunc(glstate.Lequal)
	ctx.SetLog(nil)
	ctx.DepthFunc(glstate.Less)

	test.ExpectEquality(t, w.String(), "Enable(DEPTH_TEST)\nDepthFunc(LEQUAL)\n")
	test.ExpectEquality(t, ctx.Calls(), 3)
	test.ExpectEquality(t, ctx.Count("DepthFunc"), 2)
	test.ExpectEquality(t, ctx.CountSummary(), "DepthFunc=2 Enable=1")

	ctx.IsEnabled(glstate.DepthTest)
	test.ExpectEquality(t, ctx.Queries(), 1)
	test.ExpectEquality(t, ctx.Calls(), 3)

	ctx.ResetCounts()
	test.ExpectEquality(t, ctx.Calls(), 0)
	test.ExpectEquality(t, ctx.Count("DepthFunc"), 0)
}

func TestSnapshot(t *testing.T) {
	a := softgl.New(softgl.Compatibility)
	b := softgl.New(softgl.Compatibility)
	test.ExpectEquality(t, a.Snapshot(), b.Snapshot())

	// different sequences of calls that reach the same state
	a.Viewport(0, 0, 10, 10)
	for i := range uint32(glstate.MaxViewports) {
		b.ViewportIndexedf(i, 0, 0, 10, 10)
	}
	test.ExpectEquality(t, a.Snapshot(), b.Snapshot())

	a.DepthFunc(glstate.Never)
	test.ExpectInequality(t, a.Snapshot(), b.Snapshot())

	b.Restore(a.Snapshot())
	test.ExpectEquality(t, a.Snapshot(), b.Snapshot())

	a.Reset()
	test.ExpectEquality(t, a.Snapshot(), softgl.New(softgl.Compatibility).Snapshot())
}

func TestVertexPointers(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)

	ctx.BindBuffer(glstate.ArrayBuffer, 5)
	ctx.VertexAttribPointer(3, 2, glstate.Float, false, 0, 16)
	ctx.VertexAttribDivisor(3, 1)

	snap := ctx.Snapshot()
	test.ExpectEquality(t, snap.Attribs[3].Size, int32(2))
	test.ExpectEquality(t, snap.Attribs[3].Binding, uint32(3))
	test.ExpectEquality(t, snap.Bindings[3], softgl.Binding{Buffer: 5, Offset: 16, Stride: 8, Divisor: 1})

	ctx.BindVertexBuffer(3, 6, 0, 32)
	test.ExpectEquality(t, ctx.Snapshot().Bindings[3], softgl.Binding{Buffer: 6, Stride: 32, Divisor: 1})

	ar := softgl.NewAddressRange(softgl.Compatibility)
	ar.BufferAddressRange(1, 0x1000, 256)
	test.ExpectEquality(t, ar.Snapshot().Bindings[1].Address, uint64(0x1000))
	test.ExpectEquality(t, ar.Snapshot().Bindings[1].Length, 256)

	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}

func TestDraws(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	ctx.UseProgram(4)
	ctx.DrawArrays(glstate.Triangles, 0, 3)
	ctx.DrawElementsInstanced(glstate.Lines, 6, glstate.UnsignedShort, 0, 2)
	ctx.DrawArrays(glstate.Enum(0x99), 0, 3)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidEnum)

	draws := ctx.Draws()
	test.DemandEquality(t, len(draws), 2)
	test.ExpectEquality(t, draws[0].Program, uint32(4))
	test.ExpectEquality(t, draws[0].Indexed, false)
	test.ExpectEquality(t, draws[1].Indexed, true)
	test.ExpectEquality(t, draws[1].Instances, int32(2))

	ctx.ClearDraws()
	test.ExpectEquality(t, len(ctx.Draws()), 0)
}

func TestPrograms(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	ctx.DefineProgram(1, []pipeline.Attribute{{Semantic: "POSITION", Location: 0}})

	attrs, err := ctx.ActiveAttributes(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(attrs), 1)

	_, err = ctx.ActiveAttributes(2)
	test.ExpectFailure(t, err)
}

func TestCompileProgram(t *testing.T) {
	ctx := softgl.New(softgl.Core)

	const vert = `#version 450
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
layout(location = 5) in vec4 Color;
in vec3 TEXCOORD2;
`
	const frag = `#version 450
uniform sampler2D Texture;
out vec4 Out_Color;
`
	program, err := ctx.CompileProgram(vert, frag)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, program, uint32(0))

	attrs, err := ctx.ActiveAttributes(program)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(attrs), 4)
	test.ExpectEquality(t, attrs[0], pipeline.Attribute{Semantic: "Position", Location: 0})
	test.ExpectEquality(t, attrs[1], pipeline.Attribute{Semantic: "UV", Location: 1})
	test.ExpectEquality(t, attrs[2], pipeline.Attribute{Semantic: "Color", Location: 5})
	test.ExpectEquality(t, attrs[3], pipeline.Attribute{Semantic: "TEXCOORD", SemanticIndex: 2, Location: 6})

	test.ExpectEquality(t, ctx.UniformLocation(program, "ProjMtx"), int32(0))
	test.ExpectEquality(t, ctx.UniformLocation(program, "Texture"), int32(1))
	test.ExpectEquality(t, ctx.UniformLocation(program, "Missing"), int32(-1))

	_, err = ctx.CompileProgram("#version 450\n", frag)
	test.ExpectFailure(t, err)

	ctx.DeleteProgram(program)
	_, err = ctx.ActiveAttributes(program)
	test.ExpectFailure(t, err)
}

func TestResources(t *testing.T) {
	ctx := softgl.New(softgl.Core)

	b := ctx.CreateBuffer()
	ctx.BufferData(b, nil, 64)
	sz, ok := ctx.BufferSize(b)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sz, 64)

	ctx.BufferData(b+100, nil, 64)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidOperation)

	tex := ctx.CreateAlphaTexture(8, 8, nil)
	ctx.BindTexture(0, tex)
	ctx.DrawArrays(glstate.Triangles, 0, 3)
	test.DemandEquality(t, len(ctx.Draws()), 1)
	test.ExpectEquality(t, ctx.Draws()[0].Texture, tex)

	ctx.BindTexture(0, tex+100)
	test.ExpectEquality(t, ctx.Error(), glstate.InvalidOperation)

	ctx.DeleteTexture(tex)
	ctx.DrawArrays(glstate.Triangles, 0, 3)
	test.ExpectEquality(t, ctx.Draws()[1].Texture, uint32(0))

	ctx.DeleteBuffer(b)
	_, ok = ctx.BufferSize(b)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}
