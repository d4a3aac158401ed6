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

package glstate

// Context is the thin driver layer used by the state slices. There is one
// function for each GL entry point that sets or queries pipeline state.
// Calls are side-effecting and order sensitive and are issued in exactly the
// order that the slices and System make them.
//
// Errors raised by the driver are not reported through this interface. An
// implementation may support a separate error-checking layer.
type Context interface {
	Enable(cap Enum)
	Disable(cap Enum)
	Enablei(cap Enum, index uint32)
	Disablei(cap Enum, index uint32)
	IsEnabled(cap Enum) bool
	IsEnabledi(cap Enum, index uint32) bool

	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha Enum)
	BlendColor(red, green, blue, alpha float32)

	DepthFunc(fn Enum)
	DepthMask(flag bool)
	DepthRange(near, far float64)
	DepthRangeIndexed(index uint32, near, far float64)

	StencilFuncSeparate(face Enum, fn Enum, ref int32, mask uint32)
	StencilOpSeparate(face Enum, sfail, dpfail, dppass Enum)
	StencilMaskSeparate(face Enum, mask uint32)

	ColorMask(red, green, blue, alpha bool)
	ColorMaski(buf uint32, red, green, blue, alpha bool)

	LogicOp(op Enum)
	PrimitiveRestartIndex(index uint32)
	PatchParameteri(pname Enum, value int32)

	SampleCoverage(value float32, invert bool)
	SampleMaski(maskNumber uint32, mask uint32)
	MinSampleShading(value float32)

	FrontFace(mode Enum)
	CullFace(mode Enum)
	PolygonMode(face Enum, mode Enum)
	PolygonOffset(factor, units float32)
	LineWidth(width float32)
	PointSize(size float32)
	PointParameterf(pname Enum, value float32)
	PointParameteri(pname Enum, value int32)

	Viewport(x, y, width, height int32)
	ViewportIndexedf(index uint32, x, y, width, height float32)
	Scissor(x, y, width, height int32)
	ScissorIndexed(index uint32, left, bottom, width, height int32)

	UseProgram(program uint32)

	BindFramebuffer(target Enum, framebuffer uint32)
	DrawBuffers(bufs []Enum)
	ReadBuffer(mode Enum)

	VertexAttribFormat(index uint32, size int32, xtype Enum, normalized bool, relativeOffset uint32)
	VertexAttribIFormat(index uint32, size int32, xtype Enum, relativeOffset uint32)
	VertexAttribBinding(index uint32, binding uint32)
	VertexBindingDivisor(binding uint32, divisor uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	// deprecated fixed function entry points. a core profile context may
	// implement these as no-ops
	AlphaFunc(fn Enum, ref float32)
	ShadeModel(mode Enum)
	LineStipple(factor int32, pattern uint16)

	GetIntegerv(pname Enum, data []int32)
	GetIntegeri(pname Enum, index uint32, data []int32)
	GetFloatv(pname Enum, data []float32)
	GetFloati(pname Enum, index uint32, data []float32)
	GetDoublei(pname Enum, index uint32, data []float64)
	GetBooleanv(pname Enum, data []bool)
	GetBooleani(pname Enum, index uint32, data []bool)
	GetVertexAttribiv(index uint32, pname Enum, data []int32)
}

// helpers for single value queries.

func getEnum(ctx Context, pname Enum) Enum {
	var v [1]int32
	ctx.GetIntegerv(pname, v[:])
	return Enum(v[0])
}

func getEnumi(ctx Context, pname Enum, index uint32) Enum {
	var v [1]int32
	ctx.GetIntegeri(pname, index, v[:])
	return Enum(v[0])
}

func getInt(ctx Context, pname Enum) int32 {
	var v [1]int32
	ctx.GetIntegerv(pname, v[:])
	return v[0]
}

func getFloat(ctx Context, pname Enum) float32 {
	var v [1]float32
	ctx.GetFloatv(pname, v[:])
	return v[0]
}

func getBool(ctx Context, pname Enum) bool {
	var v [1]bool
	ctx.GetBooleanv(pname, v[:])
	return v[0]
}

func getAttrib(ctx Context, index uint32, pname Enum) int32 {
	var v [1]int32
	ctx.GetVertexAttribiv(index, pname, v[:])
	return v[0]
}

func setCap(ctx Context, cap Enum, enable bool) {
	if enable {
		ctx.Enable(cap)
	} else {
		ctx.Disable(cap)
	}
}

func setCapi(ctx Context, cap Enum, index uint32, enable bool) {
	if enable {
		ctx.Enablei(cap, index)
	} else {
		ctx.Disablei(cap, index)
	}
}
