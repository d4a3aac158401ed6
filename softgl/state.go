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

package softgl

import (
	"slices"

	"github.com/lightmass/lightmass/glstate"
)

var blendFactors = []glstate.Enum{
	glstate.Zero, glstate.One, glstate.SrcColor, glstate.OneMinusSrcColor,
	glstate.SrcAlpha, glstate.OneMinusSrcAlpha, glstate.DstAlpha, glstate.OneMinusDstAlpha,
	glstate.DstColor, glstate.OneMinusDstColor, glstate.SrcAlphaSaturate,
	glstate.ConstantColor, glstate.OneMinusConstantColor, glstate.ConstantAlpha,
	glstate.OneMinusConstantAlpha,
}

var blendEquations = []glstate.Enum{
	glstate.FuncAdd, glstate.Min, glstate.Max, glstate.FuncSubtract, glstate.FuncReverseSubtract,
}

var compareFuncs = []glstate.Enum{
	glstate.Never, glstate.Less, glstate.Equal, glstate.Lequal,
	glstate.Greater, glstate.Notequal, glstate.Gequal, glstate.Always,
}

var stencilOps = []glstate.Enum{
	glstate.Zero, glstate.Keep, glstate.Replace, glstate.Incr, glstate.Decr,
	glstate.Invert, glstate.IncrWrap, glstate.DecrWrap,
}

// valid raises INVALID_ENUM and returns false if any value is not in the set.
func (ctx *Context) valid(set []glstate.Enum, values ...glstate.Enum) bool {
	for _, v := range values {
		if !slices.Contains(set, v) {
			ctx.raise(glstate.InvalidEnum)
			return false
		}
	}
	return true
}

// index raises INVALID_VALUE and returns false if the index is out of range.
func (ctx *Context) index(index uint32, n int) bool {
	if int(index) >= n {
		ctx.raise(glstate.InvalidValue)
		return false
	}
	return true
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func (ctx *Context) setCap(name string, cap glstate.Enum, v bool) {
	ctx.record(name, cap)
	switch cap {
	case glstate.Blend:
		for i := range ctx.s.BlendEnable {
			ctx.s.BlendEnable[i] = v
		}
	case glstate.ScissorTest:
		for i := range ctx.s.ScissorEnable {
			ctx.s.ScissorEnable[i] = v
		}
	default:
		i, ok := capIndex[cap]
		if !ok || (ctx.profile == Core && i >= firstDeprCap) {
			ctx.raise(glstate.InvalidEnum)
			return
		}
		ctx.s.Caps[i] = v
	}
}

func (ctx *Context) setCapi(name string, cap glstate.Enum, index uint32, v bool) {
	ctx.record(name, cap, index)
	switch cap {
	case glstate.Blend:
		if ctx.index(index, glstate.MaxDrawBuffers) {
			ctx.s.BlendEnable[index] = v
		}
	case glstate.ScissorTest:
		if ctx.index(index, glstate.MaxViewports) {
			ctx.s.ScissorEnable[index] = v
		}
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}

func (ctx *Context) Enable(cap glstate.Enum) {
	ctx.setCap("Enable", cap, true)
}

func (ctx *Context) Disable(cap glstate.Enum) {
	ctx.setCap("Disable", cap, false)
}

func (ctx *Context) Enablei(cap glstate.Enum, index uint32) {
	ctx.setCapi("Enablei", cap, index, true)
}

func (ctx *Context) Disablei(cap glstate.Enum, index uint32) {
	ctx.setCapi("Disablei", cap, index, false)
}

func (ctx *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glstate.Enum) {
	ctx.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
	if !ctx.valid(blendFactors, srcRGB, dstRGB, srcAlpha, dstAlpha) {
		return
	}
	for i := range ctx.s.Blend {
		b := &ctx.s.Blend[i]
		b.RGB.SrcW, b.RGB.DstW = srcRGB, dstRGB
		b.Alpha.SrcW, b.Alpha.DstW = srcAlpha, dstAlpha
	}
}

func (ctx *Context) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha glstate.Enum) {
	ctx.record("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
	if !ctx.index(buf, glstate.MaxDrawBuffers) || !ctx.valid(blendFactors, srcRGB, dstRGB, srcAlpha, dstAlpha) {
		return
	}
	b := &ctx.s.Blend[buf]
	b.RGB.SrcW, b.RGB.DstW = srcRGB, dstRGB
	b.Alpha.SrcW, b.Alpha.DstW = srcAlpha, dstAlpha
}

func (ctx *Context) BlendEquationSeparate(modeRGB, modeAlpha glstate.Enum) {
	ctx.record("BlendEquationSeparate", modeRGB, modeAlpha)
	if !ctx.valid(blendEquations, modeRGB, modeAlpha) {
		return
	}
	for i := range ctx.s.Blend {
		ctx.s.Blend[i].RGB.Equ = modeRGB
		ctx.s.Blend[i].Alpha.Equ = modeAlpha
	}
}

func (ctx *Context) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha glstate.Enum) {
	ctx.record("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
	if !ctx.index(buf, glstate.MaxDrawBuffers) || !ctx.valid(blendEquations, modeRGB, modeAlpha) {
		return
	}
	ctx.s.Blend[buf].RGB.Equ = modeRGB
	ctx.s.Blend[buf].Alpha.Equ = modeAlpha
}

func (ctx *Context) BlendColor(red, green, blue, alpha float32) {
	ctx.record("BlendColor", red, green, blue, alpha)
	ctx.s.BlendColor = [4]float32{clamp01(red), clamp01(green), clamp01(blue), clamp01(alpha)}
}

func (ctx *Context) DepthFunc(fn glstate.Enum) {
	ctx.record("DepthFunc", fn)
	if ctx.valid(compareFuncs, fn) {
		ctx.s.DepthFunc = fn
	}
}

func (ctx *Context) DepthMask(flag bool) {
	ctx.record("DepthMask", flag)
	ctx.s.DepthMask = flag
}

func (ctx *Context) DepthRange(near, far float64) {
	ctx.record("DepthRange", near, far)
	for i := range ctx.s.DepthRange {
		ctx.s.DepthRange[i] = glstate.DepthRange{Near: min(max(near, 0), 1), Far: min(max(far, 0), 1)}
	}
}

func (ctx *Context) DepthRangeIndexed(index uint32, near, far float64) {
	ctx.record("DepthRangeIndexed", index, near, far)
	if ctx.index(index, glstate.MaxViewports) {
		ctx.s.DepthRange[index] = glstate.DepthRange{Near: min(max(near, 0), 1), Far: min(max(far, 0), 1)}
	}
}

// faces returns the stencil faces selected by the face enumeration.
func (ctx *Context) faces(face glstate.Enum) []int {
	switch face {
	case glstate.Front:
		return []int{glstate.FaceFront}
	case glstate.Back:
		return []int{glstate.FaceBack}
	case glstate.FrontAndBack:
		return []int{glstate.FaceFront, glstate.FaceBack}
	}
	ctx.raise(glstate.InvalidEnum)
	return nil
}

func (ctx *Context) StencilFuncSeparate(face glstate.Enum, fn glstate.Enum, ref int32, mask uint32) {
	ctx.record("StencilFuncSeparate", face, fn, ref, mask)
	if !ctx.valid(compareFuncs, fn) {
		return
	}
	for _, f := range ctx.faces(face) {
		ctx.s.StencilFunc[f] = glstate.StencilFunc{Func: fn, Ref: ref, Mask: mask}
	}
}

func (ctx *Context) StencilOpSeparate(face glstate.Enum, sfail, dpfail, dppass glstate.Enum) {
	ctx.record("StencilOpSeparate", face, sfail, dpfail, dppass)
	if !ctx.valid(stencilOps, sfail, dpfail, dppass) {
		return
	}
	for _, f := range ctx.faces(face) {
		ctx.s.StencilOp[f] = glstate.StencilOp{Fail: sfail, ZFail: dpfail, ZPass: dppass}
	}
}

func (ctx *Context) StencilMaskSeparate(face glstate.Enum, mask uint32) {
	ctx.record("StencilMaskSeparate", face, mask)
	for _, f := range ctx.faces(face) {
		ctx.s.StencilMask[f] = mask
	}
}

func (ctx *Context) ColorMask(red, green, blue, alpha bool) {
	ctx.record("ColorMask", red, green, blue, alpha)
	for i := range ctx.s.ColorMask {
		ctx.s.ColorMask[i] = [4]bool{red, green, blue, alpha}
	}
}

func (ctx *Context) ColorMaski(buf uint32, red, green, blue, alpha bool) {
	ctx.record("ColorMaski", buf, red, green, blue, alpha)
	if ctx.index(buf, glstate.MaxDrawBuffers) {
		ctx.s.ColorMask[buf] = [4]bool{red, green, blue, alpha}
	}
}

func (ctx *Context) LogicOp(op glstate.Enum) {
	ctx.record("LogicOp", op)
	if op < glstate.Clear || op > glstate.Set {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	ctx.s.LogicOp = op
}

func (ctx *Context) PrimitiveRestartIndex(index uint32) {
	ctx.record("PrimitiveRestartIndex", index)
	ctx.s.RestartIndex = index
}

func (ctx *Context) PatchParameteri(pname glstate.Enum, value int32) {
	ctx.record("PatchParameteri", pname, value)
	if pname != glstate.QueryPatchVertices {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	if value <= 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.PatchVertices = value
}

func (ctx *Context) SampleCoverage(value float32, invert bool) {
	ctx.record("SampleCoverage", value, invert)
	ctx.s.SampleCoverage = clamp01(value)
	ctx.s.SampleInvert = invert
}

func (ctx *Context) SampleMaski(maskNumber uint32, mask uint32) {
	ctx.record("SampleMaski", maskNumber, mask)
	if ctx.index(maskNumber, 1) {
		ctx.s.SampleMask = mask
	}
}

func (ctx *Context) MinSampleShading(value float32) {
	ctx.record("MinSampleShading", value)
	ctx.s.MinSampleShading = clamp01(value)
}

func (ctx *Context) FrontFace(mode glstate.Enum) {
	ctx.record("FrontFace", mode)
	if ctx.valid([]glstate.Enum{glstate.CW, glstate.CCW}, mode) {
		ctx.s.FrontFace = mode
	}
}

func (ctx *Context) CullFace(mode glstate.Enum) {
	ctx.record("CullFace", mode)
	if ctx.valid([]glstate.Enum{glstate.Front, glstate.Back, glstate.FrontAndBack}, mode) {
		ctx.s.CullFace = mode
	}
}

func (ctx *Context) PolygonMode(face glstate.Enum, mode glstate.Enum) {
	ctx.record("PolygonMode", face, mode)
	if !ctx.valid([]glstate.Enum{glstate.Point, glstate.Line, glstate.Fill}, mode) {
		return
	}
	if ctx.profile == Core && face != glstate.FrontAndBack {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	for _, f := range ctx.faces(face) {
		ctx.s.PolygonMode[f] = mode
	}
}

func (ctx *Context) PolygonOffset(factor, units float32) {
	ctx.record("PolygonOffset", factor, units)
	ctx.s.PolyOffsetFactor = factor
	ctx.s.PolyOffsetUnits = units
}

func (ctx *Context) LineWidth(width float32) {
	ctx.record("LineWidth", width)
	if width <= 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.LineWidth = width
}

func (ctx *Context) PointSize(size float32) {
	ctx.record("PointSize", size)
	if size <= 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.PointSize = size
}

func (ctx *Context) PointParameterf(pname glstate.Enum, value float32) {
	ctx.record("PointParameterf", pname, value)
	switch pname {
	case glstate.QueryPointFadeThresholdSize:
		if value < 0 {
			ctx.raise(glstate.InvalidValue)
			return
		}
		ctx.s.PointFade = value
	case glstate.QueryPointSpriteCoordOrigin:
		ctx.PointParameteri(pname, int32(value))
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}

func (ctx *Context) PointParameteri(pname glstate.Enum, value int32) {
	ctx.record("PointParameteri", pname, value)
	switch pname {
	case glstate.QueryPointSpriteCoordOrigin:
		if ctx.valid([]glstate.Enum{glstate.LowerLeft, glstate.UpperLeft}, glstate.Enum(value)) {
			ctx.s.PointSpriteOrigin = glstate.Enum(value)
		}
	case glstate.QueryPointFadeThresholdSize:
		ctx.PointParameterf(pname, float32(value))
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}

func (ctx *Context) Viewport(x, y, width, height int32) {
	ctx.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	r := glstate.Rect{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}
	for i := range ctx.s.Viewport {
		ctx.s.Viewport[i] = r
	}
}

func (ctx *Context) ViewportIndexedf(index uint32, x, y, width, height float32) {
	ctx.record("ViewportIndexedf", index, x, y, width, height)
	if !ctx.index(index, glstate.MaxViewports) {
		return
	}
	if width < 0 || height < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.Viewport[index] = glstate.Rect{X: x, Y: y, Width: width, Height: height}
}

func (ctx *Context) Scissor(x, y, width, height int32) {
	ctx.record("Scissor", x, y, width, height)
	if width < 0 || height < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	for i := range ctx.s.Scissor {
		ctx.s.Scissor[i] = glstate.ScissorRect{X: x, Y: y, Width: width, Height: height}
	}
}

func (ctx *Context) ScissorIndexed(index uint32, left, bottom, width, height int32) {
	ctx.record("ScissorIndexed", index, left, bottom, width, height)
	if !ctx.index(index, glstate.MaxViewports) {
		return
	}
	if width < 0 || height < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.Scissor[index] = glstate.ScissorRect{X: left, Y: bottom, Width: width, Height: height}
}

func (ctx *Context) UseProgram(program uint32) {
	ctx.record("UseProgram", program)
	ctx.s.Program = program
}

func (ctx *Context) BindFramebuffer(target glstate.Enum, framebuffer uint32) {
	ctx.record("BindFramebuffer", target, framebuffer)
	switch target {
	case glstate.Framebuffer:
		ctx.s.DrawFramebuffer = framebuffer
		ctx.s.ReadFramebuffer = framebuffer
	case glstate.DrawFramebuffer:
		ctx.s.DrawFramebuffer = framebuffer
	case glstate.ReadFramebuffer:
		ctx.s.ReadFramebuffer = framebuffer
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}

func (ctx *Context) DrawBuffers(bufs []glstate.Enum) {
	ctx.record("DrawBuffers", bufs)
	if len(bufs) > glstate.MaxDrawBuffers {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.DrawBuffers = [glstate.MaxDrawBuffers]glstate.Enum{}
	copy(ctx.s.DrawBuffers[:], bufs)
}

func (ctx *Context) ReadBuffer(mode glstate.Enum) {
	ctx.record("ReadBuffer", mode)
	ctx.s.ReadBuffer = mode
}

func (ctx *Context) AlphaFunc(fn glstate.Enum, ref float32) {
	ctx.record("AlphaFunc", fn, ref)
	if ctx.profile == Core {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	if ctx.valid(compareFuncs, fn) {
		ctx.s.AlphaFunc = fn
		ctx.s.AlphaRef = clamp01(ref)
	}
}

func (ctx *Context) ShadeModel(mode glstate.Enum) {
	ctx.record("ShadeModel", mode)
	if ctx.profile == Core {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	if ctx.valid([]glstate.Enum{glstate.Flat, glstate.Smooth}, mode) {
		ctx.s.ShadeModel = mode
	}
}

func (ctx *Context) LineStipple(factor int32, pattern uint16) {
	ctx.record("LineStipple", factor, pattern)
	if ctx.profile == Core {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	ctx.s.LineStippleFactor = min(max(factor, 1), 256)
	ctx.s.LineStipplePattern = pattern
}
