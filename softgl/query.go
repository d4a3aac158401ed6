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

import "github.com/lightmass/lightmass/glstate"

func (ctx *Context) IsEnabled(cap glstate.Enum) bool {
	ctx.queries++
	switch cap {
	case glstate.Blend:
		return ctx.s.BlendEnable[0]
	case glstate.ScissorTest:
		return ctx.s.ScissorEnable[0]
	}
	i, ok := capIndex[cap]
	if !ok || (ctx.profile == Core && i >= firstDeprCap) {
		ctx.raise(glstate.InvalidEnum)
		return false
	}
	return ctx.s.Caps[i]
}

func (ctx *Context) IsEnabledi(cap glstate.Enum, index uint32) bool {
	ctx.queries++
	switch cap {
	case glstate.Blend:
		if ctx.index(index, glstate.MaxDrawBuffers) {
			return ctx.s.BlendEnable[index]
		}
	case glstate.ScissorTest:
		if ctx.index(index, glstate.MaxViewports) {
			return ctx.s.ScissorEnable[index]
		}
	default:
		ctx.raise(glstate.InvalidEnum)
	}
	return false
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// deprecated raises INVALID_ENUM and returns true if the query is for
// fixed function state and the context is a core profile context.
func (ctx *Context) deprecated(pname glstate.Enum) bool {
	if ctx.profile != Core {
		return false
	}
	switch pname {
	case glstate.QueryAlphaTestFunc, glstate.QueryAlphaTestRef, glstate.QueryShadeModel,
		glstate.QueryLineStippleRepeat, glstate.QueryLineStipplePattern:
		ctx.raise(glstate.InvalidEnum)
		return true
	}
	return false
}

// integers returns the integer values of the non-indexed query or false if
// the query is not supported.
func (ctx *Context) integers(pname glstate.Enum) ([]int32, bool) {
	s := &ctx.s
	e := func(v glstate.Enum) []int32 { return []int32{int32(v)} }
	u := func(v uint32) []int32 { return []int32{int32(v)} }

	switch pname {
	case glstate.QueryDepthFunc:
		return e(s.DepthFunc), true
	case glstate.QueryStencilFunc:
		return e(s.StencilFunc[glstate.FaceFront].Func), true
	case glstate.QueryStencilRef:
		return []int32{s.StencilFunc[glstate.FaceFront].Ref}, true
	case glstate.QueryStencilValueMask:
		return u(s.StencilFunc[glstate.FaceFront].Mask), true
	case glstate.QueryStencilBackFunc:
		return e(s.StencilFunc[glstate.FaceBack].Func), true
	case glstate.QueryStencilBackRef:
		return []int32{s.StencilFunc[glstate.FaceBack].Ref}, true
	case glstate.QueryStencilBackValueMask:
		return u(s.StencilFunc[glstate.FaceBack].Mask), true
	case glstate.QueryStencilFail:
		return e(s.StencilOp[glstate.FaceFront].Fail), true
	case glstate.QueryStencilPassDepthFail:
		return e(s.StencilOp[glstate.FaceFront].ZFail), true
	case glstate.QueryStencilPassDepthPass:
		return e(s.StencilOp[glstate.FaceFront].ZPass), true
	case glstate.QueryStencilBackFail:
		return e(s.StencilOp[glstate.FaceBack].Fail), true
	case glstate.QueryStencilBackPassDepthFail:
		return e(s.StencilOp[glstate.FaceBack].ZFail), true
	case glstate.QueryStencilBackPassDepthPass:
		return e(s.StencilOp[glstate.FaceBack].ZPass), true
	case glstate.QueryStencilWritemask:
		return u(s.StencilMask[glstate.FaceFront]), true
	case glstate.QueryStencilBackWritemask:
		return u(s.StencilMask[glstate.FaceBack]), true
	case glstate.QueryLogicOpMode:
		return e(s.LogicOp), true
	case glstate.QueryPrimitiveRestartIndex:
		return u(s.RestartIndex), true
	case glstate.QueryPatchVertices:
		return []int32{s.PatchVertices}, true
	case glstate.QueryFrontFace:
		return e(s.FrontFace), true
	case glstate.QueryCullFaceMode:
		return e(s.CullFace), true
	case glstate.QueryPolygonMode:
		return []int32{int32(s.PolygonMode[0]), int32(s.PolygonMode[1])}, true
	case glstate.QueryPointSpriteCoordOrigin:
		return e(s.PointSpriteOrigin), true
	case glstate.QueryCurrentProgram:
		return u(s.Program), true
	case glstate.QueryDrawFramebufferBinding:
		return u(s.DrawFramebuffer), true
	case glstate.QueryReadFramebufferBinding:
		return u(s.ReadFramebuffer), true
	case glstate.QueryReadBuffer:
		return e(s.ReadBuffer), true
	case glstate.QueryAlphaTestFunc:
		return e(s.AlphaFunc), true
	case glstate.QueryShadeModel:
		return e(s.ShadeModel), true
	case glstate.QueryLineStippleRepeat:
		return []int32{s.LineStippleFactor}, true
	case glstate.QueryLineStipplePattern:
		return []int32{int32(s.LineStipplePattern)}, true
	}

	if pname >= glstate.QueryDrawBuffer0 && pname < glstate.QueryDrawBuffer0+glstate.MaxDrawBuffers {
		return e(s.DrawBuffers[pname-glstate.QueryDrawBuffer0]), true
	}

	// indexed values report index zero
	return ctx.indexedIntegers(pname, 0)
}

// indexedIntegers returns the integer values of the indexed query or false
// if the query is not supported.
func (ctx *Context) indexedIntegers(pname glstate.Enum, index uint32) ([]int32, bool) {
	s := &ctx.s
	blend := func(f func(b *glstate.BlendBuffer) glstate.Enum) ([]int32, bool) {
		if !ctx.index(index, glstate.MaxDrawBuffers) {
			return nil, true
		}
		return []int32{int32(f(&s.Blend[index]))}, true
	}

	switch pname {
	case glstate.QueryBlendSrcRGB:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.RGB.SrcW })
	case glstate.QueryBlendDstRGB:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.RGB.DstW })
	case glstate.QueryBlendEquationRGB:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.RGB.Equ })
	case glstate.QueryBlendSrcAlpha:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.Alpha.SrcW })
	case glstate.QueryBlendDstAlpha:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.Alpha.DstW })
	case glstate.QueryBlendEquationAlpha:
		return blend(func(b *glstate.BlendBuffer) glstate.Enum { return b.Alpha.Equ })
	case glstate.QueryScissorBox:
		if !ctx.index(index, glstate.MaxViewports) {
			return nil, true
		}
		r := s.Scissor[index]
		return []int32{r.X, r.Y, r.Width, r.Height}, true
	case glstate.QueryViewport:
		if !ctx.index(index, glstate.MaxViewports) {
			return nil, true
		}
		r := s.Viewport[index]
		return []int32{int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)}, true
	case glstate.QuerySampleMaskValue:
		if !ctx.index(index, 1) {
			return nil, true
		}
		return []int32{int32(s.SampleMask)}, true
	case glstate.QueryVertexBindingDivisor:
		if !ctx.index(index, glstate.MaxVertexBindings) {
			return nil, true
		}
		return []int32{int32(s.Bindings[index].Divisor)}, true
	}
	return nil, false
}

// floats returns the floating point values of the query or false if the
// query is not supported.
func (ctx *Context) floats(pname glstate.Enum, index uint32) ([]float32, bool) {
	s := &ctx.s
	switch pname {
	case glstate.QueryViewport:
		if !ctx.index(index, glstate.MaxViewports) {
			return nil, true
		}
		r := s.Viewport[index]
		return []float32{r.X, r.Y, r.Width, r.Height}, true
	case glstate.QueryDepthRange:
		if !ctx.index(index, glstate.MaxViewports) {
			return nil, true
		}
		r := s.DepthRange[index]
		return []float32{float32(r.Near), float32(r.Far)}, true
	}

	if index != 0 {
		return nil, false
	}

	switch pname {
	case glstate.QueryBlendColor:
		return s.BlendColor[:], true
	case glstate.QueryAlphaTestRef:
		return []float32{s.AlphaRef}, true
	case glstate.QueryPolygonOffsetFactor:
		return []float32{s.PolyOffsetFactor}, true
	case glstate.QueryPolygonOffsetUnits:
		return []float32{s.PolyOffsetUnits}, true
	case glstate.QueryLineWidth:
		return []float32{s.LineWidth}, true
	case glstate.QueryPointSize:
		return []float32{s.PointSize}, true
	case glstate.QueryPointFadeThresholdSize:
		return []float32{s.PointFade}, true
	case glstate.QuerySampleCoverageValue:
		return []float32{s.SampleCoverage}, true
	case glstate.QueryMinSampleShadingValue:
		return []float32{s.MinSampleShading}, true
	}
	return nil, false
}

// booleans returns the boolean values of the query or false if the query is
// not supported.
func (ctx *Context) booleans(pname glstate.Enum, index uint32) ([]bool, bool) {
	s := &ctx.s
	switch pname {
	case glstate.QueryColorWritemask:
		if !ctx.index(index, glstate.MaxDrawBuffers) {
			return nil, true
		}
		return s.ColorMask[index][:], true
	}

	if index != 0 {
		return nil, false
	}

	switch pname {
	case glstate.QuerySampleCoverageInvert:
		return []bool{s.SampleInvert}, true
	case glstate.QueryDepthWritemask:
		return []bool{s.DepthMask}, true
	}
	return nil, false
}

func (ctx *Context) GetIntegerv(pname glstate.Enum, data []int32) {
	ctx.queries++
	if ctx.deprecated(pname) {
		return
	}
	v, ok := ctx.integers(pname)
	if !ok {
		if f, ok := ctx.floats(pname, 0); ok {
			for i := range min(len(f), len(data)) {
				data[i] = int32(f[i])
			}
			return
		}
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetIntegeri(pname glstate.Enum, index uint32, data []int32) {
	ctx.queries++
	v, ok := ctx.indexedIntegers(pname, index)
	if !ok {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetFloatv(pname glstate.Enum, data []float32) {
	ctx.queries++
	if ctx.deprecated(pname) {
		return
	}
	v, ok := ctx.floats(pname, 0)
	if !ok {
		if n, ok := ctx.integers(pname); ok {
			for i := range min(len(n), len(data)) {
				data[i] = float32(n[i])
			}
			return
		}
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetFloati(pname glstate.Enum, index uint32, data []float32) {
	ctx.queries++
	v, ok := ctx.floats(pname, index)
	if !ok {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetDoublei(pname glstate.Enum, index uint32, data []float64) {
	ctx.queries++
	switch pname {
	case glstate.QueryDepthRange:
		if ctx.index(index, glstate.MaxViewports) && len(data) >= 2 {
			data[0] = ctx.s.DepthRange[index].Near
			data[1] = ctx.s.DepthRange[index].Far
		}
		return
	}
	v, ok := ctx.floats(pname, index)
	if !ok {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	for i := range min(len(v), len(data)) {
		data[i] = float64(v[i])
	}
}

func (ctx *Context) GetBooleanv(pname glstate.Enum, data []bool) {
	ctx.queries++
	v, ok := ctx.booleans(pname, 0)
	if !ok {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetBooleani(pname glstate.Enum, index uint32, data []bool) {
	ctx.queries++
	v, ok := ctx.booleans(pname, index)
	if !ok {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	copy(data, v)
}

func (ctx *Context) GetVertexAttribiv(index uint32, pname glstate.Enum, data []int32) {
	ctx.queries++
	if !ctx.index(index, glstate.MaxVertexAttribs) || len(data) == 0 {
		return
	}
	a := &ctx.s.Attribs[index]
	switch pname {
	case glstate.QueryVertexAttribArrayEnabled:
		data[0] = b2i(a.Enabled)
	case glstate.QueryVertexAttribArraySize:
		data[0] = a.Size
	case glstate.QueryVertexAttribArrayType:
		data[0] = int32(a.Type)
	case glstate.QueryVertexAttribArrayNormal:
		data[0] = b2i(a.Normalized)
	case glstate.QueryVertexAttribArrayInteger:
		data[0] = b2i(a.Integer)
	case glstate.QueryVertexAttribBinding:
		data[0] = int32(a.Binding)
	case glstate.QueryVertexAttribRelOffset:
		data[0] = int32(a.RelativeOffset)
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}
