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

// DepthState is the depth comparison function. Depth testing is enabled
// with CapDepthTest and depth writes are controlled by MaskState.
type DepthState struct {
	Func Enum
}

// SetDefaults sets the GL reset state.
func (s *DepthState) SetDefaults() {
	s.Func = Less
}

// Apply depth state.
func (s *DepthState) Apply(ctx Context) {
	ctx.DepthFunc(s.Func)
}

// Get depth state from the context.
func (s *DepthState) Get(ctx Context) {
	s.Func = getEnum(ctx, QueryDepthFunc)
}

// The two stencil faces.
const (
	FaceFront = iota
	FaceBack
	NumFaces
)

var faceEnums = [NumFaces]Enum{Front, Back}

// StencilFunc is the comparison function, reference value and comparison
// mask of one face. The three values are always set together.
type StencilFunc struct {
	Func Enum
	Ref  int32
	Mask uint32
}

// StencilOp is the operation for the three outcomes of the stencil and
// depth tests of one face.
type StencilOp struct {
	Fail  Enum
	ZFail Enum
	ZPass Enum
}

// StencilState is the stencil function and operations of the front and back
// faces. Stencil write masks are in MaskState.
type StencilState struct {
	Funcs [NumFaces]StencilFunc
	Ops   [NumFaces]StencilOp
}

// SetDefaults sets the GL reset state.
func (s *StencilState) SetDefaults() {
	for i := range NumFaces {
		s.Funcs[i] = StencilFunc{Func: Always, Ref: 0, Mask: ^uint32(0)}
		s.Ops[i] = StencilOp{Fail: Keep, ZFail: Keep, ZPass: Keep}
	}
}

// Apply stencil state of both faces.
func (s *StencilState) Apply(ctx Context) {
	for i := range NumFaces {
		f := &s.Funcs[i]
		ctx.StencilFuncSeparate(faceEnums[i], f.Func, f.Ref, f.Mask)
	}
	for i := range NumFaces {
		o := &s.Ops[i]
		ctx.StencilOpSeparate(faceEnums[i], o.Fail, o.ZFail, o.ZPass)
	}
}

// Get stencil state from the context.
func (s *StencilState) Get(ctx Context) {
	s.Funcs[FaceFront] = StencilFunc{
		Func: getEnum(ctx, QueryStencilFunc),
		Ref:  getInt(ctx, QueryStencilRef),
		Mask: uint32(getInt(ctx, QueryStencilValueMask)),
	}
	s.Funcs[FaceBack] = StencilFunc{
		Func: getEnum(ctx, QueryStencilBackFunc),
		Ref:  getInt(ctx, QueryStencilBackRef),
		Mask: uint32(getInt(ctx, QueryStencilBackValueMask)),
	}
	s.Ops[FaceFront] = StencilOp{
		Fail:  getEnum(ctx, QueryStencilFail),
		ZFail: getEnum(ctx, QueryStencilPassDepthFail),
		ZPass: getEnum(ctx, QueryStencilPassDepthPass),
	}
	s.Ops[FaceBack] = StencilOp{
		Fail:  getEnum(ctx, QueryStencilBackFail),
		ZFail: getEnum(ctx, QueryStencilBackPassDepthFail),
		ZPass: getEnum(ctx, QueryStencilBackPassDepthPass),
	}
}

// DepthRange is the near and far values of one viewport.
type DepthRange struct {
	Near float64
	Far  float64
}

// DepthRangeState is the depth range of every viewport. When UseSeparate is
// false the range of viewport zero is applied to all viewports.
type DepthRangeState struct {
	Ranges      [MaxViewports]DepthRange
	UseSeparate bool
}

// SetDefaults sets the GL reset state.
func (s *DepthRangeState) SetDefaults() {
	for i := range s.Ranges {
		s.Ranges[i] = DepthRange{Near: 0, Far: 1}
	}
	s.UseSeparate = false
}

// Apply depth range state.
func (s *DepthRangeState) Apply(ctx Context) {
	if s.UseSeparate {
		for i := range s.Ranges {
			ctx.DepthRangeIndexed(uint32(i), s.Ranges[i].Near, s.Ranges[i].Far)
		}
	} else {
		ctx.DepthRange(s.Ranges[0].Near, s.Ranges[0].Far)
	}
}

// Get depth range state from the context.
func (s *DepthRangeState) Get(ctx Context) {
	var v [2]float64
	s.UseSeparate = false
	for i := range s.Ranges {
		ctx.GetDoublei(QueryDepthRange, uint32(i), v[:])
		s.Ranges[i] = DepthRange{Near: v[0], Far: v[1]}
		if s.Ranges[i] != s.Ranges[0] {
			s.UseSeparate = true
		}
	}
}
