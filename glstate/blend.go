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

// MaxDrawBuffers is the number of draw buffers modelled by the per-buffer
// slices.
const MaxDrawBuffers = 8

// BlendMode is the source weight, destination weight and equation for one
// of the colour or alpha channels.
type BlendMode struct {
	SrcW Enum
	DstW Enum
	Equ  Enum
}

// BlendBuffer is the blend configuration of one draw buffer.
type BlendBuffer struct {
	RGB   BlendMode
	Alpha BlendMode
}

// BlendState is the blend function and equation of every draw buffer and
// the blend colour.
//
// When UseSeparate is false the configuration of buffer zero is applied to
// all buffers and the blend enable of all buffers is controlled by CapBlend
// in EnableState. When UseSeparate is true every buffer is applied on its
// own and SeparateEnable holds the blend enable bit for each buffer.
type BlendState struct {
	SeparateEnable uint32
	UseSeparate    bool
	Blends         [MaxDrawBuffers]BlendBuffer
	Color          [4]float32
}

// SetDefaults sets the GL reset state: (ONE, ZERO, FUNC_ADD) for every
// buffer and a transparent black blend colour.
func (s *BlendState) SetDefaults() {
	s.SeparateEnable = 0
	s.UseSeparate = false
	for i := range s.Blends {
		s.Blends[i].RGB = BlendMode{SrcW: One, DstW: Zero, Equ: FuncAdd}
		s.Blends[i].Alpha = BlendMode{SrcW: One, DstW: Zero, Equ: FuncAdd}
	}
	s.Color = [4]float32{}
}

// Apply blend state with no regard for the current state of the context.
func (s *BlendState) Apply(ctx Context) {
	if s.UseSeparate {
		for i := range s.Blends {
			b := &s.Blends[i]
			setCapi(ctx, Blend, uint32(i), s.SeparateEnable&(1<<i) != 0)
			ctx.BlendFuncSeparatei(uint32(i), b.RGB.SrcW, b.RGB.DstW, b.Alpha.SrcW, b.Alpha.DstW)
			ctx.BlendEquationSeparatei(uint32(i), b.RGB.Equ, b.Alpha.Equ)
		}
	} else {
		b := &s.Blends[0]
		ctx.BlendFuncSeparate(b.RGB.SrcW, b.RGB.DstW, b.Alpha.SrcW, b.Alpha.DstW)
		ctx.BlendEquationSeparate(b.RGB.Equ, b.Alpha.Equ)
	}
	ctx.BlendColor(s.Color[0], s.Color[1], s.Color[2], s.Color[3])
}

// Get blend state from the context. UseSeparate is set if any buffer
// differs from buffer zero.
func (s *BlendState) Get(ctx Context) {
	s.SeparateEnable = 0
	for i := range s.Blends {
		b := &s.Blends[i]
		b.RGB.SrcW = getEnumi(ctx, QueryBlendSrcRGB, uint32(i))
		b.RGB.DstW = getEnumi(ctx, QueryBlendDstRGB, uint32(i))
		b.RGB.Equ = getEnumi(ctx, QueryBlendEquationRGB, uint32(i))
		b.Alpha.SrcW = getEnumi(ctx, QueryBlendSrcAlpha, uint32(i))
		b.Alpha.DstW = getEnumi(ctx, QueryBlendDstAlpha, uint32(i))
		b.Alpha.Equ = getEnumi(ctx, QueryBlendEquationAlpha, uint32(i))
		if ctx.IsEnabledi(Blend, uint32(i)) {
			s.SeparateEnable |= 1 << i
		}
	}

	s.UseSeparate = false
	for i := 1; i < MaxDrawBuffers; i++ {
		if s.Blends[i] != s.Blends[0] {
			s.UseSeparate = true
		}
	}
	if s.SeparateEnable != 0 && s.SeparateEnable != 1<<MaxDrawBuffers-1 {
		s.UseSeparate = true
	}
	if !s.UseSeparate {
		s.SeparateEnable = 0
	}

	ctx.GetFloatv(QueryBlendColor, s.Color[:])
}
