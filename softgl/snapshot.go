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
	"github.com/lightmass/lightmass/glstate"
)

// Attrib is the state of one vertex attribute.
type Attrib struct {
	Enabled        bool
	Size           int32
	Type           glstate.Enum
	Normalized     bool
	Integer        bool
	RelativeOffset uint32
	Binding        uint32
}

// Binding is the state of one vertex buffer binding point.
type Binding struct {
	Buffer  uint32
	Offset  int
	Stride  int32
	Divisor uint32
	Address uint64
	Length  int
}

// Snapshot is the observable state of a Context.
type Snapshot struct {
	Caps          [numCaps]bool
	BlendEnable   [glstate.MaxDrawBuffers]bool
	ScissorEnable [glstate.MaxViewports]bool

	Blend      [glstate.MaxDrawBuffers]glstate.BlendBuffer
	BlendColor [4]float32

	DepthFunc  glstate.Enum
	DepthMask  bool
	DepthRange [glstate.MaxViewports]glstate.DepthRange

	StencilFunc [glstate.NumFaces]glstate.StencilFunc
	StencilOp   [glstate.NumFaces]glstate.StencilOp
	StencilMask [glstate.NumFaces]uint32

	ColorMask [glstate.MaxDrawBuffers][4]bool

	LogicOp       glstate.Enum
	RestartIndex  uint32
	PatchVertices int32

	SampleCoverage   float32
	SampleInvert     bool
	SampleMask       uint32
	MinSampleShading float32

	FrontFace         glstate.Enum
	CullFace          glstate.Enum
	PolygonMode       [2]glstate.Enum
	PolyOffsetFactor  float32
	PolyOffsetUnits   float32
	LineWidth         float32
	PointSize         float32
	PointFade         float32
	PointSpriteOrigin glstate.Enum

	Viewport [glstate.MaxViewports]glstate.Rect
	Scissor  [glstate.MaxViewports]glstate.ScissorRect

	Program uint32

	DrawFramebuffer uint32
	ReadFramebuffer uint32
	DrawBuffers     [glstate.MaxDrawBuffers]glstate.Enum
	ReadBuffer      glstate.Enum

	Attribs            [glstate.MaxVertexAttribs]Attrib
	Bindings           [glstate.MaxVertexBindings]Binding
	ArrayBuffer        uint32
	ElementArrayBuffer uint32

	AlphaFunc          glstate.Enum
	AlphaRef           float32
	ShadeModel         glstate.Enum
	LineStippleFactor  int32
	LineStipplePattern uint16
}

// reset sets the GL reset state for a context with no window.
func (s *Snapshot) reset() {
	*s = Snapshot{}

	s.Caps[capIndex[glstate.Dither]] = true
	s.Caps[capIndex[glstate.Multisample]] = true

	for i := range s.Blend {
		s.Blend[i].RGB = glstate.BlendMode{SrcW: glstate.One, DstW: glstate.Zero, Equ: glstate.FuncAdd}
		s.Blend[i].Alpha = glstate.BlendMode{SrcW: glstate.One, DstW: glstate.Zero, Equ: glstate.FuncAdd}
	}

	s.DepthFunc = glstate.Less
	s.DepthMask = true
	for i := range s.DepthRange {
		s.DepthRange[i] = glstate.DepthRange{Near: 0, Far: 1}
	}

	for i := range glstate.NumFaces {
		s.StencilFunc[i] = glstate.StencilFunc{Func: glstate.Always, Ref: 0, Mask: ^uint32(0)}
		s.StencilOp[i] = glstate.StencilOp{Fail: glstate.Keep, ZFail: glstate.Keep, ZPass: glstate.Keep}
		s.StencilMask[i] = ^uint32(0)
	}

	for i := range s.ColorMask {
		s.ColorMask[i] = [4]bool{true, true, true, true}
	}

	s.LogicOp = glstate.Copy
	s.PatchVertices = 3

	s.SampleCoverage = 1
	s.SampleMask = ^uint32(0)

	s.FrontFace = glstate.CCW
	s.CullFace = glstate.Back
	s.PolygonMode = [2]glstate.Enum{glstate.Fill, glstate.Fill}
	s.LineWidth = 1
	s.PointSize = 1
	s.PointFade = 1
	s.PointSpriteOrigin = glstate.UpperLeft

	s.DrawBuffers[0] = glstate.Back
	s.ReadBuffer = glstate.Back

	for i := range s.Attribs {
		s.Attribs[i] = Attrib{Size: 4, Type: glstate.Float, Binding: uint32(i)}
	}

	s.AlphaFunc = glstate.Always
	s.ShadeModel = glstate.Smooth
	s.LineStippleFactor = 1
	s.LineStipplePattern = 0xffff
}

// non-indexed capabilities. BLEND and SCISSOR_TEST are indexed and are held
// separately
var capList = []glstate.Enum{
	glstate.ColorLogicOp, glstate.CullFaceCap, glstate.DepthClamp, glstate.DepthTest,
	glstate.Dither, glstate.FramebufferSRGB, glstate.LineSmooth, glstate.Multisample,
	glstate.PolygonOffsetFill, glstate.PolygonOffsetLine, glstate.PolygonOffsetPoint,
	glstate.PolygonSmooth, glstate.PrimitiveRestart, glstate.PrimitiveRestartFixedIndex,
	glstate.ProgramPointSize, glstate.RasterizerDiscard, glstate.SampleAlphaToCoverage,
	glstate.SampleAlphaToOne, glstate.SampleCoverageCap, glstate.SampleMask,
	glstate.SampleShading, glstate.StencilTest, glstate.TextureCubeMapSeamless,
	glstate.ClipDistance0, glstate.ClipDistance0 + 1, glstate.ClipDistance0 + 2,
	glstate.ClipDistance0 + 3, glstate.ClipDistance0 + 4, glstate.ClipDistance0 + 5,
	glstate.ClipDistance0 + 6, glstate.ClipDistance0 + 7,

	// deprecated
	glstate.AlphaTest, glstate.ColorMaterial, glstate.Fog, glstate.Lighting,
	glstate.LineStipple, glstate.PolygonStipple,
}

const numCaps = 37

// the first deprecated capability in capList
const firstDeprCap = numCaps - 6

var capIndex map[glstate.Enum]int

func init() {
	if len(capList) != numCaps {
		panic("softgl: capability list and numCaps disagree")
	}
	capIndex = make(map[glstate.Enum]int, numCaps)
	for i, c := range capList {
		capIndex[c] = i
	}
}
