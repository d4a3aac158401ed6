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

// Capability identifies a bit in EnableState.
type Capability int

// List of capabilities in EnableState. Scissor testing is managed by
// ScissorEnableState and clip distances by ClipDistanceState.
const (
	CapBlend Capability = iota
	CapColorLogicOp
	CapCullFace
	CapDepthClamp
	CapDepthTest
	CapDither
	CapFramebufferSRGB
	CapLineSmooth
	CapMultisample
	CapPolygonOffsetFill
	CapPolygonOffsetLine
	CapPolygonOffsetPoint
	CapPolygonSmooth
	CapPrimitiveRestart
	CapPrimitiveRestartFixedIndex
	CapProgramPointSize
	CapRasterizerDiscard
	CapSampleAlphaToCoverage
	CapSampleAlphaToOne
	CapSampleCoverage
	CapSampleMask
	CapSampleShading
	CapStencilTest
	CapTextureCubeMapSeamless
	NumCapabilities
)

var capEnums = [NumCapabilities]Enum{
	CapBlend:                      Blend,
	CapColorLogicOp:               ColorLogicOp,
	CapCullFace:                   CullFaceCap,
	CapDepthClamp:                 DepthClamp,
	CapDepthTest:                  DepthTest,
	CapDither:                     Dither,
	CapFramebufferSRGB:            FramebufferSRGB,
	CapLineSmooth:                 LineSmooth,
	CapMultisample:                Multisample,
	CapPolygonOffsetFill:          PolygonOffsetFill,
	CapPolygonOffsetLine:          PolygonOffsetLine,
	CapPolygonOffsetPoint:         PolygonOffsetPoint,
	CapPolygonSmooth:              PolygonSmooth,
	CapPrimitiveRestart:           PrimitiveRestart,
	CapPrimitiveRestartFixedIndex: PrimitiveRestartFixedIndex,
	CapProgramPointSize:           ProgramPointSize,
	CapRasterizerDiscard:          RasterizerDiscard,
	CapSampleAlphaToCoverage:      SampleAlphaToCoverage,
	CapSampleAlphaToOne:           SampleAlphaToOne,
	CapSampleCoverage:             SampleCoverageCap,
	CapSampleMask:                 SampleMask,
	CapSampleShading:              SampleShading,
	CapStencilTest:                StencilTest,
	CapTextureCubeMapSeamless:     TextureCubeMapSeamless,
}

// Enum returns the GL capability.
func (c Capability) Enum() Enum {
	return capEnums[c]
}

func (c Capability) String() string {
	return capEnums[c].String()
}

// CapabilityByEnum returns the Capability for the GL capability.
func CapabilityByEnum(e Enum) (Capability, bool) {
	for i := range NumCapabilities {
		if capEnums[i] == e {
			return i, true
		}
	}
	return 0, false
}

// EnableState is the set of enabled capabilities. There is one bit for
// each Capability.
type EnableState struct {
	Bits uint32
}

// SetDefaults sets the GL reset state. Dithering and multisampling are
// enabled by default.
func (s *EnableState) SetDefaults() {
	s.Bits = 1<<CapDither | 1<<CapMultisample
}

// Set enables or disables the capability.
func (s *EnableState) Set(c Capability, enable bool) {
	if enable {
		s.Bits |= 1 << c
	} else {
		s.Bits &^= 1 << c
	}
}

// IsEnabled returns true if the capability is enabled.
func (s *EnableState) IsEnabled(c Capability) bool {
	return s.Bits&(1<<c) != 0
}

// Apply every capability.
func (s *EnableState) Apply(ctx Context) {
	s.applyBits(ctx, 1<<NumCapabilities-1)
}

// applyBits applies only the capabilities in the mask.
func (s *EnableState) applyBits(ctx Context, mask uint32) {
	for i := range NumCapabilities {
		if mask&(1<<i) != 0 {
			setCap(ctx, capEnums[i], s.Bits&(1<<i) != 0)
		}
	}
}

// Get reads every capability from the context.
func (s *EnableState) Get(ctx Context) {
	s.Bits = 0
	for i := range NumCapabilities {
		if ctx.IsEnabled(capEnums[i]) {
			s.Bits |= 1 << i
		}
	}
}

// DeprCapability identifies a bit in EnableStateDepr.
type DeprCapability int

// List of deprecated fixed function capabilities.
const (
	CapDeprAlphaTest DeprCapability = iota
	CapDeprColorMaterial
	CapDeprFog
	CapDeprLighting
	CapDeprLineStipple
	CapDeprPolygonStipple
	NumDeprCapabilities
)

var deprCapEnums = [NumDeprCapabilities]Enum{
	CapDeprAlphaTest:      AlphaTest,
	CapDeprColorMaterial:  ColorMaterial,
	CapDeprFog:            Fog,
	CapDeprLighting:       Lighting,
	CapDeprLineStipple:    LineStipple,
	CapDeprPolygonStipple: PolygonStipple,
}

// Enum returns the GL capability.
func (c DeprCapability) Enum() Enum {
	return deprCapEnums[c]
}

func (c DeprCapability) String() string {
	return deprCapEnums[c].String()
}

// DeprCapabilityByEnum returns the DeprCapability for the GL capability.
func DeprCapabilityByEnum(e Enum) (DeprCapability, bool) {
	for i := range NumDeprCapabilities {
		if deprCapEnums[i] == e {
			return i, true
		}
	}
	return 0, false
}

// EnableStateDepr is the set of enabled fixed function capabilities.
type EnableStateDepr struct {
	Bits uint32
}

// SetDefaults sets the GL reset state. All fixed function capabilities are
// disabled.
func (s *EnableStateDepr) SetDefaults() {
	s.Bits = 0
}

// Set enables or disables the capability.
func (s *EnableStateDepr) Set(c DeprCapability, enable bool) {
	if enable {
		s.Bits |= 1 << c
	} else {
		s.Bits &^= 1 << c
	}
}

// IsEnabled returns true if the capability is enabled.
func (s *EnableStateDepr) IsEnabled(c DeprCapability) bool {
	return s.Bits&(1<<c) != 0
}

// Apply every capability.
func (s *EnableStateDepr) Apply(ctx Context) {
	s.applyBits(ctx, 1<<NumDeprCapabilities-1)
}

func (s *EnableStateDepr) applyBits(ctx Context, mask uint32) {
	for i := range NumDeprCapabilities {
		if mask&(1<<i) != 0 {
			setCap(ctx, deprCapEnums[i], s.Bits&(1<<i) != 0)
		}
	}
}

// Get reads every capability from the context.
func (s *EnableStateDepr) Get(ctx Context) {
	s.Bits = 0
	for i := range NumDeprCapabilities {
		if ctx.IsEnabled(deprCapEnums[i]) {
			s.Bits |= 1 << i
		}
	}
}
