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

// MaxClipPlanes is the number of clip distances in ClipDistanceState.
const MaxClipPlanes = 8

// ClipDistanceState is the enable bit of every clip distance.
type ClipDistanceState struct {
	Enabled uint32
}

// SetDefaults sets the GL reset state. All clip distances are disabled.
func (s *ClipDistanceState) SetDefaults() {
	s.Enabled = 0
}

// Apply clip distance state.
func (s *ClipDistanceState) Apply(ctx Context) {
	for i := range MaxClipPlanes {
		setCap(ctx, ClipDistance0+Enum(i), s.Enabled&(1<<i) != 0)
	}
}

// Get clip distance state from the context.
func (s *ClipDistanceState) Get(ctx Context) {
	s.Enabled = 0
	for i := range MaxClipPlanes {
		if ctx.IsEnabled(ClipDistance0 + Enum(i)) {
			s.Enabled |= 1 << i
		}
	}
}

// AlphaStateDepr is the fixed function alpha test.
type AlphaStateDepr struct {
	Func Enum
	Ref  float32
}

// SetDefaults sets the GL reset state.
func (s *AlphaStateDepr) SetDefaults() {
	s.Func = Always
	s.Ref = 0
}

// Apply alpha test state.
func (s *AlphaStateDepr) Apply(ctx Context) {
	ctx.AlphaFunc(s.Func, s.Ref)
}

// Get alpha test state from the context.
func (s *AlphaStateDepr) Get(ctx Context) {
	s.Func = getEnum(ctx, QueryAlphaTestFunc)
	s.Ref = getFloat(ctx, QueryAlphaTestRef)
}

// LogicState is the logical operation used when CapColorLogicOp is enabled.
type LogicState struct {
	Op Enum
}

// SetDefaults sets the GL reset state.
func (s *LogicState) SetDefaults() {
	s.Op = Copy
}

// Apply logic op state.
func (s *LogicState) Apply(ctx Context) {
	ctx.LogicOp(s.Op)
}

// Get logic op state from the context.
func (s *LogicState) Get(ctx Context) {
	s.Op = getEnum(ctx, QueryLogicOpMode)
}

// PrimitiveState is the primitive restart index and the number of vertices
// in a patch.
type PrimitiveState struct {
	RestartIndex  uint32
	PatchVertices int32
}

// SetDefaults sets the GL reset state.
func (s *PrimitiveState) SetDefaults() {
	s.RestartIndex = 0
	s.PatchVertices = 3
}

// Apply primitive state.
func (s *PrimitiveState) Apply(ctx Context) {
	ctx.PrimitiveRestartIndex(s.RestartIndex)
	ctx.PatchParameteri(QueryPatchVertices, s.PatchVertices)
}

// Get primitive state from the context.
func (s *PrimitiveState) Get(ctx Context) {
	s.RestartIndex = uint32(getInt(ctx, QueryPrimitiveRestartIndex))
	s.PatchVertices = getInt(ctx, QueryPatchVertices)
}

// SampleState is the multisample coverage, sample mask and minimum sample
// shading rate.
type SampleState struct {
	Coverage   float32
	Invert     bool
	Mask       uint32
	MinShading float32
}

// SetDefaults sets the GL reset state.
func (s *SampleState) SetDefaults() {
	s.Coverage = 1
	s.Invert = false
	s.Mask = ^uint32(0)
	s.MinShading = 0
}

// Apply sample state.
func (s *SampleState) Apply(ctx Context) {
	ctx.SampleCoverage(s.Coverage, s.Invert)
	ctx.SampleMaski(0, s.Mask)
	ctx.MinSampleShading(s.MinShading)
}

// Get sample state from the context.
func (s *SampleState) Get(ctx Context) {
	s.Coverage = getFloat(ctx, QuerySampleCoverageValue)
	s.Invert = getBool(ctx, QuerySampleCoverageInvert)
	s.Mask = uint32(getEnumi(ctx, QuerySampleMaskValue, 0))
	s.MinShading = getFloat(ctx, QueryMinSampleShadingValue)
}

// RasterState is the rasteriser configuration. Culling and polygon offset
// are enabled with capabilities in EnableState.
//
// PolyMode is applied to both faces because a core profile context only
// accepts FRONT_AND_BACK.
type RasterState struct {
	FrontFace         Enum
	CullFace          Enum
	PolyOffsetFactor  float32
	PolyOffsetUnits   float32
	PolyMode          Enum
	LineWidth         float32
	PointSize         float32
	PointFade         float32
	PointSpriteOrigin Enum
}

// SetDefaults sets the GL reset state.
func (s *RasterState) SetDefaults() {
	s.FrontFace = CCW
	s.CullFace = Back
	s.PolyOffsetFactor = 0
	s.PolyOffsetUnits = 0
	s.PolyMode = Fill
	s.LineWidth = 1
	s.PointSize = 1
	s.PointFade = 1
	s.PointSpriteOrigin = UpperLeft
}

// Apply raster state.
func (s *RasterState) Apply(ctx Context) {
	ctx.FrontFace(s.FrontFace)
	ctx.CullFace(s.CullFace)
	ctx.PolygonOffset(s.PolyOffsetFactor, s.PolyOffsetUnits)
	ctx.PolygonMode(FrontAndBack, s.PolyMode)
	ctx.LineWidth(s.LineWidth)
	ctx.PointSize(s.PointSize)
	ctx.PointParameterf(QueryPointFadeThresholdSize, s.PointFade)
	ctx.PointParameteri(QueryPointSpriteCoordOrigin, int32(s.PointSpriteOrigin))
}

// Get raster state from the context. The polygon mode of the front face is
// used.
func (s *RasterState) Get(ctx Context) {
	var mode [2]int32
	s.FrontFace = getEnum(ctx, QueryFrontFace)
	s.CullFace = getEnum(ctx, QueryCullFaceMode)
	s.PolyOffsetFactor = getFloat(ctx, QueryPolygonOffsetFactor)
	s.PolyOffsetUnits = getFloat(ctx, QueryPolygonOffsetUnits)
	ctx.GetIntegerv(QueryPolygonMode, mode[:])
	s.PolyMode = Enum(mode[0])
	s.LineWidth = getFloat(ctx, QueryLineWidth)
	s.PointSize = getFloat(ctx, QueryPointSize)
	s.PointFade = getFloat(ctx, QueryPointFadeThresholdSize)
	s.PointSpriteOrigin = getEnum(ctx, QueryPointSpriteCoordOrigin)
}

// RasterStateDepr is the fixed function shading model and line stipple.
type RasterStateDepr struct {
	ShadeModel         Enum
	LineStippleFactor  int32
	LineStipplePattern uint16
}

// SetDefaults sets the GL reset state.
func (s *RasterStateDepr) SetDefaults() {
	s.ShadeModel = Smooth
	s.LineStippleFactor = 1
	s.LineStipplePattern = 0xffff
}

// Apply fixed function raster state.
func (s *RasterStateDepr) Apply(ctx Context) {
	ctx.ShadeModel(s.ShadeModel)
	ctx.LineStipple(s.LineStippleFactor, s.LineStipplePattern)
}

// Get fixed function raster state from the context.
func (s *RasterStateDepr) Get(ctx Context) {
	s.ShadeModel = getEnum(ctx, QueryShadeModel)
	s.LineStippleFactor = getInt(ctx, QueryLineStippleRepeat)
	s.LineStipplePattern = uint16(getInt(ctx, QueryLineStipplePattern))
}
