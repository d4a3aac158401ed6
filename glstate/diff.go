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

import "strings"

// ContentBits has one bit for each slice of State.
type ContentBits uint32

// List of ContentBits values. The order is the order in which slices are
// applied.
const (
	DiffEnable ContentBits = 1 << iota
	DiffEnableDepr
	DiffProgram
	DiffClip
	DiffAlphaDepr
	DiffBlend
	DiffDepthRange
	DiffDepth
	DiffStencil
	DiffLogic
	DiffPrimitive
	DiffRaster
	DiffRasterDepr
	DiffSample
	DiffViewport
	DiffScissorEnable
	DiffScissor
	DiffMask
	DiffFBO
	DiffVertexFormat
	DiffVertexEnable

	DiffAll = DiffVertexEnable<<1 - 1
)

// the content bits of the deprecated slices
const diffDeprecated = DiffEnableDepr | DiffAlphaDepr | DiffRasterDepr

var contentNames = []string{
	"enable", "enabledepr", "program", "clip", "alphadepr", "blend",
	"depthrange", "depth", "stencil", "logic", "primitive", "raster",
	"rasterdepr", "sample", "viewport", "scissorenable", "scissor", "mask",
	"fbo", "vertexformat", "vertexenable",
}

func (b ContentBits) String() string {
	if b == 0 {
		return "none"
	}
	s := make([]string, 0, len(contentNames))
	for i, n := range contentNames {
		if b&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, "|")
}

// StateDiff describes which parts of two State values differ. ContentBits
// names the slices that differ. The other fields name the individual
// capabilities, attributes and binding points that differ in the slices
// that have internal bitfields.
//
// A zero StateDiff means that the two states are identical.
type StateDiff struct {
	ContentBits   ContentBits
	StateBits     uint32
	StateDeprBits uint32
	VertexEnable  uint32
	VertexFormat  uint32
	VertexBinding uint32
}

// IsZero returns true if the diff describes no changes.
func (d StateDiff) IsZero() bool {
	return d == StateDiff{}
}

// Has returns true if any of the content bits are set.
func (d StateDiff) Has(bits ContentBits) bool {
	return d.ContentBits&bits != 0
}

// FullDiff returns a StateDiff with every bit set. Applying a full diff is
// the same as applying every slice unconditionally.
func FullDiff() StateDiff {
	return StateDiff{
		ContentBits:   DiffAll,
		StateBits:     1<<NumCapabilities - 1,
		StateDeprBits: 1<<NumDeprCapabilities - 1,
		VertexEnable:  1<<MaxVertexAttribs - 1,
		VertexFormat:  1<<MaxVertexAttribs - 1,
		VertexBinding: 1<<MaxVertexBindings - 1,
	}
}

// MakeDiff compares two states field by field. Applying the diff to a
// context in the from state leaves the context in the to state.
//
// The blend enable of the draw buffers is shared between EnableState and
// BlendState. If the to state uses separate blending and CapBlend changes
// then the blend slice is marked as changed, so that the per-buffer enables
// are reapplied after the global enable. If the from state uses separate
// blending and the to state does not then CapBlend is marked as changed, so
// that the global enable overwrites the per-buffer enables.
func MakeDiff(from, to *State) StateDiff {
	var d StateDiff

	d.StateBits = from.Enable.Bits ^ to.Enable.Bits
	d.StateDeprBits = from.EnableDepr.Bits ^ to.EnableDepr.Bits
	d.VertexEnable = from.VertexEnable.Enabled ^ to.VertexEnable.Enabled

	for i := range MaxVertexAttribs {
		if from.VertexFormat.Formats[i] != to.VertexFormat.Formats[i] {
			d.VertexFormat |= 1 << i
		}
	}
	for i := range MaxVertexBindings {
		if from.VertexFormat.Bindings[i] != to.VertexFormat.Bindings[i] {
			d.VertexBinding |= 1 << i
		}
	}

	if from.Program != to.Program {
		d.ContentBits |= DiffProgram
	}
	if from.Clip != to.Clip {
		d.ContentBits |= DiffClip
	}
	if from.AlphaDepr != to.AlphaDepr {
		d.ContentBits |= DiffAlphaDepr
	}
	if from.Blend != to.Blend {
		d.ContentBits |= DiffBlend
	}
	if from.DepthRange != to.DepthRange {
		d.ContentBits |= DiffDepthRange
	}
	if from.Depth != to.Depth {
		d.ContentBits |= DiffDepth
	}
	if from.Stencil != to.Stencil {
		d.ContentBits |= DiffStencil
	}
	if from.Logic != to.Logic {
		d.ContentBits |= DiffLogic
	}
	if from.Primitive != to.Primitive {
		d.ContentBits |= DiffPrimitive
	}
	if from.Raster != to.Raster {
		d.ContentBits |= DiffRaster
	}
	if from.RasterDepr != to.RasterDepr {
		d.ContentBits |= DiffRasterDepr
	}
	if from.Sample != to.Sample {
		d.ContentBits |= DiffSample
	}
	if from.Viewport != to.Viewport {
		d.ContentBits |= DiffViewport
	}
	if from.ScissorEnable != to.ScissorEnable {
		d.ContentBits |= DiffScissorEnable
	}
	if from.Scissor != to.Scissor {
		d.ContentBits |= DiffScissor
	}
	if from.Mask != to.Mask {
		d.ContentBits |= DiffMask
	}
	if from.FBO != to.FBO {
		d.ContentBits |= DiffFBO
	}

	// dependencies between blend enables
	const blendBit = 1 << CapBlend
	if to.Blend.UseSeparate && d.StateBits&blendBit != 0 {
		d.ContentBits |= DiffBlend
	}
	if from.Blend.UseSeparate && !to.Blend.UseSeparate {
		d.StateBits |= blendBit
	}

	if d.StateBits != 0 {
		d.ContentBits |= DiffEnable
	}
	if d.StateDeprBits != 0 {
		d.ContentBits |= DiffEnableDepr
	}
	if d.VertexFormat != 0 || d.VertexBinding != 0 {
		d.ContentBits |= DiffVertexFormat
	}
	if d.VertexEnable != 0 {
		d.ContentBits |= DiffVertexEnable
	}

	return d
}

// applyEntry associates a content bit with the function that applies that
// slice of the state.
type applyEntry struct {
	bit   ContentBits
	apply func(ctx Context, d *StateDiff, st *State)
}

// applyTable is in the order slices are applied. EnableState must be
// applied before BlendState.
var applyTable = [...]applyEntry{
	{DiffEnable, func(ctx Context, d *StateDiff, st *State) { st.Enable.applyBits(ctx, d.StateBits) }},
	{DiffEnableDepr, func(ctx Context, d *StateDiff, st *State) { st.EnableDepr.applyBits(ctx, d.StateDeprBits) }},
	{DiffProgram, func(ctx Context, _ *StateDiff, st *State) { st.Program.Apply(ctx) }},
	{DiffClip, func(ctx Context, _ *StateDiff, st *State) { st.Clip.Apply(ctx) }},
	{DiffAlphaDepr, func(ctx Context, _ *StateDiff, st *State) { st.AlphaDepr.Apply(ctx) }},
	{DiffBlend, func(ctx Context, _ *StateDiff, st *State) { st.Blend.Apply(ctx) }},
	{DiffDepthRange, func(ctx Context, _ *StateDiff, st *State) { st.DepthRange.Apply(ctx) }},
	{DiffDepth, func(ctx Context, _ *StateDiff, st *State) { st.Depth.Apply(ctx) }},
	{DiffStencil, func(ctx Context, _ *StateDiff, st *State) { st.Stencil.Apply(ctx) }},
	{DiffLogic, func(ctx Context, _ *StateDiff, st *State) { st.Logic.Apply(ctx) }},
	{DiffPrimitive, func(ctx Context, _ *StateDiff, st *State) { st.Primitive.Apply(ctx) }},
	{DiffRaster, func(ctx Context, _ *StateDiff, st *State) { st.Raster.Apply(ctx) }},
	{DiffRasterDepr, func(ctx Context, _ *StateDiff, st *State) { st.RasterDepr.Apply(ctx) }},
	{DiffSample, func(ctx Context, _ *StateDiff, st *State) { st.Sample.Apply(ctx) }},
	{DiffViewport, func(ctx Context, _ *StateDiff, st *State) { st.Viewport.Apply(ctx) }},
	{DiffScissorEnable, func(ctx Context, _ *StateDiff, st *State) { st.ScissorEnable.Apply(ctx) }},
	{DiffScissor, func(ctx Context, _ *StateDiff, st *State) { st.Scissor.Apply(ctx) }},
	{DiffMask, func(ctx Context, _ *StateDiff, st *State) { st.Mask.Apply(ctx) }},
	{DiffFBO, func(ctx Context, _ *StateDiff, st *State) { st.FBO.Apply(ctx) }},
	{DiffVertexFormat, func(ctx Context, d *StateDiff, st *State) {
		st.VertexFormat.applyFormats(ctx, d.VertexFormat)
		st.VertexFormat.applyBindings(ctx, d.VertexBinding)
	}},
	{DiffVertexEnable, func(ctx Context, d *StateDiff, st *State) { st.VertexEnable.applyBits(ctx, d.VertexEnable) }},
}

// skipBits returns the content bits that are never applied.
func skipBits(coreOnly bool) ContentBits {
	if coreOnly {
		return diffDeprecated
	}
	return 0
}

// applyDiff pushes the values from st for every slice named in the diff.
// Only the to state is read.
func applyDiff(ctx Context, table []applyEntry, d *StateDiff, st *State, skip ContentBits) {
	bits := d.ContentBits &^ skip
	if bits == 0 {
		return
	}
	for i := range table {
		if bits&table[i].bit != 0 {
			table[i].apply(ctx, d, st)
		}
	}
}
