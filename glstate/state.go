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

// State is one complete pipeline configuration. It is a plain value and can
// be copied and compared with the == operator.
type State struct {
	Clip          ClipDistanceState
	AlphaDepr     AlphaStateDepr
	Blend         BlendState
	Depth         DepthState
	Stencil       StencilState
	Logic         LogicState
	Primitive     PrimitiveState
	Sample        SampleState
	Raster        RasterState
	RasterDepr    RasterStateDepr
	DepthRange    DepthRangeState
	Viewport      ViewportState
	ScissorEnable ScissorEnableState
	Scissor       ScissorState
	Mask          MaskState
	FBO           FBOState
	VertexFormat  VertexFormatState
	VertexEnable  VertexEnableState
	Enable        EnableState
	EnableDepr    EnableStateDepr
	Program       ProgramState
}

// NewState returns a State equal to the GL reset state.
func NewState() State {
	var st State
	st.SetDefaults()
	return st
}

// SetDefaults sets every slice to the GL reset state.
func (st *State) SetDefaults() {
	st.Clip.SetDefaults()
	st.AlphaDepr.SetDefaults()
	st.Blend.SetDefaults()
	st.Depth.SetDefaults()
	st.Stencil.SetDefaults()
	st.Logic.SetDefaults()
	st.Primitive.SetDefaults()
	st.Sample.SetDefaults()
	st.Raster.SetDefaults()
	st.RasterDepr.SetDefaults()
	st.DepthRange.SetDefaults()
	st.Viewport.SetDefaults()
	st.ScissorEnable.SetDefaults()
	st.Scissor.SetDefaults()
	st.Mask.SetDefaults()
	st.FBO.SetDefaults()
	st.VertexFormat.SetDefaults()
	st.VertexEnable.SetDefaults()
	st.Enable.SetDefaults()
	st.EnableDepr.SetDefaults()
	st.Program.SetDefaults()
}

// Apply every slice to the context with no regard for the current state of
// the context. The deprecated slices are not applied if coreOnly is true.
func (st *State) Apply(ctx Context, coreOnly bool) {
	d := FullDiff()
	applyDiff(ctx, applyTable[:], &d, st, skipBits(coreOnly))
}

// Get reads every slice from the context. The deprecated slices are left
// unchanged if coreOnly is true.
func (st *State) Get(ctx Context, coreOnly bool) {
	st.Enable.Get(ctx)
	st.Program.Get(ctx)
	st.Clip.Get(ctx)
	st.Blend.Get(ctx)
	st.DepthRange.Get(ctx)
	st.Depth.Get(ctx)
	st.Stencil.Get(ctx)
	st.Logic.Get(ctx)
	st.Primitive.Get(ctx)
	st.Raster.Get(ctx)
	st.Sample.Get(ctx)
	st.Viewport.Get(ctx)
	st.ScissorEnable.Get(ctx)
	st.Scissor.Get(ctx)
	st.Mask.Get(ctx)
	st.FBO.Get(ctx)
	st.VertexFormat.Get(ctx)
	st.VertexEnable.Get(ctx)

	if !coreOnly {
		st.EnableDepr.Get(ctx)
		st.AlphaDepr.Get(ctx)
		st.RasterDepr.Get(ctx)
	}
}
