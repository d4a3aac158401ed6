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

package inspector

import (
	"fmt"

	"github.com/lightmass/lightmass/glstate"
)

// Row is the value of one slice of a State.
type Row struct {
	Slice string
	Value string

	// the value differs from the GL reset state
	Changed bool
}

type describer struct {
	bit   glstate.ContentBits
	value func(st *glstate.State) any
}

// in the order the slices are applied
var describers = []describer{
	{glstate.DiffEnable, func(st *glstate.State) any { return st.Enable }},
	{glstate.DiffEnableDepr, func(st *glstate.State) any { return st.EnableDepr }},
	{glstate.DiffProgram, func(st *glstate.State) any { return st.Program }},
	{glstate.DiffClip, func(st *glstate.State) any { return st.Clip }},
	{glstate.DiffAlphaDepr, func(st *glstate.State) any { return st.AlphaDepr }},
	{glstate.DiffBlend, func(st *glstate.State) any { return st.Blend }},
	{glstate.DiffDepthRange, func(st *glstate.State) any { return st.DepthRange }},
	{glstate.DiffDepth, func(st *glstate.State) any { return st.Depth }},
	{glstate.DiffStencil, func(st *glstate.State) any { return st.Stencil }},
	{glstate.DiffLogic, func(st *glstate.State) any { return st.Logic }},
	{glstate.DiffPrimitive, func(st *glstate.State) any { return st.Primitive }},
	{glstate.DiffRaster, func(st *glstate.State) any { return st.Raster }},
	{glstate.DiffRasterDepr, func(st *glstate.State) any { return st.RasterDepr }},
	{glstate.DiffSample, func(st *glstate.State) any { return st.Sample }},
	{glstate.DiffViewport, func(st *glstate.State) any { return st.Viewport }},
	{glstate.DiffScissorEnable, func(st *glstate.State) any { return st.ScissorEnable }},
	{glstate.DiffScissor, func(st *glstate.State) any { return st.Scissor }},
	{glstate.DiffMask, func(st *glstate.State) any { return st.Mask }},
	{glstate.DiffFBO, func(st *glstate.State) any { return st.FBO }},
	{glstate.DiffVertexFormat, func(st *glstate.State) any { return st.VertexFormat }},
	{glstate.DiffVertexEnable, func(st *glstate.State) any { return st.VertexEnable }},
}

const deprecated = glstate.DiffEnableDepr | glstate.DiffAlphaDepr | glstate.DiffRasterDepr

// Describe returns one row for every slice of the state. The deprecated
// slices are omitted if coreOnly is true.
func Describe(st *glstate.State, coreOnly bool) []Row {
	def := glstate.NewState()
	diff := glstate.MakeDiff(&def, st)

	rows := make([]Row, 0, len(describers))
	for _, d := range describers {
		if coreOnly && d.bit&deprecated != 0 {
			continue
		}
		rows = append(rows, Row{
			Slice:   d.bit.String(),
			Value:   fmt.Sprintf("%+v", d.value(st)),
			Changed: diff.Has(d.bit),
		})
	}
	return rows
}
