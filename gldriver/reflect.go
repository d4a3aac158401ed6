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

package gldriver

import (
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/lightmass/lightmass/pipeline"
)

// ActiveAttributes lists the active vertex attributes of a linked program.
// Built-in attributes, reported with a location of -1, are not included.
func (drv *Driver) ActiveAttributes(program uint32) ([]pipeline.Attribute, error) {
	var count int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)

	var maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}

	attrs := make([]pipeline.Attribute, 0, count)
	buf := make([]uint8, maxLen)

	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(program, i, maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])

		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			continue
		}

		semantic, index := pipeline.SplitSemantic(name)
		attrs = append(attrs, pipeline.Attribute{
			Semantic:      semantic,
			SemanticIndex: index,
			Location:      uint32(loc),
		})
	}

	return attrs, drv.CheckError("active attributes")
}
