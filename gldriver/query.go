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
	"github.com/lightmass/lightmass/glstate"
)

// the query functions take slices so that the caller decides how many
// values are read. an empty slice is ignored.

func (drv *Driver) GetIntegerv(pname glstate.Enum, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegerv(uint32(pname), &data[0])
}

func (drv *Driver) GetIntegeri(pname glstate.Enum, index uint32, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegeri_v(uint32(pname), index, &data[0])
}

func (drv *Driver) GetFloatv(pname glstate.Enum, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.GetFloatv(uint32(pname), &data[0])
}

func (drv *Driver) GetFloati(pname glstate.Enum, index uint32, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.GetFloati_v(uint32(pname), index, &data[0])
}

func (drv *Driver) GetDoublei(pname glstate.Enum, index uint32, data []float64) {
	if len(data) == 0 {
		return
	}
	gl.GetDoublei_v(uint32(pname), index, &data[0])
}

func (drv *Driver) GetBooleanv(pname glstate.Enum, data []bool) {
	if len(data) == 0 {
		return
	}
	gl.GetBooleanv(uint32(pname), &data[0])
}

func (drv *Driver) GetBooleani(pname glstate.Enum, index uint32, data []bool) {
	if len(data) == 0 {
		return
	}
	gl.GetBooleani_v(uint32(pname), index, &data[0])
}

func (drv *Driver) GetVertexAttribiv(index uint32, pname glstate.Enum, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetVertexAttribiv(index, uint32(pname), &data[0])
}
