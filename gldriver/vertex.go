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

func (drv *Driver) VertexAttribFormat(index uint32, size int32, xtype glstate.Enum, normalized bool, relativeOffset uint32) {
	gl.VertexAttribFormat(index, size, uint32(xtype), normalized, relativeOffset)
}

func (drv *Driver) VertexAttribIFormat(index uint32, size int32, xtype glstate.Enum, relativeOffset uint32) {
	gl.VertexAttribIFormat(index, size, uint32(xtype), relativeOffset)
}

func (drv *Driver) VertexAttribBinding(index uint32, binding uint32) {
	gl.VertexAttribBinding(index, binding)
}

func (drv *Driver) VertexBindingDivisor(binding uint32, divisor uint32) {
	gl.VertexBindingDivisor(binding, divisor)
}

func (drv *Driver) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (drv *Driver) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (drv *Driver) BindVertexBuffer(binding uint32, buffer uint32, offset int, stride int32) {
	gl.BindVertexBuffer(binding, buffer, offset, stride)
}

func (drv *Driver) VertexAttribDivisor(index uint32, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

func (drv *Driver) BindBuffer(target glstate.Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (drv *Driver) VertexAttribPointer(index uint32, size int32, xtype glstate.Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (drv *Driver) VertexAttribIPointer(index uint32, size int32, xtype glstate.Enum, stride int32, offset uintptr) {
	gl.VertexAttribIPointer(index, size, uint32(xtype), stride, gl.PtrOffset(int(offset)))
}

func (drv *Driver) DrawArrays(mode glstate.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (drv *Driver) DrawArraysInstanced(mode glstate.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (drv *Driver) DrawElements(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(xtype), offset)
}

func (drv *Driver) DrawElementsInstanced(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(xtype), gl.PtrOffset(int(offset)), instances)
}
