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

package pipeline

import "github.com/lightmass/lightmass/glstate"

// Context is the set of GL entry points used to describe and bind vertex
// input.
type Context interface {
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	VertexAttribFormat(index uint32, size int32, xtype glstate.Enum, normalized bool, relativeOffset uint32)
	VertexAttribIFormat(index uint32, size int32, xtype glstate.Enum, relativeOffset uint32)
	VertexAttribBinding(index uint32, binding uint32)
	VertexBindingDivisor(binding uint32, divisor uint32)
	BindVertexBuffer(binding uint32, buffer uint32, offset int, stride int32)

	VertexAttribDivisor(index uint32, divisor uint32)
	BindBuffer(target glstate.Enum, buffer uint32)
	VertexAttribPointer(index uint32, size int32, xtype glstate.Enum, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, xtype glstate.Enum, stride int32, offset uintptr)
}

// AddressRangeBinder is implemented by contexts that can bind a vertex
// buffer by GPU address rather than by buffer object.
type AddressRangeBinder interface {
	BufferAddressRange(binding uint32, address uint64, length int)
}
