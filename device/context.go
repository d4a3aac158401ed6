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

package device

import (
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
)

// DrawContext is a context that can set state, bind vertex input and draw.
// Both the gldriver and softgl packages provide a DrawContext.
type DrawContext interface {
	glstate.Context
	pipeline.Context

	DrawArrays(mode glstate.Enum, first, count int32)
	DrawArraysInstanced(mode glstate.Enum, first, count, instances int32)
	DrawElements(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr)
	DrawElementsInstanced(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr, instances int32)
}

// Reflector lists the active vertex attributes of a linked program.
type Reflector interface {
	ActiveAttributes(program uint32) ([]pipeline.Attribute, error)
}
