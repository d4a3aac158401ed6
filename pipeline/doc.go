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

// Package pipeline binds vertex input layouts to the active attributes of a
// shader program.
//
// An InputLayout describes the vertex channels provided by the application:
// a semantic name and index, a format and the vertex buffer slot the channel
// is read from. Setup() matches the layout against the attributes reflected
// from the program. The result is replayed at draw time by Apply() and
// BindVertexBuffers().
//
// There are two binders. Legacy re-specifies attribute pointers whenever a
// vertex buffer changes. Core uses separate attribute formats and only
// rebinds the buffer for the slot that changed.
//
// Byte offsets are a running sum over every entry in the layout, including
// entries that are not consumed by the program. Entries for the same slot
// are expected to be adjacent in the layout.
//
// As with the glstate package, binders are bound to the thread that owns
// the GL context.
package pipeline
