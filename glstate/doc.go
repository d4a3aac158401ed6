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

// Package glstate models OpenGL pipeline state as plain values, computes the
// difference between two state values, and applies the difference to a GL
// context with the smallest number of driver calls.
//
// State is an aggregate of slices. Each slice is a comparable struct
// describing one orthogonal part of the pipeline: blending, depth, stencil,
// rasterisation, viewports, vertex formats and so on. Every slice can apply
// itself to a Context unconditionally and can read itself back from a
// Context.
//
// System owns a pool of State values identified by StateID. The
// ApplyTransition() function applies a state given the state that was
// previously applied, using a per-slot cache of StateDiff values.
//
// Several slices hold per draw buffer or per viewport values together with a
// "use separate" flag. When the flag is false the value in slot zero is
// applied to all slots with the non-indexed GL entry point and the values in
// the other slots are ignored. When the flag is true every slot is applied
// with the indexed entry point.
//
// The deprecated slices (AlphaStateDepr, RasterStateDepr and
// EnableStateDepr) are never applied or read by a System created for a core
// profile context.
//
// None of the types in this package are safe for concurrent use. Every call
// must be made on the thread that owns the GL context.
package glstate
