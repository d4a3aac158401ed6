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

// Package softgl is a software model of the OpenGL pipeline state. It
// implements the glstate.Context and pipeline.Context interfaces and the
// draw calls used by the device package.
//
// No rendering is performed. The context records the state that a real
// driver would hold, follows the GL rules for the non-indexed entry points
// that update every index of an indexed value, and raises GL errors for
// unknown enumerations and out of range indices. Calls are counted and can
// optionally be logged.
//
// A Snapshot of the observable state is a comparable value. Two contexts
// that have reached the same configuration by different sequences of calls
// produce equal snapshots.
package softgl
