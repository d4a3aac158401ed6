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

// Package gldriver implements the glstate, pipeline and device context
// interfaces with the go-gl OpenGL bindings.
//
// Core profile entry points are taken from the 4.5 core bindings. The
// deprecated fixed function entry points are taken from the 2.1 bindings
// unless the glcore build tag is given, in which case they are no-ops.
//
// Errors raised by the driver are not checked after every call. Use
// CheckError() at points where an error is of interest.
//
// A GL context must be current on the calling thread before Init() is
// called, and every call must be made on that thread.
package gldriver
