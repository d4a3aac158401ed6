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

// Package sdlcontext creates an SDL window with an OpenGL context, and runs
// the dear imgui platform layer for that window.
//
// Context is enough for a program that only needs a current GL context. The
// window can be hidden for that purpose. Window adds an imgui context, the
// imgui renderer and the state inspector from the inspector package, and is
// serviced one frame at a time by calling Service().
//
// SDL requires that all calls are made from the main thread. New() locks the
// calling goroutine to its OS thread. The GL context is current on that
// thread for the lifetime of the Context.
package sdlcontext
