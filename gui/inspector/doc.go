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

// Package inspector is a dear imgui window that shows the contents of a
// glstate.System, and an imgui renderer that draws through a device.Device.
//
// The renderer uses the same state System as the application. Its render
// state is registered as one pipeline per scissor rectangle, so that moving
// from one imgui draw command to the next is a transition that changes only
// the scissor slice. The inspector can therefore show its own pipelines
// alongside those of the application.
//
// The package must be used on the thread that owns the GL context and the
// imgui context.
package inspector
