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

// Package device ties the render state System and the pipeline binders to a
// context that can draw.
//
// A RenderPipeline is created from an input layout, a linked program and a
// render state. The render state is registered with the System and every
// draw applies the transition from the state that was applied by the
// previous draw.
//
// Creation failures are reported through the message sink and the creating
// function returns nil. Callers should treat a nil pipeline as a feature
// that is unavailable. Drawing with a nil pipeline is reported and skipped.
//
// The Device and everything created by it must only be used from the thread
// that owns the GL context. No locks are taken. Building with the assertions
// tag makes a call from any other goroutine than the one that created the
// Device panic.
package device
