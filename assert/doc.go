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

// Package assert checks the preconditions that the type system cannot. The
// checks are compiled in with the assertions build tag and are free
// otherwise.
//
// The Thread type records the goroutine that owns a GL context. Every type
// that uses the context is bound to that goroutine, and calling it from
// another goroutine is a programming error:
//
//	var th assert.Thread
//	th.Bind()
//	...
//	th.Check("draw")
//
// Goroutine identifiers are read from the runtime stack trace. They are used
// for debugging and testing only.
package assert
