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

// Package random generates render states and draw sequences for benchmarks
// and tests.
//
// States are built from the default state by a random number of random
// changes. Every value chosen is valid for the slice it is put in, so a
// generated state can always be applied to a context without error.
//
// If the same states are required every single time then create the
// generator with a zero seed. This is useful for testing purposes.
package random
