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

// Package performance contains helper functions relating to performance.
//
// RunBench() measures the cost of applying a sequence of render states to a
// software context, first by applying every state in full and then by
// applying only the difference from the previous state. The two runs must
// leave the context in the same state.
//
// ProfileCPU() and ProfileMem() write pprof compatible profiles. They can be
// wrapped around RunBench() or any other function.
package performance
