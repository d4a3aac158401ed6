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

// Package modalflag extends the flag package in the standard library with
// modes. A mode is a word on the command line that selects which group of
// flags is parsed next. For example:
//
//	lightmass BENCH -states 1000
//	lightmass PRESETS -diff opaque,additive presets.toml
//
// A Modes instance is given the arguments with NewArgs(). Flags and the list
// of accepted sub-modes are added and Parse() is called. If sub-modes were
// added, Mode() returns the mode selected by the first remaining argument.
// The first sub-mode is the default mode when no mode is named.
//
// Parse() handles the -help flag itself and returns ParseHelp when help has
// been printed.
package modalflag
