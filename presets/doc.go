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

// Package presets reads named render states from TOML files.
//
// A file holds a list of presets. Each preset starts from the default state
// and overrides only the keys that are given. A preset may name an earlier
// preset in the same file as its base, in which case it starts from that
// preset instead.
//
//	[[preset]]
//	name = "transparent"
//	enable = ["BLEND", "DEPTH_TEST"]
//
//	[preset.blend]
//	src = "SRC_ALPHA"
//	dst = "ONE_MINUS_SRC_ALPHA"
//
//	[preset.depth]
//	mask = false
//
//	[[preset]]
//	name = "transparent-twosided"
//	base = "transparent"
//	disable = ["CULL_FACE"]
//
// GL enum values are given by name without the GL_ prefix.
//
// The Watcher type reloads a file when it changes on disk.
package presets
