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

// Package paths prepares paths to Lightmass resources: the preferences file,
// state preset files and profiling output.
//
// ResourcePath() joins the supplied sub-path and file name to the base
// resource directory, creating the directory if necessary.
//
//	pth, err := paths.ResourcePath("presets", "default.toml")
//
// In development builds the base directory is ".lightmass" in the current
// working directory. In release builds (the "release" build tag) the base
// directory is "lightmass" in the user's config directory, as reported by
// os.UserConfigDir().
package paths
