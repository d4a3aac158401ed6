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

// Package curated provides the error type used throughout Lightmass.
//
// Curated errors are created with Errorf(). The first argument is a pattern
// and not a format string, because the pattern identifies the error in the
// Is() and Has() functions. Packages that return curated errors export their
// patterns as constants, for example:
//
//	const UnsupportedFormat = "pipeline: unsupported vertex format: %v"
//
//	if curated.Is(err, pipeline.UnsupportedFormat) {
//		...
//	}
//
// Has() checks whether a pattern occurs anywhere in the chain of wrapped
// curated errors.
//
//	e := curated.Errorf(pipeline.UnsupportedFormat, f)
//	f := curated.Errorf("device: create render pipeline: %v", e)
//
//	curated.Is(f, pipeline.UnsupportedFormat)  // false
//	curated.Has(f, pipeline.UnsupportedFormat) // true
//
// Chains are thought of as parts separated by ": ". The Error() function
// removes a duplicated leading part so that wrapping an error with the same
// prefix as the error being wrapped does not stutter. For example:
//
//	curated.Errorf("presets: %v", curated.Errorf("presets: unknown enum"))
//
// prints as "presets: unknown enum".
//
// The Sentinel type is for errors with fixed text that are compared by
// value. Sentinels can be wrapped by Errorf() and found with the standard
// library errors.Is() function.
package curated
