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

// Package prefs holds typed preference values and persists them to disk.
//
// The Bool, Int, Float and String types hold a single value each. Values are
// stored atomically so that a preference can be read from a goroutine other
// than the one that sets it. The hook functions are called before and after
// every Set(), even if the value has not changed.
//
// A Disk instance associates preference values with keys and loads and
// saves them to a file. The file format is one "key :: value" entry per
// line, preceded by a warning line. Saving preserves entries in the file
// that the Disk instance does not know about, so more than one Disk can
// share a file.
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("device.coreonly", &p.CoreOnly)
//	err = dsk.Load(true)
//
// Values on the command line stack override values loaded from disk. See
// PushCommandLineStack().
package prefs
