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

// Package logger is the central log for Lightmass. Messages from device
// setup, the GL driver layer and preset loading are all sent here.
//
// Every log request carries a Permission. A request with a permission that
// does not allow logging is discarded. The Allow permission always allows
// logging.
//
// Consecutive identical entries are compacted into a single entry with a
// repeat count. The central log holds a limited number of entries and the
// oldest entries are dropped when the limit is reached.
package logger
