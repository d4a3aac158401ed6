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

package pipeline

import (
	"strconv"
	"strings"
)

// SplitSemantic divides a vertex attribute name into a semantic and a
// semantic index. Any array suffix is removed first. Trailing decimal
// digits form the index.
//
//	"POSITION"   -> "POSITION", 0
//	"TEXCOORD1"  -> "TEXCOORD", 1
//	"COLOR[0]"   -> "COLOR", 0
//	"BONES12[0]" -> "BONES", 12
func SplitSemantic(name string) (string, int) {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}

	// a name made only of digits has no semantic
	if i == len(name) || i == 0 {
		return name, 0
	}

	idx, err := strconv.Atoi(name[i:])
	if err != nil {
		return name, 0
	}
	return name[:i], idx
}
