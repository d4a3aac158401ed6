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

//go:build !glcore

package gldriver

import (
	compat "github.com/go-gl/gl/v2.1/gl"
	"github.com/lightmass/lightmass/glstate"
)

// CoreOnly is true if the driver was built without the deprecated entry
// points.
const CoreOnly = false

func initDeprecated() error {
	return compat.Init()
}

func (drv *Driver) AlphaFunc(fn glstate.Enum, ref float32) {
	compat.AlphaFunc(uint32(fn), ref)
}

func (drv *Driver) ShadeModel(mode glstate.Enum) {
	compat.ShadeModel(uint32(mode))
}

func (drv *Driver) LineStipple(factor int32, pattern uint16) {
	compat.LineStipple(factor, pattern)
}
