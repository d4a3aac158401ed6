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

//go:build glcore

package gldriver

import "github.com/lightmass/lightmass/glstate"

// CoreOnly is true if the driver was built without the deprecated entry
// points.
const CoreOnly = true

func initDeprecated() error {
	return nil
}

func (drv *Driver) AlphaFunc(_ glstate.Enum, _ float32) {}

func (drv *Driver) ShadeModel(_ glstate.Enum) {}

func (drv *Driver) LineStipple(_ int32, _ uint16) {}
