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

package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
)

// Error patterns.
const (
	DriverError = "gldriver: %s: %s"
	ShaderError = "gldriver: shader: %s"
)

// maximum number of errors drained by a single call to CheckError(). a
// lost context can report an error forever.
const maxErrors = 16

// CheckError drains the GL error flags. The returned error names every
// error that was raised since the last call. The tag is used to identify
// the caller in the log and in the error message.
func (drv *Driver) CheckError(tag string) error {
	var errs []string
	for i := 0; i < maxErrors; i++ {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			break
		}
		errs = append(errs, glstate.Enum(e).String())
	}
	if len(errs) == 0 {
		return nil
	}
	s := strings.Join(errs, ", ")
	logger.Logf(logger.Allow, "gldriver", "%s: %s", tag, s)
	return curated.Errorf(DriverError, tag, s)
}
