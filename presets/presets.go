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

package presets

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/pelletier/go-toml/v2"
)

// Error patterns.
const (
	ParseError    = "presets: %v"
	SyntaxError   = "presets: line %d, column %d: %s"
	UnknownField  = "presets: unknown key (%s)"
	NoName        = "presets: preset %d has no name"
	DuplicateName = "presets: duplicate preset name (%s)"
	UnknownBase   = "presets: %s: unknown base preset (%s)"
	UnknownEnum   = "presets: %s: unknown %s (%s)"
	BadLength     = "presets: %s: %s needs %d values"
	BadValue      = "presets: %s: %s out of range (%d)"
)

// Preset is a named render state.
type Preset struct {
	Name      string
	State     glstate.State
	Primitive glstate.Enum
}

// the layout of a presets file. every key is optional except the name.
type file struct {
	Preset []entry `toml:"preset"`
}

type entry struct {
	Name      string    `toml:"name"`
	Base      string    `toml:"base"`
	Primitive string    `toml:"primitive"`
	Program   uint32    `toml:"program"`
	Enable    []string  `toml:"enable"`
	Disable   []string  `toml:"disable"`
	Clip      []int     `toml:"clip"`
	LogicOp   string    `toml:"logic_op"`
	ColorMask []bool    `toml:"color_mask"`
	Viewport  []float32 `toml:"viewport"`
	Scissor   []int32   `toml:"scissor"`

	Blend   *blendEntry   `toml:"blend"`
	Depth   *depthEntry   `toml:"depth"`
	Stencil *stencilEntry `toml:"stencil"`
	Raster  *rasterEntry  `toml:"raster"`
}

type blendEntry struct {
	Src           string    `toml:"src"`
	Dst           string    `toml:"dst"`
	SrcAlpha      string    `toml:"src_alpha"`
	DstAlpha      string    `toml:"dst_alpha"`
	Equation      string    `toml:"equation"`
	EquationAlpha string    `toml:"equation_alpha"`
	Color         []float32 `toml:"color"`
}

type depthEntry struct {
	Func string   `toml:"func"`
	Mask *bool    `toml:"mask"`
	Near *float64 `toml:"near"`
	Far  *float64 `toml:"far"`
}

type stencilEntry struct {
	Func      string  `toml:"func"`
	Ref       int32   `toml:"ref"`
	Mask      *uint32 `toml:"mask"`
	Fail      string  `toml:"fail"`
	ZFail     string  `toml:"zfail"`
	ZPass     string  `toml:"zpass"`
	WriteMask *uint32 `toml:"write_mask"`
}

type rasterEntry struct {
	FrontFace    string   `toml:"front_face"`
	CullFace     string   `toml:"cull_face"`
	PolygonMode  string   `toml:"polygon_mode"`
	LineWidth    *float32 `toml:"line_width"`
	PointSize    *float32 `toml:"point_size"`
	OffsetFactor *float32 `toml:"offset_factor"`
	OffsetUnits  *float32 `toml:"offset_units"`
}

// Load reads the presets in the named file.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ParseError, err)
	}
	return Parse(data)
}

// Parse reads the presets in the TOML data. Presets are returned in the
// order they are defined.
func Parse(data []byte) ([]Preset, error) {
	var f file

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(&f)
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, curated.Errorf(SyntaxError, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			return nil, curated.Errorf(UnknownField, strings.Join(serr.Errors[0].Key(), "."))
		}
		return nil, curated.Errorf(ParseError, err)
	}

	presets := make([]Preset, 0, len(f.Preset))
	byName := make(map[string]int, len(f.Preset))

	for i, e := range f.Preset {
		if e.Name == "" {
			return nil, curated.Errorf(NoName, i)
		}
		if _, ok := byName[e.Name]; ok {
			return nil, curated.Errorf(DuplicateName, e.Name)
		}

		p := Preset{
			Name:      e.Name,
			State:     glstate.NewState(),
			Primitive: glstate.Triangles,
		}
		if e.Base != "" {
			b, ok := byName[e.Base]
			if !ok {
				return nil, curated.Errorf(UnknownBase, e.Name, e.Base)
			}
			p.State = presets[b].State
			p.Primitive = presets[b].Primitive
		}

		err := e.apply(&p)
		if err != nil {
			return nil, err
		}

		byName[e.Name] = len(presets)
		presets = append(presets, p)
	}

	return presets, nil
}
