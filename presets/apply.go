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
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
)

// enum resolves a GL name. An empty name leaves the value unchanged.
func enum(preset string, what string, name string, v *glstate.Enum) error {
	if name == "" {
		return nil
	}
	e, ok := glstate.EnumByName(name)
	if !ok {
		return curated.Errorf(UnknownEnum, preset, what, name)
	}
	*v = e
	return nil
}

// setCap enables or disables the named capability in whichever slice
// manages it.
func setCap(preset string, st *glstate.State, name string, enable bool) error {
	e, ok := glstate.EnumByName(name)
	if !ok {
		return curated.Errorf(UnknownEnum, preset, "capability", name)
	}

	if e == glstate.ScissorTest {
		st.ScissorEnable.UseSeparate = false
		st.ScissorEnable.SeparateEnable = 0
		if enable {
			st.ScissorEnable.SeparateEnable = 1
		}
		return nil
	}

	if c, ok := glstate.CapabilityByEnum(e); ok {
		st.Enable.Set(c, enable)
		return nil
	}
	if c, ok := glstate.DeprCapabilityByEnum(e); ok {
		st.EnableDepr.Set(c, enable)
		return nil
	}

	return curated.Errorf(UnknownEnum, preset, "capability", name)
}

func (e *entry) apply(p *Preset) error {
	st := &p.State

	err := enum(e.Name, "primitive", e.Primitive, &p.Primitive)
	if err != nil {
		return err
	}

	if e.Program != 0 {
		st.Program.Program = e.Program
	}

	for _, n := range e.Enable {
		if err := setCap(e.Name, st, n, true); err != nil {
			return err
		}
	}
	for _, n := range e.Disable {
		if err := setCap(e.Name, st, n, false); err != nil {
			return err
		}
	}

	for _, c := range e.Clip {
		if c < 0 || c >= glstate.MaxClipPlanes {
			return curated.Errorf(BadValue, e.Name, "clip distance", c)
		}
		st.Clip.Enabled |= 1 << c
	}

	err = enum(e.Name, "logic op", e.LogicOp, &st.Logic.Op)
	if err != nil {
		return err
	}

	if e.ColorMask != nil {
		if len(e.ColorMask) != 4 {
			return curated.Errorf(BadLength, e.Name, "color_mask", 4)
		}
		st.Mask.ColormaskUseSeparate = false
		copy(st.Mask.Colormask[0][:], e.ColorMask)
	}

	if e.Viewport != nil {
		if len(e.Viewport) != 4 {
			return curated.Errorf(BadLength, e.Name, "viewport", 4)
		}
		st.Viewport.UseSeparate = false
		st.Viewport.Rects[0] = glstate.Rect{X: e.Viewport[0], Y: e.Viewport[1], Width: e.Viewport[2], Height: e.Viewport[3]}
	}

	if e.Scissor != nil {
		if len(e.Scissor) != 4 {
			return curated.Errorf(BadLength, e.Name, "scissor", 4)
		}
		st.Scissor.UseSeparate = false
		st.Scissor.Rects[0] = glstate.ScissorRect{X: e.Scissor[0], Y: e.Scissor[1], Width: e.Scissor[2], Height: e.Scissor[3]}
	}

	if e.Blend != nil {
		if err := e.Blend.apply(e.Name, st); err != nil {
			return err
		}
	}
	if e.Depth != nil {
		if err := e.Depth.apply(e.Name, st); err != nil {
			return err
		}
	}
	if e.Stencil != nil {
		if err := e.Stencil.apply(e.Name, st); err != nil {
			return err
		}
	}
	if e.Raster != nil {
		if err := e.Raster.apply(e.Name, st); err != nil {
			return err
		}
	}

	return nil
}

// blend factors apply to every draw buffer through the broadcast entry
// point. the alpha factors and equation follow the colour values unless
// they are given.
func (b *blendEntry) apply(preset string, st *glstate.State) error {
	st.Blend.UseSeparate = false
	bb := &st.Blend.Blends[0]

	if err := enum(preset, "blend factor", b.Src, &bb.RGB.SrcW); err != nil {
		return err
	}
	if err := enum(preset, "blend factor", b.Dst, &bb.RGB.DstW); err != nil {
		return err
	}
	if err := enum(preset, "blend equation", b.Equation, &bb.RGB.Equ); err != nil {
		return err
	}

	if b.SrcAlpha == "" {
		bb.Alpha.SrcW = bb.RGB.SrcW
	} else if err := enum(preset, "blend factor", b.SrcAlpha, &bb.Alpha.SrcW); err != nil {
		return err
	}
	if b.DstAlpha == "" {
		bb.Alpha.DstW = bb.RGB.DstW
	} else if err := enum(preset, "blend factor", b.DstAlpha, &bb.Alpha.DstW); err != nil {
		return err
	}
	if b.EquationAlpha == "" {
		bb.Alpha.Equ = bb.RGB.Equ
	} else if err := enum(preset, "blend equation", b.EquationAlpha, &bb.Alpha.Equ); err != nil {
		return err
	}

	if b.Color != nil {
		if len(b.Color) != 4 {
			return curated.Errorf(BadLength, preset, "blend color", 4)
		}
		copy(st.Blend.Color[:], b.Color)
	}

	return nil
}

func (d *depthEntry) apply(preset string, st *glstate.State) error {
	if err := enum(preset, "depth func", d.Func, &st.Depth.Func); err != nil {
		return err
	}
	if d.Mask != nil {
		st.Mask.Depth = *d.Mask
	}
	if d.Near != nil || d.Far != nil {
		st.DepthRange.UseSeparate = false
		if d.Near != nil {
			st.DepthRange.Ranges[0].Near = *d.Near
		}
		if d.Far != nil {
			st.DepthRange.Ranges[0].Far = *d.Far
		}
	}
	return nil
}

// stencil values apply to both faces.
func (s *stencilEntry) apply(preset string, st *glstate.State) error {
	for f := range glstate.NumFaces {
		fn := &st.Stencil.Funcs[f]
		if err := enum(preset, "stencil func", s.Func, &fn.Func); err != nil {
			return err
		}
		fn.Ref = s.Ref
		if s.Mask != nil {
			fn.Mask = *s.Mask
		}

		op := &st.Stencil.Ops[f]
		if err := enum(preset, "stencil op", s.Fail, &op.Fail); err != nil {
			return err
		}
		if err := enum(preset, "stencil op", s.ZFail, &op.ZFail); err != nil {
			return err
		}
		if err := enum(preset, "stencil op", s.ZPass, &op.ZPass); err != nil {
			return err
		}

		if s.WriteMask != nil {
			st.Mask.Stencil[f] = *s.WriteMask
		}
	}
	return nil
}

func (r *rasterEntry) apply(preset string, st *glstate.State) error {
	rs := &st.Raster
	if err := enum(preset, "front face", r.FrontFace, &rs.FrontFace); err != nil {
		return err
	}
	if err := enum(preset, "cull face", r.CullFace, &rs.CullFace); err != nil {
		return err
	}
	if err := enum(preset, "polygon mode", r.PolygonMode, &rs.PolyMode); err != nil {
		return err
	}
	if r.LineWidth != nil {
		rs.LineWidth = *r.LineWidth
	}
	if r.PointSize != nil {
		rs.PointSize = *r.PointSize
	}
	if r.OffsetFactor != nil {
		rs.PolyOffsetFactor = *r.OffsetFactor
	}
	if r.OffsetUnits != nil {
		rs.PolyOffsetUnits = *r.OffsetUnits
	}
	return nil
}
