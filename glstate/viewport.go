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

package glstate

// MaxViewports is the number of viewports modelled by the per-viewport
// slices.
const MaxViewports = 16

// Rect is a floating point viewport rectangle.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// ViewportState is the rectangle of every viewport. When UseSeparate is
// false the rectangle of viewport zero is applied to all viewports with
// glViewport() and is truncated to integer coordinates.
//
// The GL reset state of viewport zero is the size of the window. The
// default value here is the zero rectangle.
type ViewportState struct {
	Rects       [MaxViewports]Rect
	UseSeparate bool
}

// SetDefaults sets the zero rectangle for every viewport.
func (s *ViewportState) SetDefaults() {
	s.Rects = [MaxViewports]Rect{}
	s.UseSeparate = false
}

// Apply viewport state.
func (s *ViewportState) Apply(ctx Context) {
	if s.UseSeparate {
		for i := range s.Rects {
			r := &s.Rects[i]
			ctx.ViewportIndexedf(uint32(i), r.X, r.Y, r.Width, r.Height)
		}
	} else {
		r := &s.Rects[0]
		ctx.Viewport(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
	}
}

// Get viewport state from the context.
func (s *ViewportState) Get(ctx Context) {
	var v [4]float32
	s.UseSeparate = false
	for i := range s.Rects {
		ctx.GetFloati(QueryViewport, uint32(i), v[:])
		s.Rects[i] = Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
		if s.Rects[i] != s.Rects[0] {
			s.UseSeparate = true
		}
	}
}

// ScissorRect is an integer scissor box.
type ScissorRect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// ScissorState is the scissor box of every viewport. When UseSeparate is
// false the box of viewport zero is applied to all viewports.
type ScissorState struct {
	Rects       [MaxViewports]ScissorRect
	UseSeparate bool
}

// SetDefaults sets the zero box for every viewport. As with viewports, the
// GL reset state depends on the window.
func (s *ScissorState) SetDefaults() {
	s.Rects = [MaxViewports]ScissorRect{}
	s.UseSeparate = false
}

// Apply scissor state.
func (s *ScissorState) Apply(ctx Context) {
	if s.UseSeparate {
		for i := range s.Rects {
			r := &s.Rects[i]
			ctx.ScissorIndexed(uint32(i), r.X, r.Y, r.Width, r.Height)
		}
	} else {
		r := &s.Rects[0]
		ctx.Scissor(r.X, r.Y, r.Width, r.Height)
	}
}

// Get scissor state from the context.
func (s *ScissorState) Get(ctx Context) {
	var v [4]int32
	s.UseSeparate = false
	for i := range s.Rects {
		ctx.GetIntegeri(QueryScissorBox, uint32(i), v[:])
		s.Rects[i] = ScissorRect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
		if s.Rects[i] != s.Rects[0] {
			s.UseSeparate = true
		}
	}
}

// ScissorEnableState is the scissor test enable of every viewport. There is
// one bit for each viewport. When UseSeparate is false bit zero enables or
// disables the scissor test for all viewports.
type ScissorEnableState struct {
	SeparateEnable uint32
	UseSeparate    bool
}

// SetDefaults sets the GL reset state. The scissor test is disabled.
func (s *ScissorEnableState) SetDefaults() {
	s.SeparateEnable = 0
	s.UseSeparate = false
}

// Apply scissor enable state.
func (s *ScissorEnableState) Apply(ctx Context) {
	if s.UseSeparate {
		for i := range MaxViewports {
			setCapi(ctx, ScissorTest, uint32(i), s.SeparateEnable&(1<<i) != 0)
		}
	} else {
		setCap(ctx, ScissorTest, s.SeparateEnable&1 != 0)
	}
}

// Get scissor enable state from the context.
func (s *ScissorEnableState) Get(ctx Context) {
	s.SeparateEnable = 0
	for i := range MaxViewports {
		if ctx.IsEnabledi(ScissorTest, uint32(i)) {
			s.SeparateEnable |= 1 << i
		}
	}
	s.UseSeparate = s.SeparateEnable != 0 && s.SeparateEnable != 1<<MaxViewports-1
	if !s.UseSeparate {
		s.SeparateEnable &= 1
	}
}
