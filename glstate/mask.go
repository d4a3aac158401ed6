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

// MaskState is the colour, depth and stencil write masks. When
// ColormaskUseSeparate is false the colour mask of draw buffer zero is
// applied to all draw buffers.
type MaskState struct {
	Colormask            [MaxDrawBuffers][4]bool
	ColormaskUseSeparate bool
	Depth                bool
	Stencil              [NumFaces]uint32
}

// SetDefaults sets the GL reset state. All writes are enabled.
func (s *MaskState) SetDefaults() {
	for i := range s.Colormask {
		s.Colormask[i] = [4]bool{true, true, true, true}
	}
	s.ColormaskUseSeparate = false
	s.Depth = true
	s.Stencil = [NumFaces]uint32{^uint32(0), ^uint32(0)}
}

// Apply mask state.
func (s *MaskState) Apply(ctx Context) {
	if s.ColormaskUseSeparate {
		for i := range s.Colormask {
			m := &s.Colormask[i]
			ctx.ColorMaski(uint32(i), m[0], m[1], m[2], m[3])
		}
	} else {
		m := &s.Colormask[0]
		ctx.ColorMask(m[0], m[1], m[2], m[3])
	}
	ctx.DepthMask(s.Depth)
	for i := range NumFaces {
		ctx.StencilMaskSeparate(faceEnums[i], s.Stencil[i])
	}
}

// Get mask state from the context.
func (s *MaskState) Get(ctx Context) {
	s.ColormaskUseSeparate = false
	for i := range s.Colormask {
		ctx.GetBooleani(QueryColorWritemask, uint32(i), s.Colormask[i][:])
		if s.Colormask[i] != s.Colormask[0] {
			s.ColormaskUseSeparate = true
		}
	}
	s.Depth = getBool(ctx, QueryDepthWritemask)
	s.Stencil[FaceFront] = uint32(getInt(ctx, QueryStencilWritemask))
	s.Stencil[FaceBack] = uint32(getInt(ctx, QueryStencilBackWritemask))
}

// FBOState is the draw and read framebuffer bindings and the draw and read
// buffers. NumBuffers is the number of entries of DrawBuffers that are
// passed to glDrawBuffers().
type FBOState struct {
	FboDraw     uint32
	FboRead     uint32
	DrawBuffers [MaxDrawBuffers]Enum
	NumBuffers  int
	ReadBuffer  Enum
}

// SetDefaults sets the GL reset state for a double buffered default
// framebuffer.
func (s *FBOState) SetDefaults() {
	s.FboDraw = 0
	s.FboRead = 0
	s.DrawBuffers = [MaxDrawBuffers]Enum{}
	s.DrawBuffers[0] = Back
	s.NumBuffers = 1
	s.ReadBuffer = Back
}

// Apply framebuffer state.
func (s *FBOState) Apply(ctx Context) {
	ctx.BindFramebuffer(DrawFramebuffer, s.FboDraw)
	ctx.BindFramebuffer(ReadFramebuffer, s.FboRead)
	n := s.NumBuffers
	if n < 0 {
		n = 0
	} else if n > MaxDrawBuffers {
		n = MaxDrawBuffers
	}
	ctx.DrawBuffers(s.DrawBuffers[:n])
	ctx.ReadBuffer(s.ReadBuffer)
}

// Get framebuffer state from the context. NumBuffers is set to include the
// last draw buffer that is not NONE.
func (s *FBOState) Get(ctx Context) {
	s.FboDraw = uint32(getInt(ctx, QueryDrawFramebufferBinding))
	s.FboRead = uint32(getInt(ctx, QueryReadFramebufferBinding))
	s.NumBuffers = 1
	for i := range s.DrawBuffers {
		s.DrawBuffers[i] = getEnum(ctx, QueryDrawBuffer0+Enum(i))
		if s.DrawBuffers[i] != None {
			s.NumBuffers = i + 1
		}
	}
	s.ReadBuffer = getEnum(ctx, QueryReadBuffer)
}

// ProgramState is the program object in use.
type ProgramState struct {
	Program uint32
}

// SetDefaults sets the GL reset state. No program is in use.
func (s *ProgramState) SetDefaults() {
	s.Program = 0
}

// Apply program state.
func (s *ProgramState) Apply(ctx Context) {
	ctx.UseProgram(s.Program)
}

// Get program state from the context.
func (s *ProgramState) Get(ctx Context) {
	s.Program = uint32(getInt(ctx, QueryCurrentProgram))
}
