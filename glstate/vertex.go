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

// MaxVertexAttribs is the number of vertex attributes modelled.
const MaxVertexAttribs = 16

// MaxVertexBindings is the number of vertex buffer binding points modelled.
const MaxVertexBindings = 16

// VertexMode selects how attribute data is presented to the shader.
type VertexMode int

// List of valid VertexMode values.
const (
	// attribute data is converted to floating point
	VertexModeFloat VertexMode = iota

	// attribute data is passed to the shader as integers
	VertexModeInteger
)

// VertexFormat is the format of one vertex attribute and the binding point
// it reads from.
type VertexFormat struct {
	Normalized     bool
	Type           Enum
	Size           int32
	RelativeOffset uint32
	Mode           VertexMode
	Binding        uint32
}

// VertexBinding is the instance divisor of one binding point. Buffers and
// strides are bound by the pipeline and are not part of the state.
type VertexBinding struct {
	Divisor uint32
}

// VertexFormatState is the format of every vertex attribute and the divisor
// of every binding point.
type VertexFormatState struct {
	Formats  [MaxVertexAttribs]VertexFormat
	Bindings [MaxVertexBindings]VertexBinding
}

// SetDefaults sets the GL reset state. Every attribute is four floats and
// reads from the binding point of the same index.
func (s *VertexFormatState) SetDefaults() {
	for i := range s.Formats {
		s.Formats[i] = VertexFormat{
			Type:    Float,
			Size:    4,
			Mode:    VertexModeFloat,
			Binding: uint32(i),
		}
	}
	s.Bindings = [MaxVertexBindings]VertexBinding{}
}

// Apply every format and binding.
func (s *VertexFormatState) Apply(ctx Context) {
	s.applyFormats(ctx, 1<<MaxVertexAttribs-1)
	s.applyBindings(ctx, 1<<MaxVertexBindings-1)
}

func (s *VertexFormatState) applyFormats(ctx Context, mask uint32) {
	for i := range s.Formats {
		if mask&(1<<i) == 0 {
			continue
		}
		f := &s.Formats[i]
		switch f.Mode {
		case VertexModeInteger:
			ctx.VertexAttribIFormat(uint32(i), f.Size, f.Type, f.RelativeOffset)
		default:
			ctx.VertexAttribFormat(uint32(i), f.Size, f.Type, f.Normalized, f.RelativeOffset)
		}
		ctx.VertexAttribBinding(uint32(i), f.Binding)
	}
}

func (s *VertexFormatState) applyBindings(ctx Context, mask uint32) {
	for i := range s.Bindings {
		if mask&(1<<i) != 0 {
			ctx.VertexBindingDivisor(uint32(i), s.Bindings[i].Divisor)
		}
	}
}

// Get every format and binding from the context.
func (s *VertexFormatState) Get(ctx Context) {
	for i := range s.Formats {
		f := &s.Formats[i]
		idx := uint32(i)
		f.Size = getAttrib(ctx, idx, QueryVertexAttribArraySize)
		f.Type = Enum(getAttrib(ctx, idx, QueryVertexAttribArrayType))
		f.Normalized = getAttrib(ctx, idx, QueryVertexAttribArrayNormal) != 0
		f.RelativeOffset = uint32(getAttrib(ctx, idx, QueryVertexAttribRelOffset))
		f.Binding = uint32(getAttrib(ctx, idx, QueryVertexAttribBinding))
		if getAttrib(ctx, idx, QueryVertexAttribArrayInteger) != 0 {
			f.Mode = VertexModeInteger
			f.Normalized = false
		} else {
			f.Mode = VertexModeFloat
		}
	}
	for i := range s.Bindings {
		s.Bindings[i].Divisor = uint32(getEnumi(ctx, QueryVertexBindingDivisor, uint32(i)))
	}
}

// VertexEnableState has one bit for every enabled vertex attribute array.
type VertexEnableState struct {
	Enabled uint32
}

// SetDefaults sets the GL reset state. No attribute arrays are enabled.
func (s *VertexEnableState) SetDefaults() {
	s.Enabled = 0
}

// Apply every attribute enable.
func (s *VertexEnableState) Apply(ctx Context) {
	s.applyBits(ctx, 1<<MaxVertexAttribs-1)
}

func (s *VertexEnableState) applyBits(ctx Context, mask uint32) {
	for i := range MaxVertexAttribs {
		if mask&(1<<i) == 0 {
			continue
		}
		if s.Enabled&(1<<i) != 0 {
			ctx.EnableVertexAttribArray(uint32(i))
		} else {
			ctx.DisableVertexAttribArray(uint32(i))
		}
	}
}

// Get every attribute enable from the context.
func (s *VertexEnableState) Get(ctx Context) {
	s.Enabled = 0
	for i := range MaxVertexAttribs {
		if getAttrib(ctx, uint32(i), QueryVertexAttribArrayEnabled) != 0 {
			s.Enabled |= 1 << i
		}
	}
}
