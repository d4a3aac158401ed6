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

import "github.com/lightmass/lightmass/glstate"

// Legacy binds vertex input with attribute pointers. Every change of vertex
// buffer re-specifies the pointers of the attributes read from that buffer.
type Legacy struct {
	binder
}

// NewLegacy creates a binder with no layout.
func NewLegacy() *Legacy {
	return &Legacy{}
}

// Apply enables the attributes used by the pipeline and sets the divisor of
// every attribute. Attribute pointers are set by BindVertexBuffers().
func (p *Legacy) Apply(ctx Context) {
	p.enable(ctx)
	for _, bnd := range p.bindings {
		ctx.VertexAttribDivisor(bnd.Location, p.divisors[bnd.Slot])
	}
}

// BindVertexBuffers records the buffers and re-specifies the attribute
// pointers for every slot that has changed. All slots are re-specified if
// force is true.
func (p *Legacy) BindVertexBuffers(ctx Context, vbos []VertexBuffer, force bool) {
	p.bind(vbos, force, false, func(slot int, vb VertexBuffer) {
		ctx.BindBuffer(glstate.ArrayBuffer, vb.Handle)
		stride := p.stride(slot, vb)
		for _, bnd := range p.bindings {
			if bnd.Slot != uint32(slot) {
				continue
			}
			offset := uintptr(vb.Offset) + uintptr(bnd.RelativeOffset)
			switch bnd.Mode {
			case glstate.VertexModeInteger:
				ctx.VertexAttribIPointer(bnd.Location, bnd.Size, bnd.Type, stride, offset)
			default:
				ctx.VertexAttribPointer(bnd.Location, bnd.Size, bnd.Type, bnd.Normalized, stride, offset)
			}
		}
	})
}
