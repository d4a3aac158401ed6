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

// Core binds vertex input with separate attribute formats. Formats are set
// once by Apply() and a change of vertex buffer only rebinds the buffer.
type Core struct {
	binder
	addressRange bool
}

// NewCore creates a binder with no layout. If addressRange is true and the
// context implements AddressRangeBinder, buffers with a GPU address are
// bound by address.
func NewCore(addressRange bool) *Core {
	return &Core{addressRange: addressRange}
}

// Apply sets the format and binding point of every attribute used by the
// pipeline, the divisor of every slot and the attribute enables.
func (p *Core) Apply(ctx Context) {
	for _, bnd := range p.bindings {
		switch bnd.Mode {
		case glstate.VertexModeInteger:
			ctx.VertexAttribIFormat(bnd.Location, bnd.Size, bnd.Type, bnd.RelativeOffset)
		default:
			ctx.VertexAttribFormat(bnd.Location, bnd.Size, bnd.Type, bnd.Normalized, bnd.RelativeOffset)
		}
		ctx.VertexAttribBinding(bnd.Location, bnd.Slot)
	}
	for i := range p.divisors {
		if p.slots&(1<<i) != 0 {
			ctx.VertexBindingDivisor(uint32(i), p.divisors[i])
		}
	}
	p.enable(ctx)
}

// BindVertexBuffers records the buffers and rebinds every slot that has
// changed. All slots are rebound if force is true.
func (p *Core) BindVertexBuffers(ctx Context, vbos []VertexBuffer, force bool) {
	ab, _ := ctx.(AddressRangeBinder)
	if !p.addressRange {
		ab = nil
	}
	p.bind(vbos, force, ab != nil, func(slot int, vb VertexBuffer) {
		stride := p.stride(slot, vb)
		if ab != nil && vb.Address != 0 {
			ctx.BindVertexBuffer(uint32(slot), 0, 0, stride)
			ab.BufferAddressRange(uint32(slot), vb.Address+uint64(vb.Offset), max(vb.Size-vb.Offset, 0))
			return
		}
		ctx.BindVertexBuffer(uint32(slot), vb.Handle, vb.Offset, stride)
	})
}
