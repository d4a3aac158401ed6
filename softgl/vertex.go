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

package softgl

import "github.com/lightmass/lightmass/glstate"

// typeSize returns the size in bytes of one component of the type. Packed
// types return the size of the whole attribute.
func typeSize(xtype glstate.Enum) int32 {
	switch xtype {
	case glstate.Byte, glstate.UnsignedByte:
		return 1
	case glstate.Short, glstate.UnsignedShort, glstate.HalfFloat:
		return 2
	case glstate.Double:
		return 8
	}
	return 4
}

func packed(xtype glstate.Enum) bool {
	switch xtype {
	case glstate.Int2101010Rev, glstate.UnsignedInt2101010Rev, glstate.UnsignedInt10F11F11FRev:
		return true
	}
	return false
}

func (ctx *Context) format(index uint32, size int32, xtype glstate.Enum) bool {
	if !ctx.index(index, glstate.MaxVertexAttribs) {
		return false
	}
	if size < 1 || size > 4 {
		ctx.raise(glstate.InvalidValue)
		return false
	}
	switch xtype {
	case glstate.Byte, glstate.UnsignedByte, glstate.Short, glstate.UnsignedShort,
		glstate.Int, glstate.UnsignedInt, glstate.Float, glstate.Double, glstate.HalfFloat,
		glstate.Int2101010Rev, glstate.UnsignedInt2101010Rev, glstate.UnsignedInt10F11F11FRev:
	default:
		ctx.raise(glstate.InvalidEnum)
		return false
	}
	return true
}

func (ctx *Context) VertexAttribFormat(index uint32, size int32, xtype glstate.Enum, normalized bool, relativeOffset uint32) {
	ctx.record("VertexAttribFormat", index, size, xtype, normalized, relativeOffset)
	if !ctx.format(index, size, xtype) {
		return
	}
	a := &ctx.s.Attribs[index]
	a.Size, a.Type, a.Normalized, a.Integer, a.RelativeOffset = size, xtype, normalized, false, relativeOffset
}

func (ctx *Context) VertexAttribIFormat(index uint32, size int32, xtype glstate.Enum, relativeOffset uint32) {
	ctx.record("VertexAttribIFormat", index, size, xtype, relativeOffset)
	if !ctx.format(index, size, xtype) {
		return
	}
	a := &ctx.s.Attribs[index]
	a.Size, a.Type, a.Normalized, a.Integer, a.RelativeOffset = size, xtype, false, true, relativeOffset
}

func (ctx *Context) VertexAttribBinding(index uint32, binding uint32) {
	ctx.record("VertexAttribBinding", index, binding)
	if ctx.index(index, glstate.MaxVertexAttribs) && ctx.index(binding, glstate.MaxVertexBindings) {
		ctx.s.Attribs[index].Binding = binding
	}
}

func (ctx *Context) VertexBindingDivisor(binding uint32, divisor uint32) {
	ctx.record("VertexBindingDivisor", binding, divisor)
	if ctx.index(binding, glstate.MaxVertexBindings) {
		ctx.s.Bindings[binding].Divisor = divisor
	}
}

func (ctx *Context) EnableVertexAttribArray(index uint32) {
	ctx.record("EnableVertexAttribArray", index)
	if ctx.index(index, glstate.MaxVertexAttribs) {
		ctx.s.Attribs[index].Enabled = true
	}
}

func (ctx *Context) DisableVertexAttribArray(index uint32) {
	ctx.record("DisableVertexAttribArray", index)
	if ctx.index(index, glstate.MaxVertexAttribs) {
		ctx.s.Attribs[index].Enabled = false
	}
}

func (ctx *Context) BindVertexBuffer(binding uint32, buffer uint32, offset int, stride int32) {
	ctx.record("BindVertexBuffer", binding, buffer, offset, stride)
	if !ctx.index(binding, glstate.MaxVertexBindings) {
		return
	}
	if offset < 0 || stride < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	b := &ctx.s.Bindings[binding]
	b.Buffer, b.Offset, b.Stride = buffer, offset, stride
	b.Address, b.Length = 0, 0
}

// VertexAttribDivisor sets the binding point of the attribute to the binding
// point with the same index and sets the divisor of that binding point.
func (ctx *Context) VertexAttribDivisor(index uint32, divisor uint32) {
	ctx.record("VertexAttribDivisor", index, divisor)
	if ctx.index(index, glstate.MaxVertexAttribs) {
		ctx.s.Attribs[index].Binding = index
		ctx.s.Bindings[index].Divisor = divisor
	}
}

func (ctx *Context) BindBuffer(target glstate.Enum, buffer uint32) {
	ctx.record("BindBuffer", target, buffer)
	switch target {
	case glstate.ArrayBuffer:
		ctx.s.ArrayBuffer = buffer
	case glstate.ElementArrayBuffer:
		ctx.s.ElementArrayBuffer = buffer
	default:
		ctx.raise(glstate.InvalidEnum)
	}
}

// pointer implements the side effects common to VertexAttribPointer() and
// VertexAttribIPointer(). The attribute format is set together with a
// binding point of the same index that reads from the current array buffer.
func (ctx *Context) pointer(index uint32, size int32, xtype glstate.Enum, normalized bool, integer bool, stride int32, offset uintptr) {
	if !ctx.format(index, size, xtype) {
		return
	}
	if stride < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	if stride == 0 {
		if packed(xtype) {
			stride = typeSize(xtype)
		} else {
			stride = size * typeSize(xtype)
		}
	}
	a := &ctx.s.Attribs[index]
	a.Size, a.Type, a.Normalized, a.Integer, a.RelativeOffset = size, xtype, normalized, integer, 0
	a.Binding = index
	b := &ctx.s.Bindings[index]
	b.Buffer, b.Offset, b.Stride = ctx.s.ArrayBuffer, int(offset), stride
	b.Address, b.Length = 0, 0
}

func (ctx *Context) VertexAttribPointer(index uint32, size int32, xtype glstate.Enum, normalized bool, stride int32, offset uintptr) {
	ctx.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	ctx.pointer(index, size, xtype, normalized, false, stride, offset)
}

func (ctx *Context) VertexAttribIPointer(index uint32, size int32, xtype glstate.Enum, stride int32, offset uintptr) {
	ctx.record("VertexAttribIPointer", index, size, xtype, stride, offset)
	ctx.pointer(index, size, xtype, false, true, stride, offset)
}

func validPrimitive(mode glstate.Enum) bool {
	return mode <= glstate.TriangleFan || mode == glstate.Patches
}

func (ctx *Context) draw(d Draw) {
	if !validPrimitive(d.Mode) {
		ctx.raise(glstate.InvalidEnum)
		return
	}
	if d.Count < 0 || d.Instances < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	d.Attribs = ctx.s.Attribs
	d.Bindings = ctx.s.Bindings
	d.Program = ctx.s.Program
	d.IndexBuffer = ctx.s.ElementArrayBuffer
	d.ScissorEnable = ctx.s.ScissorEnable[0]
	d.Scissor = ctx.s.Scissor[0]
	d.Texture = ctx.resources.units[0]
	ctx.draws = append(ctx.draws, d)
}

func (ctx *Context) DrawArrays(mode glstate.Enum, first, count int32) {
	ctx.record("DrawArrays", mode, first, count)
	ctx.draw(Draw{Mode: mode, First: first, Count: count, Instances: 1})
}

func (ctx *Context) DrawArraysInstanced(mode glstate.Enum, first, count, instances int32) {
	ctx.record("DrawArraysInstanced", mode, first, count, instances)
	ctx.draw(Draw{Mode: mode, First: first, Count: count, Instances: instances})
}

func (ctx *Context) DrawElements(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr) {
	ctx.record("DrawElements", mode, count, xtype, offset)
	ctx.draw(Draw{Mode: mode, Count: count, Instances: 1, Indexed: true, IndexType: xtype, Offset: offset})
}

func (ctx *Context) DrawElementsInstanced(mode glstate.Enum, count int32, xtype glstate.Enum, offset uintptr, instances int32) {
	ctx.record("DrawElementsInstanced", mode, count, xtype, offset, instances)
	ctx.draw(Draw{Mode: mode, Count: count, Instances: instances, Indexed: true, IndexType: xtype, Offset: offset})
}
