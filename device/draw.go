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

package device

import (
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
)

// IndexBuffer is the element array buffer used by DrawIndexed().
type IndexBuffer struct {
	Handle uint32
	Type   glstate.Enum
	Offset uintptr
}

// usable returns false and reports the reason if the pipeline cannot be
// used.
func (dev *Device) usable(p *RenderPipeline, op string) bool {
	dev.thread.Check(op)
	if p == nil {
		dev.messagef("%s: no pipeline", op)
		return false
	}
	if p.destroyed {
		dev.messagef("%s: %s: pipeline has been destroyed", op, p.label)
		return false
	}
	return true
}

// transition applies the pipeline's state. Returns true if the state was
// applied in full.
func (dev *Device) transition(p *RenderPipeline) bool {
	full := dev.last == glstate.InvalidID || !dev.prefs.StateDiff.Get().(bool)
	if full {
		dev.sys.Apply(p.state)
	} else {
		dev.sys.ApplyTransition(p.state, dev.last)
	}
	dev.last = p.state
	return full
}

// activate applies the pipeline's state and binds its vertex buffers.
// Returns false if the draw must be skipped.
func (dev *Device) activate(p *RenderPipeline, vbos []pipeline.VertexBuffer) bool {
	if !dev.usable(p, "draw") {
		return false
	}

	full := dev.transition(p)

	// the vertex buffers recorded by the binder are only known to be bound
	// if the same pipeline was used for the previous draw. a full apply
	// resets the vertex input state of the context so legacy pipelines must
	// specify it again
	changed := full || dev.current != p
	if changed && !p.core {
		p.binder.Apply(dev.ctx)
	}
	p.binder.BindVertexBuffers(dev.ctx, vbos, changed)
	dev.current = p

	return true
}

// ApplyRenderState applies the render state of the pipeline without binding
// vertex buffers or drawing. It is for operations that depend on the render
// state but not on vertex input, such as a clear. The next draw binds the
// vertex input of its pipeline in full.
func (dev *Device) ApplyRenderState(p *RenderPipeline) {
	if !dev.usable(p, "apply") {
		return
	}
	dev.transition(p)
	dev.current = nil
}

// Draw non-indexed primitives with the pipeline. The primitive mode is the
// one given for the pipeline's state. An instance count of zero or one
// issues a non-instanced draw.
func (dev *Device) Draw(p *RenderPipeline, vbos []pipeline.VertexBuffer, first, count, instances int32) {
	if !dev.activate(p, vbos) {
		return
	}
	mode := dev.sys.BasePrimitiveMode(p.state)
	if instances > 1 {
		dev.ctx.DrawArraysInstanced(mode, first, count, instances)
	} else {
		dev.ctx.DrawArrays(mode, first, count)
	}
	dev.draws++
}

// DrawIndexed draws indexed primitives with the pipeline. The index buffer
// is only bound if it differs from the one used by the previous indexed
// draw.
func (dev *Device) DrawIndexed(p *RenderPipeline, vbos []pipeline.VertexBuffer, ib IndexBuffer, count, instances int32) {
	if !dev.activate(p, vbos) {
		return
	}
	if !dev.indexKnown || dev.indexBuffer != ib.Handle {
		dev.ctx.BindBuffer(glstate.ElementArrayBuffer, ib.Handle)
		dev.indexBuffer = ib.Handle
		dev.indexKnown = true
	}
	mode := dev.sys.BasePrimitiveMode(p.state)
	if instances > 1 {
		dev.ctx.DrawElementsInstanced(mode, count, ib.Type, ib.Offset, instances)
	} else {
		dev.ctx.DrawElements(mode, count, ib.Type, ib.Offset)
	}
	dev.draws++
}
