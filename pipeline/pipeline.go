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

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
)

// Attribute is an active vertex attribute reflected from a shader program.
// The name of the attribute is split into a semantic and a semantic index.
// For example, "TEXCOORD1" is semantic "TEXCOORD" with index 1.
type Attribute struct {
	Semantic      string
	SemanticIndex int
	Location      uint32
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s%d@%d", a.Semantic, a.SemanticIndex, a.Location)
}

// Desc is the input to Setup().
type Desc struct {
	Layout     *InputLayout
	Attributes []Attribute
}

// VertexBuffer is the buffer bound to one slot. A zero Stride means that the
// stride is calculated from the layout. Address and Size are only used by a
// context that implements AddressRangeBinder.
type VertexBuffer struct {
	Handle  uint32
	Offset  int
	Stride  int32
	Address uint64
	Size    int
}

// valid returns false if there is no buffer in the slot. A buffer with only
// a GPU address is valid if byAddress is true.
func (vb VertexBuffer) valid(byAddress bool) bool {
	return vb.Handle != 0 || (byAddress && vb.Address != 0)
}

// Binder is implemented by the Legacy and Core binders.
type Binder interface {
	Setup(desc Desc) error
	Apply(ctx Context)
	SetVertexBuffer(slot int, vb VertexBuffer)
	BindVertexBuffers(ctx Context, vbos []VertexBuffer, force bool)
	FillState(st *glstate.State)
	Duplicates() []string
	Bindings() []Binding
}

// Binding is one layout element matched to an attribute location.
type Binding struct {
	Location       uint32
	Slot           uint32
	RelativeOffset uint32
	Size           int32
	Type           glstate.Enum
	Normalized     bool
	Mode           glstate.VertexMode
}

type slotTracker struct {
	vb         VertexBuffer
	needUpdate bool
}

// binder is the part of Setup() shared by both binders.
type binder struct {
	bindings []Binding

	// attributes used by the pipeline
	used uint32

	// vertex buffer slots used by the pipeline
	slots uint32

	divisors [glstate.MaxVertexBindings]uint32
	strides  [glstate.MaxVertexBindings]uint32

	duplicates []string

	tracker [glstate.MaxVertexBindings]slotTracker
}

// Setup matches every element of the layout to the attribute with the same
// semantic and semantic index. Elements with no matching attribute are
// skipped. If more than one element matches the same attribute the last
// element is used.
func (b *binder) Setup(desc Desc) error {
	if desc.Layout == nil {
		return curated.Errorf(NoLayout)
	}

	type key struct {
		semantic string
		index    int
	}
	locations := make(map[key]uint32, len(desc.Attributes))
	for _, a := range desc.Attributes {
		if a.Location >= glstate.MaxVertexAttribs {
			return curated.Errorf(InvalidLocation, a.Location, a.Semantic, a.SemanticIndex)
		}
		locations[key{a.Semantic, a.SemanticIndex}] = a.Location
	}

	*b = binder{tracker: b.tracker}

	byLocation := make(map[uint32]int)
	var offset uint32

	for _, e := range desc.Layout.elements {
		loc, ok := locations[key{e.Semantic, e.SemanticIndex}]
		if ok {
			bnd := Binding{
				Location:       loc,
				Slot:           uint32(e.Slot),
				RelativeOffset: offset,
				Size:           e.size,
				Type:           e.xtype,
				Normalized:     e.normalized,
				Mode:           e.mode,
			}
			if i, ok := byLocation[loc]; ok {
				dup := fmt.Sprintf("%s%d", e.Semantic, e.SemanticIndex)
				b.duplicates = append(b.duplicates, dup)
				logger.Logf(logger.Allow, "pipeline", "duplicate input element: %s", dup)
				b.bindings[i] = bnd
			} else {
				byLocation[loc] = len(b.bindings)
				b.bindings = append(b.bindings, bnd)
			}
			b.used |= 1 << loc
			b.slots |= 1 << e.Slot
		}

		if e.StepMode == gputypes.VertexStepModeInstance {
			b.divisors[e.Slot] = max(e.StepRate, 1)
		} else {
			b.divisors[e.Slot] = 0
		}

		offset += e.bytes
		b.strides[e.Slot] = offset
	}

	// bindings depend on the layout so every slot is rebound after setup
	for i := range b.tracker {
		b.tracker[i].needUpdate = true
	}

	return nil
}

// Duplicates returns the semantic names of elements that replaced an earlier
// element for the same attribute during the most recent Setup().
func (b *binder) Duplicates() []string {
	return b.duplicates
}

// Bindings returns the matched elements in layout order.
func (b *binder) Bindings() []Binding {
	return b.bindings
}

// Stride returns the stride used for the slot when the VertexBuffer has a
// zero stride. It is the end offset of the last element for the slot.
func (b *binder) Stride(slot int) uint32 {
	if slot < 0 || slot >= glstate.MaxVertexBindings {
		return 0
	}
	return b.strides[slot]
}

// SetVertexBuffer records the buffer for the slot. The slot is bound by the
// next call to BindVertexBuffers() only if the buffer has changed.
func (b *binder) SetVertexBuffer(slot int, vb VertexBuffer) {
	if slot < 0 || slot >= glstate.MaxVertexBindings {
		return
	}
	t := &b.tracker[slot]
	if t.vb != vb {
		t.vb = vb
		t.needUpdate = true
	}
}

// NeedsUpdate returns true if the slot will be bound by the next call to
// BindVertexBuffers().
func (b *binder) NeedsUpdate(slot int) bool {
	if slot < 0 || slot >= glstate.MaxVertexBindings {
		return false
	}
	return b.tracker[slot].needUpdate
}

func (b *binder) stride(slot int, vb VertexBuffer) int32 {
	if vb.Stride != 0 {
		return vb.Stride
	}
	return int32(b.strides[slot])
}

// bind calls f for every slot used by the pipeline that has a buffer and
// needs binding.
func (b *binder) bind(vbos []VertexBuffer, force bool, byAddress bool, f func(slot int, vb VertexBuffer)) {
	for i, vb := range vbos {
		b.SetVertexBuffer(i, vb)
	}
	for i := range b.tracker {
		if b.slots&(1<<i) == 0 {
			continue
		}
		t := &b.tracker[i]
		if !t.vb.valid(byAddress) {
			continue
		}
		if force || t.needUpdate {
			f(i, t.vb)
			t.needUpdate = false
		}
	}
}

// FillState sets the vertex format and vertex enable slices of the state to
// match the pipeline.
func (b *binder) FillState(st *glstate.State) {
	st.VertexFormat.SetDefaults()
	for _, bnd := range b.bindings {
		st.VertexFormat.Formats[bnd.Location] = glstate.VertexFormat{
			Normalized:     bnd.Normalized,
			Type:           bnd.Type,
			Size:           bnd.Size,
			RelativeOffset: bnd.RelativeOffset,
			Mode:           bnd.Mode,
			Binding:        bnd.Slot,
		}
	}
	for i := range b.divisors {
		if b.slots&(1<<i) != 0 {
			st.VertexFormat.Bindings[i].Divisor = b.divisors[i]
		}
	}
	st.VertexEnable.Enabled = b.used
}

// enable enables the attributes used by the pipeline and disables the
// others.
func (b *binder) enable(ctx Context) {
	for i := range glstate.MaxVertexAttribs {
		if b.used&(1<<i) != 0 {
			ctx.EnableVertexAttribArray(uint32(i))
		} else {
			ctx.DisableVertexAttribArray(uint32(i))
		}
	}
}
