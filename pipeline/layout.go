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
	"github.com/gogpu/gputypes"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
)

// Error patterns.
const (
	UnsupportedFormat = "pipeline: unsupported vertex format (%v) for %s%d"
	InvalidSlot       = "pipeline: vertex buffer slot out of range (%d) for %s%d"
	InvalidLocation   = "pipeline: attribute location out of range (%d) for %s%d"
	NoLayout          = "pipeline: no input layout"
)

// InputElement is one vertex channel provided by the application.
//
// StepRate is the number of instances drawn before the channel advances and
// is only used for instance rate channels. A StepRate of zero is treated as
// one.
type InputElement struct {
	Semantic      string
	SemanticIndex int
	Format        gputypes.VertexFormat
	Slot          int
	StepMode      gputypes.VertexStepMode
	StepRate      uint32
}

type formatInfo struct {
	size       int32
	xtype      glstate.Enum
	normalized bool
	mode       glstate.VertexMode
	bytes      uint32
}

var formats = map[gputypes.VertexFormat]formatInfo{
	gputypes.VertexFormatUint8x2:   {2, glstate.UnsignedByte, false, glstate.VertexModeInteger, 2},
	gputypes.VertexFormatUint8x4:   {4, glstate.UnsignedByte, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatSint8x2:   {2, glstate.Byte, false, glstate.VertexModeInteger, 2},
	gputypes.VertexFormatSint8x4:   {4, glstate.Byte, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatUnorm8x2:  {2, glstate.UnsignedByte, true, glstate.VertexModeFloat, 2},
	gputypes.VertexFormatUnorm8x4:  {4, glstate.UnsignedByte, true, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatSnorm8x2:  {2, glstate.Byte, true, glstate.VertexModeFloat, 2},
	gputypes.VertexFormatSnorm8x4:  {4, glstate.Byte, true, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatUint16x2:  {2, glstate.UnsignedShort, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatUint16x4:  {4, glstate.UnsignedShort, false, glstate.VertexModeInteger, 8},
	gputypes.VertexFormatSint16x2:  {2, glstate.Short, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatSint16x4:  {4, glstate.Short, false, glstate.VertexModeInteger, 8},
	gputypes.VertexFormatUnorm16x2: {2, glstate.UnsignedShort, true, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatUnorm16x4: {4, glstate.UnsignedShort, true, glstate.VertexModeFloat, 8},
	gputypes.VertexFormatSnorm16x2: {2, glstate.Short, true, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatSnorm16x4: {4, glstate.Short, true, glstate.VertexModeFloat, 8},
	gputypes.VertexFormatFloat16x2: {2, glstate.HalfFloat, false, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatFloat16x4: {4, glstate.HalfFloat, false, glstate.VertexModeFloat, 8},
	gputypes.VertexFormatFloat32:   {1, glstate.Float, false, glstate.VertexModeFloat, 4},
	gputypes.VertexFormatFloat32x2: {2, glstate.Float, false, glstate.VertexModeFloat, 8},
	gputypes.VertexFormatFloat32x3: {3, glstate.Float, false, glstate.VertexModeFloat, 12},
	gputypes.VertexFormatFloat32x4: {4, glstate.Float, false, glstate.VertexModeFloat, 16},
	gputypes.VertexFormatUint32:    {1, glstate.UnsignedInt, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatUint32x2:  {2, glstate.UnsignedInt, false, glstate.VertexModeInteger, 8},
	gputypes.VertexFormatUint32x3:  {3, glstate.UnsignedInt, false, glstate.VertexModeInteger, 12},
	gputypes.VertexFormatUint32x4:  {4, glstate.UnsignedInt, false, glstate.VertexModeInteger, 16},
	gputypes.VertexFormatSint32:    {1, glstate.Int, false, glstate.VertexModeInteger, 4},
	gputypes.VertexFormatSint32x2:  {2, glstate.Int, false, glstate.VertexModeInteger, 8},
	gputypes.VertexFormatSint32x3:  {3, glstate.Int, false, glstate.VertexModeInteger, 12},
	gputypes.VertexFormatSint32x4:  {4, glstate.Int, false, glstate.VertexModeInteger, 16},
}

type element struct {
	InputElement
	formatInfo
}

// InputLayout is an immutable list of vertex channels with their GL formats
// resolved.
type InputLayout struct {
	elements []element
}

// NewInputLayout resolves the GL format of every element. It fails if any
// format has no GL equivalent or if a slot is out of range.
func NewInputLayout(elements []InputElement) (*InputLayout, error) {
	l := &InputLayout{
		elements: make([]element, 0, len(elements)),
	}
	for _, e := range elements {
		if e.Slot < 0 || e.Slot >= glstate.MaxVertexBindings {
			return nil, curated.Errorf(InvalidSlot, e.Slot, e.Semantic, e.SemanticIndex)
		}
		f, ok := formats[e.Format]
		if !ok {
			return nil, curated.Errorf(UnsupportedFormat, e.Format, e.Semantic, e.SemanticIndex)
		}
		l.elements = append(l.elements, element{InputElement: e, formatInfo: f})
	}
	return l, nil
}

// Len returns the number of elements in the layout.
func (l *InputLayout) Len() int {
	return len(l.elements)
}

// Elements returns a copy of the elements used to create the layout.
func (l *InputLayout) Elements() []InputElement {
	e := make([]InputElement, len(l.elements))
	for i := range l.elements {
		e[i] = l.elements[i].InputElement
	}
	return e
}

// Size returns the number of bytes occupied by one vertex of the element at
// index i.
func (l *InputLayout) Size(i int) uint32 {
	return l.elements[i].bytes
}
