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

// RenderPipelineDesc describes a RenderPipeline.
type RenderPipelineDesc struct {
	Label   string
	Layout  *pipeline.InputLayout
	Program uint32

	// the active attributes of the program. if Attributes is nil, the
	// attributes are listed by the device's Reflector
	Attributes []pipeline.Attribute

	// the render state and the primitive used by Draw(). a nil State is
	// the default state. the program and, for core pipelines, the vertex
	// input slices of the state are set by the device
	State     *glstate.State
	Primitive glstate.Enum

	// the name of a preset loaded with LoadPresets(). if a preset is named,
	// State and Primitive are taken from the preset and the pipeline
	// follows any reload of the preset
	Preset string
}

// RenderPipeline is a vertex binder with a render state registered in the
// device's state System.
type RenderPipeline struct {
	label   string
	program uint32
	binder  pipeline.Binder
	core    bool
	state   glstate.StateID
	preset  string

	destroyed bool
}

// Label returns the label given when the pipeline was created.
func (p *RenderPipeline) Label() string {
	return p.label
}

// StateID returns the ID of the pipeline's render state.
func (p *RenderPipeline) StateID() glstate.StateID {
	return p.state
}

// Core returns true if the pipeline uses separate attribute formats.
func (p *RenderPipeline) Core() bool {
	return p.core
}

// Bindings returns the vertex attribute bindings of the pipeline.
func (p *RenderPipeline) Bindings() []pipeline.Binding {
	return p.binder.Bindings()
}

// Duplicates returns the layout elements that replaced an earlier element
// for the same attribute.
func (p *RenderPipeline) Duplicates() []string {
	return p.binder.Duplicates()
}

func (p *RenderPipeline) String() string {
	return p.label
}

// fill returns the state to register for the pipeline.
func (p *RenderPipeline) fill(base *glstate.State) glstate.State {
	st := *base
	st.Program.Program = p.program
	if p.core {
		p.binder.FillState(&st)
	}
	return st
}

// CreateRenderPipeline returns nil if the pipeline cannot be created. The
// reason is reported through the message sink.
func (dev *Device) CreateRenderPipeline(desc RenderPipelineDesc) *RenderPipeline {
	dev.thread.Check("create pipeline")
	if desc.Layout == nil {
		dev.messagef("%s: no input layout", desc.Label)
		return nil
	}

	base := desc.State
	primitive := desc.Primitive
	if desc.Preset != "" {
		pr, ok := dev.presets[desc.Preset]
		if !ok {
			dev.messagef("%s: unknown preset (%s)", desc.Label, desc.Preset)
			return nil
		}
		base = &pr.preset.State
		primitive = pr.preset.Primitive
	}
	if base == nil {
		def := glstate.NewState()
		base = &def
	}

	attrs := desc.Attributes
	if attrs == nil {
		if dev.refl == nil {
			dev.messagef("%s: no attributes for program %d", desc.Label, desc.Program)
			return nil
		}
		var err error
		attrs, err = dev.refl.ActiveAttributes(desc.Program)
		if err != nil {
			dev.messagef("%s: %v", desc.Label, err)
			return nil
		}
	}

	p := &RenderPipeline{
		label:   desc.Label,
		program: desc.Program,
		preset:  desc.Preset,
	}

	if dev.sys.CoreOnly() {
		p.core = true
		p.binder = pipeline.NewCore(dev.prefs.AddressRange.Get().(bool))
	} else {
		p.binder = pipeline.NewLegacy()
	}

	err := p.binder.Setup(pipeline.Desc{Layout: desc.Layout, Attributes: attrs})
	if err != nil {
		dev.messagef("%s: %v", desc.Label, err)
		return nil
	}
	for _, d := range p.binder.Duplicates() {
		dev.messagef("%s: duplicate input element (%s)", desc.Label, d)
	}

	ids, err := dev.sys.Generate(1)
	if err != nil {
		dev.messagef("%s: %v", desc.Label, err)
		return nil
	}
	p.state = ids[0]

	st := p.fill(base)
	dev.setState(p.state, &st, primitive)

	dev.pipelines = append(dev.pipelines, p)
	dev.prepare(p)

	return p
}

// UpdateRenderPipeline replaces the render state of the pipeline. The
// pipeline no longer follows the preset it was created with.
func (dev *Device) UpdateRenderPipeline(p *RenderPipeline, st *glstate.State, primitive glstate.Enum) {
	if p == nil || p.destroyed {
		dev.Message("update: no pipeline")
		return
	}
	if st == nil {
		def := glstate.NewState()
		st = &def
	}
	p.preset = ""
	s := p.fill(st)
	dev.setState(p.state, &s, primitive)
	dev.prepare(p)
}

// DestroyRenderPipeline releases the pipeline's render state. The pipeline
// must not be used after it has been destroyed.
func (dev *Device) DestroyRenderPipeline(p *RenderPipeline) {
	dev.thread.Check("destroy pipeline")
	if p == nil || p.destroyed {
		return
	}
	for i, q := range dev.pipelines {
		if q == p {
			dev.pipelines = append(dev.pipelines[:i], dev.pipelines[i+1:]...)
			break
		}
	}
	dev.destroyState(p.state)
	if dev.current == p {
		dev.current = nil
	}
	p.destroyed = true
}

// prepare computes the diff in each direction between the pipeline and
// every other pipeline, if the Prepare preference is set.
func (dev *Device) prepare(p *RenderPipeline) {
	if !dev.prefs.Prepare.Get().(bool) {
		return
	}
	for _, q := range dev.pipelines {
		if q == p {
			continue
		}
		dev.sys.PrepareTransition(p.state, q.state)
		dev.sys.PrepareTransition(q.state, p.state)
	}
}
