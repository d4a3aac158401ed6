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
	"fmt"

	"github.com/lightmass/lightmass/assert"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
	"github.com/lightmass/lightmass/pipeline"
	"github.com/lightmass/lightmass/prefs"
)

// Device owns the state System for a context.
type Device struct {
	ctx   DrawContext
	refl  Reflector
	prefs *Preferences
	sys   *glstate.System

	pipelines []*RenderPipeline
	presets   map[string]*preset

	// the state that was last applied to the context. InvalidID if the
	// state of the context is not known
	last glstate.StateID

	// the pipeline used by the last draw
	current *RenderPipeline

	// the element array buffer bound by the last indexed draw
	indexBuffer uint32
	indexKnown  bool

	draws int

	// the goroutine that created the device
	thread assert.Thread
}

// NewDevice creates a Device for the context. The reflector is used to list
// the attributes of programs and may be nil, in which case every pipeline
// must be created with an explicit attribute list. If prefs is nil the
// default preferences are used.
//
// The CoreOnly preference is read once, when the device is created.
func NewDevice(ctx DrawContext, refl Reflector, p *Preferences) *Device {
	if p == nil {
		p = DefaultPreferences()
	}

	dev := &Device{
		ctx:     ctx,
		refl:    refl,
		prefs:   p,
		presets: make(map[string]*preset),
	}

	dev.thread.Bind()

	coreOnly := p.CoreOnly.Get().(bool)
	dev.sys = glstate.NewSystem(ctx, coreOnly)
	dev.sys.SetLimit(p.MaxStates.Get().(int))
	p.MaxStates.SetHookPost(func(v prefs.Value) error {
		dev.sys.SetLimit(v.(int))
		return nil
	})

	logger.Logf(logger.Allow, "device", "created (core only: %v)", coreOnly)

	return dev
}

// Message reports a problem with the creation or use of a device resource.
func (dev *Device) Message(msg string) {
	logger.Log(logger.Allow, "device", msg)
}

func (dev *Device) messagef(format string, args ...any) {
	dev.Message(fmt.Sprintf(format, args...))
}

// System returns the state System used by the device. States in the System
// must not be changed other than through the device.
func (dev *Device) System() *glstate.System {
	return dev.sys
}

// Preferences returns the preferences used by the device.
func (dev *Device) Preferences() *Preferences {
	return dev.prefs
}

// Pipelines returns the pipelines that have been created and not
// destroyed, in order of creation.
func (dev *Device) Pipelines() []*RenderPipeline {
	return dev.pipelines
}

// Draws returns the number of draws issued by the device.
func (dev *Device) Draws() int {
	return dev.draws
}

// Invalidate must be called when the context has been changed by something
// other than the device. The next draw fully applies its state and rebinds
// all its vertex buffers.
func (dev *Device) Invalidate() {
	dev.last = glstate.InvalidID
	dev.current = nil
	dev.indexKnown = false
}

// setState replaces the content of a state. If the state is the one that
// was last applied then the context is no longer known to match any state
// in the System.
func (dev *Device) setState(id glstate.StateID, st *glstate.State, primitive glstate.Enum) {
	dev.sys.Set(id, st, primitive)
	if id == dev.last {
		dev.last = glstate.InvalidID
	}
}

func (dev *Device) destroyState(id glstate.StateID) {
	dev.sys.Destroy(id)
	if id == dev.last {
		dev.last = glstate.InvalidID
	}
}

// CreateInputLayout returns nil if any element of the layout has a format
// that cannot be used for vertex input.
func (dev *Device) CreateInputLayout(elements []pipeline.InputElement) *pipeline.InputLayout {
	l, err := pipeline.NewInputLayout(elements)
	if err != nil {
		dev.Message(err.Error())
		return nil
	}
	return l
}
