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

package device_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
	"github.com/lightmass/lightmass/pipeline"
	"github.com/lightmass/lightmass/presets"
	"github.com/lightmass/lightmass/random"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/test"
)

var elements = []pipeline.InputElement{
	{Semantic: "POSITION", Format: gputypes.VertexFormatFloat32x3, Slot: 0, StepMode: gputypes.VertexStepModeVertex},
	{Semantic: "TEXCOORD", SemanticIndex: 1, Format: gputypes.VertexFormatFloat32x2, Slot: 0, StepMode: gputypes.VertexStepModeVertex},
	{Semantic: "COLOR", Format: gputypes.VertexFormatUnorm8x4, Slot: 0, StepMode: gputypes.VertexStepModeVertex},
	{Semantic: "INSTANCE", Format: gputypes.VertexFormatUint32x4, Slot: 1, StepMode: gputypes.VertexStepModeInstance},
}

// two programs that consume different parts of the layout
var programs = map[uint32][]pipeline.Attribute{
	1: {
		{Semantic: "POSITION", Location: 0},
		{Semantic: "COLOR", Location: 1},
	},
	2: {
		{Semantic: "POSITION", Location: 0},
		{Semantic: "TEXCOORD", SemanticIndex: 1, Location: 3},
		{Semantic: "INSTANCE", Location: 4},
	},
}

var vbos = []pipeline.VertexBuffer{{Handle: 10}, {Handle: 11}}

type options struct {
	core      bool
	stateDiff bool
	prepare   bool
}

func newDevice(t *testing.T, opt options) (*device.Device, *softgl.Context) {
	t.Helper()

	p := device.DefaultPreferences()
	test.DemandSuccess(t, p.CoreOnly.Set(opt.core))
	test.DemandSuccess(t, p.StateDiff.Set(opt.stateDiff))
	test.DemandSuccess(t, p.Prepare.Set(opt.prepare))

	profile := softgl.Compatibility
	if opt.core {
		profile = softgl.Core
	}
	ctx := softgl.New(profile)
	for id, attrs := range programs {
		ctx.DefineProgram(id, attrs)
	}

	return device.NewDevice(ctx, ctx, p), ctx
}

func renderStates() []glstate.State {
	opaque := glstate.NewState()
	opaque.Enable.Set(glstate.CapDepthTest, true)
	opaque.Depth.Func = glstate.Lequal

	blended := glstate.NewState()
	blended.Enable.Set(glstate.CapBlend, true)
	blended.Blend.Blends[0].RGB = glstate.BlendMode{SrcW: glstate.SrcAlpha, DstW: glstate.OneMinusSrcAlpha, Equ: glstate.FuncAdd}
	blended.Mask.Depth = false

	split := glstate.NewState()
	split.Blend.UseSeparate = true
	split.Blend.SeparateEnable = 0b101
	split.Blend.Blends[2].RGB.SrcW = glstate.DstColor

	wire := glstate.NewState()
	wire.Raster.PolyMode = glstate.Line
	wire.Raster.LineWidth = 2
	wire.Viewport.Rects[0] = glstate.Rect{Width: 320, Height: 240}
	wire.Depth.Func = glstate.Greater

	return []glstate.State{opaque, blended, split, wire}
}

func createPipelines(t *testing.T, dev *device.Device) []*device.RenderPipeline {
	t.Helper()

	l := dev.CreateInputLayout(elements)
	test.DemandInequality(t, l, nil)

	var ps []*device.RenderPipeline
	for i, st := range renderStates() {
		p := dev.CreateRenderPipeline(device.RenderPipelineDesc{
			Label:     "pipeline",
			Layout:    l,
			Program:   uint32(i%2) + 1,
			State:     &st,
			Primitive: glstate.Triangles,
		})
		test.DemandInequality(t, p, nil)
		ps = append(ps, p)
	}
	return ps
}

// normalise removes vertex input state that is not visible to a draw.
// attributes that are disabled and bindings that no enabled attribute reads
// from are cleared.
func normalise(s softgl.Snapshot) softgl.Snapshot {
	var bindings uint32
	for i := range s.Attribs {
		if s.Attribs[i].Enabled {
			bindings |= 1 << s.Attribs[i].Binding
		} else {
			s.Attribs[i] = softgl.Attrib{}
		}
	}
	for i := range s.Bindings {
		if bindings&(1<<i) == 0 {
			s.Bindings[i] = softgl.Binding{}
		}
	}
	s.ArrayBuffer = 0
	return s
}

var sequence = []int{0, 1, 2, 3, 1, 0, 3, 3, 2, 0, 1, 1}

func TestImplements(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	test.DemandImplements[device.DrawContext](t, ctx)
	test.DemandImplements[device.Reflector](t, ctx)
	test.DemandImplements[device.DrawContext](t, softgl.NewAddressRange(softgl.Core))
}

func testEquivalence(t *testing.T, core bool) {
	diffDev, diffCtx := newDevice(t, options{core: core, stateDiff: true})
	bruteDev, bruteCtx := newDevice(t, options{core: core, stateDiff: false})

	diffPipes := createPipelines(t, diffDev)
	brutePipes := createPipelines(t, bruteDev)

	for n, i := range sequence {
		diffDev.Draw(diffPipes[i], vbos, 0, 3, 1)
		bruteDev.Draw(brutePipes[i], vbos, 0, 3, 1)
		test.ExpectEquality(t, normalise(diffCtx.Snapshot()), normalise(bruteCtx.Snapshot()), n, i)
	}

	test.ExpectEquality(t, diffCtx.Error(), glstate.NoError)
	test.ExpectEquality(t, bruteCtx.Error(), glstate.NoError)

	// both devices draw with the same vertex input
	dd := diffCtx.Draws()
	bd := bruteCtx.Draws()
	test.DemandEquality(t, len(dd), len(sequence))
	test.DemandEquality(t, len(bd), len(sequence))
	for n := range dd {
		a := softgl.Snapshot{Attribs: dd[n].Attribs, Bindings: dd[n].Bindings}
		b := softgl.Snapshot{Attribs: bd[n].Attribs, Bindings: bd[n].Bindings}
		test.ExpectEquality(t, normalise(a), normalise(b), n)
		test.ExpectEquality(t, dd[n].Program, bd[n].Program, n)
	}

	// diffing always issues fewer calls
	test.ExpectSuccess(t, diffCtx.Calls() < bruteCtx.Calls(), diffCtx.Calls(), bruteCtx.Calls())

	st := diffDev.System().Stats()
	test.ExpectEquality(t, st.FullApplies, 1)
	test.ExpectEquality(t, st.DiffApplies, len(sequence)-1)
	test.ExpectEquality(t, st.ZeroDiffs, 2)

	st = bruteDev.System().Stats()
	test.ExpectEquality(t, st.FullApplies, len(sequence))
	test.ExpectEquality(t, st.DiffApplies, 0)
}

func TestEquivalenceCore(t *testing.T) {
	testEquivalence(t, true)
}

func TestEquivalenceLegacy(t *testing.T) {
	testEquivalence(t, false)
}

func TestRandomEquivalence(t *testing.T) {
	for _, core := range []bool{true, false} {
		rnd := random.NewRandom(true)

		diffDev, diffCtx := newDevice(t, options{core: core, stateDiff: true})
		bruteDev, bruteCtx := newDevice(t, options{core: core})

		var diffPipes, brutePipes []*device.RenderPipeline
		dl := diffDev.CreateInputLayout(elements)
		bl := bruteDev.CreateInputLayout(elements)
		for i := range 12 {
			st := rnd.State(6, core)
			desc := device.RenderPipelineDesc{Layout: dl, Program: uint32(i%2) + 1, State: &st}
			diffPipes = append(diffPipes, diffDev.CreateRenderPipeline(desc))
			desc.Layout = bl
			brutePipes = append(brutePipes, bruteDev.CreateRenderPipeline(desc))
		}

		for n, i := range rnd.Sequence(len(diffPipes), 200, 0.2) {
			diffDev.Draw(diffPipes[i], vbos, 0, 3, 1)
			bruteDev.Draw(brutePipes[i], vbos, 0, 3, 1)
			if !test.ExpectEquality(t, normalise(diffCtx.Snapshot()), normalise(bruteCtx.Snapshot()), core, n) {
				break
			}
		}
		test.ExpectEquality(t, diffCtx.Error(), glstate.NoError, core)
	}
}

func TestRepeatDraw(t *testing.T) {
	for _, core := range []bool{true, false} {
		dev, ctx := newDevice(t, options{core: core, stateDiff: true})
		ps := createPipelines(t, dev)

		dev.Draw(ps[1], vbos, 0, 3, 1)
		ctx.ResetCounts()

		// the same pipeline with the same buffers only issues the draw
		dev.Draw(ps[1], vbos, 0, 3, 1)
		test.ExpectEquality(t, ctx.Calls(), 1, core)
		test.ExpectEquality(t, ctx.Count("DrawArrays"), 1, core)

		// a changed buffer rebinds only that slot
		ctx.ResetCounts()
		dev.Draw(ps[1], []pipeline.VertexBuffer{{Handle: 12}, {Handle: 11}}, 0, 3, 1)
		if core {
			test.ExpectEquality(t, ctx.Count("BindVertexBuffer"), 1)
		} else {
			test.ExpectEquality(t, ctx.Count("BindBuffer"), 1)
			test.ExpectEquality(t, ctx.Count("VertexAttribPointer"), 2)
		}
	}
}

func TestLegacyPipelineChange(t *testing.T) {
	dev, ctx := newDevice(t, options{stateDiff: true})
	ps := createPipelines(t, dev)

	dev.Draw(ps[0], vbos, 0, 3, 1)

	// a different pipeline specifies its attributes again
	ctx.ResetCounts()
	dev.Draw(ps[1], vbos, 0, 3, 1)
	test.ExpectEquality(t, ctx.Count("VertexAttribPointer"), 2)
	test.ExpectEquality(t, ctx.Count("VertexAttribIPointer"), 1)
	test.ExpectEquality(t, ctx.Count("VertexAttribDivisor"), 3)

	d := ctx.Draws()[1]
	test.ExpectSuccess(t, d.Attribs[0].Enabled)
	test.ExpectFailure(t, d.Attribs[1].Enabled)
	test.ExpectSuccess(t, d.Attribs[3].Enabled)
	test.ExpectSuccess(t, d.Attribs[4].Enabled)
	test.ExpectSuccess(t, d.Attribs[4].Integer)
	test.ExpectEquality(t, d.Bindings[4].Buffer, uint32(11))
	test.ExpectEquality(t, d.Bindings[4].Divisor, uint32(1))
	test.ExpectEquality(t, d.Bindings[3].Offset, 12)
	test.ExpectEquality(t, d.Bindings[3].Stride, int32(24))
	test.ExpectEquality(t, d.Program, uint32(2))
}

func TestDrawModes(t *testing.T) {
	dev, ctx := newDevice(t, options{core: true, stateDiff: true})

	l := dev.CreateInputLayout(elements)
	lines := dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Label: "lines", Layout: l, Program: 1, Primitive: glstate.Lines,
	})
	test.DemandInequality(t, lines, nil)

	dev.Draw(lines, vbos, 2, 6, 0)
	dev.Draw(lines, vbos, 0, 6, 4)

	ib := device.IndexBuffer{Handle: 20, Type: glstate.UnsignedShort, Offset: 8}
	dev.DrawIndexed(lines, vbos, ib, 12, 1)
	ctx.ResetCounts()
	dev.DrawIndexed(lines, vbos, ib, 12, 3)

	// the index buffer is not rebound
	test.ExpectEquality(t, ctx.Count("BindBuffer"), 0)
	test.ExpectEquality(t, ctx.Count("DrawElementsInstanced"), 1)

	d := ctx.Draws()
	test.DemandEquality(t, len(d), 4)
	test.ExpectEquality(t, dev.Draws(), 4)

	test.ExpectEquality(t, d[0].Mode, glstate.Lines)
	test.ExpectEquality(t, d[0].First, int32(2))
	test.ExpectEquality(t, d[0].Instances, int32(1))
	test.ExpectEquality(t, d[1].Instances, int32(4))
	test.ExpectSuccess(t, d[2].Indexed)
	test.ExpectEquality(t, d[2].IndexBuffer, uint32(20))
	test.ExpectEquality(t, d[2].IndexType, glstate.UnsignedShort)
	test.ExpectEquality(t, d[2].Offset, uintptr(8))
	test.ExpectEquality(t, d[3].Instances, int32(3))

	// an invalidated device binds the index buffer again
	dev.Invalidate()
	ctx.ResetCounts()
	dev.DrawIndexed(lines, vbos, ib, 12, 1)
	test.ExpectEquality(t, ctx.Count("BindBuffer"), 1)
}

func TestInvalidate(t *testing.T) {
	dev, ctx := newDevice(t, options{core: true, stateDiff: true})
	ps := createPipelines(t, dev)

	dev.Draw(ps[0], vbos, 0, 3, 1)
	dev.Draw(ps[0], vbos, 0, 3, 1)
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 1)

	// something else changes the context
	ctx.Disable(glstate.DepthTest)
	dev.Invalidate()

	ctx.ResetCounts()
	dev.Draw(ps[0], vbos, 0, 3, 1)
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 2)
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.DepthTest))
	test.ExpectEquality(t, ctx.Count("BindVertexBuffer"), 1)
}

func TestApplyRenderState(t *testing.T) {
	dev, ctx := newDevice(t, options{stateDiff: true})
	ps := createPipelines(t, dev)

	dev.Draw(ps[0], vbos, 0, 3, 1)
	dev.ApplyRenderState(ps[1])
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.Blend))
	test.ExpectFailure(t, ctx.IsEnabled(glstate.DepthTest))
	test.ExpectEquality(t, dev.Draws(), 1)
	test.ExpectEquality(t, len(ctx.Draws()), 1)

	// the vertex input of the next draw is specified in full even though
	// the pipeline is the same as the previous draw
	ctx.ResetCounts()
	dev.Draw(ps[0], vbos, 0, 3, 1)
	test.ExpectEquality(t, ctx.Count("VertexAttribPointer"), 2)
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.DepthTest))
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 1)

	logger.Clear()
	dev.ApplyRenderState(nil)
	expectMessage(t, "apply: no pipeline")
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}

func TestPrepare(t *testing.T) {
	dev, _ := newDevice(t, options{core: true, stateDiff: true, prepare: true})
	ps := createPipelines(t, dev)

	// two diffs for every pair
	n := len(ps)
	test.ExpectEquality(t, dev.System().Stats().Misses, n*(n-1))

	dev.System().ResetStats()
	var self int
	for n, i := range sequence {
		dev.Draw(ps[i], vbos, 0, 3, 1)
		if n > 0 && sequence[n-1] == i {
			self++
		}
	}

	// transitions from a state to itself need no diff
	st := dev.System().Stats()
	test.ExpectEquality(t, st.Misses, 0)
	test.ExpectEquality(t, st.Hits, len(sequence)-1-self)
	test.ExpectEquality(t, st.ZeroDiffs, self)
}

func TestUpdate(t *testing.T) {
	dev, ctx := newDevice(t, options{core: true, stateDiff: true})
	ps := createPipelines(t, dev)

	dev.Draw(ps[1], vbos, 0, 3, 1)
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.Blend))

	// the context still holds the old content of the state
	st := glstate.NewState()
	st.Enable.Set(glstate.CapStencilTest, true)
	dev.UpdateRenderPipeline(ps[1], &st, glstate.Points)

	dev.Draw(ps[1], vbos, 0, 3, 1)
	test.ExpectFailure(t, ctx.IsEnabled(glstate.Blend))
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.StencilTest))
	test.ExpectEquality(t, ctx.Draws()[1].Mode, glstate.Points)
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 2)

	// the program and vertex input are kept
	got := dev.System().Get(ps[1].StateID())
	test.ExpectEquality(t, got.Program.Program, uint32(2))
	test.ExpectInequality(t, got.VertexEnable.Enabled, uint32(0))
}

func TestDestroy(t *testing.T) {
	dev, ctx := newDevice(t, options{core: true, stateDiff: true})
	ps := createPipelines(t, dev)
	test.ExpectEquality(t, len(dev.Pipelines()), 4)

	dev.Draw(ps[0], vbos, 0, 3, 1)
	dev.DestroyRenderPipeline(ps[0])
	dev.DestroyRenderPipeline(ps[0])
	test.ExpectEquality(t, len(dev.Pipelines()), 3)
	test.ExpectEquality(t, dev.System().Allocated(), 3)

	// the state of the destroyed pipeline cannot be diffed from
	dev.Draw(ps[1], vbos, 0, 3, 1)
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 2)

	// a destroyed pipeline is not drawn
	dev.Draw(ps[0], vbos, 0, 3, 1)
	test.ExpectEquality(t, len(ctx.Draws()), 2)

	// the freed state is reused by the next pipeline
	l := dev.CreateInputLayout(elements)
	p := dev.CreateRenderPipeline(device.RenderPipelineDesc{Layout: l, Program: 1})
	test.DemandInequality(t, p, nil)
	test.ExpectEquality(t, p.StateID(), ps[0].StateID())
}

// messages returns the entries logged by the device since the log was
// cleared.
func messages() []string {
	var m []string
	for _, e := range logger.Copy() {
		if e.Tag == "device" {
			m = append(m, e.Detail)
		}
	}
	return m
}

func expectMessage(t *testing.T, contains string) {
	t.Helper()
	for _, m := range messages() {
		if strings.Contains(m, contains) {
			return
		}
	}
	t.Errorf("no message containing %q", contains)
}

func TestCreateFailures(t *testing.T) {
	logger.Clear()

	dev, ctx := newDevice(t, options{core: true, stateDiff: true})

	l := dev.CreateInputLayout([]pipeline.InputElement{
		{Semantic: "POSITION", Format: gputypes.VertexFormat(0xffff)},
	})
	test.ExpectEquality(t, l, nil)
	expectMessage(t, "unsupported vertex format")

	p := dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "nolayout", Program: 1})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "nolayout: no input layout")

	l = dev.CreateInputLayout(elements)
	test.DemandInequality(t, l, nil)

	p = dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "noprogram", Layout: l, Program: 99})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "unknown program")

	p = dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "nopreset", Layout: l, Program: 1, Preset: "missing"})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "unknown preset")

	p = dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Label: "location", Layout: l,
		Attributes: []pipeline.Attribute{{Semantic: "POSITION", Location: glstate.MaxVertexAttribs}},
	})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "attribute location out of range")

	// no state is allocated by a failed creation
	test.ExpectEquality(t, dev.System().Allocated(), 0)

	// pool limit
	test.DemandSuccess(t, dev.Preferences().MaxStates.Set(1))
	p = dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "first", Layout: l, Program: 1})
	test.ExpectInequality(t, p, nil)
	p = dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "second", Layout: l, Program: 1})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "pool exhausted")

	// no reflector
	nr := device.NewDevice(ctx, nil, nil)
	p = nr.CreateRenderPipeline(device.RenderPipelineDesc{Label: "noreflect", Layout: nr.CreateInputLayout(elements), Program: 1})
	test.ExpectEquality(t, p, nil)
	expectMessage(t, "noreflect: no attributes")

	// draws without a pipeline are skipped
	dev.Draw(nil, vbos, 0, 3, 1)
	dev.DrawIndexed(nil, vbos, device.IndexBuffer{}, 3, 1)
	test.ExpectEquality(t, len(ctx.Draws()), 0)
	expectMessage(t, "draw: no pipeline")
}

func TestDuplicates(t *testing.T) {
	logger.Clear()

	dev, _ := newDevice(t, options{core: true, stateDiff: true})
	l := dev.CreateInputLayout(append(elements[:3:3],
		pipeline.InputElement{Semantic: "COLOR", Format: gputypes.VertexFormatFloat32x4, Slot: 0},
	))
	p := dev.CreateRenderPipeline(device.RenderPipelineDesc{Label: "dup", Layout: l, Program: 1})
	test.DemandInequality(t, p, nil)

	test.ExpectEquality(t, len(p.Duplicates()), 1)
	test.ExpectEquality(t, len(p.Bindings()), 2)
	test.ExpectEquality(t, p.Bindings()[1].Type, glstate.Float)
	expectMessage(t, "dup: duplicate input element (COLOR0)")
}

func TestAddressRange(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		p := device.DefaultPreferences()
		test.DemandSuccess(t, p.CoreOnly.Set(true))
		test.DemandSuccess(t, p.AddressRange.Set(enabled))

		ctx := softgl.NewAddressRange(softgl.Core)
		ctx.DefineProgram(2, programs[2])
		dev := device.NewDevice(ctx, ctx, p)

		rp := dev.CreateRenderPipeline(device.RenderPipelineDesc{Layout: dev.CreateInputLayout(elements), Program: 2})
		test.DemandInequality(t, rp, nil)

		dev.Draw(rp, []pipeline.VertexBuffer{
			{Address: 0x10000, Size: 1024},
			{Address: 0x20000, Offset: 64, Size: 1024},
		}, 0, 3, 2)

		if enabled {
			test.ExpectEquality(t, ctx.Count("BufferAddressRange"), 2)
			test.ExpectEquality(t, ctx.Count("BindVertexBuffer"), 2)
		} else {
			// buffers with only an address are not bound
			test.ExpectEquality(t, ctx.Count("BufferAddressRange"), 0)
			test.ExpectEquality(t, ctx.Count("BindVertexBuffer"), 0)
		}
		test.ExpectEquality(t, ctx.Error(), glstate.NoError)
	}
}

const presetData = `
[[preset]]
name = "opaque"
enable = ["DEPTH_TEST"]

[[preset]]
name = "transparent"
enable = ["BLEND"]
primitive = "TRIANGLE_STRIP"

[preset.blend]
src = "SRC_ALPHA"
dst = "ONE_MINUS_SRC_ALPHA"
`

const presetReload = `
[[preset]]
name = "transparent"
enable = ["BLEND", "STENCIL_TEST"]
`

func TestPresets(t *testing.T) {
	dev, ctx := newDevice(t, options{core: true, stateDiff: true})

	list, err := presets.Parse([]byte(presetData))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dev.LoadPresets(list))
	test.ExpectEquality(t, strings.Join(dev.Presets(), ","), "opaque,transparent")

	id, ok := dev.PresetState("transparent")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dev.System().BasePrimitiveMode(id), glstate.TriangleStrip)

	p := dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Layout: dev.CreateInputLayout(elements), Program: 1, Preset: "transparent",
	})
	test.DemandInequality(t, p, nil)

	dev.Draw(p, vbos, 0, 4, 1)
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.Blend))
	test.ExpectFailure(t, ctx.IsEnabled(glstate.StencilTest))
	test.ExpectEquality(t, ctx.Draws()[0].Mode, glstate.TriangleStrip)

	// the pipeline follows the reloaded preset
	inc := dev.System().Incarnation(p.StateID())
	list, err = presets.Parse([]byte(presetReload))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dev.LoadPresets(list))
	test.ExpectInequality(t, dev.System().Incarnation(p.StateID()), inc)
	test.ExpectEquality(t, strings.Join(dev.Presets(), ","), "transparent")

	dev.Draw(p, vbos, 0, 4, 1)
	test.ExpectSuccess(t, ctx.IsEnabled(glstate.StencilTest))
	test.ExpectEquality(t, ctx.Draws()[1].Mode, glstate.Triangles)
	test.ExpectEquality(t, ctx.Draws()[1].Program, uint32(1))

	_, ok = dev.PresetState("opaque")
	test.ExpectFailure(t, ok)
}

func TestPreferencesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := device.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StateDiff.Get().(bool), true)
	test.ExpectEquality(t, p.MaxStates.Get().(int), 0)

	test.DemandSuccess(t, p.StateDiff.Set(false))
	test.DemandSuccess(t, p.MaxStates.Set(64))
	test.DemandSuccess(t, p.Save())

	p, err = device.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StateDiff.Get().(bool), false)
	test.ExpectEquality(t, p.MaxStates.Get().(int), 64)
	test.ExpectSuccess(t, strings.Contains(p.String(), "device.maxstates :: 64"))

	// the limit is passed to the state system
	dev := device.NewDevice(softgl.New(softgl.Compatibility), nil, p)
	_, err = dev.System().Generate(65)
	test.ExpectFailure(t, err)
}
