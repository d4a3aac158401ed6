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

package inspector_test

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/gui/inspector"
	"github.com/lightmass/lightmass/presets"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/test"
)

const width = 800
const height = 600

// newImgui creates an imgui context with no platform. The returned function
// destroys the context.
func newImgui(t *testing.T) func() {
	t.Helper()
	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetDisplaySize(imgui.Vec2{X: width, Y: height})
	return ctx.Destroy
}

func newDevice(t *testing.T) (*device.Device, *softgl.Context) {
	t.Helper()
	p := device.DefaultPreferences()
	test.DemandSuccess(t, p.CoreOnly.Set(true))
	ctx := softgl.New(softgl.Core)
	return device.NewDevice(ctx, ctx, p), ctx
}

func frame(rnd *inspector.Renderer, draw func()) {
	imgui.NewFrame()
	draw()
	imgui.Render()
	rnd.Clear([2]float32{width, height}, 0, 0, 0, 1)
	rnd.Render([2]float32{width, height}, [2]float32{width, height}, imgui.RenderedDrawData())
}

func TestRenderer(t *testing.T) {
	defer newImgui(t)()
	dev, ctx := newDevice(t)

	rnd, err := inspector.NewRenderer(dev, ctx)
	test.DemandSuccess(t, err)
	defer rnd.Destroy()

	frame(rnd, func() {
		imgui.Begin("first")
		imgui.Text("hello")
		imgui.End()
		imgui.Begin("second")
		imgui.Text("world")
		imgui.End()
	})
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
	test.ExpectEquality(t, ctx.Count("Clear"), 1)

	draws := ctx.Draws()
	test.DemandSuccess(t, len(draws) > 0)
	for i, d := range draws {
		test.ExpectSuccess(t, d.Indexed, i)
		test.ExpectSuccess(t, d.ScissorEnable, i)
		test.ExpectInequality(t, d.Texture, uint32(0), i)
		test.ExpectInequality(t, d.Program, uint32(0), i)
		test.ExpectEquality(t, d.Mode, glstate.Triangles, i)
	}

	// one pipeline per scissor rectangle plus one for the clear
	n := rnd.Pipelines()
	test.ExpectSuccess(t, n > 0)
	test.ExpectEquality(t, dev.System().Allocated(), n+1)

	// the same frame again applies no full state
	dev.System().ResetStats()
	frame(rnd, func() {
		imgui.Begin("first")
		imgui.Text("hello")
		imgui.End()
		imgui.Begin("second")
		imgui.Text("world")
		imgui.End()
	})
	test.ExpectEquality(t, dev.System().Stats().FullApplies, 0)
	test.ExpectEquality(t, rnd.Pipelines(), n)

	// pipelines that are not used in a frame are destroyed
	frame(rnd, func() {})
	test.ExpectEquality(t, rnd.Pipelines(), 0)
	test.ExpectEquality(t, dev.System().Allocated(), 1)
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}

func TestRendererResize(t *testing.T) {
	defer newImgui(t)()
	dev, ctx := newDevice(t)

	rnd, err := inspector.NewRenderer(dev, ctx)
	test.DemandSuccess(t, err)
	defer rnd.Destroy()

	frame(rnd, func() {
		imgui.Text("hello")
	})
	test.ExpectEquality(t, ctx.Snapshot().Viewport[0], glstate.Rect{Width: width, Height: height})

	// minimised
	ctx.ClearDraws()
	rnd.Render([2]float32{width, height}, [2]float32{0, 0}, imgui.RenderedDrawData())
	test.ExpectEquality(t, len(ctx.Draws()), 0)

	// high DPI framebuffer
	imgui.NewFrame()
	imgui.Text("hello")
	imgui.Render()
	rnd.Render([2]float32{width, height}, [2]float32{width * 2, height * 2}, imgui.RenderedDrawData())
	test.ExpectEquality(t, ctx.Snapshot().Viewport[0], glstate.Rect{Width: width * 2, Height: height * 2})
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
}

func TestInspector(t *testing.T) {
	defer newImgui(t)()
	dev, ctx := newDevice(t)

	list, err := presets.Parse([]byte(`
[[preset]]
name = "opaque"
enable = ["DEPTH_TEST"]
`))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dev.LoadPresets(list))

	ctx.DefineProgram(7, nil)
	l := dev.CreateInputLayout(nil)
	test.DemandInequality(t, l, nil)
	p := dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Label:   "scene",
		Layout:  l,
		Program: 7,
		Preset:  "opaque",
	})
	test.DemandInequality(t, p, nil)

	rnd, err := inspector.NewRenderer(dev, ctx)
	test.DemandSuccess(t, err)
	defer rnd.Destroy()

	insp := inspector.NewInspector(dev)
	test.ExpectSuccess(t, insp.IsOpen())
	test.ExpectEquality(t, insp.Selected(), glstate.InvalidID)

	insp.Select(p.StateID())
	test.ExpectEquality(t, insp.Selected(), p.StateID())
	insp.Select(glstate.StateID(1000))
	test.ExpectEquality(t, insp.Selected(), glstate.InvalidID)
	insp.Select(p.StateID())

	// draw the inspector twice so that the renderer pipelines appear in
	// the second frame
	frame(rnd, insp.Draw)
	frame(rnd, insp.Draw)
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)

	var scene, preset, imguiPipelines int
	for _, e := range insp.Entries() {
		for _, l := range e.Labels {
			switch {
			case l == "scene":
				scene++
				test.ExpectEquality(t, e.ID, p.StateID())
			case l == "[opaque]":
				preset++
			case len(l) >= len(inspector.LabelPrefix) && l[:len(inspector.LabelPrefix)] == inspector.LabelPrefix:
				imguiPipelines++
			}
		}
	}
	test.ExpectEquality(t, scene, 1)
	test.ExpectEquality(t, preset, 1)
	test.ExpectEquality(t, imguiPipelines, rnd.Pipelines()+1)

	// the selected state is destroyed
	dev.DestroyRenderPipeline(p)
	frame(rnd, insp.Draw)
	test.ExpectEquality(t, insp.Selected(), glstate.InvalidID)

	insp.SetOpen(false)
	test.ExpectFailure(t, insp.IsOpen())
}
