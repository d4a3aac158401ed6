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

package sdlcontext

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/gui/inspector"
	"github.com/lightmass/lightmass/logger"
	"github.com/lightmass/lightmass/paths"
)

// name of the imgui settings file in the resource directory
const imguiIni = "imgui.ini"

// Window runs the state inspector in the window of a Context. The inspector
// is drawn with the imgui renderer from the inspector package, through the
// same device that the application draws with.
type Window struct {
	ctx   *Context
	imgui *imgui.Context
	plt   *platform

	rnd  *inspector.Renderer
	insp *inspector.Inspector

	// clear colour of the default framebuffer
	Background [4]float32
}

// NewWindow creates the imgui context and the inspector. The GL context of
// ctx must be the one that the device draws to.
func NewWindow(ctx *Context, dev *device.Device, res inspector.Resources) (*Window, error) {
	wnd := &Window{
		ctx:        ctx,
		imgui:      imgui.CreateContext(nil),
		Background: [4]float32{0.1, 0.1, 0.12, 1.0},
	}

	io := imgui.CurrentIO()
	pth, err := paths.ResourcePath("", imguiIni)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "imgui settings not saved: %v", err)
		pth = ""
	}
	io.SetIniFilename(pth)

	wnd.plt = newPlatform(ctx, io)

	wnd.rnd, err = inspector.NewRenderer(dev, res)
	if err != nil {
		wnd.imgui.Destroy()
		return nil, err
	}

	wnd.insp = inspector.NewInspector(dev)
	wnd.insp.SetOpen(true)

	return wnd, nil
}

// Destroy the renderer and the imgui context. The Context is not destroyed.
func (wnd *Window) Destroy() {
	wnd.rnd.Destroy()
	wnd.imgui.Destroy()
}

// Inspector returns the state inspector drawn by the window.
func (wnd *Window) Inspector() *inspector.Inspector {
	return wnd.insp
}

// Service processes pending events and renders one frame. The draw function
// is called inside the imgui frame and may be nil. It returns false once
// the window has been closed, either by the window manager or by closing the
// inspector.
func (wnd *Window) Service(draw func()) bool {
	wnd.plt.processEvents()
	if wnd.plt.shouldStop {
		return false
	}

	wnd.plt.newFrame()
	imgui.NewFrame()

	wnd.insp.Draw()
	if draw != nil {
		draw()
	}

	// draw data only. rendering is done below
	imgui.Render()

	displaySize := wnd.ctx.DisplaySize()
	framebufferSize := wnd.ctx.FramebufferSize()
	bg := wnd.Background
	wnd.rnd.Clear(framebufferSize, bg[0], bg[1], bg[2], bg[3])
	wnd.rnd.Render(displaySize, framebufferSize, imgui.RenderedDrawData())
	wnd.ctx.Swap()

	return wnd.insp.IsOpen()
}
