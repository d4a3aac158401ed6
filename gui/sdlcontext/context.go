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
	"runtime"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Error patterns.
const (
	InitError    = "sdl: init: %v"
	WindowError  = "sdl: window: %v"
	ContextError = "sdl: context: %v"
)

// Options for the window and context created by New().
type Options struct {
	Title string

	// size of the window in screen coordinates
	Width  int32
	Height int32

	// a hidden window still has a usable default framebuffer
	Visible bool

	// request a core profile context. a compatibility context is requested
	// otherwise
	Core bool

	// swap interval passed to SDL. one is vsync
	SwapInterval int
}

// DefaultOptions are used for any zero fields in the Options passed to New().
var DefaultOptions = Options{
	Title:        "Lightmass",
	Width:        1280,
	Height:       720,
	SwapInterval: 1,
}

// Context is an SDL window with a current OpenGL 4.5 context.
type Context struct {
	opts      Options
	window    *sdl.Window
	glContext sdl.GLContext
}

func (opts *Options) fill() {
	if opts.Title == "" {
		opts.Title = DefaultOptions.Title
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions.Height
	}
}

// New initialises SDL and creates the window and context. The context is
// made current on the calling thread.
func New(opts Options) (*Context, error) {
	opts.fill()

	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version: %d.%d.%d", v.Major, v.Minor, v.Patch)

	// attributes must be set before the window is created
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 5)
	if opts.Core {
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	} else {
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	_ = sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Visible {
		flags |= sdl.WINDOW_RESIZABLE
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	ctx := &Context{opts: opts}

	ctx.window, err = sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		opts.Width, opts.Height, flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowError, err)
	}

	ctx.glContext, err = ctx.window.GLCreateContext()
	if err != nil {
		ctx.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	err = ctx.window.GLMakeCurrent(ctx.glContext)
	if err != nil {
		ctx.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	err = sdl.GLSetSwapInterval(opts.SwapInterval)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
	}

	profile := "compatibility"
	if opts.Core {
		profile = "core"
	}
	logger.Logf(logger.Allow, "sdl", "context: 4.5 %s (visible: %v)", profile, opts.Visible)

	return ctx, nil
}

// Destroy deletes the GL context and the window, and shuts SDL down.
func (ctx *Context) Destroy() {
	if ctx.glContext != nil {
		sdl.GLDeleteContext(ctx.glContext)
		ctx.glContext = nil
	}
	if ctx.window != nil {
		_ = ctx.window.Destroy()
		ctx.window = nil
	}
	sdl.Quit()
}

// Core is true if a core profile context was requested.
func (ctx *Context) Core() bool {
	return ctx.opts.Core
}

// DisplaySize returns the size of the window in screen coordinates.
func (ctx *Context) DisplaySize() [2]float32 {
	w, h := ctx.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the size of the default framebuffer in pixels.
// This differs from the display size on high DPI screens.
func (ctx *Context) FramebufferSize() [2]float32 {
	w, h := ctx.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// Swap presents the default framebuffer.
func (ctx *Context) Swap() {
	ctx.window.GLSwap()
}
