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

package inspector

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
)

// Error patterns.
const (
	RendererError = "inspector: renderer: %v"
)

// Resources creates and fills the GL objects used by the Renderer. None of
// the functions may change state that is tracked by the device.
type Resources interface {
	CompileProgram(vertex string, fragment string) (uint32, error)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	ProgramUniformMatrix4(program uint32, location int32, m *[4][4]float32)
	ProgramUniform1i(program uint32, location int32, v int32)

	CreateBuffer() uint32
	DeleteBuffer(buffer uint32)
	BufferData(buffer uint32, data unsafe.Pointer, size int)

	CreateAlphaTexture(width int32, height int32, pixels unsafe.Pointer) uint32
	DeleteTexture(texture uint32)
	BindTexture(unit uint32, texture uint32)

	Clear(red, green, blue, alpha float32)
}

// the imgui vertex is a position, a texture coordinate and a packed colour
var imguiLayout = []pipeline.InputElement{
	{Semantic: "Position", Format: gputypes.VertexFormatFloat32x2, StepMode: gputypes.VertexStepModeVertex},
	{Semantic: "UV", Format: gputypes.VertexFormatFloat32x2, StepMode: gputypes.VertexStepModeVertex},
	{Semantic: "Color", Format: gputypes.VertexFormatUnorm8x4, StepMode: gputypes.VertexStepModeVertex},
}

// LabelPrefix is the start of the label of every pipeline created by the
// Renderer.
const LabelPrefix = "imgui"

type clipPipeline struct {
	p    *device.RenderPipeline
	used bool
}

// Renderer draws imgui draw data with a device.Device.
type Renderer struct {
	dev *device.Device
	res Resources

	program uint32
	projMtx int32
	texture int32

	layout *pipeline.InputLayout
	vbo    uint32
	ibo    uint32
	font   uint32

	// the framebuffer size that the pipelines were created for
	fbw int32
	fbh int32

	// render state shared by every pipeline. only the scissor
	// rectangle differs
	base glstate.State

	// pipelines by scissor rectangle. a pipeline not used for one frame is
	// destroyed
	pipelines map[glstate.ScissorRect]*clipPipeline

	// the pipeline used by Clear()
	clear *device.RenderPipeline
}

// NewRenderer creates the GL objects needed to draw imgui. The current imgui
// context provides the font atlas.
func NewRenderer(dev *device.Device, res Resources) (*Renderer, error) {
	rnd := &Renderer{
		dev:       dev,
		res:       res,
		pipelines: make(map[glstate.ScissorRect]*clipPipeline),
	}

	var err error
	rnd.program, err = res.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, curated.Errorf(RendererError, err)
	}
	rnd.projMtx = res.UniformLocation(rnd.program, "ProjMtx")
	rnd.texture = res.UniformLocation(rnd.program, "Texture")

	rnd.layout = dev.CreateInputLayout(imguiLayout)
	if rnd.layout == nil {
		rnd.Destroy()
		return nil, curated.Errorf(RendererError, "input layout")
	}

	rnd.vbo = res.CreateBuffer()
	rnd.ibo = res.CreateBuffer()

	// build the font atlas and upload it
	fonts := imgui.CurrentIO().Fonts()
	img := fonts.TextureDataAlpha8()
	rnd.font = res.CreateAlphaTexture(int32(img.Width), int32(img.Height), img.Pixels)
	fonts.SetTextureID(imgui.TextureID(rnd.font))

	// alpha blending, no face culling, no depth testing, scissor enabled
	// and polygon fill. apart from blending and scissor these are the
	// defaults
	rnd.base = glstate.NewState()
	rnd.base.Enable.Set(glstate.CapBlend, true)
	rnd.base.Blend.Blends[0].RGB = glstate.BlendMode{SrcW: glstate.SrcAlpha, DstW: glstate.OneMinusSrcAlpha, Equ: glstate.FuncAdd}
	rnd.base.Blend.Blends[0].Alpha = rnd.base.Blend.Blends[0].RGB
	rnd.base.ScissorEnable.SeparateEnable = 1

	return rnd, nil
}

// Destroy the GL objects and the pipelines created by the Renderer.
func (rnd *Renderer) Destroy() {
	rnd.destroyPipelines()
	if rnd.clear != nil {
		rnd.dev.DestroyRenderPipeline(rnd.clear)
		rnd.clear = nil
	}
	if rnd.program != 0 {
		rnd.res.DeleteProgram(rnd.program)
		rnd.program = 0
	}
	if rnd.vbo != 0 {
		rnd.res.DeleteBuffer(rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.ibo != 0 {
		rnd.res.DeleteBuffer(rnd.ibo)
		rnd.ibo = 0
	}
	if rnd.font != 0 {
		rnd.res.DeleteTexture(rnd.font)
		rnd.font = 0
	}
}

func (rnd *Renderer) destroyPipelines() {
	for r, cp := range rnd.pipelines {
		rnd.dev.DestroyRenderPipeline(cp.p)
		delete(rnd.pipelines, r)
	}
}

// resize recreates the pipelines if the size of the framebuffer has changed.
func (rnd *Renderer) resize(fbw int32, fbh int32) {
	if fbw == rnd.fbw && fbh == rnd.fbh {
		return
	}
	rnd.fbw = fbw
	rnd.fbh = fbh
	rnd.base.Viewport.Rects[0] = glstate.Rect{Width: float32(fbw), Height: float32(fbh)}
	rnd.destroyPipelines()

	if rnd.clear != nil {
		rnd.dev.DestroyRenderPipeline(rnd.clear)
	}
	st := glstate.NewState()
	st.Viewport.Rects[0] = rnd.base.Viewport.Rects[0]
	rnd.clear = rnd.dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Label:     fmt.Sprintf("%s clear", LabelPrefix),
		Layout:    rnd.layout,
		Program:   rnd.program,
		State:     &st,
		Primitive: glstate.Triangles,
	})
}

// Pipelines returns the number of scissor pipelines currently allocated.
func (rnd *Renderer) Pipelines() int {
	return len(rnd.pipelines)
}

// pipeline returns the pipeline for the scissor rectangle. Returns nil if
// the pipeline cannot be created.
func (rnd *Renderer) pipeline(r glstate.ScissorRect) *device.RenderPipeline {
	if cp, ok := rnd.pipelines[r]; ok {
		cp.used = true
		return cp.p
	}

	st := rnd.base
	st.Scissor.Rects[0] = r
	p := rnd.dev.CreateRenderPipeline(device.RenderPipelineDesc{
		Label:     fmt.Sprintf("%s %d,%d %dx%d", LabelPrefix, r.X, r.Y, r.Width, r.Height),
		Layout:    rnd.layout,
		Program:   rnd.program,
		State:     &st,
		Primitive: glstate.Triangles,
	})
	if p == nil {
		return nil
	}
	rnd.pipelines[r] = &clipPipeline{p: p, used: true}
	return p
}

// endFrame destroys the pipelines that were not used in the frame.
func (rnd *Renderer) endFrame() {
	for r, cp := range rnd.pipelines {
		if !cp.used {
			rnd.dev.DestroyRenderPipeline(cp.p)
			delete(rnd.pipelines, r)
			continue
		}
		cp.used = false
	}
}

// Clear the whole framebuffer. The render state is changed to one without
// a scissor test and with every colour channel writable.
func (rnd *Renderer) Clear(framebufferSize [2]float32, red, green, blue, alpha float32) {
	rnd.resize(int32(framebufferSize[0]), int32(framebufferSize[1]))
	if rnd.clear == nil {
		return
	}
	rnd.dev.ApplyRenderState(rnd.clear)
	rnd.res.Clear(red, green, blue, alpha)
}

// Render the draw data. The display size is in screen coordinates and the
// framebuffer size is in pixels. They differ on high DPI displays.
func (rnd *Renderer) Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData) {
	winw, winh := displaySize[0], displaySize[1]
	fbw, fbh := framebufferSize[0], framebufferSize[1]

	// minimised
	if fbw <= 0 || fbh <= 0 || winw <= 0 || winh <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbw / winw, Y: fbh / winh})
	rnd.resize(int32(fbw), int32(fbh))

	proj := [4][4]float32{
		{2.0 / winw, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -winh, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	rnd.res.ProgramUniformMatrix4(rnd.program, rnd.projMtx, &proj)
	rnd.res.ProgramUniform1i(rnd.program, rnd.texture, 0)

	indexSize := imgui.IndexBufferLayout()
	indexType := glstate.UnsignedShort
	if indexSize == 4 {
		indexType = glstate.UnsignedInt
	}
	vertexSize, _, _, _ := imgui.VertexBufferLayout()
	vbos := []pipeline.VertexBuffer{{Handle: rnd.vbo, Stride: int32(vertexSize)}}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		rnd.res.BufferData(rnd.vbo, vertexBuffer, vertexBufferSize)
		indexBuffer, indexBufferSize := list.IndexBuffer()
		rnd.res.BufferData(rnd.ibo, indexBuffer, indexBufferSize)

		var offset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				p := rnd.pipeline(glstate.ScissorRect{
					X:      int32(clip.X),
					Y:      int32(fbh) - int32(clip.W),
					Width:  int32(clip.Z - clip.X),
					Height: int32(clip.W - clip.Y),
				})
				if p != nil {
					rnd.res.BindTexture(0, uint32(cmd.TextureID()))
					rnd.dev.DrawIndexed(p, vbos, device.IndexBuffer{
						Handle: rnd.ibo,
						Type:   indexType,
						Offset: offset,
					}, int32(cmd.ElementCount()), 1)
				}
			}
			offset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	rnd.endFrame()
}
