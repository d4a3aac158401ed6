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

package gldriver

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
)

// Driver forwards every context call to the current OpenGL context. The
// zero value is not usable. Use Init().
type Driver struct {
	Vendor   string
	Renderer string
	Version  string

	// vertex input state is tracked as if there is a single vertex array
	// object. it is created and bound by Init()
	vao uint32
}

// Init loads the OpenGL entry points for the current context.
func Init() (*Driver, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gldriver: %w", err)
	}
	err = initDeprecated()
	if err != nil {
		return nil, fmt.Errorf("gldriver: %w", err)
	}

	drv := &Driver{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	logger.Logf(logger.Allow, "gldriver", "vendor: %s", drv.Vendor)
	logger.Logf(logger.Allow, "gldriver", "renderer: %s", drv.Renderer)
	logger.Logf(logger.Allow, "gldriver", "version: %s", drv.Version)

	gl.GenVertexArrays(1, &drv.vao)
	gl.BindVertexArray(drv.vao)

	return drv, nil
}

// Destroy deletes the vertex array object created by Init().
func (drv *Driver) Destroy() {
	if drv.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &drv.vao)
		drv.vao = 0
	}
}

func (drv *Driver) Enable(cap glstate.Enum)  { gl.Enable(uint32(cap)) }
func (drv *Driver) Disable(cap glstate.Enum) { gl.Disable(uint32(cap)) }

func (drv *Driver) Enablei(cap glstate.Enum, index uint32)  { gl.Enablei(uint32(cap), index) }
func (drv *Driver) Disablei(cap glstate.Enum, index uint32) { gl.Disablei(uint32(cap), index) }

func (drv *Driver) IsEnabled(cap glstate.Enum) bool {
	return gl.IsEnabled(uint32(cap))
}

func (drv *Driver) IsEnabledi(cap glstate.Enum, index uint32) bool {
	return gl.IsEnabledi(uint32(cap), index)
}

func (drv *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glstate.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (drv *Driver) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha glstate.Enum) {
	gl.BlendFuncSeparatei(buf, uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (drv *Driver) BlendEquationSeparate(modeRGB, modeAlpha glstate.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (drv *Driver) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha glstate.Enum) {
	gl.BlendEquationSeparatei(buf, uint32(modeRGB), uint32(modeAlpha))
}

func (drv *Driver) BlendColor(red, green, blue, alpha float32) {
	gl.BlendColor(red, green, blue, alpha)
}

func (drv *Driver) DepthFunc(fn glstate.Enum) { gl.DepthFunc(uint32(fn)) }
func (drv *Driver) DepthMask(flag bool)       { gl.DepthMask(flag) }
func (drv *Driver) DepthRange(near, far float64) {
	gl.DepthRange(near, far)
}

func (drv *Driver) DepthRangeIndexed(index uint32, near, far float64) {
	gl.DepthRangeIndexed(index, near, far)
}

func (drv *Driver) StencilFuncSeparate(face glstate.Enum, fn glstate.Enum, ref int32, mask uint32) {
	gl.StencilFuncSeparate(uint32(face), uint32(fn), ref, mask)
}

func (drv *Driver) StencilOpSeparate(face glstate.Enum, sfail, dpfail, dppass glstate.Enum) {
	gl.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (drv *Driver) StencilMaskSeparate(face glstate.Enum, mask uint32) {
	gl.StencilMaskSeparate(uint32(face), mask)
}

func (drv *Driver) ColorMask(red, green, blue, alpha bool) {
	gl.ColorMask(red, green, blue, alpha)
}

func (drv *Driver) ColorMaski(buf uint32, red, green, blue, alpha bool) {
	gl.ColorMaski(buf, red, green, blue, alpha)
}

func (drv *Driver) LogicOp(op glstate.Enum)            { gl.LogicOp(uint32(op)) }
func (drv *Driver) PrimitiveRestartIndex(index uint32) { gl.PrimitiveRestartIndex(index) }

func (drv *Driver) PatchParameteri(pname glstate.Enum, value int32) {
	gl.PatchParameteri(uint32(pname), value)
}

func (drv *Driver) SampleCoverage(value float32, invert bool) {
	gl.SampleCoverage(value, invert)
}

func (drv *Driver) SampleMaski(maskNumber uint32, mask uint32) {
	gl.SampleMaski(maskNumber, mask)
}

func (drv *Driver) MinSampleShading(value float32) { gl.MinSampleShading(value) }

func (drv *Driver) FrontFace(mode glstate.Enum) { gl.FrontFace(uint32(mode)) }
func (drv *Driver) CullFace(mode glstate.Enum)  { gl.CullFace(uint32(mode)) }

func (drv *Driver) PolygonMode(face glstate.Enum, mode glstate.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (drv *Driver) PolygonOffset(factor, units float32) { gl.PolygonOffset(factor, units) }
func (drv *Driver) LineWidth(width float32)             { gl.LineWidth(width) }
func (drv *Driver) PointSize(size float32)              { gl.PointSize(size) }

func (drv *Driver) PointParameterf(pname glstate.Enum, value float32) {
	gl.PointParameterf(uint32(pname), value)
}

func (drv *Driver) PointParameteri(pname glstate.Enum, value int32) {
	gl.PointParameteri(uint32(pname), value)
}

func (drv *Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (drv *Driver) ViewportIndexedf(index uint32, x, y, width, height float32) {
	gl.ViewportIndexedf(index, x, y, width, height)
}

func (drv *Driver) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (drv *Driver) ScissorIndexed(index uint32, left, bottom, width, height int32) {
	gl.ScissorIndexed(index, left, bottom, width, height)
}

func (drv *Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (drv *Driver) BindFramebuffer(target glstate.Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

func (drv *Driver) DrawBuffers(bufs []glstate.Enum) {
	if len(bufs) == 0 {
		gl.DrawBuffers(0, nil)
		return
	}
	u := make([]uint32, len(bufs))
	for i, b := range bufs {
		u[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(u)), &u[0])
}

func (drv *Driver) ReadBuffer(mode glstate.Enum) { gl.ReadBuffer(uint32(mode)) }
