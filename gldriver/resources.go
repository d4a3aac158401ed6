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
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/lightmass/lightmass/curated"
)

// The functions in this file create and fill GL objects without changing
// any binding that is tracked by the state System. They use the direct
// state access entry points where binding would otherwise be required.

// CompileProgram compiles and links a program from vertex and fragment
// shader source.
func (drv *Driver) CompileProgram(vertex string, fragment string) (uint32, error) {
	vert, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(l int32, p *uint8) {
			gl.GetProgramInfoLog(program, l, nil, p)
		})
		gl.DeleteProgram(program)
		return 0, curated.Errorf(ShaderError, log)
	}

	return program, nil
}

func compileShader(typ uint32, source string) (uint32, error) {
	sh := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(l int32, p *uint8) {
			gl.GetShaderInfoLog(sh, l, nil, p)
		})
		gl.DeleteShader(sh)
		return 0, curated.Errorf(ShaderError, log)
	}

	return sh, nil
}

// infoLog reads a log of the given length, including the terminating zero.
func infoLog(length int32, get func(int32, *uint8)) string {
	if length <= 0 {
		return "no log"
	}
	b := make([]uint8, length+1)
	get(length, &b[0])
	return strings.TrimSpace(strings.TrimRight(string(b), "\x00"))
}

// DeleteProgram deletes a program created with CompileProgram().
func (drv *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation returns the location of the named uniform or -1.
func (drv *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (drv *Driver) ProgramUniformMatrix4(program uint32, location int32, m *[4][4]float32) {
	gl.ProgramUniformMatrix4fv(program, location, 1, false, &m[0][0])
}

func (drv *Driver) ProgramUniform1i(program uint32, location int32, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

// CreateBuffer returns a new buffer object. It is not bound.
func (drv *Driver) CreateBuffer() uint32 {
	var b uint32
	gl.CreateBuffers(1, &b)
	return b
}

func (drv *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// BufferData replaces the contents of the buffer. The data is used as a
// stream and is expected to be replaced every frame.
func (drv *Driver) BufferData(buffer uint32, data unsafe.Pointer, size int) {
	gl.NamedBufferData(buffer, size, data, gl.STREAM_DRAW)
}

// CreateAlphaTexture returns a single channel texture filled with eight bit
// pixel data. Filtering is linear.
func (drv *Driver) CreateAlphaTexture(width int32, height int32, pixels unsafe.Pointer) uint32 {
	var tex uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &tex)
	gl.TextureParameteri(tex, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TextureParameteri(tex, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TextureStorage2D(tex, 1, gl.R8, width, height)

	// rows of an alpha image are not padded
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TextureSubImage2D(tex, 0, 0, 0, width, height, gl.RED, gl.UNSIGNED_BYTE, pixels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	return tex
}

func (drv *Driver) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// BindTexture binds the texture to the texture unit.
func (drv *Driver) BindTexture(unit uint32, texture uint32) {
	gl.BindTextureUnit(unit, texture)
}

// Clear the colour buffer of the default framebuffer. The clear is affected
// by the current scissor and colour mask state.
func (drv *Driver) Clear(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
