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

package softgl

import (
	"regexp"
	"strconv"
	"unsafe"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
)

// Error patterns.
const (
	NoAttributes = "softgl: vertex shader declares no inputs"
)

// the number of texture units that can be bound with BindTexture()
const maxTextureUnits = 16

type resources struct {
	// object names are shared by every type of object
	next uint32

	// buffer sizes by name
	buffers map[uint32]int

	// texture dimensions by name
	textures map[uint32][2]int32

	// uniform locations by program
	uniforms map[uint32]map[string]int32

	units [maxTextureUnits]uint32
}

func (r *resources) name() uint32 {
	r.next++
	return r.next
}

// vertex shader inputs with an optional explicit location
var inputDecl = regexp.MustCompile(`(?m)^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?in\s+\w+\s+(\w+(?:\[\d+\])?)\s*;`)

// uniform declarations
var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

// CompileProgram creates a program. The active attributes of the program
// are the inputs declared by the vertex shader source. Locations are taken
// from layout qualifiers or are otherwise given in order of declaration.
// The fragment shader is not inspected.
func (ctx *Context) CompileProgram(vertex string, fragment string) (uint32, error) {
	ctx.record("CompileProgram")

	decls := inputDecl.FindAllStringSubmatch(vertex, -1)
	if len(decls) == 0 {
		return 0, curated.Errorf(NoAttributes)
	}

	attrs := make([]pipeline.Attribute, 0, len(decls))
	var loc uint32
	for _, d := range decls {
		if d[1] != "" {
			n, err := strconv.Atoi(d[1])
			if err != nil {
				return 0, curated.Errorf(NoAttributes)
			}
			loc = uint32(n)
		}
		semantic, index := pipeline.SplitSemantic(d[2])
		attrs = append(attrs, pipeline.Attribute{
			Semantic:      semantic,
			SemanticIndex: index,
			Location:      loc,
		})
		loc++
	}

	program := ctx.resources.name()
	ctx.DefineProgram(program, attrs)

	uniforms := make(map[string]int32)
	for _, src := range []string{vertex, fragment} {
		for _, u := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := uniforms[u[1]]; !ok {
				uniforms[u[1]] = int32(len(uniforms))
			}
		}
	}
	ctx.resources.uniforms[program] = uniforms

	return program, nil
}

func (ctx *Context) DeleteProgram(program uint32) {
	ctx.record("DeleteProgram", program)
	delete(ctx.programs, program)
	delete(ctx.resources.uniforms, program)
}

// UniformLocation returns the location of the named uniform or -1.
func (ctx *Context) UniformLocation(program uint32, name string) int32 {
	ctx.queries++
	if loc, ok := ctx.resources.uniforms[program][name]; ok {
		return loc
	}
	return -1
}

func (ctx *Context) uniform(program uint32, location int32) {
	u, ok := ctx.resources.uniforms[program]
	if !ok {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	if location < -1 || int(location) >= len(u) {
		ctx.raise(glstate.InvalidOperation)
	}
}

func (ctx *Context) ProgramUniformMatrix4(program uint32, location int32, m *[4][4]float32) {
	ctx.record("ProgramUniformMatrix4", program, location)
	ctx.uniform(program, location)
}

func (ctx *Context) ProgramUniform1i(program uint32, location int32, v int32) {
	ctx.record("ProgramUniform1i", program, location, v)
	ctx.uniform(program, location)
}

// CreateBuffer returns a new buffer name.
func (ctx *Context) CreateBuffer() uint32 {
	ctx.record("CreateBuffer")
	b := ctx.resources.name()
	ctx.resources.buffers[b] = 0
	return b
}

func (ctx *Context) DeleteBuffer(buffer uint32) {
	ctx.record("DeleteBuffer", buffer)
	delete(ctx.resources.buffers, buffer)
}

// BufferData records the size of the buffer. The data is not kept.
func (ctx *Context) BufferData(buffer uint32, data unsafe.Pointer, size int) {
	ctx.record("BufferData", buffer, size)
	if _, ok := ctx.resources.buffers[buffer]; !ok {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	if size < 0 {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.resources.buffers[buffer] = size
}

// BufferSize returns the size given to the most recent BufferData() call for
// the buffer.
func (ctx *Context) BufferSize(buffer uint32) (int, bool) {
	sz, ok := ctx.resources.buffers[buffer]
	return sz, ok
}

// CreateAlphaTexture returns a new texture name. The pixel data is not kept.
func (ctx *Context) CreateAlphaTexture(width int32, height int32, pixels unsafe.Pointer) uint32 {
	ctx.record("CreateAlphaTexture", width, height)
	if width < 0 || height < 0 {
		ctx.raise(glstate.InvalidValue)
		return 0
	}
	tex := ctx.resources.name()
	ctx.resources.textures[tex] = [2]int32{width, height}
	return tex
}

func (ctx *Context) DeleteTexture(texture uint32) {
	ctx.record("DeleteTexture", texture)
	delete(ctx.resources.textures, texture)
	for i := range ctx.resources.units {
		if ctx.resources.units[i] == texture {
			ctx.resources.units[i] = 0
		}
	}
}

// BindTexture binds the texture to the texture unit. Texture zero unbinds
// the unit.
func (ctx *Context) BindTexture(unit uint32, texture uint32) {
	ctx.record("BindTexture", unit, texture)
	if unit >= maxTextureUnits {
		ctx.raise(glstate.InvalidValue)
		return
	}
	if _, ok := ctx.resources.textures[texture]; !ok && texture != 0 {
		ctx.raise(glstate.InvalidOperation)
		return
	}
	ctx.resources.units[unit] = texture
}

// Clear has no effect other than being counted.
func (ctx *Context) Clear(red, green, blue, alpha float32) {
	ctx.record("Clear", red, green, blue, alpha)
}
