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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/pipeline"
)

// Error patterns.
const (
	UnknownProgram = "softgl: unknown program (%d)"
)

// Profile selects the behaviour of the deprecated entry points.
type Profile int

// List of valid Profile values.
const (
	// deprecated entry points and capabilities are accepted
	Compatibility Profile = iota

	// deprecated entry points raise INVALID_OPERATION and deprecated
	// capabilities raise INVALID_ENUM
	Core
)

func (p Profile) String() string {
	switch p {
	case Core:
		return "core"
	}
	return "compatibility"
}

// Draw is a recorded draw call.
type Draw struct {
	Mode      glstate.Enum
	First     int32
	Count     int32
	Instances int32
	Indexed   bool
	IndexType glstate.Enum
	Offset    uintptr

	// the vertex input state at the time of the draw
	Attribs     [glstate.MaxVertexAttribs]Attrib
	Bindings    [glstate.MaxVertexBindings]Binding
	Program     uint32
	IndexBuffer uint32

	// scissor state of the first viewport and the texture bound to the
	// first texture unit
	ScissorEnable bool
	Scissor       glstate.ScissorRect
	Texture       uint32
}

// Context is a software GL context.
type Context struct {
	profile Profile
	s       Snapshot
	err     glstate.Enum

	// number of state setting calls, by entry point name
	counts map[string]int
	calls  int

	// number of queries
	queries int

	// optional call log
	log io.Writer

	draws []Draw

	programs map[uint32][]pipeline.Attribute

	// objects created through the resource functions
	resources resources
}

// New creates a context in the GL reset state.
func New(profile Profile) *Context {
	ctx := &Context{
		profile:  profile,
		counts:   make(map[string]int),
		programs: make(map[uint32][]pipeline.Attribute),
		resources: resources{
			buffers:  make(map[uint32]int),
			textures: make(map[uint32][2]int32),
			uniforms: make(map[uint32]map[string]int32),
		},
	}
	ctx.s.reset()
	return ctx
}

// Profile returns the profile given to New().
func (ctx *Context) Profile() Profile {
	return ctx.profile
}

// Reset returns the state to the GL reset state. Call counts, the error flag
// and the draw list are not affected.
func (ctx *Context) Reset() {
	ctx.s.reset()
}

// Snapshot returns a copy of the observable state.
func (ctx *Context) Snapshot() Snapshot {
	return ctx.s
}

// Restore replaces the observable state.
func (ctx *Context) Restore(s Snapshot) {
	ctx.s = s
}

// Error returns the first error raised since the last call to Error() and
// clears it. NO_ERROR is returned if no error has been raised.
func (ctx *Context) Error() glstate.Enum {
	err := ctx.err
	ctx.err = glstate.NoError
	return err
}

func (ctx *Context) raise(err glstate.Enum) {
	if ctx.err == glstate.NoError {
		ctx.err = err
	}
}

// SetLog sets the writer that receives one line for every state setting
// call. A nil writer disables the log.
func (ctx *Context) SetLog(w io.Writer) {
	ctx.log = w
}

// Calls returns the number of state setting calls made.
func (ctx *Context) Calls() int {
	return ctx.calls
}

// Count returns the number of calls made to the named entry point. For
// example, "BlendFuncSeparate".
func (ctx *Context) Count(name string) int {
	return ctx.counts[name]
}

// Queries returns the number of query calls made.
func (ctx *Context) Queries() int {
	return ctx.queries
}

// ResetCounts zeroes the call and query counts.
func (ctx *Context) ResetCounts() {
	clear(ctx.counts)
	ctx.calls = 0
	ctx.queries = 0
}

// CountSummary returns the call counts as "name=count" sorted by name.
func (ctx *Context) CountSummary() string {
	names := make([]string, 0, len(ctx.counts))
	for n := range ctx.counts {
		names = append(names, n)
	}
	sort.Strings(names)
	s := strings.Builder{}
	for i, n := range names {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%d", n, ctx.counts[n]))
	}
	return s.String()
}

func (ctx *Context) record(name string, args ...any) {
	ctx.calls++
	ctx.counts[name]++
	if ctx.log == nil {
		return
	}
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = fmt.Sprint(a)
	}
	fmt.Fprintf(ctx.log, "%s(%s)\n", name, strings.Join(s, ", "))
}

// Draws returns the recorded draw calls.
func (ctx *Context) Draws() []Draw {
	return ctx.draws
}

// ClearDraws empties the list of recorded draw calls.
func (ctx *Context) ClearDraws() {
	ctx.draws = ctx.draws[:0]
}

// DefineProgram sets the active attributes returned by ActiveAttributes()
// for the program.
func (ctx *Context) DefineProgram(program uint32, attrs []pipeline.Attribute) {
	ctx.programs[program] = append([]pipeline.Attribute(nil), attrs...)
}

// ActiveAttributes returns the attributes given to DefineProgram().
func (ctx *Context) ActiveAttributes(program uint32) ([]pipeline.Attribute, error) {
	attrs, ok := ctx.programs[program]
	if !ok {
		return nil, curated.Errorf(UnknownProgram, program)
	}
	return attrs, nil
}

// AddressRange is a Context that also implements the address range binder
// of the pipeline package.
type AddressRange struct {
	*Context
}

// NewAddressRange creates a context that can bind vertex buffers by GPU
// address.
func NewAddressRange(profile Profile) *AddressRange {
	return &AddressRange{Context: New(profile)}
}

// BufferAddressRange binds a GPU address range to the binding point.
func (ctx *AddressRange) BufferAddressRange(binding uint32, address uint64, length int) {
	ctx.record("BufferAddressRange", binding, address, length)
	if binding >= glstate.MaxVertexBindings {
		ctx.raise(glstate.InvalidValue)
		return
	}
	ctx.s.Bindings[binding].Address = address
	ctx.s.Bindings[binding].Length = length
}
