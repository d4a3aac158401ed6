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

package random

import (
	"math/rand"
	"time"

	"github.com/lightmass/lightmass/glstate"
)

// Random is a generator of render states.
type Random struct {
	rng *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. If
// zeroSeed is true the generator returns the same sequence every time.
func NewRandom(zeroSeed bool) *Random {
	seed := int64(0)
	if !zeroSeed {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}

func (rnd *Random) bool() bool {
	return rnd.rng.Intn(2) == 0
}

func (rnd *Random) pick(e []glstate.Enum) glstate.Enum {
	return e[rnd.rng.Intn(len(e))]
}

var (
	blendFactors = []glstate.Enum{
		glstate.Zero, glstate.One, glstate.SrcColor, glstate.OneMinusSrcColor,
		glstate.SrcAlpha, glstate.OneMinusSrcAlpha, glstate.DstColor, glstate.ConstantColor,
	}
	blendEquations = []glstate.Enum{
		glstate.FuncAdd, glstate.FuncSubtract, glstate.FuncReverseSubtract, glstate.Min, glstate.Max,
	}
	compareFuncs = []glstate.Enum{
		glstate.Never, glstate.Less, glstate.Equal, glstate.Lequal,
		glstate.Greater, glstate.Notequal, glstate.Gequal, glstate.Always,
	}
	stencilOps = []glstate.Enum{
		glstate.Keep, glstate.Zero, glstate.Replace, glstate.Incr, glstate.Decr, glstate.Invert,
	}
	logicOps    = []glstate.Enum{glstate.Copy, glstate.Xor, glstate.And, glstate.Or, glstate.Nand}
	faces       = []glstate.Enum{glstate.Front, glstate.Back, glstate.FrontAndBack}
	polyModes   = []glstate.Enum{glstate.Point, glstate.Line, glstate.Fill}
	shadeModels = []glstate.Enum{glstate.Flat, glstate.Smooth}
)

func (rnd *Random) blendMode() glstate.BlendMode {
	return glstate.BlendMode{
		SrcW: rnd.pick(blendFactors),
		DstW: rnd.pick(blendFactors),
		Equ:  rnd.pick(blendEquations),
	}
}

func (rnd *Random) rect() glstate.Rect {
	return glstate.Rect{
		X:      float32(rnd.rng.Intn(64)),
		Y:      float32(rnd.rng.Intn(64)),
		Width:  float32(rnd.rng.Intn(1024) + 1),
		Height: float32(rnd.rng.Intn(1024) + 1),
	}
}

func (rnd *Random) scissor() glstate.ScissorRect {
	return glstate.ScissorRect{
		X:      int32(rnd.rng.Intn(64)),
		Y:      int32(rnd.rng.Intn(64)),
		Width:  int32(rnd.rng.Intn(1024) + 1),
		Height: int32(rnd.rng.Intn(1024) + 1),
	}
}

// every mutation changes one slice of the state
var mutations = []func(rnd *Random, st *glstate.State){
	func(rnd *Random, st *glstate.State) {
		st.Enable.Set(glstate.Capability(rnd.rng.Intn(int(glstate.NumCapabilities))), rnd.bool())
	},
	func(rnd *Random, st *glstate.State) {
		st.Clip.Enabled ^= 1 << rnd.rng.Intn(glstate.MaxClipPlanes)
	},
	func(rnd *Random, st *glstate.State) {
		st.Blend.UseSeparate = false
		st.Blend.Blends[0] = glstate.BlendBuffer{RGB: rnd.blendMode(), Alpha: rnd.blendMode()}
	},
	func(rnd *Random, st *glstate.State) {
		st.Blend.UseSeparate = true
		st.Blend.SeparateEnable = uint32(rnd.rng.Intn(1 << glstate.MaxDrawBuffers))
		i := rnd.rng.Intn(glstate.MaxDrawBuffers)
		st.Blend.Blends[i] = glstate.BlendBuffer{RGB: rnd.blendMode(), Alpha: rnd.blendMode()}
	},
	func(rnd *Random, st *glstate.State) {
		st.Blend.Color = [4]float32{rnd.rng.Float32(), rnd.rng.Float32(), rnd.rng.Float32(), 1}
	},
	func(rnd *Random, st *glstate.State) {
		st.Depth.Func = rnd.pick(compareFuncs)
	},
	func(rnd *Random, st *glstate.State) {
		f := rnd.rng.Intn(glstate.NumFaces)
		st.Stencil.Funcs[f] = glstate.StencilFunc{
			Func: rnd.pick(compareFuncs),
			Ref:  int32(rnd.rng.Intn(256)),
			Mask: uint32(rnd.rng.Intn(256)),
		}
	},
	func(rnd *Random, st *glstate.State) {
		f := rnd.rng.Intn(glstate.NumFaces)
		st.Stencil.Ops[f] = glstate.StencilOp{
			Fail:  rnd.pick(stencilOps),
			ZFail: rnd.pick(stencilOps),
			ZPass: rnd.pick(stencilOps),
		}
	},
	func(rnd *Random, st *glstate.State) {
		st.Logic.Op = rnd.pick(logicOps)
	},
	func(rnd *Random, st *glstate.State) {
		st.Primitive.RestartIndex = uint32(rnd.rng.Intn(0x10000))
		st.Primitive.PatchVertices = int32(rnd.rng.Intn(8) + 1)
	},
	func(rnd *Random, st *glstate.State) {
		st.Sample.Coverage = rnd.rng.Float32()
		st.Sample.Invert = rnd.bool()
		st.Sample.MinShading = rnd.rng.Float32()
	},
	func(rnd *Random, st *glstate.State) {
		st.Raster.CullFace = rnd.pick(faces)
		st.Raster.FrontFace = rnd.pick([]glstate.Enum{glstate.CW, glstate.CCW})
		st.Raster.PolyMode = rnd.pick(polyModes)
	},
	func(rnd *Random, st *glstate.State) {
		st.Raster.LineWidth = float32(rnd.rng.Intn(4) + 1)
		st.Raster.PointSize = float32(rnd.rng.Intn(8) + 1)
		st.Raster.PolyOffsetFactor = float32(rnd.rng.Intn(4))
		st.Raster.PolyOffsetUnits = float32(rnd.rng.Intn(4))
	},
	func(rnd *Random, st *glstate.State) {
		st.DepthRange.UseSeparate = rnd.bool()
		i := 0
		if st.DepthRange.UseSeparate {
			i = rnd.rng.Intn(glstate.MaxViewports)
		}
		n := float64(rnd.rng.Intn(50)) / 100
		st.DepthRange.Ranges[i] = glstate.DepthRange{Near: n, Far: n + 0.5}
	},
	func(rnd *Random, st *glstate.State) {
		st.Viewport.UseSeparate = rnd.bool()
		i := 0
		if st.Viewport.UseSeparate {
			i = rnd.rng.Intn(glstate.MaxViewports)
		}
		st.Viewport.Rects[i] = rnd.rect()
	},
	func(rnd *Random, st *glstate.State) {
		st.ScissorEnable.UseSeparate = rnd.bool()
		st.ScissorEnable.SeparateEnable = uint32(rnd.rng.Intn(1 << glstate.MaxViewports))
		if !st.ScissorEnable.UseSeparate {
			st.ScissorEnable.SeparateEnable &= 1
		}
	},
	func(rnd *Random, st *glstate.State) {
		st.Scissor.UseSeparate = rnd.bool()
		i := 0
		if st.Scissor.UseSeparate {
			i = rnd.rng.Intn(glstate.MaxViewports)
		}
		st.Scissor.Rects[i] = rnd.scissor()
	},
	func(rnd *Random, st *glstate.State) {
		st.Mask.ColormaskUseSeparate = rnd.bool()
		i := 0
		if st.Mask.ColormaskUseSeparate {
			i = rnd.rng.Intn(glstate.MaxDrawBuffers)
		}
		st.Mask.Colormask[i] = [4]bool{rnd.bool(), rnd.bool(), rnd.bool(), rnd.bool()}
		st.Mask.Depth = rnd.bool()
	},
	func(rnd *Random, st *glstate.State) {
		st.Mask.Stencil[rnd.rng.Intn(glstate.NumFaces)] = uint32(rnd.rng.Intn(256))
	},
	func(rnd *Random, st *glstate.State) {
		st.FBO.FboDraw = uint32(rnd.rng.Intn(4))
		st.FBO.FboRead = uint32(rnd.rng.Intn(4))
	},
	func(rnd *Random, st *glstate.State) {
		st.Program.Program = uint32(rnd.rng.Intn(8))
	},
}

// mutations of the deprecated slices
var deprMutations = []func(rnd *Random, st *glstate.State){
	func(rnd *Random, st *glstate.State) {
		st.AlphaDepr.Func = rnd.pick(compareFuncs)
		st.AlphaDepr.Ref = rnd.rng.Float32()
	},
	func(rnd *Random, st *glstate.State) {
		st.RasterDepr.ShadeModel = rnd.pick(shadeModels)
		st.RasterDepr.LineStippleFactor = int32(rnd.rng.Intn(4) + 1)
		st.RasterDepr.LineStipplePattern = uint16(rnd.rng.Intn(0x10000))
	},
	func(rnd *Random, st *glstate.State) {
		st.EnableDepr.Set(glstate.DeprCapability(rnd.rng.Intn(int(glstate.NumDeprCapabilities))), rnd.bool())
	},
}

// State returns the default state with up to changes random changes. The
// deprecated slices are never changed if coreOnly is true.
func (rnd *Random) State(changes int, coreOnly bool) glstate.State {
	st := glstate.NewState()
	n := rnd.rng.Intn(changes + 1)
	for range n {
		if !coreOnly && rnd.rng.Intn(8) == 0 {
			deprMutations[rnd.rng.Intn(len(deprMutations))](rnd, &st)
			continue
		}
		mutations[rnd.rng.Intn(len(mutations))](rnd, &st)
	}
	return st
}

// Sequence returns length indices in the range [0, n). Consecutive indices
// repeat with a probability of repeat, in the range [0, 1].
func (rnd *Random) Sequence(n int, length int, repeat float64) []int {
	seq := make([]int, length)
	for i := range seq {
		if i > 0 && rnd.rng.Float64() < repeat {
			seq[i] = seq[i-1]
			continue
		}
		seq[i] = rnd.rng.Intn(n)
	}
	return seq
}
