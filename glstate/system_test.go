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

package glstate_test

import (
	"testing"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/test"
)

// register adds every state to the system.
func register(t *testing.T, sys *glstate.System, states []glstate.State) []glstate.StateID {
	t.Helper()
	ids, err := sys.Generate(len(states))
	test.DemandSuccess(t, err)
	for i := range states {
		sys.Set(ids[i], &states[i], glstate.Triangles)
	}
	return ids
}

func TestApplyEquivalence(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)
	states := all()
	ids := register(t, sys, states)

	for i, a := range ids {
		for j, b := range ids {
			ctx.Reset()
			sys.Apply(a)
			sys.Apply(b)
			brute := ctx.Snapshot()

			ctx.Reset()
			sys.Apply(a)
			sys.ApplyTransition(b, a)
			diff := ctx.Snapshot()

			test.ExpectEquality(t, diff, brute, i, j)
			test.ExpectEquality(t, ctx.Error(), glstate.NoError, i, j)
		}
	}
}

func TestZeroDiffNoCalls(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)
	states := all()
	ids := register(t, sys, append(states, states...))

	n := len(states)
	for i := range n {
		sys.Apply(ids[i])
		ctx.ResetCounts()
		sys.ApplyTransition(ids[i], ids[i])
		sys.ApplyTransition(ids[i+n], ids[i])
		test.ExpectEquality(t, ctx.Calls(), 0, i)
	}
	test.ExpectEquality(t, sys.Stats().ZeroDiffs, 2*n)
}

func TestMinimalCalls(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	a := glstate.NewState()
	b := a
	b.Depth.Func = glstate.Greater
	c := b
	c.Enable.Set(glstate.CapDepthTest, true)
	ids := register(t, sys, []glstate.State{a, b, c})

	sys.Apply(ids[0])
	ctx.ResetCounts()
	sys.ApplyTransition(ids[1], ids[0])
	test.ExpectEquality(t, ctx.Calls(), 1)
	test.ExpectEquality(t, ctx.Count("DepthFunc"), 1)

	ctx.ResetCounts()
	sys.ApplyTransition(ids[2], ids[1])
	test.ExpectEquality(t, ctx.Calls(), 1)
	test.ExpectEquality(t, ctx.Count("Enable"), 1)
}

func TestBroadcast(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	st := glstate.NewState()
	st.Viewport.Rects[0] = glstate.Rect{X: 1, Y: 2, Width: 3.75, Height: 4}
	st.Viewport.Rects[5] = glstate.Rect{X: 9, Y: 9, Width: 9, Height: 9}
	ids := register(t, sys, []glstate.State{st})

	sys.Apply(ids[0])
	snap := ctx.Snapshot()
	for i := range glstate.MaxViewports {
		test.ExpectEquality(t, snap.Viewport[i], glstate.Rect{X: 1, Y: 2, Width: 3, Height: 4}, i)
	}
	test.ExpectEquality(t, ctx.Count("ViewportIndexedf"), 0)
	test.ExpectEquality(t, ctx.Count("Viewport"), 1)

	st.Viewport.UseSeparate = true
	sys.Set(ids[0], &st, glstate.Triangles)
	ctx.ResetCounts()
	sys.Apply(ids[0])
	snap = ctx.Snapshot()
	test.ExpectEquality(t, snap.Viewport[0], st.Viewport.Rects[0])
	test.ExpectEquality(t, snap.Viewport[5], st.Viewport.Rects[5])
	test.ExpectEquality(t, snap.Viewport[6], glstate.Rect{})
	test.ExpectEquality(t, ctx.Count("ViewportIndexedf"), glstate.MaxViewports)
	test.ExpectEquality(t, ctx.Count("Viewport"), 0)
}

func TestBlendSeparateToBroadcast(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	sep := glstate.NewState()
	sep.Blend.UseSeparate = true
	sep.Blend.SeparateEnable = 0b0110
	broadcast := glstate.NewState()
	ids := register(t, sys, []glstate.State{sep, broadcast})

	sys.Apply(ids[0])
	snap := ctx.Snapshot()
	test.ExpectSuccess(t, snap.BlendEnable[1])
	test.ExpectFailure(t, snap.BlendEnable[0])

	sys.ApplyTransition(ids[1], ids[0])
	snap = ctx.Snapshot()
	for i := range glstate.MaxDrawBuffers {
		test.ExpectFailure(t, snap.BlendEnable[i], i)
	}
}

func TestPoolRoundTrip(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	ids, err := sys.Generate(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *sys.Get(ids[0]), glstate.NewState())
	test.ExpectEquality(t, sys.BasePrimitiveMode(ids[0]), glstate.Triangles)

	for _, st := range all() {
		sys.Set(ids[0], &st, glstate.Lines)
		test.ExpectEquality(t, *sys.Get(ids[0]), st)
		test.ExpectEquality(t, sys.BasePrimitiveMode(ids[0]), glstate.Lines)
	}
}

func TestGenerateDestroy(t *testing.T) {
	sys := glstate.NewSystem(softgl.New(softgl.Compatibility), false)

	ids, err := sys.Generate(3)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ids), 3)
	for _, id := range ids {
		test.ExpectInequality(t, id, glstate.InvalidID)
	}
	test.ExpectInequality(t, ids[0], ids[1])
	test.ExpectInequality(t, ids[1], ids[2])
	test.ExpectEquality(t, sys.Allocated(), 3)

	inc := sys.Incarnation(ids[1])
	sys.Destroy(ids[1])
	test.ExpectEquality(t, sys.Allocated(), 2)

	// the destroyed slot is reused with a new incarnation
	again, err := sys.Generate(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again[0], ids[1])
	test.ExpectInequality(t, sys.Incarnation(again[0]), inc)

	none, err := sys.Generate(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(none), 0)

	test.ExpectEquality(t, len(sys.Slots()), 3)
}

func TestPoolLimit(t *testing.T) {
	sys := glstate.NewSystem(softgl.New(softgl.Compatibility), false)
	sys.SetLimit(2)

	_, err := sys.Generate(3)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glstate.PoolExhausted))
	test.ExpectEquality(t, sys.Allocated(), 0)

	ids, err := sys.Generate(2)
	test.ExpectSuccess(t, err)
	_, err = sys.Generate(1)
	test.ExpectFailure(t, err)

	sys.Destroy(ids[0])
	_, err = sys.Generate(1)
	test.ExpectSuccess(t, err)

	sys.SetLimit(0)
	_, err = sys.Generate(10)
	test.ExpectSuccess(t, err)
}

func TestIncarnationInvalidation(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	a := glstate.NewState()
	a.Depth.Func = glstate.Always
	b := glstate.NewState()
	b.Enable.Set(glstate.CapCullFace, true)
	ids := register(t, sys, []glstate.State{a, b})

	sys.ApplyTransition(ids[1], ids[0])
	sys.ApplyTransition(ids[1], ids[0])
	test.ExpectEquality(t, sys.Stats().Misses, 1)
	test.ExpectEquality(t, sys.Stats().Hits, 1)

	// changing the prev state invalidates the cached diff
	a.Logic.Op = glstate.Nand
	sys.Set(ids[0], &a, glstate.Triangles)

	ctx.Reset()
	sys.Apply(ids[0])
	sys.ApplyTransition(ids[1], ids[0])
	test.ExpectEquality(t, sys.Stats().Misses, 2)
	test.ExpectEquality(t, ctx.Snapshot().LogicOp, glstate.Copy)

	// changing the state itself invalidates its cache
	b.Raster.LineWidth = 2
	sys.Set(ids[1], &b, glstate.Triangles)
	sys.ApplyTransition(ids[1], ids[0])
	test.ExpectEquality(t, sys.Stats().Misses, 3)

	// a destroyed and regenerated prev state is a different state
	sys.Destroy(ids[0])
	regen, err := sys.Generate(1)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, regen[0], ids[0])
	sys.ApplyTransition(ids[1], regen[0])
	test.ExpectEquality(t, sys.Stats().Misses, 4)
	test.ExpectEquality(t, sys.Stats().Hits, 1)
}

func TestCacheEviction(t *testing.T) {
	sys := glstate.NewSystem(softgl.New(softgl.Compatibility), false)

	ids, err := sys.Generate(glstate.MaxDiffs + 2)
	test.DemandSuccess(t, err)
	to := ids[0]
	prevs := ids[1:]

	for _, p := range prevs {
		sys.ApplyTransition(to, p)
	}
	st := sys.Stats()
	test.ExpectEquality(t, st.Misses, glstate.MaxDiffs+1)
	test.ExpectEquality(t, st.Evictions, 1)

	for _, s := range sys.Slots() {
		if s.ID == to {
			test.ExpectEquality(t, s.CachedDiffs, glstate.MaxDiffs)
		}
	}

	// the oldest entry was overwritten. the most recent is still cached
	sys.ApplyTransition(to, prevs[len(prevs)-1])
	test.ExpectEquality(t, sys.Stats().Hits, 1)
	sys.ApplyTransition(to, prevs[0])
	test.ExpectEquality(t, sys.Stats().Misses, glstate.MaxDiffs+2)

	sys.ResetStats()
	test.ExpectEquality(t, sys.Stats(), glstate.Stats{})
}

func TestPrepareTransition(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)
	ids, err := sys.Generate(2)
	test.DemandSuccess(t, err)

	ctx.ResetCounts()
	sys.PrepareTransition(ids[0], ids[1])
	sys.PrepareTransition(ids[0], glstate.InvalidID)
	test.ExpectEquality(t, ctx.Calls(), 0)
	test.ExpectEquality(t, sys.Stats().Misses, 1)

	sys.ApplyTransition(ids[0], ids[1])
	test.ExpectEquality(t, sys.Stats().Hits, 1)
}

func TestFullApplyOnInvalid(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)
	ids, err := sys.Generate(1)
	test.DemandSuccess(t, err)

	sys.ApplyTransition(ids[0], glstate.InvalidID)
	test.ExpectEquality(t, sys.Stats().FullApplies, 1)
	full := ctx.Calls()

	ctx.ResetCounts()
	sys.Apply(ids[0])
	test.ExpectEquality(t, ctx.Calls(), full)
}

func TestCoreOnlySystem(t *testing.T) {
	ctx := softgl.New(softgl.Core)
	sys := glstate.NewSystem(ctx, true)
	test.ExpectSuccess(t, sys.CoreOnly())

	st := glstate.NewState()
	st.EnableDepr.Set(glstate.CapDeprFog, true)
	st.AlphaDepr.Func = glstate.Never
	ids := register(t, sys, []glstate.State{glstate.NewState(), st})

	sys.Apply(ids[0])
	sys.ApplyTransition(ids[1], ids[0])
	test.ExpectEquality(t, ctx.Error(), glstate.NoError)
	test.ExpectEquality(t, ctx.Count("AlphaFunc"), 0)

	// the diff is not zero but applying it makes no calls
	test.ExpectEquality(t, sys.Stats().ZeroDiffs, 0)
}

func TestCapture(t *testing.T) {
	ctx := softgl.New(softgl.Compatibility)
	sys := glstate.NewSystem(ctx, false)

	st := glstate.NewState()
	st.Enable.Set(glstate.CapDepthTest, true)
	st.Depth.Func = glstate.Lequal
	st.Apply(ctx, false)

	ids, err := sys.Generate(1)
	test.DemandSuccess(t, err)
	inc := sys.Incarnation(ids[0])
	sys.Capture(ids[0])
	test.ExpectEquality(t, *sys.Get(ids[0]), st)
	test.ExpectInequality(t, sys.Incarnation(ids[0]), inc)
}

func TestInvalidID(t *testing.T) {
	sys := glstate.NewSystem(softgl.New(softgl.Compatibility), false)
	ids, err := sys.Generate(2)
	test.DemandSuccess(t, err)
	sys.Destroy(ids[1])

	test.ExpectPanic(t, func() { sys.Get(glstate.InvalidID) })
	test.ExpectPanic(t, func() { sys.Get(glstate.StateID(100)) })
	test.ExpectPanic(t, func() { sys.Get(ids[1]) })
	test.ExpectPanic(t, func() { sys.ApplyTransition(ids[0], ids[1]) })
	test.ExpectPanic(t, func() { sys.Destroy(ids[1]) })
	test.ExpectPanic(t, func() { sys.Apply(glstate.InvalidID) })
}
