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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/random"
	"github.com/lightmass/lightmass/softgl"
)

// Error patterns.
const (
	BenchError    = "performance: bench: %v"
	BenchMismatch = "performance: bench: full and diff runs disagree after %d draws"
)

// number of slices changed from the defaults in each generated state
const benchChanges = 8

// chance of a draw repeating the previous state
const benchRepeat = 0.25

// BenchOptions specifies a run of RunBench().
type BenchOptions struct {
	States   int
	Draws    int
	CoreOnly bool

	// the same states and sequence are generated on every run
	ZeroSeed bool
}

// Result of a RunBench() run.
type Result struct {
	States int
	Draws  int

	FullCalls int
	DiffCalls int
	FullTime  time.Duration
	DiffTime  time.Duration

	// counters from the diff run
	Stats glstate.Stats
}

// Saving returns the fraction of GL calls avoided by the diff run.
func (r Result) Saving() float64 {
	if r.FullCalls == 0 {
		return 0
	}
	return 1.0 - float64(r.DiffCalls)/float64(r.FullCalls)
}

func (r Result) String() string {
	return fmt.Sprintf("%d states, %d draws\nfull: %d calls in %v\ndiff: %d calls in %v\nsaving: %.1f%% (hits %d, misses %d, evictions %d, zero diffs %d)",
		r.States, r.Draws,
		r.FullCalls, r.FullTime,
		r.DiffCalls, r.DiffTime,
		r.Saving()*100,
		r.Stats.Hits, r.Stats.Misses, r.Stats.Evictions, r.Stats.ZeroDiffs)
}

// RunBench applies a random sequence of random states to a software context
// twice. Once in full and once by difference. The result is written to output
// if it is not nil.
func RunBench(output io.Writer, opts BenchOptions) (Result, error) {
	if opts.States < 1 {
		return Result{}, curated.Errorf(BenchError, "number of states must be at least one")
	}
	if opts.Draws < 1 {
		return Result{}, curated.Errorf(BenchError, "number of draws must be at least one")
	}

	rnd := random.NewRandom(opts.ZeroSeed)
	states := make([]glstate.State, opts.States)
	for i := range states {
		states[i] = rnd.State(benchChanges, opts.CoreOnly)
	}
	seq := rnd.Sequence(opts.States, opts.Draws, benchRepeat)

	res := Result{
		States: opts.States,
		Draws:  opts.Draws,
	}

	full, err := newBenchRun(states, opts.CoreOnly)
	if err != nil {
		return Result{}, err
	}
	res.FullCalls, res.FullTime = full.run(seq, false)

	diff, err := newBenchRun(states, opts.CoreOnly)
	if err != nil {
		return Result{}, err
	}
	res.DiffCalls, res.DiffTime = diff.run(seq, true)
	res.Stats = diff.sys.Stats()

	for _, b := range []*benchRun{full, diff} {
		if e := b.ctx.Error(); e != glstate.NoError {
			return Result{}, curated.Errorf(BenchError, fmt.Sprintf("context error %v", e))
		}
	}
	if full.ctx.Snapshot() != diff.ctx.Snapshot() {
		return Result{}, curated.Errorf(BenchMismatch, opts.Draws)
	}

	if output != nil {
		fmt.Fprintln(output, res.String())
	}

	return res, nil
}

type benchRun struct {
	ctx *softgl.Context
	sys *glstate.System
	ids []glstate.StateID
}

func newBenchRun(states []glstate.State, coreOnly bool) (*benchRun, error) {
	profile := softgl.Compatibility
	if coreOnly {
		profile = softgl.Core
	}

	b := &benchRun{
		ctx: softgl.New(profile),
	}
	b.sys = glstate.NewSystem(b.ctx, coreOnly)

	var err error
	b.ids, err = b.sys.Generate(len(states))
	if err != nil {
		return nil, curated.Errorf(BenchError, err)
	}
	for i, id := range b.ids {
		b.sys.Set(id, &states[i], glstate.Triangles)
	}

	return b, nil
}

// run applies the states in sequence order and returns the number of GL
// calls made and the time taken.
func (b *benchRun) run(seq []int, diff bool) (int, time.Duration) {
	b.ctx.ResetCounts()

	start := time.Now()
	prev := glstate.InvalidID
	for _, i := range seq {
		id := b.ids[i]
		if diff {
			b.sys.ApplyTransition(id, prev)
		} else {
			b.sys.Apply(id)
		}
		prev = id
	}

	return b.ctx.Calls(), time.Since(start)
}
