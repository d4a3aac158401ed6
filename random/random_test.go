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

package random_test

import (
	"testing"

	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/random"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(true)
	b := random.NewRandom(true)

	for i := range 64 {
		test.ExpectEquality(t, a.State(8, false), b.State(8, false), i)
	}
	sa := a.Sequence(10, 32, 0.25)
	sb := b.Sequence(10, 32, 0.25)
	for i := range sa {
		test.ExpectEquality(t, sa[i], sb[i], i)
	}
}

func TestValidStates(t *testing.T) {
	rnd := random.NewRandom(true)

	for _, profile := range []softgl.Profile{softgl.Compatibility, softgl.Core} {
		coreOnly := profile == softgl.Core
		ctx := softgl.New(profile)
		changed := 0
		for i := range 256 {
			st := rnd.State(6, coreOnly)
			st.Apply(ctx, coreOnly)
			test.ExpectEquality(t, ctx.Error(), glstate.NoError, profile, i)

			def := glstate.NewState()
			if !glstate.MakeDiff(&def, &st).IsZero() {
				changed++
			}

			if coreOnly {
				test.ExpectEquality(t, st.AlphaDepr, def.AlphaDepr)
				test.ExpectEquality(t, st.RasterDepr, def.RasterDepr)
				test.ExpectEquality(t, st.EnableDepr, def.EnableDepr)
			}
		}
		test.ExpectSuccess(t, changed > 128, profile, changed)
	}
}

func TestSequence(t *testing.T) {
	rnd := random.NewRandom(true)

	seq := rnd.Sequence(4, 1000, 0)
	test.DemandEquality(t, len(seq), 1000)
	for _, i := range seq {
		test.ExpectSuccess(t, i >= 0 && i < 4)
	}

	// every entry repeats the first
	seq = rnd.Sequence(4, 100, 1)
	for _, i := range seq {
		test.ExpectEquality(t, i, seq[0])
	}
}
