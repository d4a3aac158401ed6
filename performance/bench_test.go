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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/performance"
	"github.com/lightmass/lightmass/test"
)

func TestBench(t *testing.T) {
	for _, core := range []bool{true, false} {
		w := &strings.Builder{}
		res, err := performance.RunBench(w, performance.BenchOptions{
			States:   32,
			Draws:    500,
			CoreOnly: core,
			ZeroSeed: true,
		})
		test.DemandSuccess(t, err)

		test.ExpectEquality(t, res.States, 32)
		test.ExpectEquality(t, res.Draws, 500)
		test.ExpectSuccess(t, res.DiffCalls < res.FullCalls)
		test.ExpectSuccess(t, res.Saving() > 0.0)
		test.ExpectEquality(t, res.Stats.FullApplies, 1)
		test.ExpectEquality(t, res.Stats.DiffApplies, 499)
		test.ExpectSuccess(t, res.Stats.ZeroDiffs > 0)
		test.ExpectSuccess(t, strings.Contains(w.String(), "saving:"))
	}
}

func TestBenchDeterministic(t *testing.T) {
	opts := performance.BenchOptions{States: 8, Draws: 100, ZeroSeed: true}
	a, err := performance.RunBench(nil, opts)
	test.DemandSuccess(t, err)
	b, err := performance.RunBench(nil, opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.FullCalls, b.FullCalls)
	test.ExpectEquality(t, a.DiffCalls, b.DiffCalls)
	test.ExpectEquality(t, a.Stats, b.Stats)
}

func TestBenchOptions(t *testing.T) {
	_, err := performance.RunBench(nil, performance.BenchOptions{States: 0, Draws: 10})
	test.ExpectSuccess(t, curated.Is(err, performance.BenchError))
	_, err = performance.RunBench(nil, performance.BenchOptions{States: 10, Draws: 0})
	test.ExpectSuccess(t, curated.Is(err, performance.BenchError))
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()

	var ran bool
	err := performance.ProfileCPU(filepath.Join(dir, "cpu.profile"), func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	err = performance.ProfileMem(filepath.Join(dir, "mem.profile"))
	test.ExpectSuccess(t, err)

	for _, f := range []string{"cpu.profile", "mem.profile"} {
		_, err := os.Stat(filepath.Join(dir, f))
		test.ExpectSuccess(t, err)
	}

	err = performance.ProfileMem(filepath.Join(dir, "missing", "mem.profile"))
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}
