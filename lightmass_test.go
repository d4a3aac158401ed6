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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lightmass/lightmass/test"
	"github.com/lightmass/lightmass/version"
)

const examplePresets = `
[[preset]]
name = "opaque"
enable = ["DEPTH_TEST", "CULL_FACE"]

[preset.depth]
func = "LEQUAL"

[[preset]]
name = "transparent"
base = "opaque"
enable = ["BLEND"]

[preset.blend]
src = "SRC_ALPHA"
dst = "ONE_MINUS_SRC_ALPHA"
`

func writePresets(t *testing.T) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "presets.toml")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(examplePresets), 0o644))
	return pth
}

func TestVersion(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-version"}, &out), 0)
	test.ExpectEquality(t, strings.TrimSpace(out.String()), version.String())
}

func TestBadFlag(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out), 10)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error"))
}

func TestBench(t *testing.T) {
	var out strings.Builder
	status := launch([]string{"BENCH", "-states", "4", "-draws", "200", "-zeroseed"}, &out)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "saving:"))

	out.Reset()
	status = launch([]string{"BENCH", "-states", "0"}, &out)
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "error in BENCH mode"))
}

func TestPresets(t *testing.T) {
	pth := writePresets(t)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"PRESETS", pth}, &out), 0)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "opaque"))
	test.ExpectSuccess(t, strings.Contains(lines[0], "enable"))
	test.ExpectSuccess(t, strings.Contains(lines[0], "depth"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "transparent"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "blend"))
}

func TestPresetsDiff(t *testing.T) {
	pth := writePresets(t)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"PRESETS", "-diff", "opaque, transparent", pth}, &out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "opaque -> transparent: enable|blend\n"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PRESETS", "-diff", "opaque,missing", pth}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown preset (missing)"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PRESETS", "-diff", "opaque", pth}, &out), 20)
}

func TestPresetsMemviz(t *testing.T) {
	pth := writePresets(t)
	dot := filepath.Join(t.TempDir(), "pool.dot")

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"PRESETS", "-memviz", dot, pth}, &out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "pool graph written"))

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestPresetsArguments(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"PRESETS"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "presets file required"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PRESETS", "a", "b"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "too many arguments"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"PRESETS", filepath.Join(t.TempDir(), "none.toml")}, &out), 20)
}
