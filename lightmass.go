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
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/gldriver"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/gui/sdlcontext"
	"github.com/lightmass/lightmass/logger"
	"github.com/lightmass/lightmass/modalflag"
	"github.com/lightmass/lightmass/performance"
	"github.com/lightmass/lightmass/prefs"
	"github.com/lightmass/lightmass/presets"
	"github.com/lightmass/lightmass/random"
	"github.com/lightmass/lightmass/softgl"
	"github.com/lightmass/lightmass/statsview"
	"github.com/lightmass/lightmass/version"
)

// Error patterns.
const (
	ArgumentError = "%s: %s"
	UnknownPreset = "unknown preset (%s)"
)

// number of random changes made to the state applied by PROBE
const probeChanges = 12

// SDL and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. The return
// value is the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PROBE", "BENCH", "PRESETS")

	prefsArg := md.AddString("prefs", "", "preferences for this run only (key::value; ...)")
	log := md.AddBool("log", false, "echo log to output")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run statsview server on %s", statsview.Address))
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "PROBE":
		err = probe(md, output)
	case "BENCH":
		err = bench(md, output)
	case "PRESETS":
		err = listPresets(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// probe reads the state of a real GL context, compares it to the defaults
// and then checks that an applied state reads back unchanged.
func probe(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	core := md.AddBool("core", gldriver.CoreOnly, "request a core profile context")
	zeroSeed := md.AddBool("zeroseed", false, "use a fixed seed for the applied state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(ArgumentError, md, "too many arguments")
	}

	ctx, err := sdlcontext.New(sdlcontext.Options{Core: *core})
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	drv, err := gldriver.Init()
	if err != nil {
		return err
	}
	defer drv.Destroy()

	coreOnly := *core || gldriver.CoreOnly

	fmt.Fprintf(output, "vendor:   %s\n", drv.Vendor)
	fmt.Fprintf(output, "renderer: %s\n", drv.Renderer)
	fmt.Fprintf(output, "version:  %s\n", drv.Version)

	sys := glstate.NewSystem(drv, coreOnly)
	ids, err := sys.Generate(2)
	if err != nil {
		return err
	}
	live, applied := ids[0], ids[1]

	def := glstate.NewState()
	sys.Capture(live)
	d := glstate.MakeDiff(&def, sys.Get(live))
	fmt.Fprintf(output, "live state differs from defaults in: %s\n", d.ContentBits)

	// the program and framebuffers must be names that exist in the context
	st := random.NewRandom(*zeroSeed).State(probeChanges, coreOnly)
	st.Program = def.Program
	st.FBO = def.FBO
	sys.Set(applied, &st, glstate.Triangles)

	sys.ApplyTransition(applied, live)
	err = drv.CheckError("probe")
	if err != nil {
		return err
	}

	d = glstate.MakeDiff(&def, &st)
	fmt.Fprintf(output, "applied state differs from defaults in: %s\n", d.ContentBits)

	sys.Capture(live)
	d = glstate.MakeDiff(&st, sys.Get(live))
	if d.IsZero() {
		fmt.Fprintln(output, "applied state reads back unchanged")
	} else {
		fmt.Fprintf(output, "applied state reads back differently in: %s\n", d.ContentBits)
	}

	return nil
}

// bench compares full and difference application on the software context.
func bench(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	states := md.AddInt("states", 64, "number of random states")
	draws := md.AddInt("draws", 100000, "number of draws")
	core := md.AddBool("core", false, "core profile context")
	zeroSeed := md.AddBool("zeroseed", false, "use a fixed random seed")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(ArgumentError, md, "too many arguments")
	}

	opts := performance.BenchOptions{
		States:   *states,
		Draws:    *draws,
		CoreOnly: *core,
		ZeroSeed: *zeroSeed,
	}

	run := func() error {
		_, err := performance.RunBench(output, opts)
		return err
	}

	if !*profile {
		return run()
	}

	err = performance.ProfileCPU("bench.cpu.profile", run)
	if err != nil {
		return err
	}
	return performance.ProfileMem("bench.mem.profile")
}

// listPresets registers the presets in a file with a device and reports
// what each preset changes.
func listPresets(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	diffArg := md.AddString("diff", "", "print the difference between two presets (a,b)")
	memvizFile := md.AddString("memviz", "", "write a graph of the state pool to file")
	watch := md.AddBool("watch", false, "reload the file when it changes")
	inspect := md.AddBool("inspect", false, "open the state inspector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(ArgumentError, md, "presets file required")
	case 1:
	default:
		return curated.Errorf(ArgumentError, md, "too many arguments")
	}
	pth := md.GetArg(0)

	list, err := presets.Load(pth)
	if err != nil {
		return err
	}

	if *inspect {
		return inspectPresets(output, pth, list, *watch)
	}

	dev := device.NewDevice(softgl.New(softgl.Compatibility), nil, nil)
	err = dev.LoadPresets(list)
	if err != nil {
		return err
	}
	printPresets(output, dev)

	if *diffArg != "" {
		err = printDiff(output, dev, *diffArg)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, dev.System())
		err = f.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "pool graph written to %s\n", *memvizFile)
	}

	if !*watch {
		return nil
	}

	w, err := presets.NewWatcher(pth)
	if err != nil {
		return err
	}
	defer w.Close()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	fmt.Fprintf(output, "watching %s. ctrl-c to stop\n", pth)
	for {
		select {
		case <-intChan:
			return nil
		case r, ok := <-w.Reloads():
			if !ok {
				return nil
			}
			if r.Err != nil {
				fmt.Fprintf(output, "* %v\n", r.Err)
				continue
			}
			err = dev.LoadPresets(r.Presets)
			if err != nil {
				return err
			}
			printPresets(output, dev)
		}
	}
}

func printPresets(output io.Writer, dev *device.Device) {
	def := glstate.NewState()
	sys := dev.System()
	for _, name := range dev.Presets() {
		id, _ := dev.PresetState(name)
		d := glstate.MakeDiff(&def, sys.Get(id))
		fmt.Fprintf(output, "%-16s %-14s %s\n", name, sys.BasePrimitiveMode(id), d.ContentBits)
	}
}

func printDiff(output io.Writer, dev *device.Device, arg string) error {
	names := strings.Split(arg, ",")
	if len(names) != 2 {
		return curated.Errorf(ArgumentError, "diff", "two preset names required")
	}

	var ids [2]glstate.StateID
	for i, n := range names {
		n = strings.TrimSpace(n)
		id, ok := dev.PresetState(n)
		if !ok {
			return curated.Errorf(UnknownPreset, n)
		}
		ids[i] = id
	}

	sys := dev.System()
	d := glstate.MakeDiff(sys.Get(ids[0]), sys.Get(ids[1]))
	fmt.Fprintf(output, "%s -> %s: %s\n", strings.TrimSpace(names[0]), strings.TrimSpace(names[1]), d.ContentBits)
	fmt.Fprintf(output, "  capabilities: %#08x\n", d.StateBits)
	if !sys.CoreOnly() {
		fmt.Fprintf(output, "  deprecated capabilities: %#08x\n", d.StateDeprBits)
	}

	return nil
}

// inspectPresets opens a window with the state inspector. The presets are
// registered with a device that draws to the window.
func inspectPresets(output io.Writer, pth string, list []presets.Preset, watch bool) error {
	ctx, err := sdlcontext.New(sdlcontext.Options{
		Title:   fmt.Sprintf("%s - %s", version.ApplicationName, pth),
		Visible: true,
		Core:    gldriver.CoreOnly,
	})
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	drv, err := gldriver.Init()
	if err != nil {
		return err
	}
	defer drv.Destroy()

	p, err := device.NewPreferences()
	if err != nil {
		return err
	}
	if gldriver.CoreOnly {
		err = p.CoreOnly.Set(true)
		if err != nil {
			return err
		}
	}

	dev := device.NewDevice(drv, drv, p)
	err = dev.LoadPresets(list)
	if err != nil {
		return err
	}

	wnd, err := sdlcontext.NewWindow(ctx, dev, drv)
	if err != nil {
		return err
	}
	defer wnd.Destroy()

	var reloads <-chan presets.Reload
	if watch {
		w, err := presets.NewWatcher(pth)
		if err != nil {
			return err
		}
		defer w.Close()
		reloads = w.Reloads()
	}

	for wnd.Service(nil) {
		select {
		case r, ok := <-reloads:
			if !ok {
				reloads = nil
				break // select
			}
			if r.Err != nil {
				fmt.Fprintf(output, "* %v\n", r.Err)
				break // select
			}
			err = dev.LoadPresets(r.Presets)
			if err != nil {
				return err
			}
		default:
		}

		err = drv.CheckError("inspect")
		if err != nil {
			return err
		}
	}

	return p.Save()
}
