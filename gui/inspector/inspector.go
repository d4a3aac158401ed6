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

package inspector

import (
	"fmt"
	"sort"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/lightmass/lightmass/device"
	"github.com/lightmass/lightmass/glstate"
)

// Title of the inspector window.
const Title = "State Inspector"

// Inspector is a window that lists the slots of a device's state System and
// the slices of the selected slot.
type Inspector struct {
	dev *device.Device

	open bool

	// the selected slot. InvalidID if no slot is selected
	selected glstate.StateID

	// show only the slices that differ from the reset state
	changedOnly bool

	// hide the pipelines created by the Renderer
	hideImgui bool
}

// NewInspector creates an inspector for the device. The window is open.
func NewInspector(dev *device.Device) *Inspector {
	return &Inspector{
		dev:         dev,
		open:        true,
		selected:    glstate.InvalidID,
		changedOnly: true,
		hideImgui:   true,
	}
}

// IsOpen returns false if the window has been closed.
func (insp *Inspector) IsOpen() bool {
	return insp.open
}

func (insp *Inspector) SetOpen(open bool) {
	insp.open = open
}

// Select a slot to show. A slot that is not allocated clears the selection.
func (insp *Inspector) Select(id glstate.StateID) {
	insp.selected = glstate.InvalidID
	for _, s := range insp.dev.System().Slots() {
		if s.ID == id {
			insp.selected = id
			return
		}
	}
}

// Selected returns the selected slot or InvalidID.
func (insp *Inspector) Selected() glstate.StateID {
	return insp.selected
}

// Entry is one line of the slot list.
type Entry struct {
	glstate.SlotInfo
	Labels []string
}

// Entries lists every allocated slot with the labels of the pipelines and
// presets that use it.
func (insp *Inspector) Entries() []Entry {
	labels := make(map[glstate.StateID][]string)
	for _, p := range insp.dev.Pipelines() {
		labels[p.StateID()] = append(labels[p.StateID()], p.Label())
	}
	for _, n := range insp.dev.Presets() {
		if id, ok := insp.dev.PresetState(n); ok {
			labels[id] = append(labels[id], fmt.Sprintf("[%s]", n))
		}
	}

	slots := insp.dev.System().Slots()
	entries := make([]Entry, 0, len(slots))
	for _, s := range slots {
		l := labels[s.ID]
		sort.Strings(l)
		entries = append(entries, Entry{SlotInfo: s, Labels: l})
	}
	return entries
}

func (e Entry) imgui() bool {
	for _, l := range e.Labels {
		if len(l) < len(LabelPrefix) || l[:len(LabelPrefix)] != LabelPrefix {
			return false
		}
	}
	return len(e.Labels) > 0
}

// Draw the window. Must be called between imgui.NewFrame() and
// imgui.Render().
func (insp *Inspector) Draw() {
	if !insp.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 640, Y: 480}, imgui.ConditionFirstUseEver)
	imgui.BeginV(Title, &insp.open, imgui.WindowFlagsNone)
	defer imgui.End()

	insp.drawStats()

	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()

	imgui.Checkbox("Hide imgui pipelines", &insp.hideImgui)
	insp.drawSlots()

	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()

	insp.drawSelected()
}

func (insp *Inspector) drawStats() {
	sys := insp.dev.System()
	st := sys.Stats()

	profile := "compatibility"
	if sys.CoreOnly() {
		profile = "core only"
	}
	imgui.Text(fmt.Sprintf("%d states allocated (%s)  %d draws", sys.Allocated(), profile, insp.dev.Draws()))
	imgui.Text(fmt.Sprintf("applies: %d full  %d diff  %d zero", st.FullApplies, st.DiffApplies, st.ZeroDiffs))
	imgui.Text(fmt.Sprintf("diff cache: %d hits  %d misses  %d evictions", st.Hits, st.Misses, st.Evictions))
	if imgui.Button("Reset Statistics") {
		sys.ResetStats()
	}
}

func (insp *Inspector) drawSlots() {
	const numColumns = 5

	height := imgui.ContentRegionAvail().Y * 0.4
	imgui.BeginChildV("##inspectorSlots", imgui.Vec2{X: 0, Y: height}, false, imgui.WindowFlagsNone)
	defer imgui.EndChild()

	if !imgui.BeginTableV("##inspectorSlotsTable", numColumns, imgui.TableFlagsSizingFixedFit|imgui.TableFlagsRowBg, imgui.Vec2{}, 0.0) {
		return
	}
	imgui.TableSetupColumnV("ID", imgui.TableColumnFlagsNone, 40, 0)
	imgui.TableSetupColumnV("Incarnation", imgui.TableColumnFlagsNone, 80, 1)
	imgui.TableSetupColumnV("Primitive", imgui.TableColumnFlagsNone, 120, 2)
	imgui.TableSetupColumnV("Diffs", imgui.TableColumnFlagsNone, 40, 3)
	imgui.TableSetupColumnV("Used by", imgui.TableColumnFlagsNone, 240, 4)
	imgui.TableHeadersRow()

	for _, e := range insp.Entries() {
		if insp.hideImgui && e.imgui() {
			continue
		}

		imgui.TableNextRow()
		imgui.TableNextColumn()
		if imgui.SelectableV(fmt.Sprintf("%d", e.ID), e.ID == insp.selected, imgui.SelectableFlagsSpanAllColumns, imgui.Vec2{}) {
			insp.selected = e.ID
		}
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", e.Incarnation))
		imgui.TableNextColumn()
		imgui.Text(e.BasePrimitiveMode.String())
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d/%d", e.CachedDiffs, glstate.MaxDiffs))
		imgui.TableNextColumn()
		for i, l := range e.Labels {
			if i > 0 {
				imgui.SameLine()
			}
			imgui.Text(l)
		}
	}

	imgui.EndTable()
}

func (insp *Inspector) drawSelected() {
	// the selected slot may have been destroyed since the last frame
	insp.Select(insp.selected)
	if insp.selected == glstate.InvalidID {
		imgui.Text("no state selected")
		return
	}

	sys := insp.dev.System()
	imgui.Text(fmt.Sprintf("state %d (incarnation %d)", insp.selected, sys.Incarnation(insp.selected)))
	imgui.SameLine()
	imgui.Checkbox("Changed only", &insp.changedOnly)

	imgui.BeginChildV("##inspectorSlices", imgui.Vec2{}, false, imgui.WindowFlagsNone)
	defer imgui.EndChild()

	for _, r := range Describe(sys.Get(insp.selected), sys.CoreOnly()) {
		if insp.changedOnly && !r.Changed {
			continue
		}
		if imgui.CollapsingHeader(r.Slice) {
			imgui.PushTextWrapPos()
			imgui.Text(r.Value)
			imgui.PopTextWrapPos()
		}
	}
}
