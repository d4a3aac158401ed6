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

package device

import (
	"sort"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/glstate"
	"github.com/lightmass/lightmass/logger"
	"github.com/lightmass/lightmass/presets"
)

// Error patterns.
const (
	PresetsError = "device: presets: %v"
)

type preset struct {
	id     glstate.StateID
	preset presets.Preset
}

// LoadPresets registers the presets as render states. A preset with the
// same name as one that is already registered replaces it, and every
// pipeline created from the preset is updated. Registered presets that are
// not in the list are removed. Pipelines created from a removed preset keep
// their current state.
func (dev *Device) LoadPresets(list []presets.Preset) error {
	seen := make(map[string]bool, len(list))

	for _, p := range list {
		seen[p.Name] = true

		pr, ok := dev.presets[p.Name]
		if !ok {
			ids, err := dev.sys.Generate(1)
			if err != nil {
				dev.messagef("preset %s: %v", p.Name, err)
				return curated.Errorf(PresetsError, err)
			}
			pr = &preset{id: ids[0]}
			dev.presets[p.Name] = pr
		}
		pr.preset = p
		dev.setState(pr.id, &pr.preset.State, pr.preset.Primitive)

		for _, rp := range dev.pipelines {
			if rp.preset == p.Name {
				st := rp.fill(&pr.preset.State)
				dev.setState(rp.state, &st, pr.preset.Primitive)
				dev.prepare(rp)
			}
		}
	}

	for name, pr := range dev.presets {
		if !seen[name] {
			dev.destroyState(pr.id)
			delete(dev.presets, name)
		}
	}

	logger.Logf(logger.Allow, "device", "%d presets registered", len(dev.presets))

	return nil
}

// Presets returns the names of the registered presets in sorted order.
func (dev *Device) Presets() []string {
	names := make([]string, 0, len(dev.presets))
	for n := range dev.presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PresetState returns the state ID of the named preset.
func (dev *Device) PresetState(name string) (glstate.StateID, bool) {
	pr, ok := dev.presets[name]
	if !ok {
		return glstate.InvalidID, false
	}
	return pr.id, true
}
