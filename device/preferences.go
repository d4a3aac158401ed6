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
	"github.com/lightmass/lightmass/paths"
	"github.com/lightmass/lightmass/prefs"
)

// Preferences for the device.
type Preferences struct {
	dsk *prefs.Disk

	// the deprecated state slices are never applied. pipelines use the core
	// binder
	CoreOnly prefs.Bool

	// draws apply the difference from the previous state. a brute force
	// apply is used otherwise
	StateDiff prefs.Bool

	// core pipelines bind vertex buffers by GPU address if the context
	// supports it
	AddressRange prefs.Bool

	// transitions between every pair of pipelines are computed when a
	// pipeline is created
	Prepare prefs.Bool

	// the maximum number of states in the pool. zero for no limit
	MaxStates prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

const (
	defaultCoreOnly     = false
	defaultStateDiff    = true
	defaultAddressRange = true
	defaultPrepare      = false
	defaultMaxStates    = 0
)

func (p *Preferences) setDefaults() {
	p.CoreOnly.Set(defaultCoreOnly)
	p.StateDiff.Set(defaultStateDiff)
	p.AddressRange.Set(defaultAddressRange)
	p.Prepare.Set(defaultPrepare)
	p.MaxStates.Set(defaultMaxStates)
}

// DefaultPreferences returns preferences with the default values that are
// not backed by a file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.setDefaults()
	return p
}

// NewPreferences loads the device preferences from the default preferences
// file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFile(pth)
}

// NewPreferencesFile loads the device preferences from the named file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.setDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("device.coreonly", &p.CoreOnly)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.statediff", &p.StateDiff)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.addressrange", &p.AddressRange)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.prepare", &p.Prepare)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.maxstates", &p.MaxStates)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
