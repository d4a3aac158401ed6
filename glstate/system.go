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

package glstate

import (
	"fmt"

	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/logger"
)

// Error patterns.
const (
	PoolExhausted = "glstate: pool exhausted: %d states requested, %d available"
)

// StateID identifies a slot in a System. The zero value is InvalidID.
type StateID uint32

// InvalidID is never returned by Generate. As the prev argument of
// ApplyTransition it means that the state of the context is unknown.
const InvalidID StateID = 0

// MaxDiffs is the number of diffs cached for each state.
const MaxDiffs = 16

type diffEntry struct {
	prev            StateID
	prevIncarnation uint32
	incarnation     uint32
	diff            StateDiff
}

type slot struct {
	state             State
	basePrimitiveMode Enum
	incarnation       uint32
	allocated         bool

	// ring of cached diffs. next is the entry that will be overwritten
	// when the ring is full
	cache [MaxDiffs]diffEntry
	used  int
	next  int
}

func (s *slot) clearCache() {
	s.used = 0
	s.next = 0
}

// Stats counts the work done by a System.
type Stats struct {
	FullApplies int
	DiffApplies int
	ZeroDiffs   int
	Hits        int
	Misses      int
	Evictions   int
}

// SlotInfo describes one allocated slot for display purposes.
type SlotInfo struct {
	ID                StateID
	Incarnation       uint32
	BasePrimitiveMode Enum
	CachedDiffs       int
}

// System owns a pool of State values and applies transitions between them
// by applying only the slices that differ.
//
// A System is bound to the thread that owns the GL context and must not be
// used from more than one goroutine.
type System struct {
	ctx      Context
	coreOnly bool

	// the apply table with deprecated entries removed if coreOnly is set
	appliers []applyEntry

	// slots[0] is never allocated. pointers to slots are stable
	slots []*slot
	free  []StateID

	// maximum number of allocated slots. zero means no limit
	limit int

	stats Stats
}

// NewSystem creates a System that issues calls to the context. If coreOnly
// is set the deprecated slices are never applied.
func NewSystem(ctx Context, coreOnly bool) *System {
	sys := &System{
		ctx:      ctx,
		coreOnly: coreOnly,
		slots:    []*slot{{}},
	}
	skip := skipBits(coreOnly)
	for _, e := range applyTable {
		if e.bit&skip == 0 {
			sys.appliers = append(sys.appliers, e)
		}
	}
	return sys
}

// CoreOnly returns true if deprecated slices are not applied.
func (sys *System) CoreOnly() bool {
	return sys.coreOnly
}

// SetLimit sets the maximum number of states that can be allocated at once.
// A value of zero or less removes the limit. States that are already
// allocated are not affected.
func (sys *System) SetLimit(limit int) {
	sys.limit = max(limit, 0)
}

// Allocated returns the number of allocated states.
func (sys *System) Allocated() int {
	return len(sys.slots) - 1 - len(sys.free)
}

func (sys *System) available() int {
	if sys.limit == 0 {
		return -1
	}
	return max(sys.limit-sys.Allocated(), 0)
}

// Generate allocates num states. Each state is initialised to the default
// state. No states are allocated if the request cannot be satisfied.
func (sys *System) Generate(num int) ([]StateID, error) {
	if num <= 0 {
		return nil, nil
	}
	if avail := sys.available(); avail >= 0 && num > avail {
		return nil, curated.Errorf(PoolExhausted, num, avail)
	}

	ids := make([]StateID, 0, num)
	grown := false
	for range num {
		var id StateID
		if n := len(sys.free); n > 0 {
			id = sys.free[n-1]
			sys.free = sys.free[:n-1]
		} else {
			id = StateID(len(sys.slots))
			sys.slots = append(sys.slots, &slot{})
			grown = true
		}

		s := sys.slots[id]
		s.state.SetDefaults()
		s.basePrimitiveMode = Triangles
		s.allocated = true
		s.incarnation++
		s.clearCache()
		ids = append(ids, id)
	}

	if grown {
		logger.Logf(logger.Allow, "glstate", "pool grown to %d slots", len(sys.slots)-1)
	}

	return ids, nil
}

// Destroy returns the states to the pool. Any diff cached against a
// destroyed state is invalidated.
func (sys *System) Destroy(ids ...StateID) {
	for _, id := range ids {
		s := sys.slot(id)
		s.allocated = false
		s.incarnation++
		s.clearCache()
		sys.free = append(sys.free, id)
	}
}

// slot returns the slot for the ID. It panics if the ID is not allocated.
func (sys *System) slot(id StateID) *slot {
	if id == InvalidID || int(id) >= len(sys.slots) || !sys.slots[id].allocated {
		panic(fmt.Sprintf("glstate: invalid state ID (%d)", id))
	}
	return sys.slots[id]
}

// Set replaces the content of the state. Any diff cached to or from the
// state is invalidated.
func (sys *System) Set(id StateID, st *State, basePrimitiveMode Enum) {
	s := sys.slot(id)
	s.state = *st
	s.basePrimitiveMode = basePrimitiveMode
	s.incarnation++
	s.clearCache()
}

// Get returns the content of the state. The State must not be modified. Use
// Set to change the content of a state.
func (sys *System) Get(id StateID) *State {
	return &sys.slot(id).state
}

// BasePrimitiveMode returns the primitive mode given to Set.
func (sys *System) BasePrimitiveMode(id StateID) Enum {
	return sys.slot(id).basePrimitiveMode
}

// Incarnation returns the number of times the slot for the ID has been
// changed. The value is never repeated for the same ID.
func (sys *System) Incarnation(id StateID) uint32 {
	return sys.slot(id).incarnation
}

// Apply the state with no regard for the current state of the context.
func (sys *System) Apply(id StateID) {
	s := sys.slot(id)
	d := FullDiff()
	sys.stats.FullApplies++
	applyDiff(sys.ctx, sys.appliers, &d, &s.state, 0)
}

// ApplyTransition applies the state on the assumption that the context is
// in the prev state. If prev is InvalidID the state is applied in full.
//
// Calling Set on the prev state after it has been applied to the context
// means that the context is no longer in the prev state. In that case the
// transition must be applied with InvalidID.
func (sys *System) ApplyTransition(id StateID, prev StateID) {
	if prev == InvalidID {
		sys.Apply(id)
		return
	}
	to := sys.slot(id)
	sys.stats.DiffApplies++

	// a state never differs from itself
	if id == prev {
		sys.stats.ZeroDiffs++
		return
	}

	d := sys.diff(to, prev, sys.slot(prev))
	if d.IsZero() {
		sys.stats.ZeroDiffs++
		return
	}
	applyDiff(sys.ctx, sys.appliers, d, &to.state, 0)
}

// PrepareTransition computes and caches the diff from prev to the state
// without touching the context.
func (sys *System) PrepareTransition(id StateID, prev StateID) {
	if prev == InvalidID || prev == id {
		return
	}
	sys.diff(sys.slot(id), prev, sys.slot(prev))
}

// ApplyDiff applies the slices of the state named in the diff.
func (sys *System) ApplyDiff(diff *StateDiff, st *State) {
	applyDiff(sys.ctx, sys.appliers, diff, st, 0)
}

// diff returns the cached diff from prev to id, computing it if necessary.
func (sys *System) diff(to *slot, prev StateID, from *slot) *StateDiff {
	for i := range to.used {
		e := &to.cache[i]
		if e.prev == prev && e.prevIncarnation == from.incarnation && e.incarnation == to.incarnation {
			sys.stats.Hits++
			return &e.diff
		}
	}

	sys.stats.Misses++
	e := &to.cache[to.next]
	if to.used < MaxDiffs {
		to.used++
	} else {
		sys.stats.Evictions++
	}
	to.next = (to.next + 1) % MaxDiffs

	*e = diffEntry{
		prev:            prev,
		prevIncarnation: from.incarnation,
		incarnation:     to.incarnation,
		diff:            MakeDiff(&from.state, &to.state),
	}
	return &e.diff
}

// Stats returns the counters accumulated since the last call to ResetStats.
func (sys *System) Stats() Stats {
	return sys.stats
}

// ResetStats zeroes the counters.
func (sys *System) ResetStats() {
	sys.stats = Stats{}
}

// Slots returns information about every allocated state in ID order.
func (sys *System) Slots() []SlotInfo {
	info := make([]SlotInfo, 0, sys.Allocated())
	for i, s := range sys.slots {
		if !s.allocated {
			continue
		}
		info = append(info, SlotInfo{
			ID:                StateID(i),
			Incarnation:       s.incarnation,
			BasePrimitiveMode: s.basePrimitiveMode,
			CachedDiffs:       s.used,
		})
	}
	return info
}

// Capture reads the current state of the context into the state.
func (sys *System) Capture(id StateID) {
	s := sys.slot(id)
	st := s.state
	st.Get(sys.ctx, sys.coreOnly)
	sys.Set(id, &st, s.basePrimitiveMode)
}
