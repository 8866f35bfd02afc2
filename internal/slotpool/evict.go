package slotpool

import (
	"sort"

	"flipd/internal/window"
)

// evictionPass splits the resident slots into exits (logical index outside the
// new bounded range) and survivors. Nothing is mutated; survivors are copies.
// Exits are ordered by their last relative index.
func (p *Pool) evictionPass(sh window.Shift, animate bool) ([]Intent, map[int]Slot) {
	kept := make(map[int]Slot, len(p.slots))
	var exits []Intent
	for logical, s := range p.slots {
		if sh.Bounds.Contains(logical, sh.Span) {
			kept[logical] = s
			continue
		}
		exits = append(exits, exitIntent(s, animate))
	}
	sortExits(exits)
	return exits, kept
}

// evictAll exits every resident slot.
func (p *Pool) evictAll(animate bool) []Intent {
	exits := make([]Intent, 0, len(p.slots))
	for _, s := range p.slots {
		exits = append(exits, exitIntent(s, animate))
	}
	sortExits(exits)
	return exits
}

func sortExits(exits []Intent) {
	sort.Slice(exits, func(i, j int) bool {
		if exits[i].From != exits[j].From {
			return exits[i].From < exits[j].From
		}
		return exits[i].Logical < exits[j].Logical
	})
}
