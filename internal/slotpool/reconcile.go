package slotpool

import (
	"sort"

	"flipd/internal/window"
)

// ShowOnly moves the window so that target sits at the active offset and
// returns the transition plan. Calling it again with the same target and an
// unchanged sequence returns an empty plan. With an empty sequence every slot
// is evicted and the error satisfies IsEmptySequence.
func (p *Pool) ShowOnly(target int) (Plan, error) {
	p.mu.Lock()
	plan, err := p.showOnlyLocked(target, p.animateLocked())
	pub := p.pub
	p.mu.Unlock()
	if plan.Changed || len(plan.Intents) > 0 {
		pub.Publish(Event{Name: EventPlan, Target: plan.Target, Plan: plan})
	}
	return plan, err
}

// animateLocked reports whether navigation plans animate: always once the
// pool has been populated, and on the first show only when configured.
func (p *Pool) animateLocked() bool {
	return p.populated || p.animateFirst
}

// showOnlyLocked shifts to target. When the count moved since the last
// commit, surviving slots are re-checked against the source so a slot whose
// position now holds a different item is replaced.
func (p *Pool) showOnlyLocked(target int, animate bool) (Plan, error) {
	prevCount := p.shiftCount
	if p.count == 0 {
		if len(p.slots) == 0 && p.bounds.IsEmpty() {
			return Plan{Bounds: window.EmptyBounds, Target: p.target}, ErrEmptySequence()
		}
		sh := window.Empty(p.bounds, p.cfg)
		exits := p.evictAll(animate)
		p.commit(sh, make(map[int]Slot), len(exits))
		return Plan{Intents: exits, Bounds: sh.Bounds, Target: p.target, Changed: sh.Changed}, ErrEmptySequence()
	}

	sh, err := window.Compute(target, p.bounds, p.cfg, window.Sequence{Count: p.count})
	if err != nil {
		return Plan{}, err
	}
	if !sh.Changed && sh.Span == p.span && p.count == p.shiftCount {
		p.target = sh.Target
		return Plan{Bounds: sh.Bounds, Target: sh.Target, Resident: len(p.slots)}, nil
	}

	exits, kept := p.evictionPass(sh, animate)
	next, intents, err := p.reconcile(sh, kept, animate)
	if err != nil {
		p.log.Warn().Err(err).Int("target", sh.Target).Msg("shift aborted")
		return Plan{}, err
	}
	p.commit(sh, next, len(exits))

	plan := Plan{
		Intents:  append(exits, intents...),
		Bounds:   sh.Bounds,
		Target:   sh.Target,
		Changed:  sh.Changed,
		Resident: len(next),
	}
	if prevCount != p.count {
		plan = p.reidentifyLocked(plan, animate)
	}
	p.log.Debug().
		Int("target", plan.Target).
		Int("start", sh.Bounds.BoundedStart).
		Int("end", sh.Bounds.BoundedEnd).
		Int("enter", plan.Count(IntentEnter)).
		Int("exit", plan.Count(IntentExit)).
		Int("move", plan.Count(IntentMove)).
		Msg("window shifted")
	return plan, nil
}

// reconcile walks every index of the new bounded range. Survivors are moved
// to their new relative index; missing logical indices get a fresh slot from
// the source. kept is consumed; anything left in it afterwards was never
// reconciled and aborts the shift.
func (p *Pool) reconcile(sh window.Shift, kept map[int]Slot, animate bool) (map[int]Slot, []Intent, error) {
	next := make(map[int]Slot, sh.Bounds.Len())
	var intents []Intent
	for i := sh.Bounds.BoundedStart; i <= sh.Bounds.BoundedEnd; i++ {
		logical := window.Modulo(i, sh.Span)
		if _, dup := next[logical]; dup {
			return nil, nil, ErrInconsistentSlot(logical, "claimed twice in one window")
		}
		rel := sh.Bounds.Relative(i)
		if s, ok := kept[logical]; ok {
			delete(kept, logical)
			s.SourcePosition = window.Modulo(logical, p.count)
			if s.Relative != rel {
				from := s.Relative
				s.Relative = rel
				intents = append(intents, moveIntent(s, from, animate))
			}
			next[logical] = s
			continue
		}
		s := p.fetch(logical, rel)
		next[logical] = s
		intents = append(intents, enterIntent(s, animate))
	}
	for logical := range kept {
		return nil, nil, ErrInconsistentSlot(logical, "resident inside the window but never reconciled")
	}
	return next, intents, nil
}

// fetch builds a new slot for logical from the source. Absent content still
// yields a slot so index bookkeeping stays consistent.
func (p *Pool) fetch(logical, rel int) Slot {
	pos := window.Modulo(logical, p.count)
	content, id, ok := p.src.Content(pos)
	return Slot{
		Logical:        logical,
		Relative:       rel,
		SourcePosition: pos,
		StableID:       id,
		Content:        content,
		Empty:          !ok,
	}
}

// reidentifyLocked re-reads every resident slot not entered by plan. Content
// is refreshed in place while the stable id still matches; a slot whose
// position now yields a different id is replaced, which appends an exit for
// the old identity and an enter for the new one. Any move planned for the
// replaced slot is dropped. Absent content keeps the resident id.
func (p *Pool) reidentifyLocked(plan Plan, animate bool) Plan {
	entered := make(map[int]bool)
	movedFrom := make(map[int]int)
	for _, in := range plan.Intents {
		switch in.Kind {
		case IntentEnter:
			entered[in.Logical] = true
		case IntentMove:
			movedFrom[in.Logical] = in.From
		}
	}

	stale := make(map[int]Slot)
	for logical, s := range p.slots {
		if entered[logical] {
			continue
		}
		content, id, ok := p.src.Content(s.SourcePosition)
		if ok && id != s.StableID {
			stale[logical] = s
			s.StableID = id
		}
		s.Content = content
		s.Empty = !ok
		p.slots[logical] = s
	}
	if len(stale) == 0 {
		return plan
	}

	var exits, rest []Intent
	for _, in := range plan.Intents {
		if _, ok := stale[in.Logical]; ok && in.Kind == IntentMove {
			continue
		}
		if in.Kind == IntentExit {
			exits = append(exits, in)
		} else {
			rest = append(rest, in)
		}
	}
	for logical, old := range stale {
		if from, ok := movedFrom[logical]; ok {
			old.Relative = from
		}
		exits = append(exits, exitIntent(old, animate))
		rest = append(rest, enterIntent(p.slots[logical], animate))
	}
	sortExits(exits)
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].To < rest[j].To })

	p.evictionsTotal += uint64(len(stale))
	p.log.Debug().Int("replaced", len(stale)).Msg("resident identities changed")
	plan.Intents = append(exits, rest...)
	return plan
}

func (p *Pool) commit(sh window.Shift, next map[int]Slot, evicted int) {
	p.slots = next
	p.bounds = sh.Bounds
	p.span = sh.Span
	p.shiftCount = p.count
	if !sh.Bounds.IsEmpty() {
		p.target = sh.Target
		p.populated = true
	}
	p.shiftsTotal++
	p.evictionsTotal += uint64(evicted)
}
