package slotpool

import (
	"fmt"

	"flipd/internal/window"
)

// SetDisplayed shows which, first folding it into the span: past the end it
// wraps to 0 when looping and clamps to the last position otherwise; below 0
// it wraps to the last position or clamps to 0.
func (p *Pool) SetDisplayed(which int) (Plan, error) {
	p.mu.Lock()
	plan, err := p.setDisplayedLocked(which)
	pub := p.pub
	p.mu.Unlock()
	if plan.Changed || len(plan.Intents) > 0 {
		pub.Publish(Event{Name: EventPlan, Target: plan.Target, Plan: plan})
	}
	return plan, err
}

func (p *Pool) setDisplayedLocked(which int) (Plan, error) {
	if span := window.Span(p.cfg, p.count); span > 0 {
		switch {
		case which >= span && p.cfg.Loop:
			which = 0
		case which >= span:
			which = span - 1
		case which < 0 && p.cfg.Loop:
			which = span - 1
		case which < 0:
			which = 0
		}
	}
	return p.showOnlyLocked(which, p.animateLocked())
}

// Advance moves the displayed target by delta. Finite sequences stop at
// either end (retreating at 0 is a no-op); looping sequences wrap.
func (p *Pool) Advance(delta int) (Plan, error) {
	p.mu.Lock()
	plan, err := p.setDisplayedLocked(p.target + delta)
	pub := p.pub
	p.mu.Unlock()
	if plan.Changed || len(plan.Intents) > 0 {
		pub.Publish(Event{Name: EventPlan, Target: plan.Target, Plan: plan})
	}
	return plan, err
}

// Next is Advance(1).
func (p *Pool) Next() (Plan, error) { return p.Advance(1) }

// Previous is Advance(-1).
func (p *Pool) Previous() (Plan, error) { return p.Advance(-1) }

// NotifyChanged handles a data-set change reported by the source: it re-reads
// the count, resets the target to 0 when it no longer fits the span, re-shows
// when the count moved, and finally re-reads every resident slot. A slot whose
// position now holds a different stable id exits and a fresh one enters in its
// place. Plans produced here never animate.
func (p *Pool) NotifyChanged() (Plan, error) {
	p.mu.Lock()
	old := p.count
	p.count = max(0, p.src.Count())
	// showOnlyLocked only re-reads survivors when the count differs from
	// the last commit.
	verified := p.count != p.shiftCount
	var (
		plan Plan
		err  error
	)
	switch span := window.Span(p.cfg, p.count); {
	case p.count == 0:
		plan, err = p.showOnlyLocked(p.target, false)
	case p.target >= span:
		p.target = 0
		plan, err = p.showOnlyLocked(0, false)
	case old != p.count:
		plan, err = p.showOnlyLocked(p.target, false)
	default:
		plan = Plan{Bounds: p.bounds, Target: p.target, Resident: len(p.slots)}
		verified = false
	}
	if err == nil && !verified {
		plan = p.reidentifyLocked(plan, false)
	}
	pub := p.pub
	p.mu.Unlock()
	if plan.Changed || len(plan.Intents) > 0 {
		pub.Publish(Event{Name: EventPlan, Target: plan.Target, Plan: plan})
	}
	if err == nil {
		pub.Publish(Event{Name: EventRefreshed, Target: plan.Target})
	}
	return plan, err
}

// Sync reloads the source when it supports it, then runs NotifyChanged.
func (p *Pool) Sync() (Plan, error) {
	if r, ok := p.source().(Reloader); ok {
		if err := r.Reload(); err != nil {
			return Plan{}, fmt.Errorf("reload source: %w", err)
		}
	}
	return p.NotifyChanged()
}

// Refresh re-fetches content for every resident slot without changing
// residency, relative indices or stable ids. It returns the refreshed slots
// ordered by relative index. After the source itself changed, use
// NotifyChanged so replaced items get a new identity.
func (p *Pool) Refresh() []Slot {
	p.mu.Lock()
	out := p.refreshLocked()
	pub, target := p.pub, p.target
	p.mu.Unlock()
	pub.Publish(Event{Name: EventRefreshed, Target: target})
	return out
}

func (p *Pool) refreshLocked() []Slot {
	for logical, s := range p.slots {
		content, _, ok := p.src.Content(s.SourcePosition)
		s.Content = content
		s.Empty = !ok
		p.slots[logical] = s
	}
	return p.orderedLocked()
}

func (p *Pool) source() Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.src
}
