package slotpool

import "flipd/pkg/types"

// Show is ShowOnly in API form.
func (p *Pool) Show(position int) (types.PlanResponse, error) {
	plan, err := p.ShowOnly(position)
	return plan.Response(), err
}

// Step is Advance in API form.
func (p *Pool) Step(delta int) (types.PlanResponse, error) {
	plan, err := p.Advance(delta)
	return plan.Response(), err
}

// Rescan is Sync in API form.
func (p *Pool) Rescan() (types.PlanResponse, error) {
	plan, err := p.Sync()
	return plan.Response(), err
}
