package slotpool

import (
	"sort"

	"flipd/internal/window"
	"flipd/pkg/types"
)

// Snapshot is a read-only projection of the pool state.
type Snapshot struct {
	Config  window.Config
	Count   int
	Span    int
	Target  int
	Bounds  window.Bounds
	Slots   []Slot
	Shifts  uint64
	Evicted uint64
}

// Snapshot returns a consistent copy of the pool state.
func (p *Pool) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Config:  p.cfg,
		Count:   p.count,
		Span:    window.Span(p.cfg, p.count),
		Target:  p.target,
		Bounds:  p.bounds,
		Slots:   p.orderedLocked(),
		Shifts:  p.shiftsTotal,
		Evicted: p.evictionsTotal,
	}
}

// Slots returns the resident slots ordered by relative index.
func (p *Pool) Slots() []Slot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orderedLocked()
}

// SlotAt returns the slot at a relative index of the committed window.
func (p *Pool) SlotAt(relative int) (Slot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slotAtLocked(relative)
}

// Current returns the slot at the active offset.
func (p *Pool) Current() (Slot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slotAtLocked(p.cfg.ActiveOffset)
}

// Ready reports whether the window holds at least one slot.
func (p *Pool) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count > 0 && len(p.slots) > 0
}

func (p *Pool) slotAtLocked(relative int) (Slot, bool) {
	if relative < 0 || relative >= window.NumActive(p.cfg, p.count) || p.span == 0 {
		return Slot{}, false
	}
	s, ok := p.slots[window.Modulo(p.bounds.Start+relative, p.span)]
	if !ok || s.Relative != relative {
		return Slot{}, false
	}
	return s, true
}

func (p *Pool) orderedLocked() []Slot {
	out := make([]Slot, 0, len(p.slots))
	for _, s := range p.slots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Relative < out[j].Relative })
	return out
}

// Status builds the response for GET /window.
func (p *Pool) Status() types.StatusResponse {
	snap := p.Snapshot()
	resp := types.StatusResponse{
		Window: types.WindowShape{
			Size:         snap.Config.Size,
			ActiveOffset: snap.Config.ActiveOffset,
			Loop:         snap.Config.Loop,
		},
		Count:          snap.Count,
		Span:           snap.Span,
		Target:         snap.Target,
		Bounds:         boundsView(snap.Bounds),
		ShiftsTotal:    snap.Shifts,
		EvictionsTotal: snap.Evicted,
	}
	resp.Slots = make([]types.SlotStatus, 0, len(snap.Slots))
	for _, s := range snap.Slots {
		resp.Slots = append(resp.Slots, types.SlotStatus{
			Logical:        s.Logical,
			Relative:       s.Relative,
			SourcePosition: s.SourcePosition,
			StableID:       s.StableID,
			Empty:          s.Empty,
			Content:        s.Content,
		})
	}
	return resp
}

// Response converts a plan into its API form.
func (pl Plan) Response() types.PlanResponse {
	resp := types.PlanResponse{
		Target:   pl.Target,
		Changed:  pl.Changed,
		Bounds:   boundsView(pl.Bounds),
		Intents:  make([]types.IntentView, 0, len(pl.Intents)),
		Resident: pl.Resident,
	}
	for _, in := range pl.Intents {
		resp.Intents = append(resp.Intents, types.IntentView{
			Kind:           string(in.Kind),
			From:           in.From,
			To:             in.To,
			Logical:        in.Logical,
			SourcePosition: in.SourcePosition,
			StableID:       in.StableID,
			Animate:        in.Animate,
		})
	}
	return resp
}

func boundsView(b window.Bounds) types.BoundsView {
	return types.BoundsView{
		Start:        b.Start,
		End:          b.End,
		BoundedStart: b.BoundedStart,
		BoundedEnd:   b.BoundedEnd,
	}
}
