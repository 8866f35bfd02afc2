package slotpool

import (
	"math/rand"
	"testing"

	"flipd/internal/window"
)

// TestShiftProperties drives pools through random walks and checks coverage,
// conservation, reuse and idempotence after every shift.
func TestShiftProperties(t *testing.T) {
	configs := []window.Config{
		{Size: 1, ActiveOffset: 0},
		{Size: 3, ActiveOffset: 1},
		{Size: 4, ActiveOffset: 3},
		{Size: 3, ActiveOffset: 1, Loop: true},
		{Size: 5, ActiveOffset: 2, Loop: true},
		{Size: 6, ActiveOffset: 0, Loop: true},
	}
	rng := rand.New(rand.NewSource(440))
	for _, cfg := range configs {
		src := newFakeSource(1 + rng.Intn(12))
		p, _ := newTestPool(t, cfg, src)
		for step := 0; step < 200; step++ {
			if rng.Intn(15) == 0 {
				src.items = newFakeSource(1 + rng.Intn(12)).items
				p.SetSequenceState(src.Count())
			}
			before := map[int]bool{}
			for _, s := range p.Slots() {
				before[s.Logical] = true
			}
			target := rng.Intn(40) - 20
			plan, err := p.ShowOnly(target)
			if err != nil {
				t.Fatalf("cfg=%+v step=%d ShowOnly(%d): %v", cfg, step, target, err)
			}
			checkCoverage(t, p, cfg, plan)
			checkConservation(t, plan, len(before))
			checkReuse(t, plan, before)

			again, err := p.ShowOnly(target)
			if err != nil {
				t.Fatalf("repeat: %v", err)
			}
			if len(again.Intents) != 0 || again.Bounds != plan.Bounds {
				t.Fatalf("cfg=%+v step=%d: repeat of %d was not a no-op: %+v", cfg, step, target, compact(again))
			}
		}
	}
}

func checkCoverage(t *testing.T, p *Pool, cfg window.Config, plan Plan) {
	t.Helper()
	count := p.Count()
	span := window.Span(cfg, count)
	want := map[int]int{}
	for i := plan.Bounds.BoundedStart; i <= plan.Bounds.BoundedEnd; i++ {
		want[window.Modulo(i, span)] = plan.Bounds.Relative(i)
	}
	slots := p.Slots()
	if len(slots) != len(want) {
		t.Fatalf("cfg=%+v count=%d: %d slots for a window of %d", cfg, count, len(slots), len(want))
	}
	for _, s := range slots {
		rel, ok := want[s.Logical]
		if !ok || rel != s.Relative {
			t.Fatalf("cfg=%+v: slot %+v not at its window position (want rel %d, in=%v)", cfg, s, rel, ok)
		}
		if s.SourcePosition != window.Modulo(s.Logical, count) {
			t.Fatalf("slot %+v has a stale source position for count %d", s, count)
		}
	}
	n := window.NumActive(cfg, count)
	if cfg.Loop && len(slots) != n {
		t.Fatalf("looping window must hold %d slots, has %d", n, len(slots))
	}
	if !cfg.Loop && len(slots) > n {
		t.Fatalf("finite window holds %d slots, more than %d", len(slots), n)
	}
}

func checkConservation(t *testing.T, plan Plan, residentBefore int) {
	t.Helper()
	delta := plan.Count(IntentEnter) - plan.Count(IntentExit)
	if residentBefore+delta != plan.Resident {
		t.Fatalf("enters-exits=%d but resident went %d -> %d", delta, residentBefore, plan.Resident)
	}
}

func checkReuse(t *testing.T, plan Plan, before map[int]bool) {
	t.Helper()
	entered := map[int]bool{}
	exited := map[int]bool{}
	for _, in := range plan.Intents {
		switch in.Kind {
		case IntentEnter:
			if before[in.Logical] && !exited[in.Logical] {
				t.Fatalf("logical %d entered while already resident", in.Logical)
			}
			entered[in.Logical] = true
		case IntentExit:
			exited[in.Logical] = true
		case IntentMove:
			if !before[in.Logical] || in.From == in.To {
				t.Fatalf("bad move %+v", in)
			}
		}
	}
	for l := range entered {
		if exited[l] {
			t.Fatalf("logical %d both exited and entered in one shift", l)
		}
	}
}
