package slotpool

import (
	"fmt"
	"sort"
	"testing"

	"github.com/cespare/xxhash/v2"

	"flipd/internal/window"
)

// fakeSource is an in-memory sequence of strings. Positions listed in absent
// report no content. Ids follow the position unless keyed is set, in which
// case they are derived from the item itself.
type fakeSource struct {
	items   []string
	keyed   bool
	absent  map[int]bool
	fetches []int
	reloads int
	reload  func(*fakeSource) error
}

func newFakeSource(n int) *fakeSource {
	f := &fakeSource{absent: map[int]bool{}}
	for i := 0; i < n; i++ {
		f.items = append(f.items, fmt.Sprintf("item-%d", i))
	}
	return f
}

func (f *fakeSource) Count() int { return len(f.items) }

func (f *fakeSource) Content(pos int) (any, int64, bool) {
	f.fetches = append(f.fetches, pos)
	if pos < 0 || pos >= len(f.items) || f.absent[pos] {
		return nil, 0, false
	}
	return f.items[pos], f.id(pos), true
}

func (f *fakeSource) id(pos int) int64 {
	if f.keyed {
		return int64(xxhash.Sum64String(f.items[pos]))
	}
	return int64(1000 + pos)
}

func (f *fakeSource) Reload() error {
	f.reloads++
	if f.reload != nil {
		return f.reload(f)
	}
	return nil
}

func newTestPool(t *testing.T, cfg window.Config, src Source) (*Pool, *MemoryPublisher) {
	t.Helper()
	pub := NewMemoryPublisher()
	p, err := NewWithConfig(PoolConfig{Window: cfg, Source: src, Publisher: pub})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	return p, pub
}

func mustShow(t *testing.T, p *Pool, target int) Plan {
	t.Helper()
	plan, err := p.ShowOnly(target)
	if err != nil {
		t.Fatalf("ShowOnly(%d): %v", target, err)
	}
	return plan
}

// residentLogicals returns the sorted logical indices currently resident.
func residentLogicals(p *Pool) []int {
	var out []int
	for _, s := range p.Slots() {
		out = append(out, s.Logical)
	}
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// intent is a compact form used for ordered plan comparisons.
type intent struct {
	kind     IntentKind
	from, to int
	logical  int
}

func compact(plan Plan) []intent {
	out := make([]intent, 0, len(plan.Intents))
	for _, in := range plan.Intents {
		out = append(out, intent{in.Kind, in.From, in.To, in.Logical})
	}
	return out
}

func assertIntents(t *testing.T, plan Plan, want []intent) {
	t.Helper()
	got := compact(plan)
	if len(got) != len(want) {
		t.Fatalf("intents: got %+v want %+v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("intent %d: got %+v want %+v (all: %+v)", i, got[i], want[i], got)
		}
	}
}
