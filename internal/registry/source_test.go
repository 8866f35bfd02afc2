package registry

import (
	"testing"

	"flipd/internal/slotpool"
	"flipd/internal/window"
	"flipd/pkg/types"
)

func items(ids ...string) []types.Item {
	out := make([]types.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.Item{ID: id, Name: id})
	}
	return out
}

func TestListSource_ContentAndStableIDs(t *testing.T) {
	s := NewListSource(items("a", "b", "c"))
	if s.Count() != 3 {
		t.Fatalf("count=%d", s.Count())
	}
	c, id, ok := s.Content(1)
	if !ok || c.(types.Item).ID != "b" || id != StableID(types.Item{ID: "b"}) {
		t.Fatalf("content=%v id=%d ok=%v", c, id, ok)
	}
	if _, _, ok := s.Content(3); ok {
		t.Fatalf("out of range must report absent content")
	}
	if StableID(types.Item{ID: "a"}) == StableID(types.Item{ID: "b"}) {
		t.Fatalf("distinct ids expected")
	}
}

func TestListSource_Mutations(t *testing.T) {
	s := NewListSource(items("a", "c"))
	s.Insert(1, types.Item{ID: "b"})
	s.Insert(99, types.Item{ID: "d"})
	s.Insert(-4, types.Item{ID: "_"})
	got := s.Items()
	want := []string{"_", "a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("items=%+v", got)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("items=%+v", got)
		}
	}
	if !s.Remove(0) || s.Remove(10) || s.Count() != 4 {
		t.Fatalf("remove failed: %+v", s.Items())
	}
	s.Replace(items("z"))
	if s.Count() != 1 {
		t.Fatalf("replace failed")
	}
}

func TestDirSource_ReloadDrivesPool(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "01.jpg", "02.jpg")
	src, err := OpenDir(dir, ".jpg")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if src.Dir() != dir {
		t.Fatalf("dir=%s", src.Dir())
	}
	p, err := slotpool.NewWithConfig(slotpool.PoolConfig{
		Window: window.Config{Size: 3, ActiveOffset: 1},
		Source: src,
	})
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	if _, err := p.ShowOnly(1); err != nil {
		t.Fatalf("show: %v", err)
	}
	if len(p.Slots()) != 2 {
		t.Fatalf("slots=%d", len(p.Slots()))
	}

	writeFiles(t, dir, "03.jpg")
	plan, err := p.Sync()
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if plan.Count(slotpool.IntentEnter) != 1 || len(p.Slots()) != 3 {
		t.Fatalf("expected the new file to enter: %+v", plan)
	}
	last, ok := p.SlotAt(2)
	if !ok || last.Content.(types.Item).ID != "03.jpg" {
		t.Fatalf("last=%+v", last)
	}
}
