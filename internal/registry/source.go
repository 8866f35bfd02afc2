package registry

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"flipd/pkg/types"
)

// StableID derives the identity the pool keeps for an item.
func StableID(it types.Item) int64 {
	return int64(xxhash.Sum64String(it.ID))
}

// ListSource is an in-memory sequence of items. It satisfies slotpool.Source
// and is safe for concurrent use.
type ListSource struct {
	mu    sync.RWMutex
	items []types.Item
}

// NewListSource copies items into a new source.
func NewListSource(items []types.Item) *ListSource {
	return &ListSource{items: append([]types.Item(nil), items...)}
}

func (s *ListSource) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Content returns the item at pos and its stable id; ok is false outside the
// sequence.
func (s *ListSource) Content(pos int) (any, int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 0 || pos >= len(s.items) {
		return nil, 0, false
	}
	it := s.items[pos]
	return it, StableID(it), true
}

// Items returns a copy of the current sequence.
func (s *ListSource) Items() []types.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Item(nil), s.items...)
}

// Replace swaps the whole sequence.
func (s *ListSource) Replace(items []types.Item) {
	s.mu.Lock()
	s.items = append([]types.Item(nil), items...)
	s.mu.Unlock()
}

// Insert places it at pos, clamped into [0, len].
func (s *ListSource) Insert(pos int, it types.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos = max(0, min(pos, len(s.items)))
	s.items = append(s.items, types.Item{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = it
}

// Remove deletes the item at pos and reports whether anything was removed.
func (s *ListSource) Remove(pos int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.items) {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return true
}

// DirSource is a ListSource backed by a directory; Reload rescans it.
type DirSource struct {
	*ListSource
	dir     string
	scanner Scanner
}

// OpenDir scans dir once and returns a reloadable source over its files.
func OpenDir(dir, ext string) (*DirSource, error) {
	sc := NewScanner(ext)
	items, err := sc.Scan(dir)
	if err != nil {
		return nil, err
	}
	return &DirSource{ListSource: NewListSource(items), dir: dir, scanner: sc}, nil
}

// Dir returns the scanned directory as configured.
func (d *DirSource) Dir() string { return d.dir }

// Reload rescans the directory and replaces the sequence. On error the
// previous sequence is kept.
func (d *DirSource) Reload() error {
	items, err := d.scanner.Scan(d.dir)
	if err != nil {
		return err
	}
	d.Replace(items)
	return nil
}
