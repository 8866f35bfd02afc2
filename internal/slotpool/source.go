package slotpool

// Source is the external sequence a Pool windows over. Implementations are
// owned by the surrounding layer and must be cheap: the pool calls them
// synchronously while holding its lock.
type Source interface {
	// Count returns the current size of the sequence.
	Count() int
	// Content fetches the item at pos and its stable identity. ok=false marks
	// absent content; the pool still keeps an empty placeholder slot.
	Content(pos int) (content any, stableID int64, ok bool)
}

// Reloader is implemented by sources that can re-read their backing store.
type Reloader interface {
	Reload() error
}

// noSource is used until a real source is attached.
type noSource struct{}

func (noSource) Count() int { return 0 }
func (noSource) Content(int) (any, int64, bool) { return nil, 0, false }
