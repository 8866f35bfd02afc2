// Package window computes which logical indices of a (possibly circular)
// sequence are resident in a fixed-size window around a target position.
//
// Everything here is pure arithmetic over small value types; callers own any
// state carried between computations (see internal/slotpool).
package window

// Config describes the window shape. It is immutable for the lifetime of a
// pool configuration.
type Config struct {
	// Number of concurrently resident slots (>= 1).
	Size int `json:"size"`
	// 0-based position of the focused slot inside the window.
	ActiveOffset int `json:"active_offset"`
	// Whether the logical sequence wraps around.
	Loop bool `json:"loop"`
}

// Validate rejects shapes that cannot produce a window.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return ErrInvalidConfig("window size must be >= 1")
	}
	if c.ActiveOffset < 0 || c.ActiveOffset >= c.Size {
		return ErrInvalidConfig("active offset must be in [0, size)")
	}
	return nil
}

// Sequence is the externally supplied sequence state.
type Sequence struct {
	Count int
}

// Bounds is a window in both unbounded and bounded logical-index space.
// Start/End may be negative or exceed the span; the bounded pair is clamped
// into [0, count-1] when not looping and equals the unbounded pair otherwise.
type Bounds struct {
	Start        int `json:"start"`
	End          int `json:"end"`
	BoundedStart int `json:"bounded_start"`
	BoundedEnd   int `json:"bounded_end"`
}

// EmptyBounds is the "no prior window" sentinel.
var EmptyBounds = Bounds{Start: 0, End: -1, BoundedStart: 0, BoundedEnd: -1}

// IsEmpty reports whether the bounded range holds no index.
func (b Bounds) IsEmpty() bool { return b.BoundedEnd < b.BoundedStart }

// Len is the number of indices in the bounded range.
func (b Bounds) Len() int {
	if b.IsEmpty() {
		return 0
	}
	return b.BoundedEnd - b.BoundedStart + 1
}

// Equal compares all four fields.
func (b Bounds) Equal(o Bounds) bool { return b == o }

// Relative maps an unbounded index to its 0-based offset inside the window.
func (b Bounds) Relative(i int) int { return i - b.Start }

// Contains reports whether logical (already reduced modulo span) lies inside
// the bounded range. When the reduced start is past the reduced end the range
// wraps and is the union [start, span-1] ∪ [0, end].
func (b Bounds) Contains(logical, span int) bool {
	if b.IsEmpty() || span <= 0 || logical < 0 || logical >= span {
		return false
	}
	if b.Len() >= span {
		return true
	}
	lo := Modulo(b.BoundedStart, span)
	hi := Modulo(b.BoundedEnd, span)
	if lo <= hi {
		return logical >= lo && logical <= hi
	}
	return logical >= lo || logical <= hi
}

// Shift is the result of one window computation.
type Shift struct {
	Bounds Bounds
	// Normalized target position.
	Target int
	// Number of slots the window wants resident.
	NumActive int
	// Effective span used for logical-index arithmetic.
	Span int
	// Whether Bounds differ from the previous bounds.
	Changed bool
}

// Modulo is a non-negative remainder; it returns 0 for a non-positive size.
func Modulo(pos, size int) int {
	if size <= 0 {
		return 0
	}
	return (size + pos%size) % size
}

// NumActive is the number of resident slots the window wants for count items.
func NumActive(cfg Config, count int) int {
	if count <= 0 {
		return cfg.Size
	}
	if cfg.Loop {
		return min(count+1, cfg.Size)
	}
	return min(count, cfg.Size)
}

// Span is the effective modulus for logical indices. A looping sequence no
// longer than the window is inflated to count*NumActive so that one window
// never maps two relative positions onto the same logical index.
func Span(cfg Config, count int) int {
	if count <= 0 {
		return 0
	}
	if n := NumActive(cfg, count); cfg.Loop && count <= n {
		return count * n
	}
	return count
}

// Normalize wraps target into [0, span-1] when looping, or clamps it into
// [0, count-1] otherwise.
func Normalize(target int, cfg Config, count int) (int, error) {
	if count <= 0 {
		return 0, ErrInvalidTarget(target)
	}
	if cfg.Loop {
		return Modulo(target, Span(cfg, count)), nil
	}
	return max(0, min(target, count-1)), nil
}

// Compute derives the window for target. prev is the currently applied window
// (EmptyBounds when there is none) and only drives Shift.Changed.
func Compute(target int, prev Bounds, cfg Config, seq Sequence) (Shift, error) {
	if err := cfg.Validate(); err != nil {
		return Shift{}, err
	}
	t, err := Normalize(target, cfg, seq.Count)
	if err != nil {
		return Shift{Bounds: EmptyBounds, NumActive: cfg.Size, Changed: !prev.Equal(EmptyBounds)}, err
	}
	n := NumActive(cfg, seq.Count)
	b := Bounds{Start: t - cfg.ActiveOffset}
	b.End = b.Start + n - 1
	if cfg.Loop {
		b.BoundedStart, b.BoundedEnd = b.Start, b.End
	} else {
		b.BoundedStart = max(0, b.Start)
		b.BoundedEnd = min(seq.Count-1, b.End)
	}
	return Shift{
		Bounds:    b,
		Target:    t,
		NumActive: n,
		Span:      Span(cfg, seq.Count),
		Changed:   !b.Equal(prev),
	}, nil
}

// Empty is the shift an empty sequence collapses to.
func Empty(prev Bounds, cfg Config) Shift {
	return Shift{Bounds: EmptyBounds, NumActive: cfg.Size, Changed: !prev.Equal(EmptyBounds)}
}
