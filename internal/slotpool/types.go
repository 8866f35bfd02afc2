package slotpool

import "flipd/internal/window"

// Slot is one resident element of the window.
type Slot struct {
	// Logical index (position mod effective span); the stable key.
	Logical int
	// 0-based offset inside the current window.
	Relative int
	// Index into the external sequence (Logical mod count).
	SourcePosition int
	// Identity supplied by the source when the slot entered.
	StableID int64
	// Content returned by the source; nil for an empty placeholder.
	Content any
	// Empty marks a placeholder created for absent content.
	Empty bool
}

// IntentKind names a slot transition.
type IntentKind string

const (
	IntentEnter IntentKind = "enter"
	IntentExit  IntentKind = "exit"
	IntentMove  IntentKind = "move"
)

// Intent describes one slot's fate during a shift. From is -1 for an enter
// and To is -1 for an exit.
type Intent struct {
	Kind           IntentKind
	From           int
	To             int
	Logical        int
	SourcePosition int
	StableID       int64
	Animate        bool
}

func enterIntent(s Slot, animate bool) Intent {
	return Intent{Kind: IntentEnter, From: -1, To: s.Relative, Logical: s.Logical,
		SourcePosition: s.SourcePosition, StableID: s.StableID, Animate: animate}
}

func exitIntent(s Slot, animate bool) Intent {
	return Intent{Kind: IntentExit, From: s.Relative, To: -1, Logical: s.Logical,
		SourcePosition: s.SourcePosition, StableID: s.StableID, Animate: animate}
}

func moveIntent(s Slot, from int, animate bool) Intent {
	return Intent{Kind: IntentMove, From: from, To: s.Relative, Logical: s.Logical,
		SourcePosition: s.SourcePosition, StableID: s.StableID, Animate: animate}
}

// Plan is the ordered result of one shift: exits first, then enters and
// moves in window order.
type Plan struct {
	Intents  []Intent
	Bounds   window.Bounds
	Target   int
	Changed  bool
	Resident int
}

// Count returns the number of intents of the given kind.
func (p Plan) Count(kind IntentKind) int {
	n := 0
	for _, in := range p.Intents {
		if in.Kind == kind {
			n++
		}
	}
	return n
}
