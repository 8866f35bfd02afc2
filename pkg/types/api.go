package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// WindowShape mirrors the configured window.
type WindowShape struct {
	// example: 3
	Size int `json:"size" example:"3"`
	// example: 1
	ActiveOffset int `json:"active_offset" example:"1"`
	// example: true
	Loop bool `json:"loop" example:"true"`
}

// BoundsView exposes both the unbounded and the bounded window.
type BoundsView struct {
	// example: 4
	Start int `json:"start" example:"4"`
	// example: 6
	End int `json:"end" example:"6"`
	// example: 4
	BoundedStart int `json:"bounded_start" example:"4"`
	// example: 6
	BoundedEnd int `json:"bounded_end" example:"6"`
}

// IntentView is one transition intent. From is -1 for enter, To is -1 for exit.
type IntentView struct {
	// One of enter, exit, move.
	// example: move
	Kind string `json:"kind" example:"move"`
	// example: 2
	From int `json:"from" example:"2"`
	// example: 1
	To int `json:"to" example:"1"`
	// Logical index of the slot.
	// example: 6
	Logical int `json:"logical" example:"6"`
	// Index into the external sequence.
	// example: 6
	SourcePosition int `json:"source_position" example:"6"`
	// Identity supplied by the source.
	StableID int64 `json:"stable_id"`
	// Whether the caller should animate this transition.
	// example: true
	Animate bool `json:"animate" example:"true"`
}

// PlanResponse is returned by the window-moving endpoints.
type PlanResponse struct {
	// Normalized target position after the shift.
	// example: 6
	Target int `json:"target" example:"6"`
	// Whether the window bounds moved.
	// example: true
	Changed bool `json:"changed" example:"true"`
	// Window after the shift.
	Bounds BoundsView `json:"bounds"`
	// Ordered transition intents: exits first, then enters/moves by relative index.
	Intents []IntentView `json:"intents"`
	// Resident slot count after the shift.
	// example: 3
	Resident int `json:"resident" example:"3"`
}

// SlotStatus summarizes a resident slot for GET /window.
type SlotStatus struct {
	// example: 6
	Logical int `json:"logical" example:"6"`
	// example: 1
	Relative int `json:"relative" example:"1"`
	// example: 6
	SourcePosition int `json:"source_position" example:"6"`
	StableID       int64 `json:"stable_id"`
	// True when the source had no content for this position.
	// example: false
	Empty bool `json:"empty" example:"false"`
	// Content returned by the source (an Item for directory-backed sources).
	Content any `json:"content,omitempty"`
}

// StatusResponse is returned by GET /window.
type StatusResponse struct {
	Window WindowShape `json:"window"`
	// Number of items in the external sequence.
	// example: 10
	Count int `json:"count" example:"10"`
	// Effective span used for logical-index arithmetic.
	// example: 10
	Span int `json:"span" example:"10"`
	// Last displayed target.
	// example: 5
	Target int `json:"target" example:"5"`
	Bounds BoundsView `json:"bounds"`
	// Resident slots ordered by relative index.
	Slots []SlotStatus `json:"slots"`
	// Total number of committed shifts.
	// example: 12
	ShiftsTotal uint64 `json:"shifts_total" example:"12"`
	// Total number of evicted slots.
	// example: 9
	EvictionsTotal uint64 `json:"evictions_total" example:"9"`
}
