// Package slotpool owns the resident slots of a window over an external
// sequence and turns window shifts into transition intents. It is structured
// into small files by concern:
//
//   - pool.go: core Pool type, Configure, SetSequenceState, simple getters.
//   - config.go: PoolConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: Slot, Intent and Plan value types.
//   - source.go: the Source collaborator contract and its no-op default.
//   - errors.go: error types and helpers (IsEmptySequence, IsInconsistentSlot).
//   - evict.go: eviction pass over slots leaving the window.
//   - reconcile.go: ShowOnly and the reconciliation pass.
//   - ops.go: Advance/SetDisplayed, data-change handling and content refresh.
//   - events.go: plan publication (EventPublisher) and fan-out.
//   - status_report.go: Snapshot/Status and slot lookups.
//   - service.go: request/response adapters used by the HTTP layer.
//
// A Pool guards all state with one mutex: an eviction plus reconciliation pass
// is applied as a single unit and is never observed half done.
package slotpool
