package slotpool

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"flipd/internal/window"
)

// Pool keeps the resident slots of one window over a Source.
type Pool struct {
	mu    sync.Mutex
	cfg   window.Config
	src   Source
	count int

	// Committed window and the sequence state it was computed against.
	bounds     window.Bounds
	span       int
	shiftCount int
	target     int
	slots      map[int]Slot // keyed by logical index

	animateFirst bool
	populated    bool

	pub EventPublisher
	log zerolog.Logger

	shiftsTotal    uint64
	evictionsTotal uint64
}

// Configure installs a new window shape. All slots are dropped and the bounds
// reset to empty; an invalid config is rejected before any state changes.
func (p *Pool) Configure(cfg window.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	p.mu.Lock()
	p.cfg = cfg
	p.slots = make(map[int]Slot)
	p.bounds = window.EmptyBounds
	p.span = 0
	p.shiftCount = 0
	p.populated = false
	pub, target := p.pub, p.target
	p.mu.Unlock()
	p.log.Debug().Int("size", cfg.Size).Int("active_offset", cfg.ActiveOffset).Bool("loop", cfg.Loop).Msg("pool configured")
	pub.Publish(Event{Name: EventConfigured, Target: target})
	return nil
}

// SetSequenceState records a new item count. It does not move the window;
// call ShowOnly (or NotifyChanged) to re-synchronize.
func (p *Pool) SetSequenceState(count int) {
	p.mu.Lock()
	p.count = max(0, count)
	p.mu.Unlock()
}

// SetEventPublisher replaces the publisher; nil restores the no-op default.
func (p *Pool) SetEventPublisher(pub EventPublisher) {
	if pub == nil {
		pub = noopPublisher{}
	}
	p.mu.Lock()
	p.pub = pub
	p.mu.Unlock()
}

// Config returns the current window shape.
func (p *Pool) Config() window.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Count returns the item count the pool currently assumes.
func (p *Pool) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Displayed returns the last displayed target.
func (p *Pool) Displayed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// Bounds returns the committed window.
func (p *Pool) Bounds() window.Bounds {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds
}
