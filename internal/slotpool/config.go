package slotpool

import (
	"fmt"

	"github.com/rs/zerolog"

	"flipd/internal/window"
)

// Defaults applied when corresponding PoolConfig fields are unset.
const (
	defaultWindowSize   = 1
	defaultActiveOffset = 0
)

// PoolConfig encapsulates all tunables for Pool construction.
type PoolConfig struct {
	// Window shape; a zero Size selects the package defaults.
	Window window.Config
	// Sequence the pool windows over. Nil means an always-empty source.
	Source Source
	// Receives one event per committed shift. Nil drops events.
	Publisher EventPublisher
	// Structured logger; nil disables logging.
	Logger *zerolog.Logger
	// Animate the intents of the first populated plan too.
	AnimateFirst bool
}

// New constructs a single-slot Pool over src.
func New(src Source) *Pool {
	p, _ := NewWithConfig(PoolConfig{Source: src})
	return p
}

// NewWithConfig constructs a Pool from PoolConfig. The initial count is read
// from the source; the window stays empty until the first ShowOnly.
func NewWithConfig(cfg PoolConfig) (*Pool, error) {
	p := &Pool{
		src:          cfg.Source,
		pub:          cfg.Publisher,
		animateFirst: cfg.AnimateFirst,
		bounds:       window.EmptyBounds,
		slots:        make(map[int]Slot),
	}
	if p.src == nil {
		p.src = noSource{}
	}
	if p.pub == nil {
		p.pub = noopPublisher{}
	}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	} else {
		p.log = zerolog.Nop()
	}
	wc := cfg.Window
	if wc.Size == 0 {
		wc.Size = defaultWindowSize
		wc.ActiveOffset = defaultActiveOffset
	}
	if err := wc.Validate(); err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	p.cfg = wc
	p.count = max(0, p.src.Count())
	return p, nil
}
