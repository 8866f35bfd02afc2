package slotpool

import "sync"

// MemoryPublisher stores events in-memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// Plans returns the plans of all EventPlan events in publication order.
func (p *MemoryPublisher) Plans() []Plan {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Plan
	for _, e := range p.events {
		if e.Name == EventPlan {
			out = append(out, e.Plan)
		}
	}
	return out
}
