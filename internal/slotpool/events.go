package slotpool

// Event names published by a Pool.
const (
	EventPlan       = "plan"
	EventConfigured = "configured"
	EventRefreshed  = "refreshed"
)

// Event is one pool lifecycle event. Plan is set for EventPlan only.
type Event struct {
	Name   string
	Target int
	Plan   Plan
}

// EventPublisher receives events from the pool. Publish is called after the
// pool lock is released; implementations should be lightweight and must not
// panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// MultiPublisher fans one event out to every non-nil publisher in order.
func MultiPublisher(pubs ...EventPublisher) EventPublisher {
	out := make(multiPublisher, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type multiPublisher []EventPublisher

func (m multiPublisher) Publish(e Event) {
	for _, p := range m {
		p.Publish(e)
	}
}
