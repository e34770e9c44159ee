package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate and published once the
// transaction that produced it has committed.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to satisfy EventSource.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
