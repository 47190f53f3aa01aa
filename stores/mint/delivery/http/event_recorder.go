package http

import (
	"sync"
	"time"

	"github.com/walletsandbox/walletapi/domain/mint"
)

const maxRecordedEvents = 32

type EventKind string

const (
	EventRevealStarted     EventKind = "revealStarted"
	EventRevealEffectEnded EventKind = "revealEffectEnded"
	EventLoadTimedOut      EventKind = "loadTimedOut"
)

// Event is one reveal lifecycle notification, timestamped for the polling ui
type Event struct {
	Kind      EventKind    `json:"kind"`
	Origin    *mint.Origin `json:"origin,omitempty"`
	EmittedAt time.Time    `json:"emittedAt"`
}

// EventRecorder buffers reveal notifications so the ui can poll for them.
// It keeps the newest maxRecordedEvents entries.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

var _ mint.EventSink = (*EventRecorder)(nil)

func (r *EventRecorder) RevealStarted(origin mint.Origin) {
	r.record(Event{Kind: EventRevealStarted, Origin: &origin, EmittedAt: time.Now()})
}

func (r *EventRecorder) RevealEffectEnded() {
	r.record(Event{Kind: EventRevealEffectEnded, EmittedAt: time.Now()})
}

func (r *EventRecorder) LoadTimedOut() {
	r.record(Event{Kind: EventLoadTimedOut, EmittedAt: time.Now()})
}

func (r *EventRecorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if len(r.events) > maxRecordedEvents {
		r.events = r.events[len(r.events)-maxRecordedEvents:]
	}
}

// Events returns the buffered notifications, newest last
func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
