package lander

import (
	"github.com/akmonengine/lander/actor"
)

const (
	CONTACT_ENTER EventType = iota
	CONTACT_STAY
	CONTACT_EXIT
	ON_LANDED
	ON_WRECKED
)

type EventType uint8

// ObstacleKind tells which obstacle set a contact belongs to
type ObstacleKind uint8

const (
	PLATFORM ObstacleKind = iota
	HAZARD
)

func (k ObstacleKind) String() string {
	if k == HAZARD {
		return "hazard"
	}
	return "platform"
}

type contactKey struct {
	kind     ObstacleKind
	index    int
	obstacle *actor.Body
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Contact events between the player and one obstacle
type ContactEnterEvent struct {
	Kind     ObstacleKind
	Index    int
	Obstacle *actor.Body
}

func (e ContactEnterEvent) Type() EventType { return CONTACT_ENTER }

type ContactStayEvent struct {
	Kind     ObstacleKind
	Index    int
	Obstacle *actor.Body
}

func (e ContactStayEvent) Type() EventType { return CONTACT_STAY }

type ContactExitEvent struct {
	Kind     ObstacleKind
	Index    int
	Obstacle *actor.Body
}

func (e ContactExitEvent) Type() EventType { return CONTACT_EXIT }

// Outcome events, each is sent once per run
type LandedEvent struct {
	Outcome actor.Outcome
}

func (e LandedEvent) Type() EventType { return ON_LANDED }

type WreckedEvent struct {
	Outcome actor.Outcome
}

func (e WreckedEvent) Type() EventType { return ON_WRECKED }

// EventListener - callback for events
type EventListener func(event Event)

// Events buffers what happened during the steps of a frame and dispatches it on flush
type Events struct {
	listeners map[EventType][]EventListener

	buffer []Event

	previousContacts map[contactKey]bool
	currentContacts  map[contactKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:        make(map[EventType][]EventListener),
		buffer:           make([]Event, 0, 16),
		previousContacts: make(map[contactKey]bool),
		currentContacts:  make(map[contactKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContacts marks the touched obstacles of one step as active for this frame
func (e *Events) recordContacts(kind ObstacleKind, indices []int, set actor.ObstacleSet) {
	for _, i := range indices {
		e.currentContacts[contactKey{kind: kind, index: i, obstacle: set.Obstacle(i)}] = true
	}
}

func (e *Events) emitOutcome(outcome actor.Outcome) {
	switch {
	case outcome.Lost:
		e.buffer = append(e.buffer, WreckedEvent{Outcome: outcome})
	case outcome.Won:
		e.buffer = append(e.buffer, LandedEvent{Outcome: outcome})
	}
}

// processContactEvents compares the contacts of this frame with the previous one to detect Enter/Stay/Exit
func (e *Events) processContactEvents() {
	for key := range e.currentContacts {
		if e.previousContacts[key] {
			e.buffer = append(e.buffer, ContactStayEvent{Kind: key.kind, Index: key.index, Obstacle: key.obstacle})
		} else {
			e.buffer = append(e.buffer, ContactEnterEvent{Kind: key.kind, Index: key.index, Obstacle: key.obstacle})
		}
	}

	for key := range e.previousContacts {
		if !e.currentContacts[key] {
			e.buffer = append(e.buffer, ContactExitEvent{Kind: key.kind, Index: key.index, Obstacle: key.obstacle})
		}
	}

	// Swap for next frame and clear current
	e.previousContacts, e.currentContacts = e.currentContacts, e.previousContacts
	clear(e.currentContacts)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processContactEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
