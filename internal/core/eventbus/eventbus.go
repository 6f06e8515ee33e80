// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication. Publishing never blocks: events are
// buffered and dropped (with a hook) when the buffer is full, so a slow or
// absent consumer can never stall the tick loop.
package eventbus

import "sync"

// Event identifies an event type on the bus.
type Event string

// All event types published by the application.
const (
	EventSessionStarted  Event = "session.started"
	EventSessionEnded    Event = "session.ended"
	EventSettingsUpdated Event = "settings.updated"
	EventTaskCreated     Event = "task.created"
	EventTaskRemoved     Event = "task.removed"
	EventHistoryPruned   Event = "history.pruned"
)

// DefaultBuffer is the channel capacity used by New.
const DefaultBuffer = 64

type envelope struct {
	event   Event
	payload any
}

// EventBus dispatches events to subscribers from a single background
// goroutine, so subscriber callbacks never interleave with each other.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu     sync.RWMutex
	subs   map[Event][]func(any)
	closed bool
	done   chan struct{}
}

// New creates a bus with the given buffer capacity (DefaultBuffer if <= 0).
// Call Start to begin dispatching and Close to stop.
func New(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
		done: make(chan struct{}),
	}
}

// Start launches the dispatch goroutine.
func (bus *EventBus) Start() {
	go bus.loop()
}

// Close stops accepting events and, once the buffer drains, stops the
// dispatch goroutine. Events published after Close are dropped.
func (bus *EventBus) Close() {
	bus.mu.Lock()
	if bus.closed {
		bus.mu.Unlock()
		return
	}
	bus.closed = true
	close(bus.ch)
	bus.mu.Unlock()
	<-bus.done
}

func (bus *EventBus) loop() {
	defer close(bus.done)
	for env := range bus.ch {
		bus.dispatch(env)
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		bus.call(env, fn)
	}
}

// call runs one subscriber, converting a panic into an OnPanic hook so a
// bad subscriber cannot kill the dispatch loop.
func (bus *EventBus) call(env envelope, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.hooks.run(hookPanic, env.event, env.payload, r)
		}
	}()
	fn(env.payload)
}

// send enqueues an event and fires hooks. Used by the typed Publish methods.
// The read lock is held across the channel send: Close closes the channel
// under the write lock, so a publisher can never hit a closed channel.
func (bus *EventBus) send(event Event, payload any) {
	bus.mu.RLock()
	if bus.closed {
		bus.mu.RUnlock()
		bus.hooks.run(hookDrop, event, payload, nil)
		return
	}

	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		bus.mu.RUnlock()
		bus.hooks.run(hookPublish, event, payload, nil)
	default:
		bus.mu.RUnlock()
		bus.hooks.run(hookDrop, event, payload, nil)
	}
}

// subscribe registers a raw subscriber. Used by the typed Subscribe methods.
func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.hooks.run(hookSubscribe, event, nil, nil)
}
