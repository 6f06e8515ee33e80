package eventbus

import "sync"

type hookKind int

const (
	hookPublish hookKind = iota
	hookDrop
	hookSubscribe
	hookPanic
)

// Hook observes bus activity. For publish and drop hooks, recovered is nil;
// for panic hooks it carries the recovered value; for subscribe hooks both
// payload and recovered are nil.
type Hook func(event Event, payload any, recovered any)

// hooks holds the lifecycle hook state for the EventBus, separate from the
// subscriber registry so hook registration never contends with dispatch.
type hooks struct {
	mu  sync.RWMutex
	fns map[hookKind][]Hook
}

// OnPublish registers a hook that fires after an event is enqueued.
func (bus *EventBus) OnPublish(fn Hook) { bus.hooks.add(hookPublish, fn) }

// OnDrop registers a hook that fires when an event is dropped because the
// buffer is full or the bus is closed.
func (bus *EventBus) OnDrop(fn Hook) { bus.hooks.add(hookDrop, fn) }

// OnSubscribe registers a hook that fires after a subscriber is registered.
func (bus *EventBus) OnSubscribe(fn Hook) { bus.hooks.add(hookSubscribe, fn) }

// OnPanic registers a hook that fires when a subscriber panics.
func (bus *EventBus) OnPanic(fn Hook) { bus.hooks.add(hookPanic, fn) }

func (h *hooks) add(kind hookKind, fn Hook) {
	h.mu.Lock()
	if h.fns == nil {
		h.fns = make(map[hookKind][]Hook)
	}
	h.fns[kind] = append(h.fns[kind], fn)
	h.mu.Unlock()
}

func (h *hooks) run(kind hookKind, event Event, payload any, recovered any) {
	h.mu.RLock()
	fns := make([]Hook, len(h.fns[kind]))
	copy(fns, h.fns[kind])
	h.mu.RUnlock()

	for _, fn := range fns {
		func() {
			defer func() { _ = recover() }()
			fn(event, payload, recovered)
		}()
	}
}
