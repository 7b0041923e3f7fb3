package banbridge

import (
	"fmt"
	"sort"
	"sync"

	"github.com/n0h4rt/banbridge/utils"
	"github.com/rs/zerolog/log"
)

// EventBus is the subscription side of the punishment service's event system.
type EventBus interface {
	// RegisterListener subscribes the callback to the event type.
	// There is no way to unsubscribe through this interface, subscriptions last for the process lifetime.
	RegisterListener(eventType EventType, priority Priority, callback Callback) Handler
}

// Dispatcher is an in-process [EventBus].
//
// Handlers are invoked in ascending priority order, handlers of equal priority in registration order.
// A handler that returns an error or panics does not stop the dispatch; the failure is recorded
// on the event and passed to the error handlers.
type Dispatcher struct {
	eventHandlers []Handler    // eventHandlers contains the registered event handlers.
	errorHandlers []Handler    // errorHandlers contains the registered error handlers.
	mu            sync.RWMutex // mu guards both handler lists.
}

// AddHandler adds a new handler to the dispatcher.
//
// Args:
//   - handler: The handler to add to the dispatcher.
//
// Returns:
//   - *Dispatcher: The dispatcher instance for method chaining.
func (d *Dispatcher) AddHandler(handler Handler) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.eventHandlers = append(d.eventHandlers, handler)
	sort.SliceStable(d.eventHandlers, func(i, j int) bool {
		return d.eventHandlers[i].Priority() < d.eventHandlers[j].Priority()
	})

	return d
}

// RemoveHandler removes a handler from the dispatcher.
//
// Args:
//   - handler: The handler to remove from the dispatcher.
//
// Returns:
//   - *Dispatcher: The dispatcher instance for method chaining.
func (d *Dispatcher) RemoveHandler(handler Handler) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.eventHandlers = utils.Remove(d.eventHandlers, handler)

	return d
}

// AddErrorHandler adds a new error handler to the dispatcher.
//
// Args:
//   - handler: The error handler to add to the dispatcher.
//
// Returns:
//   - *Dispatcher: The dispatcher instance for method chaining.
func (d *Dispatcher) AddErrorHandler(handler Handler) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.errorHandlers = append(d.errorHandlers, handler)

	return d
}

// RemoveErrorHandler removes an error handler from the dispatcher.
//
// Args:
//   - handler: The error handler to remove from the dispatcher.
//
// Returns:
//   - *Dispatcher: The dispatcher instance for method chaining.
func (d *Dispatcher) RemoveErrorHandler(handler Handler) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.errorHandlers = utils.Remove(d.errorHandlers, handler)

	return d
}

// RegisterListener subscribes the callback to the event type at the given priority.
func (d *Dispatcher) RegisterListener(eventType EventType, priority Priority, callback Callback) Handler {
	handler := NewTypeHandler(callback, nil, eventType, priority)
	d.AddHandler(handler)

	return handler
}

// Dispatch dispatches an event to every matching handler.
//
// Args:
//   - event: The event to dispatch.
func (d *Dispatcher) Dispatch(event *Event) {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.eventHandlers...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.Check(event) {
			continue
		}

		if err := invoke(handler, event); err != nil {
			event.Error = err

			d.dispatchError(event)
		}
	}
}

// dispatchError dispatches an error event to the error handlers.
//
// Args:
//   - event: The event to dispatch.
func (d *Dispatcher) dispatchError(event *Event) {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.errorHandlers...)
	d.mu.RUnlock()

	if len(handlers) == 0 {
		log.Error().
			Str("Event", event.Type.String()).
			Interface("Error", event.Error).
			Msg("Unhandled error during event dispatch.")
		return
	}

	for _, handler := range handlers {
		if !handler.Check(event) {
			continue
		}

		if err := invoke(handler, event); err != nil {
			log.Error().
				Str("Event", event.Type.String()).
				Interface("Origin", event.Error).
				AnErr("Current", err).
				Msg("Another error occured during handling an error.")
		}
	}
}

// invoke runs the handler, converting a panic into an error.
func invoke(handler Handler, event *Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()

	return handler.Invoke(event)
}

// NewDispatcher creates a new instance of the [Dispatcher].
//
// Returns:
//   - *Dispatcher: A new instance of the [Dispatcher].
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		eventHandlers: []Handler{},
		errorHandlers: []Handler{},
	}
}
