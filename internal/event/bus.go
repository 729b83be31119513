// Package event provides the typed event bus shared by the supervisor,
// the config watcher and the user interfaces.
package event

import (
	kevent "github.com/kelindar/event"
	"github.com/tessro/ringer/internal/logging"
)

// Event is the constraint required by the dispatcher.
type Event interface {
	Type() uint32
}

// Bus wraps a kelindar/event dispatcher.
// Handlers run on the dispatcher's goroutines, never on the publisher's.
// A nil *Bus drops every event.
type Bus struct {
	dispatcher *kevent.Dispatcher
}

// New creates an event bus.
func New() *Bus {
	return &Bus{dispatcher: kevent.NewDispatcher()}
}

// Publish sends ev to every subscriber of its type.
func Publish[E Event](b *Bus, ev E) {
	if b == nil {
		return
	}
	kevent.Publish(b.dispatcher, ev)
}

// Subscribe registers handler for events of type E.
// Returns an unsubscribe function.
func Subscribe[E Event](b *Bus, handler func(E)) func() {
	if b == nil {
		return func() {}
	}
	var zero E
	name := "event-handler-" + typeName(zero.Type())
	cancel := kevent.Subscribe(b.dispatcher, func(ev E) {
		defer logging.LogPanic(name, nil)
		handler(ev)
	})
	return func() { cancel() }
}

func typeName(t uint32) string {
	switch t {
	case TypeProcessStarted:
		return "process-started"
	case TypeProcessTerminated:
		return "process-terminated"
	case TypeProcessExited:
		return "process-exited"
	case TypeConfigReloaded:
		return "config-reloaded"
	default:
		return "unknown"
	}
}
