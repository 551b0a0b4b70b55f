package handlers

import (
	"sync"
)

type EventType string

const (
	// EventThemeChanged carries the new themes.Mode.
	EventThemeChanged EventType = "theme.changed"
	// EventPreferencesChanged carries the updated types.Preferences.
	EventPreferencesChanged EventType = "preferences.changed"
	// EventLogsChanged is published after the stored log list was rewritten.
	EventLogsChanged EventType = "logs.changed"
	// EventStoreReady is published once the preference store is attached.
	EventStoreReady EventType = "store.ready"
)

type EventHandler func(data interface{})

// EventBus dispatches events synchronously, in subscription order, on the
// publisher's goroutine. UI callbacks already run on the Fyne event
// thread, so handlers may touch widgets directly.
type EventBus struct {
	subscribers map[EventType][]EventHandler
	mutex       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]EventHandler),
	}
}

func (bus *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.subscribers[eventType] = append(bus.subscribers[eventType], handler)
}

func (bus *EventBus) Publish(eventType EventType, data interface{}) {
	bus.mutex.RLock()
	handlers := append([]EventHandler(nil), bus.subscribers[eventType]...)
	bus.mutex.RUnlock()

	for _, handler := range handlers {
		handler(data)
	}
}

func (bus *EventBus) Unsubscribe(eventType EventType) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	delete(bus.subscribers, eventType)
}
