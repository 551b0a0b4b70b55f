package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishRunsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string

	bus.Subscribe(EventThemeChanged, func(data interface{}) { got = append(got, "first:"+data.(string)) })
	bus.Subscribe(EventThemeChanged, func(data interface{}) { got = append(got, "second:"+data.(string)) })
	bus.Subscribe(EventLogsChanged, func(interface{}) { got = append(got, "logs") })

	bus.Publish(EventThemeChanged, "dark")

	assert.Equal(t, []string{"first:dark", "second:dark"}, got)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.Subscribe(EventStoreReady, func(interface{}) { calls++ })

	bus.Publish(EventStoreReady, nil)
	bus.Unsubscribe(EventStoreReady)
	bus.Publish(EventStoreReady, nil)

	assert.Equal(t, 1, calls)
}

func TestHandlerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewEventBus()
	calls := 0

	bus.Subscribe(EventPreferencesChanged, func(interface{}) {
		bus.Subscribe(EventPreferencesChanged, func(interface{}) { calls++ })
	})

	bus.Publish(EventPreferencesChanged, nil)
	assert.Equal(t, 0, calls)

	bus.Publish(EventPreferencesChanged, nil)
	assert.Equal(t, 1, calls)
}
