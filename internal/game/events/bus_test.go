package events

import (
	"testing"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", 10, core.Red, nil))

	assert.True(t, received, "Event handler should have been called")
	assert.NotNil(t, receivedEvent, "Event should have been received")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
}

func TestEventBus_HandlerIDs(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	first := bus.SubscribeFunc(TypeTurnChanged, func(Event) {})
	second := bus.SubscribeFunc(TypeTurnChanged, func(Event) {})

	assert.Equal(t, "turn.changed_func_1", first)
	assert.Equal(t, "turn.changed_func_2", second)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeTurnChanged))
	assert.Equal(t, 0, bus.GetFuncHandlerCount(TypeGameEnded))
}

// recordingSubscriber is a test implementation of Subscriber
type recordingSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (rs *recordingSubscriber) ID() string {
	return rs.id
}

func (rs *recordingSubscriber) HandleEvent(e Event) {
	rs.receivedEvents = append(rs.receivedEvents, e)
}

func (rs *recordingSubscriber) InterestedIn(eventType string) bool {
	if rs.interestedTypes == nil {
		return true
	}
	return rs.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	subscriber := &recordingSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted: true,
			TypeGameEnded:   true,
		},
	}
	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewGameStartedEvent("test-game", 10, core.Red, nil))
	bus.Publish(NewTurnChangedEvent("test-game", core.Blue, 1))
	bus.Publish(NewGameEndedEvent("test-game", core.Red, "flag_captured", 0, 100))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameStartedEvent("test-game", 10, core.Red, nil))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}
