package game

import (
	"time"

	"github.com/lox/mastermind/internal/colors"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart EventType = "game_start"
	EventTypeGuess     EventType = "guess"
	EventTypeGameEnd   EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a round begins
type GameStartEvent struct {
	Round       int
	CodeLength  int
	MaxAttempts int
	Palette     colors.Palette
	timestamp   time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(round, codeLength, maxAttempts int, palette colors.Palette, at time.Time) GameStartEvent {
	return GameStartEvent{
		Round:       round,
		CodeLength:  codeLength,
		MaxAttempts: maxAttempts,
		Palette:     palette,
		timestamp:   at,
	}
}

// GuessEvent is published after every validated guess
type GuessEvent struct {
	Round     int
	Turn      Turn
	Remaining int
	Outcome   Outcome
	timestamp time.Time
}

func (e GuessEvent) EventType() EventType { return EventTypeGuess }
func (e GuessEvent) Timestamp() time.Time { return e.timestamp }

// NewGuessEvent creates a new guess event
func NewGuessEvent(round int, turn Turn, remaining int, outcome Outcome) GuessEvent {
	return GuessEvent{
		Round:     round,
		Turn:      turn,
		Remaining: remaining,
		Outcome:   outcome,
		timestamp: turn.At,
	}
}

// GameEndEvent is published when a round is won or lost. The secret is
// revealed here.
type GameEndEvent struct {
	Round     int
	Outcome   Outcome
	Secret    Code
	Attempts  int
	Duration  time.Duration
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(round int, outcome Outcome, secret Code, attempts int, duration time.Duration, at time.Time) GameEndEvent {
	return GameEndEvent{
		Round:     round,
		Outcome:   outcome,
		Secret:    secret,
		Attempts:  attempts,
		Duration:  duration,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
