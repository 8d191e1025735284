package invaders

// EventKind identifies something notable that happened in the simulation.
type EventKind int

const (
	EventPlayerFired EventKind = iota
	EventAlienFired
	EventAlienKilled
	EventPlayerHit
	EventLevelUp
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlayerFired:
		return "player_fired"
	case EventAlienFired:
		return "alien_fired"
	case EventAlienKilled:
		return "alien_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the engine for the platform (sound, blinking, logs).
// Events never feed back into the simulation.
type Event struct {
	Kind EventKind
	Tick uint64

	// AlienID is set for EventAlienFired and EventAlienKilled.
	AlienID int
	// Value carries lives left (PlayerHit), the new level (LevelUp) or the
	// final score (GameOver).
	Value int
	// Reason is set for EventGameOver.
	Reason GameOverReason
}

// maxPendingEvents bounds the event queue when nobody drains it.
const maxPendingEvents = 256

func (e *Engine) emit(ev Event) {
	ev.Tick = e.tick
	if len(e.events) >= maxPendingEvents {
		n := copy(e.events, e.events[len(e.events)/2:])
		e.events = e.events[:n]
	}
	e.events = append(e.events, ev)
}

// DrainEvents returns the events emitted since the previous call and clears
// the queue.
func (e *Engine) DrainEvents() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}
