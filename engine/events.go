// Package engine is the game-state core of blockfall.
//
// Ownership
//
// A Session owns the board, the current and next pieces, and the score. It is
// mutated by exactly one goroutine: the Scheduler loop. Collaborators never
// touch engine state directly:
//   - input produces Commands, delivered through a channel and consumed at most
//     one per iteration
//   - rendering receives an immutable Snapshot once per iteration
//   - audio and metrics receive Events, dispatched after the iteration's
//     mutation is complete
//
// Iteration
//
//  1. sample the pausable game clock
//  2. apply the pending command, if any
//  3. run a gravity tick when the level's fall interval has elapsed
//  4. on landing: lock, clear lines, score, spawn the queued piece or end the game
//  5. hand a Snapshot to the renderer and dispatch collected Events
//  6. sleep for the remainder of the frame budget
//
// Piece transforms are value-based: every move builds a candidate Piece, checks
// CanPlace, and either replaces the current piece wholesale or discards the
// candidate.
package engine

// EventType identifies an engine notification
type EventType int

const (
	EventLock EventType = iota
	EventLinesCleared
	EventRotate
	EventLevelUp
	EventGameOver
	EventPause
	EventResume
)

var eventNames = [...]string{
	EventLock:         "lock",
	EventLinesCleared: "lines-cleared",
	EventRotate:       "rotate",
	EventLevelUp:      "level-up",
	EventGameOver:     "game-over",
	EventPause:        "pause",
	EventResume:       "resume",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event is emitted by the session during an iteration
// Lines is set for EventLinesCleared; Score and Level reflect state after the event
type Event struct {
	Type  EventType
	Lines int
	Score int
	Level int
}

// EventHandler receives events at iteration boundaries
// Handlers run on the loop goroutine and must not block
type EventHandler interface {
	HandleEvent(ev Event)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ev Event)

// HandleEvent implements EventHandler
func (f EventHandlerFunc) HandleEvent(ev Event) { f(ev) }
