package engine

import "fmt"

// State is the session lifecycle phase
type State int

const (
	StateSpawning State = iota
	StateActive
	StateLocking
	StateGameOver
)

var stateNames = [...]string{
	StateSpawning: "spawning",
	StateActive:   "active",
	StateLocking:  "locking",
	StateGameOver: "game-over",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// allowedTransitions is the lifecycle graph
// Spawning -> Active, Active -> Locking | GameOver, Locking -> Spawning | GameOver
var allowedTransitions = map[State][]State{
	StateSpawning: {StateActive},
	StateActive:   {StateLocking, StateGameOver},
	StateLocking:  {StateSpawning, StateGameOver},
	StateGameOver: nil,
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph
func CanTransition(from, to State) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
