package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	allowed := map[[2]State]bool{
		{StateSpawning, StateActive}:  true,
		{StateActive, StateLocking}:   true,
		{StateActive, StateGameOver}:  true,
		{StateLocking, StateSpawning}: true,
		{StateLocking, StateGameOver}: true,
	}

	states := []State{StateSpawning, StateActive, StateLocking, StateGameOver}
	for _, from := range states {
		for _, to := range states {
			assert.Equal(t, allowed[[2]State{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "spawning", StateSpawning.String())
	assert.Equal(t, "game-over", StateGameOver.String())
	assert.Equal(t, "state(9)", State(9).String())
}
