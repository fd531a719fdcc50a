// Package input translates terminal key events into engine commands
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]engine.Command

	// Printable bindings, matched on KeyRune events
	Runes map[rune]engine.Command
}

// DefaultKeyTable returns the default bindings: arrows and WASD for movement,
// z for counter-clockwise rotation
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Command{
			tcell.KeyLeft:   engine.CommandMoveLeft,
			tcell.KeyRight:  engine.CommandMoveRight,
			tcell.KeyUp:     engine.CommandRotate,
			tcell.KeyDown:   engine.CommandSoftDrop,
			tcell.KeyEnter:  engine.CommandHardDrop,
			tcell.KeyEscape: engine.CommandQuit,
			tcell.KeyCtrlC:  engine.CommandQuit,
		},

		Runes: map[rune]engine.Command{
			'a': engine.CommandMoveLeft,
			'd': engine.CommandMoveRight,
			'w': engine.CommandRotate,
			' ': engine.CommandRotate,
			'z': engine.CommandRotateCCW,
			's': engine.CommandSoftDrop,
			'x': engine.CommandHardDrop,
			'p': engine.CommandPause,
			'g': engine.CommandToggleShadow,
			'q': engine.CommandQuit,
			'Q': engine.CommandQuit,
		},
	}
}

// Translate returns the command bound to ev; false for unbound keys
func (kt *KeyTable) Translate(ev *tcell.EventKey) (engine.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := kt.Runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := kt.SpecialKeys[ev.Key()]
	return cmd, ok
}
