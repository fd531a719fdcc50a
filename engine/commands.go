package engine

// Command is one discrete player action consumed by the game loop
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandRotateCCW
	CommandSoftDrop
	CommandHardDrop
	CommandPause
	CommandToggleShadow
	CommandQuit
)

var commandNames = [...]string{
	CommandNone:         "none",
	CommandMoveLeft:     "move-left",
	CommandMoveRight:    "move-right",
	CommandRotate:       "rotate",
	CommandRotateCCW:    "rotate-ccw",
	CommandSoftDrop:     "soft-drop",
	CommandHardDrop:     "hard-drop",
	CommandPause:        "pause",
	CommandToggleShadow: "toggle-shadow",
	CommandQuit:         "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}
