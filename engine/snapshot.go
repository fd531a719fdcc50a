package engine

import (
	"time"

	"github.com/lixenwraith/blockfall/geometry"
)

// Snapshot is an immutable copy of everything a renderer may read
// Slices are freshly allocated and never aliased by the session
type Snapshot struct {
	Cols  int
	Rows  int
	Board []bool // Settled cells, indexed row*Cols+col

	Current     []geometry.Point // Empty once the game is over
	CurrentKind int
	Shadow      []geometry.Point // Empty when shadow is disabled or not active

	Next     geometry.Archetype
	NextKind int

	Score int
	Level int
	Lines int

	State         State
	Paused        bool
	ShadowEnabled bool
	FallInterval  time.Duration

	Frame uint64 // Iteration counter, set by the scheduler
}

// Occupied reports whether a settled cell is set
func (s Snapshot) Occupied(col, row int) bool {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return false
	}
	return s.Board[row*s.Cols+col]
}

// Snapshot copies the session state for rendering
func (s *Session) Snapshot() Snapshot {
	next, _ := geometry.Lookup(s.next.Kind)
	snap := Snapshot{
		Cols:          s.board.Cols(),
		Rows:          s.board.Rows(),
		Board:         s.board.Cells(),
		CurrentKind:   s.current.Kind,
		Next:          next,
		NextKind:      s.next.Kind,
		Score:         s.score,
		Level:         s.level,
		Lines:         s.lines,
		State:         s.state,
		Paused:        s.paused,
		ShadowEnabled: s.shadow,
		FallInterval:  FallInterval(s.level),
	}

	if s.state == StateActive {
		snap.Current = s.current.Cells()
		if s.shadow {
			snap.Shadow = ShadowCells(s.current, s.board)
		}
	}
	return snap
}

// Result is the end-of-session summary
type Result struct {
	Score        int
	Level        int
	Lines        int
	PiecesLocked int
	GameOver     bool           // False when the player quit
	PieceCounts  map[string]int // Archetype name -> times spawned
}

// Result summarizes the session
func (s *Session) Result() Result {
	counts := make(map[string]int, s.spawns.Len())
	for kind := 0; kind < geometry.CatalogSize(); kind++ {
		if n, ok := s.spawns.Get(kind); ok {
			counts[geometry.Name(kind)] = n
		}
	}
	return Result{
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		PiecesLocked: s.locked,
		GameOver:     s.state == StateGameOver,
		PieceCounts:  counts,
	}
}
