package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/geometry"
)

// pcgStream decorrelates the second PCG word from the user-supplied seed
const pcgStream = 0x9e3779b97f4a7c15

// Session is the complete state of one game, owned by a single goroutine
type Session struct {
	// ===== PLAYFIELD =====
	board   *board.Board
	current Piece
	next    Piece
	state   State

	// ===== SCORE =====
	score  int
	level  int
	lines  int // Total lines cleared
	locked int // Total pieces locked

	// ===== FLAGS =====
	running bool // False after Quit or game over
	paused  bool
	shadow  bool // Shadow projection included in snapshots

	// ===== SPAWNING =====
	seed    uint64
	rng     *rand.Rand
	queued  []int                   // Forced archetype sequence, consumed before rng
	spawns  *intmap.Map[int, int]   // Archetype index -> times spawned as current
	onSpawn func(current, next int) // Optional spawn observer

	// Events collected since the last DrainEvents
	events []Event
}

// SessionOption customizes a new session
type SessionOption func(*Session)

// WithShadow sets the initial shadow projection state
func WithShadow(enabled bool) SessionOption {
	return func(s *Session) { s.shadow = enabled }
}

// WithPieceSequence forces the first archetypes drawn, in order, before the
// random generator takes over
func WithPieceSequence(kinds ...int) SessionOption {
	return func(s *Session) {
		s.queued = append(s.queued, kinds...)
	}
}

// WithSpawnObserver registers a callback invoked after every spawn
func WithSpawnObserver(fn func(current, next int)) SessionOption {
	return func(s *Session) { s.onSpawn = fn }
}

// NewSession validates the board dimensions, seeds the generator and spawns
// the first current and next pieces
func NewSession(cols, rows int, seed uint64, opts ...SessionOption) (*Session, error) {
	b, err := board.New(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		board:   b,
		state:   StateSpawning,
		level:   1,
		running: true,
		shadow:  true,
		seed:    seed,
		rng:     rand.New(rand.NewPCG(seed, seed^pcgStream)),
		spawns:  intmap.New[int, int](geometry.CatalogSize()),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, kind := range s.queued {
		if _, ok := geometry.Lookup(kind); !ok {
			return nil, fmt.Errorf("new session: unknown archetype %d", kind)
		}
	}

	s.next = s.drawPiece()
	s.spawn()
	return s, nil
}

// SpawnPoint returns the fixed spawn position for the board
func (s *Session) SpawnPoint() geometry.Point {
	return geometry.Point{Col: s.board.Cols() / 2, Row: s.board.Rows() - 2}
}

// drawPiece creates an unrotated piece at the spawn point
func (s *Session) drawPiece() Piece {
	var kind int
	if len(s.queued) > 0 {
		kind = s.queued[0]
		s.queued = s.queued[1:]
	} else {
		kind = s.rng.IntN(geometry.CatalogSize())
	}
	return NewPiece(kind, s.SpawnPoint())
}

// spawn promotes next to current and draws a fresh next
func (s *Session) spawn() {
	s.current = s.next
	s.next = s.drawPiece()

	n, _ := s.spawns.Get(s.current.Kind)
	s.spawns.Put(s.current.Kind, n+1)

	s.transition(StateActive)
	if s.onSpawn != nil {
		s.onSpawn(s.current.Kind, s.next.Kind)
	}
}

// transition moves the lifecycle state, panicking on an edge outside the graph
func (s *Session) transition(to State) {
	if !CanTransition(s.state, to) {
		panic(fmt.Sprintf("engine: illegal transition %s -> %s", s.state, to))
	}
	s.state = to
}

func (s *Session) emit(t EventType, lines int) {
	s.events = append(s.events, Event{Type: t, Lines: lines, Score: s.score, Level: s.level})
}

// Apply executes one command; returns false when it had no effect
func (s *Session) Apply(cmd Command) bool {
	if !s.running {
		return false
	}

	switch cmd {
	case CommandQuit:
		s.running = false
		return true
	case CommandPause:
		s.paused = !s.paused
		if s.paused {
			s.emit(EventPause, 0)
		} else {
			s.emit(EventResume, 0)
		}
		return true
	case CommandToggleShadow:
		s.shadow = !s.shadow
		return true
	}

	if s.paused || s.state != StateActive {
		return false
	}

	switch cmd {
	case CommandMoveLeft:
		return s.commit(Move(s.current, s.board, -1))
	case CommandMoveRight:
		return s.commit(Move(s.current, s.board, 1))
	case CommandRotate:
		return s.rotate(1)
	case CommandRotateCCW:
		return s.rotate(-1)
	case CommandSoftDrop:
		s.SoftFall()
		return true
	case CommandHardDrop:
		s.HardDrop()
		return true
	}
	return false
}

func (s *Session) commit(p Piece, ok bool) bool {
	if ok {
		s.current = p
	}
	return ok
}

func (s *Session) rotate(turns int) bool {
	if !s.commit(Rotate(s.current, s.board, turns)) {
		return false
	}
	s.emit(EventRotate, 0)
	return true
}

// SoftFall drops the current piece one row
// Returns true while still falling; on landing the piece is locked and false returned
func (s *Session) SoftFall() bool {
	if s.state != StateActive {
		return false
	}
	if s.commit(Fall(s.current, s.board)) {
		return true
	}
	s.land()
	return false
}

// HardDrop falls until the piece locks
func (s *Session) HardDrop() {
	for s.SoftFall() {
	}
}

// land locks the current piece, clears and scores lines, then spawns the
// queued piece or ends the game when it does not fit
func (s *Session) land() {
	s.transition(StateLocking)

	// Cells locked above the top row are lost; the session only ends when
	// the next piece cannot be placed at the spawn point
	Lock(s.current, s.board)
	s.locked++
	s.emit(EventLock, 0)

	if cleared := s.board.ClearLines(); cleared > 0 {
		s.lines += cleared
		s.score += ScoreFor(cleared)
		level := LevelFor(s.score)
		levelUp := level > s.level
		s.level = level
		s.emit(EventLinesCleared, cleared)
		if levelUp {
			s.emit(EventLevelUp, 0)
		}
	}

	if !CanPlace(s.next, s.board) {
		s.transition(StateGameOver)
		s.running = false
		s.emit(EventGameOver, 0)
		return
	}

	s.transition(StateSpawning)
	s.spawn()
}

// DrainEvents returns and clears the events collected so far
func (s *Session) DrainEvents() []Event {
	evs := s.events
	s.events = nil
	return evs
}

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Running reports whether the session still accepts iterations
func (s *Session) Running() bool { return s.running }

// Paused reports whether gravity and movement are suspended
func (s *Session) Paused() bool { return s.paused }

// Score returns the accumulated score
func (s *Session) Score() int { return s.score }

// Level returns the current level
func (s *Session) Level() int { return s.level }

// Lines returns the total lines cleared
func (s *Session) Lines() int { return s.lines }

// Seed returns the generator seed the session was created with
func (s *Session) Seed() uint64 { return s.seed }

// Current returns the controlled piece
func (s *Session) Current() Piece { return s.current }

// Next returns the queued piece
func (s *Session) Next() Piece { return s.next }

// Board returns a copy of the settled grid
func (s *Session) Board() *board.Board { return s.board.Clone() }

// FallInterval returns the gravity interval for the current level
func (s *Session) FallInterval() time.Duration { return FallInterval(s.level) }
