package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

// Renderer receives one snapshot per loop iteration
type Renderer interface {
	Render(snap Snapshot)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(snap Snapshot)

// Render implements Renderer
func (f RendererFunc) Render(snap Snapshot) { f(snap) }

// Scheduler drives a session: command application, gravity ticks and frame pacing
// Gravity is measured on the pausable game clock, pacing on real time
// Blocks with a timer between iterations instead of busy-waiting
type Scheduler struct {
	session *Session
	clock   *PausableClock

	// Tick configuration
	frameBudget  time.Duration
	lastFallTime time.Time // Game time of the last gravity tick or spawn

	// Iteration counter for snapshots
	frame uint64

	handlers      []EventHandler
	frameObserver func(elapsed time.Duration)
}

// SchedulerOption customizes a scheduler
type SchedulerOption func(*Scheduler)

// WithFrameBudget overrides the per-iteration time budget
func WithFrameBudget(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.frameBudget = d }
}

// WithFrameObserver registers a callback receiving each iteration's processing time
func WithFrameObserver(fn func(elapsed time.Duration)) SchedulerOption {
	return func(s *Scheduler) { s.frameObserver = fn }
}

// NewScheduler creates a scheduler for session; the gravity timer starts now
func NewScheduler(session *Session, clock *PausableClock, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		session:      session,
		clock:        clock,
		frameBudget:  constants.FrameUpdateInterval,
		lastFallTime: clock.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterEventHandler adds an event handler, must be called before Run
func (s *Scheduler) RegisterEventHandler(h EventHandler) {
	s.handlers = append(s.handlers, h)
}

// Session returns the driven session
func (s *Scheduler) Session() *Session { return s.session }

// Frame returns the number of completed iterations
func (s *Scheduler) Frame() uint64 { return s.frame }

// Step runs one iteration without rendering or pacing: apply cmd, then run a
// gravity tick if the fall interval has elapsed
func (s *Scheduler) Step(cmd Command) {
	if !s.session.Running() {
		return
	}

	// Game time is sampled once, at iteration start
	now := s.clock.Now()

	wasPaused := s.session.Paused()
	lockedBefore := s.session.locked

	applied := cmd != CommandNone && s.session.Apply(cmd)

	if paused := s.session.Paused(); paused != wasPaused {
		if paused {
			s.clock.Pause()
		} else {
			s.clock.Resume()
		}
	}

	// A forced fall or a fresh piece restarts the gravity interval
	if (applied && cmd == CommandSoftDrop) || s.session.locked != lockedBefore {
		s.lastFallTime = now
	}

	if s.session.Running() && !s.session.Paused() && s.session.State() == StateActive {
		if now.Sub(s.lastFallTime) >= s.session.FallInterval() {
			s.session.SoftFall()
			s.lastFallTime = now
		}
	}

	s.frame++
}

// dispatch hands the iteration's events to every handler
func (s *Scheduler) dispatch() {
	for _, ev := range s.session.DrainEvents() {
		for _, h := range s.handlers {
			h.HandleEvent(ev)
		}
	}
}

// Run loops until the session stops running: game over, a Quit command, or
// ctx cancellation, which is treated as Quit
// At most one command is taken from commands per iteration
// Returns ctx.Err() when the loop ended through cancellation
func (s *Scheduler) Run(ctx context.Context, commands <-chan Command, renderer Renderer) (Result, error) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	var cancelled bool

	for s.session.Running() {
		frameStart := s.clock.RealTime()

		cmd := CommandNone
		select {
		case c, ok := <-commands:
			if ok {
				cmd = c
			} else {
				commands = nil
			}
		default:
		}

		if ctx.Err() != nil {
			cmd = CommandQuit
			cancelled = true
		}

		s.Step(cmd)

		snap := s.session.Snapshot()
		snap.Frame = s.frame
		renderer.Render(snap)

		s.dispatch()

		elapsed := s.clock.RealTime().Sub(frameStart)
		if s.frameObserver != nil {
			s.frameObserver(elapsed)
		}

		if !s.session.Running() {
			break
		}

		// No frame is skipped when over budget; the next iteration starts immediately
		if remaining := s.frameBudget - elapsed; remaining > 0 {
			timer.Reset(remaining)
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
		}
	}

	if cancelled {
		return s.session.Result(), ctx.Err()
	}
	return s.session.Result(), nil
}
