package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/blockfall/engine"
)

// EventSource is the subset of tcell.Screen the pump reads from
type EventSource interface {
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

// Pump forwards translated key presses to the game loop
// Key auto-repeat bursts beyond the limiter are dropped; Quit and Pause always pass
type Pump struct {
	source  EventSource
	table   *KeyTable
	limiter *rate.Limiter
	out     chan<- engine.Command
}

// NewPump creates a pump allowing perSecond commands with the given burst
func NewPump(source EventSource, table *KeyTable, perSecond float64, burst int, out chan<- engine.Command) *Pump {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Pump{
		source:  source,
		table:   table,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		out:     out,
	}
}

// Run reads events until the source is finalized or ctx is done
func (p *Pump) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		// Unblock PollEvent
		p.source.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := p.source.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		cmd, ok := p.table.Translate(key)
		if !ok {
			continue
		}

		if !p.deliver(ctx, cmd) {
			return nil
		}
	}
}

// deliver sends cmd; returns false once ctx is done
func (p *Pump) deliver(ctx context.Context, cmd engine.Command) bool {
	switch cmd {
	case engine.CommandQuit, engine.CommandPause:
		select {
		case p.out <- cmd:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !p.limiter.Allow() {
		return true
	}

	// A full queue drops the press rather than stalling input
	select {
	case p.out <- cmd:
	default:
	}
	return true
}
