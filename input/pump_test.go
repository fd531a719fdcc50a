package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/engine"
)

// fakeSource replays queued events, then blocks until an event is posted
type fakeSource struct {
	events chan tcell.Event
}

func newFakeSource(evs ...tcell.Event) *fakeSource {
	f := &fakeSource{events: make(chan tcell.Event, len(evs)+4)}
	for _, ev := range evs {
		f.events <- ev
	}
	return f
}

func (f *fakeSource) PollEvent() tcell.Event { return <-f.events }

func (f *fakeSource) PostEvent(ev tcell.Event) error {
	f.events <- ev
	return nil
}

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func runPump(t *testing.T, p *Pump) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	return cancel, done
}

func TestPumpForwardsCommands(t *testing.T) {
	src := newFakeSource(key('a'), key('k'), tcell.NewEventResize(80, 24), key('x'))
	out := make(chan engine.Command, 8)

	cancel, done := runPump(t, NewPump(src, nil, 100, 10, out))

	assert.Equal(t, engine.CommandMoveLeft, <-out)
	assert.Equal(t, engine.CommandHardDrop, <-out)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pump did not stop on cancel")
	}
}

func TestPumpStopsOnNilEvent(t *testing.T) {
	src := newFakeSource(key('d'))
	src.events <- nil
	out := make(chan engine.Command, 8)

	p := NewPump(src, nil, 100, 10, out)
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, engine.CommandMoveRight, <-out)
}

func TestPumpRateLimitsRepeats(t *testing.T) {
	evs := make([]tcell.Event, 0, 12)
	for i := 0; i < 10; i++ {
		evs = append(evs, key('a'))
	}
	evs = append(evs, key('q'), nil)
	src := newFakeSource(evs...)
	out := make(chan engine.Command, 16)

	// Burst of 3 with a negligible refill rate
	p := NewPump(src, nil, 0.001, 3, out)
	require.NoError(t, p.Run(context.Background()))
	close(out)

	var got []engine.Command
	for cmd := range out {
		got = append(got, cmd)
	}
	assert.Equal(t, []engine.Command{
		engine.CommandMoveLeft, engine.CommandMoveLeft, engine.CommandMoveLeft, engine.CommandQuit,
	}, got, "quit bypasses the limiter")
}
