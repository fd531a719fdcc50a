package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanSource replays queued events, then blocks until an event is posted
type chanSource struct {
	events chan tcell.Event
}

func newChanSource(evs ...tcell.Event) *chanSource {
	s := &chanSource{events: make(chan tcell.Event, len(evs)+4)}
	for _, ev := range evs {
		s.events <- ev
	}
	return s
}

func (s *chanSource) PollEvent() tcell.Event { return <-s.events }

func (s *chanSource) PostEvent(ev tcell.Event) error {
	s.events <- ev
	return nil
}

type recordingDrainer struct {
	calls   int
	expired bool
}

func (d *recordingDrainer) Drain(ctx context.Context) {
	d.calls++
	d.expired = ctx.Err() != nil
}

func TestHoldGameOverWaitsForKey(t *testing.T) {
	src := newChanSource(tcell.NewEventInterrupt(nil))
	sounds := &recordingDrainer{}
	endedAt := time.Now()

	done := make(chan struct{})
	go func() {
		holdGameOver(context.Background(), src, sounds, endedAt)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("hold returned before any key")
	case <-time.After(50 * time.Millisecond):
	}

	time.Sleep(300 * time.Millisecond)
	src.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hold ignored a key press")
	}
	assert.Equal(t, 1, sounds.calls)
	assert.False(t, sounds.expired, "drain gets its own deadline")
}

func TestHoldGameOverIgnoresKeysFromPlay(t *testing.T) {
	// Pressed just before the lock-out, still queued
	src := newChanSource(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	sounds := &recordingDrainer{}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	holdGameOver(ctx, src, sounds, start)

	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond, "queued key did not dismiss the hold")
	require.Equal(t, 1, sounds.calls)
	assert.True(t, sounds.expired)
}
