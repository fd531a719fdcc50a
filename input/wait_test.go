package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestWaitForKeyReturnsOnKey(t *testing.T) {
	src := newFakeSource(tcell.NewEventResize(80, 24), tcell.NewEventInterrupt(nil), key('q'))

	assert.True(t, WaitForKey(context.Background(), src, time.Time{}))
}

func TestWaitForKeyIgnoresEarlyKeys(t *testing.T) {
	src := newFakeSource(key('a'))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.False(t, WaitForKey(ctx, src, time.Now().Add(time.Hour)))
}

func TestWaitForKeyAcceptsLateKey(t *testing.T) {
	src := newFakeSource()
	since := time.Now()

	go func() {
		time.Sleep(10 * time.Millisecond)
		src.PostEvent(key(' '))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.True(t, WaitForKey(ctx, src, since))
}

func TestWaitForKeyFinalizedSource(t *testing.T) {
	src := newFakeSource()
	src.events <- nil

	assert.False(t, WaitForKey(context.Background(), src, time.Time{}))
}
