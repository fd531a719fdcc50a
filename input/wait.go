package input

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// WaitForKey blocks until a key pressed at or after since arrives
// Returns false when ctx ends or the source is finalized first
func WaitForKey(ctx context.Context, source EventSource, since time.Time) bool {
	stop := context.AfterFunc(ctx, func() {
		source.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := source.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return false
		}
		if _, ok := ev.(*tcell.EventKey); ok && !ev.When().Before(since) {
			return true
		}
	}
}
