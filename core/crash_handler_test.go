package core

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTerminal struct{ finalized int }

func (f *fakeTerminal) Fini() { f.finalized++ }

// captureCrash swaps the exit hook and output for the duration of the test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOutput, exitFunc
	crashOutput = &out
	exitFunc = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, exitFunc = prevOut, prevExit
		SetCrashTerminal(nil)
	})
	return &out, codes
}

func TestHandleCrashNil(t *testing.T) {
	out, codes := captureCrash(t)
	HandleCrash(nil)
	assert.Empty(t, out.String())
	assert.Empty(t, codes)
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	out, codes := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	assert.Equal(t, 1, term.finalized)
	assert.Contains(t, out.String(), "CRASH DETECTED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
	assert.Equal(t, 1, <-codes)
}

func TestGoRecovers(t *testing.T) {
	_, codes := captureCrash(t)
	SetCrashTerminal(&fakeTerminal{})

	Go(func() { panic("worker") })

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(time.Second):
		t.Fatal("panic was not handled")
	}
}

func TestGuard(t *testing.T) {
	_, codes := captureCrash(t)
	SetCrashTerminal(&fakeTerminal{})

	want := errors.New("task failed")
	assert.Equal(t, want, Guard(func() error { return want })())

	assert.NoError(t, Guard(func() error { panic("task") })())
	assert.Equal(t, 1, <-codes)
}
