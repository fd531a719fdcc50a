package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
	"github.com/lixenwraith/blockfall/status"
	"github.com/lixenwraith/blockfall/terminal"
)

// run plays one session and prints its summary after the terminal is restored
func run(ctx context.Context, cfg *config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := terminal.RequireTTY(os.Stdin, os.Stdout); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	metrics := status.NewRegistry()

	session, err := engine.NewSession(cfg.Cols, cfg.Rows, seed,
		engine.WithShadow(cfg.Shadow),
		engine.WithSpawnObserver(metrics.ObserveSpawn),
	)
	if err != nil {
		return err
	}
	log.Printf("session start: seed=%d board=%dx%d", seed, cfg.Cols, cfg.Rows)

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(term)
	defer term.Fini()

	sounds := audio.NewSoundManager(audioConfig(cfg))
	if err := sounds.Initialize(); err != nil {
		log.Printf("continuing without audio: %v", err)
	}
	defer sounds.Cleanup()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sched := engine.NewScheduler(session, clock, engine.WithFrameObserver(metrics.ObserveFrame))
	sched.RegisterEventHandler(metrics)
	sched.RegisterEventHandler(sounds)
	sched.RegisterEventHandler(engine.EventHandlerFunc(logEvent))

	commands := make(chan engine.Command, constants.CommandQueueSize)
	pump := input.NewPump(term.Screen(), input.DefaultKeyTable(), cfg.InputRate, cfg.InputBurst, commands)
	renderer := render.NewTerminalRenderer(term.Screen())

	g, gctx := errgroup.WithContext(ctx)
	// Collaborators stop when the loop ends
	collabCtx, stopCollab := context.WithCancel(gctx)
	defer stopCollab()

	var result engine.Result
	g.Go(core.Guard(func() error {
		defer stopCollab()
		res, err := sched.Run(gctx, commands, renderer)
		result = res
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}))
	g.Go(core.Guard(func() error {
		return pump.Run(collabCtx)
	}))
	if cfg.MetricsAddr != "" {
		g.Go(core.Guard(func() error {
			return metrics.Serve(collabCtx, cfg.MetricsAddr)
		}))
	}

	err = g.Wait()

	if err == nil && result.GameOver && ctx.Err() == nil {
		holdGameOver(ctx, term.Screen(), sounds, time.Now())
	}

	term.Fini()
	core.SetCrashTerminal(nil)

	log.Printf("session end: score=%d level=%d lines=%d game_over=%t", result.Score, result.Level, result.Lines, result.GameOver)
	printSummary(os.Stdout, result, seed)

	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// drainer waits for queued sound effects
type drainer interface {
	Drain(ctx context.Context)
}

// holdGameOver keeps the final frame on screen until a key is pressed or the
// hold expires, then lets queued effects finish playing
// Keys pressed within the grace period after endedAt do not dismiss it
func holdGameOver(ctx context.Context, src input.EventSource, sounds drainer, endedAt time.Time) {
	holdCtx, cancel := context.WithTimeout(ctx, constants.GameOverHold)
	input.WaitForKey(holdCtx, src, endedAt.Add(constants.GameOverKeyGrace))
	cancel()

	drainCtx, cancel := context.WithTimeout(ctx, constants.AudioDrainTimeout)
	defer cancel()
	sounds.Drain(drainCtx)
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}

func logEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventLevelUp:
		log.Printf("level up: level=%d score=%d", ev.Level, ev.Score)
	case engine.EventGameOver:
		log.Printf("lock-out: score=%d", ev.Score)
	}
}
