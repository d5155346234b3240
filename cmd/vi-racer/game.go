package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/event"
	"github.com/lixenwraith/vi-racer/ghost"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/render"
)

// game wires the race to the terminal, keyboard and speaker
type game struct {
	cfg    config.Config
	screen tcell.Screen
	clock  *engine.PausableClock
	store  ghost.Store
	queue  *event.Queue
	log    *zap.Logger

	race     *engine.Race
	mapper   *input.Mapper
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	audio    *audio.System
}

func newGame(cfg config.Config, screen tcell.Screen, clock *engine.PausableClock, store ghost.Store, sound *audio.SoundManager, logger *zap.Logger) *game {
	g := &game{
		cfg:    cfg,
		screen: screen,
		clock:  clock,
		store:  store,
		queue:  event.NewQueue(),
		log:    logger,
		mapper: input.NewMapper(input.DefaultKeyTable()),
		sound:  sound,
		audio:  audio.NewSystem(sound, logger),
	}
	g.newRace()
	g.renderer = render.NewTerminalRenderer(screen, g.race.Track(), cfg.UseColor(screen.Colors()))
	return g
}

// newRace builds and starts a race on the configured track, sharing the event queue
func (g *game) newRace() {
	g.race = engine.NewRace(g.cfg.Race(),
		engine.WithStore(g.store),
		engine.WithLogger(g.log),
		engine.WithQueue(g.queue),
	)
	g.race.Start(g.clock.Now())
}

// restart discards the running race, the stored best lap survives
func (g *game) restart() {
	g.clock.Resume()
	g.queue.Consume()
	g.mapper.Reset()
	g.audio.Reset()
	g.newRace()
	g.log.Info("race restarted")
}

// run is the frame loop: input drains between fixed-rate ticks
func (g *game) run() {
	events := make(chan tcell.Event, 256)
	go g.pollEvents(events)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func (g *game) pollEvents(events chan<- tcell.Event) {
	defer close(events)
	// Panic recovery for the polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			g.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// handleEvent applies one terminal event and reports whether to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch g.mapper.HandleEvent(ev, g.clock.Now()) {
		case input.IntentQuit:
			g.log.Info("quit")
			return true
		case input.IntentPause:
			paused := g.clock.Toggle()
			g.log.Debug("pause toggled", zap.Bool("paused", paused))
		case input.IntentToggleMute:
			muted := g.sound.ToggleMute()
			g.log.Debug("mute toggled", zap.Bool("muted", muted))
		case input.IntentRestart:
			g.restart()
		}
	}
	return false
}

// frame ticks the race unless paused, fans events out and draws
func (g *game) frame() {
	now := g.clock.Now()
	paused := g.clock.IsPaused()
	if !paused {
		g.race.Tick(now, g.mapper.Controls(g.race.Config().Players, now))
	}

	g.queue.Drain(g.dispatch)

	snap := g.race.Snapshot()
	snap.Paused = paused
	g.audio.Update(snap)
	g.renderer.RenderFrame(snap)
}

func (g *game) dispatch(ev event.GameEvent) {
	g.audio.HandleEvent(ev)

	switch p := ev.Payload.(type) {
	case *event.LapPayload:
		g.log.Info(ev.Type.String(),
			zap.Int("player", ev.Player),
			zap.Int("lap", p.Lap),
			zap.Duration("time", p.Time),
			zap.Bool("best", p.Best),
		)
	case *event.WinPayload:
		g.log.Info(ev.Type.String(), zap.Int("winner", p.Winner), zap.Duration("race_time", p.RaceTime))
	case *event.ErrorPayload:
		g.log.Warn(ev.Type.String(), zap.Int("player", ev.Player), zap.Error(p.Err))
	default:
		g.log.Debug(ev.Type.String(), zap.Int("player", ev.Player))
	}
}
