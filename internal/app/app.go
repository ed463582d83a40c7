package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/pixlob/internal/audio"
	"github.com/diegok/pixlob/internal/config"
	"github.com/diegok/pixlob/internal/game"
	"github.com/diegok/pixlob/internal/protocol"
	"github.com/diegok/pixlob/internal/ui"
)

// maxFrameDelta caps the simulated step after a stall (window drag, suspend)
const maxFrameDelta = 100 * time.Millisecond

// App is the main application controller that owns the frame loop.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	hud      *ui.HUD

	state     *game.GameState
	input     *game.InputQueue
	prevState protocol.Snapshot // For sound detection

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	hud := ui.NewHUD()
	arena := game.NewArena(cfg.Width, cfg.Height)
	params := game.Params{
		InitialVelocity: cfg.Speed,
		LaunchAngle:     cfg.Angle,
		Gravity:         cfg.Gravity,
		Bounciness:      cfg.Bounciness,
	}
	state := game.NewGameState(arena, params, hud)

	return &App{
		cfg:       cfg,
		hud:       hud,
		state:     state,
		input:     game.NewInputQueue(),
		prevState: state.ToProtocolState(),
		quit:      make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the frame loop.
func (a *App) Run() error {
	// Game works without sound
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop polls terminal events and advances the simulation once per frame.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	a.render()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			a.step(dt.Seconds())
			a.render()
		}
	}
}

// step runs one simulation tick with the commands queued since the last one.
func (a *App) step(dt float64) {
	a.state.Update(dt, a.input.Drain())
	snap := a.state.ToProtocolState()
	for _, s := range detectSounds(a.prevState, snap) {
		s.play()
	}
	a.prevState = snap
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.input.Push(ui.KeyToCommand(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}

	return false
}

// stop signals every loop goroutine to exit; safe to call more than once.
func (a *App) stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}

func (a *App) render() {
	w, h := a.screen.Size()
	if w < ui.MinWidth || h < ui.MinHeight {
		a.renderer.RenderError(fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", ui.MinWidth, ui.MinHeight, w, h))
		return
	}
	a.renderer.RenderGame(a.prevState, a.hud)
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
