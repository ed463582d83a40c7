package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixlob/internal/config"
	"github.com/diegok/pixlob/internal/game"
	"github.com/diegok/pixlob/internal/protocol"
)

func TestDetectSounds(t *testing.T) {
	idle := protocol.Snapshot{Phase: protocol.PhaseIdle}
	launched := protocol.Snapshot{Phase: protocol.PhaseLaunched}

	tests := []struct {
		name string
		prev protocol.Snapshot
		cur  protocol.Snapshot
		want []sound
	}{
		{"nothing happens", idle, idle, nil},
		{"in flight", launched, launched, nil},
		{"launch", idle, launched, []sound{soundLaunch}},
		{
			"wall bounce",
			protocol.Snapshot{Phase: protocol.PhaseLaunched, BounceCount: 0, HighScore: 3},
			protocol.Snapshot{Phase: protocol.PhaseBouncing, BounceCount: 1, HighScore: 3},
			[]sound{soundWallBounce},
		},
		{
			"new high score",
			protocol.Snapshot{Phase: protocol.PhaseLaunched, HighScore: 1},
			protocol.Snapshot{Phase: protocol.PhaseBouncing, BounceCount: 2, HighScore: 2},
			[]sound{soundHighScore},
		},
		{
			"ground hit",
			protocol.Snapshot{Phase: protocol.PhaseBouncing, BounceCount: 1},
			protocol.Snapshot{Phase: protocol.PhaseIdle, BounceCount: 1},
			[]sound{soundGroundHit},
		},
		{
			"game over",
			protocol.Snapshot{Phase: protocol.PhaseBouncing, BounceCount: 1},
			protocol.Snapshot{Phase: protocol.PhaseIdle, BounceCount: 2, GameOver: game.MsgTooManyBounces},
			[]sound{soundGameOver},
		},
		{
			"repeated game over message",
			protocol.Snapshot{Phase: protocol.PhaseLaunched, GameOver: game.MsgNotEnoughBounces},
			protocol.Snapshot{Phase: protocol.PhaseIdle, GameOver: game.MsgNotEnoughBounces},
			[]sound{soundGroundHit},
		},
		{
			"relaunch while bouncing",
			protocol.Snapshot{Phase: protocol.PhaseBouncing, BounceCount: 1},
			protocol.Snapshot{Phase: protocol.PhaseLaunched},
			[]sound{soundLaunch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectSounds(tt.prev, tt.cur)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.ParseArgs([]string{"--mute"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewApp(cfg)
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t)

	if a.prevState.Phase != protocol.PhaseIdle {
		t.Errorf("expected idle start, got %v", a.prevState.Phase)
	}
	if a.hud.VelocityText != "Velocity: 10" {
		t.Errorf("expected HUD wired to the projectile, got '%s'", a.hud.VelocityText)
	}
	if a.prevState.ArenaWidth != config.DefaultWidth {
		t.Errorf("expected arena width %f, got %f", config.DefaultWidth, a.prevState.ArenaWidth)
	}
}

func TestApp_HandleEventQueuesCommands(t *testing.T) {
	a := newTestApp(t)

	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
	}
	for _, k := range keys {
		if a.handleEvent(k) {
			t.Fatalf("unexpected quit on %v", k.Name())
		}
	}

	if a.input.Len() != 3 {
		t.Fatalf("expected 3 queued commands, got %d", a.input.Len())
	}

	a.step(1.0 / game.TickRate)

	if a.prevState.Phase != protocol.PhaseLaunched {
		t.Errorf("expected launched after step, got %v", a.prevState.Phase)
	}
	if a.prevState.CurrentSpeed != 11 || a.prevState.LaunchAngle != 46 {
		t.Errorf("expected speed 11 and angle 46, got %f/%f", a.prevState.CurrentSpeed, a.prevState.LaunchAngle)
	}
	if a.hud.VelocityText != "Velocity: 11" || a.hud.AngleText != "Angle: 46" {
		t.Errorf("expected HUD 11/46, got '%s' / '%s'", a.hud.VelocityText, a.hud.AngleText)
	}
	if a.input.Len() != 0 {
		t.Errorf("expected queue drained, got %d", a.input.Len())
	}
}

func TestApp_HandleEventQuit(t *testing.T) {
	a := newTestApp(t)

	if !a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("expected 'q' to quit")
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("expected Escape to quit")
	}
}

func TestApp_StopIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	a.stop()
	a.stop()

	select {
	case <-a.quit:
	default:
		t.Error("expected quit channel closed")
	}
}
