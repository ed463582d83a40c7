package protocol

import (
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		value int
	}{
		{"CmdNone is 0", CmdNone, 0},
		{"CmdAngleUp is 1", CmdAngleUp, 1},
		{"CmdAngleDown is 2", CmdAngleDown, 2},
		{"CmdSpeedUp is 3", CmdSpeedUp, 3},
		{"CmdSpeedDown is 4", CmdSpeedDown, 4},
		{"CmdLaunch is 5", CmdLaunch, 5},
		{"CmdRestart is 6", CmdRestart, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.cmd) != tt.value {
				t.Errorf("expected %s to be %d, got %d", tt.name, tt.value, int(tt.cmd))
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	if CmdLaunch.String() != "launch" {
		t.Errorf("expected 'launch', got '%s'", CmdLaunch.String())
	}
	if CmdRestart.String() != "restart" {
		t.Errorf("expected 'restart', got '%s'", CmdRestart.String())
	}
	if Command(99).String() != "unknown" {
		t.Errorf("expected 'unknown', got '%s'", Command(99).String())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseLaunched, "launched"},
		{PhaseBouncing, "bouncing"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %s, want %s", int(tt.phase), got, tt.want)
		}
	}
}
