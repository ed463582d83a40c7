package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixlob/internal/protocol"
)

func TestKeyToCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want protocol.Command
	}{
		{tcell.KeyUp, 0, protocol.CmdAngleUp},
		{tcell.KeyDown, 0, protocol.CmdAngleDown},
		{tcell.KeyRight, 0, protocol.CmdSpeedUp},
		{tcell.KeyLeft, 0, protocol.CmdSpeedDown},
		{tcell.KeyRune, 'w', protocol.CmdAngleUp},
		{tcell.KeyRune, 'S', protocol.CmdAngleDown},
		{tcell.KeyRune, 'd', protocol.CmdSpeedUp},
		{tcell.KeyRune, 'A', protocol.CmdSpeedDown},
		{tcell.KeyRune, ' ', protocol.CmdLaunch},
		{tcell.KeyRune, 'r', protocol.CmdRestart},
		{tcell.KeyRune, 'R', protocol.CmdRestart},
		{tcell.KeyRune, 'x', protocol.CmdNone},
		{tcell.KeyEnter, 0, protocol.CmdNone},
	}

	for _, tt := range tests {
		got := KeyToCommand(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToCommand(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'r') {
		t.Error("'r' should not be quit key")
	}
}
