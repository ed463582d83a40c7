package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixlob/internal/protocol"
)

// KeyToCommand converts a key event to a simulation command.
// Arrow keys have WASD equivalents.
func KeyToCommand(key tcell.Key, r rune) protocol.Command {
	switch key {
	case tcell.KeyUp:
		return protocol.CmdAngleUp
	case tcell.KeyDown:
		return protocol.CmdAngleDown
	case tcell.KeyRight:
		return protocol.CmdSpeedUp
	case tcell.KeyLeft:
		return protocol.CmdSpeedDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.CmdAngleUp
		case 's', 'S':
			return protocol.CmdAngleDown
		case 'd', 'D':
			return protocol.CmdSpeedUp
		case 'a', 'A':
			return protocol.CmdSpeedDown
		case ' ':
			return protocol.CmdLaunch
		case 'r', 'R':
			return protocol.CmdRestart
		}
	}
	return protocol.CmdNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
