package ui

import (
	"fmt"
	"strconv"
)

// HUD holds the text readouts drawn around the arena.
// It satisfies game.Display; the renderer reads it every frame.
type HUD struct {
	Velocity           float64
	Angle              float64
	VelocityText       string
	AngleText          string
	BounceCountText    string
	PreviousBounceText string
	HighScoreText      string
	GameOverText       string
}

// NewHUD creates a HUD with zeroed readouts
func NewHUD() *HUD {
	h := &HUD{}
	h.SetVelocity(0)
	h.SetAngle(0)
	h.SetBounceCount(0)
	h.SetPreviousBounceCount(0)
	h.SetHighScore(0)
	return h
}

func (h *HUD) SetVelocity(v float64) {
	h.Velocity = v
	h.VelocityText = "Velocity: " + formatNumber(v)
}

func (h *HUD) SetAngle(deg float64) {
	h.Angle = deg
	h.AngleText = "Angle: " + formatNumber(deg)
}

func (h *HUD) SetBounceCount(n int) {
	h.BounceCountText = fmt.Sprintf("Bounce Count: %d", n)
}

func (h *HUD) SetPreviousBounceCount(n int) {
	h.PreviousBounceText = fmt.Sprintf("Previous Bounce Count: %d", n)
}

func (h *HUD) SetHighScore(n int) {
	h.HighScoreText = fmt.Sprintf("High Score: %d", n)
}

func (h *HUD) SetGameOver(msg string) {
	h.GameOverText = msg
}

// formatNumber prints whole numbers without a fraction ("10", "10.5")
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
