package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pixlob/internal/protocol"
)

const (
	BallChar    = '\u2B24' // ⬤
	WallChar    = '\u2588' // █
	GroundChar  = '\u2580' // ▀
	PreviewChar = '\u00B7' // ·
)

// Gauge ranges, mirroring the velocity and angle sliders
const (
	GaugeWidth       = 20
	GaugeMaxVelocity = 30.0
	GaugeMaxAngle    = 90.0
)

// Smallest terminal the arena can be drawn in
const (
	MinWidth  = 40
	MinHeight = 12
)

var (
	slowColor = colorful.Color{R: 0.23, G: 0.51, B: 0.96}
	fastColor = colorful.Color{R: 0.94, G: 0.27, B: 0.27}
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// arenaLayout maps world coordinates onto screen cells
type arenaLayout struct {
	left, right int // inner columns between the walls
	top, bottom int // inner rows above the ground
	ground      int
	scaleX      float64
	scaleY      float64
}

func newArenaLayout(screenW, screenH int, width, height float64) arenaLayout {
	l := arenaLayout{
		left:   1,
		right:  screenW - 2,
		top:    2,
		ground: screenH - 3,
	}
	l.bottom = l.ground - 1
	if width > 0 {
		l.scaleX = float64(l.right-l.left) / width
	}
	if height > 0 {
		l.scaleY = float64(l.bottom-l.top) / height
	}
	return l
}

// toScreen converts world coordinates; ok is false when the point is off the arena
func (l arenaLayout) toScreen(x, y float64) (int, int, bool) {
	sx := l.left + int(math.Round(x*l.scaleX))
	sy := l.bottom - int(math.Round(y*l.scaleY))
	if sx < l.left || sx > l.right || sy < l.top || sy > l.bottom {
		return sx, sy, false
	}
	return sx, sy, true
}

// RenderGame displays the arena, projectile and HUD
func (r *Renderer) RenderGame(state protocol.Snapshot, hud *HUD) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	layout := newArenaLayout(screenW, screenH, state.ArenaWidth, state.ArenaHeight)

	r.renderScoreboard(hud, screenW)

	// Walls and ground
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawVerticalLine(0, layout.top, layout.ground, wallStyle, WallChar)
	r.screen.DrawVerticalLine(screenW-1, layout.top, layout.ground, wallStyle, WallChar)
	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	r.screen.DrawHorizontalLine(1, screenW-2, layout.ground, groundStyle, GroundChar)

	// Aim preview
	previewStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for _, pt := range state.Preview {
		if x, y, ok := layout.toScreen(pt.X, pt.Y); ok {
			r.screen.SetCell(x, y, previewStyle, PreviewChar)
		}
	}

	// Ball, shifted down by its radius so it rests on the ground row
	ball := state.Projectile
	if x, y, ok := layout.toScreen(ball.X, ball.Y-state.Radius); ok {
		speed := math.Hypot(ball.VX, ball.VY)
		r.screen.SetCell(x, y, tcell.StyleDefault.Foreground(SpeedColor(speed, state.InitialVelocity)), BallChar)
	}

	r.renderControls(hud, screenH)

	if hud.GameOverText != "" {
		r.renderGameOver(hud.GameOverText, screenW, screenH)
	}

	r.screen.Show()
}

// renderScoreboard draws the bounce counters across the top row
func (r *Renderer) renderScoreboard(hud *HUD, screenW int) {
	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, 0, screenW, 1, barStyle, ' ')

	r.screen.DrawText(1, 0, "PIXLOB", barStyle.Bold(true).Foreground(tcell.ColorTeal))

	text := fmt.Sprintf("%s | %s | %s", hud.BounceCountText, hud.PreviousBounceText, hud.HighScoreText)
	r.screen.DrawTextCentered(0, text, barStyle.Bold(true))
}

// renderControls draws the velocity/angle gauges and key help at the bottom
func (r *Renderer) renderControls(hud *HUD, screenH int) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gaugeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	y := screenH - 2
	velocity := fmt.Sprintf("%-14s", hud.VelocityText)
	r.screen.DrawText(1, y, velocity, labelStyle)
	r.screen.DrawText(1+len(velocity), y, Gauge(hud.Velocity, 0, GaugeMaxVelocity, GaugeWidth), gaugeStyle)

	angleX := len(velocity) + GaugeWidth + 5
	angle := fmt.Sprintf("%-11s", hud.AngleText)
	r.screen.DrawText(angleX, y, angle, labelStyle)
	r.screen.DrawText(angleX+len(angle), y, Gauge(hud.Angle, 0, GaugeMaxAngle, GaugeWidth), gaugeStyle)

	help := "←/→ speed  ↑/↓ angle  SPACE launch  R retry  Q quit"
	r.screen.DrawText(1, screenH-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// renderGameOver draws the game-over message in a centered box
func (r *Renderer) renderGameOver(msg string, screenW, screenH int) {
	boxW := len(msg) + 6
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	msgStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawTextCentered(boxY+2, msg, msgStyle)
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawTextCentered(screenH/2-2, "ERROR", titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawTextCentered(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.DrawTextCentered(screenH/2+3, "Resize the terminal to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// Gauge renders value as a bar between lo and hi, e.g. "[#####-----]"
func Gauge(value, lo, hi float64, width int) string {
	if width <= 0 || hi <= lo {
		return "[]"
	}
	ratio := (value - lo) / (hi - lo)
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// SpeedColor blends from cool to hot as speed approaches the launch speed
func SpeedColor(speed, launchSpeed float64) tcell.Color {
	ratio := 0.0
	if launchSpeed > 0 {
		ratio = math.Max(0, math.Min(1, speed/launchSpeed))
	}
	c := slowColor.BlendLab(fastColor, ratio).Clamped()
	red, green, blue := c.RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
