package game

import (
	"github.com/diegok/pixlob/internal/protocol"
)

// Constants for game state management
const (
	TickRate      = 60   // Ticks per second
	PreviewPoints = 24   // Max dots in the aim preview
	PreviewStep   = 0.08 // Seconds between aim preview dots
)

// GameState manages the projectile inside its arena
type GameState struct {
	Arena      Arena
	Projectile *Projectile
	Tick       int
}

// NewGameState creates a game state with the projectile resting at the arena origin
func NewGameState(arena Arena, params Params, display Display) *GameState {
	p := NewProjectile(params, display)
	p.Start(arena.Origin())
	return &GameState{
		Arena:      arena,
		Projectile: p,
	}
}

// Update runs one game tick of dt seconds, consuming cmds in order first
func (gs *GameState) Update(dt float64, cmds []protocol.Command) {
	gs.Tick++
	p := gs.Projectile

	p.PublishControls()
	for _, cmd := range cmds {
		p.Apply(cmd)
	}

	p.Advance(dt)

	if !p.Launched && !p.Bouncing {
		return
	}
	gs.checkContact()
}

// checkContact dispatches at most one surface contact per tick
func (gs *GameState) checkContact() {
	p := gs.Projectile
	contact := gs.Arena.Contact(p.Position, p.Velocity())

	switch contact.Surface {
	case SurfaceGround:
		p.GroundContact()
	case SurfaceWall:
		p.Position = contact.Clamped
		p.WallContact(contact.Normal)
	}
}

// Preview samples the trajectory the next launch would follow, stopping
// at the first point outside the arena.
func (gs *GameState) Preview() []protocol.Point {
	p := gs.Projectile
	points := make([]protocol.Point, 0, PreviewPoints)
	for i := 1; i <= PreviewPoints; i++ {
		pos := p.parabola(p.InitialVelocity, float64(i)*PreviewStep)
		if pos.Y < 0 || pos.X < 0 || pos.X > gs.Arena.Width {
			break
		}
		points = append(points, protocol.Point{X: pos.X, Y: pos.Y})
	}
	return points
}

// ToProtocolState converts to the renderable snapshot
func (gs *GameState) ToProtocolState() protocol.Snapshot {
	p := gs.Projectile
	vel := p.Velocity()

	snap := protocol.Snapshot{
		Tick: gs.Tick,
		Projectile: protocol.ProjectileState{
			X:  p.Position.X,
			Y:  p.Position.Y,
			VX: vel.X,
			VY: vel.Y,
		},
		Phase:               p.Phase(),
		LaunchAngle:         p.LaunchAngle,
		InitialVelocity:     p.InitialVelocity,
		CurrentSpeed:        p.CurrentSpeed,
		BounceCount:         p.BounceCount,
		PreviousBounceCount: p.PreviousBounceCount,
		HighScore:           p.HighScore,
		GameOver:            p.GameOver,
		ArenaWidth:          gs.Arena.Width,
		ArenaHeight:         gs.Arena.Height,
		Radius:              gs.Arena.Radius,
	}
	if snap.Phase == protocol.PhaseIdle {
		snap.Preview = gs.Preview()
	}
	return snap
}
