package game

import (
	"log"
	"math"

	"github.com/diegok/pixlob/internal/protocol"
)

// Defaults for a freshly placed projectile
const (
	DefaultInitialVelocity = 10.0
	DefaultLaunchAngle     = 45.0 // degrees
	DefaultGravity         = 9.8
	DefaultBounciness      = 0.8
	SpeedDecay             = 0.8 // CurrentSpeed multiplier per wall bounce
)

// Game-over messages shown on the HUD
const (
	MsgTooManyBounces   = "Too many bounces! R to try again"
	MsgNotEnoughBounces = "Not enough bounces! R to try again"
)

// Params configures a projectile
type Params struct {
	InitialVelocity float64
	LaunchAngle     float64
	Gravity         float64
	Bounciness      float64
}

// DefaultParams returns the stock launch parameters
func DefaultParams() Params {
	return Params{
		InitialVelocity: DefaultInitialVelocity,
		LaunchAngle:     DefaultLaunchAngle,
		Gravity:         DefaultGravity,
		Bounciness:      DefaultBounciness,
	}
}

// Projectile is a launchable ball following a closed-form parabola until it
// touches a wall, then integrating a reflected velocity until it lands.
type Projectile struct {
	Position        Vec2
	InitialPosition Vec2
	TimeElapsed     float64

	LaunchAngle     float64 // degrees
	InitialVelocity float64
	CurrentSpeed    float64
	Gravity         float64
	Bounciness      float64

	BounceCount         int
	PreviousBounceCount int
	HighScore           int
	GameOver            string

	Launched       bool
	Bouncing       bool
	BounceVelocity Vec2

	display Display
}

// NewProjectile creates a projectile at rest. A nil display discards HUD updates.
func NewProjectile(params Params, display Display) *Projectile {
	if display == nil {
		display = nopDisplay{}
	}
	return &Projectile{
		LaunchAngle:     params.LaunchAngle,
		InitialVelocity: params.InitialVelocity,
		CurrentSpeed:    params.InitialVelocity,
		Gravity:         params.Gravity,
		Bounciness:      params.Bounciness,
		display:         display,
	}
}

// Start places the projectile at origin and resets it
func (p *Projectile) Start(origin Vec2) {
	p.InitialPosition = origin
	p.Reset()
}

// Reset returns the projectile to its launch origin.
// The previous bounce count is carried over from this attempt unless the
// attempt overshot by two, in which case the streak starts again.
func (p *Projectile) Reset() {
	p.Position = p.InitialPosition
	p.CurrentSpeed = p.InitialVelocity
	p.Launched = false
	p.Bouncing = false
	p.TimeElapsed = 0
	p.BounceVelocity = Vec2{}

	if p.BounceCount == p.PreviousBounceCount+2 {
		p.PreviousBounceCount = 0
	} else {
		p.PreviousBounceCount = p.BounceCount
	}

	p.PublishControls()
	p.display.SetBounceCount(p.BounceCount)
	p.display.SetPreviousBounceCount(p.PreviousBounceCount)
}

// Restart clears the game-over message and both bounce counters
func (p *Projectile) Restart() {
	p.GameOver = ""
	p.display.SetGameOver("")
	p.BounceCount = 0
	p.PreviousBounceCount = 0
	p.Reset()
}

// Launch fires the projectile from its origin. Ignored while already in flight.
func (p *Projectile) Launch() bool {
	if p.Launched {
		return false
	}
	p.Reset()
	p.BounceCount = 0
	p.TimeElapsed = 0
	p.Launched = true
	log.Printf("launch: velocity=%v angle=%v", p.CurrentSpeed, p.LaunchAngle)
	return true
}

// AdjustAngle changes the launch angle by delta degrees
func (p *Projectile) AdjustAngle(delta float64) {
	p.LaunchAngle += delta
	p.display.SetAngle(p.LaunchAngle)
}

// AdjustVelocity changes the launch speed by delta. The current flight is
// unaffected until the next reset.
func (p *Projectile) AdjustVelocity(delta float64) {
	p.InitialVelocity += delta
	p.display.SetVelocity(p.InitialVelocity)
}

// PublishControls pushes the launch velocity and angle readouts
func (p *Projectile) PublishControls() {
	p.display.SetVelocity(p.InitialVelocity)
	p.display.SetAngle(p.LaunchAngle)
}

// Apply executes a single player command
func (p *Projectile) Apply(cmd protocol.Command) {
	switch cmd {
	case protocol.CmdAngleUp:
		p.AdjustAngle(1)
	case protocol.CmdAngleDown:
		p.AdjustAngle(-1)
	case protocol.CmdSpeedUp:
		p.AdjustVelocity(1)
	case protocol.CmdSpeedDown:
		p.AdjustVelocity(-1)
	case protocol.CmdLaunch:
		p.Launch()
	case protocol.CmdRestart:
		p.Restart()
	}
}

// PositionAt evaluates the launch parabola at time t for the current speed and angle
func (p *Projectile) PositionAt(t float64) Vec2 {
	return p.parabola(p.CurrentSpeed, t)
}

func (p *Projectile) parabola(speed, t float64) Vec2 {
	rad := p.LaunchAngle * Deg2Rad
	x := speed * math.Cos(rad) * t
	y := speed*math.Sin(rad)*t - 0.5*p.Gravity*t*t
	return p.InitialPosition.Add(Vec2{x, y})
}

// launchVelocity is the analytic derivative of the launch parabola at time t
func (p *Projectile) launchVelocity(speed, t float64) Vec2 {
	rad := p.LaunchAngle * Deg2Rad
	return Vec2{
		X: speed * math.Cos(rad),
		Y: speed*math.Sin(rad) - p.Gravity*t,
	}
}

// Velocity returns the instantaneous velocity of the active phase
func (p *Projectile) Velocity() Vec2 {
	switch {
	case p.Launched:
		return p.launchVelocity(p.CurrentSpeed, p.TimeElapsed)
	case p.Bouncing:
		return p.BounceVelocity
	default:
		return Vec2{}
	}
}

// Phase reports the motion phase
func (p *Projectile) Phase() protocol.Phase {
	switch {
	case p.Launched:
		return protocol.PhaseLaunched
	case p.Bouncing:
		return protocol.PhaseBouncing
	default:
		return protocol.PhaseIdle
	}
}

// Advance moves the projectile forward by dt seconds
func (p *Projectile) Advance(dt float64) {
	if p.Launched {
		// Position is sampled before the clock advances
		p.Position = p.PositionAt(p.TimeElapsed)
		p.TimeElapsed += dt
	}
	if p.Bouncing {
		p.Position = p.Position.Add(p.BounceVelocity.Scale(dt))
		p.BounceVelocity.Y -= p.Gravity * dt
	}
}

// WallContact handles the projectile touching a wall with the given surface normal
func (p *Projectile) WallContact(normal Vec2) {
	// The launch parabola only describes the first leg; later legs use the
	// integrated bounce velocity.
	fromLaunch := p.Launched || !p.Bouncing
	p.Launched = false
	p.Bouncing = true

	p.BounceCount++
	p.display.SetBounceCount(p.BounceCount)
	if p.applyBounceRule() {
		return
	}

	p.CurrentSpeed *= SpeedDecay

	var incoming Vec2
	if fromLaunch {
		incoming = p.launchVelocity(p.CurrentSpeed, p.TimeElapsed)
	} else {
		incoming = p.BounceVelocity
	}
	reflection := incoming.Reflect(normal.Normalize())
	p.BounceVelocity = reflection.Scale(p.Bounciness)

	log.Printf("bounce %d: speed=%v elapsed=%v incoming=%v reflection=%v bounce=%v",
		p.BounceCount, p.CurrentSpeed, p.TimeElapsed, incoming, reflection, p.BounceVelocity)
}

// applyBounceRule updates the high score and reports whether the attempt
// ended with too many bounces.
func (p *Projectile) applyBounceRule() bool {
	if p.BounceCount >= p.HighScore && p.BounceCount == p.PreviousBounceCount+1 {
		p.HighScore = p.BounceCount
		p.display.SetHighScore(p.HighScore)
	}
	if p.BounceCount == p.PreviousBounceCount+2 {
		log.Printf("too many bounces: %d", p.BounceCount)
		p.setGameOver(MsgTooManyBounces)
		p.Reset()
		return true
	}
	return false
}

// GroundContact ends the attempt
func (p *Projectile) GroundContact() {
	if p.BounceCount == p.PreviousBounceCount {
		log.Printf("not enough bounces: %d", p.BounceCount)
		p.setGameOver(MsgNotEnoughBounces)
	}
	p.Reset()
}

func (p *Projectile) setGameOver(msg string) {
	p.GameOver = msg
	p.display.SetGameOver(msg)
}
