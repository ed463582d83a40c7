// Package protocol defines the values exchanged between the simulation and
// the terminal front end.
package protocol

// Command is a discrete player input consumed by the simulation once per tick
type Command int

const (
	CmdNone Command = iota
	CmdAngleUp
	CmdAngleDown
	CmdSpeedUp
	CmdSpeedDown
	CmdLaunch
	CmdRestart
)

var commandNames = map[Command]string{
	CmdNone:      "none",
	CmdAngleUp:   "angle-up",
	CmdAngleDown: "angle-down",
	CmdSpeedUp:   "speed-up",
	CmdSpeedDown: "speed-down",
	CmdLaunch:    "launch",
	CmdRestart:   "restart",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Phase is the motion phase of the projectile
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLaunched
	PhaseBouncing
)

func (p Phase) String() string {
	switch p {
	case PhaseLaunched:
		return "launched"
	case PhaseBouncing:
		return "bouncing"
	default:
		return "idle"
	}
}

// Point is a position in world units
type Point struct {
	X float64
	Y float64
}

// ProjectileState is the renderable view of the projectile
type ProjectileState struct {
	X  float64
	Y  float64
	VX float64
	VY float64
}

// Snapshot represents the complete simulation state after one tick
type Snapshot struct {
	Tick                int
	Projectile          ProjectileState
	Phase               Phase
	LaunchAngle         float64
	InitialVelocity     float64
	CurrentSpeed        float64
	BounceCount         int
	PreviousBounceCount int
	HighScore           int
	GameOver            string
	ArenaWidth          float64
	ArenaHeight         float64
	Radius              float64
	Preview             []Point // Aim preview, only populated while idle
}
