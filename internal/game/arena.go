package game

// Arena defaults in world units
const (
	DefaultArenaWidth  = 10.0
	DefaultArenaHeight = 6.0
	DefaultRadius      = 0.25
	OriginOffset       = 0.15 // Launch origin as a fraction of the arena width
)

// Surface identifies what the projectile touched
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceGround
	SurfaceWall
)

// Contact describes a projectile touching an arena surface
type Contact struct {
	Surface Surface
	Normal  Vec2
	// Clamped is the projectile position resting on the surface
	Clamped Vec2
}

// Arena is an open-topped box: ground at y=0 and walls at x=0 and x=Width.
// Height only bounds what is drawn.
type Arena struct {
	Width  float64
	Height float64
	Radius float64 // projectile radius
}

// NewArena creates an arena with the given size and the default projectile radius
func NewArena(width, height float64) Arena {
	return Arena{Width: width, Height: height, Radius: DefaultRadius}
}

// Origin returns the launch origin, resting on the ground near the left wall
func (a Arena) Origin() Vec2 {
	return Vec2{X: a.Width * OriginOffset, Y: a.Radius}
}

// Contact reports the surface the projectile at pos is entering, if any.
// A surface only counts while the velocity points into it, so a projectile
// leaving a wall is not caught twice. Ground wins over walls in a corner.
func (a Arena) Contact(pos, vel Vec2) Contact {
	if pos.Y-a.Radius <= 0 && vel.Y < 0 {
		return Contact{
			Surface: SurfaceGround,
			Normal:  Vec2{0, 1},
			Clamped: Vec2{pos.X, a.Radius},
		}
	}
	if pos.X-a.Radius <= 0 && vel.X < 0 {
		return Contact{
			Surface: SurfaceWall,
			Normal:  Vec2{1, 0},
			Clamped: Vec2{a.Radius, pos.Y},
		}
	}
	if pos.X+a.Radius >= a.Width && vel.X > 0 {
		return Contact{
			Surface: SurfaceWall,
			Normal:  Vec2{-1, 0},
			Clamped: Vec2{a.Width - a.Radius, pos.Y},
		}
	}
	return Contact{Surface: SurfaceNone}
}
