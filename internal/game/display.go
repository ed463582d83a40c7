package game

// Display receives HUD updates from the projectile.
// Implementations own formatting; the simulation only pushes values.
type Display interface {
	SetVelocity(v float64)
	SetAngle(deg float64)
	SetBounceCount(n int)
	SetPreviousBounceCount(n int)
	SetHighScore(n int)
	SetGameOver(msg string)
}

type nopDisplay struct{}

func (nopDisplay) SetVelocity(float64) {}
func (nopDisplay) SetAngle(float64) {}
func (nopDisplay) SetBounceCount(int) {}
func (nopDisplay) SetPreviousBounceCount(int) {}
func (nopDisplay) SetHighScore(int) {}
func (nopDisplay) SetGameOver(string) {}
