package app

import (
	"github.com/diegok/pixlob/internal/audio"
	"github.com/diegok/pixlob/internal/protocol"
)

type sound int

const (
	soundLaunch sound = iota
	soundWallBounce
	soundGroundHit
	soundHighScore
	soundGameOver
)

func (s sound) play() {
	switch s {
	case soundLaunch:
		audio.PlayLaunch()
	case soundWallBounce:
		audio.PlayWallBounce()
	case soundGroundHit:
		audio.PlayGroundHit()
	case soundHighScore:
		audio.PlayHighScore()
	case soundGameOver:
		audio.PlayGameOver()
	}
}

// detectSounds compares consecutive snapshots and picks the effects to play.
// At most one outcome sound per tick; a launch can accompany it.
func detectSounds(prev, cur protocol.Snapshot) []sound {
	var out []sound

	if cur.Phase == protocol.PhaseLaunched && prev.Phase != protocol.PhaseLaunched {
		out = append(out, soundLaunch)
	}

	switch {
	case cur.GameOver != "" && cur.GameOver != prev.GameOver:
		out = append(out, soundGameOver)
	case cur.HighScore > prev.HighScore:
		out = append(out, soundHighScore)
	case cur.BounceCount > prev.BounceCount && cur.Phase == protocol.PhaseBouncing:
		out = append(out, soundWallBounce)
	case prev.Phase != protocol.PhaseIdle && cur.Phase == protocol.PhaseIdle:
		out = append(out, soundGroundHit)
	}

	return out
}
