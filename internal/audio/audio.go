package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Enabled reports whether sounds will be played
func Enabled() bool {
	return initialized
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// sweep glides linearly from one frequency to another, used for the launch whoosh
func sweep(from, to float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	remaining := total
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			progress := float64(total-remaining) / float64(total)
			freq := from + (to-from)*progress
			val := math.Sin(2*math.Pi*phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += freq / float64(sampleRate)
			remaining--
		}
		return len(samples), true
	})
}

// PlayLaunch plays the sound for the projectile leaving the origin
func PlayLaunch() {
	if !initialized {
		return
	}
	speaker.Play(sweep(220, 660, 120*time.Millisecond))
}

// PlayWallBounce plays the sound for the projectile hitting a wall
func PlayWallBounce() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayGroundHit plays the thud for a landing
func PlayGroundHit() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(110, 80*time.Millisecond))
}

// PlayHighScore plays a rising arpeggio for a new high score
func PlayHighScore() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(523, 80*time.Millisecond),
		squareWave(659, 80*time.Millisecond),
		squareWave(784, 120*time.Millisecond),
	))
}

// PlayGameOver plays a descending tone when an attempt is lost
func PlayGameOver() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	))
}
