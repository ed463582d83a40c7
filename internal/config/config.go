package config

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultSpeed      = 10.0
	DefaultAngle      = 45.0
	DefaultGravity    = 9.8
	DefaultBounciness = 0.8
	DefaultWidth      = 10.0
	DefaultHeight     = 6.0
	DefaultFPS        = 60
	MaxFPS            = 240
)

// EnvPrefix is prepended to flag names for env file keys (PIXLOB_SPEED, ...)
const EnvPrefix = "PIXLOB_"

// Config holds the application configuration
type Config struct {
	Speed      float64
	Angle      float64
	Gravity    float64
	Bounciness float64
	Width      float64
	Height     float64
	FPS        int
	Mute       bool
	Debug      bool
	EnvFile    string
}

// envKeys maps flag names to env file keys
var envKeys = map[string]string{
	"speed":      EnvPrefix + "SPEED",
	"angle":      EnvPrefix + "ANGLE",
	"gravity":    EnvPrefix + "GRAVITY",
	"bounciness": EnvPrefix + "BOUNCINESS",
	"width":      EnvPrefix + "WIDTH",
	"height":     EnvPrefix + "HEIGHT",
	"fps":        EnvPrefix + "FPS",
	"mute":       EnvPrefix + "MUTE",
	"debug":      EnvPrefix + "DEBUG",
}

// ParseArgs parses command line arguments and returns a Config.
// Values from --env-file fill in any flag not given explicitly.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixlob", flag.ContinueOnError)

	cfg := &Config{}
	fs.Float64Var(&cfg.Speed, "speed", DefaultSpeed, "initial launch speed")
	fs.Float64Var(&cfg.Angle, "angle", DefaultAngle, "initial launch angle in degrees")
	fs.Float64Var(&cfg.Gravity, "gravity", DefaultGravity, "gravity (>0)")
	fs.Float64Var(&cfg.Bounciness, "bounciness", DefaultBounciness, "wall bounciness (0-1)")
	fs.Float64Var(&cfg.Width, "width", DefaultWidth, "arena width in world units (>0)")
	fs.Float64Var(&cfg.Height, "height", DefaultHeight, "arena height in world units (>0)")
	fs.IntVar(&cfg.FPS, "fps", DefaultFPS, fmt.Sprintf("frames per second (1-%d)", MaxFPS))
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound")
	fs.BoolVar(&cfg.Debug, "debug", false, "write debug log to logs/")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "read PIXLOB_* settings from a dotenv file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.EnvFile != "" {
		if err := applyEnvFile(fs, cfg.EnvFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvFile sets flags that were not passed on the command line
func applyEnvFile(fs *flag.FlagSet, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "read env file %s", path)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	for name, key := range envKeys {
		value, ok := env[key]
		if !ok || explicit[name] {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "invalid %s in %s", key, path)
		}
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %s", formatFloat(c.Gravity))
	}
	if c.Bounciness < 0 || c.Bounciness > 1 {
		return fmt.Errorf("bounciness must be between 0 and 1, got %s", formatFloat(c.Bounciness))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %sx%s", formatFloat(c.Width), formatFloat(c.Height))
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
