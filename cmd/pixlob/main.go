package main

import (
	"fmt"
	"os"

	"github.com/diegok/pixlob/internal/app"
	"github.com/diegok/pixlob/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pixlob [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --speed <v>         Initial launch speed (default: 10)")
	fmt.Fprintln(os.Stderr, "  --angle <deg>       Initial launch angle (default: 45)")
	fmt.Fprintln(os.Stderr, "  --gravity <g>       Gravity (default: 9.8)")
	fmt.Fprintln(os.Stderr, "  --bounciness <b>    Wall bounciness 0-1 (default: 0.8)")
	fmt.Fprintln(os.Stderr, "  --width <w>         Arena width (default: 10)")
	fmt.Fprintln(os.Stderr, "  --height <h>        Arena height (default: 6)")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Frames per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --debug             Write logs/pixlob.log")
	fmt.Fprintln(os.Stderr, "  --env-file <path>   Read PIXLOB_* settings from a dotenv file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Up/Down      angle +/-1")
	fmt.Fprintln(os.Stderr, "  Left/Right   speed -/+1")
	fmt.Fprintln(os.Stderr, "  Space        launch")
	fmt.Fprintln(os.Stderr, "  R            start over")
	fmt.Fprintln(os.Stderr, "  Q/Esc        quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Each shot must hit the walls exactly once more than the last one.")
}
