// Command nsimctl runs a level + input replay to completion and reports the
// outcome, optionally exporting the full frame-by-frame trace as CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"nsim/engine"
	"nsim/replay"
	"nsim/sim"
)

func main() {
	mapPath := flag.String("map", "", "path to a binary map file")
	inputPath := flag.String("input", "", "path to a raw input byte stream, one byte (0-7) per frame")
	configPath := flag.String("config", "", "optional YAML config overriding physics/sim/logging defaults")
	csvPath := flag.String("csv", "", "optional path to export the frame trace as CSV")
	flag.Parse()

	if *mapPath == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nsimctl -map <file> -input <file> [-config <file>] [-csv <file>]")
		os.Exit(2)
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	engine.SetLogLevel(engine.LevelFromString(cfg.Logging.Level))
	if err := engine.InitLoggers("nsimctl"); err != nil {
		fmt.Fprintf(os.Stderr, "init loggers: %v\n", err)
		os.Exit(1)
	}
	defer engine.GetLoggerManager().CloseAllLoggers()

	mapData, err := os.ReadFile(*mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read map: %v\n", err)
		os.Exit(1)
	}
	inputData, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	s := sim.New(cfg.Physics)
	if err := s.Load(mapData); err != nil {
		fmt.Fprintf(os.Stderr, "load map: %v\n", err)
		os.Exit(1)
	}

	maxFrames := cfg.Sim.MaxFrames
	for i := 0; i < len(inputData) && i < maxFrames && s.Running(); i++ {
		s.Tick(int(inputData[i]))
	}

	switch {
	case s.Won:
		fmt.Printf("win at frame %d\n", s.ExitFrame)
	case s.Dead:
		fmt.Printf("death at frame %d\n", s.Frame)
	default:
		fmt.Printf("incomplete after %d frames\n", s.Frame)
	}

	out := *csvPath
	if out == "" {
		out = cfg.Replay.CSVPath
	}
	if out != "" {
		if err := replay.ExportCSV(out, s.Trace); err != nil {
			fmt.Fprintf(os.Stderr, "export csv: %v\n", err)
			os.Exit(1)
		}
	}
}
