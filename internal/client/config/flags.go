package config

import (
	"flag"
	"os"
	"time"

	"medreport/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the report service API (default from Config)
//	-d string   path to the session database file
//	-g int      undo grace window in seconds
//
// os.Args is filtered to just these flags first, so the config-file flags
// handled elsewhere do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the report service API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the session database")
	undoGrace := fs.Int("g", int(cfg.UndoGrace.Seconds()), "undo grace window (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.UndoGrace = time.Duration(*undoGrace) * time.Second
}
