package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkravets/internhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the InternHub server
//	-t int      request timeout in seconds
//	-i int      stage interval in milliseconds
//	-db string  path to the local UI-state database
//
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-db"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the InternHub server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	stageInterval := fs.Int("i", int(cfg.StageInterval.Milliseconds()), "stage interval (in milliseconds)")
	fs.StringVar(&cfg.UIStateDBPath, "db", cfg.UIStateDBPath, "path to the local UI-state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.StageInterval = time.Duration(*stageInterval) * time.Millisecond
}
