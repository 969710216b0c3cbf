package config

import (
	"flag"
	"os"

	"github.com/springingstars/schooldash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-o string   directory for exported artifacts
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.ArtifactsDir, "o", cfg.ArtifactsDir, "directory for exported artifacts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
