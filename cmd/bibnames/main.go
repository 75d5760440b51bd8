// Package main provides the bibnames CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/bibkit/bibtex/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibnames",
	Short: "Split bibtex author and editor fields into names",
	Long: `bibnames splits the value of a bibtex author or editor field into
names and prints their first, von, last and jr parts, or formats them in
a citation style.

Names are read from the arguments, or one name list per line from stdin.
All commands output JSON by default.

Formatting defaults are read from ~/.config/bibnames/config.yml, or from
the file named by BIBNAMES_CONFIG. A .env file in the working directory is
loaded first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		// A missing .env file is fine.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
