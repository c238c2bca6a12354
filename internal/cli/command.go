package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the rgrep command.
func NewRootCommand() *cobra.Command {
	var cfg Config
	var color string

	cmd := &cobra.Command{
		Use:   "rgrep [flags] PATTERN GLOB",
		Short: "Search files matching a glob for a regular expression",
		Long: `rgrep expands GLOB, searches every matching file concurrently and prints
each matching line with its line number, column and highlighted match.

Quote the glob so the shell passes it through unexpanded:

  rgrep 'he\w+' 'src/**/*.go'`,
		Args:    cobra.ExactArgs(2),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := LoadConfigFile(ConfigFilePath())
			if err != nil {
				return WithExitCode(err, ExitError)
			}
			if err := fc.Apply(cmd.Flags()); err != nil {
				return WithExitCode(err, ExitError)
			}

			cfg.Pattern = args[0]
			cfg.Glob = args[1]
			cfg.Color, err = ParseColorMode(color)
			if err != nil {
				return WithExitCode(err, ExitError)
			}

			if code := Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != ExitOK {
				return reported(fmt.Errorf("exit status %d", code), code)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use PCRE2 syntax (lookaround, backreferences)")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	flags.BoolVar(&cfg.Gitignore, "gitignore", false, "skip files matched by .gitignore in the glob's base directory")
	flags.BoolVar(&cfg.SkipBinary, "skip-binary", false, "skip files with binary extensions (images, archives, objects)")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "print matches as JSON Lines")
	flags.StringVar(&color, "color", "auto", "colorize output: auto, always or never")
	flags.IntVarP(&cfg.Workers, "workers", "j", 0, "number of files searched in parallel (0 = 2x CPUs)")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "diagnostics level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFile, "log-file", "", "also append diagnostics to this file (rotated)")

	return cmd
}

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !Reported(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return ExitCode(err)
	}
	return ExitOK
}
