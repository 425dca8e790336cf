// Package cli implements the ringinfo command-line interface.
//
// # Commands
//
//   - rings FILE: ring perception report for an adjacency-list molecule.
//   - iso FILE1 FILE2: isomorphism, or with --subgraph every embedding of
//     FILE2 in FILE1; each mapping is audited before it is printed.
//
// # Configuration
//
// --config points at a TOML file holding defaults (see Config); flags given
// on the command line win.
//
// # Logging
//
// Reports go to stdout. Logs go to stderr through charmbracelet/log at info
// level, or debug with --verbose (-v), which also traces ring perception.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// from values injected with ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the ringinfo command tree writing reports to stdout
// and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "ringinfo",
		Short:         "ringinfo perceives rings and matches molecular graphs",
		Long:          `ringinfo reads molecules and group patterns in adjacency-list form, reports their ring systems and tests them for isomorphism.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("config", "path", configPath, "strict", cfg.Strict, "group_pattern", cfg.GroupPattern)
			cmd.SetContext(withConfig(withLogger(cmd.Context(), logger), cfg))

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("ringinfo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")

	root.AddCommand(newRingsCmd())
	root.AddCommand(newIsoCmd())

	return root
}

// Execute runs ringinfo with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
