package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr}
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		rkerrors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reactkit",
		Short: "Reactive state trees and classical containers",
		Long: `reactkit tracks reads of a value tree and notifies watchers
when the values they read change.

The CLI replays mutation scripts against a state file, serves a
live tree over HTTP and WebSocket, and manages stored snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: reactkit.json or reactkit.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(
		replayCmd(a),
		serveCmd(a),
		snapshotCmd(a),
		structuresCmd(a),
		versionCmd(a),
	)
	return rootCmd
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", a.paint("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.out, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintf(a.errOut, "%s %s\n", a.paint("\033[33m", "⚠"), fmt.Sprintf(format, args...))
}

func (a *app) paint(code, text string) string {
	if !a.color {
		return text
	}
	return code + text + "\033[0m"
}
