// Package main is the entry point for the hotkeys command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "hotkeys",
		Short: "Keyboard shortcut detection and dispatch",
		Long: `hotkeys tracks held keys, matches them against named shortcuts
and dispatches matches to scoped listeners.

Shortcuts come from a TOML, YAML or JSON file (--config or $HOTKEYS_CONFIG)
or from the built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"hotkey configuration file (default $HOTKEYS_CONFIG, else built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error (default $HOTKEYS_LOG_LEVEL or info)")

	rootCmd.AddCommand(
		runCmd(opts),
		checkCmd(opts),
		normalizeCmd(),
		exportCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// path returns the configuration path after flag and environment lookup.
func (o *globalOptions) path() string {
	return config.ResolvePath(o.configPath)
}

func (o *globalOptions) source() config.Source {
	return config.Resolve(o.path())
}

func (o *globalOptions) level() log.Level {
	if o.logLevel != "" {
		return log.ParseLevel(o.logLevel)
	}
	return log.ParseLevel(config.LogLevel("info"))
}

// logger returns a console logger writing to w. Colors are used only
// when w is a terminal.
func (o *globalOptions) logger(w io.Writer) *log.Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return log.New(log.Config{
		Level:   o.level(),
		Output:  w,
		Console: true,
		NoColor: !color,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hotkeys %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}
