package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/hotkey"
	"github.com/dshills/hotkeys/internal/log"
	"github.com/dshills/hotkeys/internal/metrics"
	luaplugin "github.com/dshills/hotkeys/internal/plugin/lua"
)

// errNotTerminal is returned when run is started without a terminal.
var errNotTerminal = errors.New("run needs an interactive terminal")

type runOptions struct {
	metricsAddr string
	script      string
	logFile     string
}

func runCmd(g *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo",
		Long: `Start a terminal demo with two panes. Every configured shortcut
logs when it fires; "m" is also bound separately in each pane so scoped
delivery can be seen. Tab moves focus, ctrl+t suspends the focused pane's
listeners, and Esc or ctrl+q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().StringVar(&opts.script, "script", "", "Lua script to run before the demo starts")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (the screen is owned by the demo)")

	return cmd
}

func runDemo(ctx context.Context, g *globalOptions, opts *runOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.Nop()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = g.logger(f)
	}

	doc := element.NewDocument()
	svcOpts := []hotkey.Option{
		hotkey.WithConfig(g.source()),
		hotkey.WithRoot(doc),
		hotkey.WithResolver(nodeResolver(doc)),
		hotkey.WithLogger(logger),
	}

	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		svcOpts = append(svcOpts, hotkey.WithRecorder(metrics.New(metrics.WithRegistry(reg))))
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "addr", opts.metricsAddr, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	svc := hotkey.New(svcOpts...)

	if opts.script != "" {
		state := luaplugin.NewState()
		defer state.Close()
		mod := luaplugin.NewHotkeyModule(svc, logger)
		if err := mod.Install(state); err != nil {
			return err
		}
		defer mod.Cleanup()
		if err := state.DoFile(opts.script); err != nil {
			return fmt.Errorf("running script %s: %w", opts.script, err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()

	d, err := newDemo(screen, svc, doc)
	if err != nil {
		return err
	}

	// Finalizing the screen makes PollEvent return nil and ends the loop.
	stop := context.AfterFunc(ctx, screen.Fini)
	defer stop()

	d.run()
	logger.Info("demo finished", "stats", fmt.Sprintf("%+v", svc.Stats()))
	return nil
}

// nodeResolver resolves element names, as used by configuration scopes,
// to nodes under doc. Other references use element.DefaultResolver.
func nodeResolver(doc *element.Node) element.Resolver {
	return element.ResolverFunc(func(ref element.Ref) element.Element {
		if name, ok := ref.(string); ok {
			if n := doc.Find(name); n != nil {
				return n
			}
			return nil
		}
		return element.DefaultResolver.Resolve(ref)
	})
}
