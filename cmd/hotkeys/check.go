package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/keymap"
	"github.com/dshills/hotkeys/internal/log"
)

// errInvalidConfig is returned by check when problems were reported.
var errInvalidConfig = errors.New("configuration has problems")

func checkCmd(g *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the configuration and list its shortcuts",
		Long: `Load the hotkey configuration, validate it and print every shortcut
with its normalized combinations in registration order.

When two shortcuts share a combination the first one registered always
wins; check lists the shadowed ones. With --strict shadowing is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := g.logger(cmd.ErrOrStderr()).With("component", "check", "path", g.path())
			return runCheck(cmd.OutOrStdout(), logger, g.source(), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat shadowed combinations as errors")

	return cmd
}

func runCheck(out io.Writer, logger *log.Logger, src config.Source, strict bool) error {
	hotkeys, err := src.Hotkeys()
	if err != nil {
		return err
	}
	logger.Debug("hotkey configuration loaded", "count", len(hotkeys))

	problems := config.Validate(hotkeys)
	for _, p := range problems {
		fmt.Fprintf(out, "error: %s\n", p)
	}

	root := element.NewDocument()
	reg := keymap.NewRegistry()
	for _, h := range hotkeys {
		scope := element.Element(root)
		if h.Scope != "" {
			n := root.Find(h.Scope)
			if n == nil {
				n = root.AppendNew(h.Scope)
			}
			scope = n
		}
		reg.Register(h.Name, h.Keys, scope)
	}

	for _, sc := range reg.Shortcuts() {
		combos := sc.Combinations()
		spelled := make([]string, len(combos))
		for i, c := range combos {
			spelled[i] = c.String()
		}
		line := fmt.Sprintf("%-16s %s", sc.Name(), strings.Join(spelled, ", "))
		if sc.Scope() != element.Element(root) {
			line += fmt.Sprintf("  (scope %s)", sc.Scope().Name())
		}
		fmt.Fprintln(out, line)
	}

	conflicts := reg.Conflicts()
	for _, c := range conflicts {
		logger.Debug("shadowed combination", "shortcut", c.Shadowed.Name(), "winner", c.Winner.Name())
		fmt.Fprintf(out, "warning: %s is shadowed by %s on %s\n",
			c.Shadowed.Name(), c.Winner.Name(), c.Combination)
	}

	fmt.Fprintf(out, "%d shortcuts, %d problems, %d shadowed combinations\n",
		reg.Len(), len(problems), len(conflicts))

	if len(problems) > 0 || (strict && len(conflicts) > 0) {
		return errInvalidConfig
	}
	return nil
}
