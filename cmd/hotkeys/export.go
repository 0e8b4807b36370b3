package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/hotkeys/internal/config"
)

func exportCmd(g *globalOptions) *cobra.Command {
	var (
		defaults bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configuration as JSON",
		Long: `Load the hotkey configuration and write it as JSON, keeping
registration order. The result can be used as a --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := g.source()
			if defaults {
				src = config.Static(config.Defaults())
			}
			hotkeys, err := src.Hotkeys()
			if err != nil {
				return err
			}
			data, err := config.Export(hotkeys)
			if err != nil {
				return err
			}
			if output != "" {
				return os.WriteFile(output, data, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "export the built-in defaults instead of the configuration")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
