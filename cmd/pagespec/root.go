package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configDir string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pagespec",
		Short:         "pagespec turns a prompt into a landing page spec, HTML and an export bundle",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand starts the API server.
			if len(args) == 0 {
				return runServe(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configDir, "config", ".", "Directory holding an optional config.yaml")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newBrandCmd(flags))

	return cmd
}
