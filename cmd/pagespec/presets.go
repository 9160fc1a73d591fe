package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pagespec_server/internal/theme"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "# presets version %s\n", theme.PresetsVersion())
			fmt.Fprintln(w, "ID\tTHEME\tACCENT\tRADIUS\tFONT\tLABEL")
			for _, p := range theme.Presets() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Theme, p.ThemeTokens.Accent, p.ThemeTokens.Radius, p.ThemeTokens.Font, p.Label)
			}
			return w.Flush()
		},
	}
}
