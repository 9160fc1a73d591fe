package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newBrandCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "brand <url>",
		Short: "Scrape accent colour and font tokens from a web page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(rootFlags)
			if err != nil {
				return err
			}
			tokens := app.Brand.Tokens(cmd.Context(), args[0])

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tokens)
		},
	}
}
