package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	generateFlags
	format string
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a page from a prompt and print its HTML or the full result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, rootFlags, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.format, "format", "html", "Output format: html or json")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootFlags *rootFlags, opts *generateOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	res, err := app.Generator.Generate(cmd.Context(), opts.options(cmd))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out := cmd.OutOrStdout()
	if strings.ToLower(opts.format) == "html" {
		_, err = fmt.Fprintln(out, res.HTML)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
