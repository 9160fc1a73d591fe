package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"pagespec_server/internal/export"
)

type exportOptions struct {
	generateFlags
	out string
	dir string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a page and write the export bundle as a zip or a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, rootFlags, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the zip archive to this file")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Write the bundle files into this directory")
	cmd.MarkFlagsMutuallyExclusive("out", "dir")

	return cmd
}

func runExport(cmd *cobra.Command, rootFlags *rootFlags, opts *exportOptions) error {
	if strings.TrimSpace(opts.out) == "" && strings.TrimSpace(opts.dir) == "" {
		return errors.New("one of --out or --dir is required")
	}

	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	res, err := app.Generator.Generate(cmd.Context(), opts.options(cmd))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	bundle, err := export.NewBundle(res)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dir != "" {
		written, err := export.NewDirWriter(afero.NewOsFs(), app.Log).Write(cmd.Context(), opts.dir, bundle)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(out, path)
		}
		return nil
	}

	archive, err := export.BuildZip(bundle)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, archive, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	fmt.Fprintf(out, "wrote %s (seed %d, %d bytes)\n", opts.out, res.Seed, len(archive))
	return nil
}
