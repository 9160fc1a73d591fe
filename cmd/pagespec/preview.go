package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pagespec_server/internal/render"
	"pagespec_server/internal/spec"
)

type previewOptions struct {
	specPath string
	dev      bool
}

func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Validate a spec file and print the plain HTML preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.specPath, "spec", "", "Spec JSON file, - for stdin (embedded example when empty)")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "Inject the dev stylesheet")

	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	var raw []byte
	var err error
	switch opts.specPath {
	case "":
		raw = spec.ExampleJSON
	case "-":
		raw, err = io.ReadAll(cmd.InOrStdin())
	default:
		raw, err = os.ReadFile(opts.specPath)
	}
	if err != nil {
		return fmt.Errorf("read spec: %w", err)
	}

	page, err := spec.Parse(raw)
	if err != nil {
		return err
	}

	html := render.HTML(page)
	if opts.dev {
		html = render.InjectDevCSS(html)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}
