package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pagespec_server/internal/generator"
	"pagespec_server/internal/spec"
)

// generateFlags are shared by generate and export.
type generateFlags struct {
	prompt    string
	seed      int64
	theme     string
	accent    string
	radius    string
	font      string
	autoStyle bool
	styleMode string
	variation string
	engine    string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "Prompt describing the page (default prompt when empty)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for reproducible variation (random when unset)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Theme or preset id, e.g. playful, elegant, neon-glass")
	cmd.Flags().StringVar(&f.accent, "accent", "", "Accent colour token, e.g. #0ea5e9")
	cmd.Flags().StringVar(&f.radius, "radius", "", "Corner radius token, e.g. 12px")
	cmd.Flags().StringVar(&f.font, "font", "", "Font token: system, inter or serif")
	cmd.Flags().BoolVar(&f.autoStyle, "auto-style", true, "Detect a theme from the prompt")
	cmd.Flags().StringVar(&f.styleMode, "style-mode", "", "Style mode: auto, explicit or seeded")
	cmd.Flags().StringVar(&f.variation, "variation", "", "Variation strategy: none, reverse-features, shuffle-pricing, both")
	cmd.Flags().StringVar(&f.engine, "engine", string(generator.EngineMapper), "Spec engine: mapper or llm")
}

// options converts the flags, leaving unset ones to the generator defaults.
func (f *generateFlags) options(cmd *cobra.Command) generator.Options {
	opts := generator.Options{
		Prompt:            f.prompt,
		Theme:             f.theme,
		StyleMode:         generator.StyleMode(f.styleMode),
		VariationStrategy: f.variation,
		Engine:            generator.Engine(f.engine),
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if cmd.Flags().Changed("auto-style") {
		auto := f.autoStyle
		opts.AutoStyle = &auto
	}
	tokens := spec.ThemeTokens{Accent: f.accent, Radius: f.radius, Font: f.font}
	if !tokens.IsZero() {
		opts.ThemeTokens = &tokens
	}
	return opts
}

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case "html", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q, use html or json", format)
	}
}
