package generator

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"pagespec_server/internal/logger"
	"pagespec_server/internal/render"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/theme"
	"pagespec_server/internal/types"
)

// DefaultPrompt is used when a caller supplies a blank prompt.
const DefaultPrompt = "Landing page for AI Math SaaS for kids"

// seedRange bounds generated seeds to [0, seedRange).
const seedRange = 100000

// StyleMode tells Generate how the caller picked the look of the page.
type StyleMode string

const (
	StyleAuto     StyleMode = "auto"
	StyleExplicit StyleMode = "explicit"
	StyleSeeded   StyleMode = "seeded"
)

// ParseStyleMode validates a style mode name. The empty string stays empty.
func ParseStyleMode(name string) (StyleMode, error) {
	switch StyleMode(name) {
	case "", StyleAuto, StyleExplicit, StyleSeeded:
		return StyleMode(name), nil
	}
	return "", types.NewMalformedInputError("styleMode", name, "unknown style mode")
}

// ThemeSource records where the applied theme came from.
type ThemeSource string

const (
	SourceExplicit ThemeSource = "explicit"
	SourcePrompt   ThemeSource = "prompt"
	SourceSeeded   ThemeSource = "seeded"
	SourceNone     ThemeSource = "none"
)

// Engine selects how the base specification is produced.
type Engine string

const (
	EngineMapper Engine = "mapper"
	EngineLLM    Engine = "llm"
)

// Options enumerates every recognized generation input.
//
// Precedence for styling is explicit theme or tokens, then the theme
// detected from the prompt, then none. A nil Seed asks Generate to pick one.
type Options struct {
	Prompt            string
	Seed              *int64
	Theme             string
	ThemeTokens       *spec.ThemeTokens
	AutoStyle         *bool
	StyleMode         StyleMode
	VariationStrategy string
	Engine            Engine
}

// Result is the outcome of one Generate call.
type Result struct {
	Spec              *spec.PageSpec `json:"spec"`
	HTML              string         `json:"html"`
	Seed              int64          `json:"seed"`
	ChosenTheme       string         `json:"chosenTheme,omitempty"`
	ThemeSource       ThemeSource    `json:"themeSource"`
	PresetsVersion    string         `json:"presetsVersion"`
	VariationStrategy Strategy       `json:"variationStrategy"`
	StyleMode         StyleMode      `json:"styleMode"`
	Engine            Engine         `json:"engine"`
}

// SpecSource produces a base specification from a prompt. The LLM adapter
// implements it.
type SpecSource interface {
	SpecFromPrompt(ctx context.Context, prompt string) (*spec.PageSpec, error)
}

// Service runs the prompt to HTML pipeline.
type Service struct {
	log           *logger.Logger
	llm           SpecSource
	newSeed       func() int64
	defaultPrompt string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for soft failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithSpecSource enables the llm engine.
func WithSpecSource(src SpecSource) Option {
	return func(s *Service) { s.llm = src }
}

// WithSeedSource replaces the random seed generator.
func WithSeedSource(fn func() int64) Option {
	return func(s *Service) { s.newSeed = fn }
}

// WithDefaultPrompt overrides DefaultPrompt.
func WithDefaultPrompt(prompt string) Option {
	return func(s *Service) {
		if strings.TrimSpace(prompt) != "" {
			s.defaultPrompt = prompt
		}
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		newSeed:       func() int64 { return rand.Int63n(seedRange) },
		defaultPrompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate maps the prompt to a specification, styles it, applies the
// variation for the seed and renders it.
//
// When no seed is supplied one is generated and the implicit variation runs
// with it, so passing the returned seed back reproduces the output exactly.
func (s *Service) Generate(ctx context.Context, opts Options) (*Result, error) {
	prompt := opts.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = s.defaultPrompt
	}

	seed := s.newSeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	strategy, err := ParseStrategy(opts.VariationStrategy)
	if err != nil {
		s.log.Warn(err.Error())
	}
	mode, err := ParseStyleMode(string(opts.StyleMode))
	if err != nil {
		s.log.Warn(err.Error())
	}

	page, engine, err := s.baseSpec(ctx, prompt, opts.Engine)
	if err != nil {
		return nil, err
	}

	autoStyle := resolveAutoStyle(opts.AutoStyle, mode)
	if mode == "" {
		mode = StyleExplicit
		if autoStyle {
			mode = StyleAuto
		}
	}

	chosen, source := s.applyStyle(page, prompt, opts.Theme, s.cleanTokens(opts.ThemeTokens), autoStyle, mode)
	ApplyVariation(page, strategy, seed)

	return &Result{
		Spec:              page,
		HTML:              render.Page(page),
		Seed:              seed,
		ChosenTheme:       chosen,
		ThemeSource:       source,
		PresetsVersion:    theme.PresetsVersion(),
		VariationStrategy: strategy,
		StyleMode:         mode,
		Engine:            engine,
	}, nil
}

func (s *Service) baseSpec(ctx context.Context, prompt string, engine Engine) (*spec.PageSpec, Engine, error) {
	if engine != EngineLLM {
		return PromptToSpec(prompt), EngineMapper, nil
	}
	if s.llm == nil {
		s.log.Warn("llm engine requested but not configured, using mapper")
		return PromptToSpec(prompt), EngineMapper, nil
	}

	page, err := s.llm.SpecFromPrompt(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, "", err
		}
		s.log.Error(err, "llm spec generation failed, using mapper")
		return PromptToSpec(prompt), EngineMapper, nil
	}
	return page, EngineLLM, nil
}

func resolveAutoStyle(flag *bool, mode StyleMode) bool {
	if flag != nil {
		return *flag
	}
	if mode != "" {
		return mode == StyleAuto
	}
	return true
}

// cleanTokens drops an unknown font key and returns nil for an empty set.
func (s *Service) cleanTokens(tokens *spec.ThemeTokens) *spec.ThemeTokens {
	if tokens.IsZero() {
		return nil
	}
	out := *tokens
	switch out.Font {
	case "", spec.FontSystem, spec.FontInter, spec.FontSerif:
	default:
		s.log.Warn(types.NewMalformedInputError("themeTokens.font", out.Font, "unknown font").Error())
		out.Font = ""
	}
	if out.IsZero() {
		return nil
	}
	return &out
}

func (s *Service) applyStyle(page *spec.PageSpec, prompt, themeName string, tokens *spec.ThemeTokens, autoStyle bool, mode StyleMode) (string, ThemeSource) {
	explicit, hasTheme := theme.Lookup(themeName)
	if themeName != "" && !hasTheme {
		s.log.Warn(types.NewMalformedInputError("theme", themeName, "unknown theme").Error())
	}

	switch {
	case mode == StyleSeeded && tokens != nil:
		base := explicit
		if !hasTheme {
			base = minimalPreset()
		}
		applyTokens(page, base, tokens)
		return base.ID, SourceSeeded

	case hasTheme:
		applyTokens(page, explicit, tokens)
		return explicit.ID, SourceExplicit

	case tokens != nil:
		base := minimalPreset()
		if autoStyle {
			if id, ok := theme.DetectFromPrompt(prompt); ok {
				if p, ok := theme.Lookup(id); ok {
					base = p
				}
			}
		}
		applyTokens(page, base, tokens)
		return base.ID, SourceExplicit

	case autoStyle:
		id, ok := theme.DetectFromPrompt(prompt)
		if !ok {
			return "", SourceNone
		}
		p, ok := theme.Lookup(id)
		if !ok {
			return "", SourceNone
		}
		theme.ApplyPreset(page, p)
		return p.ID, SourcePrompt
	}
	return "", SourceNone
}

// applyTokens applies the preset and lays explicit tokens over it.
func applyTokens(page *spec.PageSpec, p theme.Preset, tokens *spec.ThemeTokens) {
	theme.ApplyPreset(page, p)
	merged := page.ThemeTokens.Merge(tokens)
	page.ThemeTokens = &merged
}

func minimalPreset() theme.Preset {
	p, _ := theme.Lookup(spec.ThemeMinimal)
	return p
}
