// Package urlstate encodes playground state into query strings so a
// generated page can be shared and reproduced from a link.
package urlstate

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"pagespec_server/internal/generator"
	"pagespec_server/internal/spec"
)

// State is everything needed to repeat a generate call.
type State struct {
	Prompt            string            `json:"prompt,omitempty"`
	Seed              *int64            `json:"seed,omitempty"`
	Theme             string            `json:"theme,omitempty"`
	ThemeTokens       *spec.ThemeTokens `json:"themeTokens,omitempty"`
	AutoStyle         *bool             `json:"autoStyle,omitempty"`
	StyleMode         string            `json:"styleMode,omitempty"`
	VariationStrategy string            `json:"variationStrategy,omitempty"`
}

type pair struct{ key, value string }

// Encode renders s as a query string without the leading "?".
//
// When the style mode resolves to auto, theme and tokens are dropped: the
// server infers them from the prompt. Seeded mode drops them as well.
func Encode(s State) string {
	var pairs []pair

	if p := strings.TrimSpace(s.Prompt); p != "" {
		pairs = append(pairs, pair{"prompt", p})
	}
	if s.Seed != nil {
		pairs = append(pairs, pair{"seed", strconv.FormatInt(*s.Seed, 10)})
	}

	mode := s.StyleMode
	if mode == "" {
		mode = string(generator.StyleExplicit)
		if s.AutoStyle != nil && *s.AutoStyle {
			mode = string(generator.StyleAuto)
		}
	}
	auto := mode == string(generator.StyleAuto)
	switch {
	case auto:
		pairs = append(pairs, pair{"autoStyle", "1"}, pair{"styleMode", mode})
	case s.AutoStyle != nil && !*s.AutoStyle:
		pairs = append(pairs, pair{"autoStyle", "0"}, pair{"styleMode", mode})
	}

	if !auto && mode != string(generator.StyleSeeded) {
		if s.Theme != "" {
			pairs = append(pairs, pair{"theme", s.Theme})
		}
		if t := s.ThemeTokens; t != nil {
			if t.Accent != "" {
				pairs = append(pairs, pair{"accent", t.Accent})
			}
			if t.Radius != "" {
				pairs = append(pairs, pair{"radius", t.Radius})
			}
			if t.Font != "" {
				pairs = append(pairs, pair{"font", t.Font})
			}
		}
	}

	if s.VariationStrategy != "" {
		pairs = append(pairs, pair{"variationStrategy", s.VariationStrategy})
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// Parse decodes a query string, with or without the leading "?".
func Parse(query string) State {
	values, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))
	return FromValues(values)
}

// FromValues decodes already-parsed query values. Blank prompts and
// non-finite seeds are dropped. Theme and tokens are dropped when autoStyle
// is true or the style mode is seeded.
func FromValues(values url.Values) State {
	var s State

	if p := values.Get("prompt"); strings.TrimSpace(p) != "" {
		s.Prompt = p
	}
	if seed, ok := ParseSeed(values.Get("seed")); ok {
		s.Seed = &seed
	}

	autoStyle, hasAuto := parseBool(values, "autoStyle")
	if hasAuto {
		s.AutoStyle = &autoStyle
	}

	styleMode := values.Get("styleMode")
	s.StyleMode = styleMode
	if styleMode == "" && hasAuto {
		s.StyleMode = string(generator.StyleExplicit)
		if autoStyle {
			s.StyleMode = string(generator.StyleAuto)
		}
	}

	s.VariationStrategy = values.Get("variationStrategy")

	allowExplicit := !(hasAuto && autoStyle) && styleMode != string(generator.StyleSeeded)
	if allowExplicit {
		s.Theme = values.Get("theme")
		tokens := spec.ThemeTokens{
			Accent: values.Get("accent"),
			Radius: values.Get("radius"),
			Font:   values.Get("font"),
		}
		if !tokens.IsZero() {
			s.ThemeTokens = &tokens
		}
	}
	return s
}

// ParseSeed reads a numeric seed. Non-numeric and non-finite values are
// rejected; fractional values are truncated toward zero.
func ParseSeed(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

func parseBool(values url.Values, key string) (value, ok bool) {
	if !values.Has(key) {
		return false, false
	}
	switch strings.ToLower(values.Get(key)) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// BuildShareURL appends the encoded state to base, replacing any existing
// query and keeping the fragment.
func BuildShareURL(base string, s State) string {
	beforeHash, hash := base, ""
	if i := strings.Index(base, "#"); i >= 0 {
		beforeHash, hash = base[:i], base[i:]
	}
	if i := strings.Index(beforeHash, "?"); i >= 0 {
		beforeHash = beforeHash[:i]
	}
	return beforeHash + "?" + Encode(s) + hash
}

// Options converts s into generate options.
func (s State) Options() generator.Options {
	return generator.Options{
		Prompt:            s.Prompt,
		Seed:              s.Seed,
		Theme:             s.Theme,
		ThemeTokens:       s.ThemeTokens,
		AutoStyle:         s.AutoStyle,
		StyleMode:         generator.StyleMode(s.StyleMode),
		VariationStrategy: s.VariationStrategy,
	}
}
