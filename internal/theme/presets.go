package theme

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"pagespec_server/internal/spec"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named theme plus token defaults offered as a one-click style.
type Preset struct {
	ID          string           `yaml:"id" json:"id"`
	Label       string           `yaml:"label" json:"label"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Theme       string           `yaml:"theme" json:"theme"`
	ThemeTokens spec.ThemeTokens `yaml:"themeTokens" json:"themeTokens"`
}

type presetDocument struct {
	Version string   `yaml:"version"`
	Presets []Preset `yaml:"presets"`
}

var (
	presetsOnce sync.Once
	presetDoc   presetDocument
)

func loadPresets() presetDocument {
	presetsOnce.Do(func() {
		doc, err := parsePresets(presetsYAML)
		if err != nil {
			panic(err)
		}
		presetDoc = doc
	})
	return presetDoc
}

func parsePresets(raw []byte) (presetDocument, error) {
	var doc presetDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return presetDocument{}, fmt.Errorf("parse presets: %w", err)
	}
	if doc.Version == "" {
		return presetDocument{}, fmt.Errorf("parse presets: version is required")
	}
	seen := make(map[string]struct{}, len(doc.Presets))
	for i, p := range doc.Presets {
		if p.ID == "" {
			return presetDocument{}, fmt.Errorf("parse presets: presets[%d].id is required", i)
		}
		if _, ok := seen[p.ID]; ok {
			return presetDocument{}, fmt.Errorf("parse presets: duplicate preset id %q", p.ID)
		}
		if !IsSpecTheme(p.Theme) {
			return presetDocument{}, fmt.Errorf("parse presets: preset %q has unknown theme %q", p.ID, p.Theme)
		}
		seen[p.ID] = struct{}{}
	}
	return doc, nil
}

// Presets returns a copy of the preset table in declaration order.
func Presets() []Preset {
	doc := loadPresets()
	return append([]Preset(nil), doc.Presets...)
}

// PresetsVersion identifies the preset table revision.
func PresetsVersion() string {
	return loadPresets().Version
}

// Lookup finds a preset by id.
func Lookup(id string) (Preset, bool) {
	for _, p := range loadPresets().Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// IsSpecTheme reports whether name may appear in a specification's theme field.
func IsSpecTheme(name string) bool {
	switch name {
	case spec.ThemeMinimal, spec.ThemePlayful, spec.ThemeElegant, spec.ThemeCyber:
		return true
	}
	return false
}

// ApplyPreset sets the preset's theme on s and fills its tokens. Tokens
// already present on s win over the preset defaults.
func ApplyPreset(s *spec.PageSpec, p Preset) {
	tokens := p.ThemeTokens.Merge(s.ThemeTokens)
	s.Theme = p.Theme
	s.ThemeTokens = &tokens
}
