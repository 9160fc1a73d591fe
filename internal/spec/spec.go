// Package spec defines the landing-page specification and its validator.
package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Theme names accepted on a specification.
const (
	ThemeMinimal = "minimal"
	ThemePlayful = "playful"
	ThemeElegant = "elegant"
	ThemeCyber   = "cyber"
)

// Font keys accepted in theme tokens.
const (
	FontSystem = "system"
	FontInter  = "inter"
	FontSerif  = "serif"
)

// PageSpec is the structured description of one landing page.
type PageSpec struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Theme       string       `json:"theme,omitempty" validate:"omitempty,oneof=minimal playful elegant cyber"`
	Accent      string       `json:"accent,omitempty"`
	ThemeTokens *ThemeTokens `json:"themeTokens,omitempty"`
	Hero        Hero         `json:"hero"`
	Features    Features     `json:"features"`
	CTA         CTA          `json:"cta"`
	Footer      Footer       `json:"footer"`

	Testimonials *Testimonials `json:"testimonials,omitempty"`
	Pricing      *Pricing      `json:"pricing,omitempty"`
	FAQ          *FAQ          `json:"faq,omitempty"`
}

// ThemeTokens are the visual overrides applied on top of a theme.
type ThemeTokens struct {
	Accent string `json:"accent,omitempty"`
	Radius string `json:"radius,omitempty"`
	Font   string `json:"font,omitempty" validate:"omitempty,oneof=system inter serif"`
}

// IsZero reports whether no token is set.
func (t *ThemeTokens) IsZero() bool {
	return t == nil || (t.Accent == "" && t.Radius == "" && t.Font == "")
}

// Merge returns t with every non-empty field of over applied on top.
func (t ThemeTokens) Merge(over *ThemeTokens) ThemeTokens {
	if over == nil {
		return t
	}
	if over.Accent != "" {
		t.Accent = over.Accent
	}
	if over.Radius != "" {
		t.Radius = over.Radius
	}
	if over.Font != "" {
		t.Font = over.Font
	}
	return t
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	CTAText     string `json:"ctaText,omitempty"`
}

type Features struct {
	Title string        `json:"title"`
	Items []FeatureItem `json:"items" validate:"required,dive"`
}

// FeatureItem is either a bare label or a label with an icon. Bare items
// marshal back to a plain JSON string.
type FeatureItem struct {
	Label string
	Icon  string
	Bare  bool
}

// Label builds a bare feature item.
func Label(label string) FeatureItem {
	return FeatureItem{Label: label, Bare: true}
}

// UnmarshalJSON accepts a string or a {label, icon} object.
func (f *FeatureItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var label string
		if err := json.Unmarshal(trimmed, &label); err != nil {
			return err
		}
		*f = FeatureItem{Label: label, Bare: true}
		return nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &json.UnmarshalTypeError{Value: jsonKind(trimmed), Type: featureItemType}
	}

	var obj struct {
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	*f = FeatureItem{Label: obj.Label, Icon: obj.Icon}
	return nil
}

// MarshalJSON writes the same shape that was read.
func (f FeatureItem) MarshalJSON() ([]byte, error) {
	if f.Bare {
		return json.Marshal(f.Label)
	}
	return json.Marshal(struct {
		Label string `json:"label"`
		Icon  string `json:"icon,omitempty"`
	}{f.Label, f.Icon})
}

type CTA struct {
	Headline string `json:"headline"`
	CTAText  string `json:"ctaText"`
}

type Footer struct {
	Smallprint string `json:"smallprint"`
}

type Testimonials struct {
	Title string        `json:"title,omitempty"`
	Items []Testimonial `json:"items" validate:"required,dive"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Pricing struct {
	Title string        `json:"title,omitempty"`
	Plans []PricingPlan `json:"plans" validate:"required,dive"`
}

type PricingPlan struct {
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Features  []string `json:"features,omitempty"`
	CTAText   string   `json:"ctaText,omitempty"`
	Highlight bool     `json:"highlight,omitempty"`
}

type FAQ struct {
	Title string    `json:"title,omitempty"`
	Items []FAQItem `json:"items" validate:"required,dive"`
}

// FAQItem holds either the short {q, a} or the long {question, answer}
// naming. Renderers read it through Normalize.
type FAQItem struct {
	Q        string `json:"q,omitempty"`
	A        string `json:"a,omitempty"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// Normalize returns the canonical question/answer pair.
func (f FAQItem) Normalize() (question, answer string) {
	question = f.Question
	if question == "" {
		question = f.Q
	}
	answer = f.Answer
	if answer == "" {
		answer = f.A
	}
	return question, answer
}

// Clone returns a deep copy so callers can mutate arrays freely.
func (s *PageSpec) Clone() *PageSpec {
	if s == nil {
		return nil
	}
	out := *s
	if s.ThemeTokens != nil {
		tokens := *s.ThemeTokens
		out.ThemeTokens = &tokens
	}
	out.Features.Items = append([]FeatureItem(nil), s.Features.Items...)
	if s.Testimonials != nil {
		t := *s.Testimonials
		t.Items = append([]Testimonial(nil), s.Testimonials.Items...)
		out.Testimonials = &t
	}
	if s.Pricing != nil {
		p := *s.Pricing
		p.Plans = make([]PricingPlan, len(s.Pricing.Plans))
		for i, plan := range s.Pricing.Plans {
			plan.Features = append([]string(nil), plan.Features...)
			p.Plans[i] = plan
		}
		out.Pricing = &p
	}
	if s.FAQ != nil {
		f := *s.FAQ
		f.Items = append([]FAQItem(nil), s.FAQ.Items...)
		out.FAQ = &f
	}
	return &out
}

// MarshalIndent renders the specification as the two-space indented JSON
// used for page.json.
func (s *PageSpec) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode spec: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}
	switch data[0] {
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	case '{':
		return "object"
	case '"':
		return "string"
	default:
		return "number"
	}
}
