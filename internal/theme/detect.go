package theme

import (
	"regexp"
	"strings"
)

type keywordRule struct {
	preset  string
	pattern *regexp.Regexp
}

// Checked in order; the first match wins regardless of how many keywords
// of later rules also appear.
var detectRules = []keywordRule{
	{"playful", regexp.MustCompile(`playful|fun|vibrant|friendly|cute|kid|kids|youth`)},
	{"elegant", regexp.MustCompile(`elegant|sleek|refined|sophisticated|lux|premium`)},
	{"cyber", regexp.MustCompile(`cyber|neon|matrix|hacker|terminal|green on black|futuristic`)},
	{"pastel", regexp.MustCompile(`pastel|soft color|soft-colou?r|mint|peach|lavender`)},
	{"newspaper", regexp.MustCompile(`newspaper|editorial|monochrome|print|press|headline|serif`)},
	{"neon-glass", regexp.MustCompile(`glassmorphism|neon glass|glass|frosted|blur|glassy`)},
	{"minimal", regexp.MustCompile(`minimal|minimalist|simple|clean`)},
}

// DetectFromPrompt returns the preset id suggested by keywords in prompt.
func DetectFromPrompt(prompt string) (string, bool) {
	p := strings.ToLower(prompt)
	for _, rule := range detectRules {
		if rule.pattern.MatchString(p) {
			return rule.preset, true
		}
	}
	return "", false
}
