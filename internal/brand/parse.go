// Package brand guesses theme tokens (accent colour and font) from the HTML
// of an existing site.
package brand

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"pagespec_server/internal/spec"
)

// Tokens is the best-effort result of a brand scan. Empty fields mean no
// hint was found.
type Tokens struct {
	Accent string `json:"accent,omitempty"`
	Font   string `json:"font,omitempty"`
}

// ThemeTokens converts t for use as generate input.
func (t Tokens) ThemeTokens() *spec.ThemeTokens {
	return &spec.ThemeTokens{Accent: t.Accent, Font: t.Font}
}

var (
	hexColorPattern   = regexp.MustCompile(`#[0-9a-fA-F]{6}\b|#[0-9a-fA-F]{3}\b`)
	hex6Pattern       = regexp.MustCompile(`^#[0-9a-f]{6}\b`)
	hex3Pattern       = regexp.MustCompile(`^#[0-9a-f]{3}\b`)
	rgbPattern        = regexp.MustCompile(`(?i)rgba?\s*\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})`)
	fontFamilyPattern = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}{]+)`)
	googleFamily      = regexp.MustCompile(`(?i)family=([^:&]+)`)
)

// hints are the tag-level signals collected in one pass over the document.
type hints struct {
	themeColor string
	fontsHref  string
}

func scanTags(r io.Reader) hints {
	var h hints
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return h
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "meta":
				if h.themeColor == "" && strings.EqualFold(attr(tok, "name"), "theme-color") {
					h.themeColor = attr(tok, "content")
				}
			case "link":
				href := attr(tok, "href")
				if h.fontsHref == "" && strings.Contains(strings.ToLower(href), "fonts.googleapis.com") {
					h.fontsHref = href
				}
			}
		}
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// ParseHTML extracts tokens from a document. Font always resolves, falling
// back to system.
func ParseHTML(doc string) Tokens {
	h := scanTags(strings.NewReader(doc))

	var tokens Tokens
	candidate := h.themeColor
	if candidate == "" {
		candidate = hexColorPattern.FindString(doc)
	}
	if candidate != "" {
		tokens.Accent = ToHexColor(candidate)
	}

	tokens.Font = fontFromLink(h.fontsHref)
	if tokens.Font == "" {
		tokens.Font = fontFromInline(doc)
	}
	if tokens.Font == "" {
		tokens.Font = spec.FontSystem
	}
	return tokens
}

func fontFromLink(href string) string {
	m := googleFamily.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	family := m[1]
	if decoded, err := url.PathUnescape(family); err == nil {
		family = decoded
	}
	family = strings.ToLower(family)
	switch {
	case strings.Contains(family, "inter"):
		return spec.FontInter
	case strings.Contains(family, "merriweather"), strings.Contains(family, "georgia"), strings.Contains(family, "lora"):
		return spec.FontSerif
	}
	return ""
}

func fontFromInline(doc string) string {
	m := fontFamilyPattern.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	family := strings.ToLower(m[1])
	switch {
	case strings.Contains(family, "inter"):
		return spec.FontInter
	case strings.Contains(family, "serif"), strings.Contains(family, "georgia"), strings.Contains(family, "merriweather"):
		return spec.FontSerif
	}
	return ""
}

// ToHexColor normalizes #rrggbb, #rgb and rgb()/rgba() notations to
// lowercase #rrggbb. Anything else yields "".
func ToHexColor(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if hex6Pattern.MatchString(s) {
		return s[:7]
	}
	if hex3Pattern.MatchString(s) {
		r, g, b := s[1], s[2], s[3]
		return string([]byte{'#', r, r, g, g, b, b})
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("#%02x%02x%02x", channel(m[1]), channel(m[2]), channel(m[3]))
	}
	return ""
}

func channel(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return max(0, min(255, n))
}
