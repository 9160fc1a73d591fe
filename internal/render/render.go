// Package render turns a validated specification into a complete HTML
// document. All renderers are pure and escape every spec string.
package render

import (
	"strings"

	"pagespec_server/internal/spec"
)

var (
	escaper     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func esc(s string) string {
	return escaper.Replace(s)
}

// escAttr is esc plus the double quote, for values inside attribute quotes.
func escAttr(s string) string {
	return attrEscaper.Replace(s)
}

// optional returns content when cond is non-empty.
func optional(cond, content string) string {
	if cond == "" {
		return ""
	}
	return content
}

// Variant identifies one of the renderers.
type Variant string

const (
	VariantPlain  Variant = "plain"
	VariantLegacy Variant = "legacy"
	VariantThemed Variant = "themed"
)

// Choose picks the renderer for s: themed when the specification declares a
// theme, legacy otherwise.
func Choose(s *spec.PageSpec) Variant {
	if s.Theme != "" {
		return VariantThemed
	}
	return VariantLegacy
}

// Page renders s with the variant selected by Choose.
func Page(s *spec.PageSpec) string {
	switch Choose(s) {
	case VariantThemed:
		return Themed(s)
	default:
		return Legacy(s)
	}
}

// ByVariant renders s with an explicitly named variant.
func ByVariant(s *spec.PageSpec, v Variant) string {
	switch v {
	case VariantPlain:
		return HTML(s)
	case VariantThemed:
		return Themed(s)
	default:
		return Legacy(s)
	}
}

// InjectDevCSS adds a small stylesheet before </head> so plain output is
// readable without Tailwind.
func InjectDevCSS(html string) string {
	return strings.Replace(html, "</head>", devStyles+"</head>", 1)
}

const devStyles = `
<style>
        :root { --slate-100: #f1f5f9; --slate-200: #e2e8f0; --slate-800: #1f2937; --blue-500: #3b82f6; }
        * { box-sizing: border-box; }
        body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, Noto Sans, "Apple Color Emoji", "Segoe UI Emoji"; color: var(--slate-800); }
        main { max-width: 960px; margin: 0 auto; padding: 24px; }
        h1 { font-size: 2rem; margin-bottom: 0.25rem; }
        h2 { font-size: 1.25rem; margin: 0.25rem 0 0.5rem; }
        .hero .subheadline { color: #475569; margin: 0.25rem 0 0.5rem; }
        button { background: var(--blue-500); color: white; border: 0; padding: 8px 14px; border-radius: 8px; cursor: pointer; }
        .features .grid { display: grid; gap: 8px; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); }
        .features li { list-style: disc; margin-left: 1.25rem; }
        .testimonials .cards { display: grid; gap: 12px; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); }
        .testimonials .card { border: 1px solid var(--slate-200); border-radius: 10px; padding: 12px; background: white; }
        .testimonials footer { display: flex; align-items: center; gap: 8px; margin-top: 8px; }
        .testimonials footer img { width: 40px; height: 40px; border-radius: 9999px; border: 2px solid var(--slate-200); background: #fff; object-fit: cover; }
        .pricing .plans { display: grid; gap: 12px; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); }
        .pricing .plan { border: 1px solid var(--slate-200); border-radius: 10px; padding: 12px; }
        .pricing .plan.highlight { border-color: var(--blue-500); box-shadow: 0 0 0 2px rgba(59,130,246,0.15); }
        .pricing .price { font-weight: 600; margin: 6px 0; }
        .faq dt { font-weight: 600; margin-top: 8px; }
        .faq dd { margin: 4px 0 8px 0; color: #334155; }
        .cta { text-align: center; padding-top: 6px; }
      </style>
`
