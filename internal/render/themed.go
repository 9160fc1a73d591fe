package render

import (
	"strings"

	"pagespec_server/internal/spec"
	"pagespec_server/internal/theme"
)

const defaultRadius = "10px"

// cssVars are the custom properties injected into a themed document.
type cssVars struct {
	Accent string
	Radius string
	Font   string
}

// resolveVars applies tokens over the spec accent over the theme default.
func resolveVars(s *spec.PageSpec, c theme.Classes) cssVars {
	v := cssVars{Accent: c.DefaultAccent, Radius: defaultRadius, Font: theme.FontFamily(spec.FontSystem)}
	if s.Accent != "" {
		v.Accent = s.Accent
	}
	if t := s.ThemeTokens; t != nil {
		if t.Accent != "" {
			v.Accent = t.Accent
		}
		if t.Radius != "" {
			v.Radius = t.Radius
		}
		if t.Font != "" {
			v.Font = theme.FontFamily(t.Font)
		}
	}
	return v
}

// Themed renders s with the class bundle of its theme and a :root block
// carrying --accent, --radius and --font.
func Themed(s *spec.PageSpec) string {
	cls := theme.ClassesFor(s.Theme)
	vars := resolveVars(s, cls)

	themeName := s.Theme
	if themeName == "" {
		themeName = spec.ThemeMinimal
	}

	items := make([]string, 0, len(s.Features.Items))
	for _, it := range s.Features.Items {
		if it.Bare {
			items = append(items, `<li class="`+cls.Card+` rounded-token"><span>`+esc(it.Label)+`</span></li>`)
			continue
		}
		icon := optional(it.Icon, `<img src="`+escAttr(it.Icon)+`" alt="" class="inline-block mr-2 h-6 w-6 align-middle">`)
		items = append(items, `<li class="`+cls.Card+` rounded-token">`+icon+`<span class="align-middle">`+esc(it.Label)+`</span></li>`)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\" /><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	b.WriteString("  <title>" + esc(s.Title) + "</title>\n")
	b.WriteString("  <script src=\"https://cdn.tailwindcss.com\"></script>\n")
	b.WriteString("  <style>\n    :root{\n")
	b.WriteString("      --accent:" + esc(vars.Accent) + ";\n")
	b.WriteString("      --radius:" + esc(vars.Radius) + ";\n")
	b.WriteString("      --font:" + vars.Font + ";\n")
	b.WriteString("    }\n    .rounded-token{ border-radius: var(--radius); }\n    .font-token{ font-family: var(--font); }\n  </style>\n")
	b.WriteString("</head>\n")
	b.WriteString(`<body class="` + cls.Body + ` font-token" data-theme="` + escAttr(themeName) + `">` + "\n")
	b.WriteString("  <main class=\"container mx-auto px-6 py-10 space-y-12\">\n")

	b.WriteString("    <section id=\"hero\" class=\"space-y-3\">\n")
	b.WriteString(`      <h1 class="` + cls.H1 + `">` + esc(s.Hero.Headline) + "</h1>\n")
	b.WriteString("      " + optional(s.Subtitle, `<h2 class="`+cls.H2+`">`+esc(s.Subtitle)+`</h2>`) + "\n")
	b.WriteString("      " + optional(s.Hero.Subheadline, `<p class="text-slate-600">`+esc(s.Hero.Subheadline)+`</p>`) + "\n")
	b.WriteString("      " + optional(s.Hero.CTAText, accentButton(cls, "", s.Hero.CTAText)) + "\n")
	b.WriteString("    </section>\n\n")

	b.WriteString("    <section id=\"features\" class=\"space-y-4\">\n")
	b.WriteString(`      <h2 class="` + cls.H2 + `">` + esc(s.Features.Title) + "</h2>\n")
	b.WriteString(`      <ul class="` + cls.Grid + `">` + "\n")
	b.WriteString(strings.Join(items, "\n") + "\n")
	b.WriteString("      </ul>\n    </section>\n\n")

	b.WriteString("    " + themedTestimonials(s.Testimonials, cls) + themedPricing(s.Pricing, cls) + themedFAQ(s.FAQ, cls) + "\n\n")

	b.WriteString("    <section id=\"cta\" class=\"space-y-3\">\n")
	b.WriteString(`      <h2 class="` + cls.H2 + `">` + esc(s.CTA.Headline) + "</h2>\n")
	b.WriteString("      " + accentButton(cls, "", s.CTA.CTAText) + "\n")
	b.WriteString("    </section>\n")
	b.WriteString("  </main>\n")
	b.WriteString("  <footer class=\"container mx-auto px-6 pb-10 text-sm opacity-70\">" + esc(s.Footer.Smallprint) + "</footer>\n")
	b.WriteString("</body>\n</html>")
	return b.String()
}

func accentButton(cls theme.Classes, extra, text string) string {
	classes := cls.Button
	if extra != "" {
		classes += " " + extra
	}
	return `<button class="` + classes + ` rounded-token" style="background: var(--accent)">` + esc(text) + `</button>`
}

func sectionTitle(title string, cls theme.Classes) string {
	return optional(title, `<h2 class="`+cls.H2+`">`+esc(title)+`</h2>`)
}

func themedTestimonials(t *spec.Testimonials, cls theme.Classes) string {
	if t == nil {
		return ""
	}
	var cards strings.Builder
	for _, i := range t.Items {
		quote := `<blockquote class="italic">“` + esc(i.Quote) + `”</blockquote>`
		var cite string
		if i.Avatar != "" || i.Author != "" {
			cite = `<div class="mt-3 flex items-center gap-3">` +
				optional(i.Avatar, ` <img src="`+escAttr(i.Avatar)+`" alt="`+escAttr(i.Author)+`" class="h-8 w-8 rounded-full">`) +
				optional(i.Author, ` <span class="text-sm text-slate-600">— `+esc(i.Author)+`</span>`) +
				`</div>`
		}
		cards.WriteString(`<article class="` + cls.Card + ` rounded-token">` + quote + cite + `</article>`)
	}
	return "\n    <section id=\"testimonials\" class=\"space-y-4\">\n      " + sectionTitle(t.Title, cls) +
		"\n      <div class=\"" + cls.Grid + "\">\n        " + cards.String() + "\n      </div>\n    </section>"
}

func themedPricing(p *spec.Pricing, cls theme.Classes) string {
	if p == nil {
		return ""
	}
	var plans strings.Builder
	for _, plan := range p.Plans {
		var feats string
		if len(plan.Features) > 0 {
			var li strings.Builder
			for _, f := range plan.Features {
				li.WriteString(` <li>• ` + esc(f) + `</li>`)
			}
			feats = `<ul class="mt-3 space-y-1">` + li.String() + `</ul>`
		}
		ring := "ring-0"
		if plan.Highlight {
			ring = "ring-2 ring-[var(--accent)]"
		}
		plans.WriteString(`<article class="` + cls.Card + ` rounded-token ` + ring + `"><h3 class="text-xl font-semibold">` + esc(plan.Name) +
			`</h3><p class="price text-3xl font-bold mt-1" style="color: var(--accent)">` + esc(plan.Price) + `</p>` + feats +
			optional(plan.CTAText, accentButton(cls, "mt-3", plan.CTAText)) + `</article>`)
	}
	return "\n    <section id=\"pricing\" class=\"space-y-4\">\n      " + sectionTitle(p.Title, cls) +
		"\n      <div class=\"" + cls.Grid + "\">\n        " + plans.String() + "\n      </div>\n    </section>"
}

func themedFAQ(f *spec.FAQ, cls theme.Classes) string {
	if f == nil {
		return ""
	}
	var entries strings.Builder
	for _, item := range f.Items {
		q, a := item.Normalize()
		entries.WriteString(`<div class="` + cls.Card + ` rounded-token"><dt class="font-semibold">` + esc(q) +
			`</dt><dd class="text-slate-600 mt-1">` + esc(a) + `</dd></div>`)
	}
	return "\n    <section id=\"faq\" class=\"space-y-4\">\n      " + sectionTitle(f.Title, cls) +
		"\n      <dl class=\"space-y-3\">\n        " + entries.String() + "\n      </dl>\n    </section>"
}
