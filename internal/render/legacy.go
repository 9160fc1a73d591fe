package render

import (
	"strings"

	"pagespec_server/internal/spec"
)

// Legacy renders an unstyled, id-addressed document. It is the fallback
// for specifications that carry no theme.
func Legacy(s *spec.PageSpec) string {
	var features strings.Builder
	for _, item := range s.Features.Items {
		if item.Bare {
			features.WriteString(`<li>` + esc(item.Label) + `</li>`)
			continue
		}
		icon := optional(item.Icon, `<img src="`+escAttr(item.Icon)+`" alt="icon" />`)
		features.WriteString(`<li>` + icon + `<span>` + esc(item.Label) + `</span></li>`)
	}

	var testimonials string
	if t := s.Testimonials; t != nil {
		var cards strings.Builder
		for _, item := range t.Items {
			cards.WriteString(testimonialCard(item))
		}
		testimonials = `<section id="testimonials">` + optional(t.Title, `<h2>`+esc(t.Title)+`</h2>`) +
			`<div class="cards">` + cards.String() + `</div></section>`
	}

	var pricing string
	if p := s.Pricing; p != nil {
		var plans strings.Builder
		for _, plan := range p.Plans {
			var feats string
			if len(plan.Features) > 0 {
				var li strings.Builder
				for _, f := range plan.Features {
					li.WriteString(`<li>` + esc(f) + `</li>`)
				}
				feats = `<ul class="features"> ` + li.String() + `</ul>`
			}
			plans.WriteString("<article class=\"plan\">\n  <h3>" + esc(plan.Name) + "</h3>\n  <p class=\"price\">" +
				esc(plan.Price) + "</p>\n  " + feats + "\n</article>")
		}
		pricing = `<section id="pricing">` + optional(p.Title, `<h2>`+esc(p.Title)+`</h2>`) +
			`<div class="plans">` + plans.String() + `</div></section>`
	}

	var faq string
	if f := s.FAQ; f != nil {
		var entries strings.Builder
		for _, item := range f.Items {
			q, a := item.Normalize()
			entries.WriteString(`<div class="faq-item"><dt>` + esc(q) + `</dt><dd>` + esc(a) + `</dd></div>`)
		}
		faq = `<section id="faq">` + optional(f.Title, `<h2>`+esc(f.Title)+`</h2>`) +
			`<dl class="faq-list">` + entries.String() + `</dl></section>`
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8" /><title>` + esc(s.Title) +
		`</title><meta name="viewport" content="width=device-width, initial-scale=1" /></head><body>` + "\n\n")
	b.WriteString("  <section id=\"hero\">\n")
	b.WriteString("    <h1>" + esc(s.Hero.Headline) + "</h1>\n")
	b.WriteString("    " + optional(s.Subtitle, `<h2>`+esc(s.Subtitle)+`</h2>`) + "\n")
	b.WriteString("    " + optional(s.Hero.Subheadline, `<p class="subheadline">`+esc(s.Hero.Subheadline)+`</p>`) + "\n")
	b.WriteString("    " + optional(s.Hero.CTAText, `<button>`+esc(s.Hero.CTAText)+`</button>`) + "\n")
	b.WriteString("  </section>\n\n")
	b.WriteString("  <section id=\"features\">\n")
	b.WriteString("    <h2>" + esc(s.Features.Title) + "</h2>\n")
	b.WriteString("    <ul class=\"grid\">\n      " + features.String() + "\n    </ul>\n")
	b.WriteString("  </section>\n\n")
	b.WriteString("  " + testimonials + "\n  " + pricing + "\n  " + faq + "\n\n")
	b.WriteString("  <section id=\"cta\">\n")
	b.WriteString("    <h2>" + esc(s.CTA.Headline) + "</h2>\n")
	b.WriteString("    <button>" + esc(s.CTA.CTAText) + "</button>\n")
	b.WriteString("  </section>\n\n")
	b.WriteString("  <footer id=\"footer\"><small>" + esc(s.Footer.Smallprint) + "</small></footer>\n\n")
	b.WriteString("</body></html>")
	return b.String()
}
