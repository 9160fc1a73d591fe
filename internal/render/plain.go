package render

import (
	"strings"

	"pagespec_server/internal/spec"
)

// HTML is the plain renderer used by preview: class-named sections on a
// single line, styled by the Tailwind CDN.
func HTML(s *spec.PageSpec) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charSet="utf-8" /><meta name="viewport" content="width=device-width, initial-scale=1" /><title>`)
	b.WriteString(esc(s.Title))
	b.WriteString(`</title><script src="https://cdn.tailwindcss.com"></script></head><body class="text-slate-900"><main class="container mx-auto px-6 py-10 space-y-12">`)

	b.WriteString(`<section class="hero"><h1>` + esc(s.Hero.Headline) + `</h1>`)
	b.WriteString(optional(s.Subtitle, `<h2>`+esc(s.Subtitle)+`</h2>`))
	b.WriteString(optional(s.Hero.Subheadline, `<p class="subheadline">`+esc(s.Hero.Subheadline)+`</p>`))
	b.WriteString(optional(s.Hero.CTAText, `<button>`+esc(s.Hero.CTAText)+`</button>`))
	b.WriteString(`</section>`)

	b.WriteString(`<section class="features"><h2>` + esc(s.Features.Title) + `</h2><ul class="grid">`)
	for _, item := range s.Features.Items {
		b.WriteString(`<li class="list-disc ml-5">`)
		if !item.Bare && item.Icon != "" {
			b.WriteString(`<img src="` + escAttr(item.Icon) + `" alt=""> `)
		}
		b.WriteString(esc(item.Label) + `</li>`)
	}
	b.WriteString(`</ul></section>`)

	if t := s.Testimonials; t != nil {
		b.WriteString(`<section class="testimonials">`)
		b.WriteString(optional(t.Title, `<h2>`+esc(t.Title)+`</h2>`))
		b.WriteString(`<div class="cards">`)
		for _, item := range t.Items {
			b.WriteString(testimonialCard(item))
		}
		b.WriteString(`</div></section>`)
	}

	if p := s.Pricing; p != nil {
		b.WriteString(`<section class="pricing">`)
		b.WriteString(optional(p.Title, `<h2>`+esc(p.Title)+`</h2>`))
		b.WriteString(`<div class="plans">`)
		for _, plan := range p.Plans {
			classes := "plan"
			if plan.Highlight {
				classes += " highlight"
			}
			b.WriteString(`<article class="` + classes + `"><h3>` + esc(plan.Name) + `</h3><p class="price">` + esc(plan.Price) + `</p>`)
			if len(plan.Features) > 0 {
				b.WriteString(`<ul class="features">`)
				for _, f := range plan.Features {
					b.WriteString(`<li>` + esc(f) + `</li>`)
				}
				b.WriteString(`</ul>`)
			}
			b.WriteString(optional(plan.CTAText, `<button>`+esc(plan.CTAText)+`</button>`))
			b.WriteString(`</article>`)
		}
		b.WriteString(`</div></section>`)
	}

	if f := s.FAQ; f != nil {
		b.WriteString(`<section class="faq">`)
		b.WriteString(optional(f.Title, `<h2>`+esc(f.Title)+`</h2>`))
		b.WriteString(`<dl>`)
		for _, item := range f.Items {
			q, a := item.Normalize()
			b.WriteString(`<dt>` + esc(q) + `</dt><dd>` + esc(a) + `</dd>`)
		}
		b.WriteString(`</dl></section>`)
	}

	b.WriteString(`<section class="cta"><h2>` + esc(s.CTA.Headline) + `</h2><button>` + esc(s.CTA.CTAText) + `</button></section>`)
	b.WriteString(`</main><footer class="smallprint">` + esc(s.Footer.Smallprint) + `</footer></body></html>`)

	return b.String()
}

func testimonialCard(item spec.Testimonial) string {
	avatar := ""
	if item.Avatar != "" {
		alt := "avatar"
		if item.Author != "" {
			alt = escAttr(item.Author)
		}
		avatar = `<img src="` + escAttr(item.Avatar) + `" alt="` + alt + `" />`
	}
	cite := optional(item.Author, `<cite>`+esc(item.Author)+`</cite>`)
	return `<article class="testimonial">` + avatar + `<blockquote>` + esc(item.Quote) + `</blockquote>` + cite + `</article>`
}
