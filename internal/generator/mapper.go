package generator

import (
	"regexp"

	"pagespec_server/internal/spec"
)

var (
	kidsPattern         = regexp.MustCompile(`(?i)kids|เด็ก`)
	testimonialsPattern = regexp.MustCompile(`(?i)testimonials?`)
	pricingPattern      = regexp.MustCompile(`(?i)pricing|price|plan`)
	faqPattern          = regexp.MustCompile(`(?i)faq|questions?`)
)

const (
	checkIcon   = "/icons/check.svg"
	defaultCopy = "Generated from a single prompt using the PageSpec adapter"
	smallprint  = "© 2025 Flowgami – Demo only"
)

type pageCopy struct {
	title         string
	headline      string
	subheadline   string
	featuresTitle string
	features      []string
	ctaHeadline   string
	ctaText       string
}

var (
	kidsCopy = pageCopy{
		title:         "AI Math for Kids",
		headline:      "Make Math Fun!",
		subheadline:   "Interactive exercises for elementary school students",
		featuresTitle: "Why choose us?",
		features:      []string{"Interactive exercises", "Progress tracking", "Designed for kids"},
		ctaHeadline:   "Start your free trial today!",
		ctaText:       "Sign Up",
	}
	productCopy = pageCopy{
		title:         "AI Product Landing",
		headline:      "Make It Real in Seconds",
		subheadline:   "Type a prompt → get a full landing page preview",
		featuresTitle: "Highlights",
		features:      []string{"Prompt → Spec → HTML", "Deterministic preview", "Export-ready output"},
		ctaHeadline:   "Ready to ship your page?",
		ctaText:       "Export Now",
	}
)

// PromptToSpec maps a prompt to a specification using keyword matching
// only. Every call builds a fresh value.
//
// When the prompt asks for none of testimonials, pricing or FAQ, all three
// blocks are included.
func PromptToSpec(prompt string) *spec.PageSpec {
	wantsKids := kidsPattern.MatchString(prompt)
	wantsTestimonials := testimonialsPattern.MatchString(prompt)
	wantsPricing := pricingPattern.MatchString(prompt)
	wantsFAQ := faqPattern.MatchString(prompt)
	includeAll := !(wantsTestimonials || wantsPricing || wantsFAQ)

	c := productCopy
	if wantsKids {
		c = kidsCopy
	}

	items := make([]spec.FeatureItem, 0, len(c.features))
	for _, label := range c.features {
		items = append(items, spec.FeatureItem{Label: label, Icon: checkIcon})
	}

	s := &spec.PageSpec{
		Title:    c.title,
		Subtitle: defaultCopy,
		Accent:   "#3b82f6",
		Hero: spec.Hero{
			Headline:    c.headline,
			Subheadline: c.subheadline,
			CTAText:     "Get Started",
		},
		Features: spec.Features{Title: c.featuresTitle, Items: items},
		CTA:      spec.CTA{Headline: c.ctaHeadline, CTAText: c.ctaText},
		Footer:   spec.Footer{Smallprint: smallprint},
	}

	if wantsTestimonials || includeAll {
		s.Testimonials = &spec.Testimonials{
			Title: "Loved by teams",
			Items: []spec.Testimonial{
				{Quote: "It just works.", Author: "Jane", Avatar: "/avatars/jane.png"},
				{Quote: "Boosted our speed 10x.", Author: "Alex"},
			},
		}
	}
	if wantsPricing || includeAll {
		s.Pricing = &spec.Pricing{
			Title: "Simple pricing",
			Plans: []spec.PricingPlan{
				{Name: "Starter", Price: "$9/mo", Features: []string{"1 project", "Email support"}},
				{Name: "Pro", Price: "$29/mo", Features: []string{"Unlimited projects", "Priority support"}},
			},
		}
	}
	if wantsFAQ || includeAll {
		s.FAQ = &spec.FAQ{
			Title: "FAQ",
			Items: []spec.FAQItem{
				{Q: "Can I export?", A: "Yes, as HTML or Next.js."},
				{Q: "Is there a free plan?", A: "Yes, with basic features."},
			},
		}
	}

	return s
}
