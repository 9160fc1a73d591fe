package prompts

import "fmt"

// SystemPrompt frames the model as a JSON-only landing page planner.
const SystemPrompt = "You are a landing page planner. You answer with a single JSON object and nothing else."

// GetPageSpecPrompt returns the user prompt asking for one PageSpec document.
func GetPageSpecPrompt(userPrompt string) string {
	prompt := `
		A user has described the landing page they want:

		---
		"%s"
		---

		Describe the page as a single JSON object with this exact shape:

		` + "```json" + `
		{
			"title": "string (required)",
			"subtitle": "string",
			"hero": { "headline": "string (required)", "subheadline": "string", "ctaText": "string" },
			"features": {
				"title": "string (required)",
				"items": [ { "label": "string", "icon": "/icons/check.svg" } ]
			},
			"testimonials": { "title": "string", "items": [ { "quote": "string", "author": "string" } ] },
			"pricing": {
				"title": "string",
				"plans": [ { "name": "string", "price": "string", "features": ["string"], "ctaText": "string", "highlight": false } ]
			},
			"faq": { "title": "string", "items": [ { "question": "string", "answer": "string" } ] },
			"cta": { "headline": "string (required)", "ctaText": "string (required)" },
			"footer": { "smallprint": "string (required)" }
		}
		` + "```" + `

		Rules:
		1.  Include "testimonials", "pricing" and "faq" only when they suit the description.
			If the user names none of them, include all three.
		2.  Use 3 to 6 feature items and at most 3 pricing plans.
		3.  Keep copy short: headlines under 8 words, answers under 25 words.
		4.  Do not add "theme", "themeTokens" or any other field; styling is applied later.

		Only return the JSON object. No explanation, no markdown.
	`
	return fmt.Sprintf(prompt, userPrompt)
}
