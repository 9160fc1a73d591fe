// Package theme holds the static style tables: per-theme class bundles,
// the preset list and prompt keyword detection.
package theme

import "pagespec_server/internal/spec"

// Classes is the Tailwind class bundle used by the themed renderer.
type Classes struct {
	Body          string
	H1            string
	H2            string
	Button        string
	Card          string
	Grid          string
	DefaultAccent string
}

const defaultGrid = "grid grid-cols-1 md:grid-cols-3 gap-6"

var classTable = map[string]Classes{
	spec.ThemeMinimal: {
		Body:          "bg-white text-slate-900",
		H1:            "text-4xl font-bold",
		H2:            "text-2xl font-semibold text-slate-700",
		Button:        "px-4 py-2 rounded-md bg-blue-600 text-white hover:bg-blue-500 transition",
		Card:          "rounded-md border border-slate-200 p-5 bg-white",
		Grid:          defaultGrid,
		DefaultAccent: "#3b82f6",
	},
	spec.ThemePlayful: {
		Body:          "bg-yellow-50 text-slate-900",
		H1:            "text-4xl font-extrabold text-pink-600",
		H2:            "text-2xl font-bold text-pink-500",
		Button:        "px-4 py-2 rounded-xl bg-pink-600 text-white hover:opacity-90 transition",
		Card:          "rounded-2xl shadow-md p-5 bg-white",
		Grid:          defaultGrid,
		DefaultAccent: "#ec4899",
	},
	spec.ThemeElegant: {
		Body:          "bg-white text-slate-900",
		H1:            "text-4xl font-semibold tracking-tight",
		H2:            "text-2xl font-medium text-slate-700",
		Button:        "px-4 py-2 rounded-md bg-slate-900 text-white hover:bg-slate-800 transition",
		Card:          "rounded-lg border border-slate-200 p-5 bg-white",
		Grid:          defaultGrid,
		DefaultAccent: "#0f172a",
	},
	spec.ThemeCyber: {
		Body:          "bg-black text-green-300",
		H1:            "text-4xl font-black text-green-400",
		H2:            "text-2xl font-bold text-green-300",
		Button:        "px-4 py-2 rounded-md bg-green-500 text-black hover:bg-green-400 transition",
		Card:          "rounded-lg border border-green-800 p-5 bg-black/40",
		Grid:          defaultGrid,
		DefaultAccent: "#22c55e",
	},
}

// ClassesFor returns the bundle for name. Unknown or empty names get minimal.
func ClassesFor(name string) Classes {
	if c, ok := classTable[name]; ok {
		return c
	}
	return classTable[spec.ThemeMinimal]
}

// FontFamily maps a font token to a CSS font stack. Unknown keys use system.
func FontFamily(font string) string {
	switch font {
	case spec.FontInter:
		return "Inter, ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, 'Apple Color Emoji','Segoe UI Emoji'"
	case spec.FontSerif:
		return "ui-serif, Georgia, Cambria, 'Times New Roman', Times, serif"
	default:
		return "ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, 'Apple Color Emoji','Segoe UI Emoji'"
	}
}
