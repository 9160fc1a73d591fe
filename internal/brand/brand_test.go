package brand

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pagespec_server/internal/logger"
	"pagespec_server/internal/spec"
)

func TestParseHTMLThemeColor(t *testing.T) {
	t.Parallel()

	got := ParseHTML(`<html><head><meta name="theme-color" content="#ff00aa"></head></html>`)
	require.Equal(t, Tokens{Accent: "#ff00aa", Font: spec.FontSystem}, got)

	reversed := ParseHTML(`<meta content="#00FF00" name="Theme-Color"/>`)
	require.Equal(t, "#00ff00", reversed.Accent)
}

func TestParseHTMLColorFallbacks(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#aabbcc", ParseHTML(`<style>a{color:#abc}</style>`).Accent)
	require.Equal(t, "#123456", ParseHTML(`<p style="color: #123456; border: #fff">x</p>`).Accent)
	require.Equal(t, "#228b22", ParseHTML(`<meta name="theme-color" content="rgba(34, 139, 34, 0.5)">`).Accent)
	require.Equal(t, "#ff0000", ParseHTML(`<meta name="theme-color" content="rgb(300,0,0)">`).Accent)
	require.Empty(t, ParseHTML(`<meta name="theme-color" content="tomato">`).Accent)
	require.Empty(t, ParseHTML(`<p>plain</p>`).Accent)
}

func TestParseHTMLFonts(t *testing.T) {
	t.Parallel()

	inter := ParseHTML(`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;700&display=swap">`)
	require.Equal(t, spec.FontInter, inter.Font)

	serif := ParseHTML(`<link href="https://fonts.googleapis.com/css?family=Merriweather&amp;display=swap" rel="stylesheet">`)
	require.Equal(t, spec.FontSerif, serif.Font)

	inline := ParseHTML(`<style>body { font-family: Georgia, serif; }</style>`)
	require.Equal(t, spec.FontSerif, inline.Font)

	inlineInter := ParseHTML(`<body style="font-family: 'Inter', sans-serif">`)
	require.Equal(t, spec.FontInter, inlineInter.Font)

	require.Equal(t, spec.FontSystem, ParseHTML(`<body style="font-family: Arial">`).Font)
	require.Equal(t, spec.FontSystem, ParseHTML("").Font)
}

func TestToHexColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff00aa", ToHexColor("  #FF00AA "))
	require.Equal(t, "#aabbcc", ToHexColor("#abc"))
	require.Equal(t, "#000000", ToHexColor("rgb(0,0,0)"))
	require.Empty(t, ToHexColor("#ab"))
	require.Empty(t, ToHexColor("hsl(0, 100%, 50%)"))
}

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://example.com", SanitizeURL("example.com"))
	require.Equal(t, "http://example.com/a?b=1", SanitizeURL("http://example.com/a?b=1"))
	require.Equal(t, "https://example.com", SanitizeURL("HTTPS://example.com"))
	require.Empty(t, SanitizeURL("ftp://example.com"))
	require.Empty(t, SanitizeURL("file:///etc/passwd"))
	require.Empty(t, SanitizeURL("   "))
	require.Empty(t, SanitizeURL("http://"))
}

func TestFetcherTokens(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.UserAgent() != "Prompt-to-UI BrandBot/1.0" {
			http.Error(w, "bad agent", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><meta name="theme-color" content="#ff00aa">`+
			`<link href="https://fonts.googleapis.com/css2?family=Lora" rel="stylesheet"></head></html>`)
	}))
	defer srv.Close()

	tokens := NewFetcher(time.Second, logger.Nop()).Tokens(context.Background(), srv.URL)
	require.Equal(t, Tokens{Accent: "#ff00aa", Font: spec.FontSerif}, tokens)
}

func TestFetcherSoftFailures(t *testing.T) {
	t.Parallel()

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer notFound.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()

	f := NewFetcher(50*time.Millisecond, nil)
	ctx := context.Background()

	require.Equal(t, Tokens{}, f.Tokens(ctx, notFound.URL))
	require.Equal(t, Tokens{}, f.Tokens(ctx, slow.URL))
	require.Equal(t, Tokens{}, f.Tokens(ctx, "ftp://example.com"))
	require.Equal(t, Tokens{}, f.Tokens(ctx, ""))
}

func TestTokensThemeTokens(t *testing.T) {
	t.Parallel()

	require.Equal(t, &spec.ThemeTokens{Accent: "#ff00aa", Font: spec.FontInter}, Tokens{Accent: "#ff00aa", Font: spec.FontInter}.ThemeTokens())
}
