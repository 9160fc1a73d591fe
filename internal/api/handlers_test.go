package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pagespec_server/internal/brand"
	"pagespec_server/internal/generator"
	"pagespec_server/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gen := generator.New(
		generator.WithLogger(logger.Nop()),
		generator.WithSeedSource(func() int64 { return 4242 }),
	)
	h := NewAPIHandler(gen, brand.NewFetcher(2*time.Second, logger.Nop()), logger.Nop(), "test-core")
	return NewRouter(h)
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type generateBody struct {
	Spec struct {
		Title    string `json:"title"`
		Features struct {
			Items []json.RawMessage `json:"items"`
		} `json:"features"`
	} `json:"spec"`
	HTML              string `json:"html"`
	Seed              int64  `json:"seed"`
	ChosenTheme       string `json:"chosenTheme"`
	ThemeSource       string `json:"themeSource"`
	PresetsVersion    string `json:"presetsVersion"`
	VariationStrategy string `json:"variationStrategy"`
	Engine            string `json:"engine"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"core":"test-core"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/health", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestGenerateFromQuery(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/generate?prompt=Landing+page+for+AI+Math+SaaS+for+kids&seed=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[generateBody](t, rec)
	require.Equal(t, int64(2), body.Seed)
	require.Equal(t, "playful", body.ChosenTheme)
	require.Equal(t, "prompt", body.ThemeSource)
	require.Equal(t, "2025.09-1", body.PresetsVersion)
	require.Equal(t, "mapper", body.Engine)
	require.Contains(t, body.HTML, "<!DOCTYPE html>")
	require.NotEmpty(t, body.Spec.Features.Items)
}

func TestGeneratePost(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/generate", `{"prompt":"cyber landing","seed":7.9,"theme":"elegant","autoStyle":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[generateBody](t, rec)
	require.Equal(t, int64(7), body.Seed)
	require.Equal(t, "elegant", body.ChosenTheme)
	require.Equal(t, "explicit", body.ThemeSource)

	rec = serve(t, router, http.MethodPost, "/api/generate", `{"prompt":"  ","seed":"soon"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[generateBody](t, rec)
	require.Equal(t, int64(4242), body.Seed)
	require.Equal(t, "AI Math for Kids", body.Spec.Title)
}

func TestGeneratePostEmptyBodyUsesDefaults(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodPost, "/api/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(4242), decode[generateBody](t, rec).Seed)
}

func TestGeneratePostCoercesWrongTypes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/generate", `{"prompt":42,"seed":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[generateBody](t, rec)
	require.Equal(t, int64(2), body.Seed)
	require.Equal(t, "AI Math for Kids", body.Spec.Title)

	for _, payload := range []string{
		`{"prompt":"cyber landing","theme":5}`,
		`{"prompt":"cyber landing","autoStyle":"yes"}`,
		`{"prompt":"cyber landing","themeTokens":"blue"}`,
		`{"prompt":"cyber landing","themeTokens":{"accent":7,"radius":"4px"},"styleMode":[],"variationStrategy":{}}`,
	} {
		rec := serve(t, router, http.MethodPost, "/api/generate", payload)
		require.Equal(t, http.StatusOK, rec.Code, payload)
		require.Equal(t, "AI Product Landing", decode[generateBody](t, rec).Spec.Title, payload)
	}

	rec = serve(t, router, http.MethodPost, "/api/export", `{"prompt":false,"seed":789}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
}

func TestGeneratePostRejectsBadJSON(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodPost, "/api/generate", `{"prompt":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[ErrorResponse](t, rec)
	require.False(t, body.OK)
	require.Contains(t, body.Error, "Invalid request body")
}

func TestExport(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	payload := `{"prompt":"Landing page for AI Math SaaS for kids","seed":789}`

	first := serve(t, router, http.MethodPost, "/api/export", payload)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "application/zip", first.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="export.zip"`, first.Header().Get("Content-Disposition"))
	require.Equal(t, "no-store", first.Header().Get("Cache-Control"))

	second := serve(t, router, http.MethodPost, "/api/export", payload)
	require.True(t, bytes.Equal(first.Body.Bytes(), second.Body.Bytes()))

	archive, err := zip.NewReader(bytes.NewReader(first.Body.Bytes()), int64(first.Body.Len()))
	require.NoError(t, err)
	var names []string
	for _, f := range archive.File {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"page.html", "page.json", "nextjs-page.tsx", "README.md"}, names)

	query := serve(t, router, http.MethodGet, "/api/export?prompt=Landing+page+for+AI+Math+SaaS+for+kids&seed=789", "")
	require.Equal(t, http.StatusOK, query.Code)
	require.True(t, bytes.Equal(first.Body.Bytes(), query.Body.Bytes()))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/preview?example=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "Make Math Fun!")
	require.NotContains(t, rec.Body.String(), "box-sizing")

	rec = serve(t, router, http.MethodGet, "/api/preview?example=true&dev=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "box-sizing: border-box")

	rec = serve(t, router, http.MethodGet, "/api/preview", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "spec or example=true required", decode[ErrorResponse](t, rec).Error)
}

func TestPreviewPost(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	valid := `{"title":"Bakery","hero":{"headline":"Fresh <bread>"},"features":{"title":"Why","items":["Sourdough"]},"cta":{"headline":"Visit","ctaText":"Go"},"footer":{"smallprint":"x"}}`

	rec := serve(t, router, http.MethodPost, "/api/preview", valid)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Fresh &lt;bread&gt;")

	rec = serve(t, router, http.MethodPost, "/api/preview", `{"title":"Only a title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[ErrorResponse](t, rec)
	require.False(t, body.OK)
	require.NotEmpty(t, body.Issues)

	rec = serve(t, router, http.MethodPost, "/api/preview", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresets(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK      bool   `json:"ok"`
		Version string `json:"version"`
		Presets []struct {
			ID    string `json:"id"`
			Theme string `json:"theme"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.OK)
	require.Equal(t, "2025.09-1", body.Version)
	require.Len(t, body.Presets, 7)
	require.Equal(t, "minimal", body.Presets[0].ID)
}

func TestSpecExample(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/spec-example", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "AI Math SaaS", body["title"])
}

func TestBrand(t *testing.T) {
	t.Parallel()

	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><meta name="theme-color" content="#ff00aa"></head><body></body></html>`))
	}))
	t.Cleanup(site.Close)

	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/brand", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing url", decode[ErrorResponse](t, rec).Error)

	rec = serve(t, router, http.MethodPost, "/api/brand", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/brand?url="+site.URL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"themeTokens":{"accent":"#ff00aa","font":"system"}}`, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/api/brand", `{"url":"ftp://example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"themeTokens":{}}`, rec.Body.String())
}
