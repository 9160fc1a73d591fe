package api

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pagespec_server/internal/brand"
	"pagespec_server/internal/export"
	"pagespec_server/internal/generator"
	"pagespec_server/internal/logger"
	"pagespec_server/internal/render"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/theme"
	"pagespec_server/internal/types"
	"pagespec_server/internal/urlstate"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator   *generator.Service
	brand       *brand.Fetcher
	log         *logger.Logger
	coreVersion string
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen *generator.Service, brandFetcher *brand.Fetcher, log *logger.Logger, coreVersion string) *APIHandler {
	return &APIHandler{
		generator:   gen,
		brand:       brandFetcher,
		log:         log,
		coreVersion: coreVersion,
	}
}

// --- Structs for API Requests/Responses ---

// GenerateRequest is the JSON body accepted by generate and export. Fields
// are decoded loosely: a value of the wrong JSON type is logged and treated
// as absent, and a seed must be a finite number.
type GenerateRequest struct {
	Prompt            any `json:"prompt"`
	Seed              any `json:"seed"`
	Theme             any `json:"theme"`
	ThemeTokens       any `json:"themeTokens"`
	AutoStyle         any `json:"autoStyle"`
	StyleMode         any `json:"styleMode"`
	VariationStrategy any `json:"variationStrategy"`
	Engine            any `json:"engine"`
}

type BrandRequest struct {
	URL string `json:"url"`
}

type BrandResponse struct {
	OK          bool         `json:"ok"`
	ThemeTokens brand.Tokens `json:"themeTokens"`
}

type PresetsResponse struct {
	OK      bool           `json:"ok"`
	Version string         `json:"version"`
	Presets []theme.Preset `json:"presets"`
}

type HealthResponse struct {
	OK   bool   `json:"ok"`
	Core string `json:"core"`
}

type ErrorResponse struct {
	OK     bool          `json:"ok"`
	Error  string        `json:"error"`
	Issues []types.Issue `json:"issues,omitempty"`
}

// --- API Handlers ---

// GET /api/generate
func (h *APIHandler) GenerateFromQuery(c *gin.Context) {
	opts := h.optionsFromQuery(c)

	res, err := h.generator.Generate(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/generate
func (h *APIHandler) Generate(c *gin.Context) {
	opts, ok := h.optionsFromBody(c)
	if !ok {
		return
	}

	res, err := h.generator.Generate(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/export
func (h *APIHandler) ExportFromQuery(c *gin.Context) {
	h.export(c, h.optionsFromQuery(c))
}

// POST /api/export
func (h *APIHandler) Export(c *gin.Context) {
	opts, ok := h.optionsFromBody(c)
	if !ok {
		return
	}
	h.export(c, opts)
}

func (h *APIHandler) export(c *gin.Context, opts generator.Options) {
	res, err := h.generator.Generate(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	bundle, err := export.NewBundle(res)
	if err != nil {
		h.respondError(c, err)
		return
	}
	archive, err := export.BuildZip(bundle)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.WithFields(map[string]any{"seed": res.Seed, "bytes": len(archive)}).Debug("export archive built")
	c.Header("Content-Disposition", `attachment; filename="export.zip"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, export.ContentType, archive)
}

// GET /api/preview?spec=<json> or ?example=true
func (h *APIHandler) PreviewFromQuery(c *gin.Context) {
	raw := []byte(c.Query("spec"))
	if c.Query("example") == "true" {
		raw = spec.ExampleJSON
	} else if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "spec or example=true required"})
		return
	}
	h.preview(c, raw)
}

// POST /api/preview with the raw specification as body
func (h *APIHandler) Preview(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	h.preview(c, raw)
}

func (h *APIHandler) preview(c *gin.Context, raw []byte) {
	page, err := spec.Parse(raw)
	if err != nil {
		h.respondError(c, err)
		return
	}

	html := render.HTML(page)
	if c.Query("dev") == "1" {
		html = render.InjectDevCSS(html)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GET /api/presets
func (h *APIHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, PresetsResponse{
		OK:      true,
		Version: theme.PresetsVersion(),
		Presets: theme.Presets(),
	})
}

// GET /api/brand?url=
func (h *APIHandler) BrandFromQuery(c *gin.Context) {
	h.brandTokens(c, c.Query("url"))
}

// POST /api/brand
func (h *APIHandler) Brand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	h.brandTokens(c, req.URL)
}

func (h *APIHandler) brandTokens(c *gin.Context, target string) {
	if strings.TrimSpace(target) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing url"})
		return
	}
	c.JSON(http.StatusOK, BrandResponse{OK: true, ThemeTokens: h.brand.Tokens(c.Request.Context(), target)})
}

// GET /api/spec-example
func (h *APIHandler) SpecExample(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", spec.ExampleJSON)
}

// GET /api/health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{OK: true, Core: h.coreVersion})
}

func (h *APIHandler) optionsFromQuery(c *gin.Context) generator.Options {
	opts := urlstate.FromValues(c.Request.URL.Query()).Options()
	opts.Engine = generator.Engine(c.Query("engine"))
	return opts
}

// optionsFromBody binds a GenerateRequest. An empty body means all defaults.
func (h *APIHandler) optionsFromBody(c *gin.Context) (generator.Options, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return generator.Options{}, false
	}

	return generator.Options{
		Prompt:            h.stringFromJSON("prompt", req.Prompt),
		Seed:              h.seedFromJSON(req.Seed),
		Theme:             h.stringFromJSON("theme", req.Theme),
		ThemeTokens:       h.tokensFromJSON(req.ThemeTokens),
		AutoStyle:         h.boolFromJSON("autoStyle", req.AutoStyle),
		StyleMode:         generator.StyleMode(h.stringFromJSON("styleMode", req.StyleMode)),
		VariationStrategy: h.stringFromJSON("variationStrategy", req.VariationStrategy),
		Engine:            generator.Engine(h.stringFromJSON("engine", req.Engine)),
	}, true
}

func (h *APIHandler) malformed(field string, value any, reason string) {
	h.log.Warn(types.NewMalformedInputError(field, fmt.Sprint(value), reason).Error())
}

// seedFromJSON accepts a finite JSON number and truncates it.
func (h *APIHandler) seedFromJSON(value any) *int64 {
	if value == nil {
		return nil
	}
	if n, ok := value.(float64); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		seed := int64(n)
		return &seed
	}
	h.malformed("seed", value, "not a finite number")
	return nil
}

func (h *APIHandler) stringFromJSON(field string, value any) string {
	if value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		h.malformed(field, value, "not a string")
	}
	return s
}

func (h *APIHandler) boolFromJSON(field string, value any) *bool {
	if value == nil {
		return nil
	}
	b, ok := value.(bool)
	if !ok {
		h.malformed(field, value, "not a boolean")
		return nil
	}
	return &b
}

// tokensFromJSON keeps the string members of a themeTokens object.
func (h *APIHandler) tokensFromJSON(value any) *spec.ThemeTokens {
	if value == nil {
		return nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		h.malformed("themeTokens", value, "not an object")
		return nil
	}
	tokens := spec.ThemeTokens{
		Accent: h.stringFromJSON("themeTokens.accent", obj["accent"]),
		Radius: h.stringFromJSON("themeTokens.radius", obj["radius"]),
		Font:   h.stringFromJSON("themeTokens.font", obj["font"]),
	}
	if tokens.IsZero() {
		return nil
	}
	return &tokens
}
