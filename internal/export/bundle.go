// Package export packages a generated page as a downloadable archive or a
// directory of files.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"pagespec_server/internal/generator"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/types"
	"pagespec_server/internal/utils"
)

// Bundle file names, in archive order.
const (
	PageHTML   = "page.html"
	PageJSON   = "page.json"
	NextJSPage = "nextjs-page.tsx"
	Readme     = "README.md"
)

//go:embed templates/nextjs-page.tsx templates/README.md.tmpl
var templateFS embed.FS

var readmeTemplate = template.Must(template.ParseFS(templateFS, "templates/README.md.tmpl"))

// Meta is the reproducibility record written to README.md.
type Meta struct {
	Seed              int64
	StyleMode         string
	ChosenTheme       string
	PresetsVersion    string
	VariationStrategy string
	Engine            string
	Theme             string
	Tokens            spec.ThemeTokens
}

// MetaFromResult copies the reproducibility fields of a generate result.
func MetaFromResult(res *generator.Result) Meta {
	m := Meta{
		Seed:              res.Seed,
		StyleMode:         string(res.StyleMode),
		ChosenTheme:       res.ChosenTheme,
		PresetsVersion:    res.PresetsVersion,
		VariationStrategy: string(res.VariationStrategy),
		Engine:            string(res.Engine),
	}
	if res.Spec != nil {
		m.Theme = res.Spec.Theme
		if res.Spec.ThemeTokens != nil {
			m.Tokens = *res.Spec.ThemeTokens
		}
	}
	return m
}

// Bundle is the ordered set of files that make up one export.
type Bundle struct {
	Files []types.GeneratedFile
}

// NewBundle assembles the export files for a generate result.
func NewBundle(res *generator.Result) (*Bundle, error) {
	if res == nil || res.Spec == nil {
		return nil, types.NewPackagingError(PageJSON, fmt.Errorf("no specification to export"))
	}

	pageJSON, err := res.Spec.MarshalIndent()
	if err != nil {
		return nil, types.NewPackagingError(PageJSON, err)
	}

	component, err := templateFS.ReadFile("templates/" + NextJSPage)
	if err != nil {
		return nil, types.NewPackagingError(NextJSPage, err)
	}

	var readme bytes.Buffer
	if err := readmeTemplate.Execute(&readme, MetaFromResult(res)); err != nil {
		return nil, types.NewPackagingError(Readme, err)
	}

	b := &Bundle{}
	b.add(PageHTML, res.HTML)
	b.add(PageJSON, string(pageJSON))
	b.add(NextJSPage, string(component))
	b.add(Readme, readme.String())
	return b, nil
}

func (b *Bundle) add(name, content string) {
	b.Files = append(b.Files, types.GeneratedFile{
		Filename: name,
		Type:     utils.DetermineFileType(name),
		Content:  content,
	})
}

// File returns the named file.
func (b *Bundle) File(name string) (types.GeneratedFile, bool) {
	for _, f := range b.Files {
		if f.Filename == name {
			return f, true
		}
	}
	return types.GeneratedFile{}, false
}
