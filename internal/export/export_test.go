package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"pagespec_server/internal/generator"
	"pagespec_server/internal/logger"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/types"
)

func generate(t *testing.T, seed int64) *generator.Result {
	t.Helper()

	res, err := generator.New().Generate(context.Background(), generator.Options{
		Prompt:      "landing page with pricing",
		Seed:        &seed,
		Theme:       "elegant",
		ThemeTokens: &spec.ThemeTokens{Accent: "#ff00aa"},
	})
	require.NoError(t, err)
	return res
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string, len(zr.File))
	var order []string
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(content)
		order = append(order, f.Name)
	}
	require.Equal(t, []string{PageHTML, PageJSON, NextJSPage, Readme}, order)
	return out
}

func TestBuildZipIsByteStable(t *testing.T) {
	t.Parallel()

	first, err := NewBundle(generate(t, 789))
	require.NoError(t, err)
	second, err := NewBundle(generate(t, 789))
	require.NoError(t, err)

	a, err := BuildZip(first)
	require.NoError(t, err)
	b, err := BuildZip(second)
	require.NoError(t, err)
	require.Equal(t, a, b)

	other, err := NewBundle(generate(t, 790))
	require.NoError(t, err)
	c, err := BuildZip(other)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestZipContents(t *testing.T) {
	t.Parallel()

	res := generate(t, 789)
	bundle, err := NewBundle(res)
	require.NoError(t, err)
	data, err := BuildZip(bundle)
	require.NoError(t, err)

	files := readZip(t, data)
	require.Equal(t, res.HTML, files[PageHTML])

	parsed, err := spec.Parse([]byte(files[PageJSON]))
	require.NoError(t, err)
	require.Equal(t, res.Spec, parsed)
	require.Contains(t, files[PageJSON], "\n  \"title\": ")

	require.Contains(t, files[NextJSPage], "export const sampleSpec")
	require.Contains(t, files[NextJSPage], "export default function LandingPage")

	readme := files[Readme]
	require.Contains(t, readme, "# Prompt-to-UI Export")
	require.Contains(t, readme, "Seed: 789")
	require.Contains(t, readme, "Style mode: auto")
	require.Contains(t, readme, "Chosen theme: elegant")
	require.Contains(t, readme, "Presets version: "+res.PresetsVersion)
	require.Contains(t, readme, "Variation strategy: auto")
	require.Contains(t, readme, "Theme: elegant")
	require.Contains(t, readme, "  - accent: #ff00aa")
	require.Contains(t, readme, "  - radius: 8px")
}

func TestReadmeDefaultsWithoutTheme(t *testing.T) {
	t.Parallel()

	seed := int64(1)
	res, err := generator.New().Generate(context.Background(), generator.Options{Prompt: "landing page", Seed: &seed})
	require.NoError(t, err)

	bundle, err := NewBundle(res)
	require.NoError(t, err)
	readme, ok := bundle.File(Readme)
	require.True(t, ok)
	require.Equal(t, "Markdown", readme.Type)
	require.Contains(t, readme.Content, "Chosen theme: (none)")
	require.Contains(t, readme.Content, "Theme: (not provided)")
	require.Contains(t, readme.Content, "  - font:   (n/a)")
}

func TestNewBundleRejectsEmptyResult(t *testing.T) {
	t.Parallel()

	_, err := NewBundle(nil)
	var pkgErr *types.PackagingError
	require.True(t, errors.As(err, &pkgErr))

	_, err = NewBundle(&generator.Result{})
	require.True(t, errors.As(err, &pkgErr))
}

func TestDirWriterWritesBundle(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	bundle, err := NewBundle(generate(t, 42))
	require.NoError(t, err)

	paths, err := NewDirWriter(fs, logger.Nop()).Write(context.Background(), "/out/site", bundle)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for _, f := range bundle.Files {
		content, err := afero.ReadFile(fs, filepath.Join("/out/site", f.Filename))
		require.NoError(t, err)
		require.Equal(t, f.Content, string(content))
	}
}

func TestDirWriterReportsPackagingError(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	bundle, err := NewBundle(generate(t, 42))
	require.NoError(t, err)

	_, err = NewDirWriter(fs, nil).Write(context.Background(), "/out", bundle)
	var pkgErr *types.PackagingError
	require.True(t, errors.As(err, &pkgErr))
}
