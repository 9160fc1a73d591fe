package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", t.TempDir()))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommandJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "generate", "--prompt", "Landing page for AI Math SaaS for kids", "--seed", "2", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Seed        int64  `json:"seed"`
		ChosenTheme string `json:"chosenTheme"`
		HTML        string `json:"html"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, int64(2), res.Seed)
	require.Equal(t, "playful", res.ChosenTheme)
	require.Contains(t, res.HTML, "Make Math Fun!")
}

func TestGenerateCommandRejectsFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "generate", "--format", "pdf")
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archivePath := filepath.Join(dir, "export.zip")

	_, err := execute(t, "export", "--seed", "789", "--out", archivePath)
	require.NoError(t, err)

	raw, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	require.Len(t, archive.File, 4)

	bundleDir := filepath.Join(dir, "bundle")
	out, err := execute(t, "export", "--seed", "789", "--dir", bundleDir)
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 4)

	readme, err := os.ReadFile(filepath.Join(bundleDir, "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(readme), "Seed: 789")

	_, err = execute(t, "export")
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "preview", "--dev")
	require.NoError(t, err)
	require.Contains(t, out, "Make Math Fun!")
	require.Contains(t, out, "box-sizing")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"title":"x"}`), 0o644))
	_, err = execute(t, "preview", "--spec", bad)
	require.Error(t, err)
}

func TestPresetsCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "presets")
	require.NoError(t, err)
	require.Contains(t, out, "2025.09-1")
	require.Contains(t, out, "neon-glass")
}
