package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/chartview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "chartview.yml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "bar", cfg.Kind)
	assert.Equal(t, float64(DefaultWidth), cfg.Width)
	assert.Equal(t, float64(DefaultHeight), cfg.Height)
	assert.Equal(t, []string{FormatSVG}, cfg.Format)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	p, err := cfg.GetPalette()
	require.NoError(t, err)
	assert.Equal(t, chartview.Category10, p)
}

func TestLoad_File(t *testing.T) {
	file := writeConfig(t, `
kind: pie
title: Languages
width: 1024
format: [svg, png]
palette:
  - steelblue
  - "#ff7f0e"
log-level: debug
`)
	cfg, err := Load(file, nil)
	require.NoError(t, err)
	assert.Equal(t, "pie", cfg.Kind)
	assert.Equal(t, "Languages", cfg.Title)
	assert.Equal(t, 1024.0, cfg.Width)
	assert.Equal(t, float64(DefaultHeight), cfg.Height)
	assert.Equal(t, []string{FormatSVG, FormatPNG}, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)

	p, err := cfg.GetPalette()
	require.NoError(t, err)
	assert.Equal(t, chartview.Palette{"steelblue", "#ff7f0e"}, p)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	file := writeConfig(t, "kind: pie\ntitle: from file\n")
	t.Setenv("CHARTVIEW_TITLE", "from env")
	t.Setenv("CHARTVIEW_LOG_LEVEL", "warn")

	cfg, err := Load(file, map[string]any{
		"kind":   "hbar",
		"format": "png,svg",
	})
	require.NoError(t, err)
	assert.Equal(t, "hbar", cfg.Kind)
	assert.Equal(t, "from env", cfg.Title)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{FormatPNG, FormatSVG}, cfg.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "bar", cfg.Kind)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		Name     string
		Override map[string]any
		Option   string
	}{
		{Name: "kind", Override: map[string]any{"kind": "radar"}, Option: "kind"},
		{Name: "width", Override: map[string]any{"width": -1}, Option: "width"},
		{Name: "height", Override: map[string]any{"height": 0}, Option: "height"},
		{Name: "format", Override: map[string]any{"format": "gif"}, Option: "format"},
		{Name: "palette", Override: map[string]any{"palette": "red,notacolor"}, Option: "palette"},
		{Name: "theme", Override: map[string]any{"theme": "solarized"}, Option: "palette"},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Load("", tt.Override)
			require.Error(t, err)

			var oe OptionError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, tt.Option, oe.Option)
			assert.ErrorIs(t, err, chartview.ErrInvalidConfiguration)
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	cfg := Config{
		Kind:  "pie",
		Title: "sales",
		Theme: ThemeTableau10,
	}
	var count int
	ch := chartview.New(chartview.WithInvalidate(func() { count++ }))
	require.NoError(t, cfg.Apply(ch))
	assert.Equal(t, chartview.Pie, ch.Kind())
	assert.Equal(t, "sales", ch.Title())
	assert.Equal(t, chartview.Tableau10, ch.Palette())
	assert.Equal(t, 3, count)

	cfg.Kind = "radar"
	assert.Error(t, cfg.Apply(ch))
	assert.Equal(t, chartview.Pie, ch.Kind())
}
