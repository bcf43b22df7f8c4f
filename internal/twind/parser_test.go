package twind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name         string
		css          string
		wantFamilies map[string]map[int]string
	}{
		{
			name: "theme block",
			css: `@theme {
  --color-fuchsia-600: oklch(0.591 0.293 322.896);
  --color-fuchsia-700: oklch(0.518 0.253 323.949);
}`,
			wantFamilies: map[string]map[int]string{
				"fuchsia": {600: "oklch(0.591 0.293 322.896)", 700: "oklch(0.518 0.253 323.949)"},
			},
		},
		{
			name: "root selector",
			css:  `:root { --color-sky-500: #0ea5e9; }`,
			wantFamilies: map[string]map[int]string{
				"sky": {500: "#0ea5e9"},
			},
		},
		{
			name: "keyword entries are skipped",
			css: `@theme {
  --color-black: #000;
  --color-white: #fff;
  --color-rose-500: oklch(0.645 0.246 16.439);
}`,
			wantFamilies: map[string]map[int]string{
				"rose": {500: "oklch(0.645 0.246 16.439)"},
			},
		},
		{
			name: "non-color tokens are ignored",
			css: `@theme {
  --spacing-4: 1rem;
  --font-sans: ui-sans-serif, system-ui;
  --color-lime-300: oklch(0.897 0.196 127.385);
}`,
			wantFamilies: map[string]map[int]string{
				"lime": {300: "oklch(0.897 0.196 127.385)"},
			},
		},
		{
			name: "hyphenated family",
			css:  `@theme { --color-warm-gray-100: #f5f5f4; }`,
			wantFamilies: map[string]map[int]string{
				"warm-gray": {100: "#f5f5f4"},
			},
		},
		{
			name:         "no color declarations",
			css:          `.btn { color: red; }`,
			wantFamilies: map[string]map[int]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := NewTheme()
			require.NoError(t, ParseTheme(theme, tt.css, "test.css"))
			assert.Equal(t, tt.wantFamilies, theme.Families)
			assert.Equal(t, []string{"test.css"}, theme.Sources)
		})
	}
}

func TestParseThemeMergesFiles(t *testing.T) {
	theme := NewTheme()
	require.NoError(t, ParseTheme(theme, `@theme { --color-sky-500: #0ea5e9; }`, "a.css"))
	require.NoError(t, ParseTheme(theme, `@theme { --color-sky-600: #0284c7; }`, "b.css"))

	assert.Equal(t, map[int]string{500: "#0ea5e9", 600: "#0284c7"}, theme.Families["sky"])
	assert.Equal(t, []string{"a.css", "b.css"}, theme.Sources)
}

func TestParseThemeLaterFileWins(t *testing.T) {
	theme := NewTheme()
	require.NoError(t, ParseTheme(theme, `@theme { --color-sky-500: #111111; }`, "a.css"))
	require.NoError(t, ParseTheme(theme, `@theme { --color-sky-500: #222222; }`, "b.css"))

	assert.Equal(t, "#222222", theme.Families["sky"][500])
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		token      string
		wantFamily string
		wantShade  int
		wantOK     bool
	}{
		{"fuchsia-600", "fuchsia", 600, true},
		{"warm-gray-100", "warm-gray", 100, true},
		{"black", "", 0, false},
		{"white", "", 0, false},
		{"sky-", "", 0, false},
		{"-500", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			family, shade, ok := splitToken(tt.token)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantFamily, family)
			require.Equal(t, tt.wantShade, shade)
		})
	}
}
