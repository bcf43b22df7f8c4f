package twind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTheme() *Theme {
	theme := NewTheme()
	theme.Families = map[string]map[int]string{
		"fuchsia": {600: "oklch(0.591 0.293 322.896)", 50: "oklch(0.977 0.017 320.058)"},
		"sky":     {500: "oklch(0.685 0.169 237.323)"},
	}
	theme.Sources = []string{"theme/colors.css"}
	return theme
}

func TestEmitColors(t *testing.T) {
	source, err := EmitColors(testTheme(), EmitOptions{
		PackageName: "twind",
		Sources:     []string{"theme/colors.css"},
	})
	require.NoError(t, err)

	got := string(source)

	assert.True(t, strings.HasPrefix(got, "// Code generated by twind. DO NOT EDIT.\n"))
	assert.Contains(t, got, "// Source: theme/colors.css\n")
	assert.Contains(t, got, "\npackage twind\n")

	// One palette block per conforming group, in table order.
	textIdx := strings.Index(got, `// TextColor palette ("text-" classes).`)
	bgIdx := strings.Index(got, `// BackgroundColor palette ("bg-" classes).`)
	borderIdx := strings.Index(got, `// BorderColor palette ("border-" classes).`)
	ringIdx := strings.Index(got, `// RingColor palette ("ring-" classes).`)
	require.True(t, textIdx >= 0 && bgIdx > textIdx && borderIdx > bgIdx && ringIdx > borderIdx)

	// Keywords precede families; shades are emitted ascending.
	assert.Contains(t, got, `New[BackgroundColor]("bg-black")`)
	fuchsia50 := strings.Index(got, `BgFuchsia50 `)
	fuchsia600 := strings.Index(got, `BgFuchsia600 `)
	require.True(t, fuchsia50 >= 0 && fuchsia600 > fuchsia50)

	assert.Contains(t, got, `New[RingColor]("ring-sky-500")`)
}

func TestEmitColorsIsDeterministic(t *testing.T) {
	opts := EmitOptions{PackageName: "twind", Sources: []string{"theme/colors.css"}}

	first, err := EmitColors(testTheme(), opts)
	require.NoError(t, err)
	second, err := EmitColors(testTheme(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmitColorsRequiresPackageName(t *testing.T) {
	_, err := EmitColors(testTheme(), EmitOptions{})
	require.Error(t, err)
}

func TestEmitColorsRequiresFamilies(t *testing.T) {
	_, err := EmitColors(NewTheme(), EmitOptions{PackageName: "twind"})
	require.Error(t, err)
}

func TestGoIdent(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"fuchsia", "Fuchsia"},
		{"warm-gray", "WarmGray"},
		{"black", "Black"},
		{"sky", "Sky"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, goIdent(tt.token))
		})
	}
}
