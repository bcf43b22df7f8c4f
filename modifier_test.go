package twind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModifierHelpers(t *testing.T) {
	base := New[Display]("flex")

	tests := []struct {
		name  string
		apply func(Class[Display]) Class[Display]
		token string
	}{
		{"hover", Hover[Display], "hover"},
		{"focus", Focus[Display], "focus"},
		{"focus-within", FocusWithin[Display], "focus-within"},
		{"focus-visible", FocusVisible[Display], "focus-visible"},
		{"active", Active[Display], "active"},
		{"visited", Visited[Display], "visited"},
		{"checked", Checked[Display], "checked"},
		{"disabled", Disabled[Display], "disabled"},
		{"group-hover", GroupHover[Display], "group-hover"},
		{"first", First[Display], "first"},
		{"last", Last[Display], "last"},
		{"odd", Odd[Display], "odd"},
		{"even", Even[Display], "even"},
		{"dark", Dark[Display], "dark"},
		{"motion-reduce", MotionReduce[Display], "motion-reduce"},
		{"sm", SM[Display], "sm"},
		{"md", MD[Display], "md"},
		{"lg", LG[Display], "lg"},
		{"xl", XL[Display], "xl"},
		{"2xl", XXL[Display], "2xl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(base)
			require.Equal(t, tt.token+":flex", got.ClassName())
		})
	}
}

func TestModifierTokensAreWellFormed(t *testing.T) {
	all := []Modifier{
		ModHover, ModFocus, ModFocusWithin, ModFocusVisible, ModActive,
		ModVisited, ModChecked, ModDisabled, ModGroupHover,
		ModFirst, ModLast, ModOdd, ModEven,
		ModDark, ModMotionReduce,
		ModSM, ModMD, ModLG, ModXL, Mod2XL,
	}

	seen := make(map[string]bool)
	for _, m := range all {
		require.NotEmpty(t, m.Name())
		require.False(t, strings.Contains(m.Name(), ":"),
			"modifier %q contains the chain separator", m.Name())
		require.False(t, seen[m.Name()], "duplicate modifier token %q", m.Name())
		seen[m.Name()] = true
	}
}

func TestWithPrepends(t *testing.T) {
	c := New[Display]("flex").With(ModHover).With(ModMD).With(ModDark)

	mods := c.Modifiers()
	require.Equal(t, "dark", mods[0].Name())
	require.Equal(t, "md", mods[1].Name())
	require.Equal(t, "hover", mods[2].Name())
	require.Equal(t, "dark:md:hover:flex", c.ClassName())
}
