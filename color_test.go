package twind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorUsesGroupPrefix(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"background", Color[BackgroundColor](Fuchsia, S600).ClassName(), "bg-fuchsia-600"},
		{"text", Color[TextColor](Fuchsia, S600).ClassName(), "text-fuchsia-600"},
		{"border", Color[BorderColor](Sky, S500).ClassName(), "border-sky-500"},
		{"ring", Color[RingColor](Slate, S50).ClassName(), "ring-slate-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestColorKeywords(t *testing.T) {
	require.Equal(t, "bg-black", Black[BackgroundColor]().ClassName())
	require.Equal(t, "text-white", White[TextColor]().ClassName())
	require.Equal(t, "border-transparent", Transparent[BorderColor]().ClassName())
	require.Equal(t, "ring-current", Current[RingColor]().ClassName())
	require.Equal(t, "text-inherit", Inherit[TextColor]().ClassName())
}

func TestGeneratedCatalogMatchesAccessors(t *testing.T) {
	// The generated constants and the generic palette accessors declare the
	// same space.
	require.True(t, BgFuchsia600.Equal(Color[BackgroundColor](Fuchsia, S600)))
	require.True(t, TextSlate50.Equal(Color[TextColor](Slate, S50)))
	require.True(t, BorderRose950.Equal(Color[BorderColor](Rose, S950)))
	require.True(t, RingBlack.Equal(Black[RingColor]()))
}

func TestSameTokenDifferentGroupsRenderIndependently(t *testing.T) {
	// "text-white" under TextColor and a same-named token declared under
	// another color group are distinct types; they only happen to share
	// rendering logic. Rendering stays per-group prefixed.
	require.Equal(t, "text-white", White[TextColor]().ClassName())
	require.Equal(t, "bg-white", White[BackgroundColor]().ClassName())
}

func TestGeneratedColorsStackWithModifiers(t *testing.T) {
	c := Dark(MD(Hover(BgFuchsia600)))
	require.Equal(t, "dark:md:hover:bg-fuchsia-600", c.ClassName())
}

func TestCatalogSpotChecks(t *testing.T) {
	require.Equal(t, "flex", Flex.ClassName())
	require.Equal(t, "items-center", ItemsCenter.ClassName())
	require.Equal(t, "rounded-lg", RoundedLG.ClassName())
	require.Equal(t, "text-2xl", Text2XL.ClassName())
	require.Equal(t, "w-1/2", WHalf.ClassName())
}
