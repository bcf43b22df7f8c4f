package twind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassNameRendering(t *testing.T) {
	tests := []struct {
		name  string
		class Class[Display]
		want  string
	}{
		{
			name:  "no modifiers renders bare name",
			class: New[Display]("flex"),
			want:  "flex",
		},
		{
			name:  "single modifier",
			class: Hover(New[Display]("flex")),
			want:  "hover:flex",
		},
		{
			name:  "stacked modifiers render outermost first",
			class: Dark(MD(Hover(New[Display]("flex")))),
			want:  "dark:md:hover:flex",
		},
		{
			name:  "breakpoint only",
			class: LG(New[Display]("grid")),
			want:  "lg:grid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.class.ClassName())
		})
	}
}

func TestClassNameStackingExample(t *testing.T) {
	// The canonical composition: in dark mode, at the medium breakpoint,
	// on hover.
	c := Dark(MD(Hover(New[BackgroundColor]("bg-fuchsia-600"))))
	require.Equal(t, "dark:md:hover:bg-fuchsia-600", c.ClassName())
}

func TestSingleModifierPrefixesRendering(t *testing.T) {
	base := MD(New[Display]("flex"))
	require.Equal(t, "hover:"+base.ClassName(), Hover(base).ClassName())
}

func TestEmptyModifiersNoSeparator(t *testing.T) {
	c := New[Width]("w-full")
	rendered := c.ClassName()
	require.Equal(t, "w-full", rendered)
	assert.NotContains(t, rendered, ":")
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	base := New[Display]("flex")
	derived := Hover(base)

	require.Equal(t, "flex", base.ClassName())
	require.Equal(t, "hover:flex", derived.ClassName())

	// Deriving twice from the same value must not let the chains bleed
	// into each other.
	focused := Focus(base)
	require.Equal(t, "hover:flex", derived.ClassName())
	require.Equal(t, "focus:flex", focused.ClassName())
}

func TestDerivedValuesShareNoState(t *testing.T) {
	base := Hover(New[Display]("flex"))
	a := Dark(base)
	b := MD(base)

	require.Equal(t, "dark:hover:flex", a.ClassName())
	require.Equal(t, "md:hover:flex", b.ClassName())
	require.Equal(t, "hover:flex", base.ClassName())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Class[Display]
		want bool
	}{
		{
			name: "same name no modifiers",
			a:    New[Display]("flex"),
			b:    New[Display]("flex"),
			want: true,
		},
		{
			name: "different construction paths same chain",
			a:    Dark(Hover(New[Display]("flex"))),
			b:    New[Display]("flex").With(ModHover).With(ModDark),
			want: true,
		},
		{
			name: "modifier order is significant",
			a:    Dark(Hover(New[Display]("flex"))),
			b:    Hover(Dark(New[Display]("flex"))),
			want: false,
		},
		{
			name: "different base names",
			a:    New[Display]("flex"),
			b:    New[Display]("grid"),
			want: false,
		},
		{
			name: "modifier count differs",
			a:    Hover(New[Display]("flex")),
			b:    New[Display]("flex"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestCatalogConstructionIsStable(t *testing.T) {
	// Constructing the same declaration twice yields equal values; no
	// hidden global state affects catalog constants.
	first := New[Display]("flex")
	second := New[Display]("flex")
	require.True(t, first.Equal(second))
	require.True(t, first.Equal(Flex))
}

func TestModifiersAccessorReturnsCopy(t *testing.T) {
	c := Dark(Hover(New[Display]("flex")))

	mods := c.Modifiers()
	require.Len(t, mods, 2)
	require.Equal(t, "dark", mods[0].Name())
	require.Equal(t, "hover", mods[1].Name())

	mods[0] = ModFocus
	require.Equal(t, "dark:hover:flex", c.ClassName(), "mutating the returned slice must not affect the class")
}

func TestBase(t *testing.T) {
	c := Dark(Hover(New[BackgroundColor]("bg-sky-500")))
	require.Equal(t, "bg-sky-500", c.Base())
	require.Equal(t, "dark:hover:bg-sky-500", c.ClassName())
}
