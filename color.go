package twind

import "strconv"

// ColorName identifies a palette family such as "fuchsia" or "sky".
type ColorName string

// Palette families. These mirror the default Tailwind palette; the theme
// CSS file consumed by the generator is the source of truth for which
// families actually exist in a project.
const (
	Slate   ColorName = "slate"
	Gray    ColorName = "gray"
	Zinc    ColorName = "zinc"
	Neutral ColorName = "neutral"
	Stone   ColorName = "stone"
	Red     ColorName = "red"
	Orange  ColorName = "orange"
	Amber   ColorName = "amber"
	Yellow  ColorName = "yellow"
	Lime    ColorName = "lime"
	Green   ColorName = "green"
	Emerald ColorName = "emerald"
	Teal    ColorName = "teal"
	Cyan    ColorName = "cyan"
	Sky     ColorName = "sky"
	Blue    ColorName = "blue"
	Indigo  ColorName = "indigo"
	Violet  ColorName = "violet"
	Purple  ColorName = "purple"
	Fuchsia ColorName = "fuchsia"
	Pink    ColorName = "pink"
	Rose    ColorName = "rose"
)

// Shade is a palette lightness step.
type Shade int

// Shade steps, lightest to darkest.
const (
	S50  Shade = 50
	S100 Shade = 100
	S200 Shade = 200
	S300 Shade = 300
	S400 Shade = 400
	S500 Shade = 500
	S600 Shade = 600
	S700 Shade = 700
	S800 Shade = 800
	S900 Shade = 900
	S950 Shade = 950
)

// Color builds a palette class for any color-bearing property group. The
// palette is declared once here; every group conforming to ColorProperty
// gains it without redeclaring anything:
//
//	twind.Color[twind.BackgroundColor](twind.Fuchsia, twind.S600)
//	// renders "bg-fuchsia-600"
//
// The named constants in colors.gen.go cover the same space; Color is the
// capability-protocol entry point they are generated through.
func Color[P ColorProperty](name ColorName, shade Shade) Class[P] {
	var p P
	return New[P](p.colorPrefix() + "-" + string(name) + "-" + strconv.Itoa(int(shade)))
}

// The non-scaled palette entries shared by every color-bearing group.

// Black builds the solid black class for the group P, e.g. "bg-black".
func Black[P ColorProperty]() Class[P] { return colorKeyword[P]("black") }

// White builds the solid white class for the group P, e.g. "text-white".
func White[P ColorProperty]() Class[P] { return colorKeyword[P]("white") }

// Transparent builds the transparent class for the group P.
func Transparent[P ColorProperty]() Class[P] { return colorKeyword[P]("transparent") }

// Current builds the currentColor class for the group P.
func Current[P ColorProperty]() Class[P] { return colorKeyword[P]("current") }

// Inherit builds the inherited-color class for the group P.
func Inherit[P ColorProperty]() Class[P] { return colorKeyword[P]("inherit") }

func colorKeyword[P ColorProperty](keyword string) Class[P] {
	var p P
	return New[P](p.colorPrefix() + "-" + keyword)
}
