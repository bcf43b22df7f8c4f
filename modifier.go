package twind

// The supported variant modifiers. State variants scope a class to an
// element state, breakpoint variants to a minimum viewport width, and
// scheme variants to a color scheme.
var (
	// State variants
	ModHover        = Modifier{name: "hover"}
	ModFocus        = Modifier{name: "focus"}
	ModFocusWithin  = Modifier{name: "focus-within"}
	ModFocusVisible = Modifier{name: "focus-visible"}
	ModActive       = Modifier{name: "active"}
	ModVisited      = Modifier{name: "visited"}
	ModChecked      = Modifier{name: "checked"}
	ModDisabled     = Modifier{name: "disabled"}
	ModGroupHover   = Modifier{name: "group-hover"}

	// Position variants
	ModFirst = Modifier{name: "first"}
	ModLast  = Modifier{name: "last"}
	ModOdd   = Modifier{name: "odd"}
	ModEven  = Modifier{name: "even"}

	// Scheme and media variants
	ModDark         = Modifier{name: "dark"}
	ModMotionReduce = Modifier{name: "motion-reduce"}

	// Breakpoint variants
	ModSM  = Modifier{name: "sm"}
	ModMD  = Modifier{name: "md"}
	ModLG  = Modifier{name: "lg"}
	ModXL  = Modifier{name: "xl"}
	Mod2XL = Modifier{name: "2xl"}
)

// Per-variant application helpers. Each is a thin specialization of
// Class.With, fixing the modifier so that an invalid variant name is
// unrepresentable. They compose outward-to-inward:
//
//	Dark(MD(Hover(c)))  // "dark:md:hover:" + c.ClassName()

// Hover scopes c to the hover state.
func Hover[P Property](c Class[P]) Class[P] { return c.With(ModHover) }

// Focus scopes c to the focus state.
func Focus[P Property](c Class[P]) Class[P] { return c.With(ModFocus) }

// FocusWithin scopes c to elements containing focus.
func FocusWithin[P Property](c Class[P]) Class[P] { return c.With(ModFocusWithin) }

// FocusVisible scopes c to keyboard-visible focus.
func FocusVisible[P Property](c Class[P]) Class[P] { return c.With(ModFocusVisible) }

// Active scopes c to the active state.
func Active[P Property](c Class[P]) Class[P] { return c.With(ModActive) }

// Visited scopes c to visited links.
func Visited[P Property](c Class[P]) Class[P] { return c.With(ModVisited) }

// Checked scopes c to checked inputs.
func Checked[P Property](c Class[P]) Class[P] { return c.With(ModChecked) }

// Disabled scopes c to disabled elements.
func Disabled[P Property](c Class[P]) Class[P] { return c.With(ModDisabled) }

// GroupHover scopes c to hover on an ancestor marked as a group.
func GroupHover[P Property](c Class[P]) Class[P] { return c.With(ModGroupHover) }

// First scopes c to the first child.
func First[P Property](c Class[P]) Class[P] { return c.With(ModFirst) }

// Last scopes c to the last child.
func Last[P Property](c Class[P]) Class[P] { return c.With(ModLast) }

// Odd scopes c to odd children.
func Odd[P Property](c Class[P]) Class[P] { return c.With(ModOdd) }

// Even scopes c to even children.
func Even[P Property](c Class[P]) Class[P] { return c.With(ModEven) }

// Dark scopes c to the dark color scheme.
func Dark[P Property](c Class[P]) Class[P] { return c.With(ModDark) }

// MotionReduce scopes c to reduced-motion preference.
func MotionReduce[P Property](c Class[P]) Class[P] { return c.With(ModMotionReduce) }

// SM scopes c to the sm breakpoint and up.
func SM[P Property](c Class[P]) Class[P] { return c.With(ModSM) }

// MD scopes c to the md breakpoint and up.
func MD[P Property](c Class[P]) Class[P] { return c.With(ModMD) }

// LG scopes c to the lg breakpoint and up.
func LG[P Property](c Class[P]) Class[P] { return c.With(ModLG) }

// XL scopes c to the xl breakpoint and up.
func XL[P Property](c Class[P]) Class[P] { return c.With(ModXL) }

// XXL scopes c to the 2xl breakpoint and up.
func XXL[P Property](c Class[P]) Class[P] { return c.With(Mod2XL) }
