package twind

// Theme is the resolved color theme: family name -> shade step -> CSS value.
// It is built by parsing --color-* custom properties from theme CSS files.
type Theme struct {
	Families map[string]map[int]string
	Sources  []string
}

// NewTheme returns an empty theme.
func NewTheme() *Theme {
	return &Theme{Families: make(map[string]map[int]string)}
}

// ColorGroup describes one property-group marker conforming to the color
// capability: the marker type name in the root package, the class prefix it
// renders with, and the identifier prefix for generated constants.
type ColorGroup struct {
	Marker      string // "BackgroundColor"
	ClassPrefix string // "bg"
	IdentPrefix string // "Bg"
}

// colorGroups lists the color-bearing property groups the generator emits
// a palette for, in emission order.
var colorGroups = []ColorGroup{
	{Marker: "TextColor", ClassPrefix: "text", IdentPrefix: "Text"},
	{Marker: "BackgroundColor", ClassPrefix: "bg", IdentPrefix: "Bg"},
	{Marker: "BorderColor", ClassPrefix: "border", IdentPrefix: "Border"},
	{Marker: "RingColor", ClassPrefix: "ring", IdentPrefix: "Ring"},
}

// ColorGroups returns the emission-ordered color group table.
func ColorGroups() []ColorGroup {
	out := make([]ColorGroup, len(colorGroups))
	copy(out, colorGroups)
	return out
}

// colorKeywords are the non-scaled palette entries emitted for every group.
// They are CSS-level values, not theme tokens, so the theme file does not
// declare them.
var colorKeywords = []string{"black", "white", "transparent", "current", "inherit"}

// EmitOptions controls catalog source generation.
type EmitOptions struct {
	PackageName string   // "twind"
	Sources     []string // Theme file paths recorded in the header
}
