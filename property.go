package twind

// Property is the constraint satisfied by every property-group marker.
//
// Markers are empty struct types with no behavior; they partition the class
// namespace so that, for example, a Class[Display] can never be passed where
// a Class[BackgroundColor] is expected. The unexported method keeps the set
// of groups closed to this package.
type Property interface {
	property()
}

// ColorProperty marks property groups whose values come from the shared
// color palette. A conforming marker supplies the class prefix ("bg",
// "text", ...) used by the palette accessors in color.go and by the catalog
// generator. Conforming groups gain the entire palette; they must not
// declare palette members of their own.
type ColorProperty interface {
	Property
	colorPrefix() string
}

// Layout groups.

type Display struct{}
type FlexDirection struct{}
type JustifyContent struct{}
type AlignItems struct{}
type Position struct{}
type Overflow struct{}

func (Display) property()        {}
func (FlexDirection) property()  {}
func (JustifyContent) property() {}
func (AlignItems) property()     {}
func (Position) property()       {}
func (Overflow) property()       {}

// Typography groups.

type TextAlign struct{}
type FontSize struct{}
type FontWeight struct{}
type FontStyle struct{}
type TextDecoration struct{}

func (TextAlign) property()      {}
func (FontSize) property()       {}
func (FontWeight) property()     {}
func (FontStyle) property()      {}
func (TextDecoration) property() {}

// Visual groups.

type BorderRadius struct{}
type BorderWidth struct{}
type Shadow struct{}

func (BorderRadius) property() {}
func (BorderWidth) property()  {}
func (Shadow) property()       {}

// Spacing and sizing groups.

type Padding struct{}
type Margin struct{}
type Gap struct{}
type Width struct{}
type Height struct{}

func (Padding) property() {}
func (Margin) property()  {}
func (Gap) property()     {}
func (Width) property()   {}
func (Height) property()  {}

// Color-bearing groups. Each conforms to ColorProperty by supplying its
// class prefix, which is the only thing that differs between them.

type TextColor struct{}
type BackgroundColor struct{}
type BorderColor struct{}
type RingColor struct{}

func (TextColor) property()       {}
func (BackgroundColor) property() {}
func (BorderColor) property()     {}
func (RingColor) property()       {}

func (TextColor) colorPrefix() string       { return "text" }
func (BackgroundColor) colorPrefix() string { return "bg" }
func (BorderColor) colorPrefix() string     { return "border" }
func (RingColor) colorPrefix() string       { return "ring" }
