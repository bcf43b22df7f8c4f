package twind

// Declared utility classes for the non-color property groups. Each constant
// is a Class with no modifiers; stack variants with the helpers in
// modifier.go. Color-bearing groups are declared in colors.gen.go instead.

// Display
var (
	Block       = New[Display]("block")
	InlineBlock = New[Display]("inline-block")
	Inline      = New[Display]("inline")
	Flex        = New[Display]("flex")
	InlineFlex  = New[Display]("inline-flex")
	Grid        = New[Display]("grid")
	InlineGrid  = New[Display]("inline-grid")
	Hidden      = New[Display]("hidden")
)

// Flex direction
var (
	FlexRow        = New[FlexDirection]("flex-row")
	FlexRowReverse = New[FlexDirection]("flex-row-reverse")
	FlexCol        = New[FlexDirection]("flex-col")
	FlexColReverse = New[FlexDirection]("flex-col-reverse")
)

// Justify content
var (
	JustifyStart   = New[JustifyContent]("justify-start")
	JustifyEnd     = New[JustifyContent]("justify-end")
	JustifyCenter  = New[JustifyContent]("justify-center")
	JustifyBetween = New[JustifyContent]("justify-between")
	JustifyAround  = New[JustifyContent]("justify-around")
	JustifyEvenly  = New[JustifyContent]("justify-evenly")
)

// Align items
var (
	ItemsStart    = New[AlignItems]("items-start")
	ItemsEnd      = New[AlignItems]("items-end")
	ItemsCenter   = New[AlignItems]("items-center")
	ItemsBaseline = New[AlignItems]("items-baseline")
	ItemsStretch  = New[AlignItems]("items-stretch")
)

// Position
var (
	Static   = New[Position]("static")
	Fixed    = New[Position]("fixed")
	Absolute = New[Position]("absolute")
	Relative = New[Position]("relative")
	Sticky   = New[Position]("sticky")
)

// Overflow
var (
	OverflowAuto    = New[Overflow]("overflow-auto")
	OverflowHidden  = New[Overflow]("overflow-hidden")
	OverflowVisible = New[Overflow]("overflow-visible")
	OverflowScroll  = New[Overflow]("overflow-scroll")
)

// Text align
var (
	TextLeft    = New[TextAlign]("text-left")
	TextCenter  = New[TextAlign]("text-center")
	TextRight   = New[TextAlign]("text-right")
	TextJustify = New[TextAlign]("text-justify")
)

// Font size
var (
	TextXS   = New[FontSize]("text-xs")
	TextSM   = New[FontSize]("text-sm")
	TextBase = New[FontSize]("text-base")
	TextLG   = New[FontSize]("text-lg")
	TextXL   = New[FontSize]("text-xl")
	Text2XL  = New[FontSize]("text-2xl")
	Text3XL  = New[FontSize]("text-3xl")
	Text4XL  = New[FontSize]("text-4xl")
)

// Font weight
var (
	FontThin      = New[FontWeight]("font-thin")
	FontLight     = New[FontWeight]("font-light")
	FontNormal    = New[FontWeight]("font-normal")
	FontMedium    = New[FontWeight]("font-medium")
	FontSemibold  = New[FontWeight]("font-semibold")
	FontBold      = New[FontWeight]("font-bold")
	FontExtrabold = New[FontWeight]("font-extrabold")
	FontBlack     = New[FontWeight]("font-black")
)

// Font style
var (
	Italic    = New[FontStyle]("italic")
	NotItalic = New[FontStyle]("not-italic")
)

// Text decoration
var (
	Underline   = New[TextDecoration]("underline")
	Overline    = New[TextDecoration]("overline")
	LineThrough = New[TextDecoration]("line-through")
	NoUnderline = New[TextDecoration]("no-underline")
)

// Border radius
var (
	RoundedNone = New[BorderRadius]("rounded-none")
	RoundedSM   = New[BorderRadius]("rounded-sm")
	Rounded     = New[BorderRadius]("rounded")
	RoundedMD   = New[BorderRadius]("rounded-md")
	RoundedLG   = New[BorderRadius]("rounded-lg")
	RoundedXL   = New[BorderRadius]("rounded-xl")
	RoundedFull = New[BorderRadius]("rounded-full")
)

// Border width
var (
	Border0 = New[BorderWidth]("border-0")
	Border  = New[BorderWidth]("border")
	Border2 = New[BorderWidth]("border-2")
	Border4 = New[BorderWidth]("border-4")
	Border8 = New[BorderWidth]("border-8")
)

// Box shadow
var (
	ShadowNone = New[Shadow]("shadow-none")
	ShadowSM   = New[Shadow]("shadow-sm")
	ShadowBase = New[Shadow]("shadow")
	ShadowMD   = New[Shadow]("shadow-md")
	ShadowLG   = New[Shadow]("shadow-lg")
	ShadowXL   = New[Shadow]("shadow-xl")
)

// Padding (all sides, default spacing scale)
var (
	P0 = New[Padding]("p-0")
	P1 = New[Padding]("p-1")
	P2 = New[Padding]("p-2")
	P3 = New[Padding]("p-3")
	P4 = New[Padding]("p-4")
	P6 = New[Padding]("p-6")
	P8 = New[Padding]("p-8")
)

// Margin (all sides, default spacing scale)
var (
	M0     = New[Margin]("m-0")
	M1     = New[Margin]("m-1")
	M2     = New[Margin]("m-2")
	M3     = New[Margin]("m-3")
	M4     = New[Margin]("m-4")
	M6     = New[Margin]("m-6")
	M8     = New[Margin]("m-8")
	MAuto  = New[Margin]("m-auto")
	MXAuto = New[Margin]("mx-auto")
)

// Gap
var (
	Gap0 = New[Gap]("gap-0")
	Gap1 = New[Gap]("gap-1")
	Gap2 = New[Gap]("gap-2")
	Gap3 = New[Gap]("gap-3")
	Gap4 = New[Gap]("gap-4")
	Gap6 = New[Gap]("gap-6")
	Gap8 = New[Gap]("gap-8")
)

// Width
var (
	WFull   = New[Width]("w-full")
	WAuto   = New[Width]("w-auto")
	WScreen = New[Width]("w-screen")
	WFit    = New[Width]("w-fit")
	WHalf   = New[Width]("w-1/2")
	WThird  = New[Width]("w-1/3")
)

// Height
var (
	HFull   = New[Height]("h-full")
	HAuto   = New[Height]("h-auto")
	HScreen = New[Height]("h-screen")
	HFit    = New[Height]("h-fit")
)
