// Package twind provides type-safe Tailwind utility-class composition for Go/templ projects.
//
// Every utility class is a value of the generic type Class[P], where P is a
// marker type naming the CSS property group the class belongs to. Catalogs of
// declared classes, variant modifiers, and the class-name rendering rule are
// all resolved at compile time: a typo'd class or modifier is a build error,
// not a runtime surprise.
//
// # Composition
//
// Pick a declared class, stack variant modifiers outward-to-inward, and read
// the rendered token:
//
//	twind.Dark(twind.MD(twind.Hover(twind.BgFuchsia600))).ClassName()
//	// "dark:md:hover:bg-fuchsia-600"
//
// The templui package attaches classes to templ markup:
//
//	<button class={ templui.Classes(twind.Flex, twind.Hover(twind.BgSky500)) }>Click</button>
//
// # Color palette generation
//
// Color-bearing property groups (text, background, border, ring) share one
// palette. The per-group constants in colors.gen.go are generated from a
// theme CSS file:
//
//	config := twind.Config{
//		ThemeDir:    "theme",
//		Includes:    []string{"**/*.css"},
//		OutputFile:  "colors.gen.go",
//		PackageName: "twind",
//	}
//	result, err := twind.Generate(config)
//
// # CLI Tool
//
// twind also provides a CLI tool for generation and drift checking. Install with:
//
//	go install github.com/yacobolo/twind/cmd/twind@latest
package twind
