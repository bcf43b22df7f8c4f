package twind

import (
	"slices"
	"strings"
)

// Modifier is a single variant prefix token such as "hover", "dark", or a
// breakpoint like "md". Modifiers are immutable and compared by name; the
// exported Mod* constants in modifier.go are the supported set.
type Modifier struct {
	name string
}

// Name returns the literal variant token, e.g. "hover".
func (m Modifier) Name() string { return m.name }

// Class is a single utility class belonging to the property group P.
//
// P is a pure compile-time tag: it has no runtime representation and exists
// only so that classes from different property groups cannot be mixed up.
// A Class value is never mutated; every transformation returns a new value,
// so declared catalog constants are safe to share across goroutines.
type Class[P Property] struct {
	name      string
	modifiers []Modifier
}

// New declares a utility class with no modifiers applied.
//
// The name must be non-empty and must not contain ':', which is reserved as
// the variant separator. This is an authoring contract for catalog
// declarations, not a runtime check.
func New[P Property](name string) Class[P] {
	return Class[P]{name: name}
}

// Base returns the class name without any variant prefixes.
func (c Class[P]) Base() string { return c.name }

// Modifiers returns the applied modifiers, outermost-applied first.
// The returned slice is a copy; mutating it does not affect c.
func (c Class[P]) Modifiers() []Modifier {
	return slices.Clone(c.modifiers)
}

// With returns a copy of c with m prepended to the modifier chain.
//
// Prepending makes the stored order match the rendered left-to-right order:
// callers nest outward-to-inward, as in Dark(MD(Hover(c))), and the
// outermost call ends up leftmost in the rendered token. The receiver is
// left untouched.
func (c Class[P]) With(m Modifier) Class[P] {
	mods := make([]Modifier, 0, len(c.modifiers)+1)
	mods = append(mods, m)
	mods = append(mods, c.modifiers...)
	return Class[P]{name: c.name, modifiers: mods}
}

// ClassName renders the final class token: each modifier name in stored
// order followed by ':', then the base name. With no modifiers the result
// is exactly the base name, with no separator anywhere.
//
// The method satisfies templ.CSSClass; use templui.Classes to attach values
// to templ markup, which renders each class to its token first.
func (c Class[P]) ClassName() string {
	if len(c.modifiers) == 0 {
		return c.name
	}
	var b strings.Builder
	for _, m := range c.modifiers {
		b.WriteString(m.name)
		b.WriteByte(':')
	}
	b.WriteString(c.name)
	return b.String()
}

// Equal reports whether c and other have the same base name and the same
// modifier chain in the same order. Modifier order is significant:
// "md:hover:flex" and "hover:md:flex" are different classes.
func (c Class[P]) Equal(other Class[P]) bool {
	return c.name == other.name && slices.Equal(c.modifiers, other.modifiers)
}
