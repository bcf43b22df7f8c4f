// Package templui attaches twind utility classes to templ markup.
//
// It owns the adapter boundary: collecting rendered class tokens into a
// class attribute and the merge policy for combining class lists. The core
// twind package stays markup-agnostic.
package templui

import (
	"strings"

	"github.com/a-h/templ"
)

// Classes collects utility classes into a templ class attribute value.
// Any mix of property groups can be attached to one node:
//
//	<div class={ templui.Classes(twind.Flex, twind.Hover(twind.BgSky500)) }>
//
// Each class is rendered to its token before being handed to templ: templ's
// class processor dispatches on its own concrete class types and on plain
// strings, not on the CSSClass interface, so interface values would not
// render.
func Classes(classes ...templ.CSSClass) templ.CSSClasses {
	args := make([]any, len(classes))
	for i, c := range classes {
		args[i] = c.ClassName()
	}
	return templ.Classes(args...)
}

// Merge joins rendered class tokens into a single attribute string,
// dropping exact duplicates while preserving first-seen order. Inputs may
// themselves contain multiple space-separated tokens.
func Merge(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, token := range strings.Fields(input) {
			if !seen[token] {
				classes = append(classes, token)
				seen[token] = true
			}
		}
	}

	return strings.Join(classes, " ")
}
