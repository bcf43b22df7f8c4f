package twind

import (
	"fmt"
	"sort"
	"strings"
)

// EmitColors renders the generated color catalog source for the root
// package. Output is deterministic: groups in table order, keyword entries
// first, then families alphabetically with shades ascending, each run
// aligned the way gofmt aligns contiguous assignments.
func EmitColors(theme *Theme, opts EmitOptions) ([]byte, error) {
	if opts.PackageName == "" {
		return nil, fmt.Errorf("emit: package name is required")
	}
	if len(theme.Families) == 0 {
		return nil, fmt.Errorf("emit: theme declares no color families")
	}

	families := make([]string, 0, len(theme.Families))
	for family := range theme.Families {
		families = append(families, family)
	}
	sort.Strings(families)

	var b strings.Builder
	b.WriteString("// Code generated by twind. DO NOT EDIT.\n")
	if len(opts.Sources) > 0 {
		b.WriteString("//\n")
		b.WriteString("// Source: " + strings.Join(opts.Sources, ", ") + "\n")
	}
	b.WriteString("\npackage " + opts.PackageName + "\n")

	for _, group := range colorGroups {
		b.WriteString("\n")
		fmt.Fprintf(&b, "// %s palette (%q classes).\n", group.Marker, group.ClassPrefix+"-")
		b.WriteString("var (\n")

		keywords := make([]assignment, 0, len(colorKeywords))
		for _, kw := range colorKeywords {
			keywords = append(keywords, assignment{
				ident: group.IdentPrefix + goIdent(kw),
				value: fmt.Sprintf("New[%s](%q)", group.Marker, group.ClassPrefix+"-"+kw),
			})
		}
		writeAligned(&b, keywords)

		for _, family := range families {
			b.WriteString("\n")

			shades := make([]int, 0, len(theme.Families[family]))
			for shade := range theme.Families[family] {
				shades = append(shades, shade)
			}
			sort.Ints(shades)

			entries := make([]assignment, 0, len(shades))
			for _, shade := range shades {
				entries = append(entries, assignment{
					ident: fmt.Sprintf("%s%s%d", group.IdentPrefix, goIdent(family), shade),
					value: fmt.Sprintf("New[%s](%q)", group.Marker,
						fmt.Sprintf("%s-%s-%d", group.ClassPrefix, family, shade)),
				})
			}
			writeAligned(&b, entries)
		}

		b.WriteString(")\n")
	}

	return []byte(b.String()), nil
}

type assignment struct {
	ident string
	value string
}

// writeAligned writes one contiguous run of assignments with the identifier
// column padded to the run's widest name, matching gofmt alignment.
func writeAligned(b *strings.Builder, entries []assignment) {
	width := 0
	for _, e := range entries {
		if len(e.ident) > width {
			width = len(e.ident)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(b, "\t%-*s = %s\n", width, e.ident, e.value)
	}
}

// goIdent converts a theme token segment to an exported Go identifier:
// "fuchsia" -> "Fuchsia", "warm-gray" -> "WarmGray".
func goIdent(token string) string {
	parts := strings.Split(token, "-")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
