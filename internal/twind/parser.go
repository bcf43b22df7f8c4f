package twind

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// themePrefix is the custom-property namespace the parser extracts.
// Declarations outside it (spacing tokens, font stacks) are ignored.
const themePrefix = "--color-"

// ParseTheme parses CSS content and collects --color-{family}-{shade}
// declarations into the theme. Declarations are accepted anywhere a custom
// property is valid (@theme blocks, :root, arbitrary selectors); the
// surrounding rule structure is not interpreted.
func ParseTheme(theme *Theme, content string, filename string) error {
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		if tt != css.IdentToken && tt != css.CustomPropertyNameToken {
			continue
		}

		name := string(text)
		if !strings.HasPrefix(name, themePrefix) {
			continue
		}

		family, shade, ok := splitToken(strings.TrimPrefix(name, themePrefix))
		if !ok {
			// Keyword entries like --color-black are CSS-level values the
			// emitter always declares; nothing to record.
			continue
		}

		value := readDeclarationValue(lexer)
		if value == "" {
			continue
		}

		if theme.Families[family] == nil {
			theme.Families[family] = make(map[int]string)
		}
		theme.Families[family][shade] = value
	}

	theme.Sources = append(theme.Sources, filename)
	return nil
}

// ParseThemeFile reads and parses a single theme CSS file into theme.
func ParseThemeFile(theme *Theme, path string) error {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	return ParseTheme(theme, string(content), path)
}

// splitToken splits "fuchsia-600" into ("fuchsia", 600). Tokens without a
// trailing numeric shade ("black", "white") report ok=false.
func splitToken(token string) (family string, shade int, ok bool) {
	idx := strings.LastIndex(token, "-")
	if idx <= 0 || idx == len(token)-1 {
		return "", 0, false
	}

	n, err := strconv.Atoi(token[idx+1:])
	if err != nil || n <= 0 {
		return "", 0, false
	}

	return token[:idx], n, true
}

// readDeclarationValue consumes tokens after a custom-property name up to
// the end of the declaration and returns the raw value text.
func readDeclarationValue(lexer *css.Lexer) string {
	var b strings.Builder
	sawColon := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.RightBraceToken {
			break
		}

		if tt == css.ColonToken && !sawColon {
			sawColon = true
			continue
		}

		if sawColon {
			b.Write(text)
		}
	}

	return strings.TrimSpace(b.String())
}
