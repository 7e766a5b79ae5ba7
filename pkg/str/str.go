package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words, breaking on any non-alphanumeric rune and on
// lower-to-upper camel boundaries. "userID-42" becomes ["user", "ID", "42"].
func Words(s string) []string {
	var words []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			flush()
		}
		b.WriteRune(r)
	}
	flush()
	return words
}

// Capitalize uppercases the first rune of s and lowercases the rest.
func Capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Title converts s to language-neutral title case using Unicode casing
// rules, so ligatures and non-ASCII letters are handled correctly.
func Title(s string) string {
	// cases.Caser carries state, so a fresh one is built per call rather
	// than shared across goroutines.
	return cases.Title(language.Und).String(s)
}

// CamelCase converts s to camelCase: first word lowercased, subsequent words
// capitalized, separators dropped.
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// PascalCase converts s to PascalCase: every word capitalized, separators
// dropped.
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// SnakeCase converts s to snake_case.
func SnakeCase(s string) string {
	return joinLower(s, "_")
}

// KebabCase converts s to kebab-case.
func KebabCase(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// Truncate cuts s to at most n runes. Negative n is treated as zero.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Ellipsis truncates s to at most n runes including a trailing "..." marker
// when anything was cut. For n of 3 or less the marker alone is returned for
// over-long input.
func Ellipsis(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return "..."
	}
	return string(runes[:n-3]) + "..."
}

// Pad centers s within width using spaces. When the slack is odd the extra
// space goes to the right.
func Pad(s string, width int) string {
	slack := width - len([]rune(s))
	if slack <= 0 {
		return s
	}
	left := slack / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", slack-left)
}

// PadLeft left-pads s with pad runes up to width.
func PadLeft(s string, width int, pad rune) string {
	slack := width - len([]rune(s))
	if slack <= 0 {
		return s
	}
	return strings.Repeat(string(pad), slack) + s
}

// PadRight right-pads s with pad runes up to width.
func PadRight(s string, width int, pad rune) string {
	slack := width - len([]rune(s))
	if slack <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), slack)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
